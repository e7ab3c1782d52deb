package xueqiu

// EarningForecastItem is one year of analyst consensus estimates.
type EarningForecastItem struct {
	ForecastYear string   `json:"forecast_year"`
	EPS          *float64 `json:"eps"`
	PE           *float64 `json:"pe"`
	PB           *float64 `json:"pb"`
	ROE          *float64 `json:"roe"`
}

// EarningForecastData is the payload of the earning-forecast endpoint.
type EarningForecastData struct {
	Items []EarningForecastItem `json:"list"`
}

// InstitutionRatingItem is one published research report.
type InstitutionRatingItem struct {
	Title          string   `json:"title"`
	RptComp        string   `json:"rpt_comp"`
	RatingDesc     string   `json:"rating_desc"`
	TargetPriceMin *float64 `json:"target_price_min"`
	TargetPriceMax *float64 `json:"target_price_max"`
	PubDate        Time     `json:"pub_date"`
	StatusID       *int     `json:"status_id"`
	RetweetCount   *int     `json:"retweet_count"`
	ReplyCount     *int     `json:"reply_count"`
	LikeCount      *int     `json:"like_count"`
	Liked          *bool    `json:"liked"`
}

// InstitutionRatingData is the payload of the latest-reports endpoint.
type InstitutionRatingData struct {
	Items []InstitutionRatingItem `json:"list"`
}
