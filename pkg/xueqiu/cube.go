package xueqiu

import "encoding/json"

// CubeNavPoint is one day of a cube's net-value series.
type CubeNavPoint struct {
	Time    Time     `json:"time"`
	Date    string   `json:"date"`
	Value   *float64 `json:"value"`
	Percent *float64 `json:"percent"`
}

// CubeNavSeries is one cube's daily net-value history; the points arrive
// under "list".
type CubeNavSeries struct {
	Symbol string         `json:"symbol"`
	Name   string         `json:"name"`
	Items  []CubeNavPoint `json:"list"`
}

// CubeRebalancingHistoryItem is one order inside a rebalancing.
type CubeRebalancingHistoryItem struct {
	ID            *int   `json:"id"`
	RebalancingID *int   `json:"rebalancing_id"`
	StockID       *int   `json:"stock_id"`
	StockName     string `json:"stock_name"`
	StockSymbol   string `json:"stock_symbol"`

	Volume       *float64 `json:"volume"`
	Price        *float64 `json:"price"`
	NetValue     *float64 `json:"net_value"`
	Weight       *float64 `json:"weight"`
	TargetWeight *float64 `json:"target_weight"`
	PrevWeight   *float64 `json:"prev_weight"`
	Proactive    *bool    `json:"proactive"`

	CreatedAt Time `json:"created_at"`
	UpdatedAt Time `json:"updated_at"`
}

// CubeHolding is one position in a cube's current composition.
type CubeHolding struct {
	StockID      *int     `json:"stock_id"`
	Weight       *float64 `json:"weight"`
	SegmentName  string   `json:"segment_name"`
	SegmentID    *int     `json:"segment_id"`
	StockName    string   `json:"stock_name"`
	StockSymbol  string   `json:"stock_symbol"`
	SegmentColor string   `json:"segment_color"`
	Proactive    *bool    `json:"proactive"`
	Volume       *float64 `json:"volume"`
}

// CubeRebalancing is one rebalancing event. Upstream misspells the previous
// rebalancing id as "prev_bebalancing_id".
type CubeRebalancing struct {
	ID                *int
	Status            string
	CubeID            *int
	PrevRebalancingID *int
	Category          string
	ExeStrategy       string

	CreatedAt Time
	UpdatedAt Time

	Cash         *float64
	CashValue    *float64
	ErrorCode    *int
	ErrorMessage string
	ErrorStatus  string

	Holdings             []CubeHolding
	RebalancingHistories []CubeRebalancingHistoryItem

	Comment     string
	Diff        *float64
	NewBuyCount *int

	Extra map[string]json.RawMessage
}

func (r *CubeRebalancing) UnmarshalJSON(b []byte) error {
	obj := rawObject{}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}

	r.ID = obj.int("id")
	r.Status = obj.str("status")
	r.CubeID = obj.int("cube_id")
	r.PrevRebalancingID = obj.int("prev_bebalancing_id", "prev_rebalancing_id")
	r.Category = obj.str("category")
	r.ExeStrategy = obj.str("exe_strategy")
	r.CreatedAt = obj.time("created_at")
	r.UpdatedAt = obj.time("updated_at")
	r.Cash = obj.float("cash")
	r.CashValue = obj.float("cash_value")
	r.ErrorCode = obj.int("error_code")
	r.ErrorMessage = obj.str("error_message")
	r.ErrorStatus = obj.str("error_status")
	r.Comment = obj.str("comment")
	r.Diff = obj.float("diff")
	r.NewBuyCount = obj.int("new_buy_count")

	r.Holdings, r.RebalancingHistories = nil, nil
	if err := obj.into(&r.Holdings, "holdings"); err != nil {
		return err
	}

	if err := obj.into(&r.RebalancingHistories, "rebalancing_histories"); err != nil {
		return err
	}

	r.Extra = obj.rest(
		"id", "status", "cube_id", "prev_bebalancing_id", "prev_rebalancing_id",
		"category", "exe_strategy", "created_at", "updated_at", "cash", "cash_value",
		"error_code", "error_message", "error_status", "holdings",
		"rebalancing_histories", "comment", "diff", "new_buy_count",
	)

	return nil
}

// CubeRebalancingHistoryData is one page of rebalancing history. The page
// entries arrive under "list"; the count fields use camelCase.
type CubeRebalancingHistoryData struct {
	Count      *int
	Page       *int
	TotalCount *int
	Items      []CubeRebalancing
	MaxPage    *int

	Extra map[string]json.RawMessage
}

func (d *CubeRebalancingHistoryData) UnmarshalJSON(b []byte) error {
	obj := rawObject{}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}

	d.Count = obj.int("count")
	d.Page = obj.int("page")
	d.TotalCount = obj.int("totalCount", "total_count")
	d.MaxPage = obj.int("maxPage", "max_page")

	d.Items = nil
	if err := obj.into(&d.Items, "list", "items"); err != nil {
		return err
	}

	d.Extra = obj.rest("count", "page", "totalCount", "total_count", "maxPage", "max_page", "list", "items")

	return nil
}

// CubeRebalancingCurrentData is the payload of the current-rebalancing
// endpoint.
type CubeRebalancingCurrentData struct {
	LastRb *CubeRebalancing `json:"last_rb"`
}

// CubeQuote is one cube's headline performance.
type CubeQuote struct {
	Symbol string `json:"symbol"`
	Market string `json:"market"`
	Name   string `json:"name"`

	NetValue       *float64 `json:"net_value"`
	DailyGain      *float64 `json:"daily_gain"`
	MonthlyGain    *float64 `json:"monthly_gain"`
	TotalGain      *float64 `json:"total_gain"`
	AnnualizedGain *float64 `json:"annualized_gain"`

	HasExist    *bool `json:"hasexist"`
	BadgesExist *bool `json:"badges_exist"`
	GameID      *int  `json:"game_id"`

	ClosedAt Time `json:"closed_at"`
}
