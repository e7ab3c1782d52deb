package xueqiu

import "encoding/json"

// The F10 company-profile endpoints lean heavily on abbreviated upstream
// field names (held_num, chg_date, ft_nums, ...). Types in this file accept
// both the abbreviated name and its readable form, preferring the
// abbreviation since that is what the live API sends.

// F10TimePoint labels a snapshot date in the top-holders response.
type F10TimePoint struct {
	Name  string `json:"name"`
	Value Time   `json:"value"`
}

// F10TopHolderItem is one shareholder row from the top-holders endpoint.
type F10TopHolderItem struct {
	Change          *float64
	HeldShares      *float64
	HeldRatio       *float64
	ShareholderName string

	Extra map[string]json.RawMessage
}

func (h *F10TopHolderItem) UnmarshalJSON(b []byte) error {
	obj := rawObject{}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}

	h.Change = obj.float("chg", "change")
	h.HeldShares = obj.float("held_num", "held_shares")
	h.HeldRatio = obj.float("held_ratio")
	h.ShareholderName = obj.str("holder_name", "shareholder_name")
	h.Extra = obj.rest("chg", "change", "held_num", "held_shares", "held_ratio", "holder_name", "shareholder_name")

	return nil
}

// F10TopHoldersData is the payload of the top-holders endpoint.
type F10TopHoldersData struct {
	Times []F10TimePoint     `json:"times"`
	Items []F10TopHolderItem `json:"items"`
}

// F10MainIndicatorItem is one reporting period of headline indicators. The
// period label arrives as "report_date" but holds a name like "2023年报".
type F10MainIndicatorItem struct {
	AssetLiabRatio      *float64
	NetProfitAtsopcYoy  *float64
	OperatingIncomeYoy  *float64
	BasicEPS            *float64
	NetSellingRate      *float64
	AvgROE              *float64
	GrossSellingRate    *float64
	FloatShares         *float64
	PB                  *float64
	NetAssetPerShare    *float64
	FloatMarketCapital  *float64
	TotalRevenue        *float64
	MarketCapital       *float64
	PETTM               *float64
	Dividend            *float64
	Currency            string
	DividendYield       *float64
	NetProfitAtsopc     *float64
	TotalShares         *float64
	ReportName          string

	Extra map[string]json.RawMessage
}

func (m *F10MainIndicatorItem) UnmarshalJSON(b []byte) error {
	obj := rawObject{}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}

	m.AssetLiabRatio = obj.float("asset_liab_ratio")
	m.NetProfitAtsopcYoy = obj.float("net_profit_atsopc_yoy")
	m.OperatingIncomeYoy = obj.float("operating_income_yoy")
	m.BasicEPS = obj.float("basic_eps")
	m.NetSellingRate = obj.float("net_selling_rate")
	m.AvgROE = obj.float("avg_roe")
	m.GrossSellingRate = obj.float("gross_selling_rate")
	m.FloatShares = obj.float("float_shares")
	m.PB = obj.float("pb")
	m.NetAssetPerShare = obj.float("np_per_share")
	m.FloatMarketCapital = obj.float("float_market_capital")
	m.TotalRevenue = obj.float("total_revenue")
	m.MarketCapital = obj.float("market_capital")
	m.PETTM = obj.float("pe_ttm")
	m.Dividend = obj.float("dividend")
	m.Currency = obj.str("currency")
	m.DividendYield = obj.float("dividend_yield")
	m.NetProfitAtsopc = obj.float("net_profit_atsopc")
	m.TotalShares = obj.float("total_shares")
	m.ReportName = obj.str("report_date", "report_name")
	m.Extra = obj.rest(
		"asset_liab_ratio", "net_profit_atsopc_yoy", "operating_income_yoy",
		"basic_eps", "net_selling_rate", "avg_roe", "gross_selling_rate",
		"float_shares", "pb", "np_per_share", "float_market_capital",
		"total_revenue", "market_capital", "pe_ttm", "dividend", "currency",
		"dividend_yield", "net_profit_atsopc", "total_shares",
		"report_date", "report_name",
	)

	return nil
}

// F10MainIndicatorData is the payload of the main-indicator endpoint.
type F10MainIndicatorData struct {
	Items []F10MainIndicatorItem `json:"items"`
}

// F10ShareholderCountItem is one point of the shareholder-count series.
type F10ShareholderCountItem struct {
	Change        *float64
	Price         *float64
	AShareHolders *int
	Timestamp     Time

	Extra map[string]json.RawMessage
}

func (h *F10ShareholderCountItem) UnmarshalJSON(b []byte) error {
	obj := rawObject{}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}

	h.Change = obj.float("chg", "change")
	h.Price = obj.float("price")
	h.AShareHolders = obj.int("ashare_holder", "a_share_holders")
	h.Timestamp = obj.time("timestamp")
	h.Extra = obj.rest("chg", "change", "price", "ashare_holder", "a_share_holders", "timestamp")

	return nil
}

// F10ShareholderCountData is the payload of the holders endpoint.
type F10ShareholderCountData struct {
	Items []F10ShareholderCountItem `json:"items"`
}

// F10OrgHoldingChangeItem is one period of institutional holding changes.
// The institution count arrives as a string upstream.
type F10OrgHoldingChangeItem struct {
	ReportName       string
	InstitutionCount string
	Change           *float64
	HeldRatio        *float64
	Price            *float64
	Timestamp        Time

	Extra map[string]json.RawMessage
}

func (o *F10OrgHoldingChangeItem) UnmarshalJSON(b []byte) error {
	obj := rawObject{}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}

	o.ReportName = obj.str("chg_date", "report_name")
	o.InstitutionCount = obj.str("institution_num", "institution_count")
	o.Change = obj.float("chg", "change")
	o.HeldRatio = obj.float("held_ratio")
	o.Price = obj.float("price")
	o.Timestamp = obj.time("timestamp")
	o.Extra = obj.rest(
		"chg_date", "report_name", "institution_num", "institution_count",
		"chg", "change", "held_ratio", "price", "timestamp",
	)

	return nil
}

// F10OrgHoldingChangeData is the payload of the org-holding-change endpoint.
type F10OrgHoldingChangeData struct {
	Items []F10OrgHoldingChangeItem `json:"items"`
}

// F10BonusAddition is one seasoned offering in the bonus response.
type F10BonusAddition struct {
	ActualIssueVol         *float64
	ActualIssuePrice       *float64
	ListingAt              Time
	ActualRaisedNetAmount  *float64

	Extra map[string]json.RawMessage
}

func (a *F10BonusAddition) UnmarshalJSON(b []byte) error {
	obj := rawObject{}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}

	a.ActualIssueVol = obj.float("actual_issue_vol")
	a.ActualIssuePrice = obj.float("actual_issue_price")
	a.ListingAt = obj.time("listing_ad", "listing_at")
	a.ActualRaisedNetAmount = obj.float("actual_rc_net_amt", "actual_raised_net_amount")
	a.Extra = obj.rest(
		"actual_issue_vol", "actual_issue_price", "listing_ad", "listing_at",
		"actual_rc_net_amt", "actual_raised_net_amount",
	)

	return nil
}

// F10BonusDividendItem is one dividend plan. Upstream has been observed to
// misspell the cancel date as "cancle_dividend_date".
type F10BonusDividendItem struct {
	DividendYear         string
	AShareExDividendDate Time
	PlanExplain          string
	CancelDividendDate   Time

	Extra map[string]json.RawMessage
}

func (d *F10BonusDividendItem) UnmarshalJSON(b []byte) error {
	obj := rawObject{}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}

	d.DividendYear = obj.str("dividend_year")
	d.AShareExDividendDate = obj.time("ashare_ex_dividend_date")
	d.PlanExplain = obj.str("plan_explain")
	d.CancelDividendDate = obj.time("cancel_dividend_date", "cancle_dividend_date")
	d.Extra = obj.rest(
		"dividend_year", "ashare_ex_dividend_date", "plan_explain",
		"cancel_dividend_date", "cancle_dividend_date",
	)

	return nil
}

// F10BonusData is the payload of the bonus endpoint. The additions list has
// also been observed under the misspelled key "addtions".
type F10BonusData struct {
	Additions []F10BonusAddition
	Allots    []map[string]json.RawMessage
	Items     []F10BonusDividendItem

	Extra map[string]json.RawMessage
}

func (d *F10BonusData) UnmarshalJSON(b []byte) error {
	obj := rawObject{}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}

	d.Additions = nil
	if err := obj.into(&d.Additions, "additions", "addtions"); err != nil {
		return err
	}

	d.Allots = nil
	if err := obj.into(&d.Allots, "allots"); err != nil {
		return err
	}

	d.Items = nil
	if err := obj.into(&d.Items, "items"); err != nil {
		return err
	}

	d.Extra = obj.rest("additions", "addtions", "allots", "items")

	return nil
}

// F10IndustryCompareStats is an aggregate row (avg/min/max) of the
// industry-compare response.
type F10IndustryCompareStats struct {
	PETTM              *float64 `json:"pe_ttm"`
	BasicEPS           *float64 `json:"basic_eps"`
	AvgROE             *float64 `json:"avg_roe"`
	GrossSellingRate   *float64 `json:"gross_selling_rate"`
	TotalRevenue       *float64 `json:"total_revenue"`
	NetProfitAtsopc    *float64 `json:"net_profit_atsopc"`
	NetAssetPerShare   *float64 `json:"np_per_share"`
	OperateCashFlowPS  *float64 `json:"operate_cash_flow_ps"`
	TotalAssets        *float64 `json:"total_assets"`
	TotalShares        *float64 `json:"total_shares"`
}

// F10IndustryCompareItem is one peer company in the industry comparison.
type F10IndustryCompareItem struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`

	BasicEPS          *float64 `json:"basic_eps"`
	TotalRevenue      *float64 `json:"total_revenue"`
	GrossSellingRate  *float64 `json:"gross_selling_rate"`
	NetProfitAtsopc   *float64 `json:"net_profit_atsopc"`
	NetAssetPerShare  *float64 `json:"np_per_share"`
	AvgROE            *float64 `json:"avg_roe"`
	PETTM             *float64 `json:"pe_ttm"`
	TotalAssets       *float64 `json:"total_assets"`
	OperateCashFlowPS *float64 `json:"operate_cash_flow_ps"`
	TotalShares       *float64 `json:"total_shares"`
}

// F10IndustryCompareData is the payload of the industry-compare endpoint.
type F10IndustryCompareData struct {
	IndustryName  string
	QuoteAt       Time
	Avg           *F10IndustryCompareStats
	Min           *F10IndustryCompareStats
	Max           *F10IndustryCompareStats
	Count         *int
	IndustryCode  string
	IndustryClass string
	ReportName    string
	Items         []F10IndustryCompareItem

	Extra map[string]json.RawMessage
}

func (d *F10IndustryCompareData) UnmarshalJSON(b []byte) error {
	obj := rawObject{}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}

	d.IndustryName = obj.str("ind_name", "industry_name")
	d.QuoteAt = obj.time("quote_time", "quote_at")
	d.Count = obj.int("count")
	d.IndustryCode = obj.str("ind_code", "industry_code")
	d.IndustryClass = obj.str("ind_class", "industry_class")
	d.ReportName = obj.str("report_name")

	d.Avg, d.Min, d.Max = nil, nil, nil
	if err := obj.into(&d.Avg, "avg"); err != nil {
		return err
	}

	if err := obj.into(&d.Min, "min"); err != nil {
		return err
	}

	if err := obj.into(&d.Max, "max"); err != nil {
		return err
	}

	d.Items = nil
	if err := obj.into(&d.Items, "items"); err != nil {
		return err
	}

	d.Extra = obj.rest(
		"ind_name", "industry_name", "quote_time", "quote_at", "avg", "min", "max",
		"count", "ind_code", "industry_code", "ind_class", "industry_class",
		"report_name", "items",
	)

	return nil
}

// F10IndustryTag is a concept or industry classification tag.
type F10IndustryTag struct {
	Code string
	Name string

	Extra map[string]json.RawMessage
}

func (t *F10IndustryTag) UnmarshalJSON(b []byte) error {
	obj := rawObject{}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}

	t.Code = obj.str("ind_code", "code")
	t.Name = obj.str("ind_name", "name")
	t.Extra = obj.rest("ind_code", "code", "ind_name", "name")

	return nil
}

// F10IndustryCompanyInfo is the company profile in the industry response.
type F10IndustryCompanyInfo struct {
	ClassificationName    string
	ProvincialName        string
	ListedAt              Time
	MainOperationBusiness string
	OrgNameCN             string
	ActualController      string

	Extra map[string]json.RawMessage
}

func (c *F10IndustryCompanyInfo) UnmarshalJSON(b []byte) error {
	obj := rawObject{}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}

	c.ClassificationName = obj.str("classi_name", "classification_name")
	c.ProvincialName = obj.str("provincial_name")
	c.ListedAt = obj.time("listed_date", "listed_at")
	c.MainOperationBusiness = obj.str("main_operation_business")
	c.OrgNameCN = obj.str("org_name_cn")
	c.ActualController = obj.str("actual_controller")
	c.Extra = obj.rest(
		"classi_name", "classification_name", "provincial_name",
		"listed_date", "listed_at", "main_operation_business",
		"org_name_cn", "actual_controller",
	)

	return nil
}

// F10IndustryData is the payload of the industry endpoint.
type F10IndustryData struct {
	Concepts      []F10IndustryTag
	ConceptClass  string
	Industries    []F10IndustryTag
	IndustryClass string
	Company       *F10IndustryCompanyInfo

	Extra map[string]json.RawMessage
}

func (d *F10IndustryData) UnmarshalJSON(b []byte) error {
	obj := rawObject{}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}

	d.Concepts = nil
	if err := obj.into(&d.Concepts, "concept", "concepts"); err != nil {
		return err
	}

	d.Industries = nil
	if err := obj.into(&d.Industries, "industry", "industries"); err != nil {
		return err
	}

	d.Company = nil
	if err := obj.into(&d.Company, "company"); err != nil {
		return err
	}

	d.ConceptClass = obj.str("concept_class")
	d.IndustryClass = obj.str("industry_class")
	d.Extra = obj.rest("concept", "concepts", "concept_class", "industry", "industries", "industry_class", "company")

	return nil
}

// F10BusinessAnalysisItem is one period of the operating-analysis text.
type F10BusinessAnalysisItem struct {
	ReportName               string
	OperatingAnalysisExplain string

	Extra map[string]json.RawMessage
}

func (i *F10BusinessAnalysisItem) UnmarshalJSON(b []byte) error {
	obj := rawObject{}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}

	i.ReportName = obj.str("report_date", "report_name")
	i.OperatingAnalysisExplain = obj.str("operating_analysis_explain")
	i.Extra = obj.rest("report_date", "report_name", "operating_analysis_explain")

	return nil
}

// F10BusinessAnalysisData is the payload of the business-analysis endpoint.
type F10BusinessAnalysisData struct {
	Items []F10BusinessAnalysisItem `json:"items"`
}

// F10SkholderItem is one executive or board member.
type F10SkholderItem struct {
	PersonName      string
	Position        string
	EmploymentStart Time
	EmploymentEnd   Time
	Resume          string
	HeldShares      *float64
	AnnualSalary    *float64

	Extra map[string]json.RawMessage
}

func (s *F10SkholderItem) UnmarshalJSON(b []byte) error {
	obj := rawObject{}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}

	s.PersonName = obj.str("personal_name", "person_name")
	s.Position = obj.str("position_name", "position")
	s.EmploymentStart = obj.time("employ_date", "employment_start")
	s.EmploymentEnd = obj.time("employ_ed", "employment_end")
	s.Resume = obj.str("resume_cn", "resume")
	s.HeldShares = obj.float("held_num", "held_shares")
	s.AnnualSalary = obj.float("annual_salary")
	s.Extra = obj.rest(
		"personal_name", "person_name", "position_name", "position",
		"employ_date", "employment_start", "employ_ed", "employment_end",
		"resume_cn", "resume", "held_num", "held_shares", "annual_salary",
	)

	return nil
}

// F10SkholderData is the payload of the executives endpoint.
type F10SkholderData struct {
	Items []F10SkholderItem `json:"items"`
}

// F10SkholderChangeItem is one insider trade.
type F10SkholderChangeItem struct {
	ManagerName         string
	ChangeDate          Time
	TransactionAvgPrice *float64
	ChangeShares        *float64

	Extra map[string]json.RawMessage
}

func (s *F10SkholderChangeItem) UnmarshalJSON(b []byte) error {
	obj := rawObject{}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}

	s.ManagerName = obj.str("manage_name", "manager_name")
	s.ChangeDate = obj.time("chg_date", "change_date")
	s.TransactionAvgPrice = obj.float("trans_avg_price", "transaction_avg_price")
	s.ChangeShares = obj.float("chg_shares_num", "change_shares")
	s.Extra = obj.rest(
		"manage_name", "manager_name", "chg_date", "change_date",
		"trans_avg_price", "transaction_avg_price", "chg_shares_num", "change_shares",
	)

	return nil
}

// F10SkholderChangeData is the payload of the insider-trades endpoint.
type F10SkholderChangeData struct {
	Items []F10SkholderChangeItem `json:"items"`
}

// F10SharesChangeItem is one change in share structure.
type F10SharesChangeItem struct {
	ChangeDate   Time
	ChangeReason string
	FloatShares  *float64
	TotalShares  *float64

	Extra map[string]json.RawMessage
}

func (s *F10SharesChangeItem) UnmarshalJSON(b []byte) error {
	obj := rawObject{}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}

	s.ChangeDate = obj.time("chg_date", "change_date")
	s.ChangeReason = obj.str("chg_reason", "change_reason")
	s.FloatShares = obj.float("float_shares")
	s.TotalShares = obj.float("total_shares")
	s.Extra = obj.rest("chg_date", "change_date", "chg_reason", "change_reason", "float_shares", "total_shares")

	return nil
}

// F10SharesRestrictionItem is one upcoming lockup release, keyed ft_* upstream.
type F10SharesRestrictionItem struct {
	ReleaseTime   Time
	ReleaseRatio  *float64
	ReleaseShares *float64
	ReleaseType   string

	Extra map[string]json.RawMessage
}

func (r *F10SharesRestrictionItem) UnmarshalJSON(b []byte) error {
	obj := rawObject{}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}

	r.ReleaseTime = obj.time("ft_time", "release_time")
	r.ReleaseRatio = obj.float("ft_ratio", "release_ratio")
	r.ReleaseShares = obj.float("ft_nums", "release_shares")
	r.ReleaseType = obj.str("ft_type", "release_type")
	r.Extra = obj.rest("ft_time", "release_time", "ft_ratio", "release_ratio", "ft_nums", "release_shares", "ft_type", "release_type")

	return nil
}

// F10SharesChangeData is the payload of the share-structure endpoint. The
// restriction list arrives under "restricts".
type F10SharesChangeData struct {
	Items        []F10SharesChangeItem
	Restrictions []F10SharesRestrictionItem

	Extra map[string]json.RawMessage
}

func (d *F10SharesChangeData) UnmarshalJSON(b []byte) error {
	obj := rawObject{}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}

	d.Items = nil
	if err := obj.into(&d.Items, "items"); err != nil {
		return err
	}

	d.Restrictions = nil
	if err := obj.into(&d.Restrictions, "restricts", "restrictions"); err != nil {
		return err
	}

	d.Extra = obj.rest("items", "restricts", "restrictions")

	return nil
}
