package xueqiu

import "encoding/json"

// FinanceStatement is the common shape of the indicator, balance, income, and
// cash-flow endpoints: statement-level metadata plus a period series. The
// period list arrives under "list" in v1 responses and "items" in v2.
type FinanceStatement struct {
	QuoteName      string
	CurrencyName   string
	OrgType        *int
	LastReportName string
	Currency       string

	Periods []ReportPeriod

	Extra map[string]json.RawMessage
}

func (s *FinanceStatement) UnmarshalJSON(b []byte) error {
	obj := rawObject{}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}

	s.QuoteName = obj.str("quote_name")
	s.CurrencyName = obj.str("currency_name")
	s.OrgType = obj.int("org_type")
	s.LastReportName = obj.str("last_report_name")
	s.Currency = obj.str("currency")

	s.Periods = nil
	if err := obj.into(&s.Periods, "list", "items"); err != nil {
		return err
	}

	s.Extra = obj.rest(
		"quote_name", "currency_name", "org_type", "last_report_name", "currency",
		"list", "items",
	)

	return nil
}

// BusinessItem is one line of a main-business breakdown.
type BusinessItem struct {
	ProjectAnnouncedName string   `json:"project_announced_name"`
	PrimeOperatingIncome *float64 `json:"prime_operating_income"`
	IncomeRatio          *float64 `json:"income_ratio"`
	GrossProfitRate      *float64 `json:"gross_profit_rate"`
}

// BusinessClass groups business items by classification standard
// (by product, by region, by industry).
type BusinessClass struct {
	ClassStandard *int           `json:"class_standard"`
	BusinessList  []BusinessItem `json:"business_list"`
}

// BusinessPeriod is one reporting period of the business endpoint.
type BusinessPeriod struct {
	ReportDate Time            `json:"report_date"`
	ReportName string          `json:"report_name"`
	ClassList  []BusinessClass `json:"class_list"`
}

// BusinessStatement is the payload of the main-business endpoint. The period
// series arrives under "list".
type BusinessStatement struct {
	QuoteName string           `json:"quote_name"`
	Currency  string           `json:"currency"`
	Periods   []BusinessPeriod `json:"list"`
}
