package xueqiu

import "encoding/json"

// MarginItem is one day of margin-trading balances. The trade date arrives
// under "td_date".
type MarginItem struct {
	MarginTradingAmtBalance *float64
	ShortSellingAmtBalance  *float64
	MarginTradingBalance    *float64
	TradeDate               Time

	Extra map[string]json.RawMessage
}

func (m *MarginItem) UnmarshalJSON(b []byte) error {
	obj := rawObject{}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}

	m.MarginTradingAmtBalance = obj.float("margin_trading_amt_balance")
	m.ShortSellingAmtBalance = obj.float("short_selling_amt_balance")
	m.MarginTradingBalance = obj.float("margin_trading_balance")
	m.TradeDate = obj.time("td_date", "trade_date")
	m.Extra = obj.rest(
		"margin_trading_amt_balance", "short_selling_amt_balance",
		"margin_trading_balance", "td_date", "trade_date",
	)

	return nil
}

// MarginData is the payload of the margin endpoint.
type MarginData struct {
	Items []MarginItem `json:"items"`
}

// BlocktransItem is one block trade. Upstream field names are abbreviated
// (vol, premium_rat, trans_amt, td_date, trans_price).
type BlocktransItem struct {
	Volume            *float64
	SellBranchOrgName string
	PremiumRate       *float64
	TransactionAmount *float64
	TradeDate         Time
	BuyBranchOrgName  string
	TransactionPrice  *float64

	Extra map[string]json.RawMessage
}

func (t *BlocktransItem) UnmarshalJSON(b []byte) error {
	obj := rawObject{}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}

	t.Volume = obj.float("vol", "volume")
	t.SellBranchOrgName = obj.str("sell_branch_org_name")
	t.PremiumRate = obj.float("premium_rat", "premium_rate")
	t.TransactionAmount = obj.float("trans_amt", "transaction_amount")
	t.TradeDate = obj.time("td_date", "trade_date")
	t.BuyBranchOrgName = obj.str("buy_branch_org_name")
	t.TransactionPrice = obj.float("trans_price", "transaction_price")
	t.Extra = obj.rest(
		"vol", "volume", "sell_branch_org_name", "premium_rat", "premium_rate",
		"trans_amt", "transaction_amount", "td_date", "trade_date",
		"buy_branch_org_name", "trans_price", "transaction_price",
	)

	return nil
}

// BlocktransData is the payload of the block-trades endpoint.
type BlocktransData struct {
	Items []BlocktransItem `json:"items"`
}

// CapitalAssortData breaks intraday flow down by order size.
type CapitalAssortData struct {
	SellLarge  *float64 `json:"sell_large"`
	SellMedium *float64 `json:"sell_medium"`
	SellSmall  *float64 `json:"sell_small"`
	SellTotal  *float64 `json:"sell_total"`
	BuyLarge   *float64 `json:"buy_large"`
	BuyMedium  *float64 `json:"buy_medium"`
	BuySmall   *float64 `json:"buy_small"`
	BuyTotal   *float64 `json:"buy_total"`

	Timestamp Time `json:"timestamp"`
	CreatedAt Time `json:"created_at"`
	UpdatedAt Time `json:"updated_at"`
}

// CapitalFlowItem is one intraday net-flow sample.
type CapitalFlowItem struct {
	Timestamp Time     `json:"timestamp"`
	Amount    *float64 `json:"amount"`
	Type      string   `json:"type"`
}

// CapitalFlowData is the payload of the intraday flow endpoint.
type CapitalFlowData struct {
	Symbol string            `json:"symbol"`
	Items  []CapitalFlowItem `json:"items"`
}

// CapitalHistoryItem is one day of historical net flow.
type CapitalHistoryItem struct {
	Amount    *float64 `json:"amount"`
	Timestamp Time     `json:"timestamp"`
}

// CapitalHistoryData is the payload of the historical flow endpoint, with
// rolling sums keyed sum3/sum5/sum10/sum20 upstream.
type CapitalHistoryData struct {
	Sum3D  *float64 `json:"sum3"`
	Sum5D  *float64 `json:"sum5"`
	Sum10D *float64 `json:"sum10"`
	Sum20D *float64 `json:"sum20"`

	Items []CapitalHistoryItem `json:"items"`
}
