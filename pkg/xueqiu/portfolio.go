package xueqiu

import "encoding/json"

// PortfolioListItem is one watchlist group.
type PortfolioListItem struct {
	ID          *int   `json:"id"`
	Name        string `json:"name"`
	OrderID     *int   `json:"order_id"`
	Category    *int   `json:"category"`
	Include     *bool  `json:"include"`
	SymbolCount *int   `json:"symbol_count"`
	Type        *int   `json:"type"`

	CreatedAt Time `json:"created_at"`
	UpdatedAt Time `json:"updated_at"`
}

// PortfolioListData groups watchlists by kind. Mutual funds arrive under the
// camelCase key "mutualFunds".
type PortfolioListData struct {
	Cubes       []PortfolioListItem
	Funds       []PortfolioListItem
	Stocks      []PortfolioListItem
	MutualFunds []PortfolioListItem

	Extra map[string]json.RawMessage
}

func (d *PortfolioListData) UnmarshalJSON(b []byte) error {
	obj := rawObject{}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}

	d.Cubes, d.Funds, d.Stocks, d.MutualFunds = nil, nil, nil, nil

	if err := obj.into(&d.Cubes, "cubes"); err != nil {
		return err
	}

	if err := obj.into(&d.Funds, "funds"); err != nil {
		return err
	}

	if err := obj.into(&d.Stocks, "stocks"); err != nil {
		return err
	}

	if err := obj.into(&d.MutualFunds, "mutualFunds", "mutual_funds"); err != nil {
		return err
	}

	d.Extra = obj.rest("cubes", "funds", "stocks", "mutualFunds", "mutual_funds")

	return nil
}

// PortfolioStockItem is one symbol in a watchlist.
type PortfolioStockItem struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Type     *int   `json:"type"`
	Remark   string `json:"remark"`
	Exchange string `json:"exchange"`
	Created  Time   `json:"created"`
}

// PortfolioStocksData is the payload of the watchlist-stocks endpoint.
type PortfolioStocksData struct {
	PID      *int                 `json:"pid"`
	Category *int                 `json:"category"`
	Stocks   []PortfolioStockItem `json:"stocks"`
}
