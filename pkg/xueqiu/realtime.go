package xueqiu

import (
	"encoding/json"
	"fmt"
)

// Quote is one entry from the lightweight quote-list endpoint.
type Quote struct {
	Symbol    string   `json:"symbol"`
	Current   *float64 `json:"current"`
	Percent   *float64 `json:"percent"`
	Chg       *float64 `json:"chg"`
	Volume    *float64 `json:"volume"`
	Amount    *float64 `json:"amount"`
	Timestamp Time     `json:"timestamp"`
}

// MarketStatus describes the trading session attached to a detailed quote.
type MarketStatus struct {
	StatusID     *int   `json:"status_id"`
	Region       string `json:"region"`
	Status       string `json:"status"`
	TimeZone     string `json:"time_zone"`
	TimeZoneDesc string `json:"time_zone_desc"`
	DelayTag     *int   `json:"delay_tag"`
}

// QuoteTag is a label attached to a detailed quote (e.g. margin eligibility).
type QuoteTag struct {
	Description string `json:"description"`
	Value       *int   `json:"value"`
}

// QuoteDetail is the full quote record from the detail endpoint.
type QuoteDetail struct {
	Symbol   string `json:"symbol"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Exchange string `json:"exchange"`
	Currency string `json:"currency"`

	Current *float64 `json:"current"`
	Percent *float64 `json:"percent"`
	Chg     *float64 `json:"chg"`

	Open      *float64 `json:"open"`
	LastClose *float64 `json:"last_close"`
	High      *float64 `json:"high"`
	Low       *float64 `json:"low"`
	AvgPrice  *float64 `json:"avg_price"`

	Volume       *float64 `json:"volume"`
	Amount       *float64 `json:"amount"`
	TurnoverRate *float64 `json:"turnover_rate"`

	MarketCapital      *float64 `json:"market_capital"`
	FloatMarketCapital *float64 `json:"float_market_capital"`

	PETTM *float64 `json:"pe_ttm"`
	PELYR *float64 `json:"pe_lyr"`
	PB    *float64 `json:"pb"`
	PS    *float64 `json:"ps"`
	PCF   *float64 `json:"pcf"`

	Dividend      *float64 `json:"dividend"`
	DividendYield *float64 `json:"dividend_yield"`

	Timestamp Time `json:"timestamp"`
	Time      Time `json:"time"`
	IssueDate Time `json:"issue_date"`
}

// QuoteDetailData bundles the quote with its market session and tags.
type QuoteDetailData struct {
	Market *MarketStatus              `json:"market"`
	Quote  *QuoteDetail               `json:"quote"`
	Others map[string]json.RawMessage `json:"others"`
	Tags   []QuoteTag                 `json:"tags"`
}

// KlineData is the columnar kline payload: a column-name header plus
// positional rows. Use Bars to materialize typed records.
type KlineData struct {
	Symbol string              `json:"symbol"`
	Column []string            `json:"column"`
	Item   [][]json.RawMessage `json:"item"`
}

// KlineBar is one kline row keyed by the response's column header.
type KlineBar struct {
	Timestamp     Time     `json:"timestamp"`
	Volume        *float64 `json:"volume"`
	Open          *float64 `json:"open"`
	High          *float64 `json:"high"`
	Low           *float64 `json:"low"`
	Close         *float64 `json:"close"`
	Chg           *float64 `json:"chg"`
	Percent       *float64 `json:"percent"`
	TurnoverRate  *float64 `json:"turnoverrate"`
	Amount        *float64 `json:"amount"`
	PE            *float64 `json:"pe"`
	PB            *float64 `json:"pb"`
	PS            *float64 `json:"ps"`
	PCF           *float64 `json:"pcf"`
	MarketCapital *float64 `json:"market_capital"`
}

// Bars zips the column header with each positional row and decodes the
// result. Rows shorter than the header are padded with absent values.
func (d *KlineData) Bars() ([]KlineBar, error) {
	if len(d.Column) == 0 || len(d.Item) == 0 {
		return nil, nil
	}

	bars := make([]KlineBar, 0, len(d.Item))

	for i, row := range d.Item {
		rowMap := make(map[string]json.RawMessage, len(d.Column))

		for idx, col := range d.Column {
			if idx < len(row) {
				rowMap[col] = row[idx]
			}
		}

		encoded, err := json.Marshal(rowMap)
		if err != nil {
			return nil, fmt.Errorf("encoding kline row %d: %w", i, err)
		}

		var bar KlineBar
		if err := json.Unmarshal(encoded, &bar); err != nil {
			return nil, fmt.Errorf("decoding kline row %d: %w", i, err)
		}

		bars = append(bars, bar)
	}

	return bars, nil
}

// OrderBookLevel is one price level of the order book.
type OrderBookLevel struct {
	Price *float64 `json:"price"`
	Count *float64 `json:"count"`
}

// Pankou is a real-time order book snapshot. The upstream format uses flat
// keys (bp1/bc1 ... sp10/sc10); decoding normalizes them into Bids and Asks.
type Pankou struct {
	Symbol    string
	Timestamp Time
	Current   *float64

	BuyPct  *float64
	SellPct *float64
	Diff    *float64
	Ratio   *float64

	Bids []OrderBookLevel
	Asks []OrderBookLevel

	Extra map[string]json.RawMessage
}

const orderBookDepth = 10

// UnmarshalJSON promotes the flat bp/bc and sp/sc keys into level slices.
func (p *Pankou) UnmarshalJSON(b []byte) error {
	obj := rawObject{}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}

	p.Symbol = obj.str("symbol")
	p.Timestamp = obj.time("timestamp")
	p.Current = obj.float("current")
	p.BuyPct = obj.float("buypct")
	p.SellPct = obj.float("sellpct")
	p.Diff = obj.float("diff")
	p.Ratio = obj.float("ratio")

	claimed := []string{"symbol", "timestamp", "current", "buypct", "sellpct", "diff", "ratio"}

	p.Bids, claimed = extractLevels(obj, "bp", "bc", claimed)
	p.Asks, claimed = extractLevels(obj, "sp", "sc", claimed)
	p.Extra = obj.rest(claimed...)

	return nil
}

func extractLevels(obj rawObject, pricePrefix, countPrefix string, claimed []string) ([]OrderBookLevel, []string) {
	var levels []OrderBookLevel

	for i := 1; i <= orderBookDepth; i++ {
		priceKey := fmt.Sprintf("%s%d", pricePrefix, i)
		countKey := fmt.Sprintf("%s%d", countPrefix, i)
		claimed = append(claimed, priceKey, countKey)

		price := obj.float(priceKey)
		count := obj.float(countKey)

		if emptyLevel(price) && emptyLevel(count) {
			continue
		}

		levels = append(levels, OrderBookLevel{Price: price, Count: count})
	}

	return levels, claimed
}

func emptyLevel(v *float64) bool {
	return v == nil || *v == 0
}
