package client_test

import (
	"context"
	nethttp "net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestF10Client_TopHolders(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		query := r.URL.Query()
		assert.Equal(t, "/v5/stock/f10/cn/top_holders.json", r.URL.Path)
		assert.Equal(t, "SH600519", query.Get("symbol"))
		assert.Equal(t, "0", query.Get("circula"))

		_, _ = w.Write([]byte(`{
			"data": {"items": [{"holder_name": "中国贵州茅台酒厂", "held_ratio": 54.0, "held_num": 678291955, "chg": 0}]},
			"error_code": 0,
			"error_description": ""
		}`))
	})

	resp, err := c.F10().TopHolders(context.Background(), "SH600519", 0)
	require.NoError(t, err)
	require.Len(t, resp.Data.Items, 1)
	assert.Equal(t, "中国贵州茅台酒厂", resp.Data.Items[0].ShareholderName)
}

func TestF10Client_TopHoldersClampsCircula(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("circula"))

		_, _ = w.Write([]byte(`{"data": {"items": []}, "error_code": 0, "error_description": ""}`))
	})

	_, err := c.F10().TopHolders(context.Background(), "SH600519", 7)
	require.NoError(t, err)
}

func TestF10Client_BonusDefaults(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		query := r.URL.Query()
		assert.Equal(t, "/v5/stock/f10/cn/bonus.json", r.URL.Path)
		assert.Equal(t, "1", query.Get("page"))
		assert.Equal(t, "10", query.Get("size"))

		_, _ = w.Write([]byte(`{
			"data": {"items": [{"dividend_year": "2023", "plan_explain": "10派30"}]},
			"error_code": 0,
			"error_description": ""
		}`))
	})

	resp, err := c.F10().Bonus(context.Background(), "SH600519", nil)
	require.NoError(t, err)
	require.Len(t, resp.Data.Items, 1)
	assert.Equal(t, "2023", resp.Data.Items[0].DividendYear)
}

func TestF10Client_IndustryCompareDefaultType(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		query := r.URL.Query()
		assert.Equal(t, "/v5/stock/f10/cn/industry/compare.json", r.URL.Path)
		assert.Equal(t, "single", query.Get("type"))

		_, _ = w.Write([]byte(`{
			"data": {"ind_name": "白酒", "ind_code": "S6106", "items": []},
			"error_code": 0,
			"error_description": ""
		}`))
	})

	resp, err := c.F10().IndustryCompare(context.Background(), "SH600519", "")
	require.NoError(t, err)
	assert.Equal(t, "白酒", resp.Data.IndustryName)
}

func TestF10Client_SharesChgDefaultCount(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "/v5/stock/f10/cn/shareschg.json", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("count"))

		_, _ = w.Write([]byte(`{"data": {"items": []}, "error_code": 0, "error_description": ""}`))
	})

	_, err := c.F10().SharesChg(context.Background(), "SH600519", 0)
	require.NoError(t, err)
}

func TestF10Client_Indicator(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "/v5/stock/f10/cn/indicator.json", r.URL.Path)

		_, _ = w.Write([]byte(`{
			"data": {"items": [{"report_date": "2024一季报", "total_revenue": 46485000000, "net_profit_atsopc": 24065000000}]},
			"error_code": 0,
			"error_description": ""
		}`))
	})

	resp, err := c.F10().Indicator(context.Background(), "SH600519")
	require.NoError(t, err)
	require.Len(t, resp.Data.Items, 1)
	assert.Equal(t, "2024一季报", resp.Data.Items[0].ReportName)
}

func TestPortfolioClient_List(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "/v5/stock/portfolio/list.json", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("system"))

		_, _ = w.Write([]byte(`{
			"data": {
				"stocks": [{"id": 1, "name": "全部", "category": 1}],
				"mutualFunds": [{"id": 9, "name": "基金"}]
			},
			"error_code": 0,
			"error_description": ""
		}`))
	})

	resp, err := c.Portfolio().List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, resp.Data.Stocks, 1)
	assert.Equal(t, "全部", resp.Data.Stocks[0].Name)
	require.Len(t, resp.Data.MutualFunds, 1)
}

func TestPortfolioClient_StocksDefaults(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		query := r.URL.Query()
		assert.Equal(t, "/v5/stock/portfolio/stock/list.json", r.URL.Path)
		assert.Equal(t, "-1", query.Get("pid"))
		assert.Equal(t, "1000", query.Get("size"))
		assert.Equal(t, "1", query.Get("category"))

		_, _ = w.Write([]byte(`{
			"data": {"pid": -1, "category": 1, "stocks": [{"symbol": "SH600519", "name": "贵州茅台"}]},
			"error_code": 0,
			"error_description": ""
		}`))
	})

	resp, err := c.Portfolio().Stocks(context.Background(), -1, nil)
	require.NoError(t, err)
	require.Len(t, resp.Data.Stocks, 1)
	assert.Equal(t, "SH600519", resp.Data.Stocks[0].Symbol)
}
