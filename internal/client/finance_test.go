package client_test

import (
	"context"
	nethttp "net/http"
	"testing"

	"github.com/liqiongyu/xueqiu-api/pkg/xueqiu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinanceClient_CashFlow(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		query := r.URL.Query()
		assert.Equal(t, "/v5/stock/finance/cn/cash_flow.json", r.URL.Path)
		assert.Equal(t, "SH600519", query.Get("symbol"))
		assert.Equal(t, "10", query.Get("count"))
		assert.Empty(t, query.Get("type"))

		_, _ = w.Write([]byte(`{
			"data": {
				"quote_name": "贵州茅台",
				"currency": "CNY",
				"list": [
					{"report_date": 1711814400000, "report_name": "2024一季报", "ncf_from_oa": [91880000000.5, 0.12]}
				]
			},
			"error_code": 0,
			"error_description": ""
		}`))
	})

	resp, err := c.Finance().CashFlow(context.Background(), "SH600519", nil)
	require.NoError(t, err)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "贵州茅台", resp.Data.QuoteName)
	require.Len(t, resp.Data.Periods, 1)

	metric, ok := resp.Data.Periods[0].Metric("ncf_from_oa")
	require.True(t, ok)
	require.NotNil(t, metric.Value)
	assert.InDelta(t, 91880000000.5, *metric.Value, 0.01)
	require.NotNil(t, metric.YoY)
	assert.InDelta(t, 0.12, *metric.YoY, 0.0001)
}

func TestFinanceClient_IndicatorAnnals(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		query := r.URL.Query()
		assert.Equal(t, "/v5/stock/finance/cn/indicator.json", r.URL.Path)
		assert.Equal(t, "Q4", query.Get("type"))
		assert.Equal(t, "5", query.Get("count"))

		_, _ = w.Write([]byte(`{"data": {"quote_name": "贵州茅台", "list": []}, "error_code": 0, "error_description": ""}`))
	})

	_, err := c.Finance().Indicator(context.Background(), "SH600519", &xueqiu.StatementOptions{IsAnnals: true, Count: 5})
	require.NoError(t, err)
}

func TestFinanceClient_BalanceV2(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		query := r.URL.Query()
		assert.Equal(t, "/v5/stock/finance/us/balance.json", r.URL.Path)
		assert.Equal(t, "all", query.Get("type"))
		assert.Equal(t, "true", query.Get("is_detail"))
		assert.Equal(t, "10", query.Get("count"))

		_, _ = w.Write([]byte(`{"data": {"quote_name": "Apple", "items": []}, "error_code": 0, "error_description": ""}`))
	})

	resp, err := c.Finance().BalanceV2(context.Background(), "AAPL", &xueqiu.StatementV2Options{Region: "US"})
	require.NoError(t, err)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "Apple", resp.Data.QuoteName)
}

func TestFinanceClient_IncomeV2NoDetail(t *testing.T) {
	t.Parallel()

	isDetail := false

	c := newTestClient(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		query := r.URL.Query()
		assert.Equal(t, "/v5/stock/finance/cn/income.json", r.URL.Path)
		assert.Equal(t, "Q4", query.Get("type"))
		assert.Equal(t, "false", query.Get("is_detail"))

		_, _ = w.Write([]byte(`{"data": {"list": []}, "error_code": 0, "error_description": ""}`))
	})

	_, err := c.Finance().IncomeV2(context.Background(), "SH600519", &xueqiu.StatementV2Options{
		Type:     "Q4",
		IsDetail: &isDetail,
	})
	require.NoError(t, err)
}

func TestFinanceClient_Business(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "/v5/stock/finance/cn/business.json", r.URL.Path)

		_, _ = w.Write([]byte(`{
			"data": {
				"quote_name": "贵州茅台",
				"list": [{
					"report_date": 1711814400000,
					"report_name": "2024一季报",
					"class_list": [{
						"class_standard": 1,
						"business_list": [{"project_announced_name": "茅台酒", "prime_operating_income": 43600000000, "income_ratio": 0.86}]
					}]
				}]
			},
			"error_code": 0,
			"error_description": ""
		}`))
	})

	resp, err := c.Finance().Business(context.Background(), "SH600519", nil)
	require.NoError(t, err)
	require.NotNil(t, resp.Data)
	require.Len(t, resp.Data.Periods, 1)
	require.Len(t, resp.Data.Periods[0].ClassList, 1)
	require.Len(t, resp.Data.Periods[0].ClassList[0].BusinessList, 1)
	assert.Equal(t, "茅台酒", resp.Data.Periods[0].ClassList[0].BusinessList[0].ProjectAnnouncedName)
}

func TestFinanceClient_ErrorEnvelope(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w nethttp.ResponseWriter, r *nethttp.Request) {
		_, _ = w.Write([]byte(`{"error_code": 400016, "error_description": "token expired"}`))
	})

	_, err := c.Finance().CashFlow(context.Background(), "SH600519", nil)
	require.Error(t, err)
	assert.True(t, xueqiu.IsAPIError(err, 400016))
}
