package client_test

import (
	"context"
	nethttp "net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSIndexClient_IndexBasicInfo(t *testing.T) {
	t.Parallel()

	c, fake := newFakeClient(t, func(r *nethttp.Request) (int, string) {
		return 200, `{"code": "200", "data": {"indexCode": "000300", "indexName": "沪深300"}}`
	})

	resp, err := c.CSIndex().IndexBasicInfo(context.Background(), "000300")
	require.NoError(t, err)

	req := fake.lastRequest(t)
	assert.Equal(t, "www.csindex.com.cn", req.URL.Hostname())
	assert.Equal(t, "/csindex-home/indexInfo/index-basic-info/000300", req.URL.Path)
	assert.Empty(t, req.Header.Get("Cookie"))

	assert.JSONEq(t, `{"indexCode": "000300", "indexName": "沪深300"}`, string(resp.Data))
	assert.Contains(t, resp.Extra, "code")
}

func TestCSIndexClient_IndexPerf(t *testing.T) {
	t.Parallel()

	c, fake := newFakeClient(t, func(r *nethttp.Request) (int, string) {
		return 200, `{"data": []}`
	})

	_, err := c.CSIndex().IndexPerf(context.Background(), "000300", "20240101", "20240331")
	require.NoError(t, err)

	req := fake.lastRequest(t)
	query := req.URL.Query()
	assert.Equal(t, "/csindex-home/perf/index-perf", req.URL.Path)
	assert.Equal(t, "000300", query.Get("indexCode"))
	assert.Equal(t, "20240101", query.Get("startDate"))
	assert.Equal(t, "20240331", query.Get("endDate"))
}

func TestCSIndexClient_IndexDetailsDataDefaultsLang(t *testing.T) {
	t.Parallel()

	c, fake := newFakeClient(t, func(r *nethttp.Request) (int, string) {
		return 200, `{"data": {}}`
	})

	_, err := c.CSIndex().IndexDetailsData(context.Background(), "000300", 0)
	require.NoError(t, err)

	req := fake.lastRequest(t)
	assert.Equal(t, "1", req.URL.Query().Get("fileLang"))
	assert.Equal(t, "000300", req.URL.Query().Get("indexCode"))
}

func TestDanjuanClient_FundDetail(t *testing.T) {
	t.Parallel()

	c, fake := newFakeClient(t, func(r *nethttp.Request) (int, string) {
		return 200, `{"data": {"fd_code": "110011", "fd_name": "易方达中小盘"}, "result_code": 0}`
	})

	resp, err := c.Danjuan().FundDetail(context.Background(), "110011")
	require.NoError(t, err)

	req := fake.lastRequest(t)
	assert.Equal(t, "danjuanfunds.com", req.URL.Hostname())
	assert.Equal(t, "/djapi/fund/detail/110011", req.URL.Path)
	assert.Empty(t, req.Header.Get("Cookie"))

	assert.Contains(t, string(resp.Data), "110011")
	assert.Contains(t, resp.Extra, "result_code")
}

func TestDanjuanClient_FundNavHistoryDefaults(t *testing.T) {
	t.Parallel()

	c, fake := newFakeClient(t, func(r *nethttp.Request) (int, string) {
		return 200, `{"data": {"items": []}}`
	})

	_, err := c.Danjuan().FundNavHistory(context.Background(), "110011", nil)
	require.NoError(t, err)

	req := fake.lastRequest(t)
	assert.Equal(t, "/djapi/fund/nav/history/110011", req.URL.Path)
	assert.Equal(t, "1", req.URL.Query().Get("page"))
	assert.Equal(t, "10", req.URL.Query().Get("size"))
}

func TestDanjuanClient_FundTradeDateUsesFdCode(t *testing.T) {
	t.Parallel()

	c, fake := newFakeClient(t, func(r *nethttp.Request) (int, string) {
		return 200, `{"data": {}}`
	})

	_, err := c.Danjuan().FundTradeDate(context.Background(), "110011")
	require.NoError(t, err)

	req := fake.lastRequest(t)
	assert.Equal(t, "/djapi/fund/order/trade_date", req.URL.Path)
	assert.Equal(t, "110011", req.URL.Query().Get("fd_code"))
}

func TestEastmoneyClient_ConvertibleBond(t *testing.T) {
	t.Parallel()

	c, fake := newFakeClient(t, func(r *nethttp.Request) (int, string) {
		return 200, `{"success": true, "message": "ok", "result": {"pages": 30, "data": [{"SECURITY_CODE": "113679"}]}}`
	})

	resp, err := c.Eastmoney().ConvertibleBond(context.Background(), 50, 1)
	require.NoError(t, err)

	req := fake.lastRequest(t)
	query := req.URL.Query()
	assert.Equal(t, "datacenter-web.eastmoney.com", req.URL.Hostname())
	assert.Equal(t, "/api/data/v1/get", req.URL.Path)
	assert.Equal(t, "50", query.Get("pageSize"))
	assert.Equal(t, "1", query.Get("pageNumber"))
	assert.Equal(t, "RPT_BOND_CB_LIST", query.Get("reportName"))
	assert.Equal(t, "PUBLIC_START_DATE", query.Get("sortColumns"))
	assert.NotEmpty(t, query.Get("quoteColumns"))
	assert.Empty(t, req.Header.Get("Cookie"))

	require.NotNil(t, resp.Success)
	assert.True(t, *resp.Success)
	assert.Contains(t, string(resp.Result), "113679")
}
