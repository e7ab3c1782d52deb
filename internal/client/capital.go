package client

import (
	"context"
	"net/url"

	"github.com/liqiongyu/xueqiu-api/internal/http"
	"github.com/liqiongyu/xueqiu-api/pkg/xueqiu"
)

const (
	capitalMarginPath     = "/v5/stock/capital/margin.json"
	capitalBlocktransPath = "/v5/stock/capital/blocktrans.json"
	capitalAssortPath     = "/v5/stock/capital/assort.json"
	capitalFlowPath       = "/v5/stock/capital/flow.json"
	capitalHistoryPath    = "/v5/stock/capital/history.json"
)

const (
	defaultMarginSize     = 180
	defaultBlocktransSize = 30
	defaultHistoryCount   = 20
)

// CapitalClient implements xueqiu.CapitalClient.
type CapitalClient struct {
	httpClient *http.Client
}

// NewCapitalClient creates a new money-flow client.
func NewCapitalClient(httpClient *http.Client) *CapitalClient {
	return &CapitalClient{httpClient: httpClient}
}

func pagedQuery(symbol string, opts *xueqiu.PageOptions, defaultSize int) url.Values {
	if opts == nil {
		opts = &xueqiu.PageOptions{}
	}

	page := opts.Page
	if page <= 0 {
		page = 1
	}

	size := opts.Size
	if size <= 0 {
		size = defaultSize
	}

	return url.Values{
		"symbol": []string{symbol},
		"page":   []string{intStr(page)},
		"size":   []string{intStr(size)},
	}
}

// Margin implements xueqiu.CapitalClient.Margin.
func (c *CapitalClient) Margin(ctx context.Context, symbol string, opts *xueqiu.PageOptions) (*xueqiu.Response[xueqiu.MarginData], error) {
	return getEnvelope[xueqiu.MarginData](ctx, c.httpClient, capitalMarginPath, pagedQuery(symbol, opts, defaultMarginSize))
}

// Blocktrans implements xueqiu.CapitalClient.Blocktrans.
func (c *CapitalClient) Blocktrans(ctx context.Context, symbol string, opts *xueqiu.PageOptions) (*xueqiu.Response[xueqiu.BlocktransData], error) {
	return getEnvelope[xueqiu.BlocktransData](ctx, c.httpClient, capitalBlocktransPath, pagedQuery(symbol, opts, defaultBlocktransSize))
}

// Assort implements xueqiu.CapitalClient.Assort.
func (c *CapitalClient) Assort(ctx context.Context, symbol string) (*xueqiu.Response[xueqiu.CapitalAssortData], error) {
	query := url.Values{"symbol": []string{symbol}}

	return getEnvelope[xueqiu.CapitalAssortData](ctx, c.httpClient, capitalAssortPath, query)
}

// Flow implements xueqiu.CapitalClient.Flow.
func (c *CapitalClient) Flow(ctx context.Context, symbol string) (*xueqiu.Response[xueqiu.CapitalFlowData], error) {
	query := url.Values{"symbol": []string{symbol}}

	return getEnvelope[xueqiu.CapitalFlowData](ctx, c.httpClient, capitalFlowPath, query)
}

// History implements xueqiu.CapitalClient.History.
func (c *CapitalClient) History(ctx context.Context, symbol string, count int) (*xueqiu.Response[xueqiu.CapitalHistoryData], error) {
	if count <= 0 {
		count = defaultHistoryCount
	}

	query := url.Values{
		"symbol": []string{symbol},
		"count":  []string{intStr(count)},
	}

	return getEnvelope[xueqiu.CapitalHistoryData](ctx, c.httpClient, capitalHistoryPath, query)
}
