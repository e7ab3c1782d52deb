package client

import (
	"context"
	"net/url"

	"github.com/liqiongyu/xueqiu-api/internal/http"
	"github.com/liqiongyu/xueqiu-api/pkg/xueqiu"
)

// Cube endpoints live on the main site, not the stock API host, so they are
// addressed absolutely. The host policy still attaches the cookie.
const (
	cubeNavDailyURL           = "https://xueqiu.com/cubes/nav_daily/all.json"
	cubeRebalancingHistoryURL = "https://xueqiu.com/cubes/rebalancing/history.json"
	cubeRebalancingCurrentURL = "https://xueqiu.com/cubes/rebalancing/current.json"
	cubeQuoteURL              = "https://xueqiu.com/cubes/quote.json"
)

const defaultRebalancingCount = 20

// CubeClient implements xueqiu.CubeClient.
type CubeClient struct {
	httpClient *http.Client
}

// NewCubeClient creates a new model-portfolio client.
func NewCubeClient(httpClient *http.Client) *CubeClient {
	return &CubeClient{httpClient: httpClient}
}

// NavDaily implements xueqiu.CubeClient.NavDaily.
func (c *CubeClient) NavDaily(ctx context.Context, cubeSymbol string) (*xueqiu.Response[[]xueqiu.CubeNavSeries], error) {
	query := url.Values{"cube_symbol": []string{cubeSymbol}}

	return getEnvelope[[]xueqiu.CubeNavSeries](ctx, c.httpClient, cubeNavDailyURL, query)
}

// RebalancingHistory implements xueqiu.CubeClient.RebalancingHistory.
func (c *CubeClient) RebalancingHistory(ctx context.Context, cubeSymbol string, opts *xueqiu.PageOptions) (*xueqiu.Response[xueqiu.CubeRebalancingHistoryData], error) {
	if opts == nil {
		opts = &xueqiu.PageOptions{}
	}

	count := opts.Size
	if count <= 0 {
		count = defaultRebalancingCount
	}

	page := opts.Page
	if page <= 0 {
		page = 1
	}

	query := url.Values{
		"cube_symbol": []string{cubeSymbol},
		"count":       []string{intStr(count)},
		"page":        []string{intStr(page)},
	}

	return getEnvelope[xueqiu.CubeRebalancingHistoryData](ctx, c.httpClient, cubeRebalancingHistoryURL, query)
}

// RebalancingCurrent implements xueqiu.CubeClient.RebalancingCurrent.
func (c *CubeClient) RebalancingCurrent(ctx context.Context, cubeSymbol string) (*xueqiu.Response[xueqiu.CubeRebalancingCurrentData], error) {
	query := url.Values{"cube_symbol": []string{cubeSymbol}}

	return getEnvelope[xueqiu.CubeRebalancingCurrentData](ctx, c.httpClient, cubeRebalancingCurrentURL, query)
}

// Quote implements xueqiu.CubeClient.Quote. The payload maps cube symbol to
// quote.
func (c *CubeClient) Quote(ctx context.Context, code string) (*xueqiu.Response[map[string]xueqiu.CubeQuote], error) {
	query := url.Values{"code": []string{code}}

	return getEnvelope[map[string]xueqiu.CubeQuote](ctx, c.httpClient, cubeQuoteURL, query)
}
