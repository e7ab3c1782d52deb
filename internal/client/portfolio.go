package client

import (
	"context"
	"net/url"

	"github.com/liqiongyu/xueqiu-api/internal/http"
	"github.com/liqiongyu/xueqiu-api/pkg/xueqiu"
)

const (
	portfolioListPath      = "/v5/stock/portfolio/list.json"
	portfolioStockListPath = "/v5/stock/portfolio/stock/list.json"
)

const (
	defaultPortfolioSize     = 1000
	defaultPortfolioCategory = 1
)

// PortfolioClient implements xueqiu.PortfolioClient.
type PortfolioClient struct {
	httpClient *http.Client
}

// NewPortfolioClient creates a new watchlist client.
func NewPortfolioClient(httpClient *http.Client) *PortfolioClient {
	return &PortfolioClient{httpClient: httpClient}
}

// List implements xueqiu.PortfolioClient.List.
func (c *PortfolioClient) List(ctx context.Context, system bool) (*xueqiu.Response[xueqiu.PortfolioListData], error) {
	query := url.Values{"system": []string{boolStr(system)}}

	return getEnvelope[xueqiu.PortfolioListData](ctx, c.httpClient, portfolioListPath, query)
}

// Stocks implements xueqiu.PortfolioClient.Stocks.
func (c *PortfolioClient) Stocks(ctx context.Context, pid int, opts *xueqiu.PortfolioStocksOptions) (*xueqiu.Response[xueqiu.PortfolioStocksData], error) {
	if opts == nil {
		opts = &xueqiu.PortfolioStocksOptions{}
	}

	size := opts.Size
	if size <= 0 {
		size = defaultPortfolioSize
	}

	category := opts.Category
	if category <= 0 {
		category = defaultPortfolioCategory
	}

	query := url.Values{
		"size":     []string{intStr(size)},
		"category": []string{intStr(category)},
		"pid":      []string{intStr(pid)},
	}

	return getEnvelope[xueqiu.PortfolioStocksData](ctx, c.httpClient, portfolioStockListPath, query)
}
