package client

import (
	"context"
	"net/url"

	"github.com/liqiongyu/xueqiu-api/internal/http"
	"github.com/liqiongyu/xueqiu-api/pkg/xueqiu"
)

const (
	reportLatestPath          = "/stock/report/latest.json"
	reportEarningForecastPath = "/stock/report/earningforecast.json"
)

// ReportClient implements xueqiu.ReportClient.
type ReportClient struct {
	httpClient *http.Client
}

// NewReportClient creates a new analyst research client.
func NewReportClient(httpClient *http.Client) *ReportClient {
	return &ReportClient{httpClient: httpClient}
}

// Latest implements xueqiu.ReportClient.Latest.
func (c *ReportClient) Latest(ctx context.Context, symbol string) (*xueqiu.Response[xueqiu.InstitutionRatingData], error) {
	query := url.Values{"symbol": []string{symbol}}

	return getEnvelope[xueqiu.InstitutionRatingData](ctx, c.httpClient, reportLatestPath, query)
}

// EarningForecast implements xueqiu.ReportClient.EarningForecast.
func (c *ReportClient) EarningForecast(ctx context.Context, symbol string) (*xueqiu.Response[xueqiu.EarningForecastData], error) {
	query := url.Values{"symbol": []string{symbol}}

	return getEnvelope[xueqiu.EarningForecastData](ctx, c.httpClient, reportEarningForecastPath, query)
}
