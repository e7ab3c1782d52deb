package client

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/liqiongyu/xueqiu-api/internal/http"
	"github.com/liqiongyu/xueqiu-api/pkg/xueqiu"
)

const (
	realtimeQuotecPath      = "/v5/stock/realtime/quotec.json"
	realtimePankouPath      = "/v5/stock/realtime/pankou.json"
	realtimeQuoteDetailPath = "/v5/stock/quote.json"
	klinePath               = "/v5/stock/chart/kline.json"
)

const (
	defaultKlinePeriod    = "day"
	defaultKlineCount     = 284
	defaultKlineIndicator = "kline,pe,pb,ps,pcf,market_capital,agt,ggt,balance"
)

// RealtimeClient implements xueqiu.RealtimeClient.
type RealtimeClient struct {
	httpClient *http.Client
}

// NewRealtimeClient creates a new realtime quotes client.
func NewRealtimeClient(httpClient *http.Client) *RealtimeClient {
	return &RealtimeClient{httpClient: httpClient}
}

// Quotec implements xueqiu.RealtimeClient.Quotec. It works without a cookie.
func (c *RealtimeClient) Quotec(ctx context.Context, symbols ...string) (*xueqiu.Response[[]xueqiu.Quote], error) {
	query := url.Values{"symbol": []string{strings.Join(symbols, ",")}}

	return getEnvelopeOpen[[]xueqiu.Quote](ctx, c.httpClient, realtimeQuotecPath, query)
}

// QuoteDetail implements xueqiu.RealtimeClient.QuoteDetail.
func (c *RealtimeClient) QuoteDetail(ctx context.Context, symbol string) (*xueqiu.Response[xueqiu.QuoteDetailData], error) {
	query := url.Values{
		"extend": []string{"detail"},
		"symbol": []string{symbol},
	}

	return getEnvelope[xueqiu.QuoteDetailData](ctx, c.httpClient, realtimeQuoteDetailPath, query)
}

// Pankou implements xueqiu.RealtimeClient.Pankou.
func (c *RealtimeClient) Pankou(ctx context.Context, symbol string) (*xueqiu.Response[xueqiu.Pankou], error) {
	query := url.Values{"symbol": []string{symbol}}

	return getEnvelope[xueqiu.Pankou](ctx, c.httpClient, realtimePankouPath, query)
}

// Kline implements xueqiu.RealtimeClient.Kline. The count is sent negated so
// the series ends at the begin timestamp, matching the web client.
func (c *RealtimeClient) Kline(ctx context.Context, symbol string, opts *xueqiu.KlineOptions) (*xueqiu.Response[xueqiu.KlineData], error) {
	if opts == nil {
		opts = &xueqiu.KlineOptions{}
	}

	period := opts.Period
	if period == "" {
		period = defaultKlinePeriod
	}

	count := opts.Count
	if count == 0 {
		count = defaultKlineCount
	}

	if count < 0 {
		count = -count
	}

	beginMs := opts.BeginMs
	if beginMs == 0 {
		beginMs = time.Now().UnixMilli()
	}

	indicator := opts.Indicator
	if indicator == "" {
		indicator = defaultKlineIndicator
	}

	query := url.Values{
		"symbol":    []string{symbol},
		"begin":     []string{intStr64(beginMs)},
		"period":    []string{period},
		"type":      []string{"before"},
		"count":     []string{intStr(-count)},
		"indicator": []string{indicator},
	}

	return getEnvelope[xueqiu.KlineData](ctx, c.httpClient, klinePath, query)
}
