package client

import (
	"context"
	"net/url"

	"github.com/liqiongyu/xueqiu-api/internal/http"
	"github.com/liqiongyu/xueqiu-api/pkg/xueqiu"
)

const (
	f10SkholderChgPath      = "/v5/stock/f10/cn/skholderchg.json"
	f10SkholderPath         = "/v5/stock/f10/cn/skholder.json"
	f10IndustryPath         = "/v5/stock/f10/cn/industry.json"
	f10HoldersPath          = "/v5/stock/f10/cn/holders.json"
	f10BonusPath            = "/v5/stock/f10/cn/bonus.json"
	f10OrgHoldingChangePath = "/v5/stock/f10/cn/org_holding/change.json"
	f10IndustryComparePath  = "/v5/stock/f10/cn/industry/compare.json"
	f10BusinessAnalysisPath = "/v5/stock/f10/cn/business_analysis.json"
	f10SharesChgPath        = "/v5/stock/f10/cn/shareschg.json"
	f10TopHoldersPath       = "/v5/stock/f10/cn/top_holders.json"
	f10IndicatorPath        = "/v5/stock/f10/cn/indicator.json"
)

const (
	defaultBonusSize       = 10
	defaultSharesChgCount  = 5
	defaultCompareType     = "single"
	defaultTopHoldersFloat = 1
)

// F10Client implements xueqiu.F10Client.
type F10Client struct {
	httpClient *http.Client
}

// NewF10Client creates a new company-profile client.
func NewF10Client(httpClient *http.Client) *F10Client {
	return &F10Client{httpClient: httpClient}
}

func symbolQuery(symbol string) url.Values {
	return url.Values{"symbol": []string{symbol}}
}

// SkholderChg implements xueqiu.F10Client.SkholderChg.
func (c *F10Client) SkholderChg(ctx context.Context, symbol string) (*xueqiu.Response[xueqiu.F10SkholderChangeData], error) {
	return getEnvelope[xueqiu.F10SkholderChangeData](ctx, c.httpClient, f10SkholderChgPath, symbolQuery(symbol))
}

// Skholder implements xueqiu.F10Client.Skholder.
func (c *F10Client) Skholder(ctx context.Context, symbol string) (*xueqiu.Response[xueqiu.F10SkholderData], error) {
	return getEnvelope[xueqiu.F10SkholderData](ctx, c.httpClient, f10SkholderPath, symbolQuery(symbol))
}

// Industry implements xueqiu.F10Client.Industry.
func (c *F10Client) Industry(ctx context.Context, symbol string) (*xueqiu.Response[xueqiu.F10IndustryData], error) {
	return getEnvelope[xueqiu.F10IndustryData](ctx, c.httpClient, f10IndustryPath, symbolQuery(symbol))
}

// Holders implements xueqiu.F10Client.Holders.
func (c *F10Client) Holders(ctx context.Context, symbol string) (*xueqiu.Response[xueqiu.F10ShareholderCountData], error) {
	return getEnvelope[xueqiu.F10ShareholderCountData](ctx, c.httpClient, f10HoldersPath, symbolQuery(symbol))
}

// Bonus implements xueqiu.F10Client.Bonus.
func (c *F10Client) Bonus(ctx context.Context, symbol string, opts *xueqiu.PageOptions) (*xueqiu.Response[xueqiu.F10BonusData], error) {
	return getEnvelope[xueqiu.F10BonusData](ctx, c.httpClient, f10BonusPath, pagedQuery(symbol, opts, defaultBonusSize))
}

// OrgHoldingChange implements xueqiu.F10Client.OrgHoldingChange.
func (c *F10Client) OrgHoldingChange(ctx context.Context, symbol string) (*xueqiu.Response[xueqiu.F10OrgHoldingChangeData], error) {
	return getEnvelope[xueqiu.F10OrgHoldingChangeData](ctx, c.httpClient, f10OrgHoldingChangePath, symbolQuery(symbol))
}

// IndustryCompare implements xueqiu.F10Client.IndustryCompare.
func (c *F10Client) IndustryCompare(ctx context.Context, symbol, compareType string) (*xueqiu.Response[xueqiu.F10IndustryCompareData], error) {
	if compareType == "" {
		compareType = defaultCompareType
	}

	query := url.Values{
		"type":   []string{compareType},
		"symbol": []string{symbol},
	}

	return getEnvelope[xueqiu.F10IndustryCompareData](ctx, c.httpClient, f10IndustryComparePath, query)
}

// BusinessAnalysis implements xueqiu.F10Client.BusinessAnalysis.
func (c *F10Client) BusinessAnalysis(ctx context.Context, symbol string) (*xueqiu.Response[xueqiu.F10BusinessAnalysisData], error) {
	return getEnvelope[xueqiu.F10BusinessAnalysisData](ctx, c.httpClient, f10BusinessAnalysisPath, symbolQuery(symbol))
}

// SharesChg implements xueqiu.F10Client.SharesChg.
func (c *F10Client) SharesChg(ctx context.Context, symbol string, count int) (*xueqiu.Response[xueqiu.F10SharesChangeData], error) {
	if count <= 0 {
		count = defaultSharesChgCount
	}

	query := url.Values{
		"symbol": []string{symbol},
		"count":  []string{intStr(count)},
	}

	return getEnvelope[xueqiu.F10SharesChangeData](ctx, c.httpClient, f10SharesChgPath, query)
}

// TopHolders implements xueqiu.F10Client.TopHolders.
func (c *F10Client) TopHolders(ctx context.Context, symbol string, circula int) (*xueqiu.Response[xueqiu.F10TopHoldersData], error) {
	if circula != 0 && circula != 1 {
		circula = defaultTopHoldersFloat
	}

	query := url.Values{
		"symbol":  []string{symbol},
		"circula": []string{intStr(circula)},
	}

	return getEnvelope[xueqiu.F10TopHoldersData](ctx, c.httpClient, f10TopHoldersPath, query)
}

// Indicator implements xueqiu.F10Client.Indicator.
func (c *F10Client) Indicator(ctx context.Context, symbol string) (*xueqiu.Response[xueqiu.F10MainIndicatorData], error) {
	return getEnvelope[xueqiu.F10MainIndicatorData](ctx, c.httpClient, f10IndicatorPath, symbolQuery(symbol))
}
