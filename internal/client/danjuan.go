package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/liqiongyu/xueqiu-api/internal/http"
	"github.com/liqiongyu/xueqiu-api/pkg/xueqiu"
)

// Danjuan fund endpoints. Not Xueqiu: no cookie, no envelope check.
const (
	danjuanFundDetailURL      = "https://danjuanfunds.com/djapi/fund/detail"
	danjuanFundInfoURL        = "https://danjuanfunds.com/djapi/fund"
	danjuanFundGrowthURL      = "https://danjuanfunds.com/djapi/fund/growth"
	danjuanFundNavHistoryURL  = "https://danjuanfunds.com/djapi/fund/nav/history"
	danjuanFundAchievementURL = "https://danjuanfunds.com/djapi/fundx/base/fund/achievement"
	danjuanFundAssetURL       = "https://danjuanfunds.com/djapi/fund/asset"
	danjuanFundManagerURL     = "https://danjuanfunds.com/djapi/fund/manager"
	danjuanFundTradeDateURL   = "https://danjuanfunds.com/djapi/fund/order/trade_date"
	danjuanFundDerivedURL     = "https://danjuanfunds.com/djapi/fund/derived"
)

const (
	defaultGrowthDay      = "ty"
	defaultNavHistorySize = 10
	defaultPostStatus     = 1
)

// DanjuanClient implements xueqiu.DanjuanClient.
type DanjuanClient struct {
	httpClient *http.Client
}

// NewDanjuanClient creates a new Danjuan fund client.
func NewDanjuanClient(httpClient *http.Client) *DanjuanClient {
	return &DanjuanClient{httpClient: httpClient}
}

func (c *DanjuanClient) get(ctx context.Context, rawURL string, query url.Values) (*xueqiu.DanjuanResponse, error) {
	resp, err := c.httpClient.GetExternal(ctx, rawURL, query)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", rawURL, err)
	}

	var result xueqiu.DanjuanResponse
	if err := xueqiu.DecodeInto(&result, resp.Body, resp.URL, "GET"); err != nil {
		return nil, err
	}

	return &result, nil
}

// FundDetail implements xueqiu.DanjuanClient.FundDetail.
func (c *DanjuanClient) FundDetail(ctx context.Context, fundCode string) (*xueqiu.DanjuanResponse, error) {
	return c.get(ctx, danjuanFundDetailURL+"/"+fundCode, nil)
}

// FundInfo implements xueqiu.DanjuanClient.FundInfo.
func (c *DanjuanClient) FundInfo(ctx context.Context, fundCode string) (*xueqiu.DanjuanResponse, error) {
	return c.get(ctx, danjuanFundInfoURL+"/"+fundCode, nil)
}

// FundGrowth implements xueqiu.DanjuanClient.FundGrowth.
func (c *DanjuanClient) FundGrowth(ctx context.Context, fundCode, day string) (*xueqiu.DanjuanResponse, error) {
	if day == "" {
		day = defaultGrowthDay
	}

	query := url.Values{"day": []string{day}}

	return c.get(ctx, danjuanFundGrowthURL+"/"+fundCode, query)
}

// FundNavHistory implements xueqiu.DanjuanClient.FundNavHistory.
func (c *DanjuanClient) FundNavHistory(ctx context.Context, fundCode string, opts *xueqiu.PageOptions) (*xueqiu.DanjuanResponse, error) {
	if opts == nil {
		opts = &xueqiu.PageOptions{}
	}

	page := opts.Page
	if page <= 0 {
		page = 1
	}

	size := opts.Size
	if size <= 0 {
		size = defaultNavHistorySize
	}

	query := url.Values{
		"page": []string{intStr(page)},
		"size": []string{intStr(size)},
	}

	return c.get(ctx, danjuanFundNavHistoryURL+"/"+fundCode, query)
}

// FundAchievement implements xueqiu.DanjuanClient.FundAchievement.
func (c *DanjuanClient) FundAchievement(ctx context.Context, fundCode string) (*xueqiu.DanjuanResponse, error) {
	return c.get(ctx, danjuanFundAchievementURL+"/"+fundCode, nil)
}

// FundAsset implements xueqiu.DanjuanClient.FundAsset.
func (c *DanjuanClient) FundAsset(ctx context.Context, fundCode string) (*xueqiu.DanjuanResponse, error) {
	query := url.Values{"fund_code": []string{fundCode}}

	return c.get(ctx, danjuanFundAssetURL, query)
}

// FundManager implements xueqiu.DanjuanClient.FundManager.
func (c *DanjuanClient) FundManager(ctx context.Context, fundCode string, postStatus int) (*xueqiu.DanjuanResponse, error) {
	if postStatus <= 0 {
		postStatus = defaultPostStatus
	}

	query := url.Values{
		"fund_code":   []string{fundCode},
		"post_status": []string{intStr(postStatus)},
	}

	return c.get(ctx, danjuanFundManagerURL, query)
}

// FundTradeDate implements xueqiu.DanjuanClient.FundTradeDate. This endpoint
// keys the fund code as fd_code.
func (c *DanjuanClient) FundTradeDate(ctx context.Context, fundCode string) (*xueqiu.DanjuanResponse, error) {
	query := url.Values{"fd_code": []string{fundCode}}

	return c.get(ctx, danjuanFundTradeDateURL, query)
}

// FundDerived implements xueqiu.DanjuanClient.FundDerived.
func (c *DanjuanClient) FundDerived(ctx context.Context, fundCode string) (*xueqiu.DanjuanResponse, error) {
	return c.get(ctx, danjuanFundDerivedURL+"/"+fundCode, nil)
}
