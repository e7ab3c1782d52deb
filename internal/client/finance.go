package client

import (
	"context"
	"net/url"
	"strings"

	"github.com/liqiongyu/xueqiu-api/internal/http"
	"github.com/liqiongyu/xueqiu-api/pkg/xueqiu"
)

const (
	financeCashFlowPath  = "/v5/stock/finance/cn/cash_flow.json"
	financeIndicatorPath = "/v5/stock/finance/cn/indicator.json"
	financeBalancePath   = "/v5/stock/finance/cn/balance.json"
	financeIncomePath    = "/v5/stock/finance/cn/income.json"
	financeBusinessPath  = "/v5/stock/finance/cn/business.json"
)

const defaultStatementCount = 10

// FinanceClient implements xueqiu.FinanceClient.
type FinanceClient struct {
	httpClient *http.Client
}

// NewFinanceClient creates a new financial statements client.
func NewFinanceClient(httpClient *http.Client) *FinanceClient {
	return &FinanceClient{httpClient: httpClient}
}

// statementQuery builds the v1 query: annual-only series are requested by
// adding type=Q4.
func statementQuery(symbol string, opts *xueqiu.StatementOptions) url.Values {
	if opts == nil {
		opts = &xueqiu.StatementOptions{}
	}

	count := opts.Count
	if count <= 0 {
		count = defaultStatementCount
	}

	query := url.Values{
		"symbol": []string{symbol},
		"count":  []string{intStr(count)},
	}

	if opts.IsAnnals {
		query.Set("type", "Q4")
	}

	return query
}

// statementV2 builds the v2 path and query. The region is part of the path.
func statementV2(symbol, endpoint string, opts *xueqiu.StatementV2Options) (string, url.Values) {
	if opts == nil {
		opts = &xueqiu.StatementV2Options{}
	}

	count := opts.Count
	if count <= 0 {
		count = defaultStatementCount
	}

	region := strings.ToLower(strings.TrimSpace(opts.Region))
	if region == "" {
		region = "cn"
	}

	kind := opts.Type
	if kind == "" {
		kind = "all"
	}

	isDetail := true
	if opts.IsDetail != nil {
		isDetail = *opts.IsDetail
	}

	query := url.Values{
		"symbol":    []string{symbol},
		"type":      []string{kind},
		"is_detail": []string{boolStr(isDetail)},
		"count":     []string{intStr(count)},
	}

	return "/v5/stock/finance/" + region + "/" + endpoint + ".json", query
}

// CashFlow implements xueqiu.FinanceClient.CashFlow.
func (c *FinanceClient) CashFlow(ctx context.Context, symbol string, opts *xueqiu.StatementOptions) (*xueqiu.Response[xueqiu.FinanceStatement], error) {
	return getEnvelope[xueqiu.FinanceStatement](ctx, c.httpClient, financeCashFlowPath, statementQuery(symbol, opts))
}

// CashFlowV2 implements xueqiu.FinanceClient.CashFlowV2.
func (c *FinanceClient) CashFlowV2(ctx context.Context, symbol string, opts *xueqiu.StatementV2Options) (*xueqiu.Response[xueqiu.FinanceStatement], error) {
	path, query := statementV2(symbol, "cash_flow", opts)

	return getEnvelope[xueqiu.FinanceStatement](ctx, c.httpClient, path, query)
}

// Indicator implements xueqiu.FinanceClient.Indicator.
func (c *FinanceClient) Indicator(ctx context.Context, symbol string, opts *xueqiu.StatementOptions) (*xueqiu.Response[xueqiu.FinanceStatement], error) {
	return getEnvelope[xueqiu.FinanceStatement](ctx, c.httpClient, financeIndicatorPath, statementQuery(symbol, opts))
}

// IndicatorV2 implements xueqiu.FinanceClient.IndicatorV2.
func (c *FinanceClient) IndicatorV2(ctx context.Context, symbol string, opts *xueqiu.StatementV2Options) (*xueqiu.Response[xueqiu.FinanceStatement], error) {
	path, query := statementV2(symbol, "indicator", opts)

	return getEnvelope[xueqiu.FinanceStatement](ctx, c.httpClient, path, query)
}

// Balance implements xueqiu.FinanceClient.Balance.
func (c *FinanceClient) Balance(ctx context.Context, symbol string, opts *xueqiu.StatementOptions) (*xueqiu.Response[xueqiu.FinanceStatement], error) {
	return getEnvelope[xueqiu.FinanceStatement](ctx, c.httpClient, financeBalancePath, statementQuery(symbol, opts))
}

// BalanceV2 implements xueqiu.FinanceClient.BalanceV2.
func (c *FinanceClient) BalanceV2(ctx context.Context, symbol string, opts *xueqiu.StatementV2Options) (*xueqiu.Response[xueqiu.FinanceStatement], error) {
	path, query := statementV2(symbol, "balance", opts)

	return getEnvelope[xueqiu.FinanceStatement](ctx, c.httpClient, path, query)
}

// Income implements xueqiu.FinanceClient.Income.
func (c *FinanceClient) Income(ctx context.Context, symbol string, opts *xueqiu.StatementOptions) (*xueqiu.Response[xueqiu.FinanceStatement], error) {
	return getEnvelope[xueqiu.FinanceStatement](ctx, c.httpClient, financeIncomePath, statementQuery(symbol, opts))
}

// IncomeV2 implements xueqiu.FinanceClient.IncomeV2.
func (c *FinanceClient) IncomeV2(ctx context.Context, symbol string, opts *xueqiu.StatementV2Options) (*xueqiu.Response[xueqiu.FinanceStatement], error) {
	path, query := statementV2(symbol, "income", opts)

	return getEnvelope[xueqiu.FinanceStatement](ctx, c.httpClient, path, query)
}

// Business implements xueqiu.FinanceClient.Business.
func (c *FinanceClient) Business(ctx context.Context, symbol string, opts *xueqiu.StatementOptions) (*xueqiu.Response[xueqiu.BusinessStatement], error) {
	return getEnvelope[xueqiu.BusinessStatement](ctx, c.httpClient, financeBusinessPath, statementQuery(symbol, opts))
}
