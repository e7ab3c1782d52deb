package xueqiu

import "context"

// KlineOptions controls the kline endpoint. The zero value requests daily
// bars ending now with the default indicator set.
type KlineOptions struct {
	// Period is the bar interval: "day", "week", "month", "quarter", "year",
	// "120m", "60m", "30m", "15m", "5m", "1m". Empty means "day".
	Period string
	// Count is the number of bars; zero means 284. The sign is normalized
	// before sending, so callers may pass either 100 or -100.
	Count int
	// BeginMs is the anchor timestamp in epoch milliseconds; zero means now.
	BeginMs int64
	// Indicator is the comma-joined indicator list; empty requests the full
	// default set.
	Indicator string
}

// StatementOptions controls the v1 financial-statement endpoints.
type StatementOptions struct {
	// IsAnnals restricts the series to annual reports.
	IsAnnals bool
	// Count is the number of periods; zero means 10.
	Count int
}

// StatementV2Options controls the v2 financial-statement endpoints.
type StatementV2Options struct {
	// Count is the number of periods; zero means 10.
	Count int
	// Region selects the listing region ("cn", "us", "hk"); empty means "cn".
	Region string
	// Type filters the period kind; empty means "all".
	Type string
	// IsDetail requests the detailed metric set; nil means true.
	IsDetail *bool
}

// PageOptions is a page/size pair for paginated endpoints. Zero fields take
// the endpoint's defaults.
type PageOptions struct {
	Page int
	Size int
}

// PortfolioStocksOptions controls the watchlist-stocks endpoint.
type PortfolioStocksOptions struct {
	// Size is the page size; zero means 1000.
	Size int
	// Category selects the watchlist kind; zero means 1 (stocks).
	Category int
}

// RealtimeClient provides quotes, order books, and kline series.
type RealtimeClient interface {
	// Quotec fetches lightweight quotes for one or more symbols. It is the
	// only Xueqiu endpoint that works without a cookie.
	Quotec(ctx context.Context, symbols ...string) (*Response[[]Quote], error)
	QuoteDetail(ctx context.Context, symbol string) (*Response[QuoteDetailData], error)
	Pankou(ctx context.Context, symbol string) (*Response[Pankou], error)
	Kline(ctx context.Context, symbol string, opts *KlineOptions) (*Response[KlineData], error)
}

// FinanceClient provides financial statements.
type FinanceClient interface {
	CashFlow(ctx context.Context, symbol string, opts *StatementOptions) (*Response[FinanceStatement], error)
	CashFlowV2(ctx context.Context, symbol string, opts *StatementV2Options) (*Response[FinanceStatement], error)
	Indicator(ctx context.Context, symbol string, opts *StatementOptions) (*Response[FinanceStatement], error)
	IndicatorV2(ctx context.Context, symbol string, opts *StatementV2Options) (*Response[FinanceStatement], error)
	Balance(ctx context.Context, symbol string, opts *StatementOptions) (*Response[FinanceStatement], error)
	BalanceV2(ctx context.Context, symbol string, opts *StatementV2Options) (*Response[FinanceStatement], error)
	Income(ctx context.Context, symbol string, opts *StatementOptions) (*Response[FinanceStatement], error)
	IncomeV2(ctx context.Context, symbol string, opts *StatementV2Options) (*Response[FinanceStatement], error)
	Business(ctx context.Context, symbol string, opts *StatementOptions) (*Response[BusinessStatement], error)
}

// ReportClient provides analyst research.
type ReportClient interface {
	Latest(ctx context.Context, symbol string) (*Response[InstitutionRatingData], error)
	EarningForecast(ctx context.Context, symbol string) (*Response[EarningForecastData], error)
}

// CapitalClient provides money-flow data.
type CapitalClient interface {
	Margin(ctx context.Context, symbol string, opts *PageOptions) (*Response[MarginData], error)
	Blocktrans(ctx context.Context, symbol string, opts *PageOptions) (*Response[BlocktransData], error)
	Assort(ctx context.Context, symbol string) (*Response[CapitalAssortData], error)
	Flow(ctx context.Context, symbol string) (*Response[CapitalFlowData], error)
	// History fetches daily net flow; count <= 0 means 20 days.
	History(ctx context.Context, symbol string, count int) (*Response[CapitalHistoryData], error)
}

// F10Client provides company-profile data.
type F10Client interface {
	SkholderChg(ctx context.Context, symbol string) (*Response[F10SkholderChangeData], error)
	Skholder(ctx context.Context, symbol string) (*Response[F10SkholderData], error)
	Industry(ctx context.Context, symbol string) (*Response[F10IndustryData], error)
	Holders(ctx context.Context, symbol string) (*Response[F10ShareholderCountData], error)
	Bonus(ctx context.Context, symbol string, opts *PageOptions) (*Response[F10BonusData], error)
	OrgHoldingChange(ctx context.Context, symbol string) (*Response[F10OrgHoldingChangeData], error)
	// IndustryCompare compares the company against its industry;
	// compareType "" means "single".
	IndustryCompare(ctx context.Context, symbol, compareType string) (*Response[F10IndustryCompareData], error)
	BusinessAnalysis(ctx context.Context, symbol string) (*Response[F10BusinessAnalysisData], error)
	// SharesChg fetches share-structure changes; count <= 0 means 5.
	SharesChg(ctx context.Context, symbol string, count int) (*Response[F10SharesChangeData], error)
	// TopHolders fetches top shareholders; circula 1 selects float-share
	// holders, 0 all holders. Values outside {0,1} default to 1.
	TopHolders(ctx context.Context, symbol string, circula int) (*Response[F10TopHoldersData], error)
	Indicator(ctx context.Context, symbol string) (*Response[F10MainIndicatorData], error)
}

// PortfolioClient provides the account's watchlists.
type PortfolioClient interface {
	List(ctx context.Context, system bool) (*Response[PortfolioListData], error)
	Stocks(ctx context.Context, pid int, opts *PortfolioStocksOptions) (*Response[PortfolioStocksData], error)
}

// CubeClient provides model-portfolio (cube) data from the main site.
type CubeClient interface {
	NavDaily(ctx context.Context, cubeSymbol string) (*Response[[]CubeNavSeries], error)
	// RebalancingHistory pages through rebalancing events; opts follows
	// count/page rather than page/size naming upstream, so PageOptions.Size
	// maps to count.
	RebalancingHistory(ctx context.Context, cubeSymbol string, opts *PageOptions) (*Response[CubeRebalancingHistoryData], error)
	RebalancingCurrent(ctx context.Context, cubeSymbol string) (*Response[CubeRebalancingCurrentData], error)
	Quote(ctx context.Context, code string) (*Response[map[string]CubeQuote], error)
}

// SuggestClient provides symbol search.
type SuggestClient interface {
	Stock(ctx context.Context, keyword string) (*SuggestStockResponse, error)
}

// CSIndexClient provides China Securities Index endpoints. These do not
// require Xueqiu auth and bypass envelope error checking.
type CSIndexClient interface {
	IndexBasicInfo(ctx context.Context, indexCode string) (*CSIndexResponse, error)
	// IndexDetailsData fetches index documents; fileLang <= 0 means 1.
	IndexDetailsData(ctx context.Context, indexCode string, fileLang int) (*CSIndexResponse, error)
	IndexWeightTop10(ctx context.Context, indexCode string) (*CSIndexResponse, error)
	// IndexPerf fetches performance between two dates, formatted YYYYMMDD.
	IndexPerf(ctx context.Context, indexCode, startDate, endDate string) (*CSIndexResponse, error)
}

// DanjuanClient provides Danjuan fund endpoints. No Xueqiu auth.
type DanjuanClient interface {
	FundDetail(ctx context.Context, fundCode string) (*DanjuanResponse, error)
	FundInfo(ctx context.Context, fundCode string) (*DanjuanResponse, error)
	// FundGrowth fetches the growth series; day "" means "ty" (this year).
	FundGrowth(ctx context.Context, fundCode, day string) (*DanjuanResponse, error)
	FundNavHistory(ctx context.Context, fundCode string, opts *PageOptions) (*DanjuanResponse, error)
	FundAchievement(ctx context.Context, fundCode string) (*DanjuanResponse, error)
	FundAsset(ctx context.Context, fundCode string) (*DanjuanResponse, error)
	// FundManager fetches manager history; postStatus 1 selects current
	// managers. Values <= 0 default to 1.
	FundManager(ctx context.Context, fundCode string, postStatus int) (*DanjuanResponse, error)
	FundTradeDate(ctx context.Context, fundCode string) (*DanjuanResponse, error)
	FundDerived(ctx context.Context, fundCode string) (*DanjuanResponse, error)
}

// EastmoneyClient provides Eastmoney datacenter endpoints. No Xueqiu auth.
type EastmoneyClient interface {
	ConvertibleBond(ctx context.Context, pageSize, pageNumber int) (*EastmoneyResponse, error)
}

// MarketDataClients groups the stock.xueqiu.com endpoint families.
type MarketDataClients interface {
	Realtime() RealtimeClient
	Finance() FinanceClient
	Report() ReportClient
	Capital() CapitalClient
	F10() F10Client
	Portfolio() PortfolioClient
}

// MainSiteClients groups the xueqiu.com endpoint families.
type MainSiteClients interface {
	Cube() CubeClient
	Suggest() SuggestClient
}

// ExternalClients groups the non-Xueqiu data sources.
type ExternalClients interface {
	CSIndex() CSIndexClient
	Danjuan() DanjuanClient
	Eastmoney() EastmoneyClient
}

// Client is the full typed Xueqiu client.
type Client interface {
	MarketDataClients
	MainSiteClients
	ExternalClients
}
