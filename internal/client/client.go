// Package client implements the typed endpoint families on top of the
// transport in internal/http.
package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/liqiongyu/xueqiu-api/internal/http"
	"github.com/liqiongyu/xueqiu-api/pkg/xueqiu"
)

// Client implements the xueqiu.Client interface.
type Client struct {
	httpClient *http.Client
	logger     xueqiu.Logger

	realtime  xueqiu.RealtimeClient
	finance   xueqiu.FinanceClient
	report    xueqiu.ReportClient
	capital   xueqiu.CapitalClient
	f10       xueqiu.F10Client
	portfolio xueqiu.PortfolioClient
	cube      xueqiu.CubeClient
	suggest   xueqiu.SuggestClient
	csindex   xueqiu.CSIndexClient
	danjuan   xueqiu.DanjuanClient
	eastmoney xueqiu.EastmoneyClient
}

// New creates a client on top of an already-configured transport.
func New(httpClient *http.Client, logger xueqiu.Logger) *Client {
	client := &Client{
		httpClient: httpClient,
		logger:     logger,
	}

	client.realtime = NewRealtimeClient(httpClient)
	client.finance = NewFinanceClient(httpClient)
	client.report = NewReportClient(httpClient)
	client.capital = NewCapitalClient(httpClient)
	client.f10 = NewF10Client(httpClient)
	client.portfolio = NewPortfolioClient(httpClient)
	client.cube = NewCubeClient(httpClient)
	client.suggest = NewSuggestClient(httpClient)
	client.csindex = NewCSIndexClient(httpClient)
	client.danjuan = NewDanjuanClient(httpClient)
	client.eastmoney = NewEastmoneyClient(httpClient)

	return client
}

func (c *Client) Realtime() xueqiu.RealtimeClient   { return c.realtime }
func (c *Client) Finance() xueqiu.FinanceClient     { return c.finance }
func (c *Client) Report() xueqiu.ReportClient       { return c.report }
func (c *Client) Capital() xueqiu.CapitalClient     { return c.capital }
func (c *Client) F10() xueqiu.F10Client             { return c.f10 }
func (c *Client) Portfolio() xueqiu.PortfolioClient { return c.portfolio }
func (c *Client) Cube() xueqiu.CubeClient           { return c.cube }
func (c *Client) Suggest() xueqiu.SuggestClient     { return c.suggest }
func (c *Client) CSIndex() xueqiu.CSIndexClient     { return c.csindex }
func (c *Client) Danjuan() xueqiu.DanjuanClient     { return c.danjuan }
func (c *Client) Eastmoney() xueqiu.EastmoneyClient { return c.eastmoney }

// getEnvelope fetches an authed, envelope-checked endpoint and decodes it.
func getEnvelope[T any](ctx context.Context, httpClient *http.Client, path string, query url.Values) (*xueqiu.Response[T], error) {
	resp, err := httpClient.GetAuthed(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", path, err)
	}

	return xueqiu.DecodeResponse[T](resp.Body, resp.URL, "GET")
}

// getEnvelopeOpen is getEnvelope for the few endpoints usable without a
// credential.
func getEnvelopeOpen[T any](ctx context.Context, httpClient *http.Client, path string, query url.Values) (*xueqiu.Response[T], error) {
	resp, err := httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", path, err)
	}

	return xueqiu.DecodeResponse[T](resp.Body, resp.URL, "GET")
}

func boolStr(v bool) string {
	if v {
		return "true"
	}

	return "false"
}

func intStr(v int) string {
	return strconv.Itoa(v)
}

func intStr64(v int64) string {
	return strconv.FormatInt(v, 10)
}
