package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/liqiongyu/xueqiu-api/internal/http"
	"github.com/liqiongyu/xueqiu-api/pkg/xueqiu"
)

const suggestStockURL = "https://xueqiu.com/query/v1/suggest_stock.json"

// SuggestClient implements xueqiu.SuggestClient.
type SuggestClient struct {
	httpClient *http.Client
}

// NewSuggestClient creates a new symbol-search client.
func NewSuggestClient(httpClient *http.Client) *SuggestClient {
	return &SuggestClient{httpClient: httpClient}
}

// Stock implements xueqiu.SuggestClient.Stock. An explicit success=false in
// the payload surfaces as an API error from the transport's envelope check.
func (c *SuggestClient) Stock(ctx context.Context, keyword string) (*xueqiu.SuggestStockResponse, error) {
	query := url.Values{"q": []string{keyword}}

	resp, err := c.httpClient.GetAuthed(ctx, suggestStockURL, query)
	if err != nil {
		return nil, fmt.Errorf("fetching stock suggestions: %w", err)
	}

	var result xueqiu.SuggestStockResponse
	if err := xueqiu.DecodeInto(&result, resp.Body, resp.URL, "GET"); err != nil {
		return nil, err
	}

	return &result, nil
}
