package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/liqiongyu/xueqiu-api/internal/http"
	"github.com/liqiongyu/xueqiu-api/pkg/xueqiu"
)

// Eastmoney datacenter endpoint. Not Xueqiu: no cookie, no envelope check.
const eastmoneyDatacenterURL = "https://datacenter-web.eastmoney.com/api/data/v1/get"

// eastmoneyConvertibleBondQuoteColumns selects the live quote fields joined
// to the convertible bond listing report.
const eastmoneyConvertibleBondQuoteColumns = "f2~01~CONVERT_STOCK_CODE~CONVERT_STOCK_PRICE," +
	"f235~10~SECURITY_CODE~TRANSFER_PRICE," +
	"f236~10~SECURITY_CODE~TRANSFER_VALUE," +
	"f2~10~SECURITY_CODE~CURRENT_BOND_PRICE," +
	"f237~10~SECURITY_CODE~TRANSFER_PREMIUM_RATIO," +
	"f239~10~SECURITY_CODE~RESALE_TRIG_PRICE," +
	"f240~10~SECURITY_CODE~REDEEM_TRIG_PRICE," +
	"f23~01~CONVERT_STOCK_CODE~PBV_RATIO"

// EastmoneyClient implements xueqiu.EastmoneyClient.
type EastmoneyClient struct {
	httpClient *http.Client
}

// NewEastmoneyClient creates a new Eastmoney datacenter client.
func NewEastmoneyClient(httpClient *http.Client) *EastmoneyClient {
	return &EastmoneyClient{httpClient: httpClient}
}

// ConvertibleBond implements xueqiu.EastmoneyClient.ConvertibleBond.
func (c *EastmoneyClient) ConvertibleBond(ctx context.Context, pageSize, pageNumber int) (*xueqiu.EastmoneyResponse, error) {
	query := url.Values{
		"pageSize":     []string{intStr(pageSize)},
		"pageNumber":   []string{intStr(pageNumber)},
		"sortColumns":  []string{"PUBLIC_START_DATE"},
		"sortTypes":    []string{"-1"},
		"reportName":   []string{"RPT_BOND_CB_LIST"},
		"columns":      []string{"ALL"},
		"quoteColumns": []string{eastmoneyConvertibleBondQuoteColumns},
		"source":       []string{"WEB"},
		"client":       []string{"WEB"},
	}

	resp, err := c.httpClient.GetExternal(ctx, eastmoneyDatacenterURL, query)
	if err != nil {
		return nil, fmt.Errorf("fetching convertible bonds: %w", err)
	}

	var result xueqiu.EastmoneyResponse
	if err := xueqiu.DecodeInto(&result, resp.Body, resp.URL, "GET"); err != nil {
		return nil, err
	}

	return &result, nil
}
