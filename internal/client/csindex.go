package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/liqiongyu/xueqiu-api/internal/http"
	"github.com/liqiongyu/xueqiu-api/pkg/xueqiu"
)

// China Securities Index endpoints. Not Xueqiu: no cookie, no envelope check.
const (
	csindexIndexBasicInfoURL   = "https://www.csindex.com.cn/csindex-home/indexInfo/index-basic-info"
	csindexIndexDetailsDataURL = "https://www.csindex.com.cn/csindex-home/indexInfo/index-details-data"
	csindexIndexWeightTop10URL = "https://www.csindex.com.cn/csindex-home/index/weight/top10"
	csindexIndexPerfURL        = "https://www.csindex.com.cn/csindex-home/perf/index-perf"
)

// CSIndexClient implements xueqiu.CSIndexClient.
type CSIndexClient struct {
	httpClient *http.Client
}

// NewCSIndexClient creates a new CSIndex client.
func NewCSIndexClient(httpClient *http.Client) *CSIndexClient {
	return &CSIndexClient{httpClient: httpClient}
}

func (c *CSIndexClient) get(ctx context.Context, rawURL string, query url.Values) (*xueqiu.CSIndexResponse, error) {
	resp, err := c.httpClient.GetExternal(ctx, rawURL, query)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", rawURL, err)
	}

	var result xueqiu.CSIndexResponse
	if err := xueqiu.DecodeInto(&result, resp.Body, resp.URL, "GET"); err != nil {
		return nil, err
	}

	return &result, nil
}

// IndexBasicInfo implements xueqiu.CSIndexClient.IndexBasicInfo.
func (c *CSIndexClient) IndexBasicInfo(ctx context.Context, indexCode string) (*xueqiu.CSIndexResponse, error) {
	return c.get(ctx, csindexIndexBasicInfoURL+"/"+indexCode, nil)
}

// IndexDetailsData implements xueqiu.CSIndexClient.IndexDetailsData.
func (c *CSIndexClient) IndexDetailsData(ctx context.Context, indexCode string, fileLang int) (*xueqiu.CSIndexResponse, error) {
	if fileLang <= 0 {
		fileLang = 1
	}

	query := url.Values{
		"fileLang":  []string{intStr(fileLang)},
		"indexCode": []string{indexCode},
	}

	return c.get(ctx, csindexIndexDetailsDataURL, query)
}

// IndexWeightTop10 implements xueqiu.CSIndexClient.IndexWeightTop10.
func (c *CSIndexClient) IndexWeightTop10(ctx context.Context, indexCode string) (*xueqiu.CSIndexResponse, error) {
	return c.get(ctx, csindexIndexWeightTop10URL+"/"+indexCode, nil)
}

// IndexPerf implements xueqiu.CSIndexClient.IndexPerf. Dates are YYYYMMDD.
func (c *CSIndexClient) IndexPerf(ctx context.Context, indexCode, startDate, endDate string) (*xueqiu.CSIndexResponse, error) {
	query := url.Values{
		"indexCode": []string{indexCode},
		"startDate": []string{startDate},
		"endDate":   []string{endDate},
	}

	return c.get(ctx, csindexIndexPerfURL, query)
}
