package http

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldAttachAuth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rawURL   string
		baseHost string
		want     bool
	}{
		{name: "relative path", rawURL: "/v5/stock/quote.json", baseHost: "stock.xueqiu.com", want: true},
		{name: "base host", rawURL: "https://stock.xueqiu.com/v5/stock/quote.json", baseHost: "stock.xueqiu.com", want: true},
		{name: "apex xueqiu", rawURL: "https://xueqiu.com/query/v1/suggest_stock.json", baseHost: "stock.xueqiu.com", want: true},
		{name: "xueqiu subdomain", rawURL: "https://api.xueqiu.com/cubes/nav_daily/all.json", baseHost: "stock.xueqiu.com", want: true},
		{name: "case insensitive", rawURL: "https://Stock.XUEQIU.com/x.json", baseHost: "stock.xueqiu.com", want: true},
		{name: "suffix trick", rawURL: "https://evilxueqiu.com/x.json", baseHost: "stock.xueqiu.com", want: false},
		{name: "csindex", rawURL: "https://www.csindex.com.cn/csindex-home/index-list/query-index-item", baseHost: "stock.xueqiu.com", want: false},
		{name: "danjuan", rawURL: "https://danjuanfunds.com/djapi/fund/detail/000001", baseHost: "stock.xueqiu.com", want: false},
		{name: "eastmoney", rawURL: "https://datacenter-web.eastmoney.com/api/data/v1/get", baseHost: "stock.xueqiu.com", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			u, err := url.Parse(tt.rawURL)
			require.NoError(t, err)

			assert.Equal(t, tt.want, shouldAttachAuth(u, tt.baseHost))
		})
	}
}

func TestRetryableStatus(t *testing.T) {
	t.Parallel()

	assert.True(t, retryableStatus(429))
	assert.True(t, retryableStatus(500))
	assert.True(t, retryableStatus(502))
	assert.True(t, retryableStatus(503))

	assert.False(t, retryableStatus(200))
	assert.False(t, retryableStatus(400))
	assert.False(t, retryableStatus(401))
	assert.False(t, retryableStatus(404))
	assert.False(t, retryableStatus(418))
}

func TestBackoff(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 200*time.Millisecond, backoff(0))
	assert.Equal(t, 400*time.Millisecond, backoff(1))
	assert.Equal(t, 800*time.Millisecond, backoff(2))
	assert.Equal(t, 3200*time.Millisecond, backoff(4))
	assert.Equal(t, 4*time.Second, backoff(5))
	assert.Equal(t, 4*time.Second, backoff(30))
	assert.Equal(t, 4*time.Second, backoff(63))
}

func TestParseRetryAfter(t *testing.T) {
	t.Parallel()

	d, ok := parseRetryAfter("3")
	assert.True(t, ok)
	assert.Equal(t, 3*time.Second, d)

	d, ok = parseRetryAfter("0.5")
	assert.True(t, ok)
	assert.Equal(t, 500*time.Millisecond, d)

	d, ok = parseRetryAfter("-2")
	assert.True(t, ok)
	assert.Equal(t, time.Duration(0), d)

	_, ok = parseRetryAfter("")
	assert.False(t, ok)

	_, ok = parseRetryAfter("Wed, 21 Oct 2015 07:28:00 GMT")
	assert.False(t, ok)
}
