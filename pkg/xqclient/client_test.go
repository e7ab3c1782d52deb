package xqclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/liqiongyu/xueqiu-api/pkg/xqclient"
	"github.com/liqiongyu/xueqiu-api/pkg/xueqiu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NilConfig(t *testing.T) {
	t.Parallel()

	client, err := xqclient.New(nil)
	require.ErrorIs(t, err, xueqiu.ErrConfigRequired)
	assert.Nil(t, client)
}

func TestNew_DefaultsWork(t *testing.T) {
	t.Parallel()

	client, err := xqclient.New(&xueqiu.Config{})
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.NotNil(t, client.Realtime())
	assert.NotNil(t, client.Finance())
	assert.NotNil(t, client.Cube())
	assert.NotNil(t, client.Danjuan())
}

func TestNewWithCookie(t *testing.T) {
	t.Parallel()

	client, err := xqclient.NewWithCookie("xq_a_token=abc")
	require.NoError(t, err)
	require.NotNil(t, client)
}

func TestNew_EndToEnd(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v5/stock/realtime/quotec.json", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"data": [{"symbol": "SH600519", "current": 1680.5}],
			"error_code": 0,
			"error_description": null
		}`))
	}))
	defer server.Close()

	client, err := xqclient.New(&xueqiu.Config{BaseURL: server.URL})
	require.NoError(t, err)

	resp, err := client.Realtime().Quotec(context.Background(), "SH600519")
	require.NoError(t, err)
	require.NotNil(t, resp.Data)

	quotes := *resp.Data
	require.Len(t, quotes, 1)
	assert.Equal(t, "SH600519", quotes[0].Symbol)
}

func TestNew_AuthedEndpointWithoutCookie(t *testing.T) {
	t.Parallel()

	client, err := xqclient.New(&xueqiu.Config{})
	require.NoError(t, err)

	_, err = client.Realtime().QuoteDetail(context.Background(), "SH600519")

	authErr := &xueqiu.AuthError{}
	require.ErrorAs(t, err, &authErr)
}
