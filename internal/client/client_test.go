package client_test

import (
	nethttp "net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/liqiongyu/xueqiu-api/internal/client"
	internalhttp "github.com/liqiongyu/xueqiu-api/internal/http"
	"github.com/stretchr/testify/require"
)

// newTestClient serves handler behind an in-process server and returns a
// typed client authenticated with a throwaway cookie.
func newTestClient(t *testing.T, handler nethttp.HandlerFunc) *client.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	transport, err := internalhttp.NewClient(server.URL, internalhttp.WithCookie("xq_a_token=test"))
	require.NoError(t, err)

	return client.New(transport, nil)
}

// fakeTransport answers requests to absolute URLs in-process, recording them
// for assertions. Endpoint families addressed absolutely (cube, suggest,
// csindex, danjuan, eastmoney) cannot be pointed at an httptest server.
type fakeTransport struct {
	mu       sync.Mutex
	requests []*nethttp.Request
	respond  func(req *nethttp.Request) (status int, body string)
}

func (f *fakeTransport) RoundTrip(req *nethttp.Request) (*nethttp.Response, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	status, body := f.respond(req)

	rec := httptest.NewRecorder()
	rec.Header().Set("Content-Type", "application/json")
	rec.WriteHeader(status)
	_, _ = rec.WriteString(body)

	return rec.Result(), nil
}

func (f *fakeTransport) lastRequest(t *testing.T) *nethttp.Request {
	t.Helper()

	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests)

	return f.requests[len(f.requests)-1]
}

// newFakeClient builds a client whose HTTP layer is the fake transport.
func newFakeClient(t *testing.T, respond func(req *nethttp.Request) (int, string)) (*client.Client, *fakeTransport) {
	t.Helper()

	fake := &fakeTransport{respond: respond}

	transport, err := internalhttp.NewClient("https://stock.xueqiu.com",
		internalhttp.WithCookie("xq_a_token=test"),
		internalhttp.WithHTTPClient(&nethttp.Client{Transport: fake}),
	)
	require.NoError(t, err)

	return client.New(transport, nil), fake
}
