package xqclient

import (
	"fmt"
	"strings"

	"github.com/liqiongyu/xueqiu-api/internal/client"
	internalhttp "github.com/liqiongyu/xueqiu-api/internal/http"
	"github.com/liqiongyu/xueqiu-api/pkg/xueqiu"
)

// New creates a new Xueqiu client from config.
func New(config *xueqiu.Config) (xueqiu.Client, error) {
	if config == nil {
		return nil, xueqiu.ErrConfigRequired
	}

	baseURL := normalizeBaseURL(config.BaseURL)

	opts := []internalhttp.Option{
		internalhttp.WithCookie(config.Cookie),
		internalhttp.WithCookies(config.Cookies),
		internalhttp.WithUserAgent(config.UserAgent),
		internalhttp.WithRetryMax(retryMax(config.RetryMax)),
		internalhttp.WithDebug(config.Debug),
	}

	if config.Timeout > 0 {
		opts = append(opts, internalhttp.WithTimeout(config.Timeout))
	}

	if config.Logger != nil {
		opts = append(opts, internalhttp.WithLogger(config.Logger))
	}

	if config.HTTPClient != nil {
		opts = append(opts, internalhttp.WithHTTPClient(config.HTTPClient))
	}

	transport, err := internalhttp.NewClient(baseURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return client.New(transport, config.Logger), nil
}

// NewFromEnv creates a client configured from XUEQIU_* environment variables.
func NewFromEnv() (xueqiu.Client, error) {
	return New(xueqiu.ConfigFromEnv())
}

// NewWithCookie creates a client with just a cookie header value.
func NewWithCookie(cookie string) (xueqiu.Client, error) {
	return New(&xueqiu.Config{Cookie: cookie})
}

func normalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return xueqiu.DefaultStockBaseURL
	}

	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return baseURL
}

// retryMax maps the Config convention (zero means default, negative disables)
// onto the transport's plain count.
func retryMax(configured int) int {
	switch {
	case configured == 0:
		return xueqiu.DefaultRetryMax
	case configured < 0:
		return 0
	default:
		return configured
	}
}
