package xueqiu

import (
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// Default endpoints. Most stock-data endpoints live on the per-vertical
// subdomain; a handful of portfolio/cube/suggest endpoints live on the main
// domain and are addressed with absolute URLs.
const (
	DefaultStockBaseURL = "https://stock.xueqiu.com"
	DefaultMainBaseURL  = "https://xueqiu.com"
)

const (
	// DefaultTimeout is the per-request network timeout.
	DefaultTimeout = 10 * time.Second

	// DefaultRetryMax is the number of retries after the initial attempt.
	DefaultRetryMax = 2
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a xueqiu.Client.
//
// # Credentials
//
// Provide either Cookie (a pre-formatted Cookie header value, e.g.
// "xq_a_token=...; u=...") or Cookies (individual cookie name/value pairs).
// Cookie wins when both are set. The credential is read-only after
// construction and is attached per request only when the target host belongs
// to the Xueqiu domain family; requests routed to auxiliary providers via
// absolute URLs never carry it.
//
// # Retries and timeouts
//
// RetryMax counts retries after the initial attempt (so the budget is
// 1 + RetryMax requests). Zero means "use the default"; pass a negative
// value to disable retries entirely. There is no wall-clock deadline beyond
// the per-request Timeout; use the context to bound a whole call.
type Config struct {
	// Cookie is a pre-formatted Cookie header value.
	Cookie string
	// Cookies holds individual cookie name/value pairs; used when Cookie is empty.
	Cookies map[string]string

	// BaseURL for relative endpoint paths. Defaults to DefaultStockBaseURL.
	BaseURL string

	// Timeout is the per-request network timeout. Zero means DefaultTimeout.
	Timeout time.Duration

	// RetryMax is the retry count after the first attempt. Zero means
	// DefaultRetryMax; negative disables retries.
	RetryMax int

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Debug enables request/retry logging when a Logger is provided.
	Debug bool
	// Logger is an optional structured logger used by the transport.
	Logger Logger

	// HTTPClient optionally supplies a shared *http.Client (connection pool,
	// proxy settings). When nil the transport builds its own.
	HTTPClient *http.Client
}

// HasCredential reports whether any credential is configured.
func (c *Config) HasCredential() bool {
	return strings.TrimSpace(c.Cookie) != "" || len(c.Cookies) > 0
}

// ConfigFromEnv builds a Config from XUEQIU_* environment variables.
// Explicit fields set on the returned value take precedence over the
// environment, so callers typically do:
//
//	cfg := xueqiu.ConfigFromEnv()
//	cfg.RetryMax = 5
//	cli, err := xqclient.New(cfg)
//
// Recognized variables: XUEQIU_TOKEN or XUEQIU_COOKIE (credential),
// XUEQIU_BASE_URL, XUEQIU_TIMEOUT (float seconds), XUEQIU_MAX_RETRIES,
// XUEQIU_USER_AGENT, XUEQIU_DEBUG.
func ConfigFromEnv() *Config {
	return &Config{
		Cookie:    envCookie(),
		BaseURL:   os.Getenv("XUEQIU_BASE_URL"),
		Timeout:   envSeconds("XUEQIU_TIMEOUT"),
		RetryMax:  envInt("XUEQIU_MAX_RETRIES"),
		UserAgent: os.Getenv("XUEQIU_USER_AGENT"),
		Debug:     envBool("XUEQIU_DEBUG"),
	}
}

func envCookie() string {
	if v := strings.TrimSpace(os.Getenv("XUEQIU_TOKEN")); v != "" {
		return v
	}

	return strings.TrimSpace(os.Getenv("XUEQIU_COOKIE"))
}

func envSeconds(name string) time.Duration {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return 0
	}

	seconds, err := strconv.ParseFloat(v, 64)
	if err != nil || seconds <= 0 {
		return 0
	}

	return time.Duration(seconds * float64(time.Second))
}

func envInt(name string) int {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return 0
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}

	return n
}

func envBool(name string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(name))) {
	case "1", "true", "yes", "y", "on":
		return true
	default:
		return false
	}
}
