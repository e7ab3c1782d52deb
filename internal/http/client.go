// Package http implements the HTTP transport: URL resolution against the
// configured base, cookie attachment per host policy, and the shared retry
// budget covering transport failures, retryable statuses, and undecodable
// bodies.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/liqiongyu/xueqiu-api/pkg/xueqiu"
)

// maxErrorBody bounds how much of a failed response is carried in errors.
const maxErrorBody = 2000

// DefaultUserAgent is sent when the caller does not override it. Xueqiu
// rejects obviously non-browser agents on some endpoints.
const DefaultUserAgent = "Mozilla/5.0 (XueqiuAPI; +https://github.com/liqiongyu/xueqiu-api)"

// SleepFunc pauses between retry attempts. Implementations must honor
// context cancellation.
type SleepFunc func(ctx context.Context, d time.Duration) error

func defaultSleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Client is the low-level HTTP client shared by all endpoint families.
type Client struct {
	baseURL    *url.URL
	baseHost   string
	httpClient *http.Client
	cookie     string
	cookies    map[string]string
	userAgent  string
	retryMax   int
	logger     xueqiu.Logger
	debug      bool
	sleep      SleepFunc
}

// Option configures a Client.
type Option func(*Client)

// WithCookie sets a raw Cookie header value.
func WithCookie(cookie string) Option {
	return func(c *Client) {
		c.cookie = strings.TrimSpace(cookie)
	}
}

// WithCookies sets individual cookie pairs, used when no raw header is given.
func WithCookies(cookies map[string]string) Option {
	return func(c *Client) {
		if len(cookies) == 0 {
			return
		}

		c.cookies = make(map[string]string, len(cookies))
		for k, v := range cookies {
			c.cookies[k] = v
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithRetryMax sets the number of retries after the first attempt. Negative
// values disable retries.
func WithRetryMax(n int) Option {
	return func(c *Client) {
		if n < 0 {
			n = 0
		}

		c.retryMax = n
	}
}

// WithTimeout sets the per-request timeout on the underlying http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger xueqiu.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response debug logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithSleepFunc replaces the retry sleeper. Tests use this to observe and
// skip backoff delays.
func WithSleepFunc(sleep SleepFunc) Option {
	return func(c *Client) {
		if sleep != nil {
			c.sleep = sleep
		}
	}
}

// NewClient creates a transport client rooted at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL %q: %w", baseURL, err)
	}

	client := &Client{
		baseURL:    parsed,
		baseHost:   strings.ToLower(strings.TrimSpace(parsed.Hostname())),
		httpClient: &http.Client{Timeout: xueqiu.DefaultTimeout},
		userAgent:  DefaultUserAgent,
		retryMax:   xueqiu.DefaultRetryMax,
		sleep:      defaultSleep,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// HasAuth reports whether any credential is configured.
func (c *Client) HasAuth() bool {
	return c.cookie != "" || len(c.cookies) > 0
}

// Cookie returns the raw cookie header value, if one was configured.
func (c *Client) Cookie() string {
	return c.cookie
}

// Request describes one API call.
type Request struct {
	Method string
	// Path is resolved against the base URL unless it is already absolute.
	Path    string
	Query   url.Values
	Headers map[string]string
	// RequireAuth makes the call fail fast with an auth error when no
	// credential is configured, before any network traffic.
	RequireAuth bool
	// SkipAPIErrorCheck disables envelope inspection, for third-party
	// endpoints whose payloads are not Xueqiu envelopes.
	SkipAPIErrorCheck bool
}

// Response is a completed API call with the body fully read.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	URL        string
}

// Do runs the request with the shared retry budget. Transport failures,
// 429/5xx statuses, and bodies that are not valid JSON all consume attempts
// from the same budget; other 4xx statuses and envelope-level API errors
// fail immediately.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if req.RequireAuth && !c.HasAuth() {
		return nil, &xueqiu.AuthError{Message: "this endpoint requires a Xueqiu cookie"}
	}

	target, err := c.resolveURL(req.Path, req.Query)
	if err != nil {
		return nil, err
	}

	method := strings.ToUpper(req.Method)
	if method == "" {
		method = http.MethodGet
	}

	var lastErr error

	for attempt := 0; attempt <= c.retryMax; attempt++ {
		if c.debug && c.logger != nil {
			c.logger.Debug("request start", map[string]interface{}{
				"method":  method,
				"url":     target.String(),
				"attempt": attempt,
			})
		}

		resp, retryable, err := c.attempt(ctx, method, target, req)
		if err == nil {
			return resp, nil
		}

		lastErr = err
		if !retryable || attempt >= c.retryMax {
			return nil, err
		}

		delay := backoff(attempt)
		if retryErr, ok := err.(*statusError); ok && retryErr.retryAfter >= 0 {
			delay = retryErr.retryAfter
		}

		if c.debug && c.logger != nil {
			c.logger.Debug("request retry", map[string]interface{}{
				"method": method,
				"url":    target.String(),
				"sleep":  delay.String(),
				"error":  err.Error(),
			})
		}

		if err := c.sleep(ctx, delay); err != nil {
			return nil, err
		}
	}

	return nil, lastErr
}

// Get runs a GET request against a base-relative path.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// GetAuthed runs a GET request that requires a credential.
func (c *Client) GetAuthed(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query, RequireAuth: true})
}

// GetExternal runs a GET request against a third-party endpoint: no auth
// requirement and no envelope checking.
func (c *Client) GetExternal(ctx context.Context, rawURL string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: rawURL, Query: query, SkipAPIErrorCheck: true})
}

// statusError carries a retryable HTTP status internally so the retry loop
// can honor a server-provided Retry-After delay. It unwraps to the public
// HTTPError.
type statusError struct {
	err        *xueqiu.HTTPError
	retryAfter time.Duration
}

func (e *statusError) Error() string { return e.err.Error() }
func (e *statusError) Unwrap() error { return e.err }

// attempt performs one request. The boolean result reports whether the
// failure may be retried.
func (c *Client) attempt(ctx context.Context, method string, target *url.URL, req *Request) (*Response, bool, error) {
	httpReq, err := http.NewRequestWithContext(ctx, method, target.String(), nil)
	if err != nil {
		return nil, false, fmt.Errorf("building request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if shouldAttachAuth(target, c.baseHost) {
		c.attachCredential(httpReq)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, true, fmt.Errorf("%s %s: %w", method, target.String(), err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("%s %s: reading body: %w", method, target.String(), err)
	}

	if httpResp.StatusCode >= 400 {
		httpErr := &xueqiu.HTTPError{
			StatusCode: httpResp.StatusCode,
			URL:        target.String(),
			Method:     method,
			Body:       truncate(body),
		}

		if !retryableStatus(httpResp.StatusCode) {
			return nil, false, httpErr
		}

		retryAfter := time.Duration(-1)
		if d, ok := parseRetryAfter(httpResp.Header.Get("Retry-After")); ok {
			retryAfter = d
		}

		return nil, true, &statusError{err: httpErr, retryAfter: retryAfter}
	}

	if !json.Valid(body) {
		return nil, true, &xueqiu.DecodeError{
			URL:     target.String(),
			Method:  method,
			Message: "response body is not valid JSON",
			Body:    truncate(body),
		}
	}

	if !req.SkipAPIErrorCheck {
		if err := xueqiu.CheckEnvelope(body, target.String(), method); err != nil {
			return nil, false, err
		}
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
		URL:        target.String(),
	}, false, nil
}

func (c *Client) resolveURL(path string, query url.Values) (*url.URL, error) {
	var target *url.URL

	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		parsed, err := url.Parse(path)
		if err != nil {
			return nil, fmt.Errorf("parsing URL %q: %w", path, err)
		}

		target = parsed
	} else {
		ref, err := url.Parse(path)
		if err != nil {
			return nil, fmt.Errorf("parsing path %q: %w", path, err)
		}

		target = c.baseURL.ResolveReference(ref)
	}

	if len(query) > 0 {
		merged := target.Query()
		for key, values := range query {
			for _, value := range values {
				merged.Add(key, value)
			}
		}

		target.RawQuery = merged.Encode()
	}

	return target, nil
}

func (c *Client) attachCredential(req *http.Request) {
	if c.cookie != "" {
		req.Header.Set("Cookie", c.cookie)

		return
	}

	for name, value := range c.cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}
}

func truncate(body []byte) string {
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}

	return string(body)
}
