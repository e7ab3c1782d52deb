package http

import (
	"strconv"
	"strings"
	"time"
)

const (
	baseBackoff = 200 * time.Millisecond
	maxBackoff  = 4 * time.Second
)

// retryableStatus reports whether a status code is worth retrying: 429 and
// all 5xx. Other 4xx responses are deterministic and fail immediately.
func retryableStatus(status int) bool {
	return status == 429 || status >= 500
}

// backoff returns the delay before retry attempt n (0-based): 200ms, 400ms,
// 800ms, ... capped at 4s.
func backoff(attempt int) time.Duration {
	d := baseBackoff << attempt
	if d <= 0 || d > maxBackoff {
		return maxBackoff
	}

	return d
}

// parseRetryAfter reads a Retry-After header as a non-negative number of
// seconds. Fractional values are honored; HTTP-date forms and garbage are
// rejected so the caller falls back to exponential backoff.
func parseRetryAfter(value string) (time.Duration, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}

	seconds, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}

	if seconds < 0 {
		seconds = 0
	}

	return time.Duration(seconds * float64(time.Second)), true
}
