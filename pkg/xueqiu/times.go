package xueqiu

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// msThreshold separates epoch seconds from epoch milliseconds: modern dates
// are ~1e9 in seconds and ~1e12 in milliseconds.
const msThreshold = 10_000_000_000

// Time is a timezone-aware instant decoded from the heterogeneous timestamp
// representations Xueqiu uses: epoch seconds, epoch milliseconds, digit
// strings, and ISO-8601 strings. The zero value means "absent"; an
// unparsable input decodes to the zero value rather than failing, since
// upstream routinely mixes formats within one payload.
type Time struct {
	time.Time
}

// NewTime wraps a time.Time.
func NewTime(t time.Time) Time {
	return Time{Time: t}
}

// ParseTime normalizes a single timestamp value. The boolean result is false
// when the value is absent or unrecognizable.
func ParseTime(value any) (time.Time, bool) {
	switch v := value.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return v, true
	case Time:
		if v.IsZero() {
			return time.Time{}, false
		}

		return v.Time, true
	case int:
		return epochTime(float64(v)), true
	case int64:
		return epochTime(float64(v)), true
	case float64:
		return epochTime(v), true
	case string:
		return parseTimeString(v)
	default:
		return time.Time{}, false
	}
}

func epochTime(ts float64) time.Time {
	if ts > msThreshold || ts < -msThreshold {
		ts /= 1000.0
	}

	sec := int64(ts)
	nsec := int64((ts - float64(sec)) * float64(time.Second))

	return time.Unix(sec, nsec).UTC()
}

func parseTimeString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if isDigits(s) {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return time.Time{}, false
		}

		return epochTime(float64(n)), true
	}

	for _, layout := range []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return s != ""
}

// UnmarshalJSON accepts numbers, digit strings, ISO-8601 strings, and null.
// Unparsable values yield the zero Time; this method never returns an error
// for a value that is valid JSON.
func (t *Time) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		t.Time = time.Time{}

		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}

		parsed, ok := parseTimeString(s)
		if !ok {
			t.Time = time.Time{}

			return nil
		}

		t.Time = parsed

		return nil
	}

	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		t.Time = time.Time{}

		return nil
	}

	t.Time = epochTime(f)

	return nil
}

// MarshalJSON renders RFC 3339, or null for the absent (zero) value.
func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}

	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}
