package xueqiu

import (
	"bytes"
	"encoding/json"
)

// DecodeResponse decodes a response body into Response[T]. Decode failures
// surface as *SchemaError so callers can distinguish upstream schema drift
// from transport or API failures.
func DecodeResponse[T any](body []byte, url, method string) (*Response[T], error) {
	var resp Response[T]
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &SchemaError{URL: url, Method: method, Err: err}
	}

	return &resp, nil
}

// DecodeInto decodes a response body into dst, wrapping failures as
// *SchemaError. Used for the few endpoints whose top-level shape is not the
// shared envelope.
func DecodeInto(dst any, body []byte, url, method string) error {
	if err := json.Unmarshal(body, dst); err != nil {
		return &SchemaError{URL: url, Method: method, Err: err}
	}

	return nil
}

// rawObject supports alias-based field lookup during custom decoding. A
// logical field may appear under several historically-used upstream names;
// the first alias listed wins.
type rawObject map[string]json.RawMessage

func (o rawObject) first(names ...string) (json.RawMessage, bool) {
	for _, name := range names {
		if raw, ok := o[name]; ok && !isNull(raw) {
			return raw, true
		}
	}

	return nil, false
}

func (o rawObject) str(names ...string) string {
	raw, ok := o.first(names...)
	if !ok {
		return ""
	}

	return coerceString(raw)
}

func (o rawObject) float(names ...string) *float64 {
	raw, ok := o.first(names...)
	if !ok {
		return nil
	}

	f, ok := numberLike(raw)
	if !ok {
		return nil
	}

	return f
}

func (o rawObject) int(names ...string) *int {
	raw, ok := o.first(names...)
	if !ok {
		return nil
	}

	n, ok := coerceCode(raw)
	if !ok {
		return nil
	}

	return &n
}

func (o rawObject) boolean(names ...string) *bool {
	raw, ok := o.first(names...)
	if !ok {
		return nil
	}

	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil
	}

	return &b
}

func (o rawObject) time(names ...string) Time {
	var t Time

	raw, ok := o.first(names...)
	if !ok {
		return t
	}

	_ = t.UnmarshalJSON(raw)

	return t
}

// into decodes the first present alias into dst. Absent aliases leave dst
// untouched and return nil.
func (o rawObject) into(dst any, names ...string) error {
	raw, ok := o.first(names...)
	if !ok {
		return nil
	}

	return json.Unmarshal(raw, dst)
}

// rest returns the keys not claimed by any alias list, preserving unknown
// fields for forward compatibility.
func (o rawObject) rest(claimed ...string) map[string]json.RawMessage {
	isClaimed := map[string]bool{}
	for _, name := range claimed {
		isClaimed[name] = true
	}

	var extra map[string]json.RawMessage

	for key, value := range o {
		if isClaimed[key] {
			continue
		}

		if extra == nil {
			extra = map[string]json.RawMessage{}
		}

		extra[key] = value
	}

	return extra
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
