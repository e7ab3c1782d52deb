package xueqiu

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Envelope is the canonical, normalized form of a Xueqiu response. Every
// upstream shape resolves into exactly one Envelope:
//
//   - {"error_code": int, "error_description": str|null, "data": ...}
//   - {"code": int, "message": str, "success": bool, "data": ...}
//   - a bare JSON value with no envelope keys at all (wrapped transparently)
type Envelope struct {
	// Data is the useful payload; nil when the upstream omitted it.
	Data json.RawMessage
	// ErrorCode is 0 on success. Resolved from "error_code" first, then "code".
	ErrorCode int
	// ErrorDescription is resolved from "error_description" first, then "message".
	ErrorDescription string
	// Success mirrors an explicit "success" boolean when present.
	Success *bool
	// Extra holds envelope-level keys not claimed by the fields above.
	Extra map[string]json.RawMessage
}

// envelope marker keys. A mapping carrying none of these is treated as a raw
// payload and wrapped whole.
var envelopeKeys = []string{"data", "error_code", "code", "success"}

// NormalizeEnvelope rewrites a decoded JSON value into an Envelope. Non-object
// payloads and objects without envelope markers become the Data of a success
// envelope. A status code that fails integer coercion is treated as 0; see
// the package documentation for why this leniency is load-bearing.
func NormalizeEnvelope(raw []byte) Envelope {
	obj := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &obj); err != nil {
		// Arrays, scalars, and strings cannot carry an error marker.
		return Envelope{Data: compactCopy(raw)}
	}

	marked := false

	for _, key := range envelopeKeys {
		if _, ok := obj[key]; ok {
			marked = true

			break
		}
	}

	if !marked {
		return Envelope{Data: compactCopy(raw)}
	}

	env := Envelope{Data: obj["data"]}

	if raw, ok := firstKey(obj, "error_code", "code"); ok {
		env.ErrorCode, _ = coerceCode(raw)
	}

	if raw, ok := firstKey(obj, "error_description", "message"); ok {
		env.ErrorDescription = coerceString(raw)
	}

	if raw, ok := obj["success"]; ok {
		var b bool
		if err := json.Unmarshal(raw, &b); err == nil {
			env.Success = &b
		}
	}

	for key, value := range obj {
		switch key {
		case "data", "error_code", "code", "error_description", "message", "success":
		default:
			if env.Extra == nil {
				env.Extra = map[string]json.RawMessage{}
			}

			env.Extra[key] = value
		}
	}

	return env
}

// IsSuccess reports whether the envelope signals success: an explicit
// "success" boolean wins, otherwise error code 0 means success.
func (e Envelope) IsSuccess() bool {
	if e.Success != nil {
		return *e.Success
	}

	return e.ErrorCode == 0
}

// CheckEnvelope inspects a decoded payload for an API-level failure and
// returns an *APIError describing it, or nil. The two envelope conventions
// are checked in order: "error_code" style first, then "success" style; a
// payload matching neither (including non-objects) never fails here.
func CheckEnvelope(payload []byte, url, method string) error {
	obj := map[string]json.RawMessage{}
	if err := json.Unmarshal(payload, &obj); err != nil {
		return nil
	}

	if raw, ok := obj["error_code"]; ok {
		code, ok := coerceCode(raw)
		if !ok || code == 0 {
			return nil
		}

		return &APIError{
			ErrorCode:        code,
			ErrorDescription: coerceString(obj["error_description"]),
			URL:              url,
			Method:           method,
			Payload:          compactCopy(payload),
		}
	}

	if raw, ok := obj["success"]; ok {
		var success bool
		if err := json.Unmarshal(raw, &success); err != nil || success {
			return nil
		}

		code, _ := coerceCode(obj["code"])

		return &APIError{
			ErrorCode:        code,
			ErrorDescription: coerceString(obj["message"]),
			URL:              url,
			Method:           method,
			Payload:          compactCopy(payload),
		}
	}

	return nil
}

// Response is the typed rendering of an Envelope: the payload decoded into T
// plus the normalized status fields. Endpoint methods return *Response[T].
type Response[T any] struct {
	Data             *T
	ErrorCode        int
	ErrorDescription string
	Success          *bool
	Extra            map[string]json.RawMessage
}

// UnmarshalJSON normalizes the envelope, then decodes the payload into T.
// A null or absent payload leaves Data nil.
func (r *Response[T]) UnmarshalJSON(b []byte) error {
	env := NormalizeEnvelope(b)

	r.ErrorCode = env.ErrorCode
	r.ErrorDescription = env.ErrorDescription
	r.Success = env.Success
	r.Extra = env.Extra
	r.Data = nil

	if len(env.Data) == 0 || bytes.Equal(bytes.TrimSpace(env.Data), []byte("null")) {
		return nil
	}

	data := new(T)
	if err := json.Unmarshal(env.Data, data); err != nil {
		return err
	}

	r.Data = data

	return nil
}

// IsSuccess reports whether the response signals success, using the same
// rules as Envelope.IsSuccess.
func (r *Response[T]) IsSuccess() bool {
	if r.Success != nil {
		return *r.Success
	}

	return r.ErrorCode == 0
}

// coerceCode converts a JSON value to an integer status code. Numbers are
// truncated, numeric strings parsed, null treated as 0. The second result is
// false when the value is present but not coercible; callers treat that as
// code 0 rather than failing, matching observed upstream behavior.
func coerceCode(raw json.RawMessage) (int, bool) {
	if len(raw) == 0 {
		return 0, true
	}

	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		return int(n), true
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return int(f), true
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, true
		}

		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return int(n), true
		}

		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int(f), true
		}

		return 0, false
	}

	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return 0, true
	}

	return 0, false
}

func coerceString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	return ""
}

func firstKey(obj map[string]json.RawMessage, names ...string) (json.RawMessage, bool) {
	for _, name := range names {
		if raw, ok := obj[name]; ok {
			return raw, true
		}
	}

	return nil, false
}

func compactCopy(raw []byte) json.RawMessage {
	out := make(json.RawMessage, len(raw))
	copy(out, raw)

	return bytes.TrimSpace(out)
}
