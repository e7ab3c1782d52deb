package xueqiu

import "encoding/json"

// The types in this file cover third-party data sources reachable through
// the same client: China Securities Index, Danjuan, and Eastmoney. Their
// response schemas are not Xueqiu's and drift independently, so decoding
// stays permissive and keeps the payload raw.

// CSIndexResponse is a loose rendering of a CSIndex response.
type CSIndexResponse struct {
	Data  json.RawMessage
	Extra map[string]json.RawMessage
}

func (r *CSIndexResponse) UnmarshalJSON(b []byte) error {
	obj := rawObject{}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}

	r.Data = obj["data"]
	r.Extra = obj.rest("data")

	return nil
}

// DanjuanResponse is a loose rendering of a Danjuan response.
type DanjuanResponse struct {
	Data    json.RawMessage
	Code    *int
	Message string
	Extra   map[string]json.RawMessage
}

func (r *DanjuanResponse) UnmarshalJSON(b []byte) error {
	obj := rawObject{}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}

	r.Data = obj["data"]
	r.Code = obj.int("code")
	r.Message = obj.str("message")
	r.Extra = obj.rest("data", "code", "message")

	return nil
}

// EastmoneyResponse is a loose rendering of an Eastmoney datacenter response.
type EastmoneyResponse struct {
	Result  json.RawMessage
	Success *bool
	Message string
	Extra   map[string]json.RawMessage
}

func (r *EastmoneyResponse) UnmarshalJSON(b []byte) error {
	obj := rawObject{}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}

	r.Result = obj["result"]
	r.Success = obj.boolean("success")
	r.Message = obj.str("message")
	r.Extra = obj.rest("result", "success", "message")

	return nil
}
