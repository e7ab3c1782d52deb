package xueqiu

import "encoding/json"

// SuggestStockItem is one search suggestion. Some variants key the stock
// code as "symbol".
type SuggestStockItem struct {
	Code      string
	Label     string
	Query     string
	State     *int
	StockType *int
	Type      *int

	Extra map[string]json.RawMessage
}

func (s *SuggestStockItem) UnmarshalJSON(b []byte) error {
	obj := rawObject{}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}

	s.Code = obj.str("code", "symbol")
	s.Label = obj.str("label")
	s.Query = obj.str("query")
	s.State = obj.int("state")
	s.StockType = obj.int("stock_type")
	s.Type = obj.int("type")
	s.Extra = obj.rest("code", "symbol", "label", "query", "state", "stock_type", "type")

	return nil
}

// SuggestStockMeta is the paging block of the suggest response.
type SuggestStockMeta struct {
	Count       *int
	Feedback    *int
	HasNextPage *bool
	MaxPage     *int
	Page        *int
	QueryID     *int
	Size        *int

	Extra map[string]json.RawMessage
}

func (m *SuggestStockMeta) UnmarshalJSON(b []byte) error {
	obj := rawObject{}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}

	m.Count = obj.int("count")
	m.Feedback = obj.int("feedback")
	m.HasNextPage = obj.boolean("has_next_page")
	m.MaxPage = obj.int("maxPage", "max_page")
	m.Page = obj.int("page")
	m.QueryID = obj.int("query_id")
	m.Size = obj.int("size")
	m.Extra = obj.rest("count", "feedback", "has_next_page", "maxPage", "max_page", "page", "query_id", "size")

	return nil
}

// SuggestStockResponse is the full suggest response. It is not the shared
// envelope shape: data is the suggestion list itself, and some variants nest
// it as {"data": {"items": [...]}}.
type SuggestStockResponse struct {
	Code    *int
	Message string
	Success *bool
	Data    []SuggestStockItem
	Meta    *SuggestStockMeta

	Extra map[string]json.RawMessage
}

func (r *SuggestStockResponse) UnmarshalJSON(b []byte) error {
	obj := rawObject{}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}

	r.Code = obj.int("code")
	r.Message = obj.str("message")
	r.Success = obj.boolean("success")

	r.Meta = nil
	if err := obj.into(&r.Meta, "meta"); err != nil {
		return err
	}

	r.Data = nil

	if raw, ok := obj.first("data"); ok {
		inner := rawObject{}
		if err := json.Unmarshal(raw, &inner); err == nil {
			if items, ok := inner.first("items"); ok {
				raw = items
			}
		}

		if err := json.Unmarshal(raw, &r.Data); err != nil {
			return err
		}
	}

	r.Extra = obj.rest("code", "message", "success", "data", "meta")

	return nil
}

// IsSuccess reports whether the suggest call succeeded: an explicit success
// boolean wins, otherwise code 0 (or no code) means success.
func (r *SuggestStockResponse) IsSuccess() bool {
	if r.Success != nil {
		return *r.Success
	}

	return r.Code == nil || *r.Code == 0
}
