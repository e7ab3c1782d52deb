package xueqiu

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// MetricValue is a single financial metric: the value for the period and the
// year-over-year change. Either side may be absent (upstream sends null for
// metrics with no prior-year comparison).
type MetricValue struct {
	Value *float64 `json:"value"`
	YoY   *float64 `json:"yoy"`
}

// ReportPeriod is one point in a financial-statement time series. The set of
// metric names is not fixed by any schema — it is discovered per payload by
// promoting every field whose value is a 2-element number-like array into
// Metrics. Fields that do not match that shape are preserved in Extra.
type ReportPeriod struct {
	ReportDate Time
	ReportName string
	Metrics    map[string]MetricValue
	Extra      map[string]json.RawMessage
}

// reserved report-period fields that are never treated as metric pairs.
var reportPeriodReserved = map[string]bool{
	"report_date": true,
	"report_name": true,
}

// UnmarshalJSON extracts metric pairs before anything else, since metric
// names vary per endpoint and per company.
func (p *ReportPeriod) UnmarshalJSON(b []byte) error {
	obj := map[string]json.RawMessage{}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}

	p.Metrics = map[string]MetricValue{}
	p.Extra = nil

	if raw, ok := obj["report_date"]; ok {
		if err := p.ReportDate.UnmarshalJSON(raw); err != nil {
			return err
		}
	}

	if raw, ok := obj["report_name"]; ok {
		p.ReportName = coerceString(raw)
	}

	for key, value := range obj {
		if reportPeriodReserved[key] {
			continue
		}

		metric, ok := parseMetricPair(value)
		if !ok {
			if p.Extra == nil {
				p.Extra = map[string]json.RawMessage{}
			}

			p.Extra[key] = value

			continue
		}

		p.Metrics[key] = metric
	}

	return nil
}

// MarshalJSON renders the period back into its flat upstream shape.
func (p ReportPeriod) MarshalJSON() ([]byte, error) {
	out := map[string]any{}

	for key, value := range p.Extra {
		out[key] = value
	}

	for name, metric := range p.Metrics {
		out[name] = []*float64{metric.Value, metric.YoY}
	}

	if !p.ReportDate.IsZero() {
		out["report_date"] = p.ReportDate
	}

	if p.ReportName != "" {
		out["report_name"] = p.ReportName
	}

	return json.Marshal(out)
}

// Metric returns the named metric; the boolean result is false when the
// payload did not carry it.
func (p *ReportPeriod) Metric(name string) (MetricValue, bool) {
	metric, ok := p.Metrics[name]

	return metric, ok
}

// parseMetricPair recognizes the [value, yoy] convention: exactly two
// elements, both number-like (a JSON number, a string that parses cleanly as
// a float, or null).
func parseMetricPair(raw json.RawMessage) (MetricValue, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return MetricValue{}, false
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(trimmed, &elems); err != nil || len(elems) != 2 {
		return MetricValue{}, false
	}

	value, ok := numberLike(elems[0])
	if !ok {
		return MetricValue{}, false
	}

	yoy, ok := numberLike(elems[1])
	if !ok {
		return MetricValue{}, false
	}

	return MetricValue{Value: value, YoY: yoy}, true
}

// numberLike coerces a JSON value to *float64. Null coerces to nil; the
// boolean result is false for anything that is neither numeric nor a clean
// numeric string.
func numberLike(raw json.RawMessage) (*float64, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, true
	}

	var f float64
	if err := json.Unmarshal(trimmed, &f); err == nil {
		return &f, true
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil, false
		}

		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return &f, true
		}
	}

	return nil, false
}
