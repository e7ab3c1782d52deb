package xueqiu_test

import (
	"encoding/json"
	"testing"

	"github.com/liqiongyu/xueqiu-api/pkg/xueqiu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportPeriod_MetricPromotion(t *testing.T) {
	t.Parallel()

	body := []byte(`{
		"report_date": 1711814400000,
		"report_name": "2024一季报",
		"ncf_from_oa": [1000.5, 0.12],
		"free_cash_flow": ["250.75", null],
		"not_a_pair": [1, 2, 3],
		"note": "plain string"
	}`)

	var period xueqiu.ReportPeriod
	require.NoError(t, json.Unmarshal(body, &period))

	assert.Equal(t, "2024一季报", period.ReportName)
	assert.Equal(t, 2024, period.ReportDate.Year())

	metric, ok := period.Metric("ncf_from_oa")
	require.True(t, ok)
	require.NotNil(t, metric.Value)
	assert.InDelta(t, 1000.5, *metric.Value, 0.0001)
	require.NotNil(t, metric.YoY)
	assert.InDelta(t, 0.12, *metric.YoY, 0.0001)

	// Numeric strings coerce; null means no prior-year comparison.
	metric, ok = period.Metric("free_cash_flow")
	require.True(t, ok)
	require.NotNil(t, metric.Value)
	assert.InDelta(t, 250.75, *metric.Value, 0.0001)
	assert.Nil(t, metric.YoY)

	// Non-pairs fall through to Extra untouched.
	_, ok = period.Metric("not_a_pair")
	assert.False(t, ok)
	assert.Contains(t, period.Extra, "not_a_pair")
	assert.Contains(t, period.Extra, "note")
}

func TestReportPeriod_ReservedKeysNeverMetrics(t *testing.T) {
	t.Parallel()

	// A two-element report_date array must not be promoted.
	var period xueqiu.ReportPeriod
	require.NoError(t, json.Unmarshal([]byte(`{"report_date": "2023-12-31", "report_name": "2023年报"}`), &period))

	assert.Empty(t, period.Metrics)
	assert.Equal(t, "2023年报", period.ReportName)
}

func TestReportPeriod_BothSidesNull(t *testing.T) {
	t.Parallel()

	var period xueqiu.ReportPeriod
	require.NoError(t, json.Unmarshal([]byte(`{"goodwill": [null, null]}`), &period))

	metric, ok := period.Metric("goodwill")
	require.True(t, ok)
	assert.Nil(t, metric.Value)
	assert.Nil(t, metric.YoY)
}

func TestFinanceStatement_ListAlias(t *testing.T) {
	t.Parallel()

	v1 := []byte(`{"quote_name":"贵州茅台","currency":"CNY","list":[{"report_name":"2024一季报","eps":[9.2,0.15]}]}`)
	v2 := []byte(`{"quote_name":"贵州茅台","currency":"CNY","items":[{"report_name":"2024一季报","eps":[9.2,0.15]}]}`)

	for _, body := range [][]byte{v1, v2} {
		var stmt xueqiu.FinanceStatement
		require.NoError(t, json.Unmarshal(body, &stmt))
		assert.Equal(t, "贵州茅台", stmt.QuoteName)
		require.Len(t, stmt.Periods, 1)

		metric, ok := stmt.Periods[0].Metric("eps")
		require.True(t, ok)
		require.NotNil(t, metric.Value)
		assert.InDelta(t, 9.2, *metric.Value, 0.0001)
	}
}
