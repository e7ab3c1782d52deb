package xueqiu_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/liqiongyu/xueqiu-api/pkg/xueqiu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTime_EpochMilliseconds(t *testing.T) {
	t.Parallel()

	got, ok := xueqiu.ParseTime(int64(1541486940000))
	require.True(t, ok)
	assert.Equal(t, time.Date(2018, 11, 6, 6, 49, 0, 0, time.UTC), got)
}

func TestParseTime_EpochSeconds(t *testing.T) {
	t.Parallel()

	got, ok := xueqiu.ParseTime(int64(1541486940))
	require.True(t, ok)
	assert.Equal(t, time.Date(2018, 11, 6, 6, 49, 0, 0, time.UTC), got)
}

func TestParseTime_DigitString(t *testing.T) {
	t.Parallel()

	got, ok := xueqiu.ParseTime("1541486940000")
	require.True(t, ok)
	assert.Equal(t, time.Date(2018, 11, 6, 6, 49, 0, 0, time.UTC), got)
}

func TestParseTime_ISOStrings(t *testing.T) {
	t.Parallel()

	got, ok := xueqiu.ParseTime("2018-11-06T06:49:00Z")
	require.True(t, ok)
	assert.Equal(t, time.Date(2018, 11, 6, 6, 49, 0, 0, time.UTC), got)

	got, ok = xueqiu.ParseTime("2018-11-06 06:49:00")
	require.True(t, ok)
	assert.Equal(t, 2018, got.Year())

	got, ok = xueqiu.ParseTime("2018-11-06")
	require.True(t, ok)
	assert.Equal(t, time.November, got.Month())
}

func TestParseTime_Unrecognized(t *testing.T) {
	t.Parallel()

	_, ok := xueqiu.ParseTime("soon")
	assert.False(t, ok)

	_, ok = xueqiu.ParseTime(nil)
	assert.False(t, ok)

	_, ok = xueqiu.ParseTime("")
	assert.False(t, ok)
}

func TestTime_UnmarshalNumber(t *testing.T) {
	t.Parallel()

	var ts xueqiu.Time

	require.NoError(t, json.Unmarshal([]byte(`1541486940000`), &ts))
	assert.Equal(t, time.Date(2018, 11, 6, 6, 49, 0, 0, time.UTC), ts.Time)
}

func TestTime_UnmarshalNullAndGarbage(t *testing.T) {
	t.Parallel()

	var ts xueqiu.Time

	require.NoError(t, json.Unmarshal([]byte(`null`), &ts))
	assert.True(t, ts.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`"not a date"`), &ts))
	assert.True(t, ts.IsZero())

	// Booleans are valid JSON but not timestamps; decoding stays lenient.
	require.NoError(t, json.Unmarshal([]byte(`true`), &ts))
	assert.True(t, ts.IsZero())
}

func TestTime_MarshalRoundTrip(t *testing.T) {
	t.Parallel()

	ts := xueqiu.NewTime(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	out, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.JSONEq(t, `"2024-03-01T12:00:00Z"`, string(out))

	out, err = json.Marshal(xueqiu.Time{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}
