package xueqiu_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/liqiongyu/xueqiu-api/pkg/xueqiu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEnvelope_ErrorCodeStyle(t *testing.T) {
	t.Parallel()

	env := xueqiu.NormalizeEnvelope([]byte(`{"error_code":0,"error_description":null,"data":{"symbol":"SH600519"}}`))

	assert.Equal(t, 0, env.ErrorCode)
	assert.Empty(t, env.ErrorDescription)
	assert.Nil(t, env.Success)
	assert.JSONEq(t, `{"symbol":"SH600519"}`, string(env.Data))
	assert.True(t, env.IsSuccess())
}

func TestNormalizeEnvelope_SuccessStyle(t *testing.T) {
	t.Parallel()

	env := xueqiu.NormalizeEnvelope([]byte(`{"code":100,"message":"bad keyword","success":false,"data":[]}`))

	assert.Equal(t, 100, env.ErrorCode)
	assert.Equal(t, "bad keyword", env.ErrorDescription)
	require.NotNil(t, env.Success)
	assert.False(t, *env.Success)
	assert.False(t, env.IsSuccess())
}

func TestNormalizeEnvelope_AliasOrder(t *testing.T) {
	t.Parallel()

	// error_code wins over code, error_description over message.
	env := xueqiu.NormalizeEnvelope([]byte(`{"error_code":7,"code":9,"error_description":"primary","message":"secondary","data":null}`))

	assert.Equal(t, 7, env.ErrorCode)
	assert.Equal(t, "primary", env.ErrorDescription)
}

func TestNormalizeEnvelope_UnmarkedObjectWrapped(t *testing.T) {
	t.Parallel()

	env := xueqiu.NormalizeEnvelope([]byte(`{"symbol":"SZ000001","current":10.5}`))

	assert.Equal(t, 0, env.ErrorCode)
	assert.True(t, env.IsSuccess())
	assert.JSONEq(t, `{"symbol":"SZ000001","current":10.5}`, string(env.Data))
}

func TestNormalizeEnvelope_NonObjectWrapped(t *testing.T) {
	t.Parallel()

	env := xueqiu.NormalizeEnvelope([]byte(`[1,2,3]`))

	assert.True(t, env.IsSuccess())
	assert.JSONEq(t, `[1,2,3]`, string(env.Data))
}

func TestNormalizeEnvelope_StringCode(t *testing.T) {
	t.Parallel()

	env := xueqiu.NormalizeEnvelope([]byte(`{"error_code":"400016","data":null}`))

	assert.Equal(t, 400016, env.ErrorCode)
	assert.False(t, env.IsSuccess())
}

func TestNormalizeEnvelope_ExtraKeysPreserved(t *testing.T) {
	t.Parallel()

	env := xueqiu.NormalizeEnvelope([]byte(`{"error_code":0,"data":null,"meta":{"page":1}}`))

	require.Contains(t, env.Extra, "meta")
	assert.JSONEq(t, `{"page":1}`, string(env.Extra["meta"]))
}

func TestCheckEnvelope_ErrorCodeFailure(t *testing.T) {
	t.Parallel()

	err := xueqiu.CheckEnvelope(
		[]byte(`{"error_code":400016,"error_description":"token expired"}`),
		"https://stock.xueqiu.com/v5/stock/quote.json", "GET",
	)

	require.Error(t, err)

	apiErr := &xueqiu.APIError{}
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400016, apiErr.ErrorCode)
	assert.Equal(t, "token expired", apiErr.ErrorDescription)
	assert.True(t, xueqiu.IsAPIError(err, 400016))
	assert.False(t, xueqiu.IsAPIError(err, 400017))
}

func TestCheckEnvelope_SuccessFalse(t *testing.T) {
	t.Parallel()

	err := xueqiu.CheckEnvelope([]byte(`{"code":100,"message":"invalid","success":false}`), "u", "GET")

	apiErr := &xueqiu.APIError{}
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 100, apiErr.ErrorCode)
	assert.Equal(t, "invalid", apiErr.ErrorDescription)
}

func TestCheckEnvelope_SuccessTrue(t *testing.T) {
	t.Parallel()

	require.NoError(t, xueqiu.CheckEnvelope([]byte(`{"success":true,"data":{}}`), "u", "GET"))
}

// A non-coercible error_code means the envelope check stands down rather than
// failing a payload that may still be usable.
func TestCheckEnvelope_UncoercibleErrorCodeIgnored(t *testing.T) {
	t.Parallel()

	require.NoError(t, xueqiu.CheckEnvelope([]byte(`{"error_code":{"nested":1},"data":{}}`), "u", "GET"))
	require.NoError(t, xueqiu.CheckEnvelope([]byte(`{"error_code":"not-a-number","data":{}}`), "u", "GET"))
}

func TestCheckEnvelope_NonObjectPayload(t *testing.T) {
	t.Parallel()

	require.NoError(t, xueqiu.CheckEnvelope([]byte(`[{"error_code":5}]`), "u", "GET"))
	require.NoError(t, xueqiu.CheckEnvelope([]byte(`"plain"`), "u", "GET"))
}

func TestResponse_UnmarshalTyped(t *testing.T) {
	t.Parallel()

	body := []byte(`{"error_code":0,"error_description":null,"data":{"symbol":"SH600519","current":1680.0}}`)

	resp, err := xueqiu.DecodeResponse[xueqiu.Quote](body, "u", "GET")
	require.NoError(t, err)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "SH600519", resp.Data.Symbol)
	require.NotNil(t, resp.Data.Current)
	assert.InDelta(t, 1680.0, *resp.Data.Current, 0.0001)
	assert.True(t, resp.IsSuccess())
}

func TestResponse_NullDataStaysNil(t *testing.T) {
	t.Parallel()

	resp, err := xueqiu.DecodeResponse[xueqiu.Quote]([]byte(`{"error_code":0,"data":null}`), "u", "GET")
	require.NoError(t, err)
	assert.Nil(t, resp.Data)
}

func TestResponse_BareListWrapped(t *testing.T) {
	t.Parallel()

	resp, err := xueqiu.DecodeResponse[[]int]([]byte(`[1,2,3]`), "u", "GET")
	require.NoError(t, err)
	require.NotNil(t, resp.Data)
	assert.Equal(t, []int{1, 2, 3}, *resp.Data)
}

func TestDecodeResponse_SchemaMismatch(t *testing.T) {
	t.Parallel()

	_, err := xueqiu.DecodeResponse[xueqiu.Quote]([]byte(`{"data":{"symbol":123}}`), "https://x/q.json", "GET")
	require.Error(t, err)

	schemaErr := &xueqiu.SchemaError{}
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "https://x/q.json", schemaErr.URL)
	require.Error(t, errors.Unwrap(schemaErr))
}

func TestDecodeInto_InvalidJSON(t *testing.T) {
	t.Parallel()

	var out map[string]json.RawMessage

	err := xueqiu.DecodeInto(&out, []byte(`{"trunc`), "u", "GET")

	schemaErr := &xueqiu.SchemaError{}
	require.ErrorAs(t, err, &schemaErr)
}
