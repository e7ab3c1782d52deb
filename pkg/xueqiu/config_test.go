package xueqiu_test

import (
	"testing"
	"time"

	"github.com/liqiongyu/xueqiu-api/pkg/xueqiu"
	"github.com/stretchr/testify/assert"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("XUEQIU_TOKEN", "xq_a_token=abc")
	t.Setenv("XUEQIU_COOKIE", "ignored=1")
	t.Setenv("XUEQIU_BASE_URL", "https://stock.xueqiu.com")
	t.Setenv("XUEQIU_TIMEOUT", "2.5")
	t.Setenv("XUEQIU_MAX_RETRIES", "4")
	t.Setenv("XUEQIU_DEBUG", "true")

	cfg := xueqiu.ConfigFromEnv()

	// XUEQIU_TOKEN wins over XUEQIU_COOKIE.
	assert.Equal(t, "xq_a_token=abc", cfg.Cookie)
	assert.Equal(t, "https://stock.xueqiu.com", cfg.BaseURL)
	assert.Equal(t, 2500*time.Millisecond, cfg.Timeout)
	assert.Equal(t, 4, cfg.RetryMax)
	assert.True(t, cfg.Debug)
}

func TestConfigFromEnv_FallbackCookie(t *testing.T) {
	t.Setenv("XUEQIU_TOKEN", "")
	t.Setenv("XUEQIU_COOKIE", "xq_a_token=def")

	cfg := xueqiu.ConfigFromEnv()
	assert.Equal(t, "xq_a_token=def", cfg.Cookie)
}

func TestConfigFromEnv_GarbageValuesIgnored(t *testing.T) {
	t.Setenv("XUEQIU_TIMEOUT", "soon")
	t.Setenv("XUEQIU_MAX_RETRIES", "lots")
	t.Setenv("XUEQIU_DEBUG", "maybe")

	cfg := xueqiu.ConfigFromEnv()
	assert.Equal(t, time.Duration(0), cfg.Timeout)
	assert.Equal(t, 0, cfg.RetryMax)
	assert.False(t, cfg.Debug)
}

func TestConfigHasCredential(t *testing.T) {
	t.Parallel()

	assert.False(t, (&xueqiu.Config{}).HasCredential())
	assert.False(t, (&xueqiu.Config{Cookie: "   "}).HasCredential())
	assert.True(t, (&xueqiu.Config{Cookie: "xq_a_token=abc"}).HasCredential())
	assert.True(t, (&xueqiu.Config{Cookies: map[string]string{"u": "1"}}).HasCredential())
}
