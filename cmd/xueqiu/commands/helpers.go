package commands

import (
	"encoding/json"
	"errors"
	"os"
	"strconv"

	"github.com/liqiongyu/xueqiu-api/pkg/xqclient"
	"github.com/liqiongyu/xueqiu-api/pkg/xueqiu"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// Common static errors used throughout the commands package.
var (
	ErrCookieRequired   = errors.New("no credential configured (run 'xueqiu login' or set XUEQIU_TOKEN)")
	ErrSymbolRequired   = errors.New("at least one symbol is required")
	ErrFundCodeRequired = errors.New("fund code is required")
	ErrNoQuoteData      = errors.New("no quote data returned")

	ErrDatacenterRejected = errors.New("datacenter rejected the query")
)

// CreateClient builds a client from flags, environment, and the saved config
// file, in that order of precedence.
func CreateClient() (xueqiu.Client, error) {
	config := &xueqiu.Config{
		Cookie:   viper.GetString("cookie"),
		BaseURL:  viper.GetString("base-url"),
		RetryMax: viper.GetInt("retries"),
		Debug:    viper.GetBool("verbose"),
	}

	saved := loadConfig()

	if config.Cookie == "" {
		config.Cookie = saved.Cookie
	}

	if config.BaseURL == "" {
		config.BaseURL = saved.BaseURL
	}

	return xqclient.New(config)
}

// outputObject renders v as JSON or YAML per the --output flag. It reports
// false when the flag asks for a table so the caller can render one.
func outputObject(v interface{}) (bool, error) {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return true, encoder.Encode(v)
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		return true, encoder.Encode(v)
	default:
		return false, nil
	}
}

func formatFloat(v *float64) string {
	if v == nil {
		return NotAvailable
	}

	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatPercent(v *float64) string {
	if v == nil {
		return NotAvailable
	}

	return strconv.FormatFloat(*v, 'f', 2, 64) + "%"
}

func formatInt(v *int) string {
	if v == nil {
		return NotAvailable
	}

	return strconv.Itoa(*v)
}

func formatTime(t xueqiu.Time) string {
	if t.IsZero() {
		return NotAvailable
	}

	return t.Format("2006-01-02 15:04:05")
}

func formatDate(t xueqiu.Time) string {
	if t.IsZero() {
		return NotAvailable
	}

	return t.Format("2006-01-02")
}
