package commands

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const fixtureFilePerm = 0o644

// fixtureEndpoints maps fixture names to unauthenticated endpoints. Each
// %s takes the symbol.
var fixtureEndpoints = map[string]string{
	"quotec": "https://stock.xueqiu.com/v5/stock/realtime/quotec.json?symbol=%s",
	"kline":  "https://stock.xueqiu.com/v5/stock/chart/kline.json?symbol=%s&period=day&type=before&count=-30&indicator=kline",
}

// NewFixturesCommand creates the fixtures command. It captures raw endpoint
// responses to files, mainly to refresh test fixtures against schema drift.
func NewFixturesCommand() *cobra.Command {
	var (
		outDir  string
		symbols []string
	)

	cmd := &cobra.Command{
		Use:    "fixtures",
		Short:  "Capture raw endpoint responses",
		Long:   "Download raw responses from the public endpoints into a directory",
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(symbols) == 0 {
				return ErrSymbolRequired
			}

			if err := os.MkdirAll(outDir, configDirPerm); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}

			client := retryablehttp.NewClient()
			client.RetryMax = 3
			client.RetryWaitMin = 200 * time.Millisecond
			client.RetryWaitMax = 4 * time.Second

			if !viper.GetBool("verbose") {
				client.Logger = nil
			}

			for name, endpoint := range fixtureEndpoints {
				for _, symbol := range symbols {
					if err := captureFixture(client, outDir, name, endpoint, symbol); err != nil {
						return err
					}
				}
			}

			fmt.Printf("Captured %d fixtures to %s\n", len(fixtureEndpoints)*len(symbols), outDir)

			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "fixtures", "output directory")
	cmd.Flags().StringSliceVar(&symbols, "symbol", nil, "symbols to capture (repeatable)")

	return cmd
}

func captureFixture(client *retryablehttp.Client, outDir, name, endpoint, symbol string) error {
	target := fmt.Sprintf(endpoint, url.QueryEscape(symbol))

	resp, err := client.Get(target)
	if err != nil {
		return fmt.Errorf("fetching %s fixture for '%s': %w", name, symbol, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading %s fixture for '%s': %w", name, symbol, err)
	}

	filename := fmt.Sprintf("%s_%s.json", name, strings.ToLower(symbol))

	path := filepath.Join(outDir, filename)
	if err := os.WriteFile(path, body, fixtureFilePerm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}
