package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/liqiongyu/xueqiu-api/pkg/xueqiu"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewKlineCommand creates the kline command.
func NewKlineCommand() *cobra.Command {
	var (
		period string
		count  int
		begin  int64
	)

	cmd := &cobra.Command{
		Use:   "kline SYMBOL",
		Short: "Show kline bars",
		Long:  "Show historical kline bars for a symbol, most recent last",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			symbol := args[0]

			client, err := CreateClient()
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			resp, err := client.Realtime().Kline(context.Background(), symbol, &xueqiu.KlineOptions{
				Period:  period,
				Count:   count,
				BeginMs: begin,
			})
			if err != nil {
				return fmt.Errorf("failed to fetch kline for '%s': %w", symbol, err)
			}

			if resp.Data == nil {
				return ErrNoQuoteData
			}

			bars, err := resp.Data.Bars()
			if err != nil {
				return fmt.Errorf("failed to decode kline rows: %w", err)
			}

			if done, err := outputObject(bars); done {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Date", "Open", "High", "Low", "Close", "Chg", "Percent", "Volume")

			for _, bar := range bars {
				_ = table.Append(
					formatDate(bar.Timestamp),
					formatFloat(bar.Open),
					formatFloat(bar.High),
					formatFloat(bar.Low),
					formatFloat(bar.Close),
					formatFloat(bar.Chg),
					formatPercent(bar.Percent),
					formatFloat(bar.Volume),
				)
			}

			_ = table.Render()

			return nil
		},
	}

	cmd.Flags().StringVar(&period, "period", "day", "bar period (day, week, month, quarter, year, 1m, 5m, ...)")
	cmd.Flags().IntVar(&count, "count", 30, "number of bars")
	cmd.Flags().Int64Var(&begin, "begin", 0, "end of the series as a millisecond timestamp (default now)")

	return cmd
}

// NewSuggestCommand creates the suggest command.
func NewSuggestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest QUERY",
		Short: "Search symbols",
		Long:  "Search for symbols by name, code, or pinyin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keyword := args[0]

			client, err := CreateClient()
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			resp, err := client.Suggest().Stock(context.Background(), keyword)
			if err != nil {
				return fmt.Errorf("failed to search for '%s': %w", keyword, err)
			}

			if done, err := outputObject(resp.Data); done {
				return err
			}

			if len(resp.Data) == 0 {
				_, _ = os.Stdout.WriteString("No matches found\n")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Code", "Name", "Type")

			for _, item := range resp.Data {
				_ = table.Append(item.Code, item.Query, formatInt(item.StockType))
			}

			_ = table.Render()

			return nil
		},
	}
}
