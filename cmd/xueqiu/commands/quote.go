package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/liqiongyu/xueqiu-api/pkg/xueqiu"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewQuoteCommand creates the quote command.
func NewQuoteCommand() *cobra.Command {
	var (
		detail      bool
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "quote SYMBOL...",
		Short: "Show quotes",
		Long: `Show real-time quotes for one or more symbols.

The plain listing works without a cookie. --detail fetches the full quote
record per symbol concurrently and needs authentication.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			if detail {
				return runQuoteDetail(client, args, concurrency)
			}

			return runQuoteList(client, args)
		},
	}

	cmd.Flags().BoolVar(&detail, "detail", false, "fetch full quote records")
	cmd.Flags().IntVar(&concurrency, "concurrency", xueqiu.DefaultBatchConcurrency, "concurrent detail fetches")

	return cmd
}

func runQuoteList(client xueqiu.Client, symbols []string) error {
	resp, err := client.Realtime().Quotec(context.Background(), symbols...)
	if err != nil {
		return fmt.Errorf("failed to fetch quotes: %w", err)
	}

	if resp.Data == nil {
		return ErrNoQuoteData
	}

	quotes := *resp.Data

	if done, err := outputObject(quotes); done {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Symbol", "Current", "Chg", "Percent", "Volume", "Amount", "Time")

	for _, quote := range quotes {
		_ = table.Append(
			quote.Symbol,
			formatFloat(quote.Current),
			formatFloat(quote.Chg),
			formatPercent(quote.Percent),
			formatFloat(quote.Volume),
			formatFloat(quote.Amount),
			formatTime(quote.Timestamp),
		)
	}

	_ = table.Render()

	return nil
}

func runQuoteDetail(client xueqiu.Client, symbols []string, concurrency int) error {
	results, err := xueqiu.FetchQuoteDetails(context.Background(), client.Realtime(), symbols, concurrency)
	if err != nil {
		return fmt.Errorf("failed to fetch quote details: %w", err)
	}

	if done, err := outputObject(results); done {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Symbol", "Name", "Current", "Percent", "PE(TTM)", "PB", "Market Cap", "Status")

	for i, result := range results {
		if result == nil || result.Data == nil || result.Data.Quote == nil {
			_ = table.Append(symbols[i], NotAvailable, NotAvailable, NotAvailable, NotAvailable, NotAvailable, NotAvailable, NotAvailable)

			continue
		}

		quote := result.Data.Quote

		status := NotAvailable
		if result.Data.Market != nil && result.Data.Market.Status != "" {
			status = result.Data.Market.Status
		}

		_ = table.Append(
			quote.Symbol,
			quote.Name,
			formatFloat(quote.Current),
			formatPercent(quote.Percent),
			formatFloat(quote.PETTM),
			formatFloat(quote.PB),
			formatFloat(quote.MarketCapital),
			status,
		)
	}

	_ = table.Render()

	return nil
}
