package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/liqiongyu/xueqiu-api/pkg/xueqiu"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// NewFundCommand creates the fund command group (Danjuan data).
func NewFundCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fund",
		Short: "Mutual fund data",
		Long:  "Mutual fund detail, NAV history, and manager data from Danjuan",
	}

	cmd.AddCommand(newFundDetailCommand())
	cmd.AddCommand(newFundNavCommand())
	cmd.AddCommand(newFundManagerCommand())
	cmd.AddCommand(newFundGrowthCommand())

	return cmd
}

func newFundDetailCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "detail FUND_CODE",
		Short: "Show fund detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFundCommand(args[0], func(ctx context.Context, client xueqiu.Client, code string) (*xueqiu.DanjuanResponse, error) {
				return client.Danjuan().FundDetail(ctx, code)
			})
		},
	}
}

func newFundNavCommand() *cobra.Command {
	var (
		page int
		size int
	)

	cmd := &cobra.Command{
		Use:   "nav FUND_CODE",
		Short: "Show fund NAV history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFundCommand(args[0], func(ctx context.Context, client xueqiu.Client, code string) (*xueqiu.DanjuanResponse, error) {
				return client.Danjuan().FundNavHistory(ctx, code, &xueqiu.PageOptions{Page: page, Size: size})
			})
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&size, "size", 10, "page size")

	return cmd
}

func newFundManagerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "manager FUND_CODE",
		Short: "Show fund managers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFundCommand(args[0], func(ctx context.Context, client xueqiu.Client, code string) (*xueqiu.DanjuanResponse, error) {
				return client.Danjuan().FundManager(ctx, code, 0)
			})
		},
	}
}

func newFundGrowthCommand() *cobra.Command {
	var day string

	cmd := &cobra.Command{
		Use:   "growth FUND_CODE",
		Short: "Show fund growth series",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFundCommand(args[0], func(ctx context.Context, client xueqiu.Client, code string) (*xueqiu.DanjuanResponse, error) {
				return client.Danjuan().FundGrowth(ctx, code, day)
			})
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "window (1m, 3m, 6m, 1y, 3y, 5y, ty)")

	return cmd
}

func runFundCommand(code string, fetch func(context.Context, xueqiu.Client, string) (*xueqiu.DanjuanResponse, error)) error {
	if code == "" {
		return ErrFundCodeRequired
	}

	client, err := CreateClient()
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	resp, err := fetch(context.Background(), client, code)
	if err != nil {
		return fmt.Errorf("failed to fetch fund data for '%s': %w", code, err)
	}

	return outputRawPayload(resp.Data)
}

// outputRawPayload pretty-prints an opaque provider payload. These schemas
// drift independently, so the CLI passes them through instead of tabulating.
func outputRawPayload(payload json.RawMessage) error {
	if len(payload) == 0 {
		_, _ = os.Stdout.WriteString("No data returned\n")

		return nil
	}

	var decoded interface{}
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return fmt.Errorf("decoding payload: %w", err)
	}

	if viper.GetString("output") == OutputFormatYAML {
		encoder := yaml.NewEncoder(os.Stdout)

		return encoder.Encode(decoded)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(decoded)
}
