package commands

import (
	"context"
	"fmt"

	"github.com/liqiongyu/xueqiu-api/pkg/xueqiu"
	"github.com/spf13/cobra"
)

// NewIndexCommand creates the index command group (CSIndex data).
func NewIndexCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "CSIndex index data",
		Long:  "Index basic info, weights, and performance from China Securities Index",
	}

	cmd.AddCommand(newIndexInfoCommand())
	cmd.AddCommand(newIndexWeightCommand())
	cmd.AddCommand(newIndexPerfCommand())

	return cmd
}

func newIndexInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info INDEX_CODE",
		Short: "Show index basic info",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndexCommand(args[0], func(ctx context.Context, client xueqiu.Client, code string) (*xueqiu.CSIndexResponse, error) {
				return client.CSIndex().IndexBasicInfo(ctx, code)
			})
		},
	}
}

func newIndexWeightCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "weight INDEX_CODE",
		Short: "Show top-10 index weights",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndexCommand(args[0], func(ctx context.Context, client xueqiu.Client, code string) (*xueqiu.CSIndexResponse, error) {
				return client.CSIndex().IndexWeightTop10(ctx, code)
			})
		},
	}
}

func newIndexPerfCommand() *cobra.Command {
	var (
		startDate string
		endDate   string
	)

	cmd := &cobra.Command{
		Use:   "perf INDEX_CODE",
		Short: "Show index performance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndexCommand(args[0], func(ctx context.Context, client xueqiu.Client, code string) (*xueqiu.CSIndexResponse, error) {
				return client.CSIndex().IndexPerf(ctx, code, startDate, endDate)
			})
		},
	}

	cmd.Flags().StringVar(&startDate, "start", "", "start date (YYYYMMDD)")
	cmd.Flags().StringVar(&endDate, "end", "", "end date (YYYYMMDD)")

	return cmd
}

func runIndexCommand(code string, fetch func(context.Context, xueqiu.Client, string) (*xueqiu.CSIndexResponse, error)) error {
	client, err := CreateClient()
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	resp, err := fetch(context.Background(), client, code)
	if err != nil {
		return fmt.Errorf("failed to fetch index data for '%s': %w", code, err)
	}

	return outputRawPayload(resp.Data)
}

// NewBondCommand creates the bond command (Eastmoney convertible bonds).
func NewBondCommand() *cobra.Command {
	var (
		page int
		size int
	)

	cmd := &cobra.Command{
		Use:   "bond",
		Short: "Convertible bond listing",
		Long:  "Convertible bond issues from the Eastmoney datacenter",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			resp, err := client.Eastmoney().ConvertibleBond(context.Background(), size, page)
			if err != nil {
				return fmt.Errorf("failed to fetch convertible bonds: %w", err)
			}

			if resp.Success != nil && !*resp.Success {
				return fmt.Errorf("%w: %s", ErrDatacenterRejected, resp.Message)
			}

			return outputRawPayload(resp.Result)
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&size, "size", 50, "page size")

	return cmd
}
