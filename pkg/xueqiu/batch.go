package xueqiu

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultBatchConcurrency bounds concurrent requests in the batch helpers.
const DefaultBatchConcurrency = 8

// FetchQuoteDetails fetches detailed quotes for many symbols concurrently.
// Results are returned in input order. The first failure cancels the
// remaining requests and is returned.
func FetchQuoteDetails(ctx context.Context, client RealtimeClient, symbols []string, concurrency int) ([]*Response[QuoteDetailData], error) {
	if concurrency <= 0 {
		concurrency = DefaultBatchConcurrency
	}

	results := make([]*Response[QuoteDetailData], len(symbols))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(concurrency)

	for i, symbol := range symbols {
		i, symbol := i, symbol
		group.Go(func() error {
			resp, err := client.QuoteDetail(ctx, symbol)
			if err != nil {
				return err
			}

			results[i] = resp

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// FetchKlines fetches kline series for many symbols concurrently with shared
// options. Results are returned in input order; the first failure cancels the
// remaining requests.
func FetchKlines(ctx context.Context, client RealtimeClient, symbols []string, opts *KlineOptions, concurrency int) ([]*Response[KlineData], error) {
	if concurrency <= 0 {
		concurrency = DefaultBatchConcurrency
	}

	results := make([]*Response[KlineData], len(symbols))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(concurrency)

	for i, symbol := range symbols {
		i, symbol := i, symbol
		group.Go(func() error {
			resp, err := client.Kline(ctx, symbol, opts)
			if err != nil {
				return err
			}

			results[i] = resp

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
