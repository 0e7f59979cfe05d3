// Package worker runs the background jobs of the service on a River queue.
package worker

import (
	"context"
	"fmt"
	"homoglyph/internal/shortener"
	"homoglyph/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

// DefaultConcurrency is used when Start is given a non-positive concurrency.
const DefaultConcurrency = 10

// Start registers the expiry worker and starts a River client processing the
// default queue with up to concurrency jobs at once.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	shortener shortener.Shortener,
	concurrency int) (*river.Client[pgx.Tx], error) {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewExpireWorker(shortener))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: concurrency},
		},
		Workers: workers,
		Logger:  logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
