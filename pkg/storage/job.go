package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage defines the minimal interface for enqueueing background jobs.
// Implementations persist the job into the underlying queue backend, atomically
// with any surrounding transaction when the backend supports it. The returned
// bool is false when the job was skipped as a duplicate of a unique job.
//
// Example:
//
//	_, err := tx.AddJob(ctx, shortener.ExpireJobArgs{Code: "aB3dE9"}, &river.InsertOpts{ScheduledAt: deadline})
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments and insert options.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
