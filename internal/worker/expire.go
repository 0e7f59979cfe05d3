package worker

import (
	"context"
	"homoglyph/internal/shortener"
	"homoglyph/pkg/logger"
	"homoglyph/pkg/serrors"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// expireTimeout bounds a single expiry; it is a single UPDATE.
const expireTimeout = 30 * time.Second

// ExpireWorker soft deletes short URLs when their expiry job comes due.
type ExpireWorker struct {
	river.WorkerDefaults[shortener.ExpireJobArgs]

	shortener shortener.Shortener
}

// NewExpireWorker creates an ExpireWorker delegating to s.
func NewExpireWorker(s shortener.Shortener) *ExpireWorker {
	return &ExpireWorker{shortener: s}
}

// Timeout overrides River's default job timeout.
func (w *ExpireWorker) Timeout(*river.Job[shortener.ExpireJobArgs]) time.Duration {
	return expireTimeout
}

// Work expires the short URL named by the job. Errors with a semantic kind
// other than internal will not get better on retry and cancel the job.
func (w *ExpireWorker) Work(ctx context.Context, job *river.Job[shortener.ExpireJobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("job_id", job.ID),
		zap.String("code", job.Args.Code),
		zap.Int("attempt", job.Attempt))

	err := w.shortener.Expire(ctx, job.Args.Code)
	if err == nil {
		return nil
	}

	if serrors.KindOf(err) != serrors.ErrInternal {
		logger.Warn(ctx, "cancelling expiry job", zap.Error(err))

		return river.JobCancel(err) //nolint: wrapcheck
	}

	logger.Error(ctx, "could not expire short URL", zap.Error(err))

	return err
}
