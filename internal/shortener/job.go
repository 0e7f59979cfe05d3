package shortener

import (
	"time"

	"github.com/riverqueue/river"
)

// ExpireJobArgs schedules the soft deletion of a short URL at its deadline.
// Code and deadline together form the unique key so a code that is reused
// after expiry gets its own job.
type ExpireJobArgs struct {
	// Code is the short code to expire.
	Code string `json:"code" river:"unique"`
	// ExpiresAt is the deadline the job is scheduled for.
	ExpiresAt time.Time `json:"expires_at" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the expiry worker.
func (args ExpireJobArgs) Kind() string { return "expire_short_url" }

// InsertOpts schedules the job at the deadline and rejects duplicates.
func (args ExpireJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		ScheduledAt: args.ExpiresAt,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
		},
	}
}
