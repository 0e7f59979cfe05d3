package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
)

// AddJob enqueues a River job through the current database handle.
//
// Inside a transaction (DB is a *sql.Tx) the job is inserted with InsertTx so
// it only becomes visible, and workable, once the transaction commits. This
// is what lets a short URL and its expiry job be created atomically.
// Outside a transaction the insert is immediately visible.
//
// The returned bool is false when River skipped the job as a duplicate.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	var (
		res *rivertype.JobInsertResult
		err error
	)

	switch db := p.DB.(type) {
	case *sql.Tx:
		client, cErr := river.NewClient[*sql.Tx](riverdatabasesql.New(nil), &river.Config{})
		if cErr != nil {
			return false, fmt.Errorf("could not create river queue client: %w", cErr)
		}
		res, err = client.InsertTx(ctx, db, args, opts)
	case *sql.DB:
		client, cErr := river.NewClient(riverdatabasesql.New(db), &river.Config{})
		if cErr != nil {
			return false, fmt.Errorf("could not create river queue client: %w", cErr)
		}
		res, err = client.Insert(ctx, args, opts)
	default:
		return false, fmt.Errorf("unsupported database handle %T", p.DB)
	}
	if err != nil {
		return false, fmt.Errorf("could not insert job: %w", err)
	}

	return !res.UniqueSkippedAsDuplicate, nil
}
