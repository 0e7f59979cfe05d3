package postgres

import (
	"context"
	"errors"
	"fmt"
	"homoglyph/pkg/domain"
	"homoglyph/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	shortURLsTable = "short_urls"
)

// StoreShortURL inserts a short URL. A live row with the same code makes it
// fail with storage.ErrDuplicateCode.
func (p *PgSQL) StoreShortURL(ctx context.Context, shortURL domain.ShortURL) (*domain.ShortURL, error) {
	var row PgShortURL
	row.FromDomain(shortURL)

	var stored PgShortURL
	if _, err := p.Builder.Insert(shortURLsTable).
		Rows(row).
		Returning(&PgShortURL{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicateCode
		}

		return nil, fmt.Errorf("could not store short url into pg: %w", err)
	}

	return stored.ToDomain(), nil
}

// ResolveShortURL bumps hits of the live, unexpired row with the given code and returns it.
func (p *PgSQL) ResolveShortURL(ctx context.Context, code string, now time.Time) (*domain.ShortURL, error) {
	var row PgShortURL
	found, err := p.Builder.Update(shortURLsTable).
		Set(goqu.Record{
			"hits": goqu.L("hits + 1"),
		}).Where(
		goqu.I("code").Eq(code),
		goqu.I("deleted_at").IsNull(),
		goqu.Or(
			goqu.I("expires_at").IsNull(),
			goqu.I("expires_at").Gt(now),
		),
	).Returning(&PgShortURL{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not resolve short url in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteShortURL performs a soft delete by setting deleted_at timestamp
// for a given code and owner, returning the deleted record.
func (p *PgSQL) DeleteShortURL(ctx context.Context, userID domain.UserID, code string) (*domain.ShortURL, error) {
	var row PgShortURL
	found, err := p.Builder.Update(shortURLsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("code").Eq(code),
		goqu.I("created_by").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgShortURL{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete short url in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// ExpireShortURL soft deletes the live row with the given code once its deadline passed.
func (p *PgSQL) ExpireShortURL(ctx context.Context, code string, now time.Time) (bool, error) {
	res, err := p.Builder.Update(shortURLsTable).
		Set(goqu.Record{
			"deleted_at": now,
		}).Where(
		goqu.I("code").Eq(code),
		goqu.I("deleted_at").IsNull(),
		goqu.I("expires_at").Lte(now),
	).Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not expire short url in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get expired rows count: %w", err)
	}

	return n > 0, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
