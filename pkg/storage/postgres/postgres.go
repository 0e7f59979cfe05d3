package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"homoglyph/pkg/storage"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

const dialect = "postgres"

// Ensure PgSQL implements storage.Storage and storage.TxStorage.
var (
	_ storage.Storage   = (*PgSQL)(nil)
	_ storage.TxStorage = (*PgSQL)(nil)
)

// Options configures the connection pool.
type Options struct {
	Username string
	Password string
	Host     string
	Port     int
	Database string

	// SslMode is passed as sslmode, e.g. "disable" or "require".
	SslMode string

	// ApplicationName shows up in pg_stat_activity.
	ApplicationName string

	// ConnectTimeout bounds dialing and the initial ping. Zero leaves pgx's default.
	ConnectTimeout time.Duration

	ConnMaxLifetime    time.Duration
	ConnMaxIdleTime    time.Duration
	MaxOpenConnections int
	// MaxIdleConnections is kept warm as the pool's minimum size.
	MaxIdleConnections int
}

func (o Options) connString() string {
	parts := []string{
		"host=" + quoteValue(o.Host),
		fmt.Sprintf("port=%d", o.Port),
		"user=" + quoteValue(o.Username),
		"dbname=" + quoteValue(o.Database),
		"password=" + quoteValue(o.Password),
		"sslmode=" + quoteValue(o.SslMode),
	}
	if o.ApplicationName != "" {
		parts = append(parts, "application_name="+quoteValue(o.ApplicationName))
	}

	return strings.Join(parts, " ")
}

// quoteValue escapes a libpq keyword/value so passwords with spaces survive.
func quoteValue(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}

	return "'" + strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(v) + "'"
}

// DB is satisfied by both *sql.DB and *sql.Tx.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Builder is satisfied by both *goqu.Database and *goqu.TxDatabase.
type Builder interface {
	From(table ...any) *goqu.SelectDataset
	Insert(table any) *goqu.InsertDataset
	Update(table any) *goqu.UpdateDataset
}

// PgSQL stores short URLs with goqu over database/sql, and River jobs in the
// same database so both can share a transaction.
type PgSQL struct {
	// DB is a *sql.Tx inside WithTx, a *sql.DB otherwise.
	DB      DB
	Builder Builder
	// Pool is nil on transactional handles.
	Pool    *pgxpool.Pool
}

// Close releases the database/sql wrapper and then the pool beneath it.
func (p *PgSQL) Close() error {
	var err error
	if sqlDB, isDB := p.DB.(*sql.DB); isDB {
		err = sqlDB.Close()
	}
	if p.Pool != nil {
		p.Pool.Close()
	}

	return err
}

func (p *PgSQL) tx() (*sql.Tx, error) {
	tx, inTx := p.DB.(*sql.Tx)
	if !inTx {
		return nil, storage.ErrNotInTx
	}

	return tx, nil
}

func (p *PgSQL) Commit() error {
	tx, err := p.tx()
	if err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}

func (p *PgSQL) Rollback() error {
	tx, err := p.tx()
	if err != nil {
		return err
	}
	if err = tx.Rollback(); err != nil {
		return fmt.Errorf("could not rollback tx: %w", err)
	}

	return nil
}

// Begin opens a read committed transaction. Calling it on a transactional
// handle returns storage.ErrAlreadyInTx.
func (p *PgSQL) Begin(ctx context.Context) (storage.TxStorage, error) {
	sqlDB, isDB := p.DB.(*sql.DB)
	if !isDB {
		return nil, storage.ErrAlreadyInTx
	}

	tx, err := sqlDB.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, fmt.Errorf("could not begin tx: %w", err)
	}

	return &PgSQL{DB: tx, Builder: goqu.NewTx(dialect, tx)}, nil
}

// WithTx commits when cb returns nil and rolls back when it fails or panics.
func (p *PgSQL) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) (err error) {
	tx, err := p.Begin(ctx)
	if err != nil {
		return err
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil {
			err = errors.Join(err, rbErr)
		}
	}()

	if err = cb(tx); err != nil {
		return err
	}
	// a failed commit already ends the transaction
	committed = true

	return tx.Commit()
}

// New opens a pgx pool, checks it can reach the server and wraps it in a
// *sql.DB for goqu and goose.
func New(ctx context.Context, options Options) (*PgSQL, error) {
	cfg, err := pgxpool.ParseConfig(options.connString())
	if err != nil {
		return nil, fmt.Errorf("could not parse pgxpool config: %w", err)
	}
	if options.ConnectTimeout > 0 {
		cfg.ConnConfig.ConnectTimeout = options.ConnectTimeout
	}
	if options.MaxOpenConnections > 0 {
		cfg.MaxConns = int32(options.MaxOpenConnections) //nolint: gosec
	}
	if options.MaxIdleConnections > 0 {
		cfg.MinConns = min(int32(options.MaxIdleConnections), cfg.MaxConns) //nolint: gosec
	}
	if options.ConnMaxLifetime > 0 {
		cfg.MaxConnLifetime = options.ConnMaxLifetime
	}
	if options.ConnMaxIdleTime > 0 {
		cfg.MaxConnIdleTime = options.ConnMaxIdleTime
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create pgx pool: %w", err)
	}

	pingCtx := ctx
	if options.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, options.ConnectTimeout)
		defer cancel()
	}
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()

		return nil, fmt.Errorf("could not reach database %s:%d: %w", options.Host, options.Port, err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	return &PgSQL{
		DB:      sqlDB,
		Builder: goqu.Dialect(dialect).DB(sqlDB),
		Pool:    pool,
	}, nil
}
