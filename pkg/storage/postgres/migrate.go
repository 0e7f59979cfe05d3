package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"homoglyph/pkg/logger"
	"homoglyph/pkg/storage"
	"io/fs"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"go.uber.org/zap"
)

// Migrate applies the goose migrations found under dir in migrations, then
// brings river's queue tables to their latest version.
func (p *PgSQL) Migrate(ctx context.Context, migrations fs.FS, dir string) error {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return fmt.Errorf("could not migrate: %w", storage.ErrAlreadyInTx)
	}

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("could not set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("could not apply migrations: %w", err)
	}

	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return fmt.Errorf("could not create river migrator: %w", err)
	}
	versions := migrator.AllVersions()
	latest := versions[len(versions)-1].Version

	current := 0
	existing, err := migrator.ExistingVersions(ctx)
	if err != nil {
		return fmt.Errorf("could not get existing river migrations: %w", err)
	}
	if len(existing) > 0 {
		current = existing[len(existing)-1].Version
	}
	if latest > current {
		if _, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{
			TargetVersion: latest,
		}); err != nil {
			return fmt.Errorf("could not migrate river tables: %w", err)
		}
	}

	logger.Info(ctx, "database migrated", zap.Int("riverVersion", latest))

	return nil
}

// MigrationVersions reports the applied goose version of the short URL schema
// and the latest applied river migration, zero when none ran yet.
func (p *PgSQL) MigrationVersions(ctx context.Context) (schema int64, river int, err error) {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return 0, 0, storage.ErrAlreadyInTx
	}

	if err := goose.SetDialect(dialect); err != nil {
		return 0, 0, fmt.Errorf("could not set goose dialect: %w", err)
	}
	schema, err = goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return 0, 0, fmt.Errorf("could not get schema version: %w", err)
	}

	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return 0, 0, fmt.Errorf("could not create river migrator: %w", err)
	}
	existing, err := migrator.ExistingVersions(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("could not get existing river migrations: %w", err)
	}
	if len(existing) > 0 {
		river = existing[len(existing)-1].Version
	}

	return schema, river, nil
}
