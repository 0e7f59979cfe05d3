package main

import (
	"context"
	root "homoglyph"
	"homoglyph/internal/config"
	"homoglyph/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand applies the short URL schema and River's queue tables. With
// --status it only reports the applied versions.
func migrateCommand(cfg *config.Config) *cobra.Command {
	var status bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			if !status {
				if err := strg.Migrate(ctx, root.Migrations, "migrations"); err != nil {
					logger.Fatal(ctx, "could not migrate database", zap.Error(err))
				}
			}

			schema, river, err := strg.MigrationVersions(ctx)
			if err != nil {
				logger.Fatal(ctx, "could not read migration versions", zap.Error(err))
			}
			logger.Info(ctx, "migration status",
				zap.Int64("schemaVersion", schema),
				zap.Int("riverVersion", river))
		},
	}
	cmd.Flags().BoolVar(&status, "status", false, "only print the applied migration versions")

	return cmd
}
