package main

import (
	"context"
	"homoglyph/internal/config"
	"homoglyph/pkg/glyphtable"
	"homoglyph/pkg/logger"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// buildMapCommand constructs the 'buildmap' subcommand that compiles the plain
// text code point list into the JSON map loaded at startup.
func buildMapCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buildmap",
		Short: "Compiles the code point list into the homoglyph JSON map",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			in, _ := cmd.Flags().GetString("in")
			out, _ := cmd.Flags().GetString("out")

			src, err := os.Open(in)
			if err != nil {
				logger.Fatal(ctx, "could not open code point list", zap.Error(err))
			}
			defer src.Close()

			groups, err := glyphtable.ParseText(src)
			if err != nil {
				logger.Fatal(ctx, "could not parse code point list", zap.Error(err))
			}
			if len(groups) == 0 {
				logger.Fatal(ctx, "code point list has no groups", zap.String("in", in))
			}

			dst, err := os.Create(out)
			if err != nil {
				logger.Fatal(ctx, "could not create homoglyph map", zap.Error(err))
			}
			if err := glyphtable.WriteJSON(dst, groups); err != nil {
				_ = dst.Close()
				logger.Fatal(ctx, "could not write homoglyph map", zap.Error(err))
			}
			if err := dst.Close(); err != nil {
				logger.Fatal(ctx, "could not close homoglyph map", zap.Error(err))
			}

			logger.Info(ctx, "homoglyph map written",
				zap.String("out", out),
				zap.Int("groups", len(groups)),
				zap.Int("keys", len(glyphtable.Compile(groups))))
		},
	}

	cmd.Flags().String("in", filepath.Join(cfg.Table.Dir, cfg.Table.CodesPath), "Plain text code point list")
	cmd.Flags().String("out", filepath.Join(cfg.Table.Dir, cfg.Table.MapPath), "Destination of the JSON map")

	return cmd
}
