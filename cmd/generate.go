package main

import (
	"context"
	"fmt"
	"homoglyph/internal/api/handler/v1handler"
	"homoglyph/internal/config"

	"github.com/go-faster/jx"
	"github.com/spf13/cobra"
)

// generateCommand constructs the 'generate' subcommand that prints look-alike
// variants of a domain as JSON.
func generateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <domain>",
		Short: "Generates look-alike variants of a domain",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			n, _ := cmd.Flags().GetInt("max-results")

			_, gen := newCore(ctx, cfg, nil)
			variants := gen.Generate(ctx, args[0], n)

			e := &jx.Encoder{}
			e.SetIdent(2)
			v1handler.EncodeGenerated(e, variants)
			fmt.Println(e.String()) //nolint: forbidigo
		},
	}

	cmd.Flags().IntP("max-results", "n", cfg.Generator.DefaultMaxResults, "Maximum number of variants")

	return cmd
}
