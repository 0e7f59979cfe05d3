package main

import (
	"context"
	"fmt"
	"homoglyph/internal/api/handler/v1handler"
	"homoglyph/internal/config"

	"github.com/go-faster/jx"
	"github.com/spf13/cobra"
)

// detectCommand constructs the 'detect' subcommand that prints the detection
// report of a domain as JSON.
func detectCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect <domain>",
		Short: "Analyses a domain for homoglyphs",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			reference, _ := cmd.Flags().GetString("reference")

			det, _ := newCore(ctx, cfg, nil)
			report := det.Detect(ctx, args[0], reference)

			e := &jx.Encoder{}
			e.SetIdent(2)
			v1handler.EncodeReport(e, report)
			fmt.Println(e.String()) //nolint: forbidigo
		},
	}

	cmd.Flags().String("reference", "", "Known legitimate domain to compare against")

	return cmd
}
