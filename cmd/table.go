package main

import (
	"context"
	"homoglyph"
	"homoglyph/internal/config"
	"homoglyph/internal/detector"
	"homoglyph/internal/generator"
	"homoglyph/pkg/glyphtable"
	"homoglyph/pkg/logger"
	"io/fs"
	"os"

	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// dataRoot returns the directory the table paths are resolved against: the
// configured directory, or the data embedded in the binary.
func dataRoot(cfg *config.Config) fs.FS {
	if cfg.Table.Dir != "" {
		return os.DirFS(cfg.Table.Dir)
	}

	return homoglyph.Data
}

// loadTable loads the homoglyph table or exits. The service must never run
// with empty tables.
func loadTable(ctx context.Context, cfg *config.Config) *glyphtable.Table {
	table, err := glyphtable.Load(ctx, dataRoot(cfg), glyphtable.LoadOptions{
		MapPath:   cfg.Table.MapPath,
		CodesPath: cfg.Table.CodesPath,
	})
	if err != nil {
		logger.Fatal(ctx, "could not load homoglyph table", zap.Error(err))
	}

	return table
}

// newCore builds the detector and generator over a freshly loaded table.
func newCore(ctx context.Context,
	cfg *config.Config,
	mp metric.MeterProvider) (*detector.Detector, *generator.Generator) {
	table := loadTable(ctx, cfg)

	det, err := detector.New(table, detector.Options{MeterProvider: mp})
	if err != nil {
		logger.Fatal(ctx, "could not create detector", zap.Error(err))
	}
	gen, err := generator.New(table, generator.Options{
		AttemptFactor: cfg.Generator.AttemptFactor,
		MeterProvider: mp,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create generator", zap.Error(err))
	}

	return det, gen
}
