package glyphtable

import (
	"context"
	"errors"
	"fmt"
	"homoglyph/pkg/logger"
	"io"
	"io/fs"

	"go.uber.org/zap"
)

var (
	// ErrNoSource is returned by Load when neither the pre-compiled map nor
	// the plain text codes can be found.
	ErrNoSource = errors.New("no homoglyph data source found")
	// ErrEmptyTable is returned by Load when the data source yields no groups.
	ErrEmptyTable = errors.New("homoglyph data source contains no groups")
)

// LoadOptions names the data sources inside the file system given to Load.
type LoadOptions struct {
	// MapPath is the pre-compiled JSON map. It is preferred when present.
	MapPath string
	// CodesPath is the plain text list of hexadecimal code point groups.
	CodesPath string
}

// Load builds a table from fsys. The pre-compiled map is used when it exists,
// otherwise the plain text codes are parsed. A missing or empty source is an
// error: callers must not continue without a table.
func Load(ctx context.Context, fsys fs.FS, opts LoadOptions) (*Table, error) {
	type source struct {
		path  string
		parse func(io.Reader) ([][]rune, error)
	}

	sources := []source{
		{path: opts.MapPath, parse: ParseJSON},
		{path: opts.CodesPath, parse: ParseText},
	}
	for _, src := range sources {
		if src.path == "" {
			continue
		}

		groups, err := parseFile(fsys, src.path, src.parse)
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug(ctx, "homoglyph source not found", zap.String("path", src.path))

			continue
		}
		if err != nil {
			return nil, err
		}
		if len(groups) == 0 {
			return nil, fmt.Errorf("%s: %w", src.path, ErrEmptyTable)
		}

		table := New(groups)
		logger.Info(ctx, "homoglyph table loaded",
			zap.String("source", src.path),
			zap.Int("groups", len(groups)),
			zap.Int("characters", table.Len()),
			zap.Int("canonicalRules", table.CanonicalLen()))

		return table, nil
	}

	return nil, fmt.Errorf("looked for %q and %q: %w", opts.MapPath, opts.CodesPath, ErrNoSource)
}

func parseFile(fsys fs.FS, path string, parse func(io.Reader) ([][]rune, error)) ([][]rune, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	groups, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", path, err)
	}

	return groups, nil
}
