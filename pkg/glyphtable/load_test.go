package glyphtable_test

import (
	"context"
	"homoglyph"
	"homoglyph/pkg/glyphtable"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

var testOptions = glyphtable.LoadOptions{
	MapPath:   "homoglyph_map.json",
	CodesPath: "char_codes.txt",
}

func TestLoad_PrefersCompiledMap(t *testing.T) {
	fsys := fstest.MapFS{
		"homoglyph_map.json": {Data: []byte(`{"g": ["g", "ɡ"]}`)},
		"char_codes.txt":     {Data: []byte("006F,043E\n")},
	}

	table, err := glyphtable.Load(context.Background(), fsys, testOptions)
	require.NoError(t, err)
	require.Equal(t, 'g', table.Canonical('ɡ'))
	require.Equal(t, 'о', table.Canonical('о'), "text source must be ignored")
}

func TestLoad_FallsBackToCodes(t *testing.T) {
	fsys := fstest.MapFS{
		"char_codes.txt": {Data: []byte("0067,0261,0260\n")},
	}

	table, err := glyphtable.Load(context.Background(), fsys, testOptions)
	require.NoError(t, err)
	require.Equal(t, 'g', table.Canonical('ɡ'))
	require.ElementsMatch(t, []rune{'g', 'ɡ', 'ɠ'}, table.Siblings('g'))
}

func TestLoad_NoSource(t *testing.T) {
	_, err := glyphtable.Load(context.Background(), fstest.MapFS{}, testOptions)
	require.ErrorIs(t, err, glyphtable.ErrNoSource)
}

func TestLoad_EmptySource(t *testing.T) {
	fsys := fstest.MapFS{
		"char_codes.txt": {Data: []byte("# nothing here\n\nzz,yy\n")},
	}

	_, err := glyphtable.Load(context.Background(), fsys, testOptions)
	require.ErrorIs(t, err, glyphtable.ErrEmptyTable)
}

func TestLoad_BrokenMap(t *testing.T) {
	fsys := fstest.MapFS{
		"homoglyph_map.json": {Data: []byte(`{"g": `)},
		"char_codes.txt":     {Data: []byte("0067,0261\n")},
	}

	_, err := glyphtable.Load(context.Background(), fsys, testOptions)
	require.Error(t, err)
	require.ErrorContains(t, err, "homoglyph_map.json")
}

func TestLoad_EmbeddedData(t *testing.T) {
	table, err := glyphtable.Load(context.Background(), homoglyph.Data, glyphtable.LoadOptions{
		MapPath:   "data/homoglyph_map.json",
		CodesPath: "data/char_codes.txt",
	})
	require.NoError(t, err)
	require.Equal(t, 'o', table.Canonical('о'))
	require.Equal(t, 'g', table.Canonical('ɡ'))

	// both formats describe the same canonical rules
	fromText, err := glyphtable.Load(context.Background(), homoglyph.Data, glyphtable.LoadOptions{
		CodesPath: "data/char_codes.txt",
	})
	require.NoError(t, err)
	require.Equal(t, fromText.CanonicalLen(), table.CanonicalLen())
}
