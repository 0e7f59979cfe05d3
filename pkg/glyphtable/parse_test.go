package glyphtable_test

import (
	"bytes"
	"errors"
	"homoglyph/pkg/glyphtable"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  [][]rune
	}{
		{
			name:  "single group",
			input: "0067,0261,0260\n",
			want:  [][]rune{{'g', 'ɡ', 'ɠ'}},
		},
		{
			name:  "comments and blank lines",
			input: "# header\n\n   \n006F,043E\n# trailing\n",
			want:  [][]rune{{'o', 'о'}},
		},
		{
			name:  "inline comment and spaces",
			input: " 0061 , 0430 # cyrillic a\n",
			want:  [][]rune{{'a', 'а'}},
		},
		{
			name:  "malformed codes skipped",
			input: "0065,zz,0435,,12FFFFFF,D800\n",
			want:  [][]rune{{'e', 'е'}},
		},
		{
			name:  "line without valid codes dropped",
			input: "xyz,qq\n0063,0441\n",
			want:  [][]rune{{'c', 'с'}},
		},
		{
			name:  "unicode prefix accepted",
			input: "U+0070,u+0440\n",
			want:  [][]rune{{'p', 'р'}},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := glyphtable.ParseText(strings.NewReader(tt.input))
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestParseText_ReadError(t *testing.T) {
	_, err := glyphtable.ParseText(failingReader{})
	require.ErrorContains(t, err, "disk on fire")
}

func TestParseJSON(t *testing.T) {
	input := `{
  "g": ["ɡ", "g", "ɠ", "ɡ"],
  "o": ["o", "о", "oo", 7],
  "ɡ": ["x"],
  "xx": ["y"]
}`

	got, err := glyphtable.ParseJSON(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, [][]rune{{'g', 'ɡ', 'ɠ'}, {'o', 'о'}}, got)
}

func TestParseJSON_Invalid(t *testing.T) {
	_, err := glyphtable.ParseJSON(strings.NewReader(`{"g": ["ɡ"`))
	require.Error(t, err)

	_, err = glyphtable.ParseJSON(strings.NewReader(`["g"]`))
	require.Error(t, err)
}

func TestCompile(t *testing.T) {
	compiled := glyphtable.Compile([][]rune{
		{'ɡ', 'g', 'ɠ'},
		{'Φ', 'Ф'},
		{'o', 'о'},
		{'o', 'ο'},
	})

	require.Len(t, compiled, 2)
	require.Equal(t, []rune{'ɡ', 'g', 'ɠ'}, compiled['g'])
	require.Equal(t, []rune{'o', 'ο'}, compiled['o'], "later group replaces earlier one")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	err := glyphtable.WriteJSON(&buf, [][]rune{{'o', 'о'}, {'g', 'ɡ'}, {'Φ', 'Ф'}})
	require.NoError(t, err)

	want := "{\n" +
		"  \"g\": [\"g\",\"ɡ\"],\n" +
		"  \"o\": [\"o\",\"о\"]\n" +
		"}\n"
	require.Equal(t, want, buf.String())

	// the compiled form loads back into the same groups
	groups, err := glyphtable.ParseJSON(&buf)
	require.NoError(t, err)
	require.Equal(t, [][]rune{{'g', 'ɡ'}, {'o', 'о'}}, groups)
}
