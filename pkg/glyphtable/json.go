package glyphtable

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"unicode/utf8"

	"github.com/go-faster/jx"
)

// ParseJSON reads equivalence groups from the pre-compiled format: a JSON
// object whose keys are safe characters and whose values are the full groups
// as arrays of single-character strings.
//
// The key is moved to the front of its group so that it is always chosen as
// the canonical representative. Keys that are not a single safe character
// and members that are not a single character are skipped.
func ParseJSON(r io.Reader) ([][]rune, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read homoglyph map: %w", err)
	}

	var groups [][]rune
	d := jx.DecodeBytes(data)
	if err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		safe, ok := singleRune(string(key))
		if !ok || !IsSafe(safe) {
			return d.Skip()
		}

		group := []rune{safe}
		if err := d.Arr(func(d *jx.Decoder) error {
			if d.Next() != jx.String {
				return d.Skip()
			}
			member, err := d.Str()
			if err != nil {
				return err
			}
			if r, ok := singleRune(member); ok && !slices.Contains(group, r) {
				group = append(group, r)
			}

			return nil
		}); err != nil {
			return fmt.Errorf("group %q: %w", key, err)
		}

		groups = append(groups, group)

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not decode homoglyph map: %w", err)
	}

	return groups, nil
}

func singleRune(s string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, false
	}

	return r, true
}

// Compile converts equivalence groups into the pre-compiled layout keyed by
// safe character. Groups without a safe member are dropped and a later group
// replaces an earlier one with the same key.
func Compile(groups [][]rune) map[rune][]rune {
	out := make(map[rune][]rune, len(groups))
	for _, group := range groups {
		if safe, ok := firstSafe(group); ok {
			out[safe] = slices.Clone(group)
		}
	}

	return out
}

// WriteJSON writes the compiled form of groups to w, one key per line with
// keys in ascending order. Non-ASCII characters are written verbatim.
func WriteJSON(w io.Writer, groups [][]rune) error {
	compiled := Compile(groups)

	keys := make([]rune, 0, len(compiled))
	for k := range compiled {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, k := range keys {
		var key, group jx.Encoder
		key.Str(string(k))
		buf.WriteString("  ")
		buf.Write(key.Bytes())
		buf.WriteString(": ")

		group.ArrStart()
		for _, r := range compiled[k] {
			group.Str(string(r))
		}
		group.ArrEnd()
		buf.Write(group.Bytes())

		if i < len(keys)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("could not write homoglyph map: %w", err)
	}

	return nil
}
