// Package glyphtable builds the homoglyph equivalence table shared by the
// detector and the generator.
//
// A table is built once from a list of equivalence groups and is immutable
// afterwards, so a single *Table can be read by any number of goroutines
// without coordination.
package glyphtable

import (
	"maps"
	"slices"
	"unicode"
)

// IsSafe reports whether r belongs to the fixed safe character set
// (a-z, A-Z, 0-9, '-' and '.'). Safe characters are the canonical
// representatives of equivalence groups.
func IsSafe(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '-' || r == '.':
		return true
	default:
		return false
	}
}

// Table holds the canonical and sibling lookups.
type Table struct {
	// canonical maps a character to the safe representative of its group.
	// Characters missing from the map are already canonical.
	canonical map[rune]rune
	// siblings maps a character to every character it is interchangeable with,
	// itself included.
	siblings map[rune][]rune
}

// New builds a table from the given equivalence groups.
//
// Every safe character maps to itself. For each group the first safe member
// becomes the representative of the other members; safe members are never
// remapped. A later group overrides the representative of a non-safe
// character it shares with an earlier one. Groups without a safe member add
// no canonical rule but still feed the sibling lookup. A character found in
// several groups gets the union of those groups as its siblings.
//
// Lookups happen after case folding, so the lower-case form of a remapped
// character inherits its representative unless some group already gives it
// one.
func New(groups [][]rune) *Table {
	t := &Table{
		canonical: make(map[rune]rune, 64),
		siblings:  make(map[rune][]rune),
	}

	for r := rune(0); r < 0x80; r++ {
		if IsSafe(r) {
			t.canonical[r] = r
		}
	}

	for _, group := range groups {
		if len(group) == 0 {
			continue
		}

		if safe, ok := firstSafe(group); ok {
			for _, r := range group {
				if !IsSafe(r) {
					t.canonical[r] = safe
				}
			}
		}

		for _, r := range group {
			t.siblings[r] = appendUnique(t.siblings[r], group)
		}
	}

	// the lowest capital wins when two share a lower-case form
	folded := make(map[rune]rune)
	for _, r := range slices.Sorted(maps.Keys(t.canonical)) {
		lower := unicode.ToLower(r)
		if lower == r {
			continue
		}
		if _, ok := t.canonical[lower]; ok {
			continue
		}
		if _, ok := folded[lower]; !ok {
			folded[lower] = t.canonical[r]
		}
	}
	for r, c := range folded {
		t.canonical[r] = c
	}

	return t
}

func firstSafe(group []rune) (rune, bool) {
	for _, r := range group {
		if IsSafe(r) {
			return r, true
		}
	}

	return 0, false
}

func appendUnique(dst []rune, src []rune) []rune {
	for _, r := range src {
		if !slices.Contains(dst, r) {
			dst = append(dst, r)
		}
	}

	return dst
}

// Canonical returns the safe representative of r, or r itself when r has no
// rewrite rule.
func (t *Table) Canonical(r rune) rune {
	if c, ok := t.canonical[r]; ok {
		return c
	}

	return r
}

// Siblings returns a copy of the equivalence group of r, r included.
// It returns nil when r is not part of any group.
func (t *Table) Siblings(r rune) []rune {
	return slices.Clone(t.siblings[r])
}

// Lookalikes returns the siblings of r excluding r itself.
func (t *Table) Lookalikes(r rune) []rune {
	group := t.siblings[r]
	out := make([]rune, 0, len(group))
	for _, s := range group {
		if s != r {
			out = append(out, s)
		}
	}

	return out
}

// HasLookalikes reports whether r has at least one distinct lookalike.
func (t *Table) HasLookalikes(r rune) bool {
	return len(t.siblings[r]) > 1
}

// Len returns the number of characters present in the sibling lookup.
func (t *Table) Len() int { return len(t.siblings) }

// CanonicalLen returns the number of canonical rules, identity rules for the
// safe characters included.
func (t *Table) CanonicalLen() int { return len(t.canonical) }
