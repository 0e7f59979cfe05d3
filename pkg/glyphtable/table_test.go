package glyphtable_test

import (
	"homoglyph/pkg/glyphtable"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsSafe(t *testing.T) {
	for _, r := range "abcxyzABCXYZ0189-." {
		require.Truef(t, glyphtable.IsSafe(r), "%q should be safe", r)
	}
	for _, r := range "_ /:@ɡоÀ​" {
		require.Falsef(t, glyphtable.IsSafe(r), "%q should not be safe", r)
	}
}

func TestNew_SingleGroup(t *testing.T) {
	table := glyphtable.New([][]rune{{'g', 'ɡ', 'ɠ'}})

	require.Equal(t, 'g', table.Canonical('ɡ'))
	require.Equal(t, 'g', table.Canonical('ɠ'))
	require.Equal(t, 'g', table.Canonical('g'))
	require.ElementsMatch(t, []rune{'g', 'ɡ', 'ɠ'}, table.Siblings('g'))
	require.ElementsMatch(t, []rune{'g', 'ɡ', 'ɠ'}, table.Siblings('ɠ'))
	require.ElementsMatch(t, []rune{'ɡ', 'ɠ'}, table.Lookalikes('g'))
	require.True(t, table.HasLookalikes('ɡ'))
}

func TestNew_SafeIdentity(t *testing.T) {
	// the first safe member is the representative, other safe members keep identity
	table := glyphtable.New([][]rune{{'l', '1', 'ӏ'}, {'o', '0', 'о'}})

	for r := rune(0); r < 0x80; r++ {
		if glyphtable.IsSafe(r) {
			require.Equalf(t, r, table.Canonical(r), "safe %q must map to itself", r)
		}
	}
	require.Equal(t, 'l', table.Canonical('ӏ'))
	require.Equal(t, 'o', table.Canonical('о'))

	empty := glyphtable.New(nil)
	require.Equal(t, 'Q', empty.Canonical('Q'))
	require.Equal(t, 64, empty.CanonicalLen())
}

func TestNew_GroupWithoutSafeMember(t *testing.T) {
	table := glyphtable.New([][]rune{{'Φ', 'Ф'}})

	require.Equal(t, 'Φ', table.Canonical('Φ'))
	require.Equal(t, 'Ф', table.Canonical('Ф'))
	require.Equal(t, []rune{'Ф'}, table.Lookalikes('Φ'))
	require.Equal(t, 64, table.CanonicalLen())
}

func TestNew_SiblingsUnion(t *testing.T) {
	table := glyphtable.New([][]rune{{'o', 'о', 'ο'}, {'0', 'о', 'ዐ'}})

	require.Equal(t, []rune{'o', 'о', 'ο', '0', 'ዐ'}, table.Siblings('о'))
	require.Equal(t, []rune{'o', 'о', 'ο'}, table.Siblings('o'))
	// a later group overrides the representative of a shared member
	require.Equal(t, '0', table.Canonical('о'))
	require.Equal(t, '0', table.Canonical('ዐ'))
}

func TestTable_UnknownRune(t *testing.T) {
	table := glyphtable.New([][]rune{{'a', 'а'}})

	require.Equal(t, '→', table.Canonical('→'))
	require.Nil(t, table.Siblings('→'))
	require.Empty(t, table.Lookalikes('→'))
	require.False(t, table.HasLookalikes('→'))
	require.False(t, table.HasLookalikes('z'))
}

func TestTable_SiblingsReturnsCopy(t *testing.T) {
	table := glyphtable.New([][]rune{{'a', 'а'}})

	got := table.Siblings('a')
	got[0] = 'x'
	require.Equal(t, []rune{'a', 'а'}, table.Siblings('a'))
	require.Equal(t, 2, table.Len())
}

func TestNew_LowerCaseInheritsRepresentative(t *testing.T) {
	table := glyphtable.New([][]rune{{'T', 'Т', 'Τ'}, {'y', 'у'}, {'Y', 'У'}})

	require.Equal(t, 'T', table.Canonical('т'))
	require.Equal(t, 'T', table.Canonical('τ'))
	// an explicit rule for the lower-case form wins
	require.Equal(t, 'y', table.Canonical('у'))
	require.Equal(t, 'Y', table.Canonical('У'))
	// folded forms add canonical rules only
	require.Nil(t, table.Siblings('т'))
	require.Equal(t, 64+4+2, table.CanonicalLen())
}
