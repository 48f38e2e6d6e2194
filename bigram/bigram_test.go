// Package bigram_test verifies corpus bigram counting: overlapping
// occurrences, adjacency breaking, and the scaling helper.
package bigram_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eswai/or-keymap-optimizer/bigram"
	"github.com/eswai/or-keymap-optimizer/layout"
)

func abc(t *testing.T) *layout.Alphabet {
	t.Helper()
	ab, err := layout.ParseAlphabet("ABC")
	require.NoError(t, err)

	return ab
}

func id(t *testing.T, ab *layout.Alphabet, r rune) int {
	t.Helper()
	s, ok := ab.ID(r)
	require.True(t, ok)

	return s
}

func TestCount_OrderedPairs(t *testing.T) {
	ab := abc(t)
	// "ABABAB" holds three A→B transitions and two B→A transitions.
	tab := bigram.Count("ABABAB", ab)

	a, b := id(t, ab, 'A'), id(t, ab, 'B')
	require.Equal(t, int64(3), tab.At(a, b))
	require.Equal(t, int64(2), tab.At(b, a))
	require.Equal(t, int64(0), tab.At(a, a))
	require.Equal(t, int64(5), tab.Total())
}

func TestCount_OverlappingRuns(t *testing.T) {
	ab := abc(t)
	// Overlaps count independently: "AAA" contains A→A twice.
	tab := bigram.Count("AAA", ab)

	a := id(t, ab, 'A')
	require.Equal(t, int64(2), tab.At(a, a))
}

func TestCount_ForeignRuneBreaksAdjacency(t *testing.T) {
	ab := abc(t)
	tab := bigram.Count("A#B", ab)
	require.Equal(t, int64(0), tab.Total())

	tab = bigram.Count("AB#AB", ab)
	a, b := id(t, ab, 'A'), id(t, ab, 'B')
	require.Equal(t, int64(2), tab.At(a, b))
	require.Equal(t, int64(0), tab.At(b, a))
}

func TestCount_NoCaseFolding(t *testing.T) {
	// Normalization is the caller's job; lower-case input never matches.
	tab := bigram.Count("abab", abc(t))
	require.Equal(t, int64(0), tab.Total())
}

func TestCount_EmptyCorpus(t *testing.T) {
	tab := bigram.Count("", abc(t))
	require.Equal(t, 3, tab.Len())
	require.Equal(t, int64(0), tab.Total())
}

func TestTable_Scale(t *testing.T) {
	ab := abc(t)
	tab := bigram.Count("ABABAB", ab)
	a, b := id(t, ab, 'A'), id(t, ab, 'B')

	scaled := tab.Scale(4)
	require.Equal(t, int64(12), scaled.At(a, b))
	require.Equal(t, int64(8), scaled.At(b, a))

	// The source table is untouched.
	require.Equal(t, int64(3), tab.At(a, b))
}

func TestTable_Set(t *testing.T) {
	tab := bigram.NewTable(2)
	tab.Set(0, 1, 7)
	require.Equal(t, int64(7), tab.At(0, 1))
	require.Equal(t, int64(7), tab.Total())
}
