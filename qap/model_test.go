// Package qap_test - model construction tests: variable arenas,
// constraint shapes, sparse vs dense link materialization, and the
// linearization invariant checked against hand-built assignments.
package qap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eswai/or-keymap-optimizer/bigram"
	"github.com/eswai/or-keymap-optimizer/layout"
	"github.com/eswai/or-keymap-optimizer/qap"
)

// toyBoard is the shared 3-symbol fixture: typing position 0 then 1 is
// cheap, 1 then 0 slightly worse, everything else expensive.
func toyBoard(t *testing.T) (*layout.Alphabet, [][]float64, *bigram.Table) {
	t.Helper()

	ab, err := layout.ParseAlphabet("ABC")
	require.NoError(t, err)

	penalty := [][]float64{
		{0, 1, 10},
		{2, 0, 10},
		{10, 10, 0},
	}
	// "ABABAB": freq(A,B)=3, freq(B,A)=2, everything else 0.
	freq := bigram.Count("ABABAB", ab)

	return ab, penalty, freq
}

// litTrue evaluates a DIMACS literal against a dense value slice.
func litTrue(vals []bool, lit int) bool {
	if lit > 0 {
		return vals[lit-1]
	}

	return !vals[-lit-1]
}

// satisfies reports whether vals meets every model constraint.
func satisfies(m *qap.Model, vals []bool) bool {
	for _, grp := range m.ExactlyOne() {
		n := 0
		for _, l := range grp {
			if litTrue(vals, l) {
				n++
			}
		}
		if n != 1 {
			return false
		}
	}
	for _, grp := range m.AtMostOne() {
		n := 0
		for _, l := range grp {
			if litTrue(vals, l) {
				n++
			}
		}
		if n > 1 {
			return false
		}
	}
	for _, cl := range m.Clauses() {
		sat := false
		for _, l := range cl {
			if litTrue(vals, l) {
				sat = true

				break
			}
		}
		if !sat {
			return false
		}
	}

	return true
}

// valuesFor builds a full variable valuation from a placement
// keys[k] = symbol id, with every link var set to the AND of its
// assignment vars.
func valuesFor(m *qap.Model, keys []int) []bool {
	vals := make([]bool, m.NumVars())
	for k, s := range keys {
		vals[m.AssignID(s, k)-1] = true
	}
	for _, l := range m.Links() {
		vals[l.ID-1] = vals[m.AssignID(l.S1, l.K1)-1] && vals[m.AssignID(l.S2, l.K2)-1]
	}

	return vals
}

func TestBuildModel_SparseCounts(t *testing.T) {
	_, penalty, freq := toyBoard(t)
	m := qap.BuildModel(freq, penalty, qap.DefaultOptions())

	require.Equal(t, 3, m.NumSymbols())
	// Two observed ordered pairs × three position pairs = 6 link vars on
	// top of the 9 assignment vars; 3 clauses per link.
	require.Len(t, m.Links(), 6)
	require.Equal(t, 9+6, m.NumVars())
	require.Len(t, m.Clauses(), 18)
	require.Len(t, m.ExactlyOne(), 3)
	require.Len(t, m.AtMostOne(), 3)

	lits, wts := m.CostTerms()
	require.Len(t, lits, 6)
	require.Len(t, wts, 6)
}

func TestBuildModel_DenseCounts(t *testing.T) {
	_, penalty, freq := toyBoard(t)
	opts := qap.DefaultOptions()
	qap.WithDenseLinks()(&opts)
	m := qap.BuildModel(freq, penalty, opts)

	// All six ordered symbol pairs are materialized, but zero-frequency
	// pairs still contribute no objective term.
	require.Len(t, m.Links(), 18)
	require.Equal(t, 9+18, m.NumVars())
	lits, _ := m.CostTerms()
	require.Len(t, lits, 6)
}

func TestBuildModel_AssignIDArena(t *testing.T) {
	_, penalty, freq := toyBoard(t)
	m := qap.BuildModel(freq, penalty, qap.DefaultOptions())

	// Dense block: id(s,k) = s·n + k + 1.
	require.Equal(t, 1, m.AssignID(0, 0))
	require.Equal(t, 3, m.AssignID(0, 2))
	require.Equal(t, 9, m.AssignID(2, 2))

	require.Equal(t, []int{1, 2, 3}, m.ExactlyOne()[0])
	require.Equal(t, []int{1, 4, 7}, m.AtMostOne()[0])
}

func TestBuildModel_LinkWeights(t *testing.T) {
	ab, penalty, freq := toyBoard(t)
	m := qap.BuildModel(freq, penalty, qap.DefaultOptions())

	a, _ := ab.ID('A')
	b, _ := ab.ID('B')

	weights := map[[4]int]int64{}
	for _, l := range m.Links() {
		weights[[4]int{l.S1, l.S2, l.K1, l.K2}] = l.Weight
	}

	// freq(A,B)=3 on penalty[0][1]=1 at scale 1000, and so on. The
	// direction is never symmetrized: (A,B) and (B,A) price differently.
	require.Equal(t, int64(3*1000), weights[[4]int{a, b, 0, 1}])
	require.Equal(t, int64(2*1000), weights[[4]int{b, a, 0, 1}])
	require.Equal(t, int64(3*10000), weights[[4]int{a, b, 1, 2}])
	require.Equal(t, int64(2*10000), weights[[4]int{b, a, 0, 2}])
}

func TestModel_LinkEqualsAssignmentAND(t *testing.T) {
	_, penalty, freq := toyBoard(t)
	m := qap.BuildModel(freq, penalty, qap.DefaultOptions())

	// Any bijection with honest link values satisfies the model.
	for _, keys := range permutations(3) {
		require.True(t, satisfies(m, valuesFor(m, keys)), "placement %v", keys)
	}

	// Breaking a single link value in either direction violates a clause.
	keys := []int{0, 1, 2}
	for i := range m.Links() {
		vals := valuesFor(m, keys)
		vals[m.Links()[i].ID-1] = !vals[m.Links()[i].ID-1]
		require.False(t, satisfies(m, vals), "link %d", i)
	}
}

func TestModel_NonBijectionRejected(t *testing.T) {
	_, penalty, freq := toyBoard(t)
	m := qap.BuildModel(freq, penalty, qap.DefaultOptions())

	// Two symbols on one position.
	vals := make([]bool, m.NumVars())
	vals[m.AssignID(0, 0)-1] = true
	vals[m.AssignID(1, 0)-1] = true
	vals[m.AssignID(2, 2)-1] = true
	require.False(t, satisfies(m, vals))

	// A symbol with no position at all.
	vals = make([]bool, m.NumVars())
	vals[m.AssignID(0, 0)-1] = true
	vals[m.AssignID(1, 1)-1] = true
	require.False(t, satisfies(m, vals))
}

// permutations enumerates all orderings of [0, n).
func permutations(n int) [][]int {
	base := make([]int, n)
	for i := range base {
		base[i] = i
	}

	var (
		out [][]int
		rec func(k int)
	)
	rec = func(k int) {
		if k == n {
			perm := make([]int, n)
			copy(perm, base)
			out = append(out, perm)

			return
		}
		for i := k; i < n; i++ {
			base[k], base[i] = base[i], base[k]
			rec(k + 1)
			base[k], base[i] = base[i], base[k]
		}
	}
	rec(0)

	return out
}
