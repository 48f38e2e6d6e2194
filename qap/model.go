// Package qap - boolean model construction.
//
// The model is an engine-neutral data structure: plain literal slices in
// DIMACS convention (variable ids start at 1, a negative literal is a
// negated variable). Any pseudo-boolean backend can consume it; the
// gophersat adapter is just one translation.
//
// Variable arena:
//   - assignment vars occupy the dense id block [1, n²]:
//     id(s,k) = s·n + k + 1;
//   - link vars are appended after the block in allocation order, one per
//     materialized (s1,s2,k1,k2) combination.
//
// All bookkeeping is index arithmetic on fixed-size arenas; no hashing on
// the build path.
package qap

import (
	"math"

	"github.com/eswai/or-keymap-optimizer/bigram"
)

// Link records one materialized linearization variable:
// variable ID is true iff symbol S1 sits at position K1 and symbol S2 at
// position K2 (S1 ≠ S2, K1 < K2). Weight is the integer objective
// coefficient freq(S1,S2)·round(penalty[K1][K2]·scale).
type Link struct {
	S1, S2 int
	K1, K2 int
	ID     int
	Weight int64
}

// Model is a complete boolean program: variables, constraints and a
// linear minimization objective. It is built once per optimization call
// and owned by that call; nothing in it is shared or reused.
type Model struct {
	n      int
	nbVars int

	exactlyOne [][]int // per symbol: Σ lits == 1
	atMostOne  [][]int // per position: Σ lits <= 1
	clauses    [][]int // linking clauses

	links    []Link
	costLits []int
	costWts  []int64
}

// BuildModel encodes one instance. Optimize calls it internally; it is
// exported so alternative engines can be fed the same model directly.
//
// Contract: inputs are assumed validated - freq.Len() == len(penalty),
// penalty accepted by layout.ValidatePenalty, opts accepted by
// validateOptions. Optimize performs these checks.
//
// Complexity: O(n²) assignment bookkeeping plus O(1) per materialized
// link: (#ordered symbol pairs kept) × n(n-1)/2 position pairs, three
// clauses each.
func BuildModel(freq *bigram.Table, penalty [][]float64, opts Options) *Model {
	n := freq.Len()
	m := &Model{
		n:          n,
		nbVars:     n * n,
		exactlyOne: make([][]int, n),
		atMostOne:  make([][]int, n),
	}

	// Integer penalty weights, rounded once so the engine's objective and
	// any independent recomputation agree bit-for-bit.
	scaled := scalePenalty(penalty, opts.CostScale)

	// Per-symbol exactly-one and per-position at-most-one constraints.
	// With n symbols on n positions the pair forces a full bijection.
	var s, k int
	for s = 0; s < n; s++ {
		lits := make([]int, n)
		for k = 0; k < n; k++ {
			lits[k] = m.AssignID(s, k)
		}
		m.exactlyOne[s] = lits
	}
	for k = 0; k < n; k++ {
		lits := make([]int, n)
		for s = 0; s < n; s++ {
			lits[s] = m.AssignID(s, k)
		}
		m.atMostOne[k] = lits
	}

	// Link variables and their AND-linking clauses, per ordered symbol
	// pair and position pair k1<k2. Sparse mode skips pairs the corpus
	// never produces: their objective weight is 0, so leaving them out
	// cannot change the optimum. Each ordered pair is materialized
	// independently - dropping (s1,s2) never affects (s2,s1).
	var (
		s1, s2, k1, k2 int
		f              int64
	)
	for s1 = 0; s1 < n; s1++ {
		for s2 = 0; s2 < n; s2++ {
			if s1 == s2 {
				continue
			}
			f = freq.At(s1, s2)
			if f == 0 && !opts.DenseLinks {
				continue
			}
			for k1 = 0; k1 < n; k1++ {
				for k2 = k1 + 1; k2 < n; k2++ {
					m.addLink(s1, s2, k1, k2, f*scaled[k1][k2])
				}
			}
		}
	}

	return m
}

// addLink allocates a link variable for (s1,s2,k1,k2), emits its three
// linking clauses and, for non-zero weights, its objective term.
//
// The clauses make L an exact logical AND of the two assignment vars:
//
//	L ⇒ A1         (¬L ∨ A1)
//	L ⇒ A2         (¬L ∨ A2)
//	A1 ∧ A2 ⇒ L    (L ∨ ¬A1 ∨ ¬A2)
func (m *Model) addLink(s1, s2, k1, k2 int, weight int64) {
	m.nbVars++
	var (
		id = m.nbVars
		a1 = m.AssignID(s1, k1)
		a2 = m.AssignID(s2, k2)
	)

	m.clauses = append(m.clauses,
		[]int{-id, a1},
		[]int{-id, a2},
		[]int{id, -a1, -a2},
	)
	m.links = append(m.links, Link{S1: s1, S2: s2, K1: k1, K2: k2, ID: id, Weight: weight})

	if weight != 0 {
		m.costLits = append(m.costLits, id)
		m.costWts = append(m.costWts, weight)
	}
}

// scalePenalty converts the real penalty matrix to integer weights:
// scaled[i][j] = round(penalty[i][j]·scale).
func scalePenalty(penalty [][]float64, scale int) [][]int64 {
	out := make([][]int64, len(penalty))
	for i, row := range penalty {
		srow := make([]int64, len(row))
		for j, v := range row {
			srow[j] = int64(math.Round(v * float64(scale)))
		}
		out[i] = srow
	}

	return out
}

// AssignID returns the variable id of "symbol s occupies position k".
// Ids are 1-based; both s and k must be in [0, NumSymbols()).
func (m *Model) AssignID(s, k int) int { return s*m.n + k + 1 }

// NumSymbols returns n, the number of symbols (== key positions).
func (m *Model) NumSymbols() int { return m.n }

// NumVars returns the total variable count (assignment + link vars).
func (m *Model) NumVars() int { return m.nbVars }

// ExactlyOne returns the per-symbol exactly-one literal groups.
func (m *Model) ExactlyOne() [][]int { return m.exactlyOne }

// AtMostOne returns the per-position at-most-one literal groups.
func (m *Model) AtMostOne() [][]int { return m.atMostOne }

// Clauses returns the linking clauses (DIMACS literal convention).
func (m *Model) Clauses() [][]int { return m.clauses }

// Links returns the materialized link variables.
func (m *Model) Links() []Link { return m.links }

// CostTerms returns the objective as parallel literal/weight slices; the
// engine minimizes their weighted sum. Zero-weight links are omitted.
func (m *Model) CostTerms() ([]int, []int64) { return m.costLits, m.costWts }
