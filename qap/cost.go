// Package qap - objective recomputation for a fixed assignment.
//
// These helpers evaluate the model objective directly from a decoded
// layout, independently of any engine. They exist for diagnostics and
// for cross-checking an engine's reported objective against the
// assignment it returned.
package qap

import (
	"github.com/eswai/or-keymap-optimizer/bigram"
	"github.com/eswai/or-keymap-optimizer/layout"
)

// AssignmentCost returns the typing cost of a fixed assignment in the
// original penalty units: the sum over position pairs k1<k2 of
// freq(symbol@k1, symbol@k2) · penalty[k1][k2].
//
// Contract: keys[k] is the symbol id at position k; keys must be a
// permutation of [0, n) with n == freq.Len() == len(penalty).
//
// Complexity: O(n²).
func AssignmentCost(keys []int, freq *bigram.Table, penalty [][]float64) float64 {
	var (
		n    = len(keys)
		cost float64
	)
	for k1 := 0; k1 < n; k1++ {
		for k2 := k1 + 1; k2 < n; k2++ {
			cost += float64(freq.At(keys[k1], keys[k2])) * penalty[k1][k2]
		}
	}

	return cost
}

// ScaledAssignmentCost is AssignmentCost computed with the same
// integer-scaled weights the engine minimizes, so the result matches an
// engine-reported cost exactly (no float accumulation drift).
//
// Complexity: O(n²).
func ScaledAssignmentCost(keys []int, freq *bigram.Table, penalty [][]float64, scale int) int64 {
	var (
		n      = len(keys)
		scaled = scalePenalty(penalty, scale)
		cost   int64
	)
	for k1 := 0; k1 < n; k1++ {
		for k2 := k1 + 1; k2 < n; k2++ {
			cost += freq.At(keys[k1], keys[k2]) * scaled[k1][k2]
		}
	}

	return cost
}

// SymbolKeys resolves a solved layout back to symbol ids: out[k] is the
// id of the symbol placed at position k.
func SymbolKeys(l layout.Layout, ab *layout.Alphabet) ([]int, error) {
	out := make([]int, len(l.Keys))
	for k, r := range l.Keys {
		id, ok := ab.ID(r)
		if !ok {
			return nil, ErrDecodeInconsistency
		}
		out[k] = id
	}

	return out, nil
}
