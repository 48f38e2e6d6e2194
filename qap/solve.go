// Package qap - unified entry point: validate → build → solve → decode.
//
// Optimize is the only call most users need. It is synchronous and
// single-shot: every variable and constraint is created for this call,
// consumed by the engine, and released when the call returns.
package qap

import (
	"github.com/eswai/or-keymap-optimizer/bigram"
	"github.com/eswai/or-keymap-optimizer/layout"
)

// Optimize computes a minimum-typing-cost assignment of the alphabet's
// symbols to key positions.
//
// Contracts:
//   - ab must be non-nil; positions are implicitly [0, ab.Len()).
//   - penalty must be ab.Len()×ab.Len(), finite, non-negative
//     (layout.ValidatePenalty); mismatched sizes are rejected, never
//     silently truncated to a partial assignment.
//   - freq must be non-nil and built for the same alphabet size.
//
// Errors: option sentinels (ErrBadTimeLimit, ErrBadCostScale,
// ErrNilEngine), input sentinels (ErrNilAlphabet, ErrNilFrequency,
// ErrDimensionMismatch, layout sentinels), ErrNoSolution when the engine
// proves infeasibility or finds nothing within the budget, and
// ErrDecodeInconsistency on a malformed engine model (encoding bug).
//
// On ErrNoSolution the returned Result still carries the Status
// (StatusInfeasible vs StatusUnknown) for diagnostics.
//
// Complexity: model construction as documented on buildModel; solve time
// is up to the engine, bounded by the wall-clock budget.
func Optimize(ab *layout.Alphabet, penalty [][]float64, freq *bigram.Table, opts ...Option) (Result, error) {
	// Stage 1 - options.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validateOptions(o); err != nil {
		return Result{}, err
	}
	// Verbose is a property of the solve, not of a particular backend;
	// propagate it when the default engine is in use.
	if o.Verbose {
		if g, ok := o.Engine.(Gophersat); ok {
			g.Verbose = true
			o.Engine = g
		}
	}

	// Stage 2 - inputs.
	if ab == nil {
		return Result{}, ErrNilAlphabet
	}
	if freq == nil {
		return Result{}, ErrNilFrequency
	}
	n := ab.Len()
	if freq.Len() != n {
		return Result{}, ErrDimensionMismatch
	}
	if err := layout.ValidatePenalty(penalty, n); err != nil {
		return Result{}, err
	}

	// Stage 3 - encode and solve.
	m := BuildModel(freq, penalty, o)
	out, err := o.Engine.Solve(m, o.TimeLimit)
	if err != nil {
		return Result{Status: StatusUnknown}, err
	}

	// Stage 4 - decode.
	switch out.Status {
	case StatusOptimal, StatusFeasible:
		keys, derr := decode(m, ab, out.Values)
		if derr != nil {
			return Result{Status: out.Status}, derr
		}

		return Result{
			Layout:    layout.Layout{Keys: keys},
			Status:    out.Status,
			Cost:      out.Cost,
			Objective: float64(out.Cost) / float64(o.CostScale),
		}, nil
	default:
		return Result{Status: out.Status}, ErrNoSolution
	}
}

// decode reconstructs the position→symbol mapping from the solved
// assignment variables. The link variables are not consulted: the
// linking constraints guarantee their consistency.
//
// Every position must hold exactly one symbol and every symbol must be
// used exactly once; any violation means the engine's model contradicts
// the constraints we emitted, which is ErrDecodeInconsistency.
//
// Complexity: O(n²).
func decode(m *Model, ab *layout.Alphabet, values []bool) ([]rune, error) {
	n := m.NumSymbols()
	if len(values) < n*n {
		return nil, ErrDecodeInconsistency
	}

	var (
		keys = make([]rune, n)
		used = make([]bool, n) // symbols already placed
		s, k int
	)
	for k = 0; k < n; k++ {
		found := -1
		for s = 0; s < n; s++ {
			if !values[m.AssignID(s, k)-1] {
				continue
			}
			if found >= 0 || used[s] {
				return nil, ErrDecodeInconsistency
			}
			found = s
			used[s] = true
		}
		if found < 0 {
			return nil, ErrDecodeInconsistency
		}
		keys[k] = ab.Symbol(found)
	}

	return keys, nil
}
