// Package qap - result types, statuses and sentinel errors.
package qap

import (
	"errors"

	"github.com/eswai/or-keymap-optimizer/layout"
)

// Sentinel errors returned by the qap package.
var (
	// ErrNilAlphabet indicates that a nil alphabet was passed to Optimize.
	ErrNilAlphabet = errors.New("qap: alphabet is nil")

	// ErrNilFrequency indicates that a nil frequency table was passed to Optimize.
	ErrNilFrequency = errors.New("qap: frequency table is nil")

	// ErrDimensionMismatch indicates that the frequency table was built for
	// a different alphabet size than the one being optimized.
	ErrDimensionMismatch = errors.New("qap: frequency table size does not match alphabet size")

	// ErrBadTimeLimit indicates a negative time limit.
	ErrBadTimeLimit = errors.New("qap: time limit must be non-negative")

	// ErrBadCostScale indicates a non-positive cost scale.
	ErrBadCostScale = errors.New("qap: cost scale must be positive")

	// ErrNilEngine indicates that a nil engine was configured.
	ErrNilEngine = errors.New("qap: engine is nil")

	// ErrNoSolution indicates that no feasible assignment was found:
	// either the model is infeasible or the time budget elapsed before the
	// engine reached a first incumbent. The two cases are distinguishable
	// via Result.Status.
	ErrNoSolution = errors.New("qap: no feasible assignment found")

	// ErrDecodeInconsistency indicates that the engine reported a feasible
	// model in which some position holds zero or several symbols. Given
	// correctly built constraints this cannot happen; it signals an
	// encoding bug, not a recoverable runtime condition.
	ErrDecodeInconsistency = errors.New("qap: solver model violates assignment invariants")
)

// Status classifies the outcome of a solve.
type Status int

const (
	// StatusUnknown - the budget elapsed before any feasible assignment was found.
	StatusUnknown Status = iota

	// StatusOptimal - the engine exhausted its search; the assignment is provably minimal.
	StatusOptimal

	// StatusFeasible - a valid assignment was found but optimality was not
	// proven within the time budget.
	StatusFeasible

	// StatusInfeasible - the constraints cannot be jointly satisfied.
	StatusInfeasible
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "OPTIMAL"
	case StatusFeasible:
		return "FEASIBLE"
	case StatusInfeasible:
		return "INFEASIBLE"
	default:
		return "UNKNOWN"
	}
}

// Result holds the outcome of one optimization call.
type Result struct {
	// Layout maps key position → symbol. Populated only when Status is
	// StatusOptimal or StatusFeasible.
	Layout layout.Layout

	// Status classifies the solve outcome.
	Status Status

	// Objective is the achieved typing cost Σ freq·penalty, in the
	// original (unscaled) penalty units.
	Objective float64

	// Cost is the integer objective exactly as minimized by the engine
	// (penalties scaled by Options.CostScale and rounded).
	Cost int64
}
