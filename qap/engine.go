// Package qap - the narrow boundary to the external solving engine.
//
// The core never implements combinatorial search itself; it hands the
// finished model to any backend that can solve linear boolean programs
// with a weighted minimization objective. Keeping the boundary to one
// method preserves substitutability across backends (and lets tests plug
// in scripted engines).
package qap

import "time"

// Outcome is what an engine reports back for one solve.
type Outcome struct {
	// Status classifies the search result. Values and Cost are meaningful
	// only for StatusOptimal and StatusFeasible.
	Status Status

	// Values holds the solved truth value of every model variable,
	// indexed by variable id minus one.
	Values []bool

	// Cost is the achieved integer objective value.
	Cost int64
}

// Engine solves a fully built boolean model within a wall-clock budget.
//
// Contract:
//   - the engine must respect every constraint in the model and report
//     the best integer-feasible solution found when the budget elapses
//     without provable optimality;
//   - budget 0 means unlimited;
//   - the call blocks; no state may persist between calls;
//   - no particular search strategy is assumed.
type Engine interface {
	Solve(m *Model, budget time.Duration) (Outcome, error)
}
