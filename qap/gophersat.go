// Package qap - gophersat backend.
//
// Gophersat (github.com/crillab/gophersat) is a pure-Go SAT/pseudo-boolean
// solver. The adapter translates the engine-neutral model into PB
// constraints and minimizes the cost with an incremental tightening loop:
// solve, price the model against the cost terms, add a pseudo-boolean
// bound forcing a strictly cheaper model, and repeat until the bound
// becomes unsatisfiable. This is the same descent the solver's own
// Minimize performs, driven here so the wall-clock budget can be checked
// between iterations.
//
// The budget is soft, like every deadline in this module: a single
// decision call cannot be interrupted, so the adapter may overrun one
// solver iteration before returning the best incumbent. Everything runs
// on the calling goroutine; when Solve returns, no search is left behind.
package qap

import (
	"fmt"
	"time"

	"github.com/crillab/gophersat/solver"
)

// Gophersat solves models with the gophersat pseudo-boolean solver.
// The zero value is ready to use.
type Gophersat struct {
	// Verbose makes the solver print its search-progress statistics and
	// the cost of each incumbent.
	Verbose bool
}

// Solve implements Engine.
//
// Status mapping:
//   - tightened bound proven unsatisfiable → StatusOptimal;
//   - constraints themselves unsatisfiable → StatusInfeasible;
//   - budget exhausted with an incumbent   → StatusFeasible.
func (g Gophersat) Solve(m *Model, budget time.Duration) (Outcome, error) {
	s := g.newSolver(m)

	var deadline time.Time
	if budget > 0 {
		deadline = time.Now().Add(budget)
	}

	if s.Solve() != solver.Sat {
		return Outcome{Status: StatusInfeasible}, nil
	}

	costLits, costWts := m.CostTerms()
	values := s.Model()
	cost := modelCost(values, costLits, costWts)

	// Total weight caps the at-least threshold of every bound clause.
	var maxCost int64
	for _, w := range costWts {
		maxCost += w
	}

	for cost > 0 {
		if g.Verbose {
			fmt.Printf("o %d\n", cost)
		}
		if !deadline.IsZero() && !time.Now().Before(deadline) {
			return Outcome{Status: StatusFeasible, Values: values, Cost: cost}, nil
		}
		s.AppendClause(costBound(costLits, costWts, maxCost-cost+1))
		if s.Solve() != solver.Sat {
			// No strictly cheaper model exists: the incumbent is optimal.
			break
		}
		values = s.Model()
		cost = modelCost(values, costLits, costWts)
	}

	return Outcome{Status: StatusOptimal, Values: values, Cost: cost}, nil
}

// newSolver translates the model into a gophersat problem.
func (g Gophersat) newSolver(m *Model) *solver.Solver {
	constrs := make([]solver.PBConstr, 0, 3*m.NumSymbols()+len(m.Clauses()))

	// Exactly-one per symbol, expressed as an at-least-1/at-most-1 pair.
	for _, lits := range m.ExactlyOne() {
		constrs = append(constrs, solver.AtLeast(lits, 1), solver.AtMost(lits, 1))
	}
	// At-most-one per position.
	for _, lits := range m.AtMostOne() {
		constrs = append(constrs, solver.AtMost(lits, 1))
	}
	// Linking clauses.
	for _, cl := range m.Clauses() {
		constrs = append(constrs, solver.PropClause(cl...))
	}

	pb := solver.ParsePBConstrs(constrs)

	// Register the objective so the solver biases polarity towards
	// falsifying cost literals.
	costLits, costWts := m.CostTerms()
	if len(costLits) > 0 {
		lits := make([]solver.Lit, len(costLits))
		wts := make([]int, len(costWts))
		for i := range costLits {
			lits[i] = solver.IntToLit(int32(costLits[i]))
			wts[i] = int(costWts[i])
		}
		pb.SetCostFunc(lits, wts)
	}

	s := solver.New(pb)
	s.Verbose = g.Verbose

	return s
}

// modelCost prices a model against the cost terms. Cost literals are
// positive variable ids, so a term contributes when its variable is true.
func modelCost(values []bool, costLits []int, costWts []int64) int64 {
	var cost int64
	for i, id := range costLits {
		if values[id-1] {
			cost += costWts[i]
		}
	}

	return cost
}

// costBound builds the pseudo-boolean clause requiring the summed weight
// of falsified cost literals to reach atLeast, which forces the weighted
// cost of the true ones strictly below the current incumbent.
func costBound(costLits []int, costWts []int64, atLeast int64) *solver.Clause {
	lits := make([]solver.Lit, len(costLits))
	wts := make([]int, len(costWts))
	for i, id := range costLits {
		lits[i] = solver.IntToLit(int32(-id))
		wts[i] = int(costWts[i])
	}

	return solver.NewPBClause(lits, wts, int(atLeast))
}
