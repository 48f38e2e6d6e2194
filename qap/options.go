// Package qap - solver configuration.
//
// Options follow the functional-options pattern: start from
// DefaultOptions, apply overrides, validate once in Optimize.
package qap

import "time"

// DefaultTimeLimit bounds the wall-clock solve budget when none is set.
// The full 30-key instance is far beyond provable optimality, so runs are
// expected to end with the best incumbent at the deadline.
const DefaultTimeLimit = 900 * time.Second

// DefaultCostScale converts real penalties to the integer weights the
// pseudo-boolean engine requires: weights are round(penalty·scale).
// 1000 preserves the three decimals of the built-in penalty data exactly.
const DefaultCostScale = 1000

// Options configures one optimization call.
//
// TimeLimit  - wall-clock budget; 0 means unlimited. The limit is soft:
// the engine checks the deadline between search iterations and may
// overrun one iteration before returning.
// CostScale  - penalty→integer weight multiplier; must be positive.
// DenseLinks - materialize link variables for zero-frequency symbol pairs
// too. Off by default: such pairs carry weight 0 and cannot change the
// optimum, only enlarge the model.
// Verbose    - surface the engine's own search-progress output.
// Engine     - the solving backend; defaults to the gophersat engine.
type Options struct {
	TimeLimit  time.Duration
	CostScale  int
	DenseLinks bool
	Verbose    bool
	Engine     Engine
}

// Option is a functional option for configuring Optimize.
type Option func(*Options)

// WithTimeLimit sets the wall-clock solve budget. 0 means unlimited.
// Negative values are rejected by Optimize with ErrBadTimeLimit.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) { o.TimeLimit = d }
}

// WithCostScale sets the penalty→integer scaling factor.
// Non-positive values are rejected by Optimize with ErrBadCostScale.
func WithCostScale(scale int) Option {
	return func(o *Options) { o.CostScale = scale }
}

// WithDenseLinks materializes link variables for all ordered symbol
// pairs, including pairs never observed in the corpus.
func WithDenseLinks() Option {
	return func(o *Options) { o.DenseLinks = true }
}

// WithVerbose enables the engine's search-progress output.
func WithVerbose() Option {
	return func(o *Options) { o.Verbose = true }
}

// WithEngine substitutes the solving backend.
// Nil engines are rejected by Optimize with ErrNilEngine.
func WithEngine(e Engine) Option {
	return func(o *Options) { o.Engine = e }
}

// DefaultOptions returns the options used when no overrides are given:
// 900 s soft budget, cost scale 1000, sparse link construction, quiet,
// gophersat engine.
func DefaultOptions() Options {
	return Options{
		TimeLimit: DefaultTimeLimit,
		CostScale: DefaultCostScale,
		Engine:    Gophersat{},
	}
}

// validateOptions checks internal consistency of Options before any
// model building happens.
//
// Complexity: O(1).
func validateOptions(o Options) error {
	if o.TimeLimit < 0 {
		return ErrBadTimeLimit
	}
	if o.CostScale <= 0 {
		return ErrBadCostScale
	}
	if o.Engine == nil {
		return ErrNilEngine
	}

	return nil
}
