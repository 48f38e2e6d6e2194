// Package layout - penalty matrix validation.
//
// ValidatePenalty is the single entry point all solvers rely on: once it
// has accepted a matrix, downstream code indexes it without further
// checks. It mirrors the strictness of a distance-matrix validator:
// shape first, then a full value scan.
package layout

import "math"

// ValidatePenalty verifies that p is an n×n matrix of finite,
// non-negative entries.
//
// Contract:
//   - len(p) == n and every row has length n, otherwise ErrNonSquare
//     (ragged) or ErrDimensionMismatch (size != n).
//   - entries must not be NaN or ±Inf (ErrBadPenalty).
//   - entries must be >= 0 (ErrNegativePenalty).
//
// The diagonal is not constrained: position pairs are always distinct, so
// p[i][i] is never read by the optimizer.
//
// Complexity: O(n²) time, O(1) space.
func ValidatePenalty(p [][]float64, n int) error {
	if len(p) != n {
		return ErrDimensionMismatch
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		if len(p[i]) != n {
			return ErrNonSquare
		}
		for j = 0; j < n; j++ {
			v = p[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return ErrBadPenalty
			}
			if v < 0 {
				return ErrNegativePenalty
			}
		}
	}

	return nil
}
