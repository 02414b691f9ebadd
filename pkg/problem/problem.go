// Package problem describes the bounded objective the coordinator searches over.
package problem

import (
	"errors"
	"fmt"
)

// ErrInvalidBounds marks a BoundedProblem construction that was rejected for
// degenerate, inverted, or mismatched bounds. Wrapped by New via %w so
// callers can errors.Is against it.
var ErrInvalidBounds = errors.New("problem: invalid bounds")

// Objective is a pure, thread-safe-under-replication real-valued function over
// ℝᴺ. The coordinator only calls Objective concurrently across separate worker
// replicas, never concurrently within the same replica (see §5 of the spec).
type Objective func(x []float64) float64

// BoundedProblem is an immutable description of the objective and its box
// bounds. Callers are responsible for generating in-bounds locations; the
// sampler and the pull schedule both preserve bounds by construction.
type BoundedProblem struct {
	objective Objective
	lower     []float64
	upper     []float64
}

// New constructs a BoundedProblem. It returns an error if the bounds are
// degenerate or inverted (lower[i] >= upper[i] for some i) or if N == 0.
func New(objective Objective, lower, upper []float64) (*BoundedProblem, error) {
	if objective == nil {
		return nil, fmt.Errorf("problem: objective must not be nil")
	}
	if len(lower) == 0 {
		return nil, fmt.Errorf("%w: dimension must be >= 1", ErrInvalidBounds)
	}
	if len(lower) != len(upper) {
		return nil, fmt.Errorf("%w: lower and upper must have equal length (%d != %d)", ErrInvalidBounds, len(lower), len(upper))
	}
	for i := range lower {
		if !(lower[i] < upper[i]) {
			return nil, fmt.Errorf("%w: at index %d: lower[%d]=%v >= upper[%d]=%v", ErrInvalidBounds, i, i, lower[i], i, upper[i])
		}
	}
	return &BoundedProblem{
		objective: objective,
		lower:     append([]float64(nil), lower...),
		upper:     append([]float64(nil), upper...),
	}, nil
}

// Dim returns the dimension N of the search space.
func (p *BoundedProblem) Dim() int { return len(p.lower) }

// Lower returns a copy of the lower bound vector.
func (p *BoundedProblem) Lower() []float64 { return append([]float64(nil), p.lower...) }

// Upper returns a copy of the upper bound vector.
func (p *BoundedProblem) Upper() []float64 { return append([]float64(nil), p.upper...) }

// Evaluate calls the objective at x. The caller must ensure x is within bounds.
func (p *BoundedProblem) Evaluate(x []float64) float64 {
	return p.objective(x)
}

// InBounds reports whether x satisfies lower <= x <= upper componentwise.
func (p *BoundedProblem) InBounds(x []float64) bool {
	if len(x) != len(p.lower) {
		return false
	}
	for i, v := range x {
		if v < p.lower[i] || v > p.upper[i] {
			return false
		}
	}
	return true
}

// Clamp projects x onto the box in place and returns it.
func (p *BoundedProblem) Clamp(x []float64) []float64 {
	for i, v := range x {
		if v < p.lower[i] {
			x[i] = p.lower[i]
		} else if v > p.upper[i] {
			x[i] = p.upper[i]
		}
	}
	return x
}
