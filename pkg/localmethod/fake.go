package localmethod

import (
	"sync/atomic"

	"github.com/jihwankim/tiktak/pkg/problem"
)

// FakeMethod is a deterministic Method test double. Solve reports the result
// of calling Fn, or simulates a backend failure for a configurable fraction
// of calls via FailEvery.
type FakeMethod struct {
	// Fn computes the terminal location for a given start; the reported value
	// is Evaluate at that location after clamping. If nil, the fake simply
	// returns x0 with Evaluate(x0) as the value.
	Fn func(p *problem.BoundedProblem, x0 []float64) []float64

	// FailEvery, if > 0, makes every FailEvery-th call report ok == false
	// (simulating WorkerLoss / LocalMethodFailure).
	FailEvery int

	// calls counts Solve invocations. The coordinator drives Method.Solve
	// concurrently via evalpool.Map, so this must be an atomic counter, not a
	// plain int.
	calls atomic.Int64
}

var _ Method = (*FakeMethod)(nil)

func (f *FakeMethod) Solve(p *problem.BoundedProblem, x0 []float64, opts Options) (Result, bool) {
	n := f.calls.Add(1)
	if f.FailEvery > 0 && n%int64(f.FailEvery) == 0 {
		return Result{}, false
	}

	loc := x0
	if f.Fn != nil {
		loc = f.Fn(p, x0)
	}
	loc = append([]float64(nil), loc...)
	p.Clamp(loc)

	return Result{
		Location: loc,
		Value:    p.Evaluate(loc),
		Status:   StatusConverged,
	}, true
}
