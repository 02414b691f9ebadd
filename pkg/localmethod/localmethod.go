// Package localmethod defines the bound-constrained local minimizer contract
// the coordinator drives, plus adapters over concrete backends.
package localmethod

import (
	"time"

	"github.com/jihwankim/tiktak/pkg/problem"
)

// Status is a backend-reported termination reason.
type Status string

const (
	StatusConverged      Status = "converged"
	StatusValueReached   Status = "value_target_reached"
	StatusXTolReached    Status = "xtol_reached"
	StatusFTolReached    Status = "ftol_reached"
	StatusBudgetReached  Status = "budget_reached"
	StatusTimeReached    Status = "time_reached"
	StatusBackendFailure Status = "backend_failure"
)

// DefaultSuccessSet is the default set of terminating statuses the
// coordinator treats as success. Any status outside this set — including
// StatusBackendFailure — causes the candidate to be dropped.
func DefaultSuccessSet() map[Status]bool {
	return map[Status]bool{
		StatusConverged:     true,
		StatusValueReached:  true,
		StatusXTolReached:   true,
		StatusFTolReached:   true,
		StatusBudgetReached: true,
		StatusTimeReached:   true,
	}
}

// Options configures a single Solve call.
type Options struct {
	XTolAbs         float64
	XTolRel         float64
	MaxEval         int
	MaxTime         time.Duration
	SuccessStatuses map[Status]bool // nil means DefaultSuccessSet()
}

func (o Options) successSet() map[Status]bool {
	if o.SuccessStatuses != nil {
		return o.SuccessStatuses
	}
	return DefaultSuccessSet()
}

// Result is a completed local run. The coordinator only ever sees a Result
// when Accepted is true for the configured success set — Solve itself reports
// the raw status, and the caller (EvaluationPool via the coordinator) decides
// whether to keep it.
type Result struct {
	Location []float64
	Value    float64
	Status   Status
}

// Accepted reports whether r's status is in opts' success set.
func (r Result) Accepted(opts Options) bool {
	return opts.successSet()[r.Status]
}

// Method is a bound-constrained local minimizer. Implementations must honour
// p's box bounds for every location they evaluate or return; an
// implementation that cannot guarantee this is unsuitable for use here.
type Method interface {
	// Solve runs a local minimization from x0 (already inside p's box) and
	// returns the terminal Result. ok is false only when the backend could
	// not produce any result at all (e.g. it panicked internally and the
	// adapter recovered, or x0 was rejected outright) — a Result with a
	// non-accepted Status is still returned with ok == true so callers can
	// distinguish "ran but didn't converge" from "never ran".
	Solve(p *problem.BoundedProblem, x0 []float64, opts Options) (res Result, ok bool)
}
