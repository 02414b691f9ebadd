package localmethod

import (
	"gonum.org/v1/gonum/optimize"

	"github.com/jihwankim/tiktak/pkg/problem"
)

// NelderMeadMethod adapts gonum.org/v1/gonum/optimize's derivative-free
// Nelder-Mead simplex method to the Method contract. Nelder-Mead has no
// notion of box bounds, so the adapter projects every trial point back onto
// the box before handing it to the real objective — the same "ensureBounds"
// technique used by bound-constrained wrappers around unconstrained
// optimizers in the wider ecosystem. Nelder-Mead never asks for a gradient,
// so no derivative signature needs to be synthesised.
type NelderMeadMethod struct {
	// SimplexSize scales the initial simplex; zero uses gonum's default.
	SimplexSize float64
}

var _ Method = (*NelderMeadMethod)(nil)

func (m *NelderMeadMethod) Solve(p *problem.BoundedProblem, x0 []float64, opts Options) (res Result, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			res, ok = Result{}, false
		}
	}()

	objFunc := func(x []float64) float64 {
		clamped := append([]float64(nil), x...)
		p.Clamp(clamped)
		return p.Evaluate(clamped)
	}

	settings := &optimize.Settings{
		FuncEvaluations: opts.MaxEval,
		Runtime:         opts.MaxTime,
	}
	if opts.XTolAbs > 0 || opts.XTolRel > 0 {
		settings.Converger = &optimize.FunctionConverge{
			Absolute:   opts.XTolAbs,
			Relative:   opts.XTolRel,
			Iterations: 50,
		}
	}

	method := &optimize.NelderMead{}
	if m.SimplexSize > 0 {
		method.SimplexSize = m.SimplexSize
	}

	prob := optimize.Problem{Func: objFunc}

	result, err := optimize.Minimize(prob, x0, settings, method)
	if result == nil {
		return Result{}, false
	}

	loc := append([]float64(nil), result.X...)
	p.Clamp(loc)

	status := statusFromGonum(result.Status, err)
	return Result{Location: loc, Value: result.F, Status: status}, true
}

func statusFromGonum(status optimize.Status, err error) Status {
	if err != nil && status == optimize.Failure {
		return StatusBackendFailure
	}
	switch status {
	case optimize.Success, optimize.FunctionConvergence:
		return StatusConverged
	case optimize.MethodConverge:
		return StatusConverged
	case optimize.FunctionEvaluationLimit:
		return StatusBudgetReached
	case optimize.RuntimeLimit:
		return StatusTimeReached
	case optimize.IterationLimit:
		return StatusBudgetReached
	case optimize.Failure:
		return StatusBackendFailure
	default:
		return StatusBackendFailure
	}
}
