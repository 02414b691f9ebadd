package localmethod

import (
	"testing"

	"github.com/jihwankim/tiktak/pkg/problem"
)

func TestAcceptedUsesDefaultSuccessSet(t *testing.T) {
	cases := []struct {
		status Status
		want   bool
	}{
		{StatusConverged, true},
		{StatusValueReached, true},
		{StatusXTolReached, true},
		{StatusFTolReached, true},
		{StatusBudgetReached, true},
		{StatusTimeReached, true},
		{StatusBackendFailure, false},
	}
	for _, c := range cases {
		r := Result{Status: c.status}
		if got := r.Accepted(Options{}); got != c.want {
			t.Errorf("Accepted(%s) = %v, want %v", c.status, got, c.want)
		}
	}
}

func TestAcceptedHonoursCustomSuccessSet(t *testing.T) {
	opts := Options{SuccessStatuses: map[Status]bool{StatusBackendFailure: true}}
	r := Result{Status: StatusBackendFailure}
	if !r.Accepted(opts) {
		t.Fatal("custom success set should accept StatusBackendFailure")
	}
	r2 := Result{Status: StatusConverged}
	if r2.Accepted(opts) {
		t.Fatal("custom success set should reject statuses not explicitly listed")
	}
}

func TestFakeMethodFailsOnSchedule(t *testing.T) {
	p, _ := problem.New(func(x []float64) float64 { return x[0] }, []float64{0}, []float64{1})
	fake := &FakeMethod{FailEvery: 3}

	var oks []bool
	for i := 0; i < 6; i++ {
		_, ok := fake.Solve(p, []float64{0.5}, Options{})
		oks = append(oks, ok)
	}
	want := []bool{true, true, false, true, true, false}
	for i := range want {
		if oks[i] != want[i] {
			t.Fatalf("call %d: ok = %v, want %v (full sequence %v)", i, oks[i], want[i], oks)
		}
	}
}

func TestFakeMethodClampsLocation(t *testing.T) {
	p, _ := problem.New(func(x []float64) float64 { return x[0] }, []float64{0}, []float64{1})
	fake := &FakeMethod{Fn: func(p *problem.BoundedProblem, x0 []float64) []float64 {
		return []float64{5}
	}}
	res, ok := fake.Solve(p, []float64{0.5}, Options{})
	if !ok {
		t.Fatal("expected ok=true")
	}
	if res.Location[0] != 1 {
		t.Fatalf("Location = %v, want clamped to 1", res.Location)
	}
	if res.Status != StatusConverged {
		t.Fatalf("Status = %v, want StatusConverged", res.Status)
	}
}

func TestNelderMeadMethodConverges(t *testing.T) {
	p, _ := problem.New(func(x []float64) float64 {
		return (x[0]-1)*(x[0]-1) + (x[1]-2)*(x[1]-2)
	}, []float64{-10, -10}, []float64{10, 10})

	m := &NelderMeadMethod{}
	res, ok := m.Solve(p, []float64{0, 0}, Options{MaxEval: 2000, XTolAbs: 1e-10, XTolRel: 1e-10})
	if !ok {
		t.Fatal("expected ok=true")
	}
	if !res.Accepted(Options{}) {
		t.Fatalf("expected an accepted terminal status, got %s", res.Status)
	}
	if res.Value > 1e-4 {
		t.Fatalf("NelderMead did not converge near the minimum: value=%v loc=%v", res.Value, res.Location)
	}
}

func TestNelderMeadMethodRespectsBounds(t *testing.T) {
	p, _ := problem.New(func(x []float64) float64 {
		return (x[0] - 100) * (x[0] - 100)
	}, []float64{0}, []float64{1})

	m := &NelderMeadMethod{}
	res, ok := m.Solve(p, []float64{0.5}, Options{MaxEval: 500})
	if !ok {
		t.Fatal("expected ok=true")
	}
	if !p.InBounds(res.Location) {
		t.Fatalf("result location %v escaped the box", res.Location)
	}
}
