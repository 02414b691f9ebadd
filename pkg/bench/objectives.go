// Package bench holds the benchmark objective catalogue used by the CLI demo
// and by the coordinator's scenario tests.
package bench

import "math"

// Objective is a named, boxed test function for the CLI and test suites. The
// cmd/tiktak-solve binary selects one by Name.
type Objective struct {
	Name  string
	Lower []float64
	Upper []float64
	Fn    func(x []float64) float64
}

// Rosenbrock2D is f(x,y) = (1-x)^2 + 100(y-x^2)^2 over [0,100]^2. Its global
// minimum is 0 at (1, 1).
func Rosenbrock2D() Objective {
	return Objective{
		Name:  "rosenbrock2d",
		Lower: []float64{0, 0},
		Upper: []float64{100, 100},
		Fn: func(x []float64) float64 {
			a := 1 - x[0]
			b := x[1] - x[0]*x[0]
			return a*a + 100*b*b
		},
	}
}

// QuadraticBowl is f(x) = sum((x_i - c_i)^2) with c = (0.3, -0.7, 1.1) over
// [-5,5]^3. Its global minimum is 0 at c.
func QuadraticBowl() Objective {
	c := []float64{0.3, -0.7, 1.1}
	return Objective{
		Name:  "quadratic_bowl",
		Lower: []float64{-5, -5, -5},
		Upper: []float64{5, 5, 5},
		Fn: func(x []float64) float64 {
			sum := 0.0
			for i, ci := range c {
				d := x[i] - ci
				sum += d * d
			}
			return sum
		},
	}
}

// FlatPlateauBasin is f(x) = max(0, ||x||^2 - 4) for ||x|| <= 3, else 100,
// over [-5,5]^2. Its global minimum is 0, achieved everywhere with ||x|| <= 2.
func FlatPlateauBasin() Objective {
	return Objective{
		Name:  "flat_plateau_basin",
		Lower: []float64{-5, -5},
		Upper: []float64{5, 5},
		Fn: func(x []float64) float64 {
			normSq := 0.0
			for _, v := range x {
				normSq += v * v
			}
			norm := math.Sqrt(normSq)
			if norm > 3 {
				return 100
			}
			return math.Max(0, normSq-4)
		},
	}
}

// RosenbrockWithNaNTrap wraps Rosenbrock2D but returns NaN on a measure-zero
// trap set (exact multiples of 10 in both coordinates), exercising Phase A's
// NaN-sanitisation path.
func RosenbrockWithNaNTrap() Objective {
	base := Rosenbrock2D()
	return Objective{
		Name:  "rosenbrock2d_nan_trap",
		Lower: base.Lower,
		Upper: base.Upper,
		Fn: func(x []float64) float64 {
			if math.Mod(x[0], 10) == 0 && math.Mod(x[1], 10) == 0 {
				return math.NaN()
			}
			return base.Fn(x)
		},
	}
}

// Catalogue lists every named benchmark objective, keyed by Name.
func Catalogue() map[string]func() Objective {
	return map[string]func() Objective{
		"rosenbrock2d":          Rosenbrock2D,
		"quadratic_bowl":        QuadraticBowl,
		"flat_plateau_basin":    FlatPlateauBasin,
		"rosenbrock2d_nan_trap": RosenbrockWithNaNTrap,
	}
}
