// Package pullschedule computes the mixing weight that drags later
// candidate starts toward the running incumbent.
package pullschedule

import "math"

// Schedule computes θ(i), the convex-combination weight on the incumbent
// location used when forming candidate starts: x = (1-θ)·seed + θ·incumbent.
type Schedule struct {
	InitialN int
	ThetaMin float64
	ThetaMax float64
	ThetaPow float64
}

// Theta returns θ(i) for 1-based iteration index i over the sorted frontier.
// θ(0) is the degenerate case: the first point is its own start, unmixed
// from the incumbent.
func (s Schedule) Theta(i int) float64 {
	if i <= 0 {
		return 1
	}
	frac := float64(i) / float64(s.InitialN)
	theta := math.Pow(frac, s.ThetaPow)
	return clamp(theta, s.ThetaMin, s.ThetaMax)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Mix forms the convex combination (1-θ)·seed + θ·incumbent, componentwise.
func Mix(seed, incumbent []float64, theta float64) []float64 {
	x := make([]float64, len(seed))
	for d := range seed {
		x[d] = (1-theta)*seed[d] + theta*incumbent[d]
	}
	return x
}
