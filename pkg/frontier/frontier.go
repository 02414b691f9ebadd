// Package frontier maintains the sorted collection of evaluated points the
// coordinator carries between phases.
package frontier

import (
	"fmt"
	"sort"
)

// Point is a located, evaluated candidate. Value must be finite by the time
// it is inserted — NaN sanitisation happens upstream, in the coordinator's
// Phase A objective evaluation.
type Point struct {
	Location []float64
	Value    float64
}

// Frontier is an ordered sequence of Points, sorted ascending by Value.
type Frontier struct {
	points []Point
}

// New creates an empty Frontier.
func New() *Frontier {
	return &Frontier{}
}

// Len returns the number of points currently held.
func (f *Frontier) Len() int { return len(f.points) }

// Points returns a copy of the current ordered points.
func (f *Frontier) Points() []Point {
	out := make([]Point, len(f.points))
	copy(out, f.points)
	return out
}

// InsertBulk appends points and stably re-sorts the whole frontier ascending
// by Value. Ties preserve relative input order.
func (f *Frontier) InsertBulk(points []Point) {
	f.points = append(f.points, points...)
	sort.SliceStable(f.points, func(i, j int) bool {
		return f.points[i].Value < f.points[j].Value
	})
}

// KeepLowest retains only the k smallest points by value. k must satisfy
// 1 <= k <= Len(); otherwise KeepLowest returns an error and leaves the
// frontier unchanged.
func (f *Frontier) KeepLowest(k int) error {
	if k < 1 || k > len(f.points) {
		return fmt.Errorf("frontier: keep_lowest(%d) out of range for length %d", k, len(f.points))
	}
	f.points = f.points[:k]
	return nil
}

// First returns the current incumbent candidate (smallest value). ok is
// false if the frontier is empty.
func (f *Frontier) First() (Point, bool) {
	if len(f.points) == 0 {
		return Point{}, false
	}
	return f.points[0], true
}
