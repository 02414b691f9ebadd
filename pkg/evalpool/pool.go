// Package evalpool fans a pure function over a batch of inputs across a
// bounded pool of worker goroutines, preserving input order in the output.
package evalpool

import (
	"sync"

	"github.com/JekaMas/workerpool"
)

// Pool dispatches independent function evaluations to a fixed number of
// workers. It never aborts a batch because one element failed — per-element
// failure is represented as an absent (ok == false) result, never an error
// that propagates out of Map.
type Pool struct {
	wp *workerpool.WorkerPool
}

// New creates a Pool with the given number of concurrent workers. A worker
// count <= 0 is treated as 1.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{wp: workerpool.New(workers)}
}

// Stop shuts down the pool's workers. The Pool must not be used after Stop.
func (p *Pool) Stop() {
	p.wp.StopWait()
}

// Result is one element of a Map call's output: either a valid value with
// ok == true, or an absent result (ok == false) standing in for a dropped or
// failed evaluation.
type Result[T any] struct {
	Value T
	OK    bool
}

// Map applies fn to every element of inputs concurrently across the pool's
// workers and returns results in the same order as inputs. fn itself decides
// what counts as success for its element by returning ok == false; Map makes
// no ordering guarantee among concurrently executing elements, only of the
// returned slice.
func Map[In, Out any](p *Pool, inputs []In, fn func(In) (Out, bool)) []Result[Out] {
	results := make([]Result[Out], len(inputs))
	var wg sync.WaitGroup
	wg.Add(len(inputs))
	for i, in := range inputs {
		i, in := i, in
		p.wp.Submit(func() {
			defer wg.Done()
			out, ok := fn(in)
			results[i] = Result[Out]{Value: out, OK: ok}
		})
	}
	wg.Wait()
	return results
}
