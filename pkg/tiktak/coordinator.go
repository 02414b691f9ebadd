// Package tiktak implements the TikTak multistart coordinator: quasirandom
// seeding, keep-best filtering, parallel local refinement, and the
// cluster-batched pull-toward-incumbent finisher.
package tiktak

import (
	"context"
	"math"

	"github.com/rs/zerolog"

	"github.com/jihwankim/tiktak/pkg/config"
	"github.com/jihwankim/tiktak/pkg/evalpool"
	"github.com/jihwankim/tiktak/pkg/frontier"
	"github.com/jihwankim/tiktak/pkg/localmethod"
	"github.com/jihwankim/tiktak/pkg/problem"
	"github.com/jihwankim/tiktak/pkg/pullschedule"
	"github.com/jihwankim/tiktak/pkg/sampler"
)

// NaNSentinel is the finite value a non-finite objective evaluation is
// replaced with in Phase A. Never applied to local-method results, which are
// dropped on failure rather than sentinelled.
const NaNSentinel = 1e10

// Observer receives the same per-phase and per-round events the coordinator
// logs, for callers that want to render progress (CLI text/JSON/TUI, a
// metrics recorder) without scraping log output. An implementation provides
// both methods; a Coordinator with no observer set uses an internal no-op.
type Observer interface {
	PhaseComplete(phase int, name string, count int)
	RoundComplete(round, size, cursor int, improved bool, incumbent float64)
}

type noopObserver struct{}

func (noopObserver) PhaseComplete(phase int, name string, count int)               {}
func (noopObserver) RoundComplete(round, size, cursor int, improved bool, v float64) {}

// Coordinator drives the three-phase TikTak search over a single
// BoundedProblem. It owns the frontier and the incumbent for the duration of
// a Solve call; workers only ever see read-only snapshots passed as plain
// values.
type Coordinator struct {
	problem  *problem.BoundedProblem
	method   localmethod.Method
	cfg      config.TikTakConfig
	pool     *evalpool.Pool
	log      zerolog.Logger
	observer Observer
}

// New constructs a Coordinator. pool is used for every phase's fan-out and is
// not stopped by the coordinator — the caller owns its lifecycle.
func New(p *problem.BoundedProblem, method localmethod.Method, cfg config.TikTakConfig, pool *evalpool.Pool, log zerolog.Logger) *Coordinator {
	return &Coordinator{
		problem:  p,
		method:   method,
		cfg:      cfg,
		pool:     pool,
		log:      log,
		observer: noopObserver{},
	}
}

// SetObserver installs an Observer for progress events. A nil observer
// restores the default no-op.
func (c *Coordinator) SetObserver(o Observer) {
	if o == nil {
		o = noopObserver{}
	}
	c.observer = o
}

// evaluateObjective evaluates the objective at every location via the pool,
// sanitising any non-finite value to NaNSentinel. Used by Phase A's seed
// sweep and by the prepend-points path, which shares Phase A's evaluation
// semantics per §4.7.
func (c *Coordinator) evaluateObjective(xs [][]float64) []frontier.Point {
	results := evalpool.Map(c.pool, xs, func(x []float64) (frontier.Point, bool) {
		v := c.problem.Evaluate(x)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			v = NaNSentinel
		}
		return frontier.Point{Location: x, Value: v}, true
	})

	points := make([]frontier.Point, 0, len(results))
	for _, r := range results {
		if r.OK {
			points = append(points, r.Value)
		}
	}
	return points
}

// phaseA generates quasirandom_N seeds and evaluates the objective at each.
// Every seed survives (non-finite values are sanitised, never dropped), so
// the returned slice always has length quasirandom_N.
func (c *Coordinator) phaseA(ctx context.Context) ([]frontier.Point, error) {
	raw := sampler.New(c.problem.Lower(), c.problem.Upper()).Sample(c.cfg.QuasirandomN)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	points := c.evaluateObjective(raw)

	c.log.Info().
		Int("phase", 1).
		Int("quasirandom_n", len(points)).
		Msg("phase A: seed evaluation complete")
	c.observer.PhaseComplete(1, "seed evaluation", len(points))

	return points, nil
}

// phaseB launches an unmixed local minimisation from every retained seed,
// concatenates any prepend-points (evaluated via the objective, not the local
// method), and returns the sorted survivors. Returns ErrNoViableSeeds if
// nothing survives.
func (c *Coordinator) phaseB(ctx context.Context, seeds []frontier.Point, prepend [][]float64) ([]frontier.Point, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	opts := localmethod.Options{
		XTolAbs: c.cfg.LocalXTolAbs,
		XTolRel: c.cfg.LocalXTolRel,
		MaxEval: c.cfg.LocalMaxEvalInit,
		MaxTime: c.cfg.LocalMaxTime,
	}

	locals := evalpool.Map(c.pool, seeds, func(seed frontier.Point) (frontier.Point, bool) {
		res, ok := c.method.Solve(c.problem, seed.Location, opts)
		if !ok || !res.Accepted(opts) {
			return frontier.Point{}, false
		}
		return frontier.Point{Location: res.Location, Value: res.Value}, true
	})

	survivors := make([]frontier.Point, 0, len(locals)+len(prepend))
	for _, r := range locals {
		if r.OK {
			survivors = append(survivors, r.Value)
		}
	}

	if len(prepend) > 0 {
		survivors = append(survivors, c.evaluateObjective(prepend)...)
	}

	if len(survivors) == 0 {
		return nil, ErrNoViableSeeds
	}

	fr := frontier.New()
	fr.InsertBulk(survivors)

	c.log.Info().
		Int("phase", 2).
		Int("seeds", len(seeds)).
		Int("prepended", len(prepend)).
		Int("survivors", fr.Len()).
		Msg("phase B: local refinement complete")
	c.observer.PhaseComplete(2, "local refinement", fr.Len())

	return fr.Points(), nil
}

// phaseC runs the cluster TikTak finisher: starting from candidates[0] as the
// incumbent, it repeatedly mixes the remaining candidates toward the
// incumbent via PullSchedule, solves every mixed start in one parallel round,
// and jumps the cursor to the best improver. It terminates when a round
// produces no improver or the cursor reaches the end of candidates.
func (c *Coordinator) phaseC(ctx context.Context, candidates []frontier.Point) (frontier.Point, error) {
	incumbent := candidates[0]
	i := 1
	round := 0

	opts := localmethod.Options{
		XTolAbs: c.cfg.LocalXTolAbs,
		XTolRel: c.cfg.LocalXTolRel,
		MaxEval: c.cfg.LocalMaxEvalFinal,
		MaxTime: c.cfg.LocalMaxTime,
	}

	sched := pullschedule.Schedule{
		InitialN: c.cfg.InitialN(),
		ThetaMin: c.cfg.ThetaMin,
		ThetaMax: c.cfg.ThetaMax,
		ThetaPow: c.cfg.ThetaPow,
	}

	for i < len(candidates) {
		if err := ctx.Err(); err != nil {
			return incumbent, err
		}
		round++

		starts := make([][]float64, 0, len(candidates)-i)
		origIndex := make([]int, 0, len(candidates)-i)
		for j := i; j < len(candidates); j++ {
			theta := sched.Theta(j)
			x := pullschedule.Mix(candidates[j].Location, incumbent.Location, theta)
			c.problem.Clamp(x)
			starts = append(starts, x)
			origIndex = append(origIndex, j)
		}

		results := evalpool.Map(c.pool, starts, func(x0 []float64) (frontier.Point, bool) {
			res, ok := c.method.Solve(c.problem, x0, opts)
			if !ok || !res.Accepted(opts) {
				return frontier.Point{}, false
			}
			return frontier.Point{Location: res.Location, Value: res.Value}, true
		})

		bestIdx := -1
		bestValue := incumbent.Value
		for k, r := range results {
			if !r.OK {
				continue
			}
			if r.Value.Value < bestValue {
				bestValue = r.Value.Value
				bestIdx = k
			}
		}

		improved := bestIdx != -1
		if improved {
			incumbent = results[bestIdx].Value
			i = origIndex[bestIdx] + 1
		}

		c.log.Info().
			Int("phase", 3).
			Int("round", round).
			Int("size", len(starts)).
			Int("cursor", i).
			Bool("improved", improved).
			Float64("incumbent", incumbent.Value).
			Msg("phase C: round complete")
		c.observer.RoundComplete(round, len(starts), i, improved, incumbent.Value)

		if !improved {
			break
		}
	}

	return incumbent, nil
}
