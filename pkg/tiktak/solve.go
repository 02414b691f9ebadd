package tiktak

import (
	"context"

	"github.com/jihwankim/tiktak/pkg/frontier"
)

// CheckpointWriter receives the four solve artefacts as soon as the phase
// that produces them completes. Implementations must be self-describing and
// re-loadable without the coordinator running; see pkg/checkpoint for the
// YAML-backed implementation. A nil CheckpointWriter disables checkpointing.
type CheckpointWriter interface {
	WriteQuasirandomPoints(points []frontier.Point) error
	WriteAllPoints(points []frontier.Point) error
	WriteLocalMinima(points []frontier.Point) error
	WriteGlobalMinimum(point frontier.Point) error
}

// Result carries the four artefacts a Solve call produces: the full Phase A
// evaluation, the seeds retained for local refinement, the sorted candidate
// minima from Phase B, and the final incumbent from Phase C.
type Result struct {
	QuasirandomPoints []frontier.Point
	PromisingPoints   []frontier.Point
	LocalMinima       []frontier.Point
	Incumbent         frontier.Point
}

// Solve runs the full three-phase TikTak search. prependPoints, if non-empty,
// are evaluated via the objective (not the local method) and concatenated
// into Phase B's candidate list before Phase C begins. checkpoint, if
// non-nil, receives each artefact immediately after the phase that produced
// it. Solve offers no cancellation of its own beyond honouring ctx between
// phases — a caller that needs a hard deadline should wrap the call with
// context.WithTimeout and be prepared for a phase already in flight to run
// to completion.
func (c *Coordinator) Solve(ctx context.Context, prependPoints [][]float64, checkpoint CheckpointWriter) (Result, error) {
	quasirandomPoints, err := c.phaseA(ctx)
	if err != nil {
		return Result{}, err
	}
	if checkpoint != nil {
		if err := checkpoint.WriteQuasirandomPoints(quasirandomPoints); err != nil {
			return Result{}, err
		}
	}

	fr := frontier.New()
	fr.InsertBulk(quasirandomPoints)
	if err := fr.KeepLowest(c.cfg.InitialN()); err != nil {
		return Result{}, err
	}
	promisingPoints := fr.Points()
	if checkpoint != nil {
		if err := checkpoint.WriteAllPoints(promisingPoints); err != nil {
			return Result{}, err
		}
	}

	localMinima, err := c.phaseB(ctx, promisingPoints, prependPoints)
	if err != nil {
		return Result{
			QuasirandomPoints: quasirandomPoints,
			PromisingPoints:   promisingPoints,
		}, err
	}
	if checkpoint != nil {
		if err := checkpoint.WriteLocalMinima(localMinima); err != nil {
			return Result{}, err
		}
	}

	incumbent, err := c.phaseC(ctx, localMinima)
	if err != nil {
		return Result{
			QuasirandomPoints: quasirandomPoints,
			PromisingPoints:   promisingPoints,
			LocalMinima:       localMinima,
		}, err
	}
	if checkpoint != nil {
		if err := checkpoint.WriteGlobalMinimum(incumbent); err != nil {
			return Result{}, err
		}
	}

	c.log.Info().
		Float64("value", incumbent.Value).
		Msg("solve complete")

	return Result{
		QuasirandomPoints: quasirandomPoints,
		PromisingPoints:   promisingPoints,
		LocalMinima:       localMinima,
		Incumbent:         incumbent,
	}, nil
}
