package tiktak

import (
	"errors"

	"github.com/jihwankim/tiktak/pkg/config"
	"github.com/jihwankim/tiktak/pkg/problem"
)

// Sentinel errors surfaced at the Solve boundary. Per-call failures (a single
// NaN objective, a single failed local run) never reach this list — they are
// swallowed at the evalpool boundary and recorded as absent results.
var (
	// ErrInvalidBounds is the sentinel problem.New wraps when a BoundedProblem
	// is rejected for degenerate or mismatched bounds. Re-exported here so
	// callers of this package can errors.Is against it without importing
	// pkg/problem directly.
	ErrInvalidBounds = problem.ErrInvalidBounds

	// ErrInvalidConfig is the sentinel config.Validate wraps when a
	// TikTakConfig is structurally invalid: keep_ratio outside (0, 1], a
	// non-positive N, theta_min > theta_max, or a non-positive local-search
	// budget. Re-exported here for the same reason as ErrInvalidBounds.
	ErrInvalidConfig = config.ErrInvalidConfig

	// ErrNoViableSeeds is fatal to the solve: Phase B produced zero survivors
	// (every retained seed's local run failed or was dropped). The partial
	// Phase A artefacts are still returned alongside this error so the caller
	// can diagnose the failure.
	ErrNoViableSeeds = errors.New("tiktak: no viable seeds: all phase B local runs failed")
)
