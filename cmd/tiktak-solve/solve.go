package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jihwankim/tiktak/pkg/bench"
	"github.com/jihwankim/tiktak/pkg/cancel"
	"github.com/jihwankim/tiktak/pkg/checkpoint"
	"github.com/jihwankim/tiktak/pkg/evalpool"
	"github.com/jihwankim/tiktak/pkg/localmethod"
	"github.com/jihwankim/tiktak/pkg/metrics"
	"github.com/jihwankim/tiktak/pkg/problem"
	"github.com/jihwankim/tiktak/pkg/reporting"
	"github.com/jihwankim/tiktak/pkg/tiktak"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Args:  cobra.NoArgs,
	Short: "Run a solve against one of the benchmark objectives",
	Long:  `Runs the TikTak coordinator to (approximately) minimise a named benchmark objective.`,
	RunE:  runSolve,
}

func init() {
	names := make([]string, 0, len(bench.Catalogue()))
	for name := range bench.Catalogue() {
		names = append(names, name)
	}
	sort.Strings(names)

	solveCmd.Flags().String("objective", "rosenbrock2d", fmt.Sprintf("benchmark objective: one of %s", strings.Join(names, ", ")))
	solveCmd.Flags().String("format", "text", "output format (text, json, tui)")
	solveCmd.Flags().String("checkpoint-dir", "", "directory to write checkpoint artefacts to (disabled if empty)")
	solveCmd.Flags().String("metrics-addr", "", "address to serve Prometheus metrics on, e.g. :9400 (disabled if empty)")
}

// solveObserver adapts tiktak.Observer events to a ProgressReporter and a
// metrics.Recorder simultaneously.
type solveObserver struct {
	progress *reporting.ProgressReporter
	recorder *metrics.Recorder
	rounds   []reporting.RoundSummary
}

var _ tiktak.Observer = (*solveObserver)(nil)

func (o *solveObserver) PhaseComplete(phase int, name string, count int) {
	o.progress.ReportPhase(reporting.PhaseEvent{Phase: phase, Name: name, Count: count})
	o.recorder.EvaluationsTotal.WithLabelValues(name).Add(float64(count))
}

func (o *solveObserver) RoundComplete(round, size, cursor int, improved bool, incumbent float64) {
	summary := reporting.RoundSummary{Round: round, Size: size, Cursor: cursor, Improved: improved, Incumbent: incumbent}
	o.rounds = append(o.rounds, summary)
	o.progress.ReportRound(summary)
	o.recorder.Incumbent.Set(incumbent)
	if !improved {
		o.recorder.LocalFailures.WithLabelValues("phase_c").Add(float64(size))
	}
}

func runSolve(cmd *cobra.Command, args []string) error {
	objectiveName, _ := cmd.Flags().GetString("objective")
	outputFormat, _ := cmd.Flags().GetString("format")
	checkpointDir, _ := cmd.Flags().GetString("checkpoint-dir")
	metricsAddr, _ := cmd.Flags().GetString("metrics-addr")

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if checkpointDir != "" {
		cfg.Checkpoint.Dir = checkpointDir
	}

	logLevel := reporting.LogLevel(cfg.Logging.Level)
	if verbose {
		logLevel = reporting.LogLevelDebug
	}
	logger := reporting.NewLogger(reporting.LoggerConfig{
		Level:  logLevel,
		Format: reporting.LogFormat(cfg.Logging.Format),
		Output: os.Stdout,
	})
	logger.Info("tiktak-solve starting", "version", version, "objective", objectiveName)

	newObjective, ok := bench.Catalogue()[objectiveName]
	if !ok {
		return fmt.Errorf("unknown objective %q", objectiveName)
	}
	obj := newObjective()

	prob, err := problem.New(obj.Fn, obj.Lower, obj.Upper)
	if err != nil {
		return fmt.Errorf("failed to construct problem: %w", err)
	}

	pool := evalpool.New(cfg.Execution.Workers)
	defer pool.Stop()

	method := &localmethod.NelderMeadMethod{}

	var store *checkpoint.Store
	if cfg.Checkpoint.Dir != "" {
		store, err = checkpoint.New(cfg.Checkpoint.Dir)
		if err != nil {
			return fmt.Errorf("failed to create checkpoint store: %w", err)
		}
	}

	recorder := metrics.NewRecorder()
	if metricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", recorder.Handler())
			logger.Info("serving metrics", "addr", metricsAddr)
			if err := http.ListenAndServe(metricsAddr, mux); err != nil {
				logger.Warn("metrics server stopped", "error", err)
			}
		}()
	}

	progress := reporting.NewProgressReporter(reporting.OutputFormat(outputFormat), logger)
	observer := &solveObserver{progress: progress, recorder: recorder}

	coordinator := tiktak.New(prob, method, cfg.TikTak, pool, logger.GetZerologLogger())
	coordinator.SetObserver(observer)

	ctx, stop := cancel.WithSignals(context.Background(), logger.GetZerologLogger())
	defer stop()

	start := time.Now()

	var checkpointWriter tiktak.CheckpointWriter
	if store != nil {
		checkpointWriter = store
	}

	result, solveErr := coordinator.Solve(ctx, nil, checkpointWriter)

	report := &reporting.SolveReport{
		ObjectiveName:   obj.Name,
		StartTime:       start,
		EndTime:         time.Now(),
		QuasirandomN:    len(result.QuasirandomPoints),
		PromisingPoints: len(result.PromisingPoints),
		LocalMinima:     len(result.LocalMinima),
		Rounds:          observer.rounds,
		Status:          reporting.StatusCompleted,
	}
	report.Duration = report.EndTime.Sub(report.StartTime).String()

	if solveErr != nil {
		report.Status = reporting.StatusFailed
		report.Message = solveErr.Error()
	} else {
		report.IncumbentLocation = result.Incumbent.Location
		report.IncumbentValue = result.Incumbent.Value
	}

	progress.ReportSolveComplete(report)

	if solveErr != nil {
		return fmt.Errorf("solve failed: %w", solveErr)
	}

	logger.Info("tiktak-solve complete", "incumbent_value", result.Incumbent.Value)
	return nil
}
