package reporting

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// OutputFormat represents the progress output format.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatTUI  OutputFormat = "tui"
)

// ProgressReporter reports solve progress: phase completion, Phase-C rounds,
// and the final report.
type ProgressReporter struct {
	format OutputFormat
	logger *Logger
}

// NewProgressReporter creates a new progress reporter.
func NewProgressReporter(format OutputFormat, logger *Logger) *ProgressReporter {
	return &ProgressReporter{
		format: format,
		logger: logger,
	}
}

// ReportPhase reports the completion of Phase A or Phase B.
func (pr *ProgressReporter) ReportPhase(event PhaseEvent) {
	switch pr.format {
	case FormatJSON:
		data, _ := json.Marshal(map[string]any{
			"event":     "phase_complete",
			"phase":     event,
			"timestamp": time.Now(),
		})
		fmt.Println(string(data))
	case FormatTUI:
		pr.clearLine()
		fmt.Printf("▶ Phase %d (%s): %d point(s). %s\n", event.Phase, event.Name, event.Count, event.Message)
	default:
		fmt.Printf("[PHASE %d] %s: %d point(s). %s\n", event.Phase, event.Name, event.Count, event.Message)
	}
}

// ReportRound reports one Phase C round.
func (pr *ProgressReporter) ReportRound(round RoundSummary) {
	switch pr.format {
	case FormatJSON:
		data, _ := json.Marshal(map[string]any{
			"event":     "round_complete",
			"round":     round,
			"timestamp": time.Now(),
		})
		fmt.Println(string(data))
	case FormatTUI:
		pr.clearLine()
		marker := "·"
		if round.Improved {
			marker = "↓"
		}
		fmt.Printf("%s round %d: size=%d cursor=%d incumbent=%.6g\n", marker, round.Round, round.Size, round.Cursor, round.Incumbent)
	default:
		fmt.Printf("[ROUND %d] size=%d cursor=%d improved=%v incumbent=%.6g\n",
			round.Round, round.Size, round.Cursor, round.Improved, round.Incumbent)
	}
}

// ReportSolveComplete reports the final solve report.
func (pr *ProgressReporter) ReportSolveComplete(report *SolveReport) {
	switch pr.format {
	case FormatJSON:
		data, err := json.Marshal(report)
		if err != nil {
			pr.logger.Error("failed to marshal solve report", "error", err)
			return
		}
		fmt.Println(string(data))
	case FormatTUI:
		pr.clearScreen()
		pr.printSummary(report)
	default:
		pr.printSummary(report)
	}
}

func (pr *ProgressReporter) printSummary(report *SolveReport) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("  SOLVE SUMMARY")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("  Objective:   %s\n", report.ObjectiveName)
	fmt.Printf("  Status:      %s\n", report.Status)
	if report.Message != "" {
		fmt.Printf("  Message:     %s\n", report.Message)
	}
	fmt.Printf("  Duration:    %s\n", report.Duration)
	fmt.Printf("  Quasirandom: %d\n", report.QuasirandomN)
	fmt.Printf("  Promising:   %d\n", report.PromisingPoints)
	fmt.Printf("  Local minima: %d\n", report.LocalMinima)
	fmt.Printf("  Rounds:      %d\n", len(report.Rounds))
	fmt.Printf("  Incumbent:   value=%.10g location=%v\n", report.IncumbentValue, report.IncumbentLocation)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println()
}

func (pr *ProgressReporter) clearScreen() {
	fmt.Print("\033[2J\033[H")
}

func (pr *ProgressReporter) clearLine() {
	fmt.Print("\033[K")
}
