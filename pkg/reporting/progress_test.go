package reporting

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()

	w.Close()
	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func testLogger() *Logger {
	return NewLogger(LoggerConfig{Level: LogLevelError, Format: LogFormatText, Output: io.Discard})
}

func TestReportPhaseText(t *testing.T) {
	pr := NewProgressReporter(FormatText, testLogger())
	out := captureStdout(t, func() {
		pr.ReportPhase(PhaseEvent{Phase: 1, Name: "seed evaluation", Count: 200})
	})
	if !strings.Contains(out, "PHASE 1") || !strings.Contains(out, "seed evaluation") || !strings.Contains(out, "200") {
		t.Fatalf("unexpected text output: %q", out)
	}
}

func TestReportPhaseJSON(t *testing.T) {
	pr := NewProgressReporter(FormatJSON, testLogger())
	out := captureStdout(t, func() {
		pr.ReportPhase(PhaseEvent{Phase: 2, Name: "local refinement", Count: 50})
	})
	var decoded map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v (%q)", err, out)
	}
	if decoded["event"] != "phase_complete" {
		t.Fatalf("event field = %v, want phase_complete", decoded["event"])
	}
}

func TestReportRoundText(t *testing.T) {
	pr := NewProgressReporter(FormatText, testLogger())
	out := captureStdout(t, func() {
		pr.ReportRound(RoundSummary{Round: 3, Size: 10, Cursor: 4, Improved: true, Incumbent: 0.125})
	})
	if !strings.Contains(out, "ROUND 3") || !strings.Contains(out, "improved=true") {
		t.Fatalf("unexpected text output: %q", out)
	}
}

func TestReportSolveCompleteJSONRoundTrips(t *testing.T) {
	pr := NewProgressReporter(FormatJSON, testLogger())
	report := &SolveReport{
		ObjectiveName:   "rosenbrock2d",
		Status:          StatusCompleted,
		QuasirandomN:    1000,
		PromisingPoints: 100,
		LocalMinima:     10,
		IncumbentValue:  1e-8,
	}
	out := captureStdout(t, func() {
		pr.ReportSolveComplete(report)
	})
	var decoded SolveReport
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v (%q)", err, out)
	}
	if decoded.ObjectiveName != "rosenbrock2d" || decoded.Status != StatusCompleted {
		t.Fatalf("decoded report = %+v, want matching fields", decoded)
	}
}

func TestReportSolveCompleteTextSummary(t *testing.T) {
	pr := NewProgressReporter(FormatText, testLogger())
	report := &SolveReport{
		ObjectiveName: "quadratic_bowl",
		Status:        StatusFailed,
		Message:       "no viable seeds",
	}
	out := captureStdout(t, func() {
		pr.ReportSolveComplete(report)
	})
	if !strings.Contains(out, "SOLVE SUMMARY") || !strings.Contains(out, "quadratic_bowl") || !strings.Contains(out, "no viable seeds") {
		t.Fatalf("unexpected summary output: %q", out)
	}
}
