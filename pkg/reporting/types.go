package reporting

import "time"

// SolveReport is the complete record of one Solve call, suitable for JSON or
// TUI rendering once the coordinator returns.
type SolveReport struct {
	ObjectiveName string    `json:"objective_name"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Duration      string    `json:"duration"`

	Status  SolveStatus `json:"status"`
	Message string      `json:"message,omitempty"`

	QuasirandomN    int `json:"quasirandom_n"`
	PromisingPoints int `json:"promising_points"`
	LocalMinima     int `json:"local_minima"`

	IncumbentLocation []float64 `json:"incumbent_location,omitempty"`
	IncumbentValue    float64   `json:"incumbent_value"`

	Rounds []RoundSummary `json:"rounds,omitempty"`
}

// SolveStatus is the terminal outcome of a solve.
type SolveStatus string

const (
	StatusRunning   SolveStatus = "running"
	StatusCompleted SolveStatus = "completed"
	StatusFailed    SolveStatus = "failed"
	StatusCancelled SolveStatus = "cancelled"
)

// RoundSummary records one Phase C round: its size, whether it improved the
// incumbent, and the incumbent value after the round.
type RoundSummary struct {
	Round     int     `json:"round"`
	Size      int     `json:"size"`
	Cursor    int     `json:"cursor"`
	Improved  bool    `json:"improved"`
	Incumbent float64 `json:"incumbent"`
}

// PhaseEvent is a structured progress event emitted at the end of Phase A or
// Phase B.
type PhaseEvent struct {
	Phase   int    `json:"phase"`
	Name    string `json:"name"`
	Count   int    `json:"count"`
	Message string `json:"message,omitempty"`
}
