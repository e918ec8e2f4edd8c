package dto

import "time"

const (
	// MaxPoints bounds the number of markers in a session.
	MaxPoints = 10000
	// MarkerSize is the side of a marker in field units.
	MarkerSize = 48
)

type Outcome string

const (
	OutcomeNone Outcome = ""
	OutcomeWin  Outcome = "win"
	OutcomeLose Outcome = "lose"
)

type EditInput struct {
	Value string
}

type EditOutput struct {
	Value string
}

// StartInput carries the play field size in field units.
type StartInput struct {
	FieldWidth  int
	FieldHeight int
}

type Marker struct {
	Label int
	Next  int
	X     int
	Y     int
}

type StartOutput struct {
	SessionID   string
	StartedAt   time.Time
	TargetCount int
	Markers     []Marker
}

type ClickInput struct {
	Label int
}

type ClickOutput struct {
	SessionID    string
	Label        int
	NextExpected int
	Outcome      Outcome
	Finished     bool
}

type StateOutput struct {
	SessionID    string
	Input        string
	Status       string
	Started      bool
	StartedAt    time.Time
	TargetCount  int
	NextExpected int
	Outcome      Outcome
	Finished     bool
}

type FinishInput struct {
	SessionID string
}

// FinishOutput describes the recorded result of a finished session.
type FinishOutput struct {
	SessionID   string
	TargetCount int
	Cleared     int
	Outcome     Outcome
	Elapsed     time.Duration
	// BestElapsed is the fastest win for this target count including the
	// session just recorded. Zero when there is none.
	BestElapsed time.Duration
	NewBest     bool
}
