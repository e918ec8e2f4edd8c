package dto

import "time"

type RecordInput struct {
	SessionID   string
	TargetCount int
	Cleared     int
	Outcome     string
	StartedAt   time.Time
	EndedAt     time.Time
}

type RecordOutput struct {
	SessionID   string
	TargetCount int
	Cleared     int
	Outcome     string
	StartedAt   time.Time
	EndedAt     time.Time
	Elapsed     time.Duration
}

type BestOutput struct {
	TargetCount int
	Elapsed     time.Duration
	SessionID   string
}

type SummaryOutput struct {
	Games  int
	Wins   int
	Losses int
	Best   []BestOutput
}

type ExportInput struct {
	Path  string
	Limit int
}

type ExportOutput struct {
	Path    string
	Records int
}
