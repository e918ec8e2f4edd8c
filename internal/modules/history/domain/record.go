package domain

import (
	"fmt"
	"strings"
	"time"

	apperrors "clearpoints/internal/platform/errors"
)

const SchemaVersion = 1

type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLose Outcome = "lose"
)

func (o Outcome) Validate() error {
	switch o {
	case OutcomeWin, OutcomeLose:
		return nil
	}
	return fmt.Errorf("%w: outcome %q", apperrors.ErrInvalidInput, string(o))
}

// Record is one finished session.
type Record struct {
	SessionID   string
	TargetCount int
	Cleared     int
	Outcome     Outcome
	StartedAt   time.Time
	EndedAt     time.Time
}

func (r Record) Elapsed() time.Duration {
	d := r.EndedAt.Sub(r.StartedAt)
	if d < 0 {
		return 0
	}
	return d
}

func (r Record) Validate() error {
	if strings.TrimSpace(r.SessionID) == "" {
		return fmt.Errorf("%w: session id is required", apperrors.ErrInvalidInput)
	}
	if err := r.Outcome.Validate(); err != nil {
		return err
	}
	if r.TargetCount < 0 || r.Cleared < 0 || r.Cleared > r.TargetCount {
		return fmt.Errorf("%w: cleared %d of %d", apperrors.ErrInvalidInput, r.Cleared, r.TargetCount)
	}
	if r.Outcome == OutcomeWin && r.Cleared != r.TargetCount {
		return fmt.Errorf("%w: win must clear all %d points", apperrors.ErrInvalidInput, r.TargetCount)
	}
	if r.StartedAt.IsZero() || r.EndedAt.Before(r.StartedAt) {
		return fmt.Errorf("%w: session times out of order", apperrors.ErrInvalidInput)
	}
	return nil
}

// Best is the fastest win recorded for a target count.
type Best struct {
	TargetCount int
	Elapsed     time.Duration
	SessionID   string
}

type Summary struct {
	Games  int
	Wins   int
	Losses int
	Best   []Best
}

// Report is everything an export writes.
type Report struct {
	GeneratedAt time.Time
	Summary     Summary
	Records     []Record
}
