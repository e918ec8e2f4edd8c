package out

import (
	"context"
	"time"
)

// ResultRecord is a finished session as handed to the result history.
type ResultRecord struct {
	SessionID   string
	TargetCount int
	Cleared     int
	Outcome     string
	StartedAt   time.Time
	EndedAt     time.Time
}

// ResultRecorder persists finished sessions and answers best-time queries.
type ResultRecorder interface {
	Record(ctx context.Context, record ResultRecord) error
	BestWin(ctx context.Context, targetCount int) (time.Duration, bool, error)
}
