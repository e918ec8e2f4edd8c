package out

import (
	"context"
	"errors"
	"time"

	gameout "clearpoints/internal/modules/game/port/out"
	historydto "clearpoints/internal/modules/history/dto"
	historyin "clearpoints/internal/modules/history/port/in"
	apperrors "clearpoints/internal/platform/errors"
)

// HistoryRecorder forwards finished sessions to the history module.
type HistoryRecorder struct {
	history historyin.Usecase
}

func NewHistoryRecorder(history historyin.Usecase) gameout.ResultRecorder {
	return &HistoryRecorder{history: history}
}

func (r *HistoryRecorder) Record(ctx context.Context, record gameout.ResultRecord) error {
	_, err := r.history.Record(ctx, historydto.RecordInput{
		SessionID:   record.SessionID,
		TargetCount: record.TargetCount,
		Cleared:     record.Cleared,
		Outcome:     record.Outcome,
		StartedAt:   record.StartedAt,
		EndedAt:     record.EndedAt,
	})
	return err
}

func (r *HistoryRecorder) BestWin(ctx context.Context, targetCount int) (time.Duration, bool, error) {
	best, err := r.history.Best(ctx, targetCount)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return best.Elapsed, true, nil
}
