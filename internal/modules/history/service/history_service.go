package service

import (
	"context"
	"fmt"
	"strings"

	"clearpoints/internal/modules/history/domain"
	historyout "clearpoints/internal/modules/history/port/out"
	"clearpoints/internal/platform/clock"
	apperrors "clearpoints/internal/platform/errors"
)

const defaultListLimit = 20

type HistoryService struct {
	clock  clock.Clock
	store  historyout.ResultStore
	writer historyout.ReportWriter
}

func NewHistoryService(clock clock.Clock, store historyout.ResultStore, writer historyout.ReportWriter) *HistoryService {
	return &HistoryService{clock: clock, store: store, writer: writer}
}

func (s *HistoryService) Record(ctx context.Context, record domain.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}
	return s.store.Save(ctx, record)
}

func (s *HistoryService) List(ctx context.Context, limit int) ([]domain.Record, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.store.List(ctx, limit)
}

func (s *HistoryService) Best(ctx context.Context, targetCount int) (domain.Best, error) {
	return s.store.FastestWin(ctx, targetCount)
}

func (s *HistoryService) Summary(ctx context.Context) (domain.Summary, error) {
	return s.store.Summary(ctx)
}

// Export writes the summary and the latest records to path.
func (s *HistoryService) Export(ctx context.Context, path string, limit int) (domain.Report, error) {
	if strings.TrimSpace(path) == "" {
		return domain.Report{}, fmt.Errorf("%w: export path is required", apperrors.ErrInvalidInput)
	}
	if s.writer == nil {
		return domain.Report{}, fmt.Errorf("report writer is not configured")
	}
	summary, err := s.store.Summary(ctx)
	if err != nil {
		return domain.Report{}, err
	}
	records, err := s.List(ctx, limit)
	if err != nil {
		return domain.Report{}, err
	}
	report := domain.Report{GeneratedAt: s.clock.Now(), Summary: summary, Records: records}
	if err := s.writer.Write(ctx, path, report); err != nil {
		return domain.Report{}, err
	}
	return report, nil
}
