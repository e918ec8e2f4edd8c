package out

import (
	"context"

	"clearpoints/internal/modules/history/domain"
)

type ResultStore interface {
	Save(ctx context.Context, record domain.Record) error
	List(ctx context.Context, limit int) ([]domain.Record, error)
	// FastestWin returns apperrors.ErrNotFound when no win exists.
	FastestWin(ctx context.Context, targetCount int) (domain.Best, error)
	Summary(ctx context.Context) (domain.Summary, error)
}

type ReportWriter interface {
	Write(ctx context.Context, path string, report domain.Report) error
}
