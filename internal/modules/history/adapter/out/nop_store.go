package out

import (
	"context"

	"clearpoints/internal/modules/history/domain"
	apperrors "clearpoints/internal/platform/errors"
)

// NopResultStore drops every record. Used when history is disabled.
type NopResultStore struct{}

func (NopResultStore) Save(context.Context, domain.Record) error { return nil }

func (NopResultStore) List(context.Context, int) ([]domain.Record, error) {
	return []domain.Record{}, nil
}

func (NopResultStore) FastestWin(context.Context, int) (domain.Best, error) {
	return domain.Best{}, apperrors.ErrNotFound
}

func (NopResultStore) Summary(context.Context) (domain.Summary, error) {
	return domain.Summary{}, nil
}
