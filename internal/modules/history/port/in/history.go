package in

import (
	"context"

	"clearpoints/internal/modules/history/dto"
)

type Usecase interface {
	Record(ctx context.Context, input dto.RecordInput) (dto.RecordOutput, error)
	List(ctx context.Context, limit int) ([]dto.RecordOutput, error)
	Best(ctx context.Context, targetCount int) (dto.BestOutput, error)
	Summary(ctx context.Context) (dto.SummaryOutput, error)
	Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error)
}
