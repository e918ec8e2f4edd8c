package in

import (
	"context"

	historydto "clearpoints/internal/modules/history/dto"
	historyin "clearpoints/internal/modules/history/port/in"
)

type CLIHandler struct {
	usecase historyin.Usecase
}

func NewCLIHandler(usecase historyin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context, limit int) ([]historydto.RecordOutput, error) {
	return h.usecase.List(ctx, limit)
}

func (h CLIHandler) Summary(ctx context.Context) (historydto.SummaryOutput, error) {
	return h.usecase.Summary(ctx)
}

func (h CLIHandler) Export(ctx context.Context, path string, limit int) (historydto.ExportOutput, error) {
	return h.usecase.Export(ctx, historydto.ExportInput{Path: path, Limit: limit})
}
