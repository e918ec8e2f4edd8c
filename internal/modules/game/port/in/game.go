package in

import (
	"context"

	"clearpoints/internal/modules/game/dto"
)

type Usecase interface {
	EditPoints(ctx context.Context, input dto.EditInput) (dto.EditOutput, error)
	Start(ctx context.Context, input dto.StartInput) (dto.StartOutput, error)
	Click(ctx context.Context, input dto.ClickInput) (dto.ClickOutput, error)
	Reset(ctx context.Context) dto.StateOutput
	State(ctx context.Context) dto.StateOutput
	Finish(ctx context.Context, input dto.FinishInput) (dto.FinishOutput, error)
}
