package in

import (
	"context"

	gamedto "clearpoints/internal/modules/game/dto"
	gamein "clearpoints/internal/modules/game/port/in"
)

// TUIHandler exposes the game usecase with the flat signatures the terminal
// UI works with.
type TUIHandler struct {
	usecase gamein.Usecase
}

func NewTUIHandler(usecase gamein.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) EditPoints(ctx context.Context, value string) (string, error) {
	out, err := h.usecase.EditPoints(ctx, gamedto.EditInput{Value: value})
	return out.Value, err
}

func (h TUIHandler) Start(ctx context.Context, fieldWidth, fieldHeight int) (gamedto.StartOutput, error) {
	return h.usecase.Start(ctx, gamedto.StartInput{FieldWidth: fieldWidth, FieldHeight: fieldHeight})
}

func (h TUIHandler) Click(ctx context.Context, label int) (gamedto.ClickOutput, error) {
	return h.usecase.Click(ctx, gamedto.ClickInput{Label: label})
}

func (h TUIHandler) Reset(ctx context.Context) gamedto.StateOutput {
	return h.usecase.Reset(ctx)
}

func (h TUIHandler) State(ctx context.Context) gamedto.StateOutput {
	return h.usecase.State(ctx)
}

func (h TUIHandler) Finish(ctx context.Context, sessionID string) (gamedto.FinishOutput, error) {
	return h.usecase.Finish(ctx, gamedto.FinishInput{SessionID: sessionID})
}
