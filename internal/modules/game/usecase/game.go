package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"clearpoints/internal/modules/game/domain"
	gamedto "clearpoints/internal/modules/game/dto"
	gamein "clearpoints/internal/modules/game/port/in"
	gameout "clearpoints/internal/modules/game/port/out"
	"clearpoints/internal/modules/game/service"
	apperrors "clearpoints/internal/platform/errors"
)

// Interactor owns the single game of the process. Calls are serialized so
// each event completes before the next is applied.
type Interactor struct {
	mu       sync.Mutex
	svc      *service.GameService
	recorder gameout.ResultRecorder
	log      zerolog.Logger
	game     domain.Game
	// pending holds finished sessions not yet recorded, by session id.
	pending  map[string]domain.Session
	finished map[string]gamedto.FinishOutput
}

func NewInteractor(svc *service.GameService, recorder gameout.ResultRecorder, log zerolog.Logger) gamein.Usecase {
	return &Interactor{
		svc:      svc,
		recorder: recorder,
		log:      log,
		game:     domain.NewGame(),
		pending:  map[string]domain.Session{},
		finished: map[string]gamedto.FinishOutput{},
	}
}

func (i *Interactor) EditPoints(_ context.Context, input gamedto.EditInput) (gamedto.EditOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if err := i.game.Edit(input.Value); err != nil {
		i.log.Debug().Str("value", input.Value).Err(err).Msg("points input rejected")
		return gamedto.EditOutput{Value: i.game.Input}, err
	}
	return gamedto.EditOutput{Value: i.game.Input}, nil
}

func (i *Interactor) Start(_ context.Context, input gamedto.StartInput) (gamedto.StartOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if err := i.svc.Start(&i.game); err != nil {
		i.log.Debug().Err(err).Msg("start refused, game reset")
		return gamedto.StartOutput{}, err
	}
	s := i.game.Session
	placed := i.svc.Layout(s.TargetCount, input.FieldWidth, input.FieldHeight)
	markers := make([]gamedto.Marker, len(placed))
	for idx, m := range placed {
		markers[idx] = gamedto.Marker{Label: m.Label, Next: m.Next, X: m.X, Y: m.Y}
	}
	i.log.Info().
		Str("session", s.ID).
		Int("points", s.TargetCount).
		Int("field_w", input.FieldWidth).
		Int("field_h", input.FieldHeight).
		Msg("session started")
	return gamedto.StartOutput{
		SessionID:   s.ID,
		StartedAt:   s.StartedAt,
		TargetCount: s.TargetCount,
		Markers:     markers,
	}, nil
}

func (i *Interactor) Click(_ context.Context, input gamedto.ClickInput) (gamedto.ClickOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	res, err := i.svc.Click(&i.game.Session, input.Label)
	if err != nil {
		return gamedto.ClickOutput{}, err
	}
	s := i.game.Session
	if res != domain.ResultNone {
		i.pending[s.ID] = s
		i.log.Info().
			Str("session", s.ID).
			Int("label", input.Label).
			Str("result", res.String()).
			Dur("elapsed", s.EndedAt.Sub(s.StartedAt)).
			Msg("session finished")
	}
	return gamedto.ClickOutput{
		SessionID:    s.ID,
		Label:        input.Label,
		NextExpected: s.NextExpected,
		Outcome:      gamedto.Outcome(res.String()),
		Finished:     res != domain.ResultNone,
	}, nil
}

func (i *Interactor) Reset(_ context.Context) gamedto.StateOutput {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.game.Reset()
	return i.state()
}

func (i *Interactor) State(_ context.Context) gamedto.StateOutput {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.state()
}

// Finish records the finished session input.SessionID with the result
// history. Only the first call per session writes.
func (i *Interactor) Finish(ctx context.Context, input gamedto.FinishInput) (gamedto.FinishOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if out, ok := i.finished[input.SessionID]; ok {
		return out, nil
	}
	s, ok := i.pending[input.SessionID]
	if !ok {
		return gamedto.FinishOutput{}, fmt.Errorf("finish session %q: %w", input.SessionID, apperrors.ErrSessionInactive)
	}
	out := gamedto.FinishOutput{
		SessionID:   s.ID,
		TargetCount: s.TargetCount,
		Cleared:     s.Cleared(),
		Outcome:     gamedto.Outcome(s.Result.String()),
		Elapsed:     s.EndedAt.Sub(s.StartedAt),
	}
	if i.recorder != nil {
		best, ok, err := i.recorder.BestWin(ctx, s.TargetCount)
		if err != nil {
			return gamedto.FinishOutput{}, err
		}
		if ok {
			out.BestElapsed = best
		}
		if s.Result == domain.ResultWin && (!ok || out.Elapsed < best) {
			out.BestElapsed = out.Elapsed
			out.NewBest = true
		}
		err = i.recorder.Record(ctx, gameout.ResultRecord{
			SessionID:   s.ID,
			TargetCount: s.TargetCount,
			Cleared:     out.Cleared,
			Outcome:     s.Result.String(),
			StartedAt:   s.StartedAt,
			EndedAt:     s.EndedAt,
		})
		if err != nil {
			return gamedto.FinishOutput{}, err
		}
	}
	delete(i.pending, s.ID)
	i.finished[s.ID] = out
	return out, nil
}

func (i *Interactor) state() gamedto.StateOutput {
	s := i.game.Session
	return gamedto.StateOutput{
		SessionID:    s.ID,
		Input:        i.game.Input,
		Status:       s.Status().String(),
		Started:      s.Started(),
		StartedAt:    s.StartedAt,
		TargetCount:  s.TargetCount,
		NextExpected: s.NextExpected,
		Outcome:      gamedto.Outcome(s.Result.String()),
		Finished:     s.Finished(),
	}
}
