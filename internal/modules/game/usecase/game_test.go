package usecase_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/rs/zerolog"

	gamedto "clearpoints/internal/modules/game/dto"
	gamein "clearpoints/internal/modules/game/port/in"
	gameout "clearpoints/internal/modules/game/port/out"
	"clearpoints/internal/modules/game/service"
	"clearpoints/internal/modules/game/usecase"
	apperrors "clearpoints/internal/platform/errors"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

type seqID struct{ n int }

func (s *seqID) New() string {
	s.n++
	return "sess-" + string(rune('0'+s.n))
}

type fakeRecorder struct {
	records []gameout.ResultRecord
	best    time.Duration
	hasBest bool
	err     error
}

func (f *fakeRecorder) Record(_ context.Context, r gameout.ResultRecord) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, r)
	return nil
}

func (f *fakeRecorder) BestWin(context.Context, int) (time.Duration, bool, error) {
	return f.best, f.hasBest, nil
}

var t0 = time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

func newInteractor(clk *fakeClock, rec gameout.ResultRecorder) gamein.Usecase {
	svc := service.NewGameService(clk, &seqID{}, rand.New(rand.NewPCG(7, 7)))
	return usecase.NewInteractor(svc, rec, zerolog.Nop())
}

func TestPlayThroughToWinRecordsResult(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	clk := &fakeClock{now: t0}
	rec := &fakeRecorder{best: 5 * time.Second, hasBest: true}
	uc := newInteractor(clk, rec)

	if _, err := uc.EditPoints(ctx, gamedto.EditInput{Value: "3"}); err != nil {
		t.Fatalf("edit: %v", err)
	}
	start, err := uc.Start(ctx, gamedto.StartInput{FieldWidth: 800, FieldHeight: 400})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if start.TargetCount != 3 || len(start.Markers) != 3 || start.SessionID != "sess-1" {
		t.Fatalf("unexpected start output %+v", start)
	}
	for i, m := range start.Markers {
		if m.Label != 3-i || m.Next != m.Label-1 {
			t.Fatalf("unexpected marker order %+v", start.Markers)
		}
		if m.X < 0 || m.X > 800-48 || m.Y < 0 || m.Y > 400-48 {
			t.Fatalf("marker out of field %+v", m)
		}
	}
	for label := 1; label <= 2; label++ {
		out, err := uc.Click(ctx, gamedto.ClickInput{Label: label})
		if err != nil {
			t.Fatalf("click %d: %v", label, err)
		}
		if out.Finished || out.NextExpected != label+1 {
			t.Fatalf("unexpected click output %+v", out)
		}
	}
	if _, err := uc.Finish(ctx, gamedto.FinishInput{SessionID: start.SessionID}); !errors.Is(err, apperrors.ErrSessionInactive) {
		t.Fatalf("finish before end should fail, got %v", err)
	}
	clk.now = t0.Add(3200 * time.Millisecond)
	out, err := uc.Click(ctx, gamedto.ClickInput{Label: 3})
	if err != nil {
		t.Fatalf("click 3: %v", err)
	}
	if !out.Finished || out.Outcome != gamedto.OutcomeWin || out.SessionID != start.SessionID {
		t.Fatalf("expected win, got %+v", out)
	}
	state := uc.State(ctx)
	if state.Status != "finished-win" || state.Input != "3" {
		t.Fatalf("unexpected state %+v", state)
	}

	fin, err := uc.Finish(ctx, gamedto.FinishInput{SessionID: out.SessionID})
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if fin.Elapsed != 3200*time.Millisecond || !fin.NewBest || fin.BestElapsed != 3200*time.Millisecond || fin.Cleared != 3 {
		t.Fatalf("unexpected finish %+v", fin)
	}
	if _, err := uc.Finish(ctx, gamedto.FinishInput{SessionID: out.SessionID}); err != nil {
		t.Fatalf("second finish: %v", err)
	}
	if len(rec.records) != 1 {
		t.Fatalf("expected exactly one record, got %d", len(rec.records))
	}
	if r := rec.records[0]; r.Outcome != "win" || r.SessionID != "sess-1" || !r.EndedAt.Equal(clk.now) {
		t.Fatalf("unexpected record %+v", r)
	}
}

func TestLoseKeepsPreviousBestAndIgnoresFurtherClicks(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	rec := &fakeRecorder{best: 2 * time.Second, hasBest: true}
	uc := newInteractor(&fakeClock{now: t0}, rec)
	_, _ = uc.EditPoints(ctx, gamedto.EditInput{Value: "3"})
	if _, err := uc.Start(ctx, gamedto.StartInput{FieldWidth: 200, FieldHeight: 200}); err != nil {
		t.Fatalf("start: %v", err)
	}
	out, err := uc.Click(ctx, gamedto.ClickInput{Label: 2})
	if err != nil {
		t.Fatalf("click: %v", err)
	}
	if out.Outcome != gamedto.OutcomeLose || !out.Finished {
		t.Fatalf("expected lose, got %+v", out)
	}
	if _, err := uc.Click(ctx, gamedto.ClickInput{Label: 1}); !errors.Is(err, apperrors.ErrSessionInactive) {
		t.Fatalf("expected inactive, got %v", err)
	}
	if uc.State(ctx).Outcome != gamedto.OutcomeLose {
		t.Fatalf("result changed after lose")
	}
	fin, err := uc.Finish(ctx, gamedto.FinishInput{SessionID: out.SessionID})
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if fin.NewBest || fin.BestElapsed != 2*time.Second || fin.Cleared != 0 {
		t.Fatalf("unexpected finish %+v", fin)
	}
}

func TestStartWithoutPointsResets(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newInteractor(&fakeClock{now: t0}, nil)
	_, _ = uc.EditPoints(ctx, gamedto.EditInput{Value: "2"})
	if _, err := uc.Start(ctx, gamedto.StartInput{FieldWidth: 100, FieldHeight: 100}); err != nil {
		t.Fatalf("start: %v", err)
	}
	_, _ = uc.EditPoints(ctx, gamedto.EditInput{Value: ""})
	if _, err := uc.Start(ctx, gamedto.StartInput{}); !errors.Is(err, apperrors.ErrPointsRequired) {
		t.Fatalf("expected points required, got %v", err)
	}
	state := uc.State(ctx)
	if state.Started || state.Status != "idle" || state.NextExpected != 1 || state.Outcome != gamedto.OutcomeNone {
		t.Fatalf("expected idle state, got %+v", state)
	}
}

func TestEditRejectionsClearInput(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newInteractor(&fakeClock{now: t0}, nil)
	out, err := uc.EditPoints(ctx, gamedto.EditInput{Value: "20000"})
	if !errors.Is(err, apperrors.ErrTooManyPoints) || out.Value != "" {
		t.Fatalf("expected cleared too-many input, got %q %v", out.Value, err)
	}
	out, err = uc.EditPoints(ctx, gamedto.EditInput{Value: "abc"})
	if !errors.Is(err, apperrors.ErrInvalidNumber) || out.Value != "" {
		t.Fatalf("expected cleared invalid input, got %q %v", out.Value, err)
	}
	if uc.State(ctx).Input != "" {
		t.Fatalf("expected empty input in state")
	}
}

func TestRestartStartsFreshSession(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	clk := &fakeClock{now: t0}
	uc := newInteractor(clk, &fakeRecorder{})
	_, _ = uc.EditPoints(ctx, gamedto.EditInput{Value: "4"})
	first, _ := uc.Start(ctx, gamedto.StartInput{FieldWidth: 300, FieldHeight: 300})
	_, _ = uc.Click(ctx, gamedto.ClickInput{Label: 1})
	_, _ = uc.Click(ctx, gamedto.ClickInput{Label: 3})
	if _, err := uc.Finish(ctx, gamedto.FinishInput{SessionID: first.SessionID}); err != nil {
		t.Fatalf("finish: %v", err)
	}
	clk.now = t0.Add(time.Minute)
	second, err := uc.Start(ctx, gamedto.StartInput{FieldWidth: 300, FieldHeight: 300})
	if err != nil {
		t.Fatalf("restart: %v", err)
	}
	if second.SessionID == first.SessionID || !second.StartedAt.Equal(clk.now) {
		t.Fatalf("expected fresh session, got %+v", second)
	}
	state := uc.State(ctx)
	if state.NextExpected != 1 || state.Outcome != gamedto.OutcomeNone || state.Status != "active" {
		t.Fatalf("unexpected state after restart %+v", state)
	}
	reset := uc.Reset(ctx)
	if reset.Started || reset.Input != "4" {
		t.Fatalf("unexpected reset state %+v", reset)
	}
}

func TestFinishPropagatesRecorderError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	boom := errors.New("disk full")
	uc := newInteractor(&fakeClock{now: t0}, &fakeRecorder{err: boom})
	_, _ = uc.EditPoints(ctx, gamedto.EditInput{Value: "1"})
	_, _ = uc.Start(ctx, gamedto.StartInput{FieldWidth: 100, FieldHeight: 100})
	out, _ := uc.Click(ctx, gamedto.ClickInput{Label: 1})
	if _, err := uc.Finish(ctx, gamedto.FinishInput{SessionID: out.SessionID}); !errors.Is(err, boom) {
		t.Fatalf("expected recorder error, got %v", err)
	}
}

func TestFinishAfterRestartRecordsPreviousSession(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	rec := &fakeRecorder{}
	uc := newInteractor(&fakeClock{now: t0}, rec)
	_, _ = uc.EditPoints(ctx, gamedto.EditInput{Value: "1"})
	first, _ := uc.Start(ctx, gamedto.StartInput{FieldWidth: 100, FieldHeight: 100})
	_, _ = uc.Click(ctx, gamedto.ClickInput{Label: 1})
	if _, err := uc.Start(ctx, gamedto.StartInput{FieldWidth: 100, FieldHeight: 100}); err != nil {
		t.Fatalf("restart: %v", err)
	}
	fin, err := uc.Finish(ctx, gamedto.FinishInput{SessionID: first.SessionID})
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if fin.SessionID != first.SessionID || fin.Outcome != gamedto.OutcomeWin {
		t.Fatalf("expected first session recorded, got %+v", fin)
	}
	if len(rec.records) != 1 || rec.records[0].SessionID != first.SessionID {
		t.Fatalf("unexpected records %+v", rec.records)
	}
}

func TestFinishRecordsEachSessionWhenBothEndBeforeRecording(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	rec := &fakeRecorder{}
	uc := newInteractor(&fakeClock{now: t0}, rec)
	_, _ = uc.EditPoints(ctx, gamedto.EditInput{Value: "3"})

	if _, err := uc.Start(ctx, gamedto.StartInput{FieldWidth: 100, FieldHeight: 100}); err != nil {
		t.Fatalf("start first: %v", err)
	}
	first, err := uc.Click(ctx, gamedto.ClickInput{Label: 2})
	if err != nil || !first.Finished {
		t.Fatalf("expected first session to lose, got %+v %v", first, err)
	}
	if _, err := uc.Start(ctx, gamedto.StartInput{FieldWidth: 100, FieldHeight: 100}); err != nil {
		t.Fatalf("start second: %v", err)
	}
	second, err := uc.Click(ctx, gamedto.ClickInput{Label: 3})
	if err != nil || !second.Finished {
		t.Fatalf("expected second session to lose, got %+v %v", second, err)
	}
	if first.SessionID == second.SessionID {
		t.Fatalf("sessions share id %q", first.SessionID)
	}

	for _, id := range []string{first.SessionID, second.SessionID} {
		fin, err := uc.Finish(ctx, gamedto.FinishInput{SessionID: id})
		if err != nil {
			t.Fatalf("finish %s: %v", id, err)
		}
		if fin.SessionID != id || fin.Outcome != gamedto.OutcomeLose {
			t.Fatalf("finish %s returned %+v", id, fin)
		}
	}
	if len(rec.records) != 2 {
		t.Fatalf("expected both sessions recorded, got %d", len(rec.records))
	}
	if rec.records[0].SessionID != first.SessionID || rec.records[1].SessionID != second.SessionID {
		t.Fatalf("unexpected records %+v", rec.records)
	}
}

func TestFinishUnknownSessionFails(t *testing.T) {
	t.Parallel()
	uc := newInteractor(&fakeClock{now: t0}, &fakeRecorder{})
	_, err := uc.Finish(context.Background(), gamedto.FinishInput{SessionID: "missing"})
	if !errors.Is(err, apperrors.ErrSessionInactive) {
		t.Fatalf("expected inactive, got %v", err)
	}
}
