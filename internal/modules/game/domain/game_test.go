package domain_test

import (
	"errors"
	"testing"
	"time"

	"clearpoints/internal/modules/game/domain"
	apperrors "clearpoints/internal/platform/errors"
)

var t0 = time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

func startedGame(t *testing.T, input string) domain.Game {
	t.Helper()
	g := domain.NewGame()
	if err := g.Edit(input); err != nil {
		t.Fatalf("edit %q: %v", input, err)
	}
	if err := g.Start("s-1", t0); err != nil {
		t.Fatalf("start: %v", err)
	}
	return g
}

func TestParsePoints(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name  string
		input string
		want  int
		err   error
	}{
		{name: "plain", input: "3", want: 3},
		{name: "max", input: "10000", want: 10000},
		{name: "zero", input: "0", want: 0},
		{name: "negative uses absolute value", input: "-7", want: 7},
		{name: "leading space", input: "  12", want: 12},
		{name: "trailing garbage", input: "12abc", want: 12},
		{name: "letters", input: "abc", err: apperrors.ErrInvalidNumber},
		{name: "sign only", input: "-", err: apperrors.ErrInvalidNumber},
		{name: "over max", input: "10001", err: apperrors.ErrTooManyPoints},
		{name: "huge", input: "99999999999999999999999", err: apperrors.ErrTooManyPoints},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := domain.ParsePoints(tc.input)
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Fatalf("expected %v, got %v", tc.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestEditClearsRejectedInputAndKeepsValidTextVerbatim(t *testing.T) {
	t.Parallel()
	g := domain.NewGame()
	if err := g.Edit("12abc"); err != nil {
		t.Fatalf("edit: %v", err)
	}
	if g.Input != "12abc" {
		t.Fatalf("expected verbatim input, got %q", g.Input)
	}
	if err := g.Edit("20000"); !errors.Is(err, apperrors.ErrTooManyPoints) {
		t.Fatalf("expected too many points, got %v", err)
	}
	if g.Input != "" {
		t.Fatalf("expected cleared input, got %q", g.Input)
	}
	_ = g.Edit("5")
	if err := g.Edit("x"); !errors.Is(err, apperrors.ErrInvalidNumber) {
		t.Fatalf("expected invalid number, got %v", err)
	}
	if g.Input != "" {
		t.Fatalf("expected cleared input, got %q", g.Input)
	}
	if err := g.Edit(""); err != nil || g.Input != "" {
		t.Fatalf("empty edit must be accepted, got %v %q", err, g.Input)
	}
}

func TestEditDoesNotTouchSession(t *testing.T) {
	t.Parallel()
	g := startedGame(t, "3")
	before := g.Session
	_ = g.Edit("abc")
	if g.Session != before {
		t.Fatalf("session changed on rejected edit: %+v", g.Session)
	}
}

func TestStartWithEmptyInputResetsToIdle(t *testing.T) {
	t.Parallel()
	g := startedGame(t, "3")
	_ = g.Edit("")
	if err := g.Start("s-2", t0); !errors.Is(err, apperrors.ErrPointsRequired) {
		t.Fatalf("expected points required, got %v", err)
	}
	if g.Session.Status() != domain.StatusIdle || g.Session.Started() || g.Session.NextExpected != 1 {
		t.Fatalf("expected idle session, got %+v", g.Session)
	}
}

func TestInOrderClicksWinOnlyOnLastLabel(t *testing.T) {
	t.Parallel()
	g := startedGame(t, "3")
	for label := 1; label <= 2; label++ {
		res, err := g.Session.Click(label, t0)
		if err != nil {
			t.Fatalf("click %d: %v", label, err)
		}
		if res != domain.ResultNone || g.Session.Status() != domain.StatusActive {
			t.Fatalf("expected active after %d, got %v", label, g.Session.Status())
		}
		if g.Session.NextExpected != label+1 {
			t.Fatalf("expected next %d, got %d", label+1, g.Session.NextExpected)
		}
	}
	ended := t0.Add(3 * time.Second)
	res, err := g.Session.Click(3, ended)
	if err != nil {
		t.Fatalf("click 3: %v", err)
	}
	if res != domain.ResultWin || g.Session.Status() != domain.StatusWon {
		t.Fatalf("expected win, got %v", res)
	}
	if !g.Session.EndedAt.Equal(ended) || g.Session.Cleared() != 3 {
		t.Fatalf("unexpected finished session %+v", g.Session)
	}
}

func TestOutOfOrderClickLosesAndIsTerminal(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		clicks []int
	}{
		{name: "skip first", clicks: []int{2}},
		{name: "jump ahead", clicks: []int{1, 4}},
		{name: "click lower label", clicks: []int{1, 2, 1}},
		{name: "click last early", clicks: []int{5}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g := startedGame(t, "5")
			var res domain.Result
			for i, label := range tc.clicks {
				var err error
				res, err = g.Session.Click(label, t0)
				if err != nil {
					t.Fatalf("click %d: %v", label, err)
				}
				if i < len(tc.clicks)-1 && res != domain.ResultNone {
					t.Fatalf("finished early on %d", label)
				}
			}
			if res != domain.ResultLose || g.Session.Status() != domain.StatusLost {
				t.Fatalf("expected lose, got %v", res)
			}
			if _, err := g.Session.Click(g.Session.NextExpected, t0); !errors.Is(err, apperrors.ErrSessionInactive) {
				t.Fatalf("expected inactive after lose, got %v", err)
			}
			if g.Session.Result != domain.ResultLose {
				t.Fatalf("result changed after lose: %v", g.Session.Result)
			}
		})
	}
}

func TestClickWhileIdleIsRejected(t *testing.T) {
	t.Parallel()
	g := domain.NewGame()
	if _, err := g.Session.Click(1, t0); !errors.Is(err, apperrors.ErrSessionInactive) {
		t.Fatalf("expected inactive, got %v", err)
	}
}

func TestRestartResetsCursorAndResult(t *testing.T) {
	t.Parallel()
	g := startedGame(t, "3")
	_, _ = g.Session.Click(2, t0)
	if g.Session.Status() != domain.StatusLost {
		t.Fatalf("expected lost")
	}
	later := t0.Add(time.Minute)
	if err := g.Start("s-2", later); err != nil {
		t.Fatalf("restart: %v", err)
	}
	s := g.Session
	if s.ID != "s-2" || !s.StartedAt.Equal(later) || s.NextExpected != 1 || s.Result != domain.ResultNone || s.TargetCount != 3 {
		t.Fatalf("unexpected restarted session %+v", s)
	}
}

func TestStatusAndResultStrings(t *testing.T) {
	t.Parallel()
	if domain.StatusIdle.String() != "idle" || domain.StatusActive.String() != "active" ||
		domain.StatusWon.String() != "finished-win" || domain.StatusLost.String() != "finished-lose" {
		t.Fatalf("unexpected status strings")
	}
	if domain.ResultNone.String() != "" || domain.ResultWin.String() != "win" || domain.ResultLose.String() != "lose" {
		t.Fatalf("unexpected result strings")
	}
}
