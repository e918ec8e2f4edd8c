package domain

import (
	"strconv"
	"strings"
	"time"

	gamedto "clearpoints/internal/modules/game/dto"
	apperrors "clearpoints/internal/platform/errors"
)

const (
	MaxPoints  = gamedto.MaxPoints
	MarkerSize = gamedto.MarkerSize
)

type Result int

const (
	ResultNone Result = iota
	ResultWin
	ResultLose
)

func (r Result) String() string {
	switch r {
	case ResultWin:
		return "win"
	case ResultLose:
		return "lose"
	}
	return ""
}

type Status int

const (
	StatusIdle Status = iota
	StatusActive
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusWon:
		return "finished-win"
	case StatusLost:
		return "finished-lose"
	}
	return "idle"
}

// Session is one playthrough. A zero StartedAt means no session has started.
type Session struct {
	ID           string
	StartedAt    time.Time
	EndedAt      time.Time
	TargetCount  int
	NextExpected int
	Result       Result
}

func NewSession(id string, startedAt time.Time, targetCount int) Session {
	return Session{ID: id, StartedAt: startedAt, TargetCount: targetCount, NextExpected: 1}
}

func (s Session) Started() bool  { return !s.StartedAt.IsZero() }
func (s Session) Finished() bool { return s.Result != ResultNone }

func (s Session) Status() Status {
	switch {
	case s.Result == ResultWin:
		return StatusWon
	case s.Result == ResultLose:
		return StatusLost
	case s.Started():
		return StatusActive
	}
	return StatusIdle
}

// Cleared is the number of markers clicked in order.
func (s Session) Cleared() int {
	if s.Result == ResultWin {
		return s.TargetCount
	}
	if s.NextExpected < 1 {
		return 0
	}
	return s.NextExpected - 1
}

// Click applies a marker click. Any label other than NextExpected loses,
// the target count wins, anything else advances the cursor.
func (s *Session) Click(label int, at time.Time) (Result, error) {
	if s.Status() != StatusActive {
		return s.Result, apperrors.ErrSessionInactive
	}
	switch {
	case label != s.NextExpected:
		s.Result = ResultLose
		s.EndedAt = at
	case label == s.TargetCount:
		s.Result = ResultWin
		s.EndedAt = at
	default:
		s.NextExpected = label + 1
	}
	return s.Result, nil
}

// Game is the controller state: the configuration text plus the current
// session.
type Game struct {
	Input   string
	Session Session
}

func NewGame() Game {
	return Game{Session: Session{NextExpected: 1}}
}

// Edit validates a configuration edit. Rejected values clear the input.
func (g *Game) Edit(value string) error {
	if value == "" {
		g.Input = ""
		return nil
	}
	if _, err := ParsePoints(value); err != nil {
		g.Input = ""
		return err
	}
	g.Input = value
	return nil
}

// Start replaces the session with a fresh one sized from the input. An empty
// input resets the game to idle instead.
func (g *Game) Start(id string, now time.Time) error {
	if g.Input == "" {
		g.Reset()
		return apperrors.ErrPointsRequired
	}
	target, err := ParsePoints(g.Input)
	if err != nil {
		g.Reset()
		return err
	}
	g.Session = NewSession(id, now, target)
	return nil
}

// Reset returns to idle. The configuration text is kept.
func (g *Game) Reset() {
	g.Session = Session{NextExpected: 1}
}

// ParsePoints reads the leading integer of value, ignoring its sign.
// Trailing non-digits are tolerated.
func ParsePoints(value string) (int, error) {
	s := strings.TrimLeft(value, " \t\r\n")
	if s != "" && (s[0] == '-' || s[0] == '+') {
		s = s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, apperrors.ErrInvalidNumber
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n > MaxPoints {
		return 0, apperrors.ErrTooManyPoints
	}
	return n, nil
}
