package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	gamedto "clearpoints/internal/modules/game/dto"
	apperrors "clearpoints/internal/platform/errors"
	"clearpoints/internal/ui/components"
	"clearpoints/internal/ui/theme"
	fieldview "clearpoints/internal/ui/views/field"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type gamePort interface {
	EditPoints(ctx context.Context, value string) (string, error)
	Start(ctx context.Context, fieldWidth, fieldHeight int) (gamedto.StartOutput, error)
	Click(ctx context.Context, label int) (gamedto.ClickOutput, error)
	Reset(ctx context.Context) gamedto.StateOutput
	State(ctx context.Context) gamedto.StateOutput
	Finish(ctx context.Context, sessionID string) (gamedto.FinishOutput, error)
}

// ─── layout ──────────────────────────────────────────────────────────────────
// Rows are fixed so mouse coordinates map back to widgets without a render.

const (
	formRow    = 2
	fieldTop   = 4
	statusRows = 1
	inputWidth = 8

	tickInterval = 100 * time.Millisecond
)

// ─── async messages ──────────────────────────────────────────────────────────

type finishedMsg struct {
	out gamedto.FinishOutput
	err error
}

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Play    key.Binding
	Reset   key.Binding
	Dismiss key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Play:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "play/restart")),
		Reset:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset")),
		Dismiss: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.Reset, k.Dismiss, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model: header, points form, stopwatch, the
// play button and the field. Game rules live behind gamePort; the model only
// renders and forwards events.
type Model struct {
	game gamePort
	log  zerolog.Logger

	input     textinput.Model
	stopwatch components.Stopwatch
	field     fieldview.Model
	alert     components.Alert
	keys      keyMap
	help      help.Model

	state  gamedto.StateOutput
	status string
	width  int
	height int
}

func NewModel(game gamePort, cellW, cellH int, initialPoints string, log zerolog.Logger) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "1-" + fmt.Sprint(gamedto.MaxPoints)
	ti.CharLimit = 12
	ti.Width = inputWidth
	ti.Focus()

	m := Model{
		game:      game,
		log:       log,
		input:     ti,
		stopwatch: components.NewStopwatch(tickInterval),
		field:     fieldview.New(cellW, cellH),
		alert:     components.NewAlert(),
		keys:      defaultKeys(),
		help:      help.New(),
		status:    "ready",
	}
	if initialPoints != "" {
		m.editPoints(initialPoints)
	}
	m.state = game.State(context.Background())
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.resize(size.Width, size.Height)
		return m, nil
	}
	if tick, ok := msg.(components.StopwatchTickMsg); ok {
		var cmd tea.Cmd
		m.stopwatch, cmd = m.stopwatch.Update(tick)
		return m, cmd
	}

	// The alert blocks all input until it is acknowledged.
	if m.alert.Visible() {
		if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, m.keys.Quit) {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.alert, cmd = m.alert.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case components.AlertDismissedMsg:
		return m, m.input.Focus()

	case finishedMsg:
		m.status = finishStatus(msg.out, msg.err)
		if msg.err != nil {
			m.log.Error().Err(msg.err).Msg("record result")
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Play):
			return m.play()
		case key.Matches(msg, m.keys.Reset):
			m.reset()
			m.status = "reset"
			return m, nil
		}
		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if value := m.input.Value(); value != before {
			m.editPoints(value)
		}
		return m, cmd

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if m.onButton(msg.X, msg.Y) {
			return m.play()
		}
		if m.field.Inert() {
			return m, nil
		}
		if label, ok := m.field.ClickAt(msg.X-1, msg.Y-fieldTop-1); ok {
			return m.click(label)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) editPoints(value string) {
	accepted, err := m.game.EditPoints(context.Background(), value)
	if err != nil {
		m.alert.Show(notificationFor(err))
	}
	m.input.SetValue(accepted)
	m.input.CursorEnd()
}

func (m Model) play() (tea.Model, tea.Cmd) {
	w, h := m.field.Units()
	out, err := m.game.Start(context.Background(), w, h)
	if err != nil {
		m.reset()
		m.alert.Show(notificationFor(err))
		return m, nil
	}
	m.field.SetMarkers(out.Markers)
	m.state = m.game.State(context.Background())
	m.status = fmt.Sprintf("find 1 of %d", out.TargetCount)
	return m, m.stopwatch.Restart()
}

func (m Model) click(label int) (tea.Model, tea.Cmd) {
	out, err := m.game.Click(context.Background(), label)
	if err != nil {
		if !errors.Is(err, apperrors.ErrSessionInactive) {
			m.log.Error().Err(err).Int("label", label).Msg("click")
		}
		return m, nil
	}
	m.state = m.game.State(context.Background())
	if !out.Finished {
		m.status = fmt.Sprintf("next: %d", out.NextExpected)
		return m, nil
	}
	m.stopwatch.Stop()
	m.field.SetInert(true)
	m.status = "saving result…"
	return m, m.finishCmd(out.SessionID)
}

func (m *Model) reset() {
	m.state = m.game.Reset(context.Background())
	m.field.Clear()
	m.stopwatch.Reset()
}

func (m *Model) resize(w, h int) {
	m.width = w
	m.height = h
	m.help.Width = w
	m.alert.SetWidth(min(w-4, 56))
	m.field.SetSize(w-2, m.fieldHeight()-2)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	prefix, button := m.formParts()
	var fieldArea string
	if m.alert.Visible() {
		fieldArea = lipgloss.Place(m.width, m.fieldHeight(), lipgloss.Center, lipgloss.Center, m.alert.View())
	} else {
		fieldArea = m.field.View()
	}
	return strings.Join([]string{
		m.renderHeader(),
		"",
		prefix + button,
		"",
		fieldArea,
		m.renderStatusBar(),
	}, "\n")
}

func (m Model) renderHeader() string {
	switch m.state.Outcome {
	case gamedto.OutcomeWin:
		return theme.Win.Render("ALL CLEARED")
	case gamedto.OutcomeLose:
		return theme.Lose.Render("GAME OVER")
	}
	return theme.Title.Render("LET'S PLAY")
}

// formParts renders the form row split before the button, so the button's
// column is the width of the first part.
func (m Model) formParts() (string, string) {
	input := lipgloss.NewStyle().Width(inputWidth + 1).Render(m.input.View())
	prefix := theme.Label.Render("Points: ") + input + "   " +
		theme.Label.Render("Time: ") + m.stopwatch.View() + "   "
	label := "Play"
	if m.state.Started {
		label = "Restart"
	}
	return prefix, theme.Button.Render(" " + label + " ")
}

func (m Model) onButton(x, y int) bool {
	if y != formRow {
		return false
	}
	prefix, button := m.formParts()
	left := lipgloss.Width(prefix)
	return x >= left && x < left+lipgloss.Width(button)
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.stopwatch.Running() {
		left = theme.Hot.Render(fmt.Sprintf("● next %d  left %d", m.state.NextExpected, m.field.Remaining())) + "  " + left
	}
	// Help gives way to the status text on narrow terminals.
	h := m.help
	h.Width = max(m.width-lipgloss.Width(left)-1, 1)
	right := h.ShortHelpView(m.keys.ShortHelp())
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return theme.StatusBar.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) fieldHeight() int {
	return max(m.height-fieldTop-statusRows, 2)
}

// ─── async commands ──────────────────────────────────────────────────────────

// finishCmd records the session that just ended. The id travels with the
// command so a later session finishing first cannot take its place.
func (m Model) finishCmd(sessionID string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.game.Finish(context.Background(), sessionID)
		return finishedMsg{out: out, err: err}
	}
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func notificationFor(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrPointsRequired):
		return "Please enter number of points!"
	case errors.Is(err, apperrors.ErrInvalidNumber):
		return "Please enter a valid number!"
	case errors.Is(err, apperrors.ErrTooManyPoints):
		return fmt.Sprintf("Please enter a valid number less than %d!", gamedto.MaxPoints)
	}
	return err.Error()
}

func finishStatus(out gamedto.FinishOutput, err error) string {
	if err != nil {
		return "history: " + err.Error()
	}
	secs := func(d time.Duration) string { return fmt.Sprintf("%.1fs", d.Seconds()) }
	if out.Outcome == gamedto.OutcomeWin {
		if out.NewBest {
			return fmt.Sprintf("cleared %d in %s, new best: %s", out.TargetCount, secs(out.Elapsed), secs(out.Elapsed))
		}
		if out.BestElapsed > 0 {
			return fmt.Sprintf("cleared %d in %s, best: %s", out.TargetCount, secs(out.Elapsed), secs(out.BestElapsed))
		}
		return fmt.Sprintf("cleared %d in %s", out.TargetCount, secs(out.Elapsed))
	}
	return fmt.Sprintf("missed after %d of %d", out.Cleared, out.TargetCount)
}
