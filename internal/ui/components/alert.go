package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"clearpoints/internal/ui/theme"
)

// AlertDismissedMsg is emitted when the user acknowledges the alert.
type AlertDismissedMsg struct{}

// Alert is a modal notification. While visible it consumes every key and
// mouse event until acknowledged.
type Alert struct {
	message string
	visible bool
	width   int
}

func NewAlert() Alert { return Alert{} }

func (a *Alert) Show(message string) {
	a.message = message
	a.visible = true
}

func (a Alert) Visible() bool { return a.visible }

func (a *Alert) SetWidth(w int) { a.width = w }

func (a Alert) Update(msg tea.Msg) (Alert, tea.Cmd) {
	if !a.visible {
		return a, nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc", " ":
			return a.dismiss()
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return a.dismiss()
		}
	}
	return a, nil
}

func (a Alert) dismiss() (Alert, tea.Cmd) {
	a.visible = false
	return a, func() tea.Msg { return AlertDismissedMsg{} }
}

func (a Alert) View() string {
	if !a.visible {
		return ""
	}
	body := lipgloss.JoinVertical(lipgloss.Center,
		theme.Hot.Render(a.message),
		"",
		theme.Button.Render(" OK "),
		theme.Muted.Render("enter / esc / click"),
	)
	w := a.width
	if w < 24 {
		w = 48
	}
	return theme.Alert.Width(w).Align(lipgloss.Center).Render(body)
}
