package theme

import "github.com/charmbracelet/lipgloss"

var (
	Base     = lipgloss.Color("#1e1e2e")
	Mantle   = lipgloss.Color("#181825")
	Surface0 = lipgloss.Color("#313244")
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Red      = lipgloss.Color("#f38ba8")
	Peach    = lipgloss.Color("#fab387")

	Title = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Hot   = lipgloss.NewStyle().Foreground(Peach).Bold(true)

	Win  = lipgloss.NewStyle().Foreground(Green).Bold(true)
	Lose = lipgloss.NewStyle().Foreground(Red).Bold(true)

	Label  = lipgloss.NewStyle().Foreground(Subtext0)
	Button = lipgloss.NewStyle().
		Background(Surface1).
		Foreground(Text).
		Bold(true)

	Field = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1)

	// Alternating marker fills keep overlapping markers apart.
	MarkerOdd   = lipgloss.NewStyle().Background(Lavender).Foreground(Base).Bold(true)
	MarkerEven  = lipgloss.NewStyle().Background(Sapphire).Foreground(Base).Bold(true)
	MarkerInert = lipgloss.NewStyle().Background(Surface0).Foreground(Subtext0)

	Alert = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Peach).
		Background(Mantle).
		Foreground(Text).
		Padding(1, 2)

	StatusBar = lipgloss.NewStyle().Background(Mantle)
)
