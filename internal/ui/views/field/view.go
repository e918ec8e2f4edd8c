package field

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	gamedto "clearpoints/internal/modules/game/dto"
	"clearpoints/internal/ui/theme"
)

// Model is the play field. It owns the markers of the current session in
// drawing order; the last marker is on top.
type Model struct {
	markers []gamedto.Marker
	width   int
	height  int
	cellW   int
	cellH   int
	inert   bool
}

// New returns an empty field where one terminal cell covers cellW x cellH
// field units.
func New(cellW, cellH int) Model {
	return Model{cellW: max(cellW, 1), cellH: max(cellH, 1)}
}

// SetSize sets the inner size of the field in cells.
func (m *Model) SetSize(w, h int) {
	m.width = max(w, 0)
	m.height = max(h, 0)
}

// Units reports the inner size in field units.
func (m Model) Units() (int, int) {
	return m.width * m.cellW, m.height * m.cellH
}

// SetMarkers replaces every marker and makes the field clickable again.
func (m *Model) SetMarkers(markers []gamedto.Marker) {
	m.markers = append([]gamedto.Marker(nil), markers...)
	m.inert = false
}

func (m *Model) Clear() {
	m.markers = nil
	m.inert = false
}

// SetInert freezes the markers in place; clicks are ignored.
func (m *Model) SetInert(inert bool) { m.inert = inert }

func (m Model) Inert() bool    { return m.inert }
func (m Model) Remaining() int { return len(m.markers) }

// ClickAt removes the topmost marker covering cell (x, y), relative to the
// inner top-left corner, and returns its label.
func (m *Model) ClickAt(x, y int) (int, bool) {
	if m.inert {
		return 0, false
	}
	for i := len(m.markers) - 1; i >= 0; i-- {
		cx, cy, w, h := m.rect(m.markers[i])
		if x >= cx && x < cx+w && y >= cy && y < cy+h {
			label := m.markers[i].Label
			m.markers = append(m.markers[:i], m.markers[i+1:]...)
			return label, true
		}
	}
	return 0, false
}

// rect converts a marker to cell coordinates.
func (m Model) rect(mk gamedto.Marker) (x, y, w, h int) {
	return mk.X / m.cellW, mk.Y / m.cellH,
		max(gamedto.MarkerSize/m.cellW, 1), max(gamedto.MarkerSize/m.cellH, 1)
}

func (m Model) View() string {
	return theme.Field.Render(m.canvas())
}

func (m Model) canvas() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	// owner holds marker index + 1 per cell, 0 for empty space.
	owner := make([][]int, m.height)
	glyph := make([][]rune, m.height)
	for y := range owner {
		owner[y] = make([]int, m.width)
		glyph[y] = []rune(strings.Repeat(" ", m.width))
	}
	for i, mk := range m.markers {
		cx, cy, w, h := m.rect(mk)
		for y := cy; y < cy+h && y < m.height; y++ {
			for x := cx; x < cx+w && x < m.width; x++ {
				owner[y][x] = i + 1
				glyph[y][x] = ' '
			}
		}
		label := []rune(strconv.Itoa(mk.Label))
		row := cy + h/2
		start := cx + (w-len(label))/2
		if start < cx {
			start = cx
		}
		for j, r := range label {
			x := start + j
			if row < m.height && x < m.width && x < cx+w {
				glyph[row][x] = r
			}
		}
	}

	lines := make([]string, m.height)
	for y := 0; y < m.height; y++ {
		var sb strings.Builder
		for x := 0; x < m.width; {
			end := x
			for end < m.width && owner[y][end] == owner[y][x] {
				end++
			}
			run := string(glyph[y][x:end])
			if o := owner[y][x]; o > 0 {
				sb.WriteString(m.markerStyle(m.markers[o-1]).Render(run))
			} else {
				sb.WriteString(run)
			}
			x = end
		}
		lines[y] = sb.String()
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) markerStyle(mk gamedto.Marker) lipgloss.Style {
	switch {
	case m.inert:
		return theme.MarkerInert
	case mk.Label%2 == 1:
		return theme.MarkerOdd
	}
	return theme.MarkerEven
}
