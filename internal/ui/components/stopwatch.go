package components

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// StopwatchTickMsg advances the stopwatch. Generation identifies the
// (re)start that scheduled it.
type StopwatchTickMsg struct {
	Generation int
}

// Stopwatch counts elapsed time in fixed quanta. Every Restart, Stop or Reset
// starts a new generation, so ticks scheduled earlier are dropped and at most
// one tick chain is live.
type Stopwatch struct {
	interval   time.Duration
	elapsed    time.Duration
	generation int
	running    bool
}

func NewStopwatch(interval time.Duration) Stopwatch {
	return Stopwatch{interval: interval}
}

// Restart zeroes the readout and schedules the first tick one interval out.
func (s *Stopwatch) Restart() tea.Cmd {
	s.generation++
	s.elapsed = 0
	s.running = true
	return s.tick()
}

// Stop freezes the readout at its current value.
func (s *Stopwatch) Stop() {
	s.generation++
	s.running = false
}

// Reset stops the stopwatch and zeroes it.
func (s *Stopwatch) Reset() {
	s.Stop()
	s.elapsed = 0
}

func (s Stopwatch) Running() bool          { return s.running }
func (s Stopwatch) Elapsed() time.Duration { return s.elapsed }
func (s Stopwatch) Generation() int        { return s.generation }

func (s Stopwatch) Update(msg tea.Msg) (Stopwatch, tea.Cmd) {
	tick, ok := msg.(StopwatchTickMsg)
	if !ok || !s.running || tick.Generation != s.generation {
		return s, nil
	}
	s.elapsed += s.interval
	return s, s.tick()
}

func (s Stopwatch) View() string {
	return fmt.Sprintf("%.1fs", s.elapsed.Seconds())
}

func (s Stopwatch) tick() tea.Cmd {
	gen := s.generation
	return tea.Tick(s.interval, func(time.Time) tea.Msg {
		return StopwatchTickMsg{Generation: gen}
	})
}
