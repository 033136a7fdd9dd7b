package cli

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

var (
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	buttonStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("63")).Padding(0, 2)
)

type phase int

const (
	phaseLoading phase = iota
	phaseFailed
	phaseReady
)

func (p phase) String() string {
	switch p {
	case phaseLoading:
		return "loading"
	case phaseFailed:
		return "failed"
	case phaseReady:
		return "ready"
	}

	return "unknown"
}

// loadState is the fetch lifecycle of a screen. Exactly one of loading,
// failed (with a message) or ready (with data) holds at any time.
type loadState[T any] struct {
	phase phase
	err   string
	data  T
}

// resolve settles a loading state with the outcome of its fetch.
func (s *loadState[T]) resolve(data T, err error) {
	if err != nil {
		var zero T

		s.phase = phaseFailed
		s.err = err.Error()
		s.data = zero

		return
	}

	s.phase = phaseReady
	s.err = ""
	s.data = data
}

func (s loadState[T]) loading() bool { return s.phase == phaseLoading }
func (s loadState[T]) failed() bool  { return s.phase == phaseFailed }
func (s loadState[T]) ready() bool   { return s.phase == phaseReady }

func newSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return s
}

// loadingView is shared by both screens while their fetch is pending.
func loadingView(s spinner.Model, what string) string {
	return "\n  " + s.View() + " Loading " + what + "...\n"
}

// failedView shows the error and the single reload action.
func failedView(msg string, reload string) string {
	return "\n  " + errorStyle.Render("✗ "+msg) + "\n\n  " + buttonStyle.Render(reload) + "\n"
}
