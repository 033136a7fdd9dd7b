package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// hyperlink wraps text in an OSC 8 terminal hyperlink. Terminals without
// support show the text alone.
func hyperlink(text, url string) string {
	if url == "" {
		return text
	}

	return ansi.SetHyperlink(url) + text + ansi.ResetHyperlink()
}

type openedURLMsg struct {
	label string
	err   error
}

// openURL opens url outside the terminal, in a new browser tab or window.
func openURL(open func(string) error, label, url string) tea.Cmd {
	return func() tea.Msg {
		return openedURLMsg{label: label, err: open(url)}
	}
}

type copiedMsg struct {
	label string
	err   error
}

// copyText puts text on the system clipboard.
func copyText(write func(string) error, label, text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{label: label, err: write(text)}
	}
}
