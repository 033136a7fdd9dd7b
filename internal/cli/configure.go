package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/countries/internal/core"
	"github.com/inovacc/countries/internal/model"
)

const fmtField = " %s\n %s\n\n"

var (
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	blurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	noStyle      = lipgloss.NewStyle()

	focusedButton = focusedStyle.Render("[ Save ]")
	blurredButton = fmt.Sprintf("[ %s ]", blurredStyle.Render("Save"))
)

const (
	fieldURL = iota
	fieldTimeout
	fieldLocale
	fieldNativeLang
	fieldLogFile
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldURL:        "API URL:",
	fieldTimeout:    "Request Timeout (e.g. 10s, 0 for none):",
	fieldLocale:     "Number Locale:",
	fieldNativeLang: "Native Name Language:",
	fieldLogFile:    "Log File (optional):",
}

// ConfigureModel edits the configuration file through a small form.
type ConfigureModel struct {
	path       string
	base       model.Config
	focusIndex int
	inputs     []textinput.Model
	save       func(string, model.Config) error
	Saved      bool
	Err        error
}

// NewConfigureModel prefills the form with cfg. Submitting writes the
// result to path.
func NewConfigureModel(path string, cfg model.Config) ConfigureModel {
	m := ConfigureModel{
		path:   path,
		base:   cfg,
		inputs: make([]textinput.Model, fieldCount),
		save:   core.SaveConfig,
	}

	timeout := ""
	if cfg.API.Timeout > 0 {
		timeout = cfg.API.Timeout.String()
	}

	for i := range m.inputs {
		t := textinput.New()
		t.Cursor.Style = focusedStyle
		t.CharLimit = 256

		switch i {
		case fieldURL:
			t.Placeholder = model.DefaultConfig().API.URL
			t.SetValue(cfg.API.URL)
			t.Focus()
			t.PromptStyle = focusedStyle
			t.TextStyle = focusedStyle
		case fieldTimeout:
			t.Placeholder = "0"
			t.CharLimit = 16
			t.SetValue(timeout)
		case fieldLocale:
			t.Placeholder = "en"
			t.CharLimit = 35
			t.SetValue(cfg.Display.Locale)
		case fieldNativeLang:
			t.Placeholder = "ind"
			t.CharLimit = 8
			t.SetValue(cfg.Display.NativeLang)
		case fieldLogFile:
			t.Placeholder = "path to a log file"
			t.SetValue(cfg.Log.File)
		}

		m.inputs[i] = t
	}

	return m
}

func (m *ConfigureModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ConfigureModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case successMsg:
		m.Saved = true
		return m, tea.Quit
	case errMsg:
		m.Err = msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			if s == "enter" && m.focusIndex == len(m.inputs) {
				return m, m.saveConfig
			}

			if s == "up" || s == "shift+tab" {
				m.focusIndex--
			} else {
				m.focusIndex++
			}

			if m.focusIndex > len(m.inputs) {
				m.focusIndex = 0
			} else if m.focusIndex < 0 {
				m.focusIndex = len(m.inputs)
			}

			cmds := make([]tea.Cmd, len(m.inputs))
			for i := range m.inputs {
				if i == m.focusIndex {
					cmds[i] = m.inputs[i].Focus()
					m.inputs[i].PromptStyle = focusedStyle
					m.inputs[i].TextStyle = focusedStyle

					continue
				}

				m.inputs[i].Blur()
				m.inputs[i].PromptStyle = noStyle
				m.inputs[i].TextStyle = noStyle
			}

			return m, tea.Batch(cmds...)
		}
	}

	return m, m.updateInputs(msg)
}

// Only focused inputs react, so every input can see every message.
func (m *ConfigureModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))

	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}

	return tea.Batch(cmds...)
}

func (m *ConfigureModel) View() string {
	if m.Saved {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Render(fmt.Sprintf("\n  ✓ Configuration saved to %s\n\n", m.path))
	}

	if m.Err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  ✗ Error: %v\n\n", m.Err))
	}

	header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))

	var b strings.Builder

	b.WriteString(header.Render("Configure Countries") + "\n")
	b.WriteString(blurredStyle.Render("Edit the fields below and press Tab to navigate") + "\n\n")

	for i, label := range fieldLabels {
		fmt.Fprintf(&b, fmtField, blurredStyle.Render(label), m.inputs[i].View())
	}

	button := blurredButton
	if m.focusIndex == len(m.inputs) {
		button = focusedButton
	}

	fmt.Fprintf(&b, "\n %s\n\n", button)
	b.WriteString(blurredStyle.Render(" tab/shift+tab: navigate • enter: save • esc: quit"))

	return b.String()
}

// config builds the configuration the form currently describes.
func (m *ConfigureModel) config() (model.Config, error) {
	cfg := m.base
	defaults := model.DefaultConfig()

	cfg.API.URL = strings.TrimSpace(m.inputs[fieldURL].Value())
	if cfg.API.URL == "" {
		cfg.API.URL = defaults.API.URL
	}

	cfg.API.Timeout = 0
	if raw := strings.TrimSpace(m.inputs[fieldTimeout].Value()); raw != "" && raw != "0" {
		d, err := time.ParseDuration(raw)
		if err != nil || d < 0 {
			return cfg, fmt.Errorf("invalid timeout %q", raw)
		}

		cfg.API.Timeout = d
	}

	cfg.Display.Locale = strings.TrimSpace(m.inputs[fieldLocale].Value())
	if cfg.Display.Locale == "" {
		cfg.Display.Locale = defaults.Display.Locale
	}

	cfg.Display.NativeLang = strings.TrimSpace(m.inputs[fieldNativeLang].Value())
	if cfg.Display.NativeLang == "" {
		cfg.Display.NativeLang = defaults.Display.NativeLang
	}

	cfg.Log.File = strings.TrimSpace(m.inputs[fieldLogFile].Value())

	return cfg, nil
}

func (m *ConfigureModel) saveConfig() tea.Msg {
	cfg, err := m.config()
	if err != nil {
		return errMsg{err}
	}

	if err := m.save(m.path, cfg); err != nil {
		return errMsg{err}
	}

	return successMsg{}
}

type successMsg struct{}
type errMsg struct{ err error }

// RunConfigure shows the configuration form and reports whether the
// file was written.
func RunConfigure(path string, cfg model.Config) (bool, error) {
	m := NewConfigureModel(path, cfg)

	final, err := tea.NewProgram(&m).Run()
	if err != nil {
		return false, err
	}

	result, ok := final.(*ConfigureModel)
	if !ok {
		return false, nil
	}

	return result.Saved, result.Err
}
