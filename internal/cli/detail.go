package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/countries/internal/model"
)

const (
	defaultHeight = 24

	// lines outside the viewport: back hint, status and help
	detailChrome = 4
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	backStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	linkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Underline(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// countryLoadedMsg delivers the record fetched by one detail mount.
type countryLoadedMsg struct {
	mount   int
	country model.Country
	err     error
}

// detailScreen shows every attribute of one country.
type detailScreen struct {
	env      mount
	state    loadState[model.Country]
	viewport viewport.Model
	spinner  spinner.Model
	help     help.Model
	keys     detailKeyMap
	status   string
}

func newDetailScreen(env mount) screen {
	m := detailScreen{
		env:     env,
		spinner: newSpinner(),
		help:    help.New(),
		keys:    detailKeys,
	}

	m.viewport = viewport.New(m.viewportSize())

	return m
}

func (m detailScreen) viewportSize() (int, int) {
	width, height := m.env.width, m.env.height
	if width <= 0 {
		width = defaultWidth
	}

	if height <= 0 {
		height = defaultHeight
	}

	return width, max(1, height-detailChrome)
}

func (m detailScreen) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch())
}

func (m detailScreen) fetch() tea.Cmd {
	ctx, src, id, code := m.env.ctx, m.env.opts.Source, m.env.id, m.env.route.Code

	return func() tea.Msg {
		c, err := src.GetCountry(ctx, code)

		return countryLoadedMsg{mount: id, country: c, err: err}
	}
}

func (m detailScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.env.width, m.env.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.viewport.Width, m.viewport.Height = m.viewportSize()

		if m.state.ready() {
			m.viewport.SetContent(m.content())
		}

		return m, nil

	case countryLoadedMsg:
		if msg.mount != m.env.id {
			return m, nil
		}

		if msg.err != nil {
			m.env.opts.Logger.Warn("failed to load country",
				slog.String("code", m.env.route.Code),
				slog.String("error", msg.err.Error()),
			)
		}

		m.state.resolve(msg.country, msg.err)

		if m.state.ready() {
			m.viewport.SetContent(m.content())
			m.viewport.GotoTop()
		}

		return m, nil

	case openedURLMsg:
		if msg.err != nil {
			m.status = errorStyle.Render(fmt.Sprintf("could not open %s: %v", msg.label, msg.err))
		} else {
			m.status = successStyle.Render("Opened " + msg.label + " in your browser")
		}

		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.status = errorStyle.Render(fmt.Sprintf("could not copy %s: %v", msg.label, msg.err))
		} else {
			m.status = successStyle.Render("Copied " + msg.label + " to the clipboard")
		}

		return m, nil

	case spinner.TickMsg:
		if !m.state.loading() {
			return m, nil
		}

		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m detailScreen) handleKey(msg tea.KeyMsg) (screen, tea.Cmd) {
	switch {
	case m.state.loading():
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}

		return m, nil

	case m.state.failed():
		switch {
		case key.Matches(msg, m.keys.Reload):
			return m, reload
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}

		return m, nil
	}

	c := m.state.data

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		return m, navigate(RootPath)

	case key.Matches(msg, m.keys.GoogleMaps):
		return m, m.open("Google Maps", c.Maps.GoogleMaps)

	case key.Matches(msg, m.keys.OpenStreetMap):
		return m, m.open("OpenStreetMap", c.Maps.OpenStreetMaps)

	case key.Matches(msg, m.keys.Copy):
		if c.Maps.GoogleMaps == "" {
			return m, nil
		}

		return m, copyText(m.env.opts.CopyText, "Google Maps link", c.Maps.GoogleMaps)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

		return m, nil
	}

	var cmd tea.Cmd

	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

func (m detailScreen) open(label, url string) tea.Cmd {
	if url == "" {
		return nil
	}

	return openURL(m.env.opts.OpenURL, label, url)
}

// content renders the scrollable body of a loaded country.
func (m detailScreen) content() string {
	d := m.env.opts.Formatter.Detail(m.state.data)

	var b strings.Builder

	b.WriteString(titleStyle.Render(strings.ToUpper(d.Title)))
	b.WriteString("\n\n")

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-20s", label+":")))
		b.WriteString(" ")
		b.WriteString(value)
		b.WriteString("\n")
	}

	row("Flag", strings.TrimSpace(d.Flag+" "+hyperlink(linkStyle.Render("flag image"), d.FlagURL)))

	if d.CoatOfArmsURL != "" {
		row("Coat of Arms", hyperlink(linkStyle.Render("coat of arms image"), d.CoatOfArmsURL))
	}

	b.WriteString("\n")

	for _, f := range d.Fields {
		row(f.Label, f.Value)
	}

	b.WriteString("\n")

	for _, l := range d.Maps {
		row(l.Label, hyperlink(linkStyle.Render("View on "+l.Label), l.URL))
	}

	return b.String()
}

func (m detailScreen) View() string {
	switch {
	case m.state.loading():
		return loadingView(m.spinner, "country "+m.env.route.Code)
	case m.state.failed():
		return failedView(m.state.err, "[r] Reload")
	}

	var b strings.Builder

	b.WriteString(backStyle.Render("← esc: back to list"))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.status)
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}
