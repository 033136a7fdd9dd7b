package cli

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/inovacc/countries/internal/catalog"
	"github.com/inovacc/countries/internal/model"
	"github.com/inovacc/countries/internal/render"
)

const (
	cardWidth    = 30
	maxColumns   = 4
	defaultWidth = 80
)

var (
	headerStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")).MarginLeft(2)
	subtitleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).MarginLeft(2)
	mutedStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	labelStyle        = lipgloss.NewStyle().Bold(true)
	cardTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	cardStyle         = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1).Width(cardWidth)
	selectedCardStyle = cardStyle.BorderForeground(lipgloss.Color("205"))
	pageStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	activePageStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("33"))
)

// countriesLoadedMsg delivers the collection fetched by one listing mount.
type countriesLoadedMsg struct {
	mount     int
	countries []model.Country
	err       error
}

// listingScreen shows the searchable, paginated card grid.
type listingScreen struct {
	env       mount
	state     loadState[catalog.Listing]
	search    textinput.Model
	searching bool
	cursor    int
	jump      string // page number typed so far
	spinner   spinner.Model
	help      help.Model
	keys      listingKeyMap
}

func newListingScreen(env mount) screen {
	search := textinput.New()
	search.Prompt = "Search: "
	search.Placeholder = "Search countries..."
	search.CharLimit = 64
	search.Width = 40

	return listingScreen{
		env:     env,
		search:  search,
		spinner: newSpinner(),
		help:    help.New(),
		keys:    listingKeys,
	}
}

func (m listingScreen) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch())
}

func (m listingScreen) fetch() tea.Cmd {
	ctx, src, id := m.env.ctx, m.env.opts.Source, m.env.id

	return func() tea.Msg {
		countries, err := src.ListCountries(ctx)

		return countriesLoadedMsg{mount: id, countries: countries, err: err}
	}
}

func (m listingScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.env.width, m.env.height = msg.Width, msg.Height
		m.help.Width = msg.Width

		return m, nil

	case countriesLoadedMsg:
		if msg.mount != m.env.id {
			return m, nil
		}

		if msg.err != nil {
			m.env.opts.Logger.Warn("failed to load countries", slog.String("error", msg.err.Error()))
		} else {
			m.env.opts.Logger.Debug("loaded countries", slog.Int("count", len(msg.countries)))
		}

		m.state.resolve(catalog.NewListing(msg.countries), msg.err)

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

	if m.searching {
		var cmd tea.Cmd

		m.search, cmd = m.search.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m listingScreen) handleKey(msg tea.KeyMsg) (screen, tea.Cmd) {
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

	if m.searching {
		if key.Matches(msg, m.keys.Blur) {
			m.searching = false
			m.search.Blur()

			return m, nil
		}

		before := m.search.Value()

		var cmd tea.Cmd

		m.search, cmd = m.search.Update(msg)

		if value := m.search.Value(); value != before {
			m.updateSearch(value)
		}

		return m, cmd
	}

	if !key.Matches(msg, m.keys.Jump) {
		m.jump = ""
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Jump):
		m.jumpTo(msg.String())

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Search):
		m.searching = true

		return m, m.search.Focus()

	case key.Matches(msg, m.keys.Open):
		if c, ok := m.selected(); ok {
			return m, navigate(CountryPath(c.CCA3))
		}

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.state.data.Displayed())-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.PrevPage):
		m.selectPage(m.state.data.Page() - 1)

	case key.Matches(msg, m.keys.NextPage):
		m.selectPage(m.state.data.Page() + 1)

	case key.Matches(msg, m.keys.First):
		m.selectPage(1)

	case key.Matches(msg, m.keys.Last):
		m.selectPage(m.state.data.TotalPages())
	}

	return m, nil
}

// updateSearch applies text and shows the stored lower-cased query back
// in the input.
func (m *listingScreen) updateSearch(text string) {
	m.state.data.UpdateSearch(text)
	m.search.SetValue(m.state.data.Query())
	m.cursor = 0
}

// jumpTo extends the typed page number by one digit. A digit that would
// run past the last page starts a new number.
func (m *listingScreen) jumpTo(digit string) {
	total := m.state.data.TotalPages()

	entry := m.jump + digit
	if n, err := strconv.Atoi(entry); err != nil || n > total {
		entry = digit
	}

	n, err := strconv.Atoi(entry)
	if err != nil || n < 1 || n > total {
		m.jump = ""
		return
	}

	m.jump = entry
	m.selectPage(n)
}

func (m *listingScreen) selectPage(n int) {
	m.state.data.SelectPage(n)
	m.cursor = 0
}

func (m listingScreen) selected() (model.Country, bool) {
	shown := m.state.data.Displayed()
	if m.cursor < 0 || m.cursor >= len(shown) {
		return model.Country{}, false
	}

	return shown[m.cursor], true
}

func (m listingScreen) View() string {
	switch {
	case m.state.loading():
		return loadingView(m.spinner, "countries")
	case m.state.failed():
		return failedView(m.state.err, "[r] Reload")
	}

	l := m.state.data

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(headerStyle.Render("🌎 Countries of the World"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Explore country information from around the world"))
	b.WriteString("\n\n  ")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	shown := l.Displayed()
	if len(shown) == 0 {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  No countries match %q.", l.Query())))
		b.WriteString("\n")
	} else {
		b.WriteString(lipgloss.NewStyle().MarginLeft(2).Render(m.cardGrid(shown)))
		b.WriteString("\n")
	}

	if total := l.TotalPages(); total > 1 {
		row := strings.Join(pageSelector(total, l.Page()), " ")
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().MarginLeft(2).Width(m.width() - 4).Render(row))
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d of %d countries", len(l.Filtered()), len(l.All()))))
	b.WriteString("\n  ")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

func (m listingScreen) width() int {
	if m.env.width <= 0 {
		return defaultWidth
	}

	return m.env.width
}

// columns returns how many cards fit side by side.
func columns(width int) int {
	return max(1, min(maxColumns, width/(cardWidth+4)))
}

func (m listingScreen) cardGrid(shown []model.Country) string {
	cols := columns(m.width())

	rows := make([]string, 0, (len(shown)+cols-1)/cols)

	for start := 0; start < len(shown); start += cols {
		end := min(start+cols, len(shown))

		cells := make([]string, 0, cols)
		for i := start; i < end; i++ {
			cells = append(cells, renderCard(m.env.opts.Formatter.Card(shown[i]), i == m.cursor))
		}

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCard(card render.Card, selected bool) string {
	lines := []string{
		cardTitleStyle.Render(ansi.Truncate(card.Name, cardWidth-2, "…")),
		strings.TrimSpace(card.Flag + " " + hyperlink("flag image", card.FlagURL)),
	}

	for _, f := range card.Fields {
		lines = append(lines, labelStyle.Render(f.Label+":")+" "+f.Value)
	}

	style := cardStyle
	if selected {
		style = selectedCardStyle
	}

	return style.Render(strings.Join(lines, "\n"))
}

// pageSelector renders one label per page; only the current one is
// bracketed and highlighted.
func pageSelector(total, current int) []string {
	labels := make([]string, 0, total)

	for p := 1; p <= total; p++ {
		if p == current {
			labels = append(labels, activePageStyle.Render(fmt.Sprintf("[%d]", p)))
			continue
		}

		labels = append(labels, pageStyle.Render(fmt.Sprintf(" %d ", p)))
	}

	return labels
}
