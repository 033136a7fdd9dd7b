package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cli/browser"
	"github.com/inovacc/countries/internal/core"
	"github.com/inovacc/countries/internal/render"
)

// Screen identifies one of the top-level views.
type Screen int

const (
	ScreenListing Screen = iota
	ScreenDetail
)

func (s Screen) String() string {
	switch s {
	case ScreenListing:
		return "listing"
	case ScreenDetail:
		return "detail"
	}

	return fmt.Sprintf("screen(%d)", int(s))
}

// RootPath is the listing route.
const RootPath = "/"

// Route is a parsed navigation path.
type Route struct {
	Screen Screen
	Code   string // set for ScreenDetail
}

// CountryPath returns the detail route for an alpha-3 code.
func CountryPath(code string) string {
	return "/country/" + url.PathEscape(code)
}

// ParseRoute maps "/" to the listing and "/country/{code}" to the detail
// screen. Any other path is an error.
func ParseRoute(path string) (Route, error) {
	trimmed := strings.Trim(strings.TrimSpace(path), "/")
	if trimmed == "" {
		return Route{Screen: ScreenListing}, nil
	}

	parts := strings.Split(trimmed, "/")
	if len(parts) == 2 && parts[0] == "country" && parts[1] != "" {
		code, err := url.PathUnescape(parts[1])
		if err != nil {
			return Route{}, fmt.Errorf("invalid country code in %q: %w", path, err)
		}

		return Route{Screen: ScreenDetail, Code: code}, nil
	}

	return Route{}, fmt.Errorf("no route matches %q", path)
}

// Path returns the route in its textual form.
func (r Route) Path() string {
	if r.Screen == ScreenDetail {
		return CountryPath(r.Code)
	}

	return RootPath
}

// Options configures the interactive application.
type Options struct {
	Source    core.CountrySource
	Formatter render.Formatter

	// OpenURL opens external links; defaults to the system browser
	OpenURL func(url string) error

	// CopyText writes to the clipboard; defaults to the system clipboard
	CopyText func(text string) error

	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.OpenURL == nil {
		o.OpenURL = browser.OpenURL
	}

	if o.CopyText == nil {
		o.CopyText = clipboard.WriteAll
	}

	if o.Logger == nil {
		o.Logger = slog.Default()
	}

	return o
}

// navigateMsg asks the router to mount the screen for path.
type navigateMsg struct {
	path string
}

// reloadMsg asks the router to remount the current route from scratch.
type reloadMsg struct{}

func navigate(path string) tea.Cmd {
	return func() tea.Msg { return navigateMsg{path: path} }
}

func reload() tea.Msg { return reloadMsg{} }

// screen is a mounted top-level view.
type screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (screen, tea.Cmd)
	View() string
}

// mount carries what a screen needs when it is created.
type mount struct {
	ctx    context.Context
	opts   Options
	route  Route
	id     int
	width  int
	height int
}

type screenFunc func(mount) screen

// App dispatches between screens by route. It has no logic of its own
// beyond parsing paths and remounting.
type App struct {
	ctx     context.Context
	opts    Options
	screens map[Screen]screenFunc
	route   Route
	current screen
	mounts  int
	width   int
	height  int
}

// NewApp creates the application positioned at path.
func NewApp(ctx context.Context, opts Options, path string) (App, error) {
	route, err := ParseRoute(path)
	if err != nil {
		return App{}, err
	}

	if opts.Source == nil {
		return App{}, fmt.Errorf("a country source is required")
	}

	a := App{
		ctx:  ctx,
		opts: opts.withDefaults(),
		screens: map[Screen]screenFunc{
			ScreenListing: newListingScreen,
			ScreenDetail:  newDetailScreen,
		},
	}

	a.mountRoute(route)

	return a, nil
}

// Route returns the route currently mounted.
func (a App) Route() Route {
	return a.route
}

// mountRoute discards the current screen and creates a fresh one.
func (a *App) mountRoute(route Route) {
	a.mounts++
	a.route = route

	a.opts.Logger.Debug("mounting screen",
		slog.String("screen", route.Screen.String()),
		slog.String("path", route.Path()),
		slog.Int("mount", a.mounts),
	)

	a.current = a.screens[route.Screen](mount{
		ctx:    a.ctx,
		opts:   a.opts,
		route:  route,
		id:     a.mounts,
		width:  a.width,
		height: a.height,
	})
}

func (a App) Init() tea.Cmd {
	return a.current.Init()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	case navigateMsg:
		route, err := ParseRoute(msg.path)
		if err != nil {
			a.opts.Logger.Warn("ignoring navigation", slog.String("error", err.Error()))
			return a, nil
		}

		a.mountRoute(route)

		return a, a.current.Init()

	case reloadMsg:
		a.mountRoute(a.route)

		return a, a.current.Init()
	}

	var cmd tea.Cmd

	a.current, cmd = a.current.Update(msg)

	return a, cmd
}

func (a App) View() string {
	return a.current.View()
}

// Run starts the interactive application at path and blocks until the
// user quits.
func Run(ctx context.Context, opts Options, path string) error {
	app, err := NewApp(ctx, opts, path)
	if err != nil {
		return err
	}

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))

	_, err = p.Run()

	return err
}
