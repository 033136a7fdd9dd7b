package cli

import "github.com/charmbracelet/bubbles/key"

type listingKeyMap struct {
	Search   key.Binding
	Blur     key.Binding
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	First    key.Binding
	Last     key.Binding
	Jump     key.Binding
	Open     key.Binding
	Reload   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func (k listingKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Open, k.PrevPage, k.NextPage, k.Help, k.Quit}
}

func (k listingKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Search, k.Blur, k.Open},
		{k.Up, k.Down, k.PrevPage, k.NextPage, k.First, k.Last, k.Jump},
		{k.Help, k.Quit},
	}
}

var listingKeys = listingKeyMap{
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Blur: key.NewBinding(
		key.WithKeys("esc", "enter"),
		key.WithHelp("esc", "leave search"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "previous card"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "next card"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("left", "h", "pgup"),
		key.WithHelp("←/h", "previous page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("right", "l", "pgdown"),
		key.WithHelp("→/l", "next page"),
	),
	First: key.NewBinding(
		key.WithKeys("home"),
		key.WithHelp("home", "first page"),
	),
	Last: key.NewBinding(
		key.WithKeys("end"),
		key.WithHelp("end", "last page"),
	),
	Jump: key.NewBinding(
		key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("0-9", "go to page"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "details"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more keys"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type detailKeyMap struct {
	Back          key.Binding
	GoogleMaps    key.Binding
	OpenStreetMap key.Binding
	Copy          key.Binding
	Scroll        key.Binding
	Reload        key.Binding
	Help          key.Binding
	Quit          key.Binding
}

func (k detailKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.GoogleMaps, k.OpenStreetMap, k.Help, k.Quit}
}

func (k detailKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Back, k.Scroll},
		{k.GoogleMaps, k.OpenStreetMap, k.Copy},
		{k.Help, k.Quit},
	}
}

var detailKeys = detailKeyMap{
	Back: key.NewBinding(
		key.WithKeys("esc", "backspace", "b"),
		key.WithHelp("esc", "back to list"),
	),
	GoogleMaps: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "Google Maps"),
	),
	OpenStreetMap: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "OpenStreetMap"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy map link"),
	),
	Scroll: key.NewBinding(
		key.WithKeys("up", "down", "pgup", "pgdown"),
		key.WithHelp("↑/↓", "scroll"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more keys"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
