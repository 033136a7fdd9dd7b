// Package cli provides the terminal user interface for browsing countries.
//
// The package uses [Bubbletea] for building interactive terminal UIs and
// [Lipgloss] for styling. [App] is the root model: it parses a route
// ("/" or "/country/{code}") and mounts the matching screen.
//
// # Screens
//
//   - listing: searchable, paginated grid of country cards
//   - detail: every attribute of one country with map links
//
// Each screen fetches its own data when mounted and moves through
// loading, failed and ready exactly once. Responses are tagged with the
// mount that requested them, so a result arriving after the user has
// navigated away is dropped. Reload discards the screen and mounts the
// same route again.
//
// [ConfigureModel] is a separate form for editing the configuration file.
//
// [Bubbletea]: https://github.com/charmbracelet/bubbletea
// [Lipgloss]: https://github.com/charmbracelet/lipgloss
package cli
