package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application. Handlers
// match against these bindings and the help overlay and footer hints
// are derived from them, so changing a binding here changes everywhere.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Escape     key.Binding

	// View switching
	ViewDiscover key.Binding
	ViewArchive  key.Binding

	// Navigation
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageDown key.Binding
	PageUp   key.Binding

	// Discover / archive actions
	Open     key.Binding
	Refresh  key.Binding
	NewMonth key.Binding
	OldMonth key.Binding
	GotoDate key.Binding

	// Detail actions
	Download       key.Binding
	TogglePreviews key.Binding

	// Input
	Confirm key.Binding
}

// defaultKeyMap returns the default key bindings.
func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h", "help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "cycle theme"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),

		ViewDiscover: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "discover"),
		),
		ViewArchive: key.NewBinding(
			key.WithKeys("2", "a"),
			key.WithHelp("a", "archive"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("j", "down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "bottom"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("ctrl+d", "page down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("ctrl+u", "page up"),
		),

		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload month"),
		),
		NewMonth: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "newer month"),
		),
		OldMonth: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "older month"),
		),
		GotoDate: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "go to date"),
		),

		Download: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "download HD"),
		),
		TogglePreviews: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "previews"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
	}
}

// footerHints returns the bindings shown in the footer for each view.
func (k keyMap) footerHints(view View) []key.Binding {
	switch view {
	case ViewArchive:
		return []key.Binding{k.OldMonth, k.NewMonth, k.GotoDate, k.Open, k.Escape}
	case ViewDetail:
		return []key.Binding{k.Down, k.Up, k.Download, k.TogglePreviews, k.Escape}
	default:
		return []key.Binding{k.Down, k.Up, k.Open, k.ViewArchive, k.Help, k.Quit}
	}
}

// helpSections groups all bindings for the help overlay.
func (k keyMap) helpSections() []struct {
	title    string
	bindings []key.Binding
} {
	return []struct {
		title    string
		bindings []key.Binding
	}{
		{"Views", []key.Binding{k.ViewDiscover, k.ViewArchive, k.Escape}},
		{"Navigation", []key.Binding{k.Up, k.Down, k.Top, k.Bottom, k.PageDown, k.PageUp, k.Open}},
		{"Archive", []key.Binding{k.OldMonth, k.NewMonth, k.GotoDate, k.Refresh}},
		{"Detail", []key.Binding{k.Download, k.TogglePreviews}},
		{"General", []key.Binding{k.CycleTheme, k.Help, k.Quit}},
	}
}
