package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for the UI.
type Theme struct {
	Name string

	Background string
	Surface    string

	SelectionBg   string
	SelectionText string

	Border      string
	BorderFocus string

	Text   string
	Muted  string
	Faint  string
	Accent string
	Warn   string
	Danger string
}

// Styles holds the lipgloss styles derived from a Theme.
type Styles struct {
	Text       lipgloss.Style
	MutedText  lipgloss.Style
	FaintText  lipgloss.Style
	AccentText lipgloss.Style
	WarnText   lipgloss.Style
	DangerText lipgloss.Style

	Title    lipgloss.Style
	Header   lipgloss.Style
	Footer   lipgloss.Style
	Selected lipgloss.Style
	Panel    lipgloss.Style
}

// Styles returns lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		WarnText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warn)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),
	}
}

// themes lists the built-in palettes in cycle order.
var themes = []Theme{
	{
		Name:          "Nebula",
		Background:    "#0b0c1c",
		Surface:       "#161830",
		SelectionBg:   "#2d315e",
		SelectionText: "#e8e9f5",
		Border:        "#3b3f70",
		BorderFocus:   "#7e88e0",
		Text:          "#d6d8ee",
		Muted:         "#8a8fb8",
		Faint:         "#565a80",
		Accent:        "#9ba7ff",
		Warn:          "#e7c978",
		Danger:        "#e77878",
	},
	{
		Name:          "Aurora",
		Background:    "#071410",
		Surface:       "#0e241c",
		SelectionBg:   "#1c4436",
		SelectionText: "#e6f5ee",
		Border:        "#2a5a48",
		BorderFocus:   "#5fd0a5",
		Text:          "#cfe9dd",
		Muted:         "#7fae9b",
		Faint:         "#4c7262",
		Accent:        "#7be2b6",
		Warn:          "#e2d27b",
		Danger:        "#e28a7b",
	},
	{
		Name:          "Graphite",
		Background:    "#101010",
		Surface:       "#1c1c1c",
		SelectionBg:   "#343434",
		SelectionText: "#f0f0f0",
		Border:        "#3c3c3c",
		BorderFocus:   "#9e9e9e",
		Text:          "#dcdcdc",
		Muted:         "#9a9a9a",
		Faint:         "#5e5e5e",
		Accent:        "#cfcfcf",
		Warn:          "#d8c27a",
		Danger:        "#d87a7a",
	},
}

// GetTheme returns the named theme, defaulting to the first.
func GetTheme(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// NextTheme returns the name of the theme after the given one.
func NextTheme(name string) string {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)].Name
		}
	}
	return themes[0].Name
}
