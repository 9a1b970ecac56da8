package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader draws the top bar: app name, active view, fetch state.
func (m Model) renderHeader() string {
	name := m.styles.Title.Render("COSMONAUT")

	tabs := []string{"1 Discover", "2 Archive"}
	activeTab := 0
	if m.currentView == ViewArchive || (m.currentView == ViewDetail && m.detailFrom == ViewArchive) {
		activeTab = 1
	}
	for i, tab := range tabs {
		if i == activeTab {
			tabs[i] = m.styles.AccentText.Render(tab)
		} else {
			tabs[i] = m.styles.MutedText.Render(tab)
		}
	}

	var state string
	if m.pager != nil && m.pager.IsFetching() {
		state = m.spin.View()
	} else if m.snapshot.IsOffline() {
		state = m.styles.DangerText.Render("offline")
	}

	left := name + "  " + strings.Join(tabs, "  ")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(state) - 2
	if gap < 1 {
		gap = 1
	}
	return m.styles.Header.Width(m.width).Render(left + strings.Repeat(" ", gap) + state)
}

// renderFooter draws the bottom bar: key hints for the active view's
// bindings, and cache occupancy.
func (m Model) renderFooter() string {
	var parts []string
	for _, binding := range m.keys.footerHints(m.currentView) {
		h := binding.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	hints := strings.Join(parts, " · ")

	right := ""
	if m.cache != nil {
		right = fmt.Sprintf("%d imgs cached", m.cache.Len())
	}

	gap := m.width - lipgloss.Width(hints) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return m.styles.Footer.Width(m.width).Render(hints + strings.Repeat(" ", gap) + right)
}
