package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleDiscoverKey processes keys for the infinite-scroll feed view.
func (m Model) handleDiscoverKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	total := len(m.snapshot.Items)

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selected < total-1 {
			m.selected++
		}
		return m, m.maybeFetchMore()

	case key.Matches(msg, m.keys.Top):
		m.selected = 0
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		if total > 0 {
			m.selected = total - 1
		}
		return m, m.maybeFetchMore()

	case key.Matches(msg, m.keys.PageDown):
		m.selected = min(m.selected+m.pageSize(), max(0, total-1))
		return m, m.maybeFetchMore()

	case key.Matches(msg, m.keys.PageUp):
		m.selected = max(m.selected-m.pageSize(), 0)
		return m, nil

	case key.Matches(msg, m.keys.Open):
		if m.selected < total {
			return m.enterDetail(m.snapshot.Items[m.selected], ViewDiscover)
		}
		return m, nil
	}
	return m, nil
}

// renderDiscover draws the feed list with the selection centered in the
// visible window.
func (m Model) renderDiscover() string {
	items := m.snapshot.Items
	rows := m.pageSize()

	if len(items) == 0 {
		if m.snapshot.IsOffline() {
			return m.styles.DangerText.Render("  APOD unreachable. It will retry on the next scroll.")
		}
		return m.styles.MutedText.Render("  Fetching the sky...")
	}

	first := m.selected - rows/2
	if first > len(items)-rows {
		first = len(items) - rows
	}
	if first < 0 {
		first = 0
	}

	var b strings.Builder
	for i := first; i < len(items) && i < first+rows; i++ {
		it := items[i]
		line := fmt.Sprintf(" %s  %s", it.Date, it.Title)
		if it.Copyright != "" {
			line += m.styles.FaintText.Render("  © " + it.Copyright)
		}
		if i == m.selected {
			line = m.styles.Selected.Render("›" + line)
		} else {
			line = m.styles.Text.Render(" " + line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.pager != nil && m.pager.IsFetching() {
		b.WriteString(m.styles.MutedText.Render(fmt.Sprintf(" %s loading older pictures...", m.spin.View())))
	} else if m.pager != nil && m.pager.Exhausted() {
		b.WriteString(m.styles.FaintText.Render(" — beginning of the archive, June 16 1995 —"))
	}
	return b.String()
}

// pageSize is the number of feed rows that fit between header and footer.
func (m Model) pageSize() int {
	return max(1, m.height-5)
}
