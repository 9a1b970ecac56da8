package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/astroshell/cosmonaut/internal/apod"
)

// enterDetail opens the detail view for an item, remembering where to
// return on escape.
func (m Model) enterDetail(item apod.Item, from View) (tea.Model, tea.Cmd) {
	m.currentView = ViewDetail
	m.detailFrom = from
	m.detailItem = item
	m.preview = ""
	m.statusNote = ""
	m.detailViewport.SetContent(m.detailText(item))
	m.detailViewport.GotoTop()

	if m.showPreviews && item.IsImage() {
		m.previewLoading = true
		return m, m.resolvePreviewCmd(item)
	}
	return m, nil
}

// handleDetailKey processes keys for the detail view.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Download) {
		if !m.detailItem.HasHD() {
			m.statusNote = "No HD version for " + m.detailItem.Date
			return m, nil
		}
		m.statusNote = "Downloading HD..."
		return m, m.downloadHDCmd(m.detailItem)
	}

	var cmd tea.Cmd
	m.detailViewport, cmd = m.detailViewport.Update(msg)
	return m, cmd
}

// renderDetail draws the selected item's preview and metadata.
func (m Model) renderDetail() string {
	var b strings.Builder

	if m.showPreviews {
		switch {
		case m.previewLoading:
			b.WriteString(m.styles.MutedText.Render(" " + m.spin.View() + " loading image..."))
			b.WriteString("\n")
		case m.preview != "":
			b.WriteString(m.preview)
			b.WriteString("\n")
		}
	}

	b.WriteString(m.detailViewport.View())

	if m.statusNote != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.AccentText.Render(" " + m.statusNote))
	}
	return b.String()
}

func (m Model) detailText(item apod.Item) string {
	var b strings.Builder

	b.WriteString(" " + m.styles.Title.Render(item.Title) + "\n")
	b.WriteString(" " + m.styles.MutedText.Render(item.Date))
	if item.Copyright != "" {
		b.WriteString(m.styles.MutedText.Render("  © " + item.Copyright))
	}
	if item.HasHD() {
		b.WriteString(m.styles.AccentText.Render("  [HD available: press d]"))
	}
	b.WriteString("\n\n")
	b.WriteString(" " + wrap(item.Explanation, max(20, m.width-2)))
	return b.String()
}

// previewWidth and previewHeight bound the rendered image block.
func (m Model) previewWidth() int {
	return max(10, m.width-4)
}

func (m Model) previewHeight() int {
	// Leave roughly half the screen for text.
	return max(4, (m.height-6)/2)
}

// wrap folds text at width columns on word boundaries. Widths are
// terminal cells, not bytes: explanations and copyright names carry
// multi-byte runes.
func wrap(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	line := 0
	for i, w := range words {
		cells := lipgloss.Width(w)
		if i > 0 {
			if line+1+cells > width {
				b.WriteString("\n ")
				line = 0
			} else {
				b.WriteString(" ")
				line++
			}
		}
		b.WriteString(w)
		line += cells
	}
	return b.String()
}
