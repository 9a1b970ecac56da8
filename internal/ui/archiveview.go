package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/astroshell/cosmonaut/internal/apod"
)

// enterArchive switches to the archive view, loading the current month
// on first entry.
func (m Model) enterArchive() (tea.Model, tea.Cmd) {
	m.currentView = ViewArchive
	if m.archLabel == "" && !m.archLoading {
		m.archLoading = true
		return m, m.archiveMonthCmd(m.archMonth)
	}
	return m, nil
}

// handleArchiveKey processes keys for the calendar archive view.
func (m Model) handleArchiveKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.archSelected > 0 {
			m.archSelected--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.archSelected < len(m.archItems)-1 {
			m.archSelected++
		}
		return m, nil

	case key.Matches(msg, m.keys.OldMonth):
		return m.shiftMonth(-1)

	case key.Matches(msg, m.keys.NewMonth):
		return m.shiftMonth(1)

	case key.Matches(msg, m.keys.Refresh):
		m.archLoading = true
		return m, m.archiveMonthCmd(m.archMonth)

	case key.Matches(msg, m.keys.GotoDate):
		m.dateEntry = true
		m.dateInput.SetValue("")
		m.dateInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Open):
		if m.archSelected < len(m.archItems) {
			return m.enterDetail(m.archItems[m.archSelected], ViewArchive)
		}
		return m, nil
	}
	return m, nil
}

// handleDateEntryKey runs while the go-to-date input is focused.
func (m Model) handleDateEntryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Quit stays on ctrl+c alone here: "q" is a date-input character.
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.dateEntry = false
		m.dateInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		date, err := apod.ParseDate(strings.TrimSpace(m.dateInput.Value()))
		if err != nil {
			m.archErr = fmt.Errorf("not a date: %q", m.dateInput.Value())
			m.dateEntry = false
			m.dateInput.Blur()
			return m, nil
		}
		date = clampToArchive(date, time.Now().UTC())
		m.dateEntry = false
		m.dateInput.Blur()
		m.archLoading = true
		return m, m.archiveDateCmd(date)

	case msg.String() == "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.dateInput, cmd = m.dateInput.Update(msg)
	return m, cmd
}

// shiftMonth moves the month cursor, keeping it inside
// [MinArchiveDate's month, the current month].
func (m Model) shiftMonth(months int) (tea.Model, tea.Cmd) {
	next := m.archMonth.AddDate(0, months, 0)

	now := time.Now().UTC()
	currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	firstMonth := time.Date(apod.MinArchiveDate.Year(), apod.MinArchiveDate.Month(), 1, 0, 0, 0, 0, time.UTC)

	if next.After(currentMonth) || next.Before(firstMonth) {
		return m, nil
	}
	m.archMonth = next
	m.archLoading = true
	return m, m.archiveMonthCmd(next)
}

// clampToArchive bounds a chosen date to [MinArchiveDate, today].
func clampToArchive(date, now time.Time) time.Time {
	today := apod.DateOnly(now)
	if date.Before(apod.MinArchiveDate) {
		return apod.MinArchiveDate
	}
	if date.After(today) {
		return today
	}
	return date
}

// renderArchive draws the month heading and its items.
func (m Model) renderArchive() string {
	var b strings.Builder

	label := m.archLabel
	if label == "" {
		label = m.resolver.MonthLabel(m.archMonth)
	}
	b.WriteString(" " + m.styles.Title.Render(label))
	if m.dateEntry {
		b.WriteString("   " + m.styles.AccentText.Render("go to: ") + m.dateInput.View())
	}
	b.WriteString("\n\n")

	switch {
	case m.archLoading:
		b.WriteString(m.styles.MutedText.Render(fmt.Sprintf(" %s fetching %s...", m.spin.View(), label)))

	case m.archErr != nil:
		b.WriteString(m.styles.DangerText.Render(" " + m.archErr.Error()))

	case len(m.archItems) == 0:
		b.WriteString(m.styles.MutedText.Render(" Nothing here."))

	default:
		rows := max(1, m.height-7)
		first := max(0, min(m.archSelected-rows/2, len(m.archItems)-rows))
		for i := first; i < len(m.archItems) && i < first+rows; i++ {
			it := m.archItems[i]
			line := fmt.Sprintf(" %s  %s", it.Date, it.Title)
			if !it.IsImage() {
				// Single-date fetches pass videos through unfiltered.
				line += m.styles.WarnText.Render("  [" + it.MediaType + "]")
			}
			if i == m.archSelected {
				line = m.styles.Selected.Render("›" + line)
			} else {
				line = m.styles.Text.Render(" " + line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}
