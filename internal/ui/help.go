package ui

import (
	"fmt"
	"strings"
)

// renderHelp draws the full-screen help overlay, built from the keymap
// so the listed bindings can never drift from the handlers. Any key
// closes it.
func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString("\n " + m.styles.Title.Render("Cosmonaut — key bindings") + "\n\n")
	for _, sec := range m.keys.helpSections() {
		b.WriteString(" " + m.styles.AccentText.Render(sec.title) + "\n")
		for _, binding := range sec.bindings {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("   %s %s\n",
				m.styles.WarnText.Render(fmt.Sprintf("%-7s", h.Key)),
				m.styles.MutedText.Render(h.Desc)))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.styles.FaintText.Render(" press any key to close"))
	return b.String()
}
