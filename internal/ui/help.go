package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp draws the full-screen help overlay. Any key closes it.
func (m Model) renderHelp() string {
	st := m.theme.Styles()

	var b strings.Builder
	b.WriteString(st.AccentText.Render("lux — key bindings"))
	b.WriteString("\n\n")
	for _, group := range m.keys.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %s  %s\n",
				st.AccentText.Render(fmt.Sprintf("%-8s", h.Key)),
				st.Text.Render(h.Desc)))
		}
		b.WriteString("\n")
	}
	b.WriteString(st.MutedText.Render("press any key to close"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Padding(1, 3).
		Render(b.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
