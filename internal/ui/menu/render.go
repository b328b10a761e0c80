package menu

import "github.com/charmbracelet/lipgloss"

const cursorMarker = "> "

// stylize applies a foreground color unless colors are disabled.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

func (m Model) renderTitle() string {
	return stylize(m.title, m.noColor, lipgloss.Color("33"))
}

func (m Model) renderItem(item Item, selected bool) string {
	if selected {
		return stylize(cursorMarker+item.Title, m.noColor, lipgloss.Color("252"))
	}
	return "  " + item.Title
}

func (m Model) renderHint() string {
	return stylize("up/down to move, enter to select, q to quit", m.noColor, lipgloss.Color("242"))
}

func (m Model) renderOutput() string {
	if m.failed {
		return stylize(m.output, m.noColor, lipgloss.Color("196"))
	}
	return stylize(m.output, m.noColor, lipgloss.Color("244"))
}
