package menu

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Setting is one name/value pair for the settings view.
type Setting struct {
	Name  string
	Value string
}

// RenderSettings renders settings as a static table.
func RenderSettings(settings []Setting, noColor bool) string {
	nameWidth := len("Setting")
	valueWidth := len("Value")
	for _, setting := range settings {
		if len(setting.Name) > nameWidth {
			nameWidth = len(setting.Name)
		}
		if len(setting.Value) > valueWidth {
			valueWidth = len(setting.Value)
		}
	}

	rows := make([]table.Row, 0, len(settings))
	for _, setting := range settings {
		rows = append(rows, table.Row{setting.Name, setting.Value})
	}
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Setting", Width: nameWidth},
			{Title: "Value", Width: valueWidth},
		}),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)),
	)
	t.SetStyles(settingsStyles(noColor))
	return t.View()
}

func settingsStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	styles.Selected = lipgloss.NewStyle()
	if !noColor {
		styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	}
	return styles
}
