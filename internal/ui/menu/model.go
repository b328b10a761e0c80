package menu

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Item is a selectable menu entry. A nil Action quits the menu.
type Item struct {
	Title  string
	Action func() (string, error)
}

// Options configures the menu model.
type Options struct {
	Title   string
	NoColor bool
}

// Model renders a simple action menu using Bubble Tea.
type Model struct {
	title   string
	items   []Item
	cursor  int
	output  string
	failed  bool
	noColor bool
}

// NewModel constructs a menu over a list of items.
func NewModel(items []Item, opts Options) Model {
	title := opts.Title
	if title == "" {
		title = "gatewaymaker"
	}
	return Model{
		title:   title,
		items:   items,
		noColor: opts.NoColor,
	}
}

// Init performs no startup work.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses and action results.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		switch typed.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
			return m, nil
		case "enter":
			if m.cursor >= len(m.items) {
				return m, nil
			}
			item := m.items[m.cursor]
			if item.Action == nil {
				return m, tea.Quit
			}
			return m, runAction(item.Action)
		}
		return m, nil
	case actionResultMsg:
		m.output = typed.output
		m.failed = typed.failed
		return m, nil
	}
	return m, nil
}

// View renders the menu and the output of the last action.
func (m Model) View() string {
	lines := []string{m.renderTitle(), ""}
	for i, item := range m.items {
		lines = append(lines, m.renderItem(item, i == m.cursor))
	}
	lines = append(lines, "", m.renderHint())
	if m.output != "" {
		lines = append(lines, "", m.renderOutput())
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n"
}

// Output returns the result text of the most recent action.
func (m Model) Output() string {
	return m.output
}

// actionResultMsg carries the outcome of a menu action.
type actionResultMsg struct {
	output string
	failed bool
}

// runAction executes a menu action off the update loop.
func runAction(action func() (string, error)) tea.Cmd {
	return func() tea.Msg {
		output, err := action()
		if err != nil {
			return actionResultMsg{output: err.Error(), failed: true}
		}
		return actionResultMsg{output: output}
	}
}
