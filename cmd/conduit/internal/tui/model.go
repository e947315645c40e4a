package tui

import tea "github.com/charmbracelet/bubbletea"

// Model is the bubbletea model of the terminal host. It runs posted tasks
// and forwards keys to its Screen.
type Model struct {
	screen *Screen
}

// NewModel returns a model showing screen. The first focusable view gets
// the focus.
func NewModel(screen *Screen) Model {
	screen.FocusNext(1)
	return Model{screen: screen}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case taskMsg:
		msg.run()
		if m.screen.focused() == nil {
			m.screen.FocusNext(1)
		}
	case tea.WindowSizeMsg:
		m.screen.SetWidth(msg.Width)
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q", "esc":
			if _, shown := m.screen.AlertShown(); !shown && !m.screen.Editing() {
				return m, tea.Quit
			}
		}
		m.screen.HandleKey(msg)
	}
	return m, nil
}

func (m Model) View() string { return m.screen.Render() }
