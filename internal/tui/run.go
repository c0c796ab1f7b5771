package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run executes the interactive selector over the session and reports
// whether the user confirmed. Cancel (escape or ctrl+c) returns false
// with no error; both outcomes are normal completions.
func Run(session *Session) (bool, error) {
	p := tea.NewProgram(NewModel(session), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(*Model)
	if !ok {
		return false, nil
	}
	return m.Confirmed(), nil
}
