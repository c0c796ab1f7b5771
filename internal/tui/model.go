package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/promptpack/promptpack/internal/tui/styles"
)

// defaultListHeight is used before the first WindowSizeMsg arrives.
const defaultListHeight = 15

// Model is the Bubble Tea model wrapping a selector Session.
type Model struct {
	session *Session
	input   textinput.Model

	width  int
	height int
	scroll int

	confirmed bool
	canceled  bool
}

// NewModel creates the selector model for a session.
func NewModel(session *Session) *Model {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.Prompt = "> "
	ti.CharLimit = 200
	ti.Focus()

	return &Model{
		session: session,
		input:   ti,
	}
}

// Confirmed reports whether the user confirmed the selection.
func (m *Model) Confirmed() bool {
	return m.confirmed
}

// Canceled reports whether the user canceled the session.
func (m *Model) Canceled() bool {
	return m.canceled
}

// Init is the Bubble Tea initialization function.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 4
		m.ensureCursorVisible()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			m.canceled = true
			return m, tea.Quit
		case "enter":
			m.confirmed = true
			return m, tea.Quit
		case "up", "ctrl+k":
			m.session.MoveUp()
			m.ensureCursorVisible()
			return m, nil
		case "down", "ctrl+j":
			m.session.MoveDown()
			m.ensureCursorVisible()
			return m, nil
		case " ":
			m.session.Toggle()
			return m, nil
		}

		// Everything else edits the filter.
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.session.SetFilter(m.input.Value())
		m.scroll = 0
		m.ensureCursorVisible()
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// listHeight returns how many candidate rows fit on screen.
func (m *Model) listHeight() int {
	// Title, filter, status, and help lines take four rows.
	h := m.height - 4
	if m.height == 0 {
		h = defaultListHeight
	}
	if h < 1 {
		h = 1
	}
	return h
}

// ensureCursorVisible adjusts the scroll window around the cursor.
func (m *Model) ensureCursorVisible() {
	cursor := m.session.Cursor()
	if cursor < 0 {
		m.scroll = 0
		return
	}
	height := m.listHeight()
	if cursor < m.scroll {
		m.scroll = cursor
	}
	if cursor >= m.scroll+height {
		m.scroll = cursor - height + 1
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

// View renders the selector.
func (m *Model) View() string {
	var sb strings.Builder

	sb.WriteString(styles.TitleStyle.Render("promptpack — select files to track"))
	sb.WriteString("\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n")
	sb.WriteString(m.viewList())
	sb.WriteString("\n")
	sb.WriteString(styles.StatusStyle.Render(fmt.Sprintf(
		"%d selected · %d/%d shown",
		m.session.SelectedCount(), m.session.VisibleCount(), m.session.TotalCount(),
	)))
	sb.WriteString("\n")
	sb.WriteString(styles.HelpStyle.Render("↑/↓ move · space toggle · enter save · esc cancel"))

	return sb.String()
}

// viewList renders the visible window of candidates.
func (m *Model) viewList() string {
	if m.session.VisibleCount() == 0 {
		if m.session.TotalCount() == 0 {
			return styles.EmptyStyle.Render("No files found under this directory.")
		}
		return styles.EmptyStyle.Render("No files match the filter.")
	}

	height := m.listHeight()
	end := m.scroll + height
	if end > m.session.VisibleCount() {
		end = m.session.VisibleCount()
	}

	var lines []string
	for i := m.scroll; i < end; i++ {
		lines = append(lines, m.renderRow(i))
	}

	content := strings.Join(lines, "\n")
	if m.scroll > 0 {
		content = styles.ScrollStyle.Render("  ↑ more above") + "\n" + content
	}
	if end < m.session.VisibleCount() {
		content = content + "\n" + styles.ScrollStyle.Render("  ↓ more below")
	}
	return content
}

// renderRow renders one candidate line.
func (m *Model) renderRow(i int) string {
	c := m.session.VisibleAt(i)

	checkbox := styles.CheckboxOff
	rowStyle := styles.ExcludedStyle
	if c.Selected {
		checkbox = styles.CheckboxOn
		rowStyle = styles.IncludedStyle
	}

	line := fmt.Sprintf("%s %s", checkbox, c.Path)
	if i == m.session.Cursor() {
		return styles.CursorLineStyle.Render(rowStyle.Render(line))
	}
	return rowStyle.Render(line)
}
