// Package styles provides Lip Gloss styles for the promptpack selector.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for the TUI.
var (
	Primary    = lipgloss.Color("#7C3AED") // Purple
	Success    = lipgloss.Color("#10B981") // Green
	Muted      = lipgloss.Color("#6B7280") // Gray
	MutedLight = lipgloss.Color("#9CA3AF") // Light Gray
	Background = lipgloss.Color("#1F2937") // Dark Gray
	Foreground = lipgloss.Color("#F9FAFB") // White
)

// Selector styles.
var (
	// TitleStyle is for the selector header.
	TitleStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(Primary).
			Bold(true).
			Padding(0, 1)

	// IncludedStyle is for files currently selected.
	IncludedStyle = lipgloss.NewStyle().
			Foreground(Success)

	// ExcludedStyle is for files not selected.
	ExcludedStyle = lipgloss.NewStyle().
			Foreground(MutedLight)

	// CursorLineStyle highlights the line under the cursor.
	CursorLineStyle = lipgloss.NewStyle().
			Background(Background).
			Bold(true)

	// EmptyStyle is for the empty-list placeholder.
	EmptyStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true).
			Padding(1, 2)

	// StatusStyle is for the selection summary line.
	StatusStyle = lipgloss.NewStyle().
			Foreground(MutedLight)

	// HelpStyle is for the key-binding hint line.
	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// ScrollStyle is for the more-above/more-below indicators.
	ScrollStyle = lipgloss.NewStyle().
			Foreground(Muted)
)

// Checkbox glyphs.
const (
	CheckboxOn  = "[x]"
	CheckboxOff = "[ ]"
)
