// Package tui provides the interactive file selector for promptpack.
//
// The selector is split in two layers: Session holds the pure selection
// state and its keystroke-independent transitions, and Model wraps it
// in a Bubble Tea program. Session has no terminal dependency, so the
// selection behavior is unit-testable without a real terminal.
package tui

import (
	"strings"

	"github.com/promptpack/promptpack/internal/tracklist"
)

// Candidate is one selectable file in the session.
type Candidate struct {
	Path     string
	Selected bool
}

// Session is the selection state for one interactive session.
// Candidates keep their scan order (alphabetical); the filter narrows
// the visible window without reordering.
type Session struct {
	candidates []Candidate
	filter     string
	visible    []int // indices into candidates matching the filter
	cursor     int   // index into visible; -1 when nothing is visible
}

// NewSession creates a session over the candidate paths. Paths already
// on the tracked list start selected.
func NewSession(paths []string, tracked *tracklist.List) *Session {
	s := &Session{}
	for _, p := range paths {
		s.candidates = append(s.candidates, Candidate{
			Path:     p,
			Selected: tracked != nil && tracked.Contains(p),
		})
	}
	s.applyFilter()
	return s
}

// SetFilter narrows the visible candidates to those whose path
// contains the query, case-insensitively.
func (s *Session) SetFilter(query string) {
	s.filter = query
	s.applyFilter()
}

// Filter returns the current filter query.
func (s *Session) Filter() string {
	return s.filter
}

func (s *Session) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(s.filter))
	s.visible = s.visible[:0]
	for i, c := range s.candidates {
		if query == "" || strings.Contains(strings.ToLower(c.Path), query) {
			s.visible = append(s.visible, i)
		}
	}

	if len(s.visible) == 0 {
		s.cursor = -1
	} else if s.cursor < 0 || s.cursor >= len(s.visible) {
		s.cursor = 0
	}
}

// MoveUp moves the cursor up within the visible candidates.
func (s *Session) MoveUp() {
	if s.cursor > 0 {
		s.cursor--
	}
}

// MoveDown moves the cursor down within the visible candidates.
func (s *Session) MoveDown() {
	if s.cursor >= 0 && s.cursor < len(s.visible)-1 {
		s.cursor++
	}
}

// Toggle flips the selection of the candidate under the cursor.
// Returns false when nothing is under the cursor.
func (s *Session) Toggle() bool {
	if s.cursor < 0 || s.cursor >= len(s.visible) {
		return false
	}
	idx := s.visible[s.cursor]
	s.candidates[idx].Selected = !s.candidates[idx].Selected
	return true
}

// Cursor returns the cursor position within the visible candidates,
// or -1 when the visible list is empty.
func (s *Session) Cursor() int {
	return s.cursor
}

// VisibleCount returns how many candidates match the current filter.
func (s *Session) VisibleCount() int {
	return len(s.visible)
}

// TotalCount returns the total number of candidates.
func (s *Session) TotalCount() int {
	return len(s.candidates)
}

// SelectedCount returns how many candidates are currently selected.
func (s *Session) SelectedCount() int {
	n := 0
	for _, c := range s.candidates {
		if c.Selected {
			n++
		}
	}
	return n
}

// VisibleAt returns the visible candidate at position i.
func (s *Session) VisibleAt(i int) Candidate {
	return s.candidates[s.visible[i]]
}

// Selected returns the selected paths in candidate (alphabetical) order.
func (s *Session) Selected() []string {
	var out []string
	for _, c := range s.candidates {
		if c.Selected {
			out = append(out, c.Path)
		}
	}
	return out
}
