// Package tracklist provides the tracked-list data model and its
// persistence for promptpack. The tracked list is the ordered,
// deduplicated set of relative file paths the user has chosen to
// include in the next copy.
package tracklist

import (
	"path/filepath"
	"strings"
)

// List is an ordered set of slash-separated relative file paths.
// Uniqueness is enforced by the API; a path never appears twice.
type List struct {
	paths []string
	seen  map[string]struct{}
}

// New creates a List from the given paths. Paths are normalized to
// slash separators and deduplicated, keeping the first occurrence.
func New(paths ...string) *List {
	l := &List{seen: make(map[string]struct{})}
	for _, p := range paths {
		l.Add(p)
	}
	return l
}

// Normalize converts a path to its canonical tracked form:
// slash-separated and trimmed. Empty results mean the path is unusable.
func Normalize(path string) string {
	return filepath.ToSlash(strings.TrimSpace(path))
}

// Add appends a path to the list if not already present.
// Returns true if the path was added.
func (l *List) Add(path string) bool {
	p := Normalize(path)
	if p == "" {
		return false
	}
	if _, ok := l.seen[p]; ok {
		return false
	}
	l.seen[p] = struct{}{}
	l.paths = append(l.paths, p)
	return true
}

// Remove deletes a path from the list.
// Returns true if the path was present.
func (l *List) Remove(path string) bool {
	p := Normalize(path)
	if _, ok := l.seen[p]; !ok {
		return false
	}
	delete(l.seen, p)
	for i, existing := range l.paths {
		if existing == p {
			l.paths = append(l.paths[:i], l.paths[i+1:]...)
			break
		}
	}
	return true
}

// Contains reports whether the path is in the list.
func (l *List) Contains(path string) bool {
	_, ok := l.seen[Normalize(path)]
	return ok
}

// Paths returns a copy of the paths in list order.
func (l *List) Paths() []string {
	out := make([]string, len(l.paths))
	copy(out, l.paths)
	return out
}

// Len returns the number of tracked paths.
func (l *List) Len() int {
	return len(l.paths)
}
