package tracklist

import (
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/promptpack/promptpack/internal/errors"
)

// Filename is the tracked-list file at the project root.
const Filename = ".promptpack"

// Store reads and writes the tracked list for one project root.
type Store struct {
	path string
}

// NewStore creates a Store for the tracked list in the given project root.
func NewStore(root string) *Store {
	return &Store{path: filepath.Join(root, Filename)}
}

// Path returns the tracked-list file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the tracked list from disk.
// A missing file yields an error matching errors.ErrNotFound, which
// callers may recover from by treating the list as empty. Other read
// failures yield a config error.
func (s *Store) Load() (*List, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrap(err, apperrors.ErrNotFound, "tracked list not found")
		}
		return nil, apperrors.TrackedListUnreadable(s.path, err)
	}

	var paths []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		paths = append(paths, line)
	}
	return New(paths...), nil
}

// Save overwrites the tracked-list file with one path per line.
// An empty list persists as an empty file.
func (s *Store) Save(list *List) error {
	var sb strings.Builder
	for _, p := range list.Paths() {
		sb.WriteString(p)
		sb.WriteString("\n")
	}
	if err := os.WriteFile(s.path, []byte(sb.String()), 0644); err != nil {
		return apperrors.TrackedListUnwritable(s.path, err)
	}
	return nil
}
