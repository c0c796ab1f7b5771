// Package scan lists candidate files for the interactive selector.
// It walks the project root, applies the ignore policy, and returns
// sorted slash-relative paths.
package scan

import (
	"io/fs"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/promptpack/promptpack/internal/config"
	apperrors "github.com/promptpack/promptpack/internal/errors"
	"github.com/promptpack/promptpack/internal/logging"
	"github.com/promptpack/promptpack/internal/tracklist"
)

// Scanner walks a project root for candidate files.
type Scanner struct {
	root       string
	ignoreDirs map[string]struct{}
	ignoreExts map[string]struct{}
	patterns   []string
	showHidden bool
}

// New creates a Scanner for the given root with the configured
// ignore policy.
func New(root string, cfg *config.Config) *Scanner {
	s := &Scanner{
		root:       root,
		ignoreDirs: make(map[string]struct{}),
		ignoreExts: make(map[string]struct{}),
		patterns:   cfg.Ignore.Patterns,
		showHidden: cfg.Selector.ShowHidden,
	}
	for _, d := range cfg.Ignore.Dirs {
		s.ignoreDirs[d] = struct{}{}
	}
	for _, e := range cfg.Ignore.Extensions {
		s.ignoreExts[strings.ToLower(e)] = struct{}{}
	}
	return s
}

// Scan returns the sorted candidate paths under the root.
// An empty project yields an empty slice and no error.
func (s *Scanner) Scan() ([]string, error) {
	var candidates []string

	err := filepath.WalkDir(s.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are skipped, not fatal.
			logging.Warn("skipping unreadable path during scan", "path", p, "error", err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		name := d.Name()

		if d.IsDir() {
			if p == s.root {
				return nil
			}
			if _, ok := s.ignoreDirs[name]; ok {
				return fs.SkipDir
			}
			if !s.showHidden && strings.HasPrefix(name, ".") {
				return fs.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(s.root, p)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		if s.excluded(rel, name) {
			return nil
		}

		candidates = append(candidates, rel)
		return nil
	})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrConfig, "failed to scan project files")
	}

	slices.Sort(candidates)
	return candidates, nil
}

// excluded reports whether a file is filtered out by the ignore policy.
func (s *Scanner) excluded(rel, name string) bool {
	// The tool's own files never show up as candidates.
	if rel == tracklist.Filename || rel == config.DefaultConfigFile {
		return true
	}

	if !s.showHidden && strings.HasPrefix(name, ".") {
		return true
	}

	if _, ok := s.ignoreExts[strings.ToLower(path.Ext(rel))]; ok {
		return true
	}

	for _, pattern := range s.patterns {
		if ok, _ := path.Match(pattern, rel); ok {
			return true
		}
		if ok, _ := path.Match(pattern, name); ok {
			return true
		}
	}

	return false
}
