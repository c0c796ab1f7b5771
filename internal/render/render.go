// Package render produces the concatenated, fenced text blob from the
// tracked list. Each tracked file contributes a fenced path block
// followed by a fenced content block; entries are separated by a blank
// line. The format is fixed for compatibility with downstream prompts.
package render

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/promptpack/promptpack/internal/logging"
	"github.com/promptpack/promptpack/internal/tracklist"
)

const fence = "```"

// Warning records a tracked file that was skipped during rendering.
type Warning struct {
	Path string
	Err  error
}

// String returns the user-facing warning message.
func (w Warning) String() string {
	return "Warning: skipping " + w.Path + ": " + w.Err.Error()
}

// Result holds the rendered text and per-file outcomes.
type Result struct {
	// Text is the complete rendered blob.
	Text string
	// Rendered lists the paths that rendered successfully, in order.
	Rendered []string
	// Warnings lists tracked files that were skipped.
	Warnings []Warning
}

// Renderer renders tracked files relative to a project root.
type Renderer struct {
	root string
}

// New creates a Renderer for the given project root.
func New(root string) *Renderer {
	return &Renderer{root: root}
}

// Render reads each tracked file and produces the combined text block.
// Unreadable files are skipped with a warning rather than aborting the
// render, so one stale entry never blocks the rest.
func (r *Renderer) Render(list *tracklist.List) Result {
	var res Result
	var entries []string

	for _, p := range list.Paths() {
		data, err := os.ReadFile(filepath.Join(r.root, filepath.FromSlash(p)))
		if err != nil {
			res.Warnings = append(res.Warnings, Warning{Path: p, Err: err})
			logging.Debug("skipping unreadable tracked file", "path", p, "error", err)
			continue
		}
		entries = append(entries, renderEntry(p, string(data)))
		res.Rendered = append(res.Rendered, p)
	}

	res.Text = strings.Join(entries, "\n")
	return res
}

// renderEntry formats one file as a fenced path block and a fenced
// content block. The trailing newline plus the join separator yields
// exactly one blank line between entries.
func renderEntry(path, contents string) string {
	var sb strings.Builder
	sb.WriteString(fence)
	sb.WriteString("\n")
	sb.WriteString(path)
	sb.WriteString("\n")
	sb.WriteString(fence)
	sb.WriteString("\n")
	sb.WriteString(fence)
	sb.WriteString("\n")
	sb.WriteString(contents)
	sb.WriteString("\n")
	sb.WriteString(fence)
	sb.WriteString("\n")
	return sb.String()
}
