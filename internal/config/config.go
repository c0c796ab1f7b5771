// Package config provides configuration data structures for promptpack.
package config

import (
	"fmt"
	"path"
	"strings"
)

// Config represents the optional promptpack configuration loaded from
// .promptpack.yaml at the project root. Every field has a sensible
// default; the file only needs to exist when overriding the defaults.
type Config struct {
	Ignore   IgnoreConfig   `yaml:"ignore"   json:"ignore"`
	Selector SelectorConfig `yaml:"selector" json:"selector"`
	Log      LogConfig      `yaml:"log"      json:"log"`
}

// IgnoreConfig configures which paths are excluded from the edit-mode
// candidate listing.
type IgnoreConfig struct {
	// Dirs are directory names skipped entirely during the scan.
	Dirs []string `yaml:"dirs" json:"dirs"`
	// Extensions are file extensions (with leading dot) to skip,
	// typically binary artifacts.
	Extensions []string `yaml:"extensions" json:"extensions"`
	// Patterns are path globs matched against slash-relative paths.
	Patterns []string `yaml:"patterns" json:"patterns"`
}

// SelectorConfig configures the interactive selector.
type SelectorConfig struct {
	// ShowHidden includes dot-prefixed files and directories in the
	// candidate listing (default: false).
	ShowHidden bool `yaml:"show_hidden" json:"show_hidden"`
}

// LogConfig configures logging behavior.
type LogConfig struct {
	// Level is the minimum log level: debug, info, warn, or error (default: warn).
	Level string `yaml:"level" json:"level"`
	// File is an optional log file path. Empty means stderr only.
	File string `yaml:"file" json:"file"`
}

// DefaultIgnoreDirs are directory names excluded from scans by default.
var DefaultIgnoreDirs = []string{
	".git", ".hg", ".svn",
	"node_modules", "vendor", "__pycache__",
	".idea", ".vscode",
}

// DefaultIgnoreExtensions are file extensions excluded from scans by
// default. These are common binary or generated artifacts that never
// belong in a text prompt.
var DefaultIgnoreExtensions = []string{
	".png", ".jpg", ".jpeg", ".gif", ".ico", ".webp", ".svgz",
	".pdf", ".zip", ".tar", ".gz", ".bz2", ".xz", ".7z",
	".exe", ".dll", ".so", ".dylib", ".bin", ".o", ".a",
	".class", ".jar", ".pyc",
	".woff", ".woff2", ".ttf", ".otf", ".eot",
	".mp3", ".mp4", ".avi", ".mov",
	".db", ".sqlite",
}

// NewConfig creates a Config with all defaults applied.
func NewConfig() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills in defaults for any unset values.
func (c *Config) ApplyDefaults() {
	if c.Ignore.Dirs == nil {
		c.Ignore.Dirs = append([]string(nil), DefaultIgnoreDirs...)
	}
	if c.Ignore.Extensions == nil {
		c.Ignore.Extensions = append([]string(nil), DefaultIgnoreExtensions...)
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log.level %q (valid: debug, info, warn, error)", c.Log.Level)
	}

	for _, ext := range c.Ignore.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("invalid ignore.extensions entry %q (must start with a dot)", ext)
		}
	}

	for _, pattern := range c.Ignore.Patterns {
		if _, err := path.Match(pattern, "probe"); err != nil {
			return fmt.Errorf("invalid ignore.patterns entry %q: %w", pattern, err)
		}
	}

	return nil
}
