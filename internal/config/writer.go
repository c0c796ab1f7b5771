// Package config provides configuration writing for promptpack.
// This file generates the default config file for 'promptpack init'.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	apperrors "github.com/promptpack/promptpack/internal/errors"
)

const fileHeader = `# promptpack configuration.
# Every setting is optional; delete this file to return to the defaults.
`

// WriteDefault writes a .promptpack.yaml with the default settings to
// the given project directory. An existing file is only overwritten
// when force is set.
func WriteDefault(dir string, force bool) (string, error) {
	path := filepath.Join(dir, DefaultConfigFile)

	if _, err := os.Stat(path); err == nil && !force {
		return path, apperrors.WithSuggestion(
			apperrors.ErrConfig,
			fmt.Sprintf("config file already exists: %s", path),
			"Use --force to overwrite it.",
		)
	}

	data, err := yaml.Marshal(NewConfig())
	if err != nil {
		return path, apperrors.Wrap(err, apperrors.ErrConfig, "failed to encode default config")
	}

	contents := append([]byte(fileHeader), data...)
	if err := os.WriteFile(path, contents, 0644); err != nil {
		return path, apperrors.Wrap(err, apperrors.ErrConfig, "failed to write config file")
	}

	return path, nil
}
