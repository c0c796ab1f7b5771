package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	apperrors "github.com/promptpack/promptpack/internal/errors"
)

func writeConfig(t *testing.T, dir, contents string) string {
	t.Helper()
	path := filepath.Join(dir, DefaultConfigFile)
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), DefaultConfigFile))
	if err == nil {
		t.Fatal("expected error for missing file")
	}

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %T", err)
	}
	if !strings.Contains(loadErr.Message, "not found") {
		t.Errorf("Message = %q", loadErr.Message)
	}
}

func TestLoadConfig_ParsesFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
ignore:
  dirs:
    - build
    - dist
  extensions:
    - .png
  patterns:
    - "*.lock"
selector:
  show_hidden: true
log:
  level: debug
`)

	cfg, err := LoadFromDir(dir)
	if err != nil {
		t.Fatalf("LoadFromDir() error = %v", err)
	}

	if !reflect.DeepEqual(cfg.Ignore.Dirs, []string{"build", "dist"}) {
		t.Errorf("Ignore.Dirs = %v", cfg.Ignore.Dirs)
	}
	if !reflect.DeepEqual(cfg.Ignore.Patterns, []string{"*.lock"}) {
		t.Errorf("Ignore.Patterns = %v", cfg.Ignore.Patterns)
	}
	if !cfg.Selector.ShowHidden {
		t.Error("expected ShowHidden true")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoadFromDir_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadFromDir(t.TempDir())
	if err != nil {
		t.Fatalf("LoadFromDir() error = %v", err)
	}
	if !reflect.DeepEqual(cfg.Ignore.Dirs, DefaultIgnoreDirs) {
		t.Errorf("Ignore.Dirs = %v, want defaults", cfg.Ignore.Dirs)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "ignore: [unclosed\n")

	_, err := LoadFromDir(dir)
	if err == nil {
		t.Fatal("expected parse error")
	}
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %T", err)
	}
}

func TestLoadConfig_ValidationFailure(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "log:\n  level: shouty\n")

	_, err := LoadFromDir(dir)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "validation") {
		t.Errorf("error = %v, want validation failure", err)
	}
}

func TestLoadFromDir_EnvOverrides(t *testing.T) {
	t.Setenv(EnvPrefix+"_LOG_LEVEL", "debug")
	t.Setenv(EnvPrefix+"_IGNORE_DIRS", "build, dist")
	t.Setenv(EnvPrefix+"_SELECTOR_SHOW_HIDDEN", "yes")

	cfg, err := LoadFromDir(t.TempDir())
	if err != nil {
		t.Fatalf("LoadFromDir() error = %v", err)
	}

	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if !reflect.DeepEqual(cfg.Ignore.Dirs, []string{"build", "dist"}) {
		t.Errorf("Ignore.Dirs = %v", cfg.Ignore.Dirs)
	}
	if !cfg.Selector.ShowHidden {
		t.Error("expected ShowHidden true from env")
	}
}

func TestWriteDefault(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteDefault(dir, false)
	if err != nil {
		t.Fatalf("WriteDefault() error = %v", err)
	}
	if path != filepath.Join(dir, DefaultConfigFile) {
		t.Errorf("path = %q", path)
	}

	// The generated file must load back to the defaults.
	cfg, err := LoadFromDir(dir)
	if err != nil {
		t.Fatalf("LoadFromDir() error = %v", err)
	}
	if !reflect.DeepEqual(cfg.Ignore.Dirs, DefaultIgnoreDirs) {
		t.Errorf("round-tripped Ignore.Dirs = %v", cfg.Ignore.Dirs)
	}

	// A second write without force is refused.
	_, err = WriteDefault(dir, false)
	if err == nil {
		t.Fatal("expected error overwriting without force")
	}
	if !errors.Is(err, apperrors.ErrConfig) {
		t.Errorf("expected ErrConfig kind, got %v", err)
	}

	// Force overwrites.
	if _, err := WriteDefault(dir, true); err != nil {
		t.Errorf("WriteDefault(force) error = %v", err)
	}
}
