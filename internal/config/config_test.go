package config

import (
	"reflect"
	"strings"
	"testing"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if !reflect.DeepEqual(cfg.Ignore.Dirs, DefaultIgnoreDirs) {
		t.Errorf("Ignore.Dirs = %v, want defaults", cfg.Ignore.Dirs)
	}
	if !reflect.DeepEqual(cfg.Ignore.Extensions, DefaultIgnoreExtensions) {
		t.Errorf("Ignore.Extensions = %v, want defaults", cfg.Ignore.Extensions)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
	if cfg.Selector.ShowHidden {
		t.Error("expected ShowHidden to default to false")
	}
}

func TestApplyDefaults_PreservesExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Ignore.Dirs = []string{"build"}
	cfg.Log.Level = "debug"
	cfg.ApplyDefaults()

	if !reflect.DeepEqual(cfg.Ignore.Dirs, []string{"build"}) {
		t.Errorf("Ignore.Dirs = %v, want [build]", cfg.Ignore.Dirs)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	// Unset fields still get defaults.
	if len(cfg.Ignore.Extensions) == 0 {
		t.Error("expected default extensions to be applied")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Log.Level = "verbose" },
			wantErr: "log.level",
		},
		{
			name:    "extension without dot",
			mutate:  func(c *Config) { c.Ignore.Extensions = []string{"png"} },
			wantErr: "ignore.extensions",
		},
		{
			name:    "malformed glob pattern",
			mutate:  func(c *Config) { c.Ignore.Patterns = []string{"[unclosed"} },
			wantErr: "ignore.patterns",
		},
		{
			name:   "valid glob pattern",
			mutate: func(c *Config) { c.Ignore.Patterns = []string{"*.lock"} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}
