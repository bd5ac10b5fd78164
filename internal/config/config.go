// Package config handles configuration loading from TOML files, environment
// variables, and command-line overrides. The resolved configuration is built
// once at startup and passed into the session; nothing reads it ambiently.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Autosave modes.
const (
	AutosaveEager    = "eager"    // persist after every mutating step
	AutosaveDeferred = "deferred" // persist once at session end
)

// Config is the root configuration structure.
type Config struct {
	Document DocumentConfig `toml:"document"`
	Editor   EditorConfig   `toml:"editor"`
}

// DocumentConfig holds document location settings.
type DocumentConfig struct {
	// Path is the default outline file opened when no positional argument is
	// given. Relative paths resolve against the working directory.
	Path string `toml:"path"`
}

// EditorConfig holds editing behavior settings.
type EditorConfig struct {
	IndentWidth int    `toml:"indent_width"`
	Autosave    string `toml:"autosave"`
}

// PathOrDefault returns the configured document path or "list.txt" if unset.
func (d DocumentConfig) PathOrDefault() string {
	if d.Path == "" {
		return "list.txt"
	}
	return d.Path
}

// IndentWidthOrDefault returns the configured indent width or 2 if unset.
func (e EditorConfig) IndentWidthOrDefault() int {
	if e.IndentWidth == 0 {
		return 2
	}
	return e.IndentWidth
}

// AutosaveOrDefault returns the configured autosave mode or eager if unset.
func (e EditorConfig) AutosaveOrDefault() string {
	if e.Autosave == "" {
		return AutosaveEager
	}
	return e.Autosave
}

// Load reads configuration from a TOML file and applies environment variable
// overrides. An empty path means the default location; a missing file is not
// an error; every field has a default.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path == "" {
		dir, err := DataDir()
		if err == nil {
			path = filepath.Join(dir, "config.toml")
		}
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate returns an error if the configuration is invalid.
func (c *Config) Validate() error {
	var errs []error

	if c.Editor.IndentWidth < 0 {
		errs = append(errs, fmt.Errorf("editor.indent_width=%d must not be negative", c.Editor.IndentWidth))
	}

	switch c.Editor.Autosave {
	case "", AutosaveEager, AutosaveDeferred:
	default:
		errs = append(errs, fmt.Errorf("editor.autosave=%q must be %q or %q",
			c.Editor.Autosave, AutosaveEager, AutosaveDeferred))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) {
	for _, setter := range []struct {
		env   string
		apply func(string)
	}{
		{"BULLET_DOCUMENT", func(v string) {
			if v != "" {
				cfg.Document.Path = v
			}
		}},
		{"BULLET_INDENT_WIDTH", func(v string) {
			if n, err := strconv.Atoi(v); err == nil && n != 0 {
				cfg.Editor.IndentWidth = n
			}
		}},
		{"BULLET_AUTOSAVE", func(v string) {
			if v != "" {
				cfg.Editor.Autosave = v
			}
		}},
	} {
		setter.apply(os.Getenv(setter.env))
	}
}

// DataDir returns the path to the bullet data directory (~/.config/bullet).
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "bullet"), nil
}

// EnsureDataDir creates the data directory if it doesn't exist.
func EnsureDataDir() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", err
	}
	return dir, nil
}
