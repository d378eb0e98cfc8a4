// Copyright 2026 The Emacsctl Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for emacsctl.
//
// Configuration is loaded from a single YAML file specified by:
//   - EMACSCTL_CONFIG environment variable, or
//   - --config flag passed to a command
//
// There is no discovery and no fallback chain. Unlike most settings
// surfaces, the config file itself is optional: emacsctl must work on
// a bare machine, so when neither the variable nor the flag is set the
// built-in defaults apply unchanged.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the emacsctl configuration.
type Config struct {
	// Emacs is the daemon binary. On macOS this is typically the
	// app-bundle path (/Applications/Emacs.app/Contents/MacOS/Emacs);
	// the default relies on PATH.
	Emacs string `yaml:"emacs"`

	// Emacsclient is the client binary.
	Emacsclient string `yaml:"emacsclient"`

	// SocketDir overrides the derived socket directory
	// ($TMPDIR/emacs<uid>). Leave empty to use the derivation.
	SocketDir string `yaml:"socket_dir"`

	// DefaultServer is the server name used when a command gets none.
	DefaultServer string `yaml:"default_server"`

	// KillGrace is how long kill waits before re-listing, as a
	// duration string ("1s", "500ms").
	KillGrace string `yaml:"kill_grace"`

	// Servers are the names the ensure command keeps running when it
	// is invoked without arguments.
	Servers []string `yaml:"servers"`
}

// Default returns the built-in configuration. These are working values,
// not placeholders: a config file only narrows them.
func Default() *Config {
	return &Config{
		Emacs:         "emacs",
		Emacsclient:   "emacsclient",
		DefaultServer: "server",
		KillGrace:     "1s",
	}
}

// Load loads configuration from the EMACSCTL_CONFIG environment
// variable if set, and returns the defaults otherwise.
func Load() (*Config, error) {
	path := os.Getenv("EMACSCTL_CONFIG")
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile loads configuration from a specific file path, merged over
// the defaults. The file is the single source of truth: environment
// variables never override its values.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// KillGraceDuration parses the kill grace period.
func (c *Config) KillGraceDuration() (time.Duration, error) {
	grace, err := time.ParseDuration(c.KillGrace)
	if err != nil {
		return 0, fmt.Errorf("kill_grace %q: %w", c.KillGrace, err)
	}
	return grace, nil
}

func (c *Config) validate() error {
	if c.Emacs == "" {
		return fmt.Errorf("emacs binary must not be empty")
	}
	if c.Emacsclient == "" {
		return fmt.Errorf("emacsclient binary must not be empty")
	}
	if _, err := c.KillGraceDuration(); err != nil {
		return err
	}
	return nil
}
