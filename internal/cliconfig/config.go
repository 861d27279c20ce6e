package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds CLI configuration for savekeeper.
// Precedence is flags > environment (SAVEKEEPER_*) > config file > defaults.
type Config struct {
	// GameDir is the live game-state directory that saves snapshot and
	// load overwrites.
	GameDir string

	// StoreDir is the root under which saves/, trash/ and backup/ live.
	StoreDir string

	// AutosaveInterval is the quiet period the watch command waits for
	// after a change before snapshotting.
	AutosaveInterval time.Duration

	// AutosaveKeep is how many auto-* saves the watch command retains.
	AutosaveKeep int

	// Verbose enables debug logging.
	Verbose bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		StoreDir:         defaultStoreDir(),
		AutosaveInterval: 30 * time.Second,
		AutosaveKeep:     10,
	}
}

func defaultStoreDir() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".savekeeper")
	}
	return ".savekeeper"
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.GameDir == "" {
		return fmt.Errorf("game directory is not set; run 'savekeeper set-game-dir <path>' or set SAVEKEEPER_GAME_DIR")
	}
	if c.StoreDir == "" {
		c.StoreDir = defaultStoreDir()
	}
	if c.AutosaveInterval <= 0 {
		return fmt.Errorf("autosave interval must be positive")
	}
	if c.AutosaveKeep <= 0 {
		return fmt.Errorf("autosave keep count must be positive")
	}
	return nil
}

// configSetter helps apply configuration values while respecting flag
// precedence. It only applies values if the corresponding flag hasn't been
// explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not
// changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if
// valid. Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
