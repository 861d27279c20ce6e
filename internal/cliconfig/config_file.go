package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML
// friendly.
type FileConfig struct {
	GameDir          string `toml:"game_dir"`
	StoreDir         string `toml:"store_dir"`
	AutosaveInterval string `toml:"autosave_interval"`
	AutosaveKeep     int    `toml:"autosave_keep"`
	Verbose          *bool  `toml:"verbose"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// WriteFileConfig persists a FileConfig as TOML, atomically (temp file,
// then rename). Used by set-game-dir.
func WriteFileConfig(path string, fc FileConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := toml.Marshal(fc)
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.savekeeper/config.toml if the home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".savekeeper", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("game-dir", fc.GameDir, &cfg.GameDir)
	s.setString("store-dir", fc.StoreDir, &cfg.StoreDir)

	if err := s.setDuration("autosave-interval", fc.AutosaveInterval, &cfg.AutosaveInterval); err != nil {
		return err
	}
	s.setInt("autosave-keep", fc.AutosaveKeep, &cfg.AutosaveKeep)
	s.setBool("verbose", fc.Verbose, &cfg.Verbose)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
