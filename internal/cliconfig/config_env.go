package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables
// (SAVEKEEPER_*). It respects flags that have been explicitly set (changed
// map). Returns an error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("game-dir", os.Getenv("SAVEKEEPER_GAME_DIR"), &cfg.GameDir)
	s.setString("store-dir", os.Getenv("SAVEKEEPER_STORE_DIR"), &cfg.StoreDir)

	if err := s.setDuration("autosave-interval", os.Getenv("SAVEKEEPER_AUTOSAVE_INTERVAL"), &cfg.AutosaveInterval); err != nil {
		return err
	}
	if err := s.setIntFromString("autosave-keep", os.Getenv("SAVEKEEPER_AUTOSAVE_KEEP"), &cfg.AutosaveKeep); err != nil {
		return err
	}

	s.setBoolFromString("verbose", os.Getenv("SAVEKEEPER_VERBOSE"), &cfg.Verbose)

	return nil
}
