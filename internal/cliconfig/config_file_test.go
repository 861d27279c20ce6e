package cliconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFileConfig(t *testing.T) {
	path := writeConfigFile(t, `
game_dir = "/games/save00"
store_dir = "/data/savekeeper"
autosave_interval = "45s"
autosave_keep = 3
verbose = true
`)

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig: %v", err)
	}
	if fc.GameDir != "/games/save00" || fc.StoreDir != "/data/savekeeper" {
		t.Fatalf("paths not parsed: %+v", fc)
	}
	if fc.AutosaveInterval != "45s" || fc.AutosaveKeep != 3 {
		t.Fatalf("autosave settings not parsed: %+v", fc)
	}
	if fc.Verbose == nil || !*fc.Verbose {
		t.Fatalf("verbose not parsed: %+v", fc.Verbose)
	}
}

func TestLoadFileConfigInvalidTOML(t *testing.T) {
	path := writeConfigFile(t, "game_dir = [broken")
	if _, err := LoadFileConfig(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestApplyFileConfig(t *testing.T) {
	verbose := true
	fc := FileConfig{
		GameDir:          "/file/save00",
		StoreDir:         "/file/store",
		AutosaveInterval: "90s",
		AutosaveKeep:     4,
		Verbose:          &verbose,
	}

	t.Run("applies everything when no flags changed", func(t *testing.T) {
		cfg := Config{}
		if err := ApplyFileConfig(&cfg, fc, map[string]bool{}); err != nil {
			t.Fatalf("ApplyFileConfig: %v", err)
		}
		if cfg.GameDir != "/file/save00" || cfg.StoreDir != "/file/store" {
			t.Fatalf("paths not applied: %+v", cfg)
		}
		if cfg.AutosaveInterval != 90*time.Second || cfg.AutosaveKeep != 4 || !cfg.Verbose {
			t.Fatalf("settings not applied: %+v", cfg)
		}
	})

	t.Run("changed flags win over file values", func(t *testing.T) {
		cfg := Config{GameDir: "/flag/save00"}
		changed := map[string]bool{"game-dir": true}
		if err := ApplyFileConfig(&cfg, fc, changed); err != nil {
			t.Fatalf("ApplyFileConfig: %v", err)
		}
		if cfg.GameDir != "/flag/save00" {
			t.Fatalf("flag value overwritten: %+v", cfg)
		}
		if cfg.StoreDir != "/file/store" {
			t.Fatalf("unchanged field not applied: %+v", cfg)
		}
	})

	t.Run("invalid duration is an error", func(t *testing.T) {
		cfg := Config{}
		bad := fc
		bad.AutosaveInterval = "soon"
		if err := ApplyFileConfig(&cfg, bad, map[string]bool{}); err == nil {
			t.Fatal("expected duration parse error")
		}
	})
}

func TestWriteFileConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	fc := FileConfig{GameDir: "/games/save00", AutosaveKeep: 5}
	if err := WriteFileConfig(path, fc); err != nil {
		t.Fatalf("WriteFileConfig: %v", err)
	}

	got, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig: %v", err)
	}
	if got.GameDir != fc.GameDir || got.AutosaveKeep != fc.AutosaveKeep {
		t.Fatalf("round trip mismatch: %+v != %+v", got, fc)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatal("temp config file left behind")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	p := DefaultConfigPath()
	if p == "" {
		t.Skip("no home directory available")
	}
	if !strings.HasSuffix(p, filepath.Join(".savekeeper", "config.toml")) {
		t.Fatalf("unexpected default config path: %s", p)
	}
}
