package cliconfig

import (
	"testing"
	"time"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"SAVEKEEPER_GAME_DIR":          "/env/save00",
				"SAVEKEEPER_STORE_DIR":         "/env/store",
				"SAVEKEEPER_AUTOSAVE_INTERVAL": "2m",
				"SAVEKEEPER_AUTOSAVE_KEEP":     "7",
				"SAVEKEEPER_VERBOSE":           "true",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				GameDir:          "/env/save00",
				StoreDir:         "/env/store",
				AutosaveInterval: 2 * time.Minute,
				AutosaveKeep:     7,
				Verbose:          true,
			},
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"SAVEKEEPER_GAME_DIR":  "/env/save00",
				"SAVEKEEPER_STORE_DIR": "/env/store",
			},
			changed: map[string]bool{"game-dir": true},
			initial: Config{GameDir: "/flag/save00"},
			expected: Config{
				GameDir:  "/flag/save00",
				StoreDir: "/env/store",
			},
		},
		{
			name: "returns error for invalid duration",
			envVars: map[string]string{
				"SAVEKEEPER_AUTOSAVE_INTERVAL": "not-a-duration",
			},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name: "returns error for invalid keep count",
			envVars: map[string]string{
				"SAVEKEEPER_AUTOSAVE_KEEP": "lots",
			},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name:     "empty env leaves config untouched",
			envVars:  map[string]string{},
			changed:  map[string]bool{},
			initial:  Config{GameDir: "/existing"},
			expected: Config{GameDir: "/existing"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg != tt.expected {
				t.Fatalf("config mismatch:\nwant %+v\ngot  %+v", tt.expected, cfg)
			}
		})
	}
}
