package cliconfig

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.StoreDir == "" {
		t.Fatal("expected a default store dir")
	}
	if cfg.AutosaveInterval != 30*time.Second {
		t.Fatalf("unexpected autosave interval: %v", cfg.AutosaveInterval)
	}
	if cfg.AutosaveKeep != 10 {
		t.Fatalf("unexpected autosave keep: %d", cfg.AutosaveKeep)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "valid",
			cfg: Config{
				GameDir:          "/games/save00",
				StoreDir:         "/store",
				AutosaveInterval: time.Minute,
				AutosaveKeep:     5,
			},
		},
		{
			name: "missing game dir",
			cfg: Config{
				StoreDir:         "/store",
				AutosaveInterval: time.Minute,
				AutosaveKeep:     5,
			},
			wantErr: "game directory",
		},
		{
			name: "non-positive interval",
			cfg: Config{
				GameDir:          "/games/save00",
				AutosaveInterval: 0,
				AutosaveKeep:     5,
			},
			wantErr: "autosave interval",
		},
		{
			name: "non-positive keep",
			cfg: Config{
				GameDir:          "/games/save00",
				AutosaveInterval: time.Minute,
				AutosaveKeep:     0,
			},
			wantErr: "keep count",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateDerivesStoreDir(t *testing.T) {
	cfg := Config{
		GameDir:          "/games/save00",
		AutosaveInterval: time.Minute,
		AutosaveKeep:     5,
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.StoreDir == "" {
		t.Fatal("expected Validate to derive the store dir")
	}
}
