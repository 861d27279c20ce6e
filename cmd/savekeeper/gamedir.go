package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mlahtinen/savekeeper/internal/cliconfig"
	"github.com/mlahtinen/savekeeper/internal/platform"
)

func newSetGameDirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-game-dir <path>",
		Short: "Persist the live game-state directory to the config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := expandPath(args[0])
			if err != nil {
				return err
			}
			if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
				return fmt.Errorf("%s does not exist or is not a directory", dir)
			}

			path := cfgPath
			if path == "" {
				path = cliconfig.DefaultConfigPath()
			}
			if path == "" {
				return fmt.Errorf("cannot determine config file location")
			}

			// Preserve other settings already present in the file.
			var fc cliconfig.FileConfig
			if cliconfig.FileExists(path) {
				fc, err = cliconfig.LoadFileConfig(path)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
			}
			fc.GameDir = dir

			if err := cliconfig.WriteFileConfig(path, fc); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			fmt.Printf("Game directory set to %s\n", dir)
			return nil
		},
	}
}

func newOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open",
		Short: "Open the game directory in the file browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := platform.OpenFileBrowser(cfg.GameDir); err != nil {
				return fmt.Errorf("open file browser: %w", err)
			}
			return nil
		},
	}
}

// expandPath resolves a leading ~ and returns an absolute path.
func expandPath(p string) (string, error) {
	if p == "~" || strings.HasPrefix(p, "~/") {
		h, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		p = filepath.Join(h, strings.TrimPrefix(p, "~"))
	}
	return filepath.Abs(p)
}
