package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/mlahtinen/savekeeper/internal/cliconfig"
	"github.com/mlahtinen/savekeeper/internal/domain"
	"github.com/mlahtinen/savekeeper/internal/store"
)

const helpDescription = `
Snapshot, restore and manage point-in-time copies of a game's save directory.

Saves are kept under the store root (default ~/.savekeeper). Removing a save
moves it to the trash, where it can be restored or permanently deleted; every
load first copies the current game state into a single backup slot so the
overwritten state is never lost.
`

var exampleUsage = strings.TrimSpace(`
  savekeeper set-game-dir "~/.local/share/MyGame/save00"
  savekeeper save before-boss
  savekeeper list
  savekeeper load before-boss
`)

var (
	cfg     cliconfig.Config
	cfgPath string
	logger  zerolog.Logger
)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg = cliconfig.DefaultConfig()

	root := &cobra.Command{
		Use:           "savekeeper",
		Short:         "Manage snapshots of a game's save directory",
		Long:          strings.TrimSpace(helpDescription),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load config file first (default ~/.savekeeper/config.toml),
			// then env, with explicitly set flags winning over both.
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			logger = cliconfig.Logger(cfg.Verbose)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default: ~/.savekeeper/config.toml)")
	root.PersistentFlags().StringVar(&cfg.GameDir, "game-dir", cfg.GameDir, "live game-state directory")
	root.PersistentFlags().StringVar(&cfg.StoreDir, "store-dir", cfg.StoreDir, "store root for saves, trash and backup")
	root.PersistentFlags().BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable debug logging")

	root.AddCommand(
		newSaveCmd(),
		newImportCmd(),
		newListCmd(),
		newLoadCmd(),
		newRemoveCmd(),
		newRestoreCmd(),
		newDeleteCmd(),
		newBackupCmd(),
		newOpenCmd(),
		newSetGameDirCmd(),
		newWatchCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// openStore validates the resolved configuration and opens the save store.
func openStore() (*store.Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return store.New(cfg.StoreDir, cfg.GameDir, store.WithLogger(logger))
}

// friendly rewrites a store error into an actionable message for the
// terminal, keyed on the domain error kind.
func friendly(err error, name string) error {
	switch {
	case errors.Is(err, domain.ErrInvalidName):
		return fmt.Errorf("%q is not a usable save name (no path separators, must not be empty)", name)
	case errors.Is(err, domain.ErrNameConflict):
		return fmt.Errorf("a save named %q already exists; pick another name, or remove and delete the old one first", name)
	case errors.Is(err, domain.ErrNotFound):
		return fmt.Errorf("no save named %q; 'savekeeper list' shows what exists", name)
	case errors.Is(err, domain.ErrAlreadyTrashed):
		return fmt.Errorf("save %q is already in the trash", name)
	case errors.Is(err, domain.ErrNotTrashed):
		return fmt.Errorf("save %q is active; 'savekeeper remove %s' moves it to the trash, only then can it be deleted", name, name)
	case errors.Is(err, domain.ErrSaveIsTrashed):
		return fmt.Errorf("save %q is in the trash; run 'savekeeper restore %s' first", name, name)
	case errors.Is(err, domain.ErrSourceUnavailable):
		return fmt.Errorf("source directory for %q does not exist or is not readable", name)
	case errors.Is(err, domain.ErrStoreUnavailable):
		return fmt.Errorf("store root is not accessible: %v", err)
	case errors.Is(err, domain.ErrCopyFailed):
		return fmt.Errorf("copying save %q failed; the store was left unchanged: %v", name, err)
	case errors.Is(err, domain.ErrBackupFailed):
		return fmt.Errorf("could not back up the game directory, load aborted and game state untouched: %v", err)
	case errors.Is(err, domain.ErrLoadFailed):
		return fmt.Errorf("load of %q failed partway; the game directory may be incomplete, recover it from 'savekeeper backup': %v", name, err)
	default:
		return err
	}
}
