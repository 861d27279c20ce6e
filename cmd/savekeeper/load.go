package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <name>",
		Short: "Replace the current game state with a save",
		Long: `Replace the live game directory's contents with the named save.

The current game state is first copied into the backup slot, replacing any
previous backup, so the overwritten state can be recovered manually.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			st, err := openStore()
			if err != nil {
				return err
			}
			backup, err := st.Load(cmd.Context(), name)
			if err != nil {
				return friendly(err, name)
			}
			fmt.Printf("Loaded save %q\n", name)
			fmt.Printf("Previous game state backed up to %s\n", backup.Path)
			return nil
		},
	}
}
