package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <name>",
		Short: "Snapshot the current game state under a name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			st, err := openStore()
			if err != nil {
				return err
			}
			save, err := st.Create(cmd.Context(), name)
			if err != nil {
				return friendly(err, name)
			}
			fmt.Printf("Saved current game state as %q\n", save.Name)
			return nil
		},
	}
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <name> <dir>",
		Short: "Import an external directory as a save",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, dir := args[0], args[1]
			st, err := openStore()
			if err != nil {
				return err
			}
			save, err := st.Import(cmd.Context(), name, dir)
			if err != nil {
				return friendly(err, name)
			}
			fmt.Printf("Imported %s as save %q\n", dir, save.Name)
			return nil
		},
	}
}
