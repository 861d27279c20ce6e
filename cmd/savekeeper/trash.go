package main

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Move a save to the trash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			st, err := openStore()
			if err != nil {
				return err
			}
			if _, err := st.Remove(cmd.Context(), name); err != nil {
				return friendly(err, name)
			}
			fmt.Printf("Moved save %q to the trash; 'savekeeper restore %s' brings it back\n", name, name)
			return nil
		},
	}
}

func newRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <name>",
		Short: "Restore a save from the trash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			st, err := openStore()
			if err != nil {
				return err
			}
			if _, err := st.Restore(cmd.Context(), name); err != nil {
				return friendly(err, name)
			}
			fmt.Printf("Restored save %q from the trash\n", name)
			return nil
		},
	}
}

func newDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Permanently delete a trashed save",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			st, err := openStore()
			if err != nil {
				return err
			}

			if !yes {
				var confirmed bool
				err := huh.NewConfirm().
					Title(fmt.Sprintf("Permanently delete save %q?", name)).
					Description("There is no undo.").
					Affirmative("Delete").
					Negative("Keep").
					Value(&confirmed).
					Run()
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Println("Aborted")
					return nil
				}
			}

			if err := st.Delete(cmd.Context(), name); err != nil {
				return friendly(err, name)
			}
			fmt.Printf("Permanently deleted save %q\n", name)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")
	return cmd
}
