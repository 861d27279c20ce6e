package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mlahtinen/savekeeper/internal/domain"
)

const timeFormat = "2006-01-02 15:04:05"

func newListCmd() *cobra.Command {
	var trash bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saves, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}

			loc := domain.Active
			if trash {
				loc = domain.Trashed
			}
			saves, err := st.List(cmd.Context(), loc)
			if err != nil {
				return friendly(err, "")
			}

			if len(saves) == 0 {
				if trash {
					fmt.Println("Trash is empty")
				} else {
					fmt.Println("No saves found")
				}
				return nil
			}
			for _, s := range saves {
				fmt.Printf("%s  %s\n", s.CreatedAt.Format(timeFormat), s.Name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&trash, "trash", false, "list trashed saves instead of active ones")
	return cmd
}

func newBackupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Show the pre-load backup slot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			info, err := st.Backup(cmd.Context())
			if err != nil {
				if errors.Is(err, domain.ErrNoBackup) {
					fmt.Println("No backup present; one is taken automatically by each load")
					return nil
				}
				return friendly(err, "")
			}
			fmt.Printf("Backup captured %s\n  %s\n", info.CapturedAt.Format(timeFormat), info.Path)
			return nil
		},
	}
}
