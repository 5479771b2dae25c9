package main

import (
	"fmt"

	"github.com/finsift/finsift/internal/cli"
	"github.com/spf13/cobra"
)

func filesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "files",
		Short: "Manage imported statement files",
	}

	cmd.AddCommand(listFilesCmd())
	cmd.AddCommand(removeFileCmd())

	return cmd
}

func listFilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List imported files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := loadSession(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Print(cli.RenderBatchTable(state.Files))
			return nil
		},
	}
}

func removeFileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <file-id>",
		Short: "Remove an imported file and its transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			mem, closeStore, err := openMemory(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			state, err := loadSession(ctx)
			if err != nil {
				return err
			}

			batch, ok := state.Batch(args[0])
			if err := state.RemoveBatch(args[0]); err != nil {
				return fmt.Errorf("unknown file %q", args[0])
			}
			if ok {
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("removed %s (%d transactions)", batch.Name, batch.Count)))
			}
			return saveSession(state, mem)
		},
	}
}
