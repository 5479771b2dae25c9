package main

import (
	"fmt"
	"os"
	"time"

	"github.com/finsift/finsift/internal/cli"
	"github.com/finsift/finsift/internal/snapshot"
	"github.com/spf13/cobra"
)

func snapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Export and restore the full working state",
	}

	cmd.AddCommand(exportSnapshotCmd())
	cmd.AddCommand(restoreSnapshotCmd())

	return cmd
}

func exportSnapshotCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a snapshot of everything",
		Long: `Write the transactions, imported files, categories, filters, and the
learned category memory as a single JSON document.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
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

			data, err := snapshot.Export(state, mem)
			if err != nil {
				return err
			}

			if output == "" {
				output = fmt.Sprintf("finsift-snapshot-%s.json", time.Now().Format("2006-01-02"))
			}
			if err := os.WriteFile(output, data, 0600); err != nil {
				return fmt.Errorf("failed to write snapshot: %w", err)
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("exported snapshot to %s", output)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: finsift-snapshot-<date>.json)")
	return cmd
}

func restoreSnapshotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <file>",
		Short: "Restore a snapshot, replacing the current state",
		Long: `Replace the working session and the learned category memory with the
contents of a snapshot file. Malformed entries inside the snapshot are
skipped; the rest is restored.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read snapshot: %w", err)
			}

			mem, closeStore, err := openMemory(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			state, err := snapshot.Import(ctx, data, mem)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("restored %d transactions across %d files",
				len(state.Transactions), len(state.Files))))
			return saveSession(state, mem)
		},
	}
}
