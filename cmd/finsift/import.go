package main

import (
	"fmt"

	"github.com/finsift/finsift/internal/classify"
	"github.com/finsift/finsift/internal/cli"
	"github.com/finsift/finsift/internal/common"
	"github.com/finsift/finsift/internal/importer"
	"github.com/finsift/finsift/internal/normalize"
	"github.com/spf13/cobra"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>...",
		Short: "Import bank statement files",
		Long: `Import one or more CSV or OFX statement exports into the session. Each file
becomes its own batch; rows without a usable date or any meaningful content
are dropped. New transactions are categorized as they come in.`,
		Args: cobra.MinimumNArgs(1),
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

			normalizer := normalize.New(classify.New(mem), state.TxIDs)
			imp := importer.New(normalizer, state.FileIDs)

			// A failure in one file never blocks the rest of the invocation.
			imported := 0
			for _, path := range args {
				result, err := imp.ImportFile(ctx, path)
				if err != nil {
					common.LogError(err, "failed to import file", common.Fields{"file": path})
					fmt.Println(cli.FormatError(fmt.Sprintf("%s: %v", path, err)))
					continue
				}
				if result == nil {
					fmt.Println(cli.FormatWarning(fmt.Sprintf("%s: no usable transactions, skipped", path)))
					continue
				}
				state.AddBatch(result.Batch, result.Transactions)
				imported += result.Batch.Count
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s: imported %d transactions as %s",
					result.Batch.Name, result.Batch.Count, result.Batch.ID)))
			}

			if imported == 0 {
				return nil
			}
			return saveSession(state, mem)
		},
	}
}
