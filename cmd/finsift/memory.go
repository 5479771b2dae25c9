package main

import (
	"fmt"

	"github.com/finsift/finsift/internal/cli"
	"github.com/finsift/finsift/internal/memory"
	"github.com/finsift/finsift/internal/model"
	"github.com/spf13/cobra"
)

func memoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "memory",
		Short: "Manage the learned description→category mapping",
	}

	cmd.AddCommand(listMemoryCmd())
	cmd.AddCommand(setMemoryCmd())
	cmd.AddCommand(forgetMemoryCmd())

	return cmd
}

func listMemoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List remembered descriptions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			mem, closeStore, err := openMemory(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			entries := mem.Entries()
			if len(entries) == 0 {
				fmt.Println(cli.SubtleStyle.Render("Nothing remembered yet."))
				return nil
			}
			for _, e := range entries {
				fmt.Printf("%-50s %s\n", e.Key, e.Category)
			}
			return nil
		},
	}
}

func setMemoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <description> <category>",
		Short: "Remember a category for a description",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			description, category := args[0], args[1]
			if category == model.CategoryUncategorised {
				return fmt.Errorf("%q is never remembered, use forget instead", category)
			}

			mem, closeStore, err := openMemory(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			mem.Remember(ctx, description, category)
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s → %s", memory.NormalizeKey(description), category)))
			return nil
		},
	}
}

func forgetMemoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forget <description>",
		Short: "Forget a remembered description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			mem, closeStore, err := openMemory(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			key := memory.NormalizeKey(args[0])
			if _, ok := mem.Get(args[0]); !ok {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("nothing remembered for %q", key)))
				return nil
			}
			mem.Remember(ctx, args[0], "")
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("forgot %q", key)))
			return nil
		},
	}
}
