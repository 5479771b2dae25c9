package main

import (
	"fmt"

	"github.com/finsift/finsift/internal/cli"
	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage the category vocabulary",
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Long:  `Display every known category, alphabetically with Uncategorised first.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := loadSession(cmd.Context())
			if err != nil {
				return err
			}
			for _, name := range state.SortedCategories() {
				fmt.Println(name)
			}
			return nil
		},
	}
}

func addCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := args[0]

			mem, closeStore, err := openMemory(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			state, err := loadSession(ctx)
			if err != nil {
				return err
			}

			if state.HasCategory(name) {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("category %q already exists", name)))
				return nil
			}
			state.RegisterCategory(name)
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("added category %q", name)))
			return saveSession(state, mem)
		},
	}
}
