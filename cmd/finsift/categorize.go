package main

import (
	"fmt"

	"github.com/finsift/finsift/internal/aggregate"
	"github.com/finsift/finsift/internal/cli"
	"github.com/finsift/finsift/internal/filter"
	"github.com/spf13/cobra"
)

func categorizeCmd() *cobra.Command {
	var (
		category    string
		ids         []string
		allFiltered bool
	)

	cmd := &cobra.Command{
		Use:   "categorize",
		Short: "Assign a category to transactions",
		Long: `Assign a category to specific transactions by id, or to everything the
active filters currently match. Each assignment is remembered, so future
imports of the same description pick the category up automatically.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if category == "" {
				return fmt.Errorf("--category is required")
			}
			if len(ids) == 0 && !allFiltered {
				return fmt.Errorf("provide --ids or --all-filtered")
			}
			if len(ids) > 0 && allFiltered {
				return fmt.Errorf("--ids and --all-filtered are mutually exclusive")
			}

			mem, closeStore, err := openMemory(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			state, err := loadSession(ctx)
			if err != nil {
				return err
			}

			applied := 0
			if allFiltered {
				view := filter.Apply(state.Transactions, state.Filters)
				state.SelectAll(view, true)
				applied = state.BulkCategorize(ctx, category, mem)
				state.ClearSelection()
			} else {
				for _, id := range ids {
					if err := state.SetCategory(ctx, id, category, mem); err != nil {
						return fmt.Errorf("unknown transaction %q", id)
					}
					applied++
				}
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("categorized %d transactions as %s", applied, category)))
			return saveSession(state, mem)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "category to assign")
	cmd.Flags().StringSliceVar(&ids, "ids", nil, "transaction ids to categorize")
	cmd.Flags().BoolVar(&allFiltered, "all-filtered", false, "categorize everything the active filters match")

	cmd.AddCommand(suggestCmd())
	return cmd
}

func suggestCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "suggest [query]",
		Short: "Suggest descriptions worth categorizing",
		Long: `Rank the distinct transaction descriptions by how often they occur,
preferring prefix matches of the query over substring matches.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := loadSession(cmd.Context())
			if err != nil {
				return err
			}

			query := ""
			if len(args) > 0 {
				query = args[0]
			}

			suggestions := aggregate.DescriptionSuggestions(state.Transactions, query, limit)
			if len(suggestions) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No matching descriptions."))
				return nil
			}
			for _, s := range suggestions {
				fmt.Printf("%4d  %s\n", s.Count, s.Description)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", aggregate.DefaultSuggestionLimit, "maximum suggestions to show")
	return cmd
}
