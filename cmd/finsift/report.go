package main

import (
	"fmt"
	"time"

	"github.com/finsift/finsift/internal/aggregate"
	"github.com/finsift/finsift/internal/cli"
	"github.com/finsift/finsift/internal/filter"
	"github.com/finsift/finsift/internal/model"
	"github.com/spf13/cobra"
)

func reportCmd() *cobra.Command {
	var (
		from        string
		to          string
		search      string
		types       []string
		categories  []string
		paydayDay   int
		paydayMonth int
		paydayYear  int
		chart       string
		save        bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show a filtered transaction report",
		Long: `Render the transactions matching the given filters as a table with totals
and a per-category spending breakdown. With no filter flags the session's
saved filters apply. --payday-day overrides the date range with the pay
period containing that day of the month.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			state, err := loadSession(ctx)
			if err != nil {
				return err
			}

			filters := state.Filters
			filterFlagSet := false
			for _, name := range []string{"from", "to", "search", "type", "category", "payday-day"} {
				if cmd.Flags().Changed(name) {
					filterFlagSet = true
					break
				}
			}
			if filterFlagSet {
				filters = model.FilterState{
					StartDate:  from,
					EndDate:    to,
					SearchTerm: search,
					Types:      types,
					Categories: categories,
				}
			}

			if paydayDay > 0 {
				now := time.Now()
				year, month := paydayYear, time.Month(paydayMonth)
				if year == 0 {
					year = now.Year()
				}
				if paydayMonth == 0 {
					month = now.Month()
				}
				start, end := filter.PaydayRange(year, month, paydayDay)
				filters.StartDate = start.Format(filter.DateLayout)
				filters.EndDate = end.Format(filter.DateLayout)
			}

			view := filter.Apply(state.Transactions, filters)
			filter.SortByDateDesc(view)

			fmt.Print(cli.RenderTransactionTable(view))
			fmt.Println()
			fmt.Print(cli.RenderSummary(aggregate.Summarize(view)))

			totals := aggregate.CategoryDebitTotals(view)
			switch chart {
			case "bar":
				fmt.Println()
				fmt.Print(cli.RenderCategoryBars(totals))
			case "pie":
				fmt.Println()
				fmt.Print(cli.RenderPieLegend(aggregate.PieSlices(totals)))
			case "none":
			default:
				return fmt.Errorf("invalid chart type %q (bar, pie, none)", chart)
			}

			if save {
				mem, closeStore, err := openMemory(ctx)
				if err != nil {
					return err
				}
				defer closeStore()

				state.SetFilters(filters)
				return saveSession(state, mem)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&to, "to", "", "end date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&search, "search", "", "case-insensitive description search")
	cmd.Flags().StringSliceVar(&types, "type", nil, "transaction types to include")
	cmd.Flags().StringSliceVar(&categories, "category", nil, "categories to include")
	cmd.Flags().IntVar(&paydayDay, "payday-day", 0, "day of month pay arrives; sets the date range to that pay period")
	cmd.Flags().IntVar(&paydayMonth, "payday-month", 0, "pay period month (default: current)")
	cmd.Flags().IntVar(&paydayYear, "payday-year", 0, "pay period year (default: current)")
	cmd.Flags().StringVar(&chart, "chart", "bar", "spending breakdown style (bar, pie, none)")
	cmd.Flags().BoolVar(&save, "save", false, "persist these filters as the session filters")

	return cmd
}
