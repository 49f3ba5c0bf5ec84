package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/todayaim/internal/aim"
	"github.com/javiermolinar/todayaim/internal/dateutil"
)

func (a *App) listCmd() *cobra.Command {
	var (
		filter  string
		month   string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List aims grouped by day",
		Long: `List stored aims grouped by calendar day, oldest first.

Without --month every day with a matching aim is listed. The filter
takes the same values as the calendar: all, accomplished or favorited.`,
		Example: `  todayaim list
  todayaim list --month=2025-01
  todayaim list --filter=favorited`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			criterion, err := aim.ParseCriterion(filter)
			if err != nil {
				return err
			}

			aims, err := a.repo.ListAims(context.Background())
			if err != nil {
				return fmt.Errorf("listing aims: %w", err)
			}

			now := a.now()
			idx := aim.BuildDayIndex(aims, now, criterion)
			if month != "" {
				ym, err := dateutil.ParseYearMonth(month)
				if err != nil {
					return err
				}
				idx = idx.InMonth(ym)
			}

			if idx.Len() == 0 {
				fmt.Fprintln(a.out, "No aims found.")
				return nil
			}

			width := 0
			if !verbose {
				width = maxDescWidth(termWidth())
			}
			today := dateutil.KeyFromTime(now)
			for i, key := range idx.Keys() {
				if i > 0 {
					fmt.Fprintln(a.out)
				}
				fmt.Fprintln(a.out, dayHeading(key, today))
				for _, item := range idx.Lookup(key) {
					fmt.Fprintln(a.out, aimRow(item, width))
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "all", "Filter: all, accomplished or favorited")
	cmd.Flags().StringVar(&month, "month", "", "Only list one month (YYYY-MM)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show full aim descriptions")

	return cmd
}
