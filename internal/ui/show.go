package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/todayaim/internal/aim"
	"github.com/javiermolinar/todayaim/internal/dateutil"
)

func (a *App) showCmd() *cobra.Command {
	var (
		month   string
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a month summary",
		Long: `Display how many aims a month holds and how many were accomplished.

Defaults to the current month. Use 'todayaim list' for the aims themselves.`,
		Example: `  todayaim show
  todayaim show --month=2025-01`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			now := a.now()
			ym := dateutil.CurrentYearMonth(now)
			if month != "" {
				parsed, err := dateutil.ParseYearMonth(month)
				if err != nil {
					return err
				}
				ym = parsed
			}

			aims, err := a.repo.ListAims(context.Background())
			if err != nil {
				return fmt.Errorf("fetching aims: %w", err)
			}

			idx := aim.BuildDayIndex(aims, now, aim.CriterionAll).InMonth(ym)
			fmt.Fprintf(a.out, "=== %s ===\n\n", formatHeader(ym.Long()))

			summary := aim.Summarize(idx)
			if summary.Total == 0 {
				fmt.Fprintln(a.out, "No aims this month.")
				return nil
			}

			printSummary(a, summary)
			fmt.Fprintf(a.out, "\nProgress: %s\n", progressBar(summary.Accomplished, summary.Total, 20))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Month to summarize (YYYY-MM, default: current)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

func printSummary(a *App, s aim.Summary) {
	days := "days"
	if s.Days == 1 {
		days = "day"
	}
	fmt.Fprintf(a.out, "  Aims:          %d on %d %s\n", s.Total, s.Days, days)
	fmt.Fprintf(a.out, "  Accomplished:  %s\n", formatStats(fmt.Sprintf("%d (%d%%)", s.Accomplished, s.AccomplishedPercent())))
	fmt.Fprintf(a.out, "  Favorited:     %d\n", s.Favorited)
	fmt.Fprintf(a.out, "  Busiest day:   %s (%d)\n", s.BusiestDay.Time(nil).Format("Mon, Jan 2"), s.BusiestCount)
}
