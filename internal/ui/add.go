package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/todayaim/internal/aim"
	"github.com/javiermolinar/todayaim/internal/dateutil"
)

func (a *App) addCmd() *cobra.Command {
	var (
		day  string
		done bool
	)

	cmd := &cobra.Command{
		Use:   "add [description]",
		Short: "Add an aim to a day",
		Long: `Add a new aim to a calendar day.

The day defaults to today. It accepts "today", "tomorrow", "yesterday",
a relative offset such as "+3" or "-1", a weekday name (next occurrence)
or an absolute date in YYYY-MM-DD format.`,
		Example: `  todayaim add "Stretch for ten minutes"
  todayaim add "Ship release" --day=friday
  todayaim add "Review notes" --day=+2 --done`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			now := a.now()
			offset, err := dateutil.ParseDayOffset(day, now)
			if err != nil {
				return err
			}

			created, err := aim.New(strings.Join(args, " "), offset)
			if err != nil {
				return err
			}

			ctx := context.Background()
			if err := a.repo.CreateAim(ctx, created); err != nil {
				return fmt.Errorf("creating aim: %w", err)
			}
			if done {
				if err := a.applyCommand(ctx, aim.AccomplishCommand(created.ID, true)); err != nil {
					return err
				}
			}

			fmt.Fprintf(a.out, "Added aim #%d for %s: %s\n",
				created.ID,
				created.Day(now).Time(nil).Format("Mon, Jan 2 2006"),
				created.Description,
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&day, "day", "today", "Day of the aim (today, tomorrow, +N, weekday or YYYY-MM-DD)")
	cmd.Flags().BoolVar(&done, "done", false, "Mark the aim as accomplished right away")

	return cmd
}
