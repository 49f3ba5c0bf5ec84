package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/todayaim/internal/aim"
)

func (a *App) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete [aim-id]",
		Aliases: []string{"rm"},
		Short:   "Delete an aim",
		Long: `Delete an aim by its ID.

Example:
  todayaim delete 42`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()
			target, err := a.lookupAim(ctx, id)
			if err != nil {
				return err
			}
			if err := a.applyCommand(ctx, aim.DeleteCommand(id)); err != nil {
				return err
			}

			fmt.Fprintf(a.out, "Deleted aim #%d: %s\n", id, target.Description)
			return nil
		},
	}
}
