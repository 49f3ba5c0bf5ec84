package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/todayaim/internal/aim"
)

func (a *App) doneCmd() *cobra.Command {
	var undo bool

	cmd := &cobra.Command{
		Use:   "done [aim-id]",
		Short: "Mark an aim as accomplished",
		Long: `Mark an aim as accomplished, or pending again with --undo.

Undoing also removes the aim from favorites.

Example:
  todayaim done 42
  todayaim done 42 --undo`,
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
			if err := a.applyCommand(ctx, aim.AccomplishCommand(id, !undo)); err != nil {
				return err
			}

			if undo {
				fmt.Fprintf(a.out, "Reopened aim #%d: %s\n", id, target.Description)
			} else {
				fmt.Fprintf(a.out, "Accomplished aim #%d: %s\n", id, target.Description)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&undo, "undo", false, "Mark the aim as pending again")
	return cmd
}
