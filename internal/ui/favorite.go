package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/todayaim/internal/aim"
	"github.com/javiermolinar/todayaim/internal/calendar"
)

func (a *App) favoriteCmd() *cobra.Command {
	var off bool

	cmd := &cobra.Command{
		Use:     "favorite [aim-id]",
		Aliases: []string{"star"},
		Short:   "Star an accomplished aim",
		Long: `Add an accomplished aim to favorites, or remove it with --off.

Only accomplished aims can be starred.

Example:
  todayaim favorite 42
  todayaim favorite 42 --off`,
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
			if !off && !target.CanFavorite() {
				return fmt.Errorf("aim #%d: %w", id, calendar.ErrNotAccomplished)
			}
			if err := a.applyCommand(ctx, aim.FavoriteCommand(id, !off)); err != nil {
				return err
			}

			if off {
				fmt.Fprintf(a.out, "Unstarred aim #%d: %s\n", id, target.Description)
			} else {
				fmt.Fprintf(a.out, "Starred aim #%d: %s\n", id, target.Description)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&off, "off", false, "Remove the aim from favorites")
	return cmd
}
