// Package ui implements the todayaim command line.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/todayaim/internal/aim"
	"github.com/javiermolinar/todayaim/internal/config"
	"github.com/javiermolinar/todayaim/internal/db"
	"github.com/javiermolinar/todayaim/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo       aim.Repository
	ownsRepo   bool // repo was opened by ensureRepo and must be closed
	config     *config.Config
	configPath string
	root       *cobra.Command
	debug      bool // Enable debug logging
	in         io.Reader
	out        io.Writer
	now        func() time.Time
}

// NewApp creates a new CLI application with the given repository and config.
// A nil repository is opened lazily from the configured database path.
func NewApp(repo aim.Repository, cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	a := &App{
		repo:       repo,
		config:     cfg,
		configPath: config.DefaultConfigPath(),
		in:         os.Stdin,
		out:        os.Stdout,
		now:        time.Now,
	}

	a.root = &cobra.Command{
		Use:   "todayaim",
		Short: "A calendar of daily aims",
		Long: `todayaim keeps short goals pinned to calendar days.

Run without arguments to open the month calendar. Use the subcommands
to add, list and update aims from scripts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			return tui.RunWithDebug(a.repo, a.config, a.debug)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (writes "+tui.DebugLogPath+")")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.deleteCmd())
	a.root.AddCommand(a.doneCmd())
	a.root.AddCommand(a.favoriteCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(a.out, "todayaim %s (commit: %s)\n", Version, Commit)
		},
	}
}

// ensureRepo opens the SQLite store when no repository was injected.
func (a *App) ensureRepo() error {
	if a.repo != nil {
		return nil
	}
	repo, err := db.New(a.config.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	a.repo = repo
	a.ownsRepo = true
	return nil
}

// Close releases the repository if the app opened it.
func (a *App) Close() error {
	if a.repo == nil || !a.ownsRepo {
		return nil
	}
	err := a.repo.Close()
	a.repo = nil
	a.ownsRepo = false
	return err
}

// SetArgs overrides the command line arguments, mainly for tests.
func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
}

// SetOutput redirects command output.
func (a *App) SetOutput(w io.Writer) {
	a.out = w
	a.root.SetOut(w)
	a.root.SetErr(w)
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// parseID parses a positional aim ID.
func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid aim ID %q", s)
	}
	return id, nil
}

// lookupAim fetches an aim, turning a missing row into ErrAimNotFound.
func (a *App) lookupAim(ctx context.Context, id int64) (*aim.Aim, error) {
	found, err := a.repo.GetAim(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching aim: %w", err)
	}
	if found == nil {
		return nil, fmt.Errorf("aim #%d: %w", id, aim.ErrAimNotFound)
	}
	return found, nil
}

// applyCommand runs cmd against the repository with a friendlier not-found error.
func (a *App) applyCommand(ctx context.Context, cmd aim.Command) error {
	if err := a.repo.Apply(ctx, cmd); err != nil {
		if errors.Is(err, aim.ErrAimNotFound) {
			return fmt.Errorf("aim #%d: %w", cmd.ID, aim.ErrAimNotFound)
		}
		return fmt.Errorf("updating aim: %w", err)
	}
	return nil
}
