package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/todayaim/internal/aim"
	"github.com/javiermolinar/todayaim/internal/config"
	"github.com/javiermolinar/todayaim/internal/dateutil"
	"github.com/javiermolinar/todayaim/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  todayaim config`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runConfigInteractive()
		},
	}
}

func (a *App) runConfigInteractive() error {
	configPath := a.configPath
	fmt.Fprintf(a.out, "Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	_, fileErr := os.Stat(configPath)
	if os.IsNotExist(fileErr) {
		fmt.Fprintln(a.out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(a.out, "Created %s\n\n", configPath)
	}

	printConfig(a.out, cfg)

	reader := bufio.NewReader(a.in)
	if !promptYesNo(reader, a.out, "\nWould you like to edit the configuration?") {
		return nil
	}

	cfg.Storage.DBPath = promptValue(reader, a.out, "Database path", cfg.Storage.DBPath)
	cfg.UI.Theme = promptTheme(reader, a.out, cfg.UI.Theme)
	cfg.UI.WeekStart = promptChoice(reader, a.out, "Week start (sunday, monday, ...)", cfg.UI.WeekStart, func(v string) error {
		_, err := dateutil.ParseWeekday(v)
		return err
	})
	cfg.Calendar.DefaultFilter = promptChoice(reader, a.out, "Default filter (all, accomplished, favorited)", cfg.Calendar.DefaultFilter, func(v string) error {
		_, err := aim.ParseCriterion(v)
		return err
	})
	cfg.Calendar.DeleteDelay = promptValue(reader, a.out, "Delete delay", cfg.Calendar.DeleteDelay)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(a.out, "\nConfiguration saved!")
	return nil
}

func printConfig(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Current configuration:")
	fmt.Fprintln(w, "──────────────────────")
	fmt.Fprintln(w, "[storage]")
	fmt.Fprintf(w, "  db_path        = %s\n", cfg.Storage.DBPath)
	fmt.Fprintln(w, "\n[ui]")
	fmt.Fprintf(w, "  theme          = %s\n", cfg.UI.Theme)
	fmt.Fprintf(w, "  week_start     = %s\n", cfg.UI.WeekStart)
	fmt.Fprintln(w, "\n[calendar]")
	fmt.Fprintf(w, "  default_filter = %s\n", cfg.Calendar.DefaultFilter)
	fmt.Fprintf(w, "  delete_delay   = %s\n", cfg.Calendar.DeleteDelay)
}

func promptYesNo(reader *bufio.Reader, w io.Writer, question string) bool {
	fmt.Fprintf(w, "%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, w io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(w, "  %s: ", label)
	} else {
		fmt.Fprintf(w, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

// promptChoice repeats the prompt until valid accepts the answer. It gives
// up and keeps current once input runs out.
func promptChoice(reader *bufio.Reader, w io.Writer, label, current string, valid func(string) error) string {
	for {
		value := strings.ToLower(promptValue(reader, w, label, current))
		err := valid(value)
		if err == nil {
			return value
		}
		fmt.Fprintf(w, "  %v\n", err)
		if _, peekErr := reader.Peek(1); peekErr != nil {
			return current
		}
	}
}

func promptTheme(reader *bufio.Reader, w io.Writer, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	return promptChoice(reader, w, label, current, func(v string) error {
		if !theme.IsAvailable(v) {
			return fmt.Errorf("invalid theme %q. Available: %s", v, options)
		}
		return nil
	})
}
