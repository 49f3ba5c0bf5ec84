// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/todayaim/internal/aim"
	"github.com/javiermolinar/todayaim/internal/dateutil"
)

// Config holds the application configuration.
type Config struct {
	Storage  StorageConfig  `toml:"storage"`
	UI       UIConfig       `toml:"ui"`
	Calendar CalendarConfig `toml:"calendar"`
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme     string `toml:"theme"`      // "mocha", "macchiato", "frappe", "latte", "light"
	WeekStart string `toml:"week_start"` // "sunday" or "monday"
}

// CalendarConfig holds calendar behaviour settings.
type CalendarConfig struct {
	DefaultFilter string `toml:"default_filter"` // "all", "accomplished", "favorited"
	DeleteDelay   string `toml:"delete_delay"`   // e.g., "400ms"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme:     "frappe",
			WeekStart: "sunday",
		},
		Calendar: CalendarConfig{
			DefaultFilter: "all",
			DeleteDelay:   "400ms",
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "todayaim.db"
	}
	return filepath.Join(home, ".local", "share", "todayaim", "todayaim.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "todayaim", "config.toml")
}

// LoadDotEnv loads environment variables from .env files. Missing files
// are ignored and variables already set in the environment win.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading %s: %w", p, err)
		}
	}
	return nil
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile overlays the TOML file at path onto cfg. A missing file is
// not an error.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// envOverrides maps environment variables onto config fields.
func envOverrides(cfg *Config) map[string]*string {
	return map[string]*string{
		"TODAYAIM_DB_PATH":        &cfg.Storage.DBPath,
		"TODAYAIM_UI_THEME":       &cfg.UI.Theme,
		"TODAYAIM_WEEK_START":     &cfg.UI.WeekStart,
		"TODAYAIM_DEFAULT_FILTER": &cfg.Calendar.DefaultFilter,
		"TODAYAIM_DELETE_DELAY":   &cfg.Calendar.DeleteDelay,
	}
}

// applyEnvOverrides lets non-empty environment variables win over the file.
func applyEnvOverrides(cfg *Config) {
	for name, field := range envOverrides(cfg) {
		if v, ok := os.LookupEnv(name); ok && v != "" {
			*field = v
		}
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	if _, err := dateutil.ParseWeekday(c.UI.WeekStart); err != nil {
		return fmt.Errorf("week_start: %w", err)
	}
	if _, err := aim.ParseCriterion(c.Calendar.DefaultFilter); err != nil {
		return fmt.Errorf("default_filter: %w", err)
	}
	d, err := time.ParseDuration(c.Calendar.DeleteDelay)
	if err != nil {
		return fmt.Errorf("delete_delay must be a duration like \"400ms\", got %q", c.Calendar.DeleteDelay)
	}
	if d < 0 {
		return errors.New("delete_delay cannot be negative")
	}
	return nil
}

// WeekStart returns the first column of the month grid.
func (c *Config) WeekStart() time.Weekday {
	day, err := dateutil.ParseWeekday(c.UI.WeekStart)
	if err != nil {
		return time.Sunday
	}
	return day
}

// DefaultFilter returns the filter the calendar opens with.
func (c *Config) DefaultFilter() aim.Criterion {
	criterion, err := aim.ParseCriterion(c.Calendar.DefaultFilter)
	if err != nil {
		return aim.CriterionAll
	}
	return criterion
}

// DeleteDelay returns how long a requested delete waits before committing.
func (c *Config) DeleteDelay() time.Duration {
	d, err := time.ParseDuration(c.Calendar.DeleteDelay)
	if err != nil || d < 0 {
		return 400 * time.Millisecond
	}
	return d
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
