package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/javiermolinar/todayaim/internal/aim"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.UI.Theme != "frappe" {
		t.Errorf("expected theme frappe, got %s", cfg.UI.Theme)
	}
	if cfg.WeekStart() != time.Sunday {
		t.Errorf("expected week start sunday, got %v", cfg.WeekStart())
	}
	if cfg.DefaultFilter() != aim.CriterionAll {
		t.Errorf("expected default filter all, got %v", cfg.DefaultFilter())
	}
	if cfg.DeleteDelay() != 400*time.Millisecond {
		t.Errorf("expected delete delay 400ms, got %v", cfg.DeleteDelay())
	}
	if !strings.HasSuffix(cfg.Storage.DBPath, "todayaim.db") {
		t.Errorf("unexpected db path %s", cfg.Storage.DBPath)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Should return defaults
	if cfg.Calendar.DefaultFilter != "all" {
		t.Errorf("expected default filter, got %s", cfg.Calendar.DefaultFilter)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[storage]
db_path = "/tmp/test.db"

[ui]
theme = "latte"
week_start = "monday"

[calendar]
default_filter = "favorited"
delete_delay = "1s"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Storage.DBPath != "/tmp/test.db" {
		t.Errorf("expected db_path /tmp/test.db, got %s", cfg.Storage.DBPath)
	}
	if cfg.UI.Theme != "latte" {
		t.Errorf("expected theme latte, got %s", cfg.UI.Theme)
	}
	if cfg.WeekStart() != time.Monday {
		t.Errorf("expected monday, got %v", cfg.WeekStart())
	}
	if cfg.DefaultFilter() != aim.CriterionFavorited {
		t.Errorf("expected favorited, got %v", cfg.DefaultFilter())
	}
	if cfg.DeleteDelay() != time.Second {
		t.Errorf("expected 1s, got %v", cfg.DeleteDelay())
	}
}

func TestLoadFrom_PartialFileKeepsDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("[ui]\ntheme = \"mocha\"\n"), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.UI.Theme != "mocha" {
		t.Errorf("expected theme mocha, got %s", cfg.UI.Theme)
	}
	if cfg.UI.WeekStart != "sunday" {
		t.Errorf("expected default week start, got %s", cfg.UI.WeekStart)
	}
	if cfg.Calendar.DeleteDelay != "400ms" {
		t.Errorf("expected default delete delay, got %s", cfg.Calendar.DeleteDelay)
	}
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("[ui\ntheme = "), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadFrom(configPath); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	t.Setenv("TODAYAIM_DB_PATH", "/tmp/env.db")
	t.Setenv("TODAYAIM_UI_THEME", "macchiato")
	t.Setenv("TODAYAIM_WEEK_START", "Monday")
	t.Setenv("TODAYAIM_DEFAULT_FILTER", "accomplished")
	t.Setenv("TODAYAIM_DELETE_DELAY", "0s")

	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Storage.DBPath != "/tmp/env.db" {
		t.Errorf("expected db_path from env, got %s", cfg.Storage.DBPath)
	}
	if cfg.UI.Theme != "macchiato" {
		t.Errorf("expected theme from env, got %s", cfg.UI.Theme)
	}
	if cfg.WeekStart() != time.Monday {
		t.Errorf("expected monday from env, got %v", cfg.WeekStart())
	}
	if cfg.DefaultFilter() != aim.CriterionAccomplished {
		t.Errorf("expected accomplished from env, got %v", cfg.DefaultFilter())
	}
	if cfg.DeleteDelay() != 0 {
		t.Errorf("expected zero delay from env, got %v", cfg.DeleteDelay())
	}
}

func TestLoadFrom_InvalidEnvOverride(t *testing.T) {
	t.Setenv("TODAYAIM_DEFAULT_FILTER", "starred")

	if _, err := LoadFrom("/nonexistent/path/config.toml"); err == nil {
		t.Error("expected validation error for unknown filter")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"empty db path", func(c *Config) { c.Storage.DBPath = "" }, true},
		{"monday start", func(c *Config) { c.UI.WeekStart = "monday" }, false},
		{"invalid week start", func(c *Config) { c.UI.WeekStart = "someday" }, true},
		{"favorited filter", func(c *Config) { c.Calendar.DefaultFilter = "Favorited" }, false},
		{"invalid filter", func(c *Config) { c.Calendar.DefaultFilter = "done" }, true},
		{"zero delay", func(c *Config) { c.Calendar.DeleteDelay = "0s" }, false},
		{"invalid delay", func(c *Config) { c.Calendar.DeleteDelay = "soon" }, true},
		{"negative delay", func(c *Config) { c.Calendar.DeleteDelay = "-1s" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("cannot get home directory")
	}

	tests := []struct {
		input    string
		expected string
	}{
		{"~/test.db", filepath.Join(home, "test.db")},
		{"/absolute/path.db", "/absolute/path.db"},
		{"relative/path.db", "relative/path.db"},
	}

	for _, tt := range tests {
		result := expandPath(tt.input)
		if result != tt.expected {
			t.Errorf("expandPath(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestSaveAndLoad(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.Storage.DBPath = "/tmp/saved.db"
	cfg.UI.WeekStart = "monday"
	cfg.Calendar.DefaultFilter = "accomplished"
	cfg.Calendar.DeleteDelay = "250ms"

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if *loaded != *cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", *loaded, *cfg)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	content := "TODAYAIM_UI_THEME=latte\nTODAYAIM_WEEK_START=monday\n"
	if err := os.WriteFile(envPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}

	// Explicit environment wins over the file.
	t.Setenv("TODAYAIM_WEEK_START", "sunday")
	// Register cleanup for the variable the file sets.
	t.Setenv("TODAYAIM_UI_THEME", "")
	_ = os.Unsetenv("TODAYAIM_UI_THEME")

	if err := LoadDotEnv(filepath.Join(dir, "missing.env"), envPath); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := os.Getenv("TODAYAIM_UI_THEME"); got != "latte" {
		t.Errorf("expected theme from .env, got %q", got)
	}
	if got := os.Getenv("TODAYAIM_WEEK_START"); got != "sunday" {
		t.Errorf("expected existing env to win, got %q", got)
	}
}
