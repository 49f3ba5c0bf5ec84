package tui

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/todayaim/internal/dateutil"
)

// DebugLogPath is the fixed path for debug logs
const DebugLogPath = "todayaim-debug.log"

var (
	debugMu   sync.Mutex
	debugFile *os.File
	debugLog  = slog.New(slog.DiscardHandler)
	debugOn   bool
)

// InitDebugLogger initializes the debug logger if debug mode is enabled.
// Entries are JSON lines written to DebugLogPath in the working directory.
func InitDebugLogger(enabled bool) error {
	debugMu.Lock()
	defer debugMu.Unlock()

	if !enabled {
		debugLog = slog.New(slog.DiscardHandler)
		debugOn = false
		return nil
	}

	f, err := os.Create(DebugLogPath)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}
	debugFile = f
	debugLog = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	debugOn = true

	debugLog.Debug("DEBUG_START", "log_file", DebugLogPath, "time", time.Now().Format(time.RFC3339))
	return nil
}

// CloseDebugLogger closes the debug log file.
func CloseDebugLogger() {
	debugMu.Lock()
	defer debugMu.Unlock()

	if debugFile == nil {
		return
	}
	debugLog.Debug("DEBUG_END", "time", time.Now().Format(time.RFC3339))
	_ = debugFile.Close()
	debugFile = nil
	debugLog = slog.New(slog.DiscardHandler)
	debugOn = false
}

// DebugLogger returns the debug logger. It discards everything unless
// debug mode is enabled.
func DebugLogger() *slog.Logger {
	debugMu.Lock()
	defer debugMu.Unlock()
	return debugLog
}

func debugEnabled() bool {
	debugMu.Lock()
	defer debugMu.Unlock()
	return debugOn
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg) {
	if !debugEnabled() {
		return
	}
	DebugLogger().Debug("KEY_PRESS", "key", msg.String(), "type", msg.Type.String())
}

// LogModeChange logs a mode change.
func LogModeChange(from, to Mode, reason string) {
	if !debugEnabled() || from == to {
		return
	}
	DebugLogger().Debug("MODE_CHANGE", "from", from.String(), "to", to.String(), "reason", reason)
}

// LogCursorMove logs cursor movement.
func LogCursorMove(day dateutil.DateKey, reason string) {
	if !debugEnabled() {
		return
	}
	DebugLogger().Debug("CURSOR_MOVE", "day", day.String(), "reason", reason)
}

// LogError logs an error.
func LogError(context string, err error) {
	if !debugEnabled() || err == nil {
		return
	}
	DebugLogger().Error("ERROR", "context", context, "error", err.Error())
}
