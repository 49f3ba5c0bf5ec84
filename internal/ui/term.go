package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/javiermolinar/todayaim/internal/aim"
	"github.com/javiermolinar/todayaim/internal/dateutil"
)

// Color definitions for consistent styling across the UI.
var (
	// Accomplished aims: bold green
	colorAccomplished = color.New(color.FgGreen, color.Bold)

	// Pending aims: cyan
	colorPending = color.New(color.FgCyan)

	// Favorites: yellow star
	colorFavorite = color.New(color.FgYellow)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Stats: green for positive metrics
	colorStats = color.New(color.FgGreen)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

func formatStats(s string) string {
	return colorStats.Sprint(s)
}

func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}

// statusSymbol returns the checkbox marker for an aim.
func statusSymbol(a aim.Aim) string {
	if a.Accomplished {
		return colorAccomplished.Sprint("✓")
	}
	return colorPending.Sprint("○")
}

// favoriteMarker returns a star for favorited aims and padding otherwise.
func favoriteMarker(a aim.Aim) string {
	if a.Favorited {
		return colorFavorite.Sprint("★")
	}
	return " "
}

// dayHeading formats a day for grouped listings.
func dayHeading(key dateutil.DateKey, today dateutil.DateKey) string {
	label := key.Time(nil).Format("Mon, Jan 2 2006")
	switch dateutil.DaysBetween(today, key) {
	case 0:
		label += " (today)"
	case 1:
		label += " (tomorrow)"
	case -1:
		label += " (yesterday)"
	}
	return "=== " + formatHeader(label) + " ==="
}

// aimRow formats one aim line, truncating the description to maxDescWidth cells.
func aimRow(a aim.Aim, maxDescWidth int) string {
	desc := a.Description
	if maxDescWidth > 0 {
		desc = runewidth.Truncate(desc, maxDescWidth, "…")
	}
	return fmt.Sprintf("  %s %s %s %s", statusSymbol(a), formatMuted(fmt.Sprintf("#%-3d", a.ID)), favoriteMarker(a), desc)
}

// maxDescWidth returns how much room a description gets on a row.
func maxDescWidth(width int) int {
	// "  ✓ #123 ★ " prefix
	const prefix = 11
	if width-prefix < 20 {
		return 20
	}
	return width - prefix
}

// progressBar renders an accomplished/total bar.
func progressBar(done, total, width int) string {
	if total == 0 {
		return "[" + strings.Repeat("░", width) + "] (0% done)"
	}

	pct := (done * 100) / total
	filled := (done * width) / total

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %s", colorAccomplished.Sprint(bar), formatStats(fmt.Sprintf("(%d%% done)", pct)))
}
