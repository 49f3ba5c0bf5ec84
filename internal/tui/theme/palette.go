package theme

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
)

// Palette holds the resolved colors the calendar renders with.
type Palette struct {
	Bg           lipgloss.Color
	BgHighlight  lipgloss.Color
	BgSelection  lipgloss.Color
	Fg           lipgloss.Color
	FgMuted      lipgloss.Color
	Accent       lipgloss.Color
	Accomplished lipgloss.Color
	Pending      lipgloss.Color
	Today        lipgloss.Color
	Favorite     lipgloss.Color

	FocusedBg       lipgloss.Color // cell of the focused day
	OutsideFg       lipgloss.Color // days from adjacent months
	TextOnSelection lipgloss.Color

	Modal ModalColors
}

// ModalColors holds the colors of the help and quick-add modals.
type ModalColors struct {
	Bg          lipgloss.Color
	Border      lipgloss.AdaptiveColor
	Text        lipgloss.AdaptiveColor
	Muted       lipgloss.AdaptiveColor
	Highlight   lipgloss.AdaptiveColor
	ReverseText lipgloss.AdaptiveColor
}

// NewPalette derives a Palette from t. A nil theme uses mocha.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t, _ = Load("mocha")
	}

	modal := t.Modal()
	modalBg := coalesce(modal.BaseBg, t.BgHighlight, t.Bg)
	modalText := coalesce(modal.TextPrimary, t.Fg)

	return &Palette{
		Bg:           lipgloss.Color(t.Bg),
		BgHighlight:  lipgloss.Color(t.BgHighlight),
		BgSelection:  lipgloss.Color(t.BgSelection),
		Fg:           lipgloss.Color(t.Fg),
		FgMuted:      lipgloss.Color(t.FgMuted),
		Accent:       lipgloss.Color(t.Accent),
		Accomplished: lipgloss.Color(t.Accomplished),
		Pending:      lipgloss.Color(t.Pending),
		Today:        lipgloss.Color(t.Today),
		Favorite:     lipgloss.Color(t.Favorite),

		FocusedBg:       lipgloss.Color(focusedBg(t.Accent, t.Bg)),
		OutsideFg:       lipgloss.Color(blendColors(t.FgMuted, t.Bg, 0.45)),
		TextOnSelection: lipgloss.Color(chooseTextColor(t.BgSelection, t.Bg, t.Fg)),

		Modal: ModalColors{
			Bg:          lipgloss.Color(modalBg),
			Border:      fixedColor(modal.ModalBorder),
			Text:        fixedColor(modalText),
			Muted:       fixedColor(modal.TextMuted),
			Highlight:   fixedColor(modal.Highlight),
			ReverseText: lipgloss.AdaptiveColor{Dark: modalBg, Light: modalText},
		},
	}
}

// focusedBg tints the base background with the accent: a dim shade on dark
// themes and a pale wash on light ones.
func focusedBg(accent, bg string) string {
	if relativeLuminance(bg) > 0.55 {
		return blendColors(accent, bg, 0.88)
	}
	return muteColor(accent)
}

func fixedColor(hex string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: hex, Light: hex}
}

// rgb is a parsed #rrggbb color.
type rgb struct {
	r, g, b float64
}

func parseRGB(hex string) (rgb, bool) {
	if len(hex) != 7 || hex[0] != '#' {
		return rgb{}, false
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return rgb{}, false
	}
	return rgb{float64(r), float64(g), float64(b)}, true
}

func (c rgb) hex() string {
	clamp := func(v float64) uint8 {
		return uint8(math.Max(0, math.Min(255, v)))
	}
	return fmt.Sprintf("#%02x%02x%02x", clamp(c.r), clamp(c.g), clamp(c.b))
}

// scale multiplies each channel by f, keeping it at least floor.
func (c rgb) scale(f, floor float64) rgb {
	ch := func(v float64) float64 { return math.Max(math.Floor(v*f), floor) }
	return rgb{ch(c.r), ch(c.g), ch(c.b)}
}

func (c rgb) mix(o rgb, ratio float64) rgb {
	ch := func(a, b float64) float64 { return math.Floor(a*(1-ratio) + b*ratio) }
	return rgb{ch(c.r, o.r), ch(c.g, o.g), ch(c.b, o.b)}
}

func (c rgb) luminance() float64 {
	lin := func(v float64) float64 {
		v /= 255
		if v <= 0.04045 {
			return v / 12.92
		}
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return 0.2126*lin(c.r) + 0.7152*lin(c.g) + 0.0722*lin(c.b)
}

// muteColor returns a heavily darkened shade of hex for backgrounds.
// Non-hex input is returned unchanged.
func muteColor(hex string) string {
	c, ok := parseRGB(hex)
	if !ok {
		return hex
	}
	return c.scale(0.30, 30).hex()
}

// blendColors mixes b into a by ratio, clamped to [0, 1].
func blendColors(a, b string, ratio float64) string {
	ca, okA := parseRGB(a)
	cb, okB := parseRGB(b)
	if !okA || !okB {
		return a
	}
	return ca.mix(cb, math.Max(0, math.Min(1, ratio))).hex()
}

func relativeLuminance(hex string) float64 {
	c, ok := parseRGB(hex)
	if !ok {
		return 0
	}
	return c.luminance()
}

func contrastRatio(a, b string) float64 {
	l1, l2 := relativeLuminance(a), relativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// chooseTextColor picks whichever candidate reads better on bg.
func chooseTextColor(bg, lightText, darkText string) string {
	if contrastRatio(bg, lightText) >= contrastRatio(bg, darkText) {
		return lightText
	}
	return darkText
}
