// Package tui provides an interactive terminal UI for dictionary lookups.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/f3rmion/liveocr/internal/dict"
)

// Color palette
var (
	ColorPrimary = lipgloss.Color("#FF6B6B") // Red - titles, errors
	ColorAccent  = lipgloss.Color("#ffe66d") // Yellow - headwords
	ColorMuted   = lipgloss.Color("#666666") // Gray - help text
	ColorText    = lipgloss.Color("#f1faee") // Light text
	ColorBg      = lipgloss.Color("#1a1a2e") // Dark background
	ColorBorder  = lipgloss.Color("#3d5a80") // Border color
)

// Tone colors, one per Mandarin tone. The neutral tone is gray.
var toneColors = map[dict.Tone]lipgloss.Color{
	dict.ToneFirst:  lipgloss.Color("#E30000"),
	dict.ToneSecond: lipgloss.Color("#02B31C"),
	dict.ToneThird:  lipgloss.Color("#1510F0"),
	dict.ToneFourth: lipgloss.Color("#8900BF"),
	dict.ToneFifth:  lipgloss.Color("#777777"),
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Background(ColorBg).
			Padding(0, 1)

	headwordStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	traditionalStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	translationStyle = lipgloss.NewStyle().
				Foreground(ColorText)

	entryBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	errorStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	copiedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8e6cf")).
			Bold(true)
)

// renderPinyin colors each syllable by its tone.
func renderPinyin(syllables []dict.Pinyin) string {
	out := ""
	for i, p := range syllables {
		if i > 0 {
			out += " "
		}
		style := lipgloss.NewStyle().Bold(true)
		if c, ok := toneColors[p.Tone]; ok {
			style = style.Foreground(c)
		}
		out += style.Render(p.Syllable)
	}
	return out
}
