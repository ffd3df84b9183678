// Package cjk classifies runes against the CJK unicode blocks relevant to
// screen text segmentation and dictionary lookup.
package cjk

import "unicode"

// rangeCJK covers the blocks treated as "CJK" when filtering detected lines.
// Punctuation and fullwidth blocks are included here on purpose: a line ending
// in 。or ！ is still a CJK line, the punctuation is stripped afterwards.
var rangeCJK = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x2e80, Hi: 0x2eff, Stride: 1}, // CJK Radicals Supplement
		{Lo: 0x2f00, Hi: 0x2fdf, Stride: 1}, // Kangxi Radicals
		{Lo: 0x3000, Hi: 0x303f, Stride: 1}, // CJK Symbols and Punctuation
		{Lo: 0x31c0, Hi: 0x31ef, Stride: 1}, // CJK Strokes
		{Lo: 0x3200, Hi: 0x32ff, Stride: 1}, // Enclosed CJK Letters and Months
		{Lo: 0x3300, Hi: 0x33ff, Stride: 1}, // CJK Compatibility
		{Lo: 0x3400, Hi: 0x4dbf, Stride: 1}, // CJK Unified Ideographs Extension A
		{Lo: 0x4e00, Hi: 0x9fff, Stride: 1}, // CJK Unified Ideographs
		{Lo: 0xf900, Hi: 0xfaff, Stride: 1}, // CJK Compatibility Ideographs
		{Lo: 0xfe30, Hi: 0xfe4f, Stride: 1}, // CJK Compatibility Forms
		{Lo: 0xff00, Hi: 0xffef, Stride: 1}, // Halfwidth and Fullwidth Forms
	},
	R32: []unicode.Range32{
		{Lo: 0x20000, Hi: 0x2a6df, Stride: 1}, // Extension B
		{Lo: 0x2a700, Hi: 0x2ebef, Stride: 1}, // Extensions C-F
		{Lo: 0x2f800, Hi: 0x2fa1f, Stride: 1}, // Compatibility Ideographs Supplement
		{Lo: 0x30000, Hi: 0x3134f, Stride: 1}, // Extension G
	},
}

// Is reports whether r belongs to a CJK block, punctuation included.
func Is(r rune) bool {
	return unicode.Is(rangeCJK, r)
}

// IsPunct reports whether r is CJK punctuation: the CJK Symbols and
// Punctuation block or the Halfwidth and Fullwidth Forms block.
func IsPunct(r rune) bool {
	return (r >= 0x3000 && r <= 0x303f) || (r >= 0xff00 && r <= 0xffef)
}

// IsLine reports whether text qualifies as a CJK line: non-empty after
// trimming and composed entirely of CJK runes. Mixed-script lines are
// rejected wholesale rather than partially segmented.
func IsLine(text string) bool {
	runes := []rune(text)
	if len(runes) == 0 {
		return false
	}
	for _, r := range runes {
		if !Is(r) {
			return false
		}
	}
	return true
}

// StripTrailing removes trailing runes that are either non-CJK or CJK
// punctuation. Detected lines often end in 。、！ or stray latin characters;
// those glyphs get no character box.
func StripTrailing(text string) string {
	runes := []rune(text)
	end := len(runes)
	for end > 0 {
		r := runes[end-1]
		if Is(r) && !IsPunct(r) {
			break
		}
		end--
	}
	return string(runes[:end])
}

// LongestRun returns the maximal run of contiguous CJK, non-punctuation runes
// in text starting at rune index from. The run is what gets looked up in the
// dictionary when the character at from is hovered.
func LongestRun(text string, from int) string {
	runes := []rune(text)
	if from < 0 || from >= len(runes) {
		return ""
	}
	end := from
	for end < len(runes) && Is(runes[end]) && !IsPunct(runes[end]) {
		end++
	}
	return string(runes[from:end])
}
