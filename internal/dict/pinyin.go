package dict

import (
	"strings"
	"unicode"
)

// toneMarks maps a base vowel to its decorated form per tone. The second-tone
// ḿ covers interjections like m2; tone four leaves a bare m unchanged, which
// matches how reference dictionary data renders it.
var toneMarks = map[Tone]map[rune]rune{
	ToneFirst: {
		'a': 'ā', 'e': 'ē', 'i': 'ī', 'o': 'ō', 'u': 'ū', 'ü': 'ǖ',
	},
	ToneSecond: {
		'a': 'á', 'e': 'é', 'i': 'í', 'o': 'ó', 'u': 'ú', 'ü': 'ǘ', 'm': 'ḿ',
	},
	ToneThird: {
		'a': 'ǎ', 'e': 'ě', 'i': 'ǐ', 'o': 'ǒ', 'u': 'ǔ', 'ü': 'ǚ',
	},
	ToneFourth: {
		'a': 'à', 'e': 'è', 'i': 'ì', 'o': 'ò', 'u': 'ù', 'ü': 'ǜ',
	},
}

// mark returns the decorated form of ch under tone t, or ch itself when the
// tone carries no diacritic (fifth/neutral) or the rune has no decorated form.
func (t Tone) mark(ch rune) rune {
	if m, ok := toneMarks[t]; ok {
		if decorated, ok := m[ch]; ok {
			return decorated
		}
	}
	return ch
}

// ParsePinyin splits a numeral-toned pinyin string ("ni3 hao3") on spaces and
// converts each syllable to its diacritic display form. A syllable without a
// trailing tone digit is passed through unmodified with ToneNone.
func ParsePinyin(raw string) []Pinyin {
	fields := strings.Split(strings.TrimSpace(raw), " ")
	out := make([]Pinyin, 0, len(fields))
	for _, syl := range fields {
		out = append(out, parseSyllable(syl))
	}
	return out
}

func parseSyllable(syl string) Pinyin {
	tone := toneDigit(syl)
	if tone == ToneNone {
		return Pinyin{Syllable: syl, Tone: ToneNone}
	}
	normalized := NormalizeSyllable(syl)
	return Pinyin{Syllable: ApplyTone(normalized, tone), Tone: tone}
}

// toneDigit reads the trailing tone digit, returning ToneNone when absent.
func toneDigit(syl string) Tone {
	if syl == "" {
		return ToneNone
	}
	switch syl[len(syl)-1] {
	case '1':
		return ToneFirst
	case '2':
		return ToneSecond
	case '3':
		return ToneThird
	case '4':
		return ToneFourth
	case '5':
		return ToneFifth
	}
	return ToneNone
}

// NormalizeSyllable lowercases, rewrites the first "u:" or "v" to "ü" and
// strips the first digit. "NU:3" becomes "nü".
func NormalizeSyllable(syl string) string {
	s := strings.ToLower(syl)
	s = strings.Replace(s, "u:", "ü", 1)
	s = strings.Replace(s, "v", "ü", 1)
	for i, r := range s {
		if unicode.IsDigit(r) {
			return s[:i] + s[i+len(string(r)):]
		}
	}
	return s
}

// ApplyTone places the tone diacritic on the tone-bearing vowel of an already
// normalized syllable. The Mandarin convention: no vowel marks the first rune,
// a single vowel is marked directly, and with several vowels a, e, o take
// priority in that order, otherwise the second vowel carries the mark.
func ApplyTone(syl string, tone Tone) string {
	runes := []rune(syl)
	if len(runes) == 0 {
		return syl
	}
	idx := toneIndex(runes)
	runes[idx] = tone.mark(runes[idx])
	return string(runes)
}

func toneIndex(runes []rune) int {
	vowels := findVowels(runes)
	switch len(vowels) {
	case 0:
		return 0
	case 1:
		return vowels[0]
	}
	for _, pref := range []rune{'a', 'e', 'o'} {
		for _, i := range vowels {
			if runes[i] == pref {
				return i
			}
		}
	}
	return vowels[1]
}

func findVowels(runes []rune) []int {
	var out []int
	for i, r := range runes {
		switch r {
		case 'a', 'e', 'i', 'o', 'u', 'ü':
			out = append(out, i)
		}
	}
	return out
}
