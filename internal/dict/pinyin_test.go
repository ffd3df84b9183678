package dict

import "testing"

func TestParsePinyinTones(t *testing.T) {
	tests := []struct {
		raw      string
		syllable string
		tone     Tone
	}{
		{"ma1", "mā", ToneFirst},
		{"ma2", "má", ToneSecond},
		{"ma3", "mǎ", ToneThird},
		{"ma4", "mà", ToneFourth},
		{"ma5", "ma", ToneFifth}, // neutral, no diacritic
		{"ma", "ma", ToneNone},   // no digit, left unmodified
	}
	for _, tt := range tests {
		got := ParsePinyin(tt.raw)
		if len(got) != 1 {
			t.Fatalf("ParsePinyin(%q) returned %d syllables", tt.raw, len(got))
		}
		if got[0].Syllable != tt.syllable || got[0].Tone != tt.tone {
			t.Errorf("ParsePinyin(%q) = %q/%v, want %q/%v",
				tt.raw, got[0].Syllable, got[0].Tone, tt.syllable, tt.tone)
		}
	}
}

func TestApplyToneVowelSelection(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"hao3", "hǎo"},  // a preferred over o
		{"gui4", "guì"},  // no a/e/o: second vowel
		{"hui4", "huì"},  // no a/e/o: second vowel
		{"xie4", "xiè"},  // e preferred
		{"duo1", "duō"},  // o preferred
		{"ni3", "nǐ"},    // single vowel
		{"zhong1", "zhōng"},
		{"er2", "ér"},
		{"m2", "ḿ"},      // no standard vowel, first rune marked
		{"lu:e4", "lüè"}, // ü normalization then e preferred
		{"nv3", "nǚ"},    // v normalization, single vowel
	}
	for _, tt := range tests {
		got := ParsePinyin(tt.raw)
		if len(got) != 1 || got[0].Syllable != tt.want {
			t.Errorf("ParsePinyin(%q) = %q, want %q", tt.raw, got[0].Syllable, tt.want)
		}
	}
}

func TestParsePinyinMultiSyllable(t *testing.T) {
	got := ParsePinyin("ni3 hao3")
	if len(got) != 2 {
		t.Fatalf("got %d syllables, want 2", len(got))
	}
	if got[0].Syllable != "nǐ" || got[1].Syllable != "hǎo" {
		t.Errorf("got %q %q, want nǐ hǎo", got[0].Syllable, got[1].Syllable)
	}
}

func TestNormalizeSyllable(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"NI3", "ni"},
		{"lu:4", "lü"},
		{"nv3", "nü"},
		{"r5", "r"},
	}
	for _, tt := range tests {
		if got := NormalizeSyllable(tt.in); got != tt.want {
			t.Errorf("NormalizeSyllable(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
