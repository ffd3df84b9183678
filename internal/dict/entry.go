// Package dict implements the pinyin-annotated dictionary: CC-CEDICT style
// entries keyed by simplified headword in a prefix trie, with a binary cache
// so the source file is only parsed once per schema version.
package dict

import "encoding/json"

// Tone is a Mandarin tone. The numeral suffix 1-5 of a pinyin syllable maps
// 1:1; a syllable without a suffix carries ToneNone and renders undecorated.
type Tone int

const (
	ToneFirst Tone = iota + 1
	ToneSecond
	ToneThird
	ToneFourth
	ToneFifth
	ToneNone
)

// Pinyin is a single syllable with its tone. Syllable is the display form
// with the diacritic already placed (for example "hǎo").
type Pinyin struct {
	Syllable string `json:"syllable" msgpack:"syllable"`
	Tone     Tone   `json:"tone" msgpack:"tone"`
}

// Entry is one dictionary sense. A headword can have several entries with
// distinct pronunciations or meanings.
type Entry struct {
	Simplified   string   `json:"simplified" msgpack:"simplified"`
	Traditional  string   `json:"traditional" msgpack:"traditional"`
	Pinyin       []Pinyin `json:"pinyin" msgpack:"pinyin"`
	Translations []string `json:"translations" msgpack:"translations"`
}

// sourceEntry mirrors one record of the dictionary source file, where pinyin
// is still the raw numeral-toned string ("ni3 hao3").
type sourceEntry struct {
	Simplified   string   `json:"simplified"`
	Traditional  string   `json:"traditional"`
	Pinyin       string   `json:"pinyin"`
	Translations []string `json:"translations"`
}

// UnmarshalJSON decodes a source record, parsing the numeral-toned pinyin
// string into structured syllables on the way in.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var src sourceEntry
	if err := json.Unmarshal(data, &src); err != nil {
		return err
	}
	e.Simplified = src.Simplified
	e.Traditional = src.Traditional
	e.Pinyin = ParsePinyin(src.Pinyin)
	e.Translations = src.Translations
	return nil
}

// PinyinString returns the display pinyin joined with spaces.
func (e Entry) PinyinString() string {
	out := ""
	for i, p := range e.Pinyin {
		if i > 0 {
			out += " "
		}
		out += p.Syllable
	}
	return out
}
