package pinyin

import (
	"fmt"
	"strings"
)

// Form selects the output form of a conversion.
type Form uint8

const (
	NumberedTone Form = iota // "lv3"
	MarkedTone               // "lǚ"
	ToneFree                 // "lv"
)

func (f Form) String() string {
	switch f {
	case NumberedTone:
		return "numbered"
	case MarkedTone:
		return "marked"
	case ToneFree:
		return "plain"
	}
	return fmt.Sprintf("Form(%d)", uint8(f))
}

// ParseForm is the inverse of Form.String. It accepts "tonefree" as an alias
// for "plain".
func ParseForm(s string) (Form, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "numbered", "number", "tone3":
		return NumberedTone, nil
	case "marked", "mark", "tone":
		return MarkedTone, nil
	case "plain", "tonefree", "none":
		return ToneFree, nil
	}
	return NumberedTone, fmt.Errorf("unknown output form %q", s)
}

// Render transforms a numbered syllable into form f. Strings which are not
// numbered syllables are returned unchanged.
func (f Form) Render(syllable string) string {
	switch f {
	case MarkedTone:
		return MarkTone(syllable)
	case ToneFree:
		return StripTone(syllable)
	}
	return syllable
}

// StripTone removes the tone number from a numbered syllable.
//
//	"lv3" => "lv"
//
// Other input is returned unchanged.
func StripTone(syllable string) string {
	if !IsNumbered(syllable) {
		return syllable
	}
	return syllable[:len(syllable)-1]
}

// toneMarks holds the marked variants of markable letters for tones 1…4.
// 'n' has no precomposed form with macron and stays unmarked for tone 1.
var toneMarks = map[byte][4]rune{
	'a': {'ā', 'á', 'ǎ', 'à'},
	'e': {'ē', 'é', 'ě', 'è'},
	'i': {'ī', 'í', 'ǐ', 'ì'},
	'o': {'ō', 'ó', 'ǒ', 'ò'},
	'u': {'ū', 'ú', 'ǔ', 'ù'},
	'v': {'ǖ', 'ǘ', 'ǚ', 'ǜ'},
	'n': {'n', 'ń', 'ň', 'ǹ'},
}

// MarkTone replaces the tone number of a numbered syllable by a tone mark.
//
//	"bai4" => "bài"
//	"lv3"  => "lǚ"
//	"lve4" => "lüè"
//	"de5"  => "de"
//
// Other input is returned unchanged.
func MarkTone(syllable string) string {
	if !IsNumbered(syllable) {
		return syllable
	}
	t := tone(syllable)
	bare := syllable[:len(syllable)-1]
	pos := -1
	if t <= 4 {
		pos = markPosition(bare)
	}
	var b strings.Builder
	b.Grow(len(bare) + 2)
	for i := 0; i < len(bare); i++ { // bare is ASCII only
		c := bare[i]
		switch {
		case i == pos:
			b.WriteRune(toneMarks[c][t-1])
		case c == 'v':
			b.WriteRune('ü')
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// markPosition finds the byte index of the letter receiving the tone mark,
// or -1. Between 'i' and 'u' the one with the larger index wins, comparing
// the first occurrence of each.
func markPosition(bare string) int {
	for _, v := range []byte{'a', 'o', 'e'} {
		if i := strings.IndexByte(bare, v); i >= 0 {
			return i
		}
	}
	if i := max(strings.IndexByte(bare, 'i'), strings.IndexByte(bare, 'u')); i >= 0 {
		return i
	}
	for _, v := range []byte{'v', 'n'} {
		if i := strings.IndexByte(bare, v); i >= 0 {
			return i
		}
	}
	return -1
}
