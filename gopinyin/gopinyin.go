/*
Package gopinyin derives a pinyin table from the character data of
github.com/mozillazg/go-pinyin.

go-pinyin covers the complete range U+4E00…U+9FA5. Its readings are
converted to numbered syllables: 'ü' is written as 'v' and neutral readings
get tone number 5. Readings which still do not form a numbered syllable are
dropped, as are characters left without readings.
*/
package gopinyin

import (
	"io"
	"slices"
	"strings"

	gp "github.com/mozillazg/go-pinyin"
	"github.com/npillmayer/pinyin"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pinyin'
func tracer() tracing.Trace {
	return tracing.Select("pinyin")
}

// Reader enumerates the Chinese code point range and yields the go-pinyin
// readings of every character.
type Reader struct {
	next     rune
	args     gp.Args
	readings []string
	dropped  int
}

// NewReader creates a reader starting at pinyin.MinCodePoint.
func NewReader() *Reader {
	args := gp.NewArgs()
	args.Style = gp.Tone3
	args.Heteronym = true
	args.Fallback = func(rune, gp.Args) []string { return nil }
	return &Reader{
		next:     pinyin.MinCodePoint,
		args:     args,
		readings: make([]string, 0, 8),
	}
}

// Next returns the next character with readings.
// It returns io.EOF when exhausted.
// The returned slice is reused by subsequent calls.
func (r *Reader) Next() (rune, []string, error) {
	for r.next <= pinyin.MaxCodePoint {
		ch := r.next
		r.next++
		r.readings = r.readings[:0]
		for _, py := range gp.SinglePinyin(ch, r.args) {
			syllable, ok := Numbered(py)
			if !ok {
				r.dropped++
				continue
			}
			if !slices.Contains(r.readings, syllable) {
				r.readings = append(r.readings, syllable)
			}
		}
		if len(r.readings) > 0 {
			return ch, r.readings, nil
		}
	}
	if r.dropped > 0 {
		tracer().Debugf("go-pinyin: dropped %d malformed readings", r.dropped)
		r.dropped = 0
	}
	return 0, nil, io.EOF
}

// Numbered converts a go-pinyin reading in Tone3 style to a numbered
// syllable.
//
//	"zhong1" => "zhong1"
//	"lü3"    => "lv3"
//	"de"     => "de5"
func Numbered(py string) (string, bool) {
	s := strings.ToLower(strings.TrimSpace(py))
	s = strings.ReplaceAll(s, "ü", "v")
	if s == "" {
		return "", false
	}
	if last := s[len(s)-1]; last < '0' || last > '9' {
		s += "5"
	}
	return s, pinyin.IsNumbered(s)
}

// Load builds a table from go-pinyin's character data.
func Load() (*pinyin.Table, error) {
	return pinyin.LoadTable("go-pinyin", NewReader())
}
