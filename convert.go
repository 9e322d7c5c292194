package pinyin

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Source tells where the reading of a character came from.
type Source uint8

const (
	FromNone     Source = iota // no reading, character emitted unchanged
	FromTable                  // first reading of the table entry
	FromResolver               // selected by a polyphone resolver
)

func (s Source) String() string {
	switch s {
	case FromTable:
		return "table"
	case FromResolver:
		return "resolver"
	}
	return "none"
}

// Token is the decision record for a single character of a text.
type Token struct {
	Rune     rune
	Syllable string // numbered syllable, empty for FromNone
	Source   Source
	Word     string // reference word of the matching resolver candidate, if any
}

// reading is implemented by the two sources a character's reading may come
// from: a polyphone resolver or the first table reading.
type reading interface {
	read(seq []rune, index int) (string, string, bool)
}

type resolverBacked struct {
	res *Resolver
}

func (rb resolverBacked) read(seq []rune, index int) (string, string, bool) {
	syllable, m, err := rb.res.Explain(seq, index)
	assert(err == nil, "resolver called for foreign character")
	if m != nil {
		return syllable, m.Word(), true
	}
	return syllable, "", true
}

type tableBacked struct {
	table *Table
}

func (tb tableBacked) read(seq []rune, index int) (string, string, bool) {
	syllable, ok := tb.table.First(seq[index])
	return syllable, "", ok
}

// Converter transcribes Chinese text to pinyin. It combines a Table with an
// optional Registry of polyphone resolvers.
//
// A Converter is immutable and may be used by concurrent goroutines.
type Converter struct {
	table     *Table
	registry  *Registry
	normalize bool
	normForm  norm.Form
}

// Option configures a Converter.
type Option func(*Converter)

// WithNormalization makes the converter normalize its input with form f
// before conversion. With norm.NFC, CJK compatibility ideographs like U+F900
// are mapped to their unified counterparts.
func WithNormalization(f norm.Form) Option {
	return func(c *Converter) {
		c.normalize = true
		c.normForm = f
	}
}

// NewConverter creates a converter. registry may be nil.
func NewConverter(table *Table, registry *Registry, opts ...Option) *Converter {
	c := &Converter{table: table, registry: registry}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Converter) source(r rune) reading {
	if res, ok := c.registry.Resolver(r); ok {
		return resolverBacked{res: res}
	}
	return tableBacked{table: c.table}
}

func (c *Converter) prepare(text string) []rune {
	if c.normalize {
		text = c.normForm.String(text)
	}
	return []rune(text)
}

// Tokens returns the per-character decisions for text.
func (c *Converter) Tokens(text string) []Token {
	seq := c.prepare(text)
	tokens := make([]Token, len(seq))
	for i, r := range seq {
		tokens[i] = c.token(seq, i)
		tokens[i].Rune = r
	}
	return tokens
}

func (c *Converter) token(seq []rune, i int) Token {
	src := c.source(seq[i])
	syllable, word, ok := src.read(seq, i)
	if !ok {
		return Token{}
	}
	t := Token{Syllable: syllable, Source: FromTable, Word: word}
	if _, isRes := src.(resolverBacked); isRes {
		t.Source = FromResolver
	}
	return t
}

// Convert transcribes text into form f. Every character is followed by a
// single space, except the last one. Characters without a reading, including
// all non-Chinese characters, are copied unchanged.
//
//	"我的"  => "wo3 de5"
//	"我,的" => "wo3 , de5"
func (c *Converter) Convert(text string, f Form) string {
	if text == "" {
		return ""
	}
	seq := c.prepare(text)
	var b strings.Builder
	b.Grow(len(seq) * 6)
	for i, r := range seq {
		if i > 0 {
			b.WriteByte(' ')
		}
		if syllable, _, ok := c.source(r).read(seq, i); ok {
			b.WriteString(f.Render(syllable))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ConvertPtr is like Convert, but keeps absent input absent: nil yields nil.
func (c *Converter) ConvertPtr(text *string, f Form) *string {
	if text == nil {
		return nil
	}
	s := c.Convert(*text, f)
	return &s
}

// ToNumbered converts text to syllables with tone numbers, e.g. "wo3 de5".
func (c *Converter) ToNumbered(text string) string {
	return c.Convert(text, NumberedTone)
}

// ToMarked converts text to syllables with tone marks, e.g. "wǒ de".
func (c *Converter) ToMarked(text string) string {
	return c.Convert(text, MarkedTone)
}

// ToToneFree converts text to syllables without tones, e.g. "wo de".
func (c *Converter) ToToneFree(text string) string {
	return c.Convert(text, ToneFree)
}
