/*
Package polyphone reads polyphone patterns from block-structured text files.

Every block describes one character. It starts with a header line holding the
character and its default reading, followed by candidate lines. A candidate
line holds a reading and the reference words selecting it:

	的 de5
	di2 的的喀喀_0_1 的确
	di4 目的

A plain word pivots on every occurrence of the block's character within the
word. A suffix of underscore-separated offsets selects explicit pivots, e.g.
"的的喀喀_0_1" matches only if the character sits at offset 0 or 1 of the word.

Blocks are separated by blank lines. Lines starting with '#' are comments.
Candidates are tried in file order.
*/
package polyphone

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/pinyin"
	"github.com/pkg/errors"
)

// Reader streams pattern blocks.
type Reader struct {
	scanner *bufio.Scanner
	line    int
	block   *pinyin.Block
}

// NewReader creates a block reader on top of reader.
func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// LoadRegistry parses pattern data and returns a ready-to-use registry.
func LoadRegistry(name string, reader io.Reader) (*pinyin.Registry, error) {
	reg, err := pinyin.LoadRegistry(name, NewReader(reader))
	if err != nil {
		return nil, errors.Wrapf(err, "cannot load patterns %s", name)
	}
	return reg, nil
}

// Next returns the next block.
// It returns io.EOF when exhausted.
func (r *Reader) Next() (pinyin.Block, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if r.line == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		if line == "" {
			if r.block != nil {
				return r.flush(), nil
			}
			continue
		}
		fields := strings.Fields(line)
		if c := fields[0][0]; c >= 'a' && c <= 'z' {
			if err := r.candidate(fields); err != nil {
				return pinyin.Block{}, err
			}
			continue
		}
		if err := r.header(fields); err != nil {
			return pinyin.Block{}, err
		}
	}
	if err := r.scanner.Err(); err != nil {
		return pinyin.Block{}, errors.Wrapf(err, "line %d", r.line)
	}
	if r.block != nil {
		return r.flush(), nil
	}
	return pinyin.Block{}, io.EOF
}

func (r *Reader) flush() pinyin.Block {
	b := *r.block
	r.block = nil
	return b
}

func (r *Reader) header(fields []string) error {
	if r.block != nil {
		return fmt.Errorf("line %d: header inside block of %q, missing blank line", r.line, r.block.Rune)
	}
	ch, size := utf8.DecodeRuneInString(fields[0])
	if len(fields) != 2 || size != len(fields[0]) || ch == utf8.RuneError {
		return fmt.Errorf("line %d: expected header '<character> <default>'", r.line)
	}
	r.block = &pinyin.Block{
		Line:    r.line,
		Rune:    ch,
		Default: fields[1],
	}
	return nil
}

func (r *Reader) candidate(fields []string) error {
	if r.block == nil {
		return fmt.Errorf("line %d: candidate %q outside of a block", r.line, fields[0])
	}
	syllable := fields[0]
	for _, c := range r.block.Candidates {
		if c.Syllable == syllable {
			return fmt.Errorf("line %d: duplicate candidate %q for %q", r.line, syllable, r.block.Rune)
		}
	}
	if len(fields) < 2 {
		return fmt.Errorf("line %d: candidate %q has no reference words", r.line, syllable)
	}
	spec := pinyin.CandidateSpec{
		Line:     r.line,
		Syllable: syllable,
		Words:    make([]pinyin.WordSpec, 0, len(fields)-1),
	}
	for _, f := range fields[1:] {
		w, err := parseWord(f)
		if err != nil {
			return fmt.Errorf("line %d: %w", r.line, err)
		}
		spec.Words = append(spec.Words, w)
	}
	r.block.Candidates = append(r.block.Candidates, spec)
	return nil
}

// parseWord splits "word_1_2" into word and pivots. Plain words get nil pivots.
func parseWord(field string) (pinyin.WordSpec, error) {
	parts := strings.Split(field, "_")
	w := pinyin.WordSpec{Word: parts[0]}
	if w.Word == "" {
		return w, fmt.Errorf("malformed reference word %q", field)
	}
	for _, p := range parts[1:] {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return w, fmt.Errorf("malformed pivot %q in %q", p, field)
		}
		w.Pivots = append(w.Pivots, n)
	}
	return w, nil
}
