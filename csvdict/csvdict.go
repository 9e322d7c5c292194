/*
Package csvdict reads pinyin tables from comma separated text files.

Two layouts are supported. The sequential layout has one line per code point,
starting with U+4E00 on the first line:

	yi1
	ding1,zheng1
	kao3
	...

An empty line leaves a gap, i.e. the code point has no readings.

The keyed layout names the character in the first field of each record:

	# comment
	的,de5,di4,di2,di1
	一,yi1

Records may come in any order. Blank lines and lines starting with '#' are
ignored.
*/
package csvdict

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/pinyin"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/errors"
)

// tracer writes to trace with key 'pinyin'
func tracer() tracing.Trace {
	return tracing.Select("pinyin")
}

// SequentialReader streams table entries from the sequential layout.
type SequentialReader struct {
	scanner  *bufio.Scanner
	line     int
	readings []string
}

// NewSequentialReader creates a reader for the sequential layout.
func NewSequentialReader(reader io.Reader) *SequentialReader {
	return &SequentialReader{
		scanner:  bufio.NewScanner(reader),
		readings: make([]string, 0, 8),
	}
}

// Next returns the next entry as (character, readings).
// It returns io.EOF when exhausted.
// The returned slice is reused by subsequent calls.
func (r *SequentialReader) Next() (rune, []string, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if r.line == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		if line == "" {
			continue
		}
		cp := pinyin.MinCodePoint + rune(r.line-1)
		if cp > pinyin.MaxCodePoint {
			return 0, nil, fmt.Errorf("line %d: beyond last code point %#U", r.line, pinyin.MaxCodePoint)
		}
		r.readings = r.readings[:0]
		for _, field := range strings.Split(line, ",") {
			syllable := strings.TrimSpace(field)
			if !pinyin.IsNumbered(syllable) {
				return 0, nil, fmt.Errorf("line %d: %q is not a syllable with tone number", r.line, syllable)
			}
			r.readings = append(r.readings, syllable)
		}
		return cp, r.readings, nil
	}
	if err := r.scanner.Err(); err != nil {
		return 0, nil, errors.Wrapf(err, "line %d", r.line)
	}
	return 0, nil, io.EOF
}

// KeyedReader streams table entries from the keyed layout.
type KeyedReader struct {
	csv *csv.Reader
}

// NewKeyedReader creates a reader for the keyed layout.
func NewKeyedReader(reader io.Reader) *KeyedReader {
	r := csv.NewReader(reader)
	r.Comment = '#'
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.ReuseRecord = true
	return &KeyedReader{csv: r}
}

// Next returns the next entry as (character, readings).
// It returns io.EOF when exhausted.
// The returned slice is reused by subsequent calls.
func (r *KeyedReader) Next() (rune, []string, error) {
	record, err := r.csv.Read()
	if err == io.EOF {
		return 0, nil, io.EOF
	}
	if err != nil {
		return 0, nil, errors.Wrap(err, "keyed pinyin table")
	}
	line, _ := r.csv.FieldPos(0)
	key := strings.TrimSpace(record[0])
	ch, size := utf8.DecodeRuneInString(key)
	if size == 0 || size != len(key) || ch == utf8.RuneError {
		return 0, nil, fmt.Errorf("line %d: key %q is not a single character", line, key)
	}
	if len(record) < 2 {
		return 0, nil, fmt.Errorf("line %d: no readings for %q", line, ch)
	}
	readings := record[1:]
	for i, field := range readings {
		syllable := strings.TrimSpace(field)
		if !pinyin.IsNumbered(syllable) {
			return 0, nil, fmt.Errorf("line %d: %q is not a syllable with tone number", line, syllable)
		}
		readings[i] = syllable
	}
	return ch, readings, nil
}

// LoadSequential loads a table in sequential layout.
func LoadSequential(name string, reader io.Reader) (*pinyin.Table, error) {
	table, err := pinyin.LoadTable(name, NewSequentialReader(reader))
	if err != nil {
		return nil, errors.Wrapf(err, "cannot load table %s", name)
	}
	return table, nil
}

// LoadKeyed loads a table in keyed layout.
func LoadKeyed(name string, reader io.Reader) (*pinyin.Table, error) {
	table, err := pinyin.LoadTable(name, NewKeyedReader(reader))
	if err != nil {
		return nil, errors.Wrapf(err, "cannot load table %s", name)
	}
	return table, nil
}

// Load loads a table in the given layout, either "sequential" or "keyed".
func Load(name, layout string, reader io.Reader) (*pinyin.Table, error) {
	tracer().Debugf("loading %s table %s", layout, name)
	switch layout {
	case "sequential", "":
		return LoadSequential(name, reader)
	case "keyed":
		return LoadKeyed(name, reader)
	}
	return nil, fmt.Errorf("unknown table layout %q", layout)
}
