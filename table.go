package pinyin

import (
	"fmt"
	"io"

	"github.com/npillmayer/pinyin/pagemap"
)

// EntryReader yields table entries one-by-one.
// It should return io.EOF when the stream is exhausted.
type EntryReader interface {
	Next() (r rune, readings []string, err error)
}

// Table maps Chinese characters to their candidate readings, each a numbered
// syllable. The first reading of an entry is its default.
//
// A Table is immutable after loading.
type Table struct {
	index      pagemap.Map    // code point → entry id
	store      *syllableStore // entry id → readings
	count      int
	name       string
	Identifier string // Identifies the table
}

// TableStats reports size metrics of a table.
type TableStats struct {
	Entries   int // characters with readings
	Syllables int // distinct numbered syllables
	Width     int // maximum number of readings per character
	Pages     int // allocated code point pages
}

// LoadTable compiles a table from a streaming, format-agnostic source.
//
// File format parsing is intentionally outside the base package. Use adapters
// like package csvdict to parse concrete formats and feed this API.
//
// Loading fails for characters outside [MinCodePoint…MaxCodePoint], for
// empty reading lists, for readings which are not numbered syllables and for
// characters listed twice. No partial table is returned.
func LoadTable(name string, reader EntryReader) (*Table, error) {
	type pendingEntry struct {
		id       int
		readings []string
	}
	table := &Table{
		name:       name,
		Identifier: fmt.Sprintf("table: %s", name),
	}
	pending := make([]pendingEntry, 0, 1024)
	width := 0
	for {
		r, readings, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if err = checkEntry(r, readings); err != nil {
			return nil, err
		}
		if table.index.Get(r) != 0 {
			return nil, fmt.Errorf("duplicate table entry for %#U", r)
		}
		if len(pending)+1 > 0xFFFF {
			return nil, fmt.Errorf("table %q exceeds %d entries", name, 0xFFFF)
		}
		id := len(pending) + 1
		table.index.Set(r, uint16(id))
		rr := make([]string, len(readings)) // readers may re-use their slices
		copy(rr, readings)
		pending = append(pending, pendingEntry{id: id, readings: rr})
		width = max(width, len(rr))
	}
	table.store = newSyllableStore(uint8(width))
	for _, p := range pending {
		if err := table.store.Put(p.id, p.readings); err != nil {
			return nil, err
		}
	}
	table.store.Freeze()
	table.count = len(pending)
	stats := table.Stats()
	tracer().Infof("%s entries=%d syllables=%d width=%d pages=%d", table.Identifier,
		stats.Entries, stats.Syllables, stats.Width, stats.Pages)
	return table, nil
}

func checkEntry(r rune, readings []string) error {
	if !IsChinese(r) {
		return fmt.Errorf("table entry %#U is not in the Chinese range", r)
	}
	if len(readings) == 0 {
		return fmt.Errorf("table entry %#U has no readings", r)
	}
	if len(readings) > maxReadings {
		return fmt.Errorf("table entry %#U has %d readings, max %d", r, len(readings), maxReadings)
	}
	for _, s := range readings {
		if !IsNumbered(s) {
			return fmt.Errorf("table entry %#U: %q is not a syllable with tone number", r, s)
		}
	}
	return nil
}

// Lookup returns the readings of r, default reading first.
// The returned slice is owned by the caller.
func (t *Table) Lookup(r rune) ([]string, bool) {
	if t == nil || t.store == nil {
		return nil, false
	}
	return t.store.Get(int(t.index.Get(r)))
}

// First returns the default reading of r.
func (t *Table) First(r rune) (string, bool) {
	if t == nil || t.store == nil {
		return "", false
	}
	return t.store.First(int(t.index.Get(r)))
}

// Name returns the name the table has been loaded with.
func (t *Table) Name() string {
	if t == nil {
		return ""
	}
	return t.name
}

// Len returns the number of characters with readings.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// Each calls f for every entry in code point order, until f returns false.
func (t *Table) Each(f func(r rune, readings []string) bool) {
	if t == nil || t.store == nil {
		return
	}
	for r := MinCodePoint; r <= MaxCodePoint; r++ {
		if readings, ok := t.store.Get(int(t.index.Get(r))); ok {
			if !f(r, readings) {
				return
			}
		}
	}
}

// Stats reports size metrics of t.
func (t *Table) Stats() TableStats {
	if t == nil || t.store == nil {
		return TableStats{}
	}
	return TableStats{
		Entries:   t.count,
		Syllables: t.store.Syllables(),
		Width:     int(t.store.width),
		Pages:     t.index.NumPages(),
	}
}
