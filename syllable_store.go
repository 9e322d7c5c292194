package pinyin

import "fmt"

const maxReadings = 32

// syllableStore keeps the reading lists of table entries, directly indexed by
// entry ID. Syllables are interned; every entry occupies a fixed-width row of
// syllable IDs. Entry ID 0 is reserved for "no entry".
type syllableStore struct {
	width  uint8
	ids    map[string]uint16 // syllable → id, construction only
	names  []string          // id → syllable; 0 unused
	length []uint8           // will grow with demand
	rows   []uint16          // will grow with demand
}

func newSyllableStore(width uint8) *syllableStore {
	if width > maxReadings {
		width = maxReadings
	}
	return &syllableStore{
		width:  width,
		ids:    make(map[string]uint16),
		names:  []string{""},
		length: make([]uint8, 1),
		rows:   make([]uint16, int(width)),
	}
}

func (s *syllableStore) intern(syllable string) (uint16, error) {
	if id, ok := s.ids[syllable]; ok {
		return id, nil
	}
	if len(s.names) > 0xFFFF {
		return 0, fmt.Errorf("too many distinct syllables")
	}
	id := uint16(len(s.names))
	s.names = append(s.names, syllable)
	s.ids[syllable] = id
	return id, nil
}

func (s *syllableStore) ensure(entry int) {
	if entry < len(s.length) {
		return
	}
	grow := entry + 1 - len(s.length)
	s.length = append(s.length, make([]uint8, grow)...)
	s.rows = append(s.rows, make([]uint16, grow*int(s.width))...)
}

// Put stores the readings of table entry entry.
func (s *syllableStore) Put(entry int, readings []string) error {
	if entry <= 0 {
		return fmt.Errorf("invalid entry id: %d", entry)
	}
	if len(readings) > int(s.width) {
		return fmt.Errorf("too many readings for entry %d: %d > %d", entry, len(readings), s.width)
	}
	s.ensure(entry)
	base := entry * int(s.width)
	for k, syllable := range readings {
		id, err := s.intern(syllable)
		if err != nil {
			return err
		}
		s.rows[base+k] = id
	}
	s.length[entry] = uint8(len(readings))
	return nil
}

// Get returns a fresh copy of the readings of entry.
func (s *syllableStore) Get(entry int) ([]string, bool) {
	if entry <= 0 || entry >= len(s.length) || s.length[entry] == 0 {
		return nil, false
	}
	n := int(s.length[entry])
	base := entry * int(s.width)
	readings := make([]string, n)
	for k := range n {
		readings[k] = s.names[s.rows[base+k]]
	}
	return readings, true
}

// First returns the first reading of entry without allocating.
func (s *syllableStore) First(entry int) (string, bool) {
	if entry <= 0 || entry >= len(s.length) || s.length[entry] == 0 {
		return "", false
	}
	return s.names[s.rows[entry*int(s.width)]], true
}

// Freeze drops construction-only state.
func (s *syllableStore) Freeze() {
	s.ids = nil
}

// Syllables returns the number of distinct syllables stored.
func (s *syllableStore) Syllables() int {
	return len(s.names) - 1
}
