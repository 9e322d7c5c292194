/*
Package pagemap assigns small dense identifiers to code points of the Basic
Multilingual Plane.

A code point is split into its high byte, selecting one of 256 pages, and its
low byte, selecting a slot within that page. Pages are allocated only when a
non-zero identifier is stored in them, so a map covering the CJK unified
ideographs U+4E00…U+9FA5 holds 82 pages of 256 slots each.
*/
package pagemap

const pageSize = 256

// Map holds rune → id associations. An id of 0 stands for "no entry".
// The zero value is an empty map.
type Map struct {
	Top   [256]uint16 // high byte → 1-based page number, 0 if unallocated
	Pages []uint16    // allocated pages, back to back
}

func inBMP(r rune) bool {
	return r >= 0 && r <= 0xFFFF
}

// slot returns the position of r in Pages, or -1 if r's page is missing.
func (m *Map) slot(r rune) int {
	page := m.Top[r>>8]
	if page == 0 {
		return -1
	}
	return int(page-1)*pageSize + int(r&0xFF)
}

// Get returns the id stored for r. Runes beyond the BMP always yield 0.
func (m *Map) Get(r rune) uint16 {
	if !inBMP(r) {
		return 0
	}
	if i := m.slot(r); i >= 0 {
		return m.Pages[i]
	}
	return 0
}

// NumPages is the count of allocated pages.
func (m *Map) NumPages() int { return len(m.Pages) / pageSize }

// Set stores id for r. Storing 0 removes an entry. Set reports false and
// does nothing for runes beyond the BMP.
func (m *Map) Set(r rune, id uint16) bool {
	if !inBMP(r) {
		return false
	}
	i := m.slot(r)
	if i < 0 {
		if id == 0 {
			return true
		}
		m.Pages = append(m.Pages, make([]uint16, pageSize)...)
		m.Top[r>>8] = uint16(m.NumPages())
		i = m.slot(r)
	}
	m.Pages[i] = id
	return true
}
