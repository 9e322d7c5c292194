package pagemap

import "testing"

func TestMapSetGet(t *testing.T) {
	var m Map
	if !m.Set('的', 7) {
		t.Fatalf("Set failed for BMP rune")
	}
	if id := m.Get('的'); id != 7 {
		t.Fatalf("expected id 7, got %d", id)
	}
	if id := m.Get('白'); id != 0 {
		t.Fatalf("expected absent rune to map to 0, got %d", id)
	}
	if m.NumPages() != 1 {
		t.Fatalf("expected 1 page, got %d", m.NumPages())
	}
}

func TestMapSharesPages(t *testing.T) {
	var m Map
	m.Set(0x4e00, 1)
	m.Set(0x4e01, 2)
	m.Set(0x9fa5, 3)
	if m.NumPages() != 2 {
		t.Fatalf("expected 2 pages, got %d", m.NumPages())
	}
	if m.Get(0x4e01) != 2 || m.Get(0x9fa5) != 3 {
		t.Fatalf("lookup mismatch: %d %d", m.Get(0x4e01), m.Get(0x9fa5))
	}
}

func TestMapClearDoesNotAllocate(t *testing.T) {
	var m Map
	m.Set('a', 0)
	if m.NumPages() != 0 {
		t.Fatalf("clearing an absent rune should not allocate a page")
	}
}

func TestMapRejectsNonBMP(t *testing.T) {
	var m Map
	if m.Set(0x20000, 1) {
		t.Fatalf("expected Set to reject a rune outside the BMP")
	}
	if m.Get(0x20000) != 0 || m.Get(-1) != 0 {
		t.Fatalf("expected non-BMP lookups to return 0")
	}
}

func TestMapRemoveEntry(t *testing.T) {
	var m Map
	m.Set('的', 7)
	m.Set('的', 0)
	if m.Get('的') != 0 {
		t.Fatalf("expected entry to be removed, got %d", m.Get('的'))
	}
	if m.NumPages() != 1 {
		t.Fatalf("removing an entry should keep its page, got %d pages", m.NumPages())
	}
}
