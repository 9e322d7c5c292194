package pinyin

import (
	"reflect"
	"testing"
)

func mustMatcher(t *testing.T, word string, pivots ...int) *WordMatcher {
	t.Helper()
	m, err := NewWordMatcher(word, pivots...)
	if err != nil {
		t.Fatalf("cannot create matcher for %q: %v", word, err)
	}
	return m
}

func TestWordMatcherPivots(t *testing.T) {
	m := mustMatcher(t, "的的喀喀", 0, 1)
	seq := []rune("那里的的的喀喀湖的景色很漂亮")
	tests := []struct {
		index int
		want  bool
	}{
		{2, false},
		{3, true},
		{4, true},
		{5, false},
		{8, false},
	}
	for _, tt := range tests {
		if got := m.Matches(seq, tt.index); got != tt.want {
			t.Fatalf("match at %d: got %v, want %v", tt.index, got, tt.want)
		}
	}
}

func TestWordMatcherBounds(t *testing.T) {
	m := mustMatcher(t, "钉钉", 0)
	seq := []rune("铁板钉钉")
	if !m.Matches(seq, 2) {
		t.Fatalf("钉钉 should match at index 2")
	}
	if m.Matches(seq, 3) {
		t.Fatalf("window beyond end of text must not match")
	}
	m = mustMatcher(t, "独乐", 1)
	if m.Matches([]rune("乐乐"), 0) {
		t.Fatalf("window before start of text must not match")
	}
}

func TestWordMatcherFor(t *testing.T) {
	m, err := NewWordMatcherFor("数一数二", '数')
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(m.Pivots(), []int{0, 2}) {
		t.Fatalf("expected pivots [0 2], got %v", m.Pivots())
	}
	if m.Word() != "数一数二" {
		t.Fatalf("unexpected word %q", m.Word())
	}
	if _, err := NewWordMatcherFor("目的", '乐'); err == nil {
		t.Fatalf("expected error for word not containing the character")
	}
}

func TestWordMatcherValidation(t *testing.T) {
	tests := []struct {
		word   string
		pivots []int
	}{
		{"", []int{0}},
		{"目的", nil},
		{"目的", []int{2}},
		{"目的", []int{-1}},
		{"目的a", []int{1}},
		{"目，的", []int{0}},
	}
	for _, tt := range tests {
		if _, err := NewWordMatcher(tt.word, tt.pivots...); err == nil {
			t.Fatalf("expected error for word %q with pivots %v", tt.word, tt.pivots)
		}
	}
	m := mustMatcher(t, "的的", 1, 0, 1)
	if len(m.Pivots()) != 2 {
		t.Fatalf("duplicate pivots should collapse, got %v", m.Pivots())
	}
	if m.String() != "WordMatcher{word=的的, pivots=[1 0]}" {
		t.Fatalf("unexpected string form %s", m)
	}
}
