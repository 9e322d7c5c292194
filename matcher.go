package pinyin

import (
	"fmt"
	"slices"
)

// WordMatcher checks whether a character at a given position of a text is
// part of a fixed reference word. Pivots are the offsets within the word
// where the character of interest may sit.
//
// Example: word "的的喀喀" with pivots [0 1] matches the first and the second
// 的 of "那里的的的喀喀湖", but not the first one of them.
//
// A WordMatcher is immutable.
type WordMatcher struct {
	word   []rune
	pivots []int
}

// NewWordMatcher creates a matcher for word with explicit pivot offsets.
// All runes of word must be Chinese characters and every pivot must lie
// within [0, len(word)). Duplicate pivots are collapsed.
func NewWordMatcher(word string, pivots ...int) (*WordMatcher, error) {
	w, err := chineseWord(word)
	if err != nil {
		return nil, err
	}
	if len(pivots) == 0 {
		return nil, fmt.Errorf("no pivot offsets for word %q", word)
	}
	pp := make([]int, 0, len(pivots))
	for _, p := range pivots {
		if p < 0 || p >= len(w) {
			return nil, fmt.Errorf("pivot offset %d out of range for word %q", p, word)
		}
		if !slices.Contains(pp, p) {
			pp = append(pp, p)
		}
	}
	return &WordMatcher{word: w, pivots: pp}, nil
}

// NewWordMatcherFor creates a matcher for word pivoting on every occurrence
// of r.
func NewWordMatcherFor(word string, r rune) (*WordMatcher, error) {
	var pivots []int
	for i, c := range []rune(word) {
		if c == r {
			pivots = append(pivots, i)
		}
	}
	if len(pivots) == 0 {
		return nil, fmt.Errorf("word %q does not contain %q", word, r)
	}
	return NewWordMatcher(word, pivots...)
}

func chineseWord(word string) ([]rune, error) {
	if word == "" {
		return nil, fmt.Errorf("empty reference word")
	}
	w := []rune(word)
	for _, c := range w {
		if !IsChinese(c) {
			return nil, fmt.Errorf("invalid Chinese character %#U in word %q", c, word)
		}
	}
	return w, nil
}

// Matches is true if seq[index] is covered by the reference word at one of
// the pivot offsets. Windows reaching beyond seq never match.
func (m *WordMatcher) Matches(seq []rune, index int) bool {
	n := len(m.word)
outer:
	for _, p := range m.pivots {
		start := index - p
		if start < 0 || start+n > len(seq) {
			continue
		}
		for i, c := range m.word {
			if seq[start+i] != c {
				continue outer
			}
		}
		return true
	}
	return false
}

// Word returns the reference word.
func (m *WordMatcher) Word() string {
	return string(m.word)
}

// Pivots returns a copy of the pivot offsets.
func (m *WordMatcher) Pivots() []int {
	return slices.Clone(m.pivots)
}

func (m *WordMatcher) String() string {
	return fmt.Sprintf("WordMatcher{word=%s, pivots=%v}", string(m.word), m.pivots)
}
