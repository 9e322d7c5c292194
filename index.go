package pinyin

import (
	"slices"

	"github.com/derekparker/trie"
)

// Index is a reverse lookup from numbered syllables to the characters of a
// table carrying them. Characters are listed in code point order.
type Index struct {
	trie *trie.Trie
}

// NewIndex builds the syllable index for table.
func NewIndex(table *Table) *Index {
	index := &Index{trie: trie.New()}
	chars := make(map[string][]rune)
	var order []string
	table.Each(func(r rune, readings []string) bool {
		for _, s := range readings {
			if _, ok := chars[s]; !ok {
				order = append(order, s)
			}
			chars[s] = append(chars[s], r)
		}
		return true
	})
	for _, s := range order {
		index.trie.Add(s, chars[s])
	}
	tracer().Debugf("syllable index for %s: %d syllables", table.Name(), len(order))
	return index
}

// Characters returns the characters carrying syllable. syllable may be
// numbered ("hao3") or tone free ("hao"); for the latter, characters of all
// five tones are returned, ordered by tone.
func (index *Index) Characters(syllable string) []rune {
	if IsNumbered(syllable) {
		return index.exact(syllable)
	}
	var chars []rune
	for t := '1'; t <= '5'; t++ {
		chars = append(chars, index.exact(syllable+string(t))...)
	}
	return chars
}

func (index *Index) exact(syllable string) []rune {
	node, ok := index.trie.Find(syllable)
	if !ok {
		return nil
	}
	chars, _ := node.Meta().([]rune)
	return slices.Clone(chars)
}

// Search returns all numbered syllables starting with prefix, sorted.
func (index *Index) Search(prefix string) []string {
	if prefix == "" || !index.trie.HasKeysWithPrefix(prefix) {
		return nil
	}
	keys := index.trie.PrefixSearch(prefix)
	slices.Sort(keys)
	return keys
}
