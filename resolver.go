package pinyin

import (
	"fmt"
)

// Candidate is a reading of a polyphone character together with the word
// matchers selecting it.
type Candidate struct {
	Syllable string
	Matchers []*WordMatcher
}

// Resolver selects the reading of a single polyphone character from its
// context. Candidates are tried in the order given at construction time and
// the first candidate with a matching word wins. If no candidate matches,
// the default reading is used.
//
// Ordering is load-bearing: authors of pattern data have to list the most
// specific candidate first.
type Resolver struct {
	r          rune
	def        string
	candidates []Candidate
}

// NewResolver creates a resolver for character r.
func NewResolver(r rune, def string, candidates ...Candidate) (*Resolver, error) {
	if !IsChinese(r) {
		return nil, fmt.Errorf("%#U is not a valid Chinese character", r)
	}
	if !IsNumbered(def) {
		return nil, fmt.Errorf("%q is not a valid syllable with tone number", def)
	}
	res := &Resolver{r: r, def: def, candidates: make([]Candidate, 0, len(candidates))}
	for _, c := range candidates {
		if !IsNumbered(c.Syllable) {
			return nil, fmt.Errorf("%q is not a valid syllable with tone number", c.Syllable)
		}
		for _, prev := range res.candidates {
			if prev.Syllable == c.Syllable {
				return nil, fmt.Errorf("duplicate candidate %q for %q", c.Syllable, r)
			}
		}
		mm := make([]*WordMatcher, 0, len(c.Matchers))
		for _, m := range c.Matchers {
			if m == nil {
				return nil, fmt.Errorf("nil word matcher for candidate %q of %q", c.Syllable, r)
			}
			mm = append(mm, m)
		}
		res.candidates = append(res.candidates, Candidate{Syllable: c.Syllable, Matchers: mm})
	}
	return res, nil
}

// Resolve returns the reading of seq[index].
//
// It is an error to call Resolve for a position not holding the resolver's
// character; the error wraps ErrInvalidArgument.
func (res *Resolver) Resolve(seq []rune, index int) (string, error) {
	syllable, _, err := res.Explain(seq, index)
	return syllable, err
}

// Explain is like Resolve, but additionally reports the word matcher which
// selected the reading. The matcher is nil if the default reading applies.
func (res *Resolver) Explain(seq []rune, index int) (string, *WordMatcher, error) {
	if index < 0 || index >= len(seq) {
		return "", nil, fmt.Errorf("%w: index %d out of range [0,%d)", ErrInvalidArgument, index, len(seq))
	}
	if seq[index] != res.r {
		return "", nil, fmt.Errorf("%w: character %#U at index %d, expected %#U",
			ErrInvalidArgument, seq[index], index, res.r)
	}
	for _, c := range res.candidates {
		for _, m := range c.Matchers {
			if m.Matches(seq, index) {
				return c.Syllable, m, nil
			}
		}
	}
	return res.def, nil, nil
}

// Rune returns the character this resolver is responsible for.
func (res *Resolver) Rune() rune {
	return res.r
}

// Default returns the reading used if no candidate matches.
func (res *Resolver) Default() string {
	return res.def
}

// Candidates returns the candidate syllables in evaluation order.
func (res *Resolver) Candidates() []string {
	cc := make([]string, len(res.candidates))
	for i, c := range res.candidates {
		cc[i] = c.Syllable
	}
	return cc
}
