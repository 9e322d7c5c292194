package pinyin

import (
	"fmt"
	"io"
	"slices"

	"github.com/npillmayer/schuko/tracing"
)

// WordSpec is a reference word as read from pattern data. Nil Pivots means
// "every occurrence of the block's character".
type WordSpec struct {
	Word   string
	Pivots []int
}

// CandidateSpec is one candidate line of a pattern block.
type CandidateSpec struct {
	Line     int // source line, for error messages
	Syllable string
	Words    []WordSpec
}

// Block is the pattern data for one polyphone character.
type Block struct {
	Line       int // source line of the block header
	Rune       rune
	Default    string
	Candidates []CandidateSpec
}

// BlockReader yields pattern blocks one-by-one.
// It should return io.EOF when the stream is exhausted.
type BlockReader interface {
	Next() (Block, error)
}

// Registry holds the resolvers of all polyphone characters.
// A Registry is immutable after loading.
type Registry struct {
	resolvers  map[rune]*Resolver
	Identifier string // Identifies the registry
}

// LoadRegistry compiles resolvers from a streaming, format-agnostic source.
// Errors name the source line of the offending block or candidate.
// No partial registry is returned.
func LoadRegistry(name string, reader BlockReader) (*Registry, error) {
	reg := &Registry{
		resolvers:  make(map[rune]*Resolver),
		Identifier: fmt.Sprintf("patterns: %s", name),
	}
	matchers := 0
	for {
		block, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		tracing.With(tracer()).Dump("block", block)
		if _, dup := reg.resolvers[block.Rune]; dup {
			return nil, fmt.Errorf("line %d: duplicate pattern block for %q", block.Line, block.Rune)
		}
		res, n, err := compileBlock(block)
		if err != nil {
			return nil, err
		}
		reg.resolvers[block.Rune] = res
		matchers += n
	}
	tracer().Infof("%s resolvers=%d matchers=%d", reg.Identifier, len(reg.resolvers), matchers)
	return reg, nil
}

func compileBlock(block Block) (*Resolver, int, error) {
	if !IsChinese(block.Rune) {
		return nil, 0, fmt.Errorf("line %d: %#U is not a valid Chinese character", block.Line, block.Rune)
	}
	if !IsNumbered(block.Default) {
		return nil, 0, fmt.Errorf("line %d: %q is not a valid syllable with tone number", block.Line, block.Default)
	}
	count := 0
	candidates := make([]Candidate, 0, len(block.Candidates))
	for _, spec := range block.Candidates {
		if !IsNumbered(spec.Syllable) {
			return nil, 0, fmt.Errorf("line %d: %q is not a valid syllable with tone number", spec.Line, spec.Syllable)
		}
		if len(spec.Words) == 0 {
			return nil, 0, fmt.Errorf("line %d: candidate %q has no reference words", spec.Line, spec.Syllable)
		}
		c := Candidate{Syllable: spec.Syllable, Matchers: make([]*WordMatcher, 0, len(spec.Words))}
		for _, w := range spec.Words {
			var m *WordMatcher
			var err error
			if w.Pivots == nil {
				m, err = NewWordMatcherFor(w.Word, block.Rune)
			} else {
				m, err = NewWordMatcher(w.Word, w.Pivots...)
			}
			if err != nil {
				return nil, 0, fmt.Errorf("line %d: %w", spec.Line, err)
			}
			c.Matchers = append(c.Matchers, m)
		}
		count += len(c.Matchers)
		candidates = append(candidates, c)
	}
	res, err := NewResolver(block.Rune, block.Default, candidates...)
	if err != nil {
		return nil, 0, fmt.Errorf("line %d: %w", block.Line, err)
	}
	tracer().Debugf("resolver for %q: default=%s candidates=%v", block.Rune, res.Default(), res.Candidates())
	return res, count, nil
}

// Resolver returns the resolver registered for r.
func (reg *Registry) Resolver(r rune) (*Resolver, bool) {
	if reg == nil {
		return nil, false
	}
	res, ok := reg.resolvers[r]
	return res, ok
}

// Len returns the number of registered resolvers.
func (reg *Registry) Len() int {
	if reg == nil {
		return 0
	}
	return len(reg.resolvers)
}

// Runes returns the characters with a resolver, in code point order.
func (reg *Registry) Runes() []rune {
	if reg == nil {
		return nil
	}
	rr := make([]rune, 0, len(reg.resolvers))
	for r := range reg.resolvers {
		rr = append(rr, r)
	}
	slices.Sort(rr)
	return rr
}
