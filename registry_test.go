package pinyin

import (
	"io"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type sliceBlockReader struct {
	blocks []Block
	index  int
}

func (r *sliceBlockReader) Next() (Block, error) {
	if r.index >= len(r.blocks) {
		return Block{}, io.EOF
	}
	block := r.blocks[r.index]
	r.index++
	return block, nil
}

func testBlocks() []Block {
	return []Block{
		{Line: 1, Rune: '万', Default: "wan4", Candidates: []CandidateSpec{
			{Line: 2, Syllable: "mo4", Words: []WordSpec{{Word: "万俟"}}},
		}},
		{Line: 4, Rune: '的', Default: "de5", Candidates: []CandidateSpec{
			{Line: 5, Syllable: "di2", Words: []WordSpec{{Word: "的的喀喀", Pivots: []int{0, 1}}, {Word: "的确"}}},
			{Line: 6, Syllable: "di1", Words: []WordSpec{{Word: "娇的的", Pivots: []int{1, 2}}}},
			{Line: 7, Syllable: "di4", Words: []WordSpec{{Word: "目的"}}},
		}},
		{Line: 9, Rune: '钉', Default: "ding1", Candidates: []CandidateSpec{
			{Line: 10, Syllable: "ding4", Words: []WordSpec{{Word: "钉钉", Pivots: []int{0}}}},
		}},
	}
}

func TestLoadRegistry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pinyin")
	defer teardown()
	//
	reg, err := LoadRegistry("test", &sliceBlockReader{blocks: testBlocks()})
	if err != nil {
		t.Fatal(err)
	}
	if reg.Len() != 3 {
		t.Fatalf("expected 3 resolvers, got %d", reg.Len())
	}
	if !slices.Equal(reg.Runes(), []rune{'万', '的', '钉'}) {
		t.Fatalf("unexpected rune list %q", reg.Runes())
	}
	res, ok := reg.Resolver('的')
	if !ok {
		t.Fatalf("expected resolver for 的")
	}
	tests := []struct {
		text  string
		index int
		want  string
	}{
		{"他的娇的的的宝宝在哭", 1, "de5"},
		{"他的娇的的的宝宝在哭", 3, "di1"},
		{"他的娇的的的宝宝在哭", 4, "di1"},
		{"他的娇的的的宝宝在哭", 5, "de5"},
		{"我的目的地是火车站", 3, "di4"},
		{"的确", 0, "di2"},
	}
	for _, tt := range tests {
		got, err := res.Resolve([]rune(tt.text), tt.index)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Fatalf("%s[%d]: got %q, want %q", tt.text, tt.index, got, tt.want)
		}
	}
	if _, ok := reg.Resolver('乐'); ok {
		t.Fatalf("did not expect a resolver for 乐")
	}
}

func TestLoadRegistryErrors(t *testing.T) {
	tests := []struct {
		name   string
		blocks []Block
		line   string
	}{
		{"duplicate block", append(testBlocks(), Block{Line: 12, Rune: '万', Default: "wan4"}), "line 12:"},
		{"bad default", []Block{{Line: 3, Rune: '万', Default: "wan"}}, "line 3:"},
		{"not Chinese", []Block{{Line: 1, Rune: 'w', Default: "wan4"}}, "line 1:"},
		{"bad candidate", []Block{{Line: 1, Rune: '万', Default: "wan4", Candidates: []CandidateSpec{
			{Line: 2, Syllable: "mo", Words: []WordSpec{{Word: "万俟"}}},
		}}}, "line 2:"},
		{"no words", []Block{{Line: 1, Rune: '万', Default: "wan4", Candidates: []CandidateSpec{
			{Line: 2, Syllable: "mo4"},
		}}}, "line 2:"},
		{"foreign word", []Block{{Line: 1, Rune: '万', Default: "wan4", Candidates: []CandidateSpec{
			{Line: 5, Syllable: "mo4", Words: []WordSpec{{Word: "俟卨"}}},
		}}}, "line 5:"},
		{"bad pivot", []Block{{Line: 1, Rune: '万', Default: "wan4", Candidates: []CandidateSpec{
			{Line: 2, Syllable: "mo4", Words: []WordSpec{{Word: "万俟", Pivots: []int{2}}}},
		}}}, "line 2:"},
		{"duplicate candidate", []Block{{Line: 7, Rune: '万', Default: "wan4", Candidates: []CandidateSpec{
			{Line: 8, Syllable: "mo4", Words: []WordSpec{{Word: "万俟"}}},
			{Line: 9, Syllable: "mo4", Words: []WordSpec{{Word: "万俟"}}},
		}}}, "line 7:"},
	}
	for _, tt := range tests {
		_, err := LoadRegistry(tt.name, &sliceBlockReader{blocks: tt.blocks})
		if err == nil {
			t.Fatalf("%s: expected error", tt.name)
		}
		if !strings.HasPrefix(err.Error(), tt.line) {
			t.Fatalf("%s: error should start with %q, is %q", tt.name, tt.line, err.Error())
		}
	}
}

func TestNilRegistry(t *testing.T) {
	var reg *Registry
	if _, ok := reg.Resolver('万'); ok || reg.Len() != 0 || reg.Runes() != nil {
		t.Fatalf("nil registry should be empty")
	}
}
