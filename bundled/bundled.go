/*
Package bundled provides a ready-to-use pinyin converter.

The converter combines the character table of package gopinyin with the
polyphone patterns embedded into this package. It is built on first use and
shared by all callers.

	fmt.Println(bundled.ToMarked("我的")) // wǒ de
*/
package bundled

import (
	"bytes"
	_ "embed"
	"sync"

	"github.com/npillmayer/pinyin"
	"github.com/npillmayer/pinyin/gopinyin"
	"github.com/npillmayer/pinyin/polyphone"
)

//go:embed data/polyphones.txt
var patterns []byte

// Patterns returns the embedded polyphone pattern file.
func Patterns() []byte {
	return bytes.Clone(patterns)
}

var (
	once      sync.Once
	converter *pinyin.Converter
	loadErr   error
)

// Load returns the bundled converter, building it on first call.
// Input is converted as given, without Unicode normalization.
func Load() (*pinyin.Converter, error) {
	once.Do(func() {
		table, err := gopinyin.Load()
		if err != nil {
			loadErr = err
			return
		}
		reg, err := LoadRegistry()
		if err != nil {
			loadErr = err
			return
		}
		converter = pinyin.NewConverter(table, reg)
	})
	return converter, loadErr
}

// LoadRegistry compiles the embedded polyphone patterns.
func LoadRegistry() (*pinyin.Registry, error) {
	return polyphone.LoadRegistry("bundled", bytes.NewReader(patterns))
}

// Converter returns the bundled converter. It panics if the embedded data
// cannot be loaded.
func Converter() *pinyin.Converter {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// ToNumbered converts text to syllables with tone numbers.
func ToNumbered(text string) string {
	return Converter().ToNumbered(text)
}

// ToMarked converts text to syllables with tone marks.
func ToMarked(text string) string {
	return Converter().ToMarked(text)
}

// ToToneFree converts text to syllables without tones.
func ToToneFree(text string) string {
	return Converter().ToToneFree(text)
}
