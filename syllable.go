package pinyin

import "errors"

// The range of code points covered by pinyin tables.
const (
	MinCodePoint rune = 0x4e00
	MaxCodePoint rune = 0x9fa5
)

// ErrInvalidArgument is wrapped by errors reporting a violated call contract,
// e.g. asking a Resolver for a character it is not responsible for.
var ErrInvalidArgument = errors.New("invalid argument")

// IsChinese is true for code points in [MinCodePoint…MaxCodePoint].
func IsChinese(r rune) bool {
	return r >= MinCodePoint && r <= MaxCodePoint
}

// IsNumbered checks if s is a syllable with a trailing tone number, i.e.
// at least one lowercase ASCII letter followed by a single digit 1…5.
//
//	"bai4" => true
//	"bai"  => false
//	"b3i3" => false
func IsNumbered(s string) bool {
	if len(s) < 2 {
		return false
	}
	last := len(s) - 1
	for i := 0; i < last; i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return s[last] >= '1' && s[last] <= '5'
}

// tone returns the tone number of a numbered syllable. s must satisfy IsNumbered.
func tone(s string) int {
	return int(s[len(s)-1] - '0')
}
