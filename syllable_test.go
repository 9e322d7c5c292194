package pinyin

import "testing"

func TestIsChinese(t *testing.T) {
	for _, r := range []rune{0x4e00, 0x4e01, 0x9fa5, 0x9fa4, '嗯', '得', '隆'} {
		if !IsChinese(r) {
			t.Fatalf("%#U should be in the Chinese range", r)
		}
	}
	for _, r := range []rune{0x4dff, 0x9fa6, 0, '.', '，', 'a', 0xf900} {
		if IsChinese(r) {
			t.Fatalf("%#U should not be in the Chinese range", r)
		}
	}
}

func TestIsNumbered(t *testing.T) {
	invalid := []string{"", "3", "33", "a", "a0", "a6", "bai", "bai33", "b3i3", " a1", "a1 ", "Bai3", "lü3"}
	for _, s := range invalid {
		if IsNumbered(s) {
			t.Fatalf("%q should not be a numbered syllable", s)
		}
	}
	valid := []string{"a1", "a2", "a3", "a4", "a5", "bai1", "bai2", "bai3", "bai4", "bai5", "lv3", "ng4", "m2"}
	for _, s := range valid {
		if !IsNumbered(s) {
			t.Fatalf("%q should be a numbered syllable", s)
		}
	}
}
