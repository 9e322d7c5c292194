/*
Package pinyin converts Chinese text to its pinyin transcription.

Three output forms are supported: numbered tone ("bai4"), tone mark ("bài")
and tone free ("bai"). Characters are looked up in a Table, loaded once from
a streaming EntryReader. Characters with more than one reading
(polyphones) may be registered with a Resolver, which selects a reading by
matching fixed reference words around the character. Resolvers are collected
in a Registry, loaded from a BlockReader.

File format parsing is outside of this package. Sub-packages csvdict,
polyphone and gopinyin provide readers for concrete data sources, and package
bundled wires embedded default data into a ready-to-use Converter.

All structures are immutable after loading and may be shared between
goroutines without locking.

Tone Marks

Tone marks are placed by a fixed priority: 'a', then 'o', then 'e', then
whichever of 'i' and 'u' occurs later, then 'v' (for ü), then 'n'. Neutral
tone (5) never gets a mark. Every remaining 'v' is written as 'ü'.

	MarkTone("lv3")  => "lǚ"
	MarkTone("liu2") => "liú"
	MarkTone("ng4")  => "ǹg"

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package pinyin

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pinyin'
func tracer() tracing.Trace {
	return tracing.Select("pinyin")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
