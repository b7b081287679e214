package segment

import (
	"sort"
	"unicode/utf8"
)

// MaxRel is the maximum relative byte offset a segment may record.
//
// A segment closes as soon as the next character would push its cumulative
// relative offset past MaxRel, so every recorded delta fits in one byte.
const MaxRel = 255

// head describes one segment of the table.
//
// A segment covers the characters [char, nextHead.char) and the bytes
// [bytePos, nextHead.bytePos); the last segment extends to the end of the
// indexed text. Since the table records exactly one delta byte per character,
// a segment's delta run starts at index head.char of the shared delta array.
type head struct {
	char    uint64 // starting char index
	bytePos uint64 // starting byte offset
}

// Table translates char indices to byte offsets in UTF-8 text.
//
// The table stores one byte per character: the character's byte offset
// relative to the start of its segment. Segment heads form a sorted array
// used for binary search. The table is immutable after Build and never holds
// the text it indexes; it must be rebuilt whenever the text changes.
//
//	Operation     |  Table          |  naive scan
//	--------------+-----------------+------------
//	CharCount     |  O(1)           |   O(n)
//	Locate        |  O(log s)       |   O(n)
//
// with s = number of segments. ASCII-heavy text packs up to MaxRel characters
// into a single segment, so s stays small and Locate is O(1) in practice.
type Table struct {
	heads  []head
	deltas []byte
	bytes  uint64
}

// Build scans text once and constructs its offset table. O(n).
//
// The text must be valid UTF-8; Build does not re-validate. Callers that
// cannot guarantee validity must check before building (the charindex
// wrappers do), otherwise char counts are unreliable.
func Build(text []byte) Table {
	t := Table{bytes: uint64(len(text))}
	if len(text) == 0 {
		return t
	}
	t.deltas = make([]byte, 0, len(text))
	t.heads = append(t.heads, head{})
	rel := 0
	for pos := 0; pos < len(text); {
		_, n := utf8.DecodeRune(text[pos:])
		if rel+n > MaxRel {
			t.heads = append(t.heads, head{
				char:    uint64(len(t.deltas)),
				bytePos: uint64(pos),
			})
			rel = 0
		}
		t.deltas = append(t.deltas, byte(rel))
		rel += n
		pos += n
	}
	return t
}

// CharCount returns the number of characters in the indexed text. O(1).
func (t Table) CharCount() uint64 {
	return uint64(len(t.deltas))
}

// ByteLen returns the byte length of the indexed text. O(1).
func (t Table) ByteLen() uint64 {
	return t.bytes
}

// SegmentCount returns the number of segments.
func (t Table) SegmentCount() int {
	return len(t.heads)
}

// Locate resolves char index i to its byte offset in the indexed text.
//
// ok is false iff i is out of range. Average O(1), worst case O(log s).
func (t Table) Locate(i uint64) (byteOff uint64, ok bool) {
	if i >= t.CharCount() {
		return 0, false
	}
	h := t.heads[t.headFor(i)]
	return h.bytePos + uint64(t.deltas[i]), true
}

// Span resolves char index i to its byte range [start,end) in the indexed
// text. ok is false iff i is out of range.
func (t Table) Span(i uint64) (start, end uint64, ok bool) {
	if i >= t.CharCount() {
		return 0, 0, false
	}
	k := t.headFor(i)
	h := t.heads[k]
	start = h.bytePos + uint64(t.deltas[i])
	switch {
	case i+1 >= t.CharCount():
		end = t.bytes
	case k+1 < len(t.heads) && i+1 >= t.heads[k+1].char:
		end = t.heads[k+1].bytePos
	default:
		end = h.bytePos + uint64(t.deltas[i+1])
	}
	return start, end, true
}

// DecodeAt decodes the character at char index i from text.
//
// text must be the byte sequence the table was built from. ok is false iff
// i is out of range; for valid input the decode itself cannot fail.
func (t Table) DecodeAt(text []byte, i uint64) (rune, bool) {
	start, end, ok := t.Span(i)
	if !ok {
		return 0, false
	}
	r, _ := utf8.DecodeRune(text[start:end])
	return r, true
}

// headFor returns the index of the segment containing char index i.
//
// Callers must ensure i < CharCount. Picks the head with the largest
// starting char index ≤ i.
func (t Table) headFor(i uint64) int {
	k := sort.Search(len(t.heads), func(k int) bool {
		return t.heads[k].char > i
	}) - 1
	assert(k >= 0, "segment table: first head must start at char 0")
	return k
}
