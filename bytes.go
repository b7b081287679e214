package charindex

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"iter"
	"unicode/utf8"

	"github.com/npillmayer/charindex/segment"
)

// IndexedBytes is the borrowing variant of IndexedString: it holds a
// read-only reference to a caller-owned byte slice instead of owning a copy
// of the text.
//
// The caller must guarantee that the slice is neither mutated nor
// re-allocated while the IndexedBytes is in use; the cached index is only
// valid for the exact bytes it was built from. Apart from ownership there is
// no behavioral difference to IndexedString.
type IndexedBytes struct {
	text  []byte
	table segment.Table
}

// NewBytes creates an IndexedBytes over a caller-owned byte slice, without
// copying. O(n), paid once.
//
// The slice must contain valid UTF-8; NewBytes returns ErrInvalidUTF8
// otherwise.
func NewBytes(b []byte) (IndexedBytes, error) {
	if !utf8.Valid(b) {
		return IndexedBytes{}, ErrInvalidUTF8
	}
	ib := IndexedBytes{
		text:  b,
		table: segment.Build(b),
	}
	tracer().Debugf("charindex: indexed %d borrowed chars in %d segments",
		ib.table.CharCount(), ib.table.SegmentCount())
	return ib, nil
}

// GetChar returns the character at char position i, counting Unicode scalar
// values from 0.
//
// ok is false iff i is out of range. Average O(1), worst case O(log n).
func (ib IndexedBytes) GetChar(i uint64) (rune, bool) {
	return ib.table.DecodeAt(ib.text, i)
}

// ByteOffset returns the byte offset of the character at char position i.
//
// ok is false iff i is out of range.
func (ib IndexedBytes) ByteOffset(i uint64) (uint64, bool) {
	return ib.table.Locate(i)
}

// CharCount returns the number of characters in the text. O(1).
func (ib IndexedBytes) CharCount() uint64 {
	return ib.table.CharCount()
}

// Len returns the text length in bytes.
func (ib IndexedBytes) Len() uint64 {
	return uint64(len(ib.text))
}

// IsVoid reports whether the text has no bytes.
func (ib IndexedBytes) IsVoid() bool {
	return len(ib.text) == 0
}

// Bytes returns the borrowed byte slice. Mutating it invalidates the index.
func (ib IndexedBytes) Bytes() []byte {
	return ib.text
}

// String materializes the borrowed bytes as a string copy.
func (ib IndexedBytes) String() string {
	return string(ib.text)
}

// Chars returns an iterator over (char position, character) pairs in logical
// order.
func (ib IndexedBytes) Chars() iter.Seq2[uint64, rune] {
	return func(yield func(uint64, rune) bool) {
		var i uint64
		for pos := 0; pos < len(ib.text); {
			r, n := utf8.DecodeRune(ib.text[pos:])
			if !yield(i, r) {
				return
			}
			i++
			pos += n
		}
	}
}

// Segments returns an iterator over the index's segment descriptions.
func (ib IndexedBytes) Segments() iter.Seq[segment.Info] {
	return ib.table.Segments()
}
