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

// IndexedString is a string whose char positions have been cached for ~O(1)
// char lookup. It owns its text.
//
// An indexed string created by
//
//	IndexedString{}
//
// is a valid object and behaves like the empty string.
//
// Construction allocates one additional byte per Unicode scalar value; for
// ASCII text that is 2 bytes total per character, as opposed to the 4 bytes
// a []rune decode requires. The density worsens as the share of multi-byte
// characters grows, up to 5 bytes per character in the worst case.
//
//	Operation     |  IndexedString  |  string
//	--------------+-----------------+--------
//	GetChar       |   ~O(1)         |   O(n)
//	CharCount     |   O(1)          |   O(n)
//	Iterate       |   O(n)          |   O(n)
//
// IndexedString is immutable and may be shared freely between goroutines.
// Any edit to the text requires constructing a fresh IndexedString.
type IndexedString struct {
	text  string
	table segment.Table
}

// New creates an IndexedString from a Go string. This is O(n), but the cost
// should only be paid once per text.
//
// The input must be valid UTF-8; New returns ErrInvalidUTF8 otherwise.
func New(s string) (IndexedString, error) {
	if !utf8.ValidString(s) {
		return IndexedString{}, ErrInvalidUTF8
	}
	is := IndexedString{
		text:  s,
		table: segment.Build([]byte(s)),
	}
	tracer().Debugf("charindex: indexed %d chars in %d segments",
		is.table.CharCount(), is.table.SegmentCount())
	return is, nil
}

// GetChar returns the character at char position i, counting Unicode scalar
// values from 0.
//
// ok is false iff i is out of range. Average O(1), worst case O(log n).
func (is IndexedString) GetChar(i uint64) (r rune, ok bool) {
	start, ok := is.table.Locate(i)
	if !ok {
		return 0, false
	}
	r, _ = utf8.DecodeRuneInString(is.text[start:])
	return r, true
}

// ByteOffset returns the byte offset of the character at char position i.
//
// ok is false iff i is out of range.
func (is IndexedString) ByteOffset(i uint64) (uint64, bool) {
	return is.table.Locate(i)
}

// CharCount returns the number of characters in the text. O(1).
func (is IndexedString) CharCount() uint64 {
	return is.table.CharCount()
}

// Len returns the text length in bytes.
func (is IndexedString) Len() uint64 {
	return uint64(len(is.text))
}

// IsVoid reports whether the text has no bytes.
func (is IndexedString) IsVoid() bool {
	return len(is.text) == 0
}

// String returns the underlying text. IndexedString implements fmt.Stringer;
// display never exposes the cached segmentation.
func (is IndexedString) String() string {
	return is.text
}

// IntoString hands back the raw text, conceptually discarding the index.
//
// The returned string compares equal to the text the IndexedString was
// constructed from.
func (is IndexedString) IntoString() string {
	return is.text
}

// Chars returns an iterator over (char position, character) pairs in logical
// order.
func (is IndexedString) Chars() iter.Seq2[uint64, rune] {
	return func(yield func(uint64, rune) bool) {
		var i uint64
		for _, r := range is.text {
			if !yield(i, r) {
				return
			}
			i++
		}
	}
}

// Segments returns an iterator over the index's segment descriptions, for
// diagnostics and dumps.
func (is IndexedString) Segments() iter.Seq[segment.Info] {
	return is.table.Segments()
}
