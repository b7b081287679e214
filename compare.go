package charindex

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"hash/maphash"
	"strings"
)

// Value semantics for indexed strings mirror what plain strings do. Equality,
// ordering and hashing are defined strictly on the underlying text; the
// cached segmentation never participates, so two instances with equal text
// are equal regardless of how construction segmented them.

// hashSeed is shared by all hash computations so that equal text hashes
// equally for the lifetime of the process.
var hashSeed = maphash.MakeSeed()

// Equal reports whether two indexed strings contain equal text.
func (is IndexedString) Equal(other IndexedString) bool {
	return is.text == other.text
}

// EqualString reports whether the indexed text equals s.
func (is IndexedString) EqualString(s string) bool {
	return is.text == s
}

// Compare lexically compares the underlying texts, returning -1, 0 or +1.
func (is IndexedString) Compare(other IndexedString) int {
	return strings.Compare(is.text, other.text)
}

// CompareString lexically compares the indexed text to s.
func (is IndexedString) CompareString(s string) int {
	return strings.Compare(is.text, s)
}

// Hash returns a hash of the underlying text, consistent with Equal.
func (is IndexedString) Hash() uint64 {
	return maphash.String(hashSeed, is.text)
}

// Equal reports whether two borrowed texts are equal byte-wise.
func (ib IndexedBytes) Equal(other IndexedBytes) bool {
	return string(ib.text) == string(other.text)
}

// EqualString reports whether the borrowed text equals s.
func (ib IndexedBytes) EqualString(s string) bool {
	return string(ib.text) == s
}

// Compare lexically compares the borrowed texts, returning -1, 0 or +1.
func (ib IndexedBytes) Compare(other IndexedBytes) int {
	return strings.Compare(string(ib.text), string(other.text))
}

// CompareString lexically compares the borrowed text to s.
func (ib IndexedBytes) CompareString(s string) int {
	return strings.Compare(string(ib.text), s)
}

// Hash returns a hash of the borrowed text, consistent with Equal and with
// IndexedString.Hash for equal text.
func (ib IndexedBytes) Hash() uint64 {
	return maphash.Bytes(hashSeed, ib.text)
}
