package segment

import "iter"

// Info is the public description of one segment, for diagnostics and dumps.
type Info struct {
	StartChar uint64 // char index of the segment's first character
	StartByte uint64 // byte offset of the segment's first character
	Chars     uint64 // characters covered by the segment
	Bytes     uint64 // bytes covered by the segment
}

// Segments returns an iterator over all segments in logical order.
func (t Table) Segments() iter.Seq[Info] {
	return func(yield func(Info) bool) {
		for k, h := range t.heads {
			endChar := t.CharCount()
			endByte := t.bytes
			if k+1 < len(t.heads) {
				endChar = t.heads[k+1].char
				endByte = t.heads[k+1].bytePos
			}
			info := Info{
				StartChar: h.char,
				StartByte: h.bytePos,
				Chars:     endChar - h.char,
				Bytes:     endByte - h.bytePos,
			}
			if !yield(info) {
				return
			}
		}
	}
}
