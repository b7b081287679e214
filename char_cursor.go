package charindex

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"unicode/utf8"
)

// CharCursor navigates an indexed string by char positions.
//
// The cursor is bound to one immutable IndexedString snapshot. Movement is in
// char steps, while internal addressing uses the cached offset table, so
// seeks do not scan the text.
type CharCursor struct {
	text    IndexedString
	char    uint64
	byteOff uint64
}

// NewCharCursor creates a cursor at the start of the indexed string.
func (is IndexedString) NewCharCursor() *CharCursor {
	return &CharCursor{text: is}
}

// CharPos returns the current char position of the cursor.
func (cc *CharCursor) CharPos() uint64 {
	if cc == nil {
		return 0
	}
	return cc.char
}

// ByteOffset returns the current cursor byte offset.
func (cc *CharCursor) ByteOffset() uint64 {
	if cc == nil {
		return 0
	}
	return cc.byteOff
}

// SeekChars moves the cursor to absolute char position n.
//
// n may equal CharCount, placing the cursor at end-of-text; larger values
// return ErrIndexOutOfBounds.
func (cc *CharCursor) SeekChars(n uint64) error {
	if cc == nil {
		return ErrIllegalArguments
	}
	if n == cc.text.CharCount() {
		cc.char = n
		cc.byteOff = cc.text.Len()
		return nil
	}
	b, ok := cc.text.ByteOffset(n)
	if !ok {
		return ErrIndexOutOfBounds
	}
	cc.char = n
	cc.byteOff = b
	return nil
}

// Next returns the character at the current cursor position and advances by
// one char.
//
// If the cursor is at end-of-text, ok is false.
func (cc *CharCursor) Next() (r rune, ok bool) {
	if cc == nil {
		return 0, false
	}
	r, ok = cc.text.GetChar(cc.char)
	if !ok {
		return 0, false
	}
	cc.char++
	cc.byteOff += uint64(utf8.RuneLen(r))
	return r, true
}

// Prev returns the character before the current cursor position and moves
// back by one char.
//
// If the cursor is at start-of-text, ok is false.
func (cc *CharCursor) Prev() (r rune, ok bool) {
	if cc == nil {
		return 0, false
	}
	if cc.char == 0 {
		return 0, false
	}
	r, ok = cc.text.GetChar(cc.char - 1)
	if !ok {
		return 0, false
	}
	cc.char--
	cc.byteOff -= uint64(utf8.RuneLen(r))
	return r, true
}
