/*
Package charindex provides strings with cached char-to-byte indices.

Indexed strings

Go strings are UTF-8 encoded, which makes indexing by character position an
O(n) operation: the nth Unicode scalar value can start at any byte offset,
depending on the width of every character before it. Applications which
repeatedly index into text by character position — editors, tokenizers,
terminal renderers — either pay that scan on every access, or decode the
whole text into a []rune at four bytes per character.

Package charindex takes a middle road. An IndexedString pairs an immutable
string with a compact offset table that costs one extra byte per character
and answers “where does character i start?” in amortized O(1) time,
worst case O(log n) — see package segment for how the table rolls over
into search segments. The table is a pure derived artifact of the text:
it is built once, never mutated, and must be rebuilt if the text changes.

IndexedString owns its text; IndexedBytes borrows a byte slice from the
caller, who must not mutate it while the wrapper is in use. Both mirror the
ergonomics of plain strings: equality, ordering and hashing are defined on
the text alone and never expose the cached segmentation.

Indexed strings focus on read-heavy workloads. Editing is out of scope; a
caller wanting to edit text constructs a fresh IndexedString afterwards.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package charindex

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'charindex'
func tracer() tracing.Trace {
	return tracing.Select("charindex")
}

// IndexError is an error type for the charindex module
type IndexError string

func (e IndexError) Error() string {
	return string(e)
}

// ErrInvalidUTF8 signals that input text is not well-formed UTF-8. An offset
// table built over invalid input would miscount segments, therefore
// construction validates and fails explicitly instead.
const ErrInvalidUTF8 = IndexError("text is not valid UTF-8")

// ErrIndexOutOfBounds is flagged whenever a char position is greater than the
// character count of the indexed text.
const ErrIndexOutOfBounds = IndexError("char index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = IndexError("illegal arguments")
