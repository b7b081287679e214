/*
Package textfile provides API helpers to load UTF-8 text files as indexed
strings.

Load reads a file in size-adapted fragments and indexes the content once.
Monitor keeps the latest indexed snapshot for a file and re-indexes on
Reload, broadcasting every new snapshot to subscribers. This matches the
immutability contract of indexed strings: an edit to the underlying file
never mutates a snapshot, it produces a fresh one.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'charindex'
func tracer() tracing.Trace {
	return tracing.Select("charindex")
}
