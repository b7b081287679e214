/*
Package format renders diagnostic dumps of indexed strings to a console.

The dump shows one row per index segment: its char range, byte range and a
clipped text sample. Clipping respects display columns (UAX#11 East Asian
width), not rune counts, so dumps of CJK-heavy text stay aligned on
fixed-width terminals.

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package format

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'charindex'
func tracer() tracing.Trace {
	return tracing.Select("charindex")
}
