/*
Package segment implements the segmented char-offset table backing charindex.

The table trades a full per-character offset array (8 bytes per character)
for a single relative-offset byte per character plus a small array of segment
heads. A segment is a run of characters whose byte offsets relative to the
segment start fit into one byte; a new segment opens whenever the next
character would push the running relative offset past MaxRel ("rollover").
Lookups binary-search the heads and finish with constant-time arithmetic over
the segment's delta bytes.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package segment

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
