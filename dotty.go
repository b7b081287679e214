package charindex

import (
	"fmt"
	"io"
	"strings"
)

// Index2Dot outputs the segment structure of an indexed string in Graphviz
// DOT format (for debugging purposes).
//
// Segments are rendered as a chain of boxes, labelled with their char range,
// starting byte offset and a clipped text sample.
func Index2Dot(text IndexedString, w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	io.WriteString(w, "\trankdir=LR;\n")
	nodelist, edgelist := "", ""
	id := 0
	for seg := range text.Segments() {
		id++
		sample := segSample(text.String(), seg.StartByte, seg.Bytes)
		label := fmt.Sprintf("chars %d–%d @%d\\n“%s”",
			seg.StartChar, seg.StartChar+seg.Chars-1, seg.StartByte, sample)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", id, label, segDotStyles(seg.Chars == seg.Bytes))
		if id > 1 {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", id-1, id)
		}
	}
	if id == 0 {
		nodelist = "\"0\" [label=\"\",color=black,shape=circle,fixedsize=true,width=.4];\n"
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

// segSample clips a segment's text to a short label-safe sample.
func segSample(text string, start, length uint64) string {
	const maxSample = 8
	s := text[start : start+length]
	cnt := 0
	for i := range s {
		if cnt == maxSample {
			s = s[:i] + "…"
			break
		}
		cnt++
	}
	r := strings.NewReplacer("\\", "\\\\", "\"", "\\\"", "\n", "\\n")
	return r.Replace(s)
}

func segDotStyles(ascii bool) string {
	s := ",style=filled,shape=box"
	if ascii {
		s += ",fillcolor=\"#a3d7e4\""
	} else {
		s += ",fillcolor=\"#e4c3a3\""
	}
	return s
}
