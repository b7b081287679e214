package charindex

import (
	"bytes"
	"strings"
	"testing"
)

func TestIndex2Dot(t *testing.T) {
	s, err := New(strings.Repeat("a", 255) + "😀")
	if err != nil {
		t.Fatal(err.Error())
	}
	var buf bytes.Buffer
	Index2Dot(s, &buf)
	dot := buf.String()
	if !strings.HasPrefix(dot, "strict digraph {") {
		t.Errorf("missing digraph preamble")
	}
	if !strings.Contains(dot, "chars 0–254 @0") {
		t.Errorf("missing first segment node:\n%s", dot)
	}
	if !strings.Contains(dot, "chars 255–255 @255") {
		t.Errorf("missing second segment node:\n%s", dot)
	}
	if !strings.Contains(dot, "\"1\" -> \"2\"") {
		t.Errorf("missing segment chain edge:\n%s", dot)
	}
}
