package segment

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

func TestBuildEmpty(t *testing.T) {
	tab := Build(nil)
	if tab.CharCount() != 0 {
		t.Fatalf("unexpected char count: %d", tab.CharCount())
	}
	if tab.SegmentCount() != 0 {
		t.Fatalf("unexpected segment count: %d", tab.SegmentCount())
	}
	if _, ok := tab.Locate(0); ok {
		t.Fatalf("Locate(0) on empty table should not succeed")
	}
}

func TestLocateGroundTruth(t *testing.T) {
	inputs := []string{
		"foo",
		"Hello World",
		"a\n😀b",
		"Grüße, 世界",
		strings.Repeat("é", 500),
		strings.Repeat("x", 1000) + "😀" + strings.Repeat("y", 1000),
	}
	for _, input := range inputs {
		tab := Build([]byte(input))
		if int(tab.CharCount()) != utf8.RuneCountInString(input) {
			t.Fatalf("char count %d != rune count %d for %q",
				tab.CharCount(), utf8.RuneCountInString(input), input)
		}
		i := uint64(0)
		for off, r := range input {
			got, ok := tab.Locate(i)
			if !ok {
				t.Fatalf("Locate(%d) failed for %q", i, input)
			}
			if got != uint64(off) {
				t.Fatalf("Locate(%d) = %d, want %d for %q", i, got, off, input)
			}
			dec, ok := tab.DecodeAt([]byte(input), i)
			if !ok || dec != r {
				t.Fatalf("DecodeAt(%d) = %q, want %q", i, dec, r)
			}
			i++
		}
		if _, ok := tab.Locate(tab.CharCount()); ok {
			t.Fatalf("Locate(CharCount) should fail for %q", input)
		}
	}
}

func TestRolloverBoundary(t *testing.T) {
	// 255 ASCII chars fill one segment exactly; the multi-byte char must
	// open a second segment and still resolve.
	input := strings.Repeat("a", 255) + "😀"
	tab := Build([]byte(input))
	if tab.CharCount() != 256 {
		t.Fatalf("unexpected char count: %d", tab.CharCount())
	}
	if tab.SegmentCount() != 2 {
		t.Fatalf("expected 2 segments, got %d", tab.SegmentCount())
	}
	for i := uint64(0); i < 255; i++ {
		off, ok := tab.Locate(i)
		if !ok || off != i {
			t.Fatalf("Locate(%d) = %d/%v, want %d", i, off, ok, i)
		}
	}
	r, ok := tab.DecodeAt([]byte(input), 255)
	if !ok || r != '😀' {
		t.Fatalf("DecodeAt(255) = %q/%v, want 😀", r, ok)
	}
}

func TestMultiSegmentSearch(t *testing.T) {
	// 300 three-byte chars force multiple segments (85 chars per segment).
	input := strings.Repeat("世", 300)
	tab := Build([]byte(input))
	if tab.CharCount() != 300 {
		t.Fatalf("unexpected char count: %d", tab.CharCount())
	}
	if tab.SegmentCount() < 3 {
		t.Fatalf("expected several segments, got %d", tab.SegmentCount())
	}
	off, ok := tab.Locate(150)
	if !ok || off != 450 {
		t.Fatalf("Locate(150) = %d/%v, want 450", off, ok)
	}
	r, ok := tab.DecodeAt([]byte(input), 150)
	if !ok || r != '世' {
		t.Fatalf("DecodeAt(150) = %q/%v, want 世", r, ok)
	}
}

func TestSpanWidths(t *testing.T) {
	input := "a€😀b"
	tab := Build([]byte(input))
	want := []uint64{1, 3, 4, 1}
	for i, w := range want {
		start, end, ok := tab.Span(uint64(i))
		if !ok {
			t.Fatalf("Span(%d) failed", i)
		}
		if end-start != w {
			t.Fatalf("Span(%d) width = %d, want %d", i, end-start, w)
		}
	}
	if _, _, ok := tab.Span(4); ok {
		t.Fatalf("Span(4) should fail")
	}
}

func TestSegmentsIterator(t *testing.T) {
	input := strings.Repeat("a", 255) + "😀"
	tab := Build([]byte(input))
	var infos []Info
	for info := range tab.Segments() {
		infos = append(infos, info)
	}
	want := []Info{
		{StartChar: 0, StartByte: 0, Chars: 255, Bytes: 255},
		{StartChar: 255, StartByte: 255, Chars: 1, Bytes: 4},
	}
	if diff := cmp.Diff(want, infos); diff != "" {
		t.Fatalf("unexpected segment infos (-want +got):\n%s", diff)
	}
}

func TestRebuildIdempotent(t *testing.T) {
	input := "Grüße, 世界 " + strings.Repeat("é", 300)
	a := Build([]byte(input))
	b := Build([]byte(input))
	if a.CharCount() != b.CharCount() {
		t.Fatalf("char counts differ: %d vs %d", a.CharCount(), b.CharCount())
	}
	for i := uint64(0); i < a.CharCount(); i++ {
		offA, okA := a.Locate(i)
		offB, okB := b.Locate(i)
		if okA != okB || offA != offB {
			t.Fatalf("rebuild disagrees at %d: %d/%v vs %d/%v", i, offA, okA, offB, okB)
		}
	}
}
