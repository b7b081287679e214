package charindex

import (
	"io"
	"testing"
)

func TestReaders(t *testing.T) {
	input := "Grüße, 世界"
	s, _ := New(input)
	out, err := io.ReadAll(s.Reader())
	if err != nil {
		t.Fatal(err.Error())
	}
	if string(out) != input {
		t.Errorf("owning reader produced %q", string(out))
	}
	ib, _ := NewBytes([]byte(input))
	out, err = io.ReadAll(ib.Reader())
	if err != nil {
		t.Fatal(err.Error())
	}
	if string(out) != input {
		t.Errorf("borrowing reader produced %q", string(out))
	}
}
