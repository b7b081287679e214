package charindex

import (
	"io"
	"strings"
)

// Reader returns a reader for the bytes of the indexed string.
func (is IndexedString) Reader() io.Reader {
	return strings.NewReader(is.text)
}

// Reader returns a reader for the borrowed bytes.
//
// The reader aliases the borrowed slice; the caller's no-mutation contract
// extends over all reads.
func (ib IndexedBytes) Reader() io.Reader {
	return &bytesReader{text: ib.text}
}

type bytesReader struct {
	text   []byte
	cursor int
}

func (br *bytesReader) Read(p []byte) (n int, err error) {
	if br.cursor >= len(br.text) {
		return 0, io.EOF
	}
	n = copy(p, br.text[br.cursor:])
	br.cursor += n
	return n, nil
}
