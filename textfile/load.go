package textfile

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/charindex"
)

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 1024000
	oneMb     = 1048576
)

// textFile represents an OS file which will be loaded as an indexed string.
type textFile struct {
	path string      // file name
	info os.FileInfo // result from Stat(path)
	file *os.File    // file handle
}

// Load reads a file, which must be a UTF-8 text file, and loads it as an
// indexed string. Clients may indicate a recommended fragment length for
// reading; fragSize 0 lets Load use sensible defaults derived from the file
// size.
//
// The whole content is read and indexed before Load returns; the resulting
// snapshot is immutable. Later changes to the file are not reflected — use a
// Monitor and Reload to pick them up.
func Load(name string, fragSize int64) (charindex.IndexedString, error) {
	tf, err := openFile(name)
	if err != nil {
		return charindex.IndexedString{}, err
	}
	defer tf.file.Close()
	if fragSize <= 0 || fragSize > tenKb {
		fragSize = defaultFragSize(tf.info.Size())
	}
	content, err := readFragments(tf, fragSize)
	if err != nil {
		return charindex.IndexedString{}, err
	}
	tracer().Debugf("textfile: loaded %d bytes from %q", len(content), name)
	return charindex.New(string(content))
}

// defaultFragSize picks a read fragment size adequate for a file size.
func defaultFragSize(size int64) int64 {
	switch {
	case size < 64:
		return max(size, 1)
	case size < 1024:
		return 64
	case size < tenKb:
		return 256
	case size < hundredKb:
		return 512
	case size < oneMb:
		return twoKb
	default:
		return sixKb
	}
}

// openFile opens an OS file and collects some useful information on it,
// checking for error conditions.
func openFile(name string) (*textFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, fmt.Errorf("textfile: cannot stat %q: %w", name, err)
	}
	if !fi.Mode().IsRegular() {
		return nil, ErrNotRegularFile
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, fmt.Errorf("textfile: cannot open %q: %w", name, err)
	}
	return &textFile{path: name, info: fi, file: file}, nil
}

// readFragments collects the file content fragment by fragment.
func readFragments(tf *textFile, fragSize int64) ([]byte, error) {
	var bf bytes.Buffer
	bf.Grow(int(tf.info.Size()))
	frag := make([]byte, fragSize)
	for {
		n, err := tf.file.Read(frag)
		bf.Write(frag[:n])
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("textfile: read of %q failed: %w", tf.path, err)
		}
	}
	return bf.Bytes(), nil
}
