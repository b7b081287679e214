package textfile

import "errors"

var (
	// ErrNotRegularFile signals that the named path is not a regular file.
	ErrNotRegularFile = errors.New("textfile: not a regular file")
	// ErrMonitorClosed signals use of a monitor after Close.
	ErrMonitorClosed = errors.New("textfile: monitor is closed")
)
