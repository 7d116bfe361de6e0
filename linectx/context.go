package linectx

import (
	"errors"
	"fmt"
)

const (
	// MemLineMax and FileLineMax bound the rendered length of one line;
	// AddLine truncates longer renderings.
	MemLineMax  = 4095
	FileLineMax = 8191

	// MemGranularity is the allocation granularity of a Mem buffer.
	MemGranularity = 256 * 1024
)

var (
	ErrShortWrite = errors.New("short write")
	ErrBufferFull = errors.New("buffer full")
)

// Context is a sequential stream of lines.
type Context interface {
	// AddLine renders format and args as with fmt.Sprintf and appends the
	// result as one line. It does nothing once Err is non-nil.
	AddLine(format string, args ...any)
	// GetLine returns the next line, holding at most capacity-1 bytes, or
	// io.EOF at the end of the stream.
	GetLine(capacity int) (string, error)
	// OutputSize returns the number of bytes written so far.
	OutputSize() int64
	// Err returns the first write failure, if any.
	Err() error
}

func render(max int, format string, args []any) string {
	s := fmt.Sprintf(format, args...)
	if len(s) > max {
		s = s[:max]
	}
	return s
}
