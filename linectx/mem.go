package linectx

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/blockline/heapbuf"
)

// Mem is a Context over a heapbuf.Buf. Each line is stored followed by a
// NUL byte. Empty lines are not stored.
type Mem struct {
	buf *heapbuf.Buf
	pos int
	err error
}

// NewMem returns a Context reading or appending to buf. The caller keeps
// ownership of buf.
func NewMem(buf *heapbuf.Buf) *Mem {
	return &Mem{buf: buf}
}

func (m *Mem) AddLine(format string, args ...any) {
	if m.buf == nil {
		return
	}
	line := render(MemLineMax, format, args)
	if line == "" {
		return
	}
	sz := m.buf.Len()
	if sz == 0 {
		m.buf.SetGranularity(MemGranularity)
	}
	d, err := m.buf.Resize(sz + len(line) + 1)
	if err != nil {
		m.buf.Resize(0)
		m.buf = nil
		m.err = fmt.Errorf("%w: %w", ErrBufferFull, err)
		return
	}
	copy(d[sz:], line)
	d[sz+len(line)] = 0
}

// GetLine returns the line at the read cursor truncated to capacity-1
// bytes. The cursor moves past the whole line either way.
func (m *Mem) GetLine(capacity int) (string, error) {
	if m.buf == nil {
		return "", io.EOF
	}
	d := m.buf.Bytes()
	if m.pos >= len(d) {
		return "", io.EOF
	}
	rest := d[m.pos:]
	n := bytes.IndexByte(rest, 0)
	if n < 0 {
		n = len(rest)
	}
	m.pos += n + 1
	a := min(n, capacity-1)
	if a < 0 {
		a = 0
	}
	return string(rest[:a]), nil
}

func (m *Mem) OutputSize() int64 {
	if m.buf == nil {
		return 0
	}
	return int64(m.buf.Len())
}

func (m *Mem) Err() error {
	return m.err
}
