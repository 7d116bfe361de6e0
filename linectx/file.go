package linectx

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// File is a Context reading from an io.Reader or writing to an io.Writer,
// never both.
//
// Written lines end with CR LF. A line starting with '<' is written at the
// current indentation, which then grows by 2 spaces; a line starting with
// '>' shrinks the indentation by 2 spaces first and is written at the new
// level. Indentation is ignored on read.
type File struct {
	rd     io.ByteReader
	wr     io.Writer
	flush  func() error
	closer io.Closer

	indent   int
	bytesOut int64
	err      error
}

// NewReader returns a File reading lines from r. If r is an io.Closer,
// Close closes it.
func NewReader(r io.Reader) *File {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	f := &File{rd: br}
	if c, ok := r.(io.Closer); ok {
		f.closer = c
	}
	return f
}

// NewWriter returns a File writing lines to w. If w is an io.Closer, Close
// closes it.
func NewWriter(w io.Writer) *File {
	f := &File{wr: w}
	if c, ok := w.(io.Closer); ok {
		f.closer = c
	}
	return f
}

// OpenRead opens path for reading.
func OpenRead(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", path, err)
	}
	return NewReader(fh), nil
}

// CreateWrite creates or truncates path for writing. Output is buffered
// until Close.
func CreateWrite(path string) (*File, error) {
	fh, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("error creating %s: %w", path, err)
	}
	bw := bufio.NewWriter(fh)
	return &File{wr: bw, flush: bw.Flush, closer: fh}, nil
}

func (f *File) AddLine(format string, args ...any) {
	if f.wr == nil || f.err != nil {
		return
	}
	line := render(FileLineMax, format, args)
	a := f.indent
	if line != "" {
		switch line[0] {
		case '<':
			f.indent += 2
		case '>':
			f.indent -= 2
			a = f.indent
		}
	}
	b := &strings.Builder{}
	b.Grow(max(a, 0) + len(line) + 2)
	for i := 0; i < a; i++ {
		b.WriteByte(' ')
	}
	b.WriteString(line)
	b.WriteString("\r\n")
	out := b.String()
	f.bytesOut += int64(len(out))
	n, err := io.WriteString(f.wr, out)
	if err != nil {
		f.err = fmt.Errorf("%w: %w", ErrShortWrite, err)
		return
	}
	if n != len(out) {
		f.err = fmt.Errorf("%w: wrote %d of %d bytes", ErrShortWrite, n, len(out))
	}
}

// GetLine returns the next non-blank line with leading spaces and tabs
// removed. A line longer than capacity-1 bytes is split: the remainder is
// returned by the next call.
func (f *File) GetLine(capacity int) (string, error) {
	if f.rd == nil || capacity < 2 {
		return "", io.EOF
	}
	buf := make([]byte, 0, min(capacity-1, 256))
	for len(buf) < capacity-1 {
		c, err := f.rd.ReadByte()
		if err != nil {
			if err != io.EOF {
				if f.err == nil {
					f.err = err
				}
				return "", err
			}
			if len(buf) == 0 {
				return "", io.EOF
			}
			break
		}
		if c == '\r' || c == '\n' {
			if len(buf) == 0 {
				continue
			}
			break
		}
		if len(buf) == 0 && (c == ' ' || c == '\t') {
			continue
		}
		buf = append(buf, c)
	}
	return string(buf), nil
}

func (f *File) OutputSize() int64 {
	return f.bytesOut
}

func (f *File) Err() error {
	return f.err
}

func (f *File) HasError() bool {
	return f.err != nil
}

// Indent returns the current indentation in spaces.
func (f *File) Indent() int {
	return f.indent
}

// Close flushes buffered output and closes the underlying reader or writer
// if the File owns one.
func (f *File) Close() error {
	var err error
	if f.flush != nil {
		if err = f.flush(); err != nil && f.err == nil {
			f.err = fmt.Errorf("%w: %w", ErrShortWrite, err)
		}
		f.flush = nil
	}
	if f.closer != nil {
		if cerr := f.closer.Close(); err == nil {
			err = cerr
		}
		f.closer = nil
	}
	return err
}
