package linectx

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// limitWriter accepts at most n bytes, then short-writes.
type limitWriter struct {
	n      int
	buf    bytes.Buffer
	writes int
}

func (w *limitWriter) Write(p []byte) (int, error) {
	w.writes++
	if len(p) > w.n {
		k := w.n
		w.buf.Write(p[:k])
		w.n = 0
		return k, nil
	}
	w.n -= len(p)
	return w.buf.Write(p)
}

func readAll(t *testing.T, lc Context, capacity int) []string {
	t.Helper()
	res := []string{}
	for {
		ln, err := lc.GetLine(capacity)
		if err == io.EOF {
			return res
		}
		if err != nil {
			t.Fatalf("GetLine: %v", err)
		}
		res = append(res, ln)
	}
}

func TestFileWriteIndent(t *testing.T) {
	buf := &bytes.Buffer{}
	f := NewWriter(buf)
	f.AddLine("<SONG %s", "x")
	f.AddLine("TEMPO %d", 120)
	f.AddLine("<TRACK")
	f.AddLine("NAME %q", "lead")
	f.AddLine(">")
	f.AddLine(">")
	want := "<SONG x\r\n" +
		"  TEMPO 120\r\n" +
		"  <TRACK\r\n" +
		"    NAME \"lead\"\r\n" +
		"  >\r\n" +
		">\r\n"
	if buf.String() != want {
		t.Errorf("got\n%q\nwant\n%q", buf.String(), want)
	}
	if f.OutputSize() != int64(len(want)) {
		t.Errorf("OutputSize %d, want %d", f.OutputSize(), len(want))
	}
	if f.Indent() != 0 {
		t.Errorf("Indent %d", f.Indent())
	}
	if f.Err() != nil {
		t.Errorf("unexpected error %v", f.Err())
	}
}

func TestFileUnbalancedCloseNoIndent(t *testing.T) {
	buf := &bytes.Buffer{}
	f := NewWriter(buf)
	f.AddLine(">")
	f.AddLine("x")
	if buf.String() != ">\r\nx\r\n" {
		t.Errorf("got %q", buf.String())
	}
	if f.Indent() != -2 {
		t.Errorf("Indent %d", f.Indent())
	}
}

func TestFileStickyError(t *testing.T) {
	w := &limitWriter{n: 10}
	f := NewWriter(w)
	f.AddLine("<BLOCK")
	f.AddLine("0123456789")
	if !errors.Is(f.Err(), ErrShortWrite) {
		t.Fatalf("Err = %v, want ErrShortWrite", f.Err())
	}
	out := w.buf.String()
	writes := w.writes
	size := f.OutputSize()
	for i := 0; i < 5; i++ {
		f.AddLine("more %d", i)
	}
	if w.buf.String() != out || w.writes != writes {
		t.Errorf("writes after error: %q", w.buf.String())
	}
	if f.OutputSize() != size {
		t.Errorf("OutputSize changed from %d to %d", size, f.OutputSize())
	}
	if !f.HasError() {
		t.Error("error flag cleared")
	}
}

func TestFileRead(t *testing.T) {
	in := "<A\r\n\r\n   x 1\n\t\ty\r\r\n  \n>\rlast"
	f := NewReader(strings.NewReader(in))
	got := readAll(t, f, 4096)
	want := []string{"<A", "x 1", "y", ">", "last"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFileReadTruncates(t *testing.T) {
	f := NewReader(strings.NewReader("abcdefg\nhi\n"))
	got := readAll(t, f, 4)
	want := []string{"abc", "def", "g", "hi"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFileReadSmallCapacity(t *testing.T) {
	f := NewReader(strings.NewReader("abc\n"))
	if _, err := f.GetLine(1); err != io.EOF {
		t.Errorf("got %v, want io.EOF", err)
	}
}

func TestFileWriteOnlyReadsNothing(t *testing.T) {
	f := NewWriter(&bytes.Buffer{})
	if _, err := f.GetLine(100); err != io.EOF {
		t.Errorf("got %v, want io.EOF", err)
	}
	r := NewReader(strings.NewReader("x\n"))
	r.AddLine("y")
	if r.OutputSize() != 0 {
		t.Errorf("reader wrote %d bytes", r.OutputSize())
	}
}

func TestCreateWriteOpenRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.blk")
	w, err := CreateWrite(path)
	if err != nil {
		t.Fatal(err)
	}
	w.AddLine("<DOC")
	w.AddLine("|%s", "hello")
	w.AddLine(">")
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if w.Err() != nil {
		t.Fatal(w.Err())
	}
	d, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != "<DOC\r\n  |hello\r\n>\r\n" {
		t.Errorf("file content %q", d)
	}
	r, err := OpenRead(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	got := readAll(t, r, 4096)
	if diff := cmp.Diff([]string{"<DOC", "|hello", ">"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestOpenReadMissing(t *testing.T) {
	_, err := OpenRead(filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v, want not exist", err)
	}
}

func TestContextInterface(t *testing.T) {
	var _ Context = (*File)(nil)
	var _ Context = (*Mem)(nil)
}
