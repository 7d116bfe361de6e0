package linectx

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/blockline/heapbuf"
)

func TestMemRoundTrip(t *testing.T) {
	hb := heapbuf.New()
	w := NewMem(hb)
	w.AddLine("<A %d", 1)
	w.AddLine("")
	w.AddLine("  payload")
	w.AddLine(">")
	if w.OutputSize() != int64(len("<A 1\x00  payload\x00>\x00")) {
		t.Errorf("OutputSize %d", w.OutputSize())
	}
	if string(hb.Bytes()) != "<A 1\x00  payload\x00>\x00" {
		t.Errorf("buffer %q", hb.Bytes())
	}
	if hb.Cap() != MemGranularity {
		t.Errorf("cap %d, want %d", hb.Cap(), MemGranularity)
	}
	r := NewMem(hb)
	got := readAll(t, r, 4096)
	if diff := cmp.Diff([]string{"<A 1", "  payload", ">"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestMemTruncateAdvances(t *testing.T) {
	hb := heapbuf.New()
	w := NewMem(hb)
	w.AddLine("abcdefgh")
	w.AddLine("ij")
	r := NewMem(hb)
	got := readAll(t, r, 4)
	if diff := cmp.Diff([]string{"abc", "ij"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestMemLineMax(t *testing.T) {
	hb := heapbuf.New()
	w := NewMem(hb)
	w.AddLine("%s", strings.Repeat("x", MemLineMax+100))
	if hb.Len() != MemLineMax+1 {
		t.Errorf("len %d, want %d", hb.Len(), MemLineMax+1)
	}
}

func TestMemBufferFull(t *testing.T) {
	hb := heapbuf.New()
	hb.SetLimit(8)
	w := NewMem(hb)
	w.AddLine("abc")
	if w.Err() != nil {
		t.Fatal(w.Err())
	}
	w.AddLine("defgh")
	if !errors.Is(w.Err(), ErrBufferFull) {
		t.Fatalf("Err = %v, want ErrBufferFull", w.Err())
	}
	if !errors.Is(w.Err(), heapbuf.ErrLimit) {
		t.Errorf("Err = %v, want wrapped ErrLimit", w.Err())
	}
	if hb.Len() != 0 {
		t.Errorf("buffer not emptied: %q", hb.Bytes())
	}
	w.AddLine("x")
	if hb.Len() != 0 || w.OutputSize() != 0 {
		t.Errorf("write after failure")
	}
	if _, err := w.GetLine(10); err != io.EOF {
		t.Errorf("got %v, want io.EOF", err)
	}
}

func TestMemNilBuffer(t *testing.T) {
	m := NewMem(nil)
	m.AddLine("x")
	if _, err := m.GetLine(10); err != io.EOF {
		t.Errorf("got %v", err)
	}
	if m.OutputSize() != 0 {
		t.Errorf("OutputSize %d", m.OutputSize())
	}
}
