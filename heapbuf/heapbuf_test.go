package heapbuf

import (
	"errors"
	"testing"
)

func TestResizeKeepsContent(t *testing.T) {
	b := New()
	if err := b.Append([]byte("hello")); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Resize(100); err != nil {
		t.Fatal(err)
	}
	if string(b.Bytes()[:5]) != "hello" {
		t.Errorf("got %q", b.Bytes()[:5])
	}
	if _, err := b.Resize(2); err != nil {
		t.Fatal(err)
	}
	if string(b.Bytes()) != "he" {
		t.Errorf("got %q", b.Bytes())
	}
}

func TestGranularity(t *testing.T) {
	b := New()
	b.SetGranularity(1024)
	if _, err := b.Resize(1); err != nil {
		t.Fatal(err)
	}
	if b.Cap() != 1024 {
		t.Errorf("cap %d, want 1024", b.Cap())
	}
	if _, err := b.Resize(1025); err != nil {
		t.Fatal(err)
	}
	if b.Cap() != 2048 {
		t.Errorf("cap %d, want 2048", b.Cap())
	}
}

func TestLimit(t *testing.T) {
	b := New()
	b.SetLimit(4)
	if err := b.Append([]byte("abcd")); err != nil {
		t.Fatal(err)
	}
	err := b.Append([]byte("e"))
	if !errors.Is(err, ErrLimit) {
		t.Fatalf("got %v, want ErrLimit", err)
	}
	if string(b.Bytes()) != "abcd" {
		t.Errorf("buffer changed to %q", b.Bytes())
	}
}
