// Package heapbuf provides a growable byte buffer with a coarse allocation
// granularity and an optional size limit.
package heapbuf

import (
	"errors"
	"fmt"
)

var ErrLimit = errors.New("buffer limit exceeded")

// Buf is a growable byte region. The zero value is ready to use.
type Buf struct {
	d      []byte
	granul int
	limit  int
}

func New() *Buf {
	return &Buf{}
}

// SetGranularity makes capacity grow in multiples of n bytes.
func (b *Buf) SetGranularity(n int) {
	b.granul = n
}

// SetLimit caps the size of the buffer at n bytes; n <= 0 means no limit.
func (b *Buf) SetLimit(n int) {
	b.limit = n
}

// Resize sets the length of the buffer to n, preserving existing content up
// to min(n, Len()). Growing beyond the limit leaves the buffer unchanged and
// returns ErrLimit.
func (b *Buf) Resize(n int) ([]byte, error) {
	if n < 0 {
		n = 0
	}
	if b.limit > 0 && n > b.limit {
		return b.d, fmt.Errorf("%w: %d > %d", ErrLimit, n, b.limit)
	}
	if n <= cap(b.d) {
		b.d = b.d[:n]
		return b.d, nil
	}
	c := n
	if b.granul > 0 {
		c = (n + b.granul - 1) / b.granul * b.granul
	} else if c < 2*cap(b.d) {
		c = 2 * cap(b.d)
	}
	if b.limit > 0 && c > b.limit {
		c = b.limit
	}
	nd := make([]byte, n, c)
	copy(nd, b.d)
	b.d = nd
	return b.d, nil
}

// Append grows the buffer by len(p) and copies p to the end.
func (b *Buf) Append(p []byte) error {
	sz := len(b.d)
	d, err := b.Resize(sz + len(p))
	if err != nil {
		return err
	}
	copy(d[sz:], p)
	return nil
}

// Bytes returns the buffer content. It is invalidated by the next Resize.
func (b *Buf) Bytes() []byte {
	return b.d
}

func (b *Buf) Len() int {
	return len(b.d)
}

func (b *Buf) Cap() int {
	return cap(b.d)
}
