package payload

import (
	"encoding/base64"
	"fmt"
	"io"

	"github.com/signadot/blockline/block"
	"github.com/signadot/blockline/debug"
	"github.com/signadot/blockline/heapbuf"
	"github.com/signadot/blockline/linectx"
	"github.com/signadot/blockline/token"
)

const (
	// BinaryChunk is the number of bytes encoded per line.
	BinaryChunk = 40

	// StageCapacity bounds the bytes decoded from one line. Anything
	// beyond is dropped.
	StageCapacity = 8192
)

// EncodeBinary writes data as standard base64 lines.
func EncodeBinary(lc linectx.Context, data []byte) {
	for len(data) > 0 {
		n := min(len(data), BinaryChunk)
		lc.AddLine("%s", base64.StdEncoding.EncodeToString(data[:n]))
		data = data[n:]
	}
}

// DecodeBinary appends the payload of the current block to dst. On error,
// whatever was decoded before stays in dst.
func DecodeBinary(lc linectx.Context, dst *heapbuf.Buf) error {
	return DecodeBinaryStage(lc, dst, StageCapacity)
}

// DecodeBinaryStage is DecodeBinary decoding at most stage bytes per line.
// A stage below 1 decodes nothing but still consumes the block.
func DecodeBinaryStage(lc linectx.Context, dst *heapbuf.Buf, stage int) error {
	t := block.NewTracker()
	lp := token.NewLineParser()
	buf := make([]byte, max(stage, 0))
	for {
		ln, err := lc.GetLine(block.LineCapacity)
		if err == io.EOF {
			return fmt.Errorf("%w: binary payload", block.ErrUnterminated)
		}
		if err != nil {
			return err
		}
		if lp.Parse(ln) != nil || lp.NumTokens() == 0 {
			continue
		}
		k, done := t.Step(lp.Token(0))
		if done {
			return nil
		}
		if k != block.Payload || t.Depth() != 1 {
			continue
		}
		n := decodeBase64(buf, lp.Token(0))
		if debug.Decode() {
			debug.Logf("binary line %d bytes -> %d\n", len(lp.Token(0)), n)
		}
		if err := dst.Append(buf[:n]); err != nil {
			return err
		}
	}
}

// decodeBase64 decodes src into dst and returns the number of bytes
// written. Decoding stops at the first byte outside the standard alphabet
// (including '=') or when dst is full. Trailing bits that do not make a
// whole byte are dropped.
func decodeBase64(dst []byte, src string) int {
	var accum uint
	nbits, n := 0, 0
	for i := 0; i < len(src) && n < len(dst); i++ {
		x := b64Value(src[i])
		if x < 0 {
			break
		}
		accum = accum<<6 | uint(x)
		nbits += 6
		if nbits >= 8 {
			nbits -= 8
			dst[n] = byte(accum >> nbits)
			n++
			accum &= 1<<nbits - 1
		}
	}
	return n
}

func b64Value(c byte) int {
	switch {
	case c >= 'A' && c <= 'Z':
		return int(c - 'A')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 26
	case c >= '0' && c <= '9':
		return int(c-'0') + 52
	case c == '+':
		return 62
	case c == '/':
		return 63
	default:
		return -1
	}
}
