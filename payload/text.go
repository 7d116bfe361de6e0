package payload

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/blockline/block"
	"github.com/signadot/blockline/debug"
	"github.com/signadot/blockline/linectx"
	"github.com/signadot/blockline/token"
)

// TextMarker starts every text payload line.
const TextMarker = '|'

// EncodeText writes text one line at a time. CR, LF, CR LF and LF CR each
// end a line. A separator at the very end of text does not start another
// line.
func EncodeText(lc linectx.Context, text string) {
	for len(text) > 0 {
		i := strings.IndexAny(text, "\r\n")
		if i < 0 {
			lc.AddLine("%c%s", TextMarker, text)
			return
		}
		lc.AddLine("%c%s", TextMarker, text[:i])
		c := text[i]
		text = text[i+1:]
		if len(text) > 0 && (c == '\r' && text[0] == '\n' || c == '\n' && text[0] == '\r') {
			text = text[1:]
		}
	}
}

// DecodeText appends the text payload of the current block to dst, joining
// lines with CR LF. A CR LF is also written first if dst is not empty.
// Blocks nested in the text block are skipped.
func DecodeText(lc linectx.Context, dst *strings.Builder) error {
	t := block.NewTracker()
	lp := token.NewLineParser()
	sep := dst.Len() > 0
	for {
		ln, err := lc.GetLine(block.LineCapacity)
		if err == io.EOF {
			return fmt.Errorf("%w: text payload", block.ErrUnterminated)
		}
		if err != nil {
			return err
		}
		p := strings.TrimLeft(ln, " \t")
		if p == "" {
			continue
		}
		if p[0] != TextMarker {
			if lp.Parse(p) != nil || lp.NumTokens() == 0 {
				continue
			}
			if _, done := t.Step(lp.Token(0)); done {
				return nil
			}
			continue
		}
		if t.Depth() != 1 {
			continue
		}
		if debug.Decode() {
			debug.Logf("text line %q\n", p)
		}
		if sep {
			dst.WriteString("\r\n")
		}
		dst.WriteString(p[1:])
		sep = true
	}
}
