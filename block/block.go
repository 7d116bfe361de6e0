package block

import (
	"fmt"
	"io"

	"github.com/signadot/blockline/debug"
	"github.com/signadot/blockline/linectx"
	"github.com/signadot/blockline/token"
)

const (
	OpenMarker  = '<'
	CloseMarker = '>'

	// LineCapacity bounds the lines read by this package; longer lines are
	// truncated by the Context.
	LineCapacity = 4096
)

type Kind int

const (
	Payload Kind = iota
	Open
	Close
)

func (k Kind) String() string {
	switch k {
	case Open:
		return "open"
	case Close:
		return "close"
	default:
		return "payload"
	}
}

// Classify returns the kind of a line given its first token.
func Classify(tok string) Kind {
	if tok == "" {
		return Payload
	}
	switch tok[0] {
	case OpenMarker:
		return Open
	case CloseMarker:
		return Close
	default:
		return Payload
	}
}

// Tracker counts nesting from just inside a block.
type Tracker struct {
	depth int
}

func NewTracker() *Tracker {
	return &Tracker{depth: 1}
}

// Step accounts for a line with first token tok. done is true when tok
// closes the block the Tracker started in.
func (t *Tracker) Step(tok string) (k Kind, done bool) {
	k = Classify(tok)
	switch k {
	case Open:
		t.depth++
	case Close:
		t.depth--
		done = t.depth == 0
	}
	return k, done
}

// Depth is 1 for lines directly inside the block.
func (t *Tracker) Depth() int {
	return t.depth
}

// Next reads lines into lp until one has at least one token. Lines which
// do not tokenize are skipped. At the end of the stream lp is reset and
// io.EOF is returned.
func Next(lc linectx.Context, lp *token.LineParser) error {
	for {
		ln, err := lc.GetLine(LineCapacity)
		if err != nil {
			lp.Reset()
			return err
		}
		if lp.Parse(ln) != nil || lp.NumTokens() == 0 {
			continue
		}
		if debug.Tokens() {
			token.PrintTokens(lp.Tokens(), "next")
		}
		return nil
	}
}

// Skip consumes lines through the close of the current block. lc must be
// positioned just after the block's open line.
func Skip(lc linectx.Context) error {
	t := NewTracker()
	lp := token.NewLineParser()
	for {
		ln, err := lc.GetLine(LineCapacity)
		if err == io.EOF {
			return fmt.Errorf("%w: %d open at end of stream", ErrUnterminated, t.Depth())
		}
		if err != nil {
			return err
		}
		lp.Reset()
		if lp.Parse(ln) != nil || lp.NumTokens() == 0 {
			continue
		}
		if debug.Skip() {
			debug.Logf("skip depth=%d %s\n", t.Depth(), ln)
		}
		if _, done := t.Step(lp.Token(0)); done {
			return nil
		}
	}
}

// Begin writes the open line of block name. Parameters are quoted when
// needed.
func Begin(lc linectx.Context, name string, params ...string) {
	n := &Node{Name: name, Params: params}
	lc.AddLine("%s", n.Header())
}

// End writes a close line.
func End(lc linectx.Context) {
	lc.AddLine("%c", CloseMarker)
}
