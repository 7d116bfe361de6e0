package block

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/blockline/linectx"
	"github.com/signadot/blockline/token"
)

// Node is a block read by ReadTree. The root node returned by ReadTree has
// no name and holds the top level of the stream.
type Node struct {
	Name   string   `yaml:"name,omitempty"`
	Params []string `yaml:"params,omitempty"`
	Body   []Entry  `yaml:"body,omitempty"`
}

// Entry is either a payload line or a child block.
type Entry struct {
	Line  string `yaml:"line,omitempty"`
	Block *Node  `yaml:"block,omitempty"`
}

// ReadTree reads the whole stream. Payload lines are kept verbatim except
// for leading spaces and tabs; lines that do not tokenize, and comment
// lines, are kept as payload.
func ReadTree(lc linectx.Context) (*Node, error) {
	root := &Node{}
	if err := readBody(lc, root, token.NewLineParser(), true); err != nil {
		return root, err
	}
	return root, nil
}

func readBody(lc linectx.Context, n *Node, lp *token.LineParser, top bool) error {
	for {
		ln, err := lc.GetLine(LineCapacity)
		if err == io.EOF {
			if top {
				return nil
			}
			return fmt.Errorf("%w: %s", ErrUnterminated, n.Name)
		}
		if err != nil {
			return err
		}
		ln = strings.TrimLeft(ln, " \t")
		if ln == "" {
			continue
		}
		// text payload: its content must not open a comment
		if ln[0] == '|' {
			n.Body = append(n.Body, Entry{Line: ln})
			continue
		}
		if lp.Parse(ln) != nil || lp.NumTokens() == 0 {
			n.Body = append(n.Body, Entry{Line: ln})
			continue
		}
		tok := lp.Token(0)
		switch Classify(tok) {
		case Open:
			child := &Node{Name: tok[1:]}
			if lp.NumTokens() > 1 {
				child.Params = lp.Tokens()[1:]
			}
			n.Body = append(n.Body, Entry{Block: child})
			if err := readBody(lc, child, lp, false); err != nil {
				return err
			}
		case Close:
			if top {
				return fmt.Errorf("%w: %q", ErrUnbalanced, ln)
			}
			return nil
		default:
			n.Body = append(n.Body, Entry{Line: ln})
		}
	}
}

// Lines returns the payload lines directly inside n.
func (n *Node) Lines() []string {
	var res []string
	for _, e := range n.Body {
		if e.Block == nil {
			res = append(res, e.Line)
		}
	}
	return res
}

// Children returns the blocks directly inside n.
func (n *Node) Children() []*Node {
	var res []*Node
	for _, e := range n.Body {
		if e.Block != nil {
			res = append(res, e.Block)
		}
	}
	return res
}

// Header renders the open line of n.
func (n *Node) Header() string {
	b := &strings.Builder{}
	b.WriteByte(OpenMarker)
	b.WriteString(n.Name)
	for _, p := range n.Params {
		b.WriteByte(' ')
		b.WriteString(token.Quote(p))
	}
	return b.String()
}

// Walk calls fn for n's descendant blocks in stream order, with depth 1
// for n's children. Returning false from fn skips the block's children.
func (n *Node) Walk(fn func(b *Node, depth int) bool) {
	n.walk(fn, 1)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	for _, e := range n.Body {
		if e.Block == nil {
			continue
		}
		if fn(e.Block, depth) {
			e.Block.walk(fn, depth+1)
		}
	}
}

// Write writes n as a block.
func (n *Node) Write(lc linectx.Context) {
	lc.AddLine("%s", n.Header())
	n.WriteBody(lc)
	End(lc)
}

// WriteBody writes the entries of n without n's own open and close lines.
func (n *Node) WriteBody(lc linectx.Context) {
	for _, e := range n.Body {
		if e.Block != nil {
			e.Block.Write(lc)
			continue
		}
		// a payload line led by a marker must not move the writer's indent
		if e.Line != "" && (e.Line[0] == OpenMarker || e.Line[0] == CloseMarker) {
			lc.AddLine(" %s", e.Line)
			continue
		}
		lc.AddLine("%s", e.Line)
	}
}
