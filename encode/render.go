package encode

import (
	"io"
	"strings"

	"github.com/signadot/blockline/block"
	"github.com/signadot/blockline/linectx"
	"github.com/signadot/blockline/token"
)

type RenderState struct {
	colors *Colors
	indent int
	eol    string
	depth  int
	lp     *token.LineParser
}

func NewRenderState(opts ...RenderOption) *RenderState {
	rs := &RenderState{indent: 2, eol: "\n", lp: token.NewLineParser()}
	for _, opt := range opts {
		opt(rs)
	}
	return rs
}

// Render writes every line of lc to w.
func Render(lc linectx.Context, w io.Writer, opts ...RenderOption) error {
	rs := NewRenderState(opts...)
	for {
		ln, err := lc.GetLine(block.LineCapacity)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		out, ok := rs.Line(ln)
		if !ok {
			continue
		}
		if _, err := io.WriteString(w, out); err != nil {
			return err
		}
	}
}

// Line renders one input line, indented for the current depth and
// terminated. It returns false for blank lines.
func (rs *RenderState) Line(ln string) (string, bool) {
	ln = strings.TrimLeft(ln, " \t")
	if ln == "" {
		return "", false
	}
	c := rs.colors
	var body string
	depth := rs.depth
	switch {
	case ln[0] == '|':
		body = c.Color(MarkerColor, ln[:1]) + c.Color(TextColor, ln[1:])
	case rs.lp.Parse(ln) != nil:
		body = c.Color(ValueColor, ln)
	case rs.lp.NumTokens() == 0:
		body = c.Color(CommentColor, ln)
	default:
		tok := rs.lp.Token(0)
		rest, plain := strings.CutPrefix(ln, tok)
		switch block.Classify(tok) {
		case block.Open:
			rs.depth++
			if !plain {
				body = c.Color(NameColor, ln)
				break
			}
			body = c.Color(MarkerColor, tok[:1]) + c.Color(NameColor, tok[1:]) + c.Color(ParamColor, rest)
		case block.Close:
			rs.depth--
			depth = rs.depth
			body = c.Color(MarkerColor, ln)
		default:
			if rs.lp.NumTokens() == 1 && looksBinary(tok) {
				body = c.Color(BinaryColor, ln)
				break
			}
			if !plain {
				body = c.Color(ValueColor, ln)
				break
			}
			body = c.Color(FieldColor, tok) + c.Color(ValueColor, rest)
		}
	}
	pad := max(depth, 0) * rs.indent
	return strings.Repeat(" ", pad) + body + rs.eol, true
}

func looksBinary(tok string) bool {
	if len(tok) < 4 || len(tok)%4 != 0 {
		return false
	}
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		case c == '+', c == '/', c == '=':
		default:
			return false
		}
	}
	return true
}
