package token

import (
	"fmt"
	"strconv"
	"strings"
)

// LineParser tokenizes lines one at a time. The only state carried from one
// line to the next is whether a /* comment is still open.
type LineParser struct {
	toks      []string
	inComment bool
}

func NewLineParser() *LineParser {
	return &LineParser{}
}

// Tokenize tokenizes a single line with a fresh LineParser.
func Tokenize(line string) ([]string, error) {
	lp := NewLineParser()
	if err := lp.Parse(line); err != nil {
		return nil, err
	}
	return lp.Tokens(), nil
}

// Parse replaces the current tokens with those of line. On error the
// parser holds no tokens.
func (p *LineParser) Parse(line string) error {
	p.toks = p.toks[:0]
	i, n := 0, len(line)
	for {
		for i < n && isBlank(line[i]) {
			i++
		}
		if p.inComment {
			j := strings.Index(line[i:], "*/")
			if j < 0 {
				return nil
			}
			i += j + 2
			p.inComment = false
			continue
		}
		if i >= n {
			return nil
		}
		c := line[i]
		switch c {
		case '#', ';':
			return nil
		case '/':
			if i+1 < n && line[i+1] == '*' {
				p.inComment = true
				i += 2
				continue
			}
		case '"', '\'', '`':
			j := strings.IndexByte(line[i+1:], c)
			if j < 0 {
				p.toks = p.toks[:0]
				return NewTokenizeErr(fmt.Errorf("%w %c quote", ErrUnterminated, c), i)
			}
			p.toks = append(p.toks, line[i+1:i+1+j])
			i += j + 2
			continue
		}
		start := i
		for i < n && !isBlank(line[i]) {
			i++
		}
		p.toks = append(p.toks, line[start:i])
	}
}

// Reset drops all tokens and any open comment.
func (p *LineParser) Reset() {
	p.toks = p.toks[:0]
	p.inComment = false
}

func (p *LineParser) InComment() bool {
	return p.inComment
}

func (p *LineParser) NumTokens() int {
	return len(p.toks)
}

// Tokens returns a copy of the current tokens.
func (p *LineParser) Tokens() []string {
	res := make([]string, len(p.toks))
	copy(res, p.toks)
	return res
}

// Token returns token i, or "" if there is no such token.
func (p *LineParser) Token(i int) string {
	if i < 0 || i >= len(p.toks) {
		return ""
	}
	return p.toks[i]
}

func (p *LineParser) TokenInt(i int) (int, error) {
	if i < 0 || i >= len(p.toks) {
		return 0, fmt.Errorf("%w: %d", ErrNoToken, i)
	}
	v, err := strconv.Atoi(p.toks[i])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNumber, p.toks[i])
	}
	return v, nil
}

func (p *LineParser) TokenFloat(i int) (float64, error) {
	if i < 0 || i >= len(p.toks) {
		return 0, fmt.Errorf("%w: %d", ErrNoToken, i)
	}
	v, err := strconv.ParseFloat(p.toks[i], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNumber, p.toks[i])
	}
	return v, nil
}

// TokenEnum returns the index in names of token i, compared case
// insensitively, or -1.
func (p *LineParser) TokenEnum(i int, names ...string) int {
	if i < 0 || i >= len(p.toks) {
		return -1
	}
	for j, name := range names {
		if strings.EqualFold(name, p.toks[i]) {
			return j
		}
	}
	return -1
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
