package token

import "strings"

const quoteChars = "\"'`"

// NeedsQuote reports whether v would not survive tokenization as a single
// bare token.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	switch v[0] {
	case '"', '\'', '`', '#', ';', '<', '>', '|':
		return true
	}
	if strings.HasPrefix(v, "/*") {
		return true
	}
	for i := 0; i < len(v); i++ {
		if isBlank(v[i]) {
			return true
		}
	}
	return false
}

// Escape quotes v as a single token, using the first of ", ' and ` which
// does not occur in v. When v contains all three, the result is
// backtick-quoted with every backtick in v replaced by '.
func Escape(v string) string {
	var dq, sq, bq bool
	for i := 0; i < len(v) && !(dq && sq && bq); i++ {
		switch v[i] {
		case '"':
			dq = true
		case '\'':
			sq = true
		case '`':
			bq = true
		}
	}
	var q string
	switch {
	case !dq:
		q = `"`
	case !sq:
		q = `'`
	case !bq:
		q = "`"
	default:
		return "`" + strings.ReplaceAll(v, "`", "'") + "`"
	}
	b := &strings.Builder{}
	b.Grow(len(v) + 2)
	b.WriteString(q)
	b.WriteString(v)
	b.WriteString(q)
	return b.String()
}

// Quote escapes v only if NeedsQuote(v).
func Quote(v string) string {
	if NeedsQuote(v) {
		return Escape(v)
	}
	return v
}

// Unquote undoes Escape for a single token, returning ErrUnterminated if the
// quote is not closed at the end of v.
func Unquote(v string) (string, error) {
	if v == "" || !strings.ContainsRune(quoteChars, rune(v[0])) {
		return v, nil
	}
	if len(v) < 2 || v[len(v)-1] != v[0] {
		return "", ErrUnterminated
	}
	return v[1 : len(v)-1], nil
}
