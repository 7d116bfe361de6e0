// Package token splits one line of a block stream into tokens.
//
// [LineParser] is the stateful tokenizer used by the block protocol. Tokens
// are separated by spaces or tabs. A token starting with one of the quote
// characters `"`, `'` or "`" runs to the next occurrence of the same quote
// character. `#`, `;` or `//` at the start of a token comment out the rest of
// the line, and `/*` opens a comment which lasts until `*/`, possibly on a
// later line.
//
// [Escape] renders an arbitrary string as exactly one token.
package token
