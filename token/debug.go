package token

import (
	"fmt"
	"os"
)

// PrintTokens writes toks to stderr, one per line.
func PrintTokens(toks []string, msg string) {
	fmt.Fprintf(os.Stderr, "%s tokens:\n", msg)
	for i, t := range toks {
		fmt.Fprintf(os.Stderr, "\t%d `%s`\n", i, t)
	}
}
