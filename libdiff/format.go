package libdiff

import (
	"fmt"
	"io"

	"github.com/signadot/blockline/encode"
)

// Format writes ds one line at a time, prefixed by "  ", "- " or "+ ".
// Unchanged runs longer than 2*context lines are elided; context < 0 keeps
// every line.
func Format(w io.Writer, ds []LineDiff, context int, c *encode.Colors) error {
	for i, d := range ds {
		lines := d.Lines
		if d.Op == Equal && context >= 0 {
			lines = elide(lines, context, i == 0, i == len(ds)-1)
		}
		for _, ln := range lines {
			var out string
			switch d.Op {
			case Insert:
				out = c.Color(encode.InsertColor, "+ "+ln)
			case Delete:
				out = c.Color(encode.DeleteColor, "- "+ln)
			default:
				out = "  " + ln
			}
			if _, err := fmt.Fprintln(w, out); err != nil {
				return err
			}
		}
	}
	return nil
}

const elision = "..."

func elide(lines []string, n int, first, last bool) []string {
	head, tail := n, n
	if first {
		head = 0
	}
	if last {
		tail = 0
	}
	if len(lines) <= head+tail {
		return lines
	}
	res := make([]string, 0, head+tail+1)
	res = append(res, lines[:head]...)
	res = append(res, elision)
	res = append(res, lines[len(lines)-tail:]...)
	return res
}
