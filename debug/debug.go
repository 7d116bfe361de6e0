package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Skip   bool
	Decode bool
	Tokens bool
}

var d *debug

func init() {
	d = &debug{}
	d.Skip = boolEnv("BLOCKLINE_DEBUG_SKIP")
	d.Decode = boolEnv("BLOCKLINE_DEBUG_DECODE")
	d.Tokens = boolEnv("BLOCKLINE_DEBUG_TOKENS")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Skip() bool {
	return d.Skip
}
func Decode() bool {
	return d.Decode
}
func Tokens() bool {
	return d.Tokens
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
