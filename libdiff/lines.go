package libdiff

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	default:
		return "equal"
	}
}

// LineDiff is a run of lines sharing one operation.
type LineDiff struct {
	Op    Op
	Lines []string
}

// DiffLines computes a line-level diff turning from into to.
func DiffLines(from, to []string) []LineDiff {
	lineMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapLinesTo(lineMap, runeMap, from)
	toRunes := mapLinesTo(lineMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	res := make([]LineDiff, 0, len(diffs))
	for i := range diffs {
		diff := &diffs[i]
		ld := LineDiff{}
		switch diff.Type {
		case diffpatch.DiffDelete:
			ld.Op = Delete
		case diffpatch.DiffInsert:
			ld.Op = Insert
		case diffpatch.DiffEqual:
			ld.Op = Equal
		}
		for _, r := range diff.Text {
			ld.Lines = append(ld.Lines, runeMap[r])
		}
		res = append(res, ld)
	}
	return res
}

func mapLinesTo(m map[string]rune, im map[rune]string, lines []string) []rune {
	rs := make([]rune, len(lines))
	for i, ln := range lines {
		r, ok := m[ln]
		if !ok {
			r = lineRune(len(m))
			m[ln] = r
			im[r] = ln
		}
		rs[i] = r
	}
	return rs
}

// lineRune maps i to a rune which survives conversion to string, stepping
// over the surrogate range.
func lineRune(i int) rune {
	if i >= 0xD800 {
		return rune(i + 0x800)
	}
	return rune(i)
}

// Changed reports whether ds has any insertion or deletion.
func Changed(ds []LineDiff) bool {
	for i := range ds {
		if ds[i].Op != Equal {
			return true
		}
	}
	return false
}

// Reverse returns the diff turning to back into from.
func Reverse(ds []LineDiff) []LineDiff {
	res := make([]LineDiff, len(ds))
	for i, d := range ds {
		switch d.Op {
		case Insert:
			d.Op = Delete
		case Delete:
			d.Op = Insert
		}
		res[i] = d
	}
	return res
}
