package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/blockline/block"
	"github.com/signadot/blockline/linectx"
)

const song = `<SONG "Blue Monday" 1983
TEMPO 130
<TRACK drums mute
  VOLUME 80
>
<TRACK bass
  VOLUME 95
  <NOTES
    |first line
  >
>
>
`

func reader(s string) *linectx.File {
	return linectx.NewReader(strings.NewReader(s))
}

func songTree(t *testing.T) *block.Node {
	t.Helper()
	root, err := block.ReadTree(reader(song))
	if err != nil {
		t.Fatal(err)
	}
	return root
}

func TestFormatTree(t *testing.T) {
	messy := "<A x\r\n      <B\nline one\n>\n\t>\n"
	root, err := block.ReadTree(reader(messy))
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	if err := formatTree(buf, root); err != nil {
		t.Fatal(err)
	}
	want := "<A x\r\n  <B\r\n    line one\r\n  >\r\n>\r\n"
	if buf.String() != want {
		t.Errorf("got %q want %q", buf.String(), want)
	}
}

func TestCheckStream(t *testing.T) {
	n, err := checkStream(reader(song))
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 {
		t.Errorf("got %d blocks, want 4", n)
	}
	if _, err := checkStream(reader("<A\n<B\n>\n")); !errors.Is(err, block.ErrUnterminated) {
		t.Errorf("got %v, want ErrUnterminated", err)
	}
	if _, err := checkStream(reader("<A\n>\n>\n")); !errors.Is(err, block.ErrUnbalanced) {
		t.Errorf("got %v, want ErrUnbalanced", err)
	}
}

func TestWriteTree(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := writeTree(buf, blocksOnly(songTree(t)), 0, nil); err != nil {
		t.Fatal(err)
	}
	want := `<SONG "Blue Monday" 1983
  <TRACK drums mute
  <TRACK bass
    <NOTES
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestTreeYAML(t *testing.T) {
	buf := &bytes.Buffer{}
	root := &block.Node{Body: []block.Entry{
		{Block: &block.Node{Name: "A", Params: []string{"x"}}},
	}}
	if err := treeYAML(buf, root); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"name: A", "params:", "- x"} {
		if !strings.Contains(out, want) {
			t.Errorf("yaml %q lacks %q", out, want)
		}
	}
	if strings.Contains(out, "line:") {
		t.Errorf("yaml %q has an empty line field", out)
	}
}

func TestGrepTree(t *testing.T) {
	tests := []struct {
		expr string
		want []string
	}{
		{`name == "TRACK"`, []string{"TRACK", "TRACK"}},
		{`"mute" in params`, []string{"TRACK"}},
		{`depth == 3`, []string{"NOTES"}},
		{`"TEMPO 130" in lines`, []string{"SONG"}},
		{`name == "NONE"`, nil},
	}
	root := songTree(t)
	for _, tc := range tests {
		prg, err := compileGrep(tc.expr)
		if err != nil {
			t.Fatalf("%s: %v", tc.expr, err)
		}
		ms, err := grepTree(prg, root)
		if err != nil {
			t.Fatalf("%s: %v", tc.expr, err)
		}
		var got []string
		for _, m := range ms {
			got = append(got, m.Block.Name)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("%s: mismatch (-want +got):\n%s", tc.expr, diff)
		}
	}
}

func TestCompileGrepErrors(t *testing.T) {
	for _, src := range []string{`name ==`, `depth + 1`, `nosuchvar`} {
		if _, err := compileGrep(src); err == nil {
			t.Errorf("%s: expected a compile error", src)
		}
	}
}

func TestWriteBlock(t *testing.T) {
	b := &block.Node{Name: "A", Body: []block.Entry{
		{Line: "x 1"},
		{Block: &block.Node{Name: "B"}},
	}}
	buf := &bytes.Buffer{}
	if err := writeBlock(buf, b); err != nil {
		t.Fatal(err)
	}
	want := "<A\n  x 1\n  <B\n  >\n>\n"
	if buf.String() != want {
		t.Errorf("got %q want %q", buf.String(), want)
	}
}

func TestSplitRendered(t *testing.T) {
	if got := splitRendered(""); got != nil {
		t.Errorf("got %v", got)
	}
	got := splitRendered("<A\n  x\n>\n")
	if diff := cmp.Diff([]string{"<A", "  x", ">"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestBinaryBlockRoundTrip(t *testing.T) {
	data := make([]byte, 300)
	for i := range data {
		data[i] = byte(i * 7)
	}
	buf := &bytes.Buffer{}
	if err := encodeBinaryBlock(buf, "DATA", data); err != nil {
		t.Fatal(err)
	}
	in := "<SONG\r\n  <data\r\n  >\r\n" + buf.String() + ">\r\n"
	// the first DATA block is empty
	got, err := decodeBinaryBlock(reader(in), "DATA", 8192)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("got %d bytes from the empty block", len(got))
	}
	lc := reader(in)
	if _, err := decodeBinaryBlock(lc, "DATA", 8192); err != nil {
		t.Fatal(err)
	}
	got, err = decodeBinaryBlock(lc, "data", 8192)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("got %v want %v", got, data)
	}
	if _, err := decodeBinaryBlock(lc, "DATA", 8192); !errors.Is(err, errNoBlock) {
		t.Errorf("got %v, want errNoBlock", err)
	}
}

func TestTextBlockRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := encodeTextBlock(buf, "NOTES", "verse\n  chorus /* not a comment\n"); err != nil {
		t.Fatal(err)
	}
	want := "<NOTES\r\n  |verse\r\n  |  chorus /* not a comment\r\n>\r\n"
	if buf.String() != want {
		t.Errorf("got %q want %q", buf.String(), want)
	}
	got, err := decodeTextBlock(reader(buf.String()), "NOTES")
	if err != nil {
		t.Fatal(err)
	}
	if got != "verse\r\n  chorus /* not a comment" {
		t.Errorf("got %q", got)
	}
}
