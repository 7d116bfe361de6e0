package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
	"github.com/signadot/blockline/block"
	"github.com/signadot/blockline/encode"
	"github.com/signadot/blockline/linectx"
	"github.com/signadot/blockline/token"
)

func tree(cfg *TreeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tree.Parse(cc, args)
	if err != nil {
		return err
	}
	c := cfg.colors(cc.Out)
	i := 0
	return eachInput(cc, args, func(name string, lc *linectx.File) error {
		root, err := block.ReadTree(lc)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", name, err)
		}
		if !cfg.Lines {
			root = blocksOnly(root)
		}
		defer func() { i++ }()
		if cfg.YAML {
			if i > 0 {
				if _, err := io.WriteString(cc.Out, "---\n"); err != nil {
					return err
				}
			}
			return treeYAML(cc.Out, root)
		}
		if len(args) > 1 {
			if _, err := fmt.Fprintf(cc.Out, "%s:\n", name); err != nil {
				return err
			}
		}
		return writeTree(cc.Out, root, 0, c)
	})
}

func treeYAML(w io.Writer, root *block.Node) error {
	d, err := yaml.Marshal(root.Body)
	if err != nil {
		return fmt.Errorf("error encoding yaml: %w", err)
	}
	_, err = w.Write(d)
	return err
}

// blocksOnly returns a copy of n without payload lines.
func blocksOnly(n *block.Node) *block.Node {
	res := &block.Node{Name: n.Name, Params: n.Params}
	for _, child := range n.Children() {
		res.Body = append(res.Body, block.Entry{Block: blocksOnly(child)})
	}
	return res
}

func writeTree(w io.Writer, n *block.Node, depth int, c *encode.Colors) error {
	pad := strings.Repeat("  ", depth)
	for _, e := range n.Body {
		if e.Block == nil {
			if _, err := fmt.Fprintf(w, "%s%s\n", pad, c.Color(encode.ValueColor, e.Line)); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%s%s\n", pad, treeHeader(e.Block, c)); err != nil {
			return err
		}
		if err := writeTree(w, e.Block, depth+1, c); err != nil {
			return err
		}
	}
	return nil
}

func treeHeader(b *block.Node, c *encode.Colors) string {
	buf := &strings.Builder{}
	buf.WriteString(c.Color(encode.MarkerColor, string(block.OpenMarker)))
	buf.WriteString(c.Color(encode.NameColor, b.Name))
	for _, p := range b.Params {
		buf.WriteByte(' ')
		buf.WriteString(c.Color(encode.ParamColor, token.Quote(p)))
	}
	return buf.String()
}
