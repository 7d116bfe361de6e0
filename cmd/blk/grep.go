package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"
	"github.com/signadot/blockline/block"
	"github.com/signadot/blockline/encode"
	"github.com/signadot/blockline/heapbuf"
	"github.com/signadot/blockline/linectx"
)

type blockEnv struct {
	Name   string   `expr:"name"`
	Params []string `expr:"params"`
	Depth  int      `expr:"depth"`
	Lines  []string `expr:"lines"`
}

type blockMatch struct {
	Block *block.Node
	Depth int
}

func grep(cfg *GrepConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Grep.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: -e is required", cli.ErrUsage)
	}
	prg, err := compileGrep(cfg.Expr)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	opts := cfg.renderOpts(cc.Out)
	c := cfg.colors(cc.Out)
	return eachInput(cc, args, func(name string, lc *linectx.File) error {
		root, err := block.ReadTree(lc)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", name, err)
		}
		ms, err := grepTree(prg, root)
		if err != nil {
			return fmt.Errorf("error matching %s: %w", name, err)
		}
		theLog.Debug("grep", "file", name, "matches", len(ms))
		switch {
		case cfg.Count:
			_, err = fmt.Fprintf(cc.Out, "%s: %d\n", name, len(ms))
			return err
		case cfg.Block:
			for _, m := range ms {
				if err := writeBlock(cc.Out, m.Block, opts...); err != nil {
					return err
				}
			}
			return nil
		}
		for _, m := range ms {
			pad := strings.Repeat("  ", m.Depth-1)
			if _, err := fmt.Fprintf(cc.Out, "%s: %s%s\n", name, pad, treeHeader(m.Block, c)); err != nil {
				return err
			}
		}
		return nil
	})
}

func compileGrep(src string) (*vm.Program, error) {
	return expr.Compile(src, expr.Env(blockEnv{}), expr.AsBool())
}

// grepTree returns the blocks under root for which prg is true, in stream
// order.
func grepTree(prg *vm.Program, root *block.Node) ([]blockMatch, error) {
	var (
		res []blockMatch
		err error
	)
	root.Walk(func(b *block.Node, depth int) bool {
		if err != nil {
			return false
		}
		env := blockEnv{
			Name:   b.Name,
			Params: b.Params,
			Depth:  depth,
			Lines:  b.Lines(),
		}
		out, rerr := expr.Run(prg, env)
		if rerr != nil {
			err = fmt.Errorf("block %s: %w", b.Name, rerr)
			return false
		}
		if ok, _ := out.(bool); ok {
			res = append(res, blockMatch{Block: b, Depth: depth})
		}
		return true
	})
	return res, err
}

// writeBlock renders b through an in-memory line buffer.
func writeBlock(w io.Writer, b *block.Node, opts ...encode.RenderOption) error {
	mem := linectx.NewMem(heapbuf.New())
	b.Write(mem)
	if err := mem.Err(); err != nil {
		return err
	}
	return encode.Render(mem, w, opts...)
}
