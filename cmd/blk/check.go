package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/blockline/block"
	"github.com/signadot/blockline/linectx"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	bad := 0
	err = eachInput(cc, args, func(name string, lc *linectx.File) error {
		n, err := checkStream(lc)
		if err != nil {
			bad++
			if !cfg.Quiet {
				fmt.Fprintf(cc.Out, "%s: %v\n", name, err)
			}
			return nil
		}
		theLog.Debug("checked", "file", name, "blocks", n)
		return nil
	})
	if err != nil {
		return err
	}
	if bad > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// checkStream reads the whole stream and returns the number of blocks in
// it.
func checkStream(lc linectx.Context) (int, error) {
	root, err := block.ReadTree(lc)
	if err != nil {
		return 0, err
	}
	n := 0
	root.Walk(func(*block.Node, int) bool {
		n++
		return true
	})
	return n, nil
}
