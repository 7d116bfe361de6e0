package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/signadot/blockline/block"
	"github.com/signadot/blockline/linectx"
)

// eachInput calls fn with a line reader for each file in files, or for the
// command input if files is empty. "-" names the command input.
func eachInput(cc *cli.Context, files []string, fn func(name string, lc *linectx.File) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		if err := withInput(cc, file, fn); err != nil {
			return err
		}
	}
	return nil
}

func withInput(cc *cli.Context, file string, fn func(name string, lc *linectx.File) error) error {
	if file == "-" {
		return fn("<stdin>", linectx.NewReader(cc.In))
	}
	lc, err := linectx.OpenRead(file)
	if err != nil {
		return err
	}
	defer lc.Close()
	return fn(file, lc)
}

func readInput(cc *cli.Context, file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(cc.In)
	}
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", file, err)
	}
	return d, nil
}

func readTree(cc *cli.Context, file string) (*block.Node, error) {
	var root *block.Node
	err := withInput(cc, file, func(name string, lc *linectx.File) error {
		n, err := block.ReadTree(lc)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", name, err)
		}
		root = n
		return nil
	})
	return root, err
}

// oneArg returns the single optional file argument, "-" if absent.
func oneArg(args []string) (string, error) {
	switch len(args) {
	case 0:
		return "-", nil
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("%w: at most one file, got %v", cli.ErrUsage, args)
	}
}
