package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/signadot/blockline/encode"
	"github.com/signadot/blockline/libdiff"
	"github.com/signadot/blockline/linectx"
)

// contextFromSettings marks -C as unset.
const contextFromSettings = -2

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	indent := cfg.Settings.Indent
	from, err := renderedLines(cc, args[0], indent)
	if err != nil {
		return err
	}
	to, err := renderedLines(cc, args[1], indent)
	if err != nil {
		return err
	}
	ds := libdiff.DiffLines(from, to)
	if !libdiff.Changed(ds) {
		return nil
	}
	if cfg.Reverse {
		ds = libdiff.Reverse(ds)
	}
	n := cfg.Context
	if n == contextFromSettings {
		n = cfg.Settings.DiffContext
	}
	if err := libdiff.Format(cc.Out, ds, n, cfg.colors(cc.Out)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

// renderedLines returns the lines of file rendered without color, so that
// indentation and line ends do not show up as differences.
func renderedLines(cc *cli.Context, file string, indent int) ([]string, error) {
	buf := &bytes.Buffer{}
	err := withInput(cc, file, func(name string, lc *linectx.File) error {
		return catReader(buf, lc, name, encode.RenderIndent(indent))
	})
	if err != nil {
		return nil, err
	}
	return splitRendered(buf.String()), nil
}

func splitRendered(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
