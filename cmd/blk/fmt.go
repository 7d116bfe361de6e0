package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/signadot/blockline/block"
	"github.com/signadot/blockline/linectx"
)

func format(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if !cfg.Write {
		return eachInput(cc, args, func(name string, lc *linectx.File) error {
			root, err := block.ReadTree(lc)
			if err != nil {
				return fmt.Errorf("error reading %s: %w", name, err)
			}
			return formatTree(cc.Out, root)
		})
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: -w requires files", cli.ErrUsage)
	}
	for _, file := range args {
		if file == "-" {
			return fmt.Errorf("%w: -w cannot rewrite stdin", cli.ErrUsage)
		}
		if err := formatFile(cc, file); err != nil {
			return err
		}
	}
	return nil
}

// formatTree writes the entries of root to w, indented by nesting and with
// CR LF line ends.
func formatTree(w io.Writer, root *block.Node) error {
	out := linectx.NewWriter(w)
	root.WriteBody(out)
	return out.Err()
}

func formatFile(cc *cli.Context, file string) error {
	root, err := readTree(cc, file)
	if err != nil {
		return err
	}
	tmp := file + ".tmp"
	out, err := linectx.CreateWrite(tmp)
	if err != nil {
		return err
	}
	root.WriteBody(out)
	cerr := out.Close()
	if err := out.Err(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("error writing %s: %w", tmp, err)
	}
	if cerr != nil {
		os.Remove(tmp)
		return fmt.Errorf("error closing %s: %w", tmp, cerr)
	}
	if err := os.Rename(tmp, file); err != nil {
		return err
	}
	theLog.Info("formatted", "file", file, "bytes", out.OutputSize())
	return nil
}
