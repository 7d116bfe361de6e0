package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
	"github.com/signadot/blockline/encode"
	"github.com/signadot/blockline/linectx"
)

func cat(cfg *CatConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Cat.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.renderOpts(cc.Out)
	return eachInput(cc, args, func(name string, lc *linectx.File) error {
		return catReader(cc.Out, lc, name, opts...)
	})
}

func catReader(w io.Writer, lc linectx.Context, name string, opts ...encode.RenderOption) error {
	if err := encode.Render(lc, w, opts...); err != nil {
		return fmt.Errorf("error processing %s: %w", name, err)
	}
	return nil
}
