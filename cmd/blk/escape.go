package main

import (
	"bufio"
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/blockline/token"
)

func escape(cfg *EscapeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Escape.Parse(cc, args)
	if err != nil {
		return err
	}
	esc := token.Quote
	if cfg.Always {
		esc = token.Escape
	}
	if len(args) != 0 {
		for _, a := range args {
			if _, err := fmt.Fprintln(cc.Out, esc(a)); err != nil {
				return err
			}
		}
		return nil
	}
	sc := bufio.NewScanner(cc.In)
	for sc.Scan() {
		if _, err := fmt.Fprintln(cc.Out, esc(sc.Text())); err != nil {
			return err
		}
	}
	return sc.Err()
}
