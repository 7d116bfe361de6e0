package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/signadot/blockline/config"
	"github.com/signadot/blockline/encode"
)

type MainConfig struct {
	Color      bool   `cli:"name=color desc='render with color'"`
	NoColor    bool   `cli:"name=nocolor desc='render without color'"`
	ConfigPath string `cli:"name=config desc='TOML settings file (default $BLOCKLINE_CONFIG)'"`
	Verbose    bool   `cli:"name=v aliases=verbose desc='log progress to stderr'"`

	Settings config.Config

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// colors returns the colors to render to w with, or nil.
func (cfg *MainConfig) colors(w io.Writer) *encode.Colors {
	switch {
	case cfg.Color:
		return encode.NewColors()
	case cfg.NoColor:
		return nil
	}
	switch cfg.Settings.Color {
	case config.ColorAlways:
		return encode.NewColors()
	case config.ColorNever:
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return encode.NewColors()
	}
	return nil
}

func (cfg *MainConfig) renderOpts(w io.Writer) []encode.RenderOption {
	return []encode.RenderOption{
		encode.RenderColors(cfg.colors(w)),
		encode.RenderIndent(cfg.Settings.Indent),
	}
}

type CatConfig struct {
	*MainConfig
	Cat *cli.Command
}

type FmtConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='write result to the source file instead of output'"`
	Fmt   *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='only set the exit code'"`
	Check *cli.Command
}

type TreeConfig struct {
	*MainConfig
	YAML  bool `cli:"name=yaml aliases=y desc='print the tree as yaml'"`
	Lines bool `cli:"name=l desc='include payload lines'"`
	Tree  *cli.Command
}

type GrepConfig struct {
	*MainConfig
	Expr  string `cli:"name=e desc='boolean expression over name, params, depth, lines'"`
	Block bool   `cli:"name=b desc='print matching blocks whole'"`
	Count bool   `cli:"name=c desc='print only the number of matches'"`
	Grep  *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Context int  `cli:"name=C desc='unchanged lines around changes (default from settings)'"`
	Diff    *cli.Command
}

type PayloadConfig struct {
	*MainConfig
	Name string `cli:"name=n aliases=name desc='block name (default from settings)'"`
	Cmd  *cli.Command
}

type EscapeConfig struct {
	*MainConfig
	Always bool `cli:"name=a desc='quote even when not needed'"`
	Escape *cli.Command
}
