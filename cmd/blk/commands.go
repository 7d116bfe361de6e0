package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "blk").
		WithSynopsis("blk [opts] command [opts]").
		WithDescription("blk is a tool for working with block-structured line files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return blkMain(cfg, cc, args)
		}).
		WithSubs(
			CatCommand(cfg),
			FmtCommand(cfg),
			CheckCommand(cfg),
			TreeCommand(cfg),
			GrepCommand(cfg),
			DiffCommand(cfg),
			BinCommand(cfg),
			TextCommand(cfg),
			EscapeCommand(cfg))
}

func CatCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CatConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Cat, "cat").
		WithAliases("c", "view").
		WithSynopsis("cat [files]").
		WithDescription("render block files with normalized indentation, in color on terminals").
		WithRun(func(cc *cli.Context, args []string) error {
			return cat(cfg, cc, args)
		})
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithAliases("f").
		WithSynopsis("fmt [-w] [files]").
		WithDescription("rewrite block files in canonical form: 2 space indentation, CR LF line ends").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return format(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("ck").
		WithSynopsis("check [-q] [files]").
		WithDescription("check that every block is closed exactly once").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func TreeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TreeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Tree, "tree").
		WithAliases("t").
		WithSynopsis("tree [-yaml] [-l] [files]").
		WithDescription("print the block structure of files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tree(cfg, cc, args)
		})
}

func GrepCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GrepConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Grep, "grep").
		WithAliases("g").
		WithSynopsis("grep -e <expr> [-b] [-c] [files]").
		WithDescription(grepDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return grep(cfg, cc, args)
		})
}

const grepDescription = `grep prints the blocks for which an expression is true.

The expression is evaluated once per block with the following variables:

  name    the block name, without '<'
  params  the parameters on the open line
  depth   1 for top level blocks
  lines   the payload lines directly inside the block

For example

  blk grep -e 'name == "TRACK" && "mute" in params' song.blk
  blk grep -e 'depth > 1 && len(lines) == 0' song.blk`

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg, Context: contextFromSettings}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff [-r] [-C n] a b").
		WithDescription("diff the rendered lines of two block files, exit status 1 if they differ").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func BinCommand(mainCfg *MainConfig) *cli.Command {
	return cli.NewCommand("bin").
		WithAliases("b").
		WithSynopsis("bin enc|dec").
		WithDescription("encode and decode base64 payload blocks").
		WithSubs(
			payloadCommand(mainCfg, "enc", "enc [-n name] [file]",
				"wrap raw bytes in a binary payload block", binEnc),
			payloadCommand(mainCfg, "dec", "dec [-n name] [file]",
				"extract the raw bytes of a binary payload block", binDec))
}

func TextCommand(mainCfg *MainConfig) *cli.Command {
	return cli.NewCommand("text").
		WithAliases("x").
		WithSynopsis("text enc|dec").
		WithDescription("encode and decode '|' text payload blocks").
		WithSubs(
			payloadCommand(mainCfg, "enc", "enc [-n name] [file]",
				"wrap text in a text payload block", textEnc),
			payloadCommand(mainCfg, "dec", "dec [-n name] [file]",
				"extract the text of a text payload block", textDec))
}

type payloadFunc func(*PayloadConfig, *cli.Context, []string) error

func payloadCommand(mainCfg *MainConfig, name, synopsis, desc string, run payloadFunc) *cli.Command {
	cfg := &PayloadConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Cmd, name).
		WithSynopsis(synopsis).
		WithDescription(desc).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
}

func EscapeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EscapeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Escape, "escape").
		WithAliases("e", "esc").
		WithSynopsis("escape [-a] [strings]").
		WithDescription("print each argument, or each input line, as a single token").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return escape(cfg, cc, args)
		})
}
