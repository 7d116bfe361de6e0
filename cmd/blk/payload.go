package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/signadot/blockline/block"
	"github.com/signadot/blockline/heapbuf"
	"github.com/signadot/blockline/linectx"
	"github.com/signadot/blockline/payload"
	"github.com/signadot/blockline/token"
)

var errNoBlock = errors.New("no such block")

func (cfg *PayloadConfig) blockName(def string) string {
	if cfg.Name != "" {
		return cfg.Name
	}
	return def
}

func binEnc(cfg *PayloadConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Cmd.Parse(cc, args)
	if err != nil {
		return err
	}
	file, err := oneArg(args)
	if err != nil {
		return err
	}
	d, err := readInput(cc, file)
	if err != nil {
		return err
	}
	return encodeBinaryBlock(cc.Out, cfg.blockName(cfg.Settings.BinaryBlock), d)
}

func encodeBinaryBlock(w io.Writer, name string, d []byte) error {
	out := linectx.NewWriter(w)
	block.Begin(out, name)
	payload.EncodeBinary(out, d)
	block.End(out)
	return out.Err()
}

func binDec(cfg *PayloadConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Cmd.Parse(cc, args)
	if err != nil {
		return err
	}
	file, err := oneArg(args)
	if err != nil {
		return err
	}
	name := cfg.blockName(cfg.Settings.BinaryBlock)
	return withInput(cc, file, func(src string, lc *linectx.File) error {
		d, err := decodeBinaryBlock(lc, name, cfg.Settings.StageCapacity)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", src, err)
		}
		_, err = cc.Out.Write(d)
		return err
	})
}

func decodeBinaryBlock(lc linectx.Context, name string, stage int) ([]byte, error) {
	if err := findBlock(lc, name); err != nil {
		return nil, err
	}
	buf := heapbuf.New()
	if err := payload.DecodeBinaryStage(lc, buf, stage); err != nil {
		return nil, err
	}
	theLog.Debug("decoded", "block", name, "bytes", buf.Len())
	return buf.Bytes(), nil
}

func textEnc(cfg *PayloadConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Cmd.Parse(cc, args)
	if err != nil {
		return err
	}
	file, err := oneArg(args)
	if err != nil {
		return err
	}
	d, err := readInput(cc, file)
	if err != nil {
		return err
	}
	return encodeTextBlock(cc.Out, cfg.blockName(cfg.Settings.TextBlock), string(d))
}

func encodeTextBlock(w io.Writer, name, text string) error {
	out := linectx.NewWriter(w)
	block.Begin(out, name)
	payload.EncodeText(out, text)
	block.End(out)
	return out.Err()
}

func textDec(cfg *PayloadConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Cmd.Parse(cc, args)
	if err != nil {
		return err
	}
	file, err := oneArg(args)
	if err != nil {
		return err
	}
	name := cfg.blockName(cfg.Settings.TextBlock)
	return withInput(cc, file, func(src string, lc *linectx.File) error {
		text, err := decodeTextBlock(lc, name)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", src, err)
		}
		if text == "" {
			return nil
		}
		_, err = io.WriteString(cc.Out, text+"\r\n")
		return err
	})
}

func decodeTextBlock(lc linectx.Context, name string) (string, error) {
	if err := findBlock(lc, name); err != nil {
		return "", err
	}
	dst := &strings.Builder{}
	if err := payload.DecodeText(lc, dst); err != nil {
		return "", err
	}
	return dst.String(), nil
}

// findBlock positions lc just after the open line of the first block
// named name, compared case insensitively, at any depth.
func findBlock(lc linectx.Context, name string) error {
	lp := token.NewLineParser()
	open := string(block.OpenMarker) + name
	for {
		if err := block.Next(lc, lp); err != nil {
			if err == io.EOF {
				return fmt.Errorf("%w: %s", errNoBlock, name)
			}
			return err
		}
		if lp.TokenEnum(0, open) == 0 {
			return nil
		}
	}
}
