// Package config loads blk settings from an optional TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/signadot/blockline/payload"
)

// EnvPath names the environment variable consulted when no path is given.
const EnvPath = "BLOCKLINE_CONFIG"

var (
	ErrUnknownKey = errors.New("unknown config key")
	ErrValue      = errors.New("invalid config value")
)

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

type Config struct {
	Color         ColorMode
	Indent        int
	StageCapacity int
	TextBlock     string
	BinaryBlock   string
	DiffContext   int
}

func Default() Config {
	return Config{
		Color:         ColorAuto,
		Indent:        2,
		StageCapacity: payload.StageCapacity,
		TextBlock:     "NOTES",
		BinaryBlock:   "DATA",
		DiffContext:   3,
	}
}

type fileConfig struct {
	Color         string `toml:"color"`
	Indent        int    `toml:"indent"`
	StageCapacity int    `toml:"stage_capacity"`
	TextBlock     string `toml:"text_block"`
	BinaryBlock   string `toml:"binary_block"`
	DiffContext   int    `toml:"diff_context"`
}

// Load reads path, or the file named by $BLOCKLINE_CONFIG when path is
// empty, over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvPath)
	}
	if path == "" {
		return Default(), nil
	}
	cfg, err := LoadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return Default(), nil
	}
	return cfg, err
}

func LoadFile(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if undec := meta.Undecoded(); len(undec) != 0 {
		return Config{}, fmt.Errorf("load config %s: %w: %s", path, ErrUnknownKey, undec[0])
	}

	if meta.IsDefined("color") {
		mode := ColorMode(strings.ToLower(strings.TrimSpace(raw.Color)))
		switch mode {
		case ColorAuto, ColorAlways, ColorNever:
			cfg.Color = mode
		default:
			return Config{}, fmt.Errorf("%w: color %q (expected auto, always or never)", ErrValue, raw.Color)
		}
	}

	if meta.IsDefined("indent") {
		if raw.Indent < 0 {
			return Config{}, fmt.Errorf("%w: indent %d", ErrValue, raw.Indent)
		}
		cfg.Indent = raw.Indent
	}

	if meta.IsDefined("stage_capacity") {
		// at least one 4 character base64 group must fit
		if raw.StageCapacity < 4 {
			return Config{}, fmt.Errorf("%w: stage_capacity %d", ErrValue, raw.StageCapacity)
		}
		cfg.StageCapacity = raw.StageCapacity
	}

	if meta.IsDefined("text_block") {
		if name := strings.TrimSpace(raw.TextBlock); name != "" {
			cfg.TextBlock = name
		}
	}

	if meta.IsDefined("binary_block") {
		if name := strings.TrimSpace(raw.BinaryBlock); name != "" {
			cfg.BinaryBlock = name
		}
	}

	if meta.IsDefined("diff_context") {
		cfg.DiffContext = raw.DiffContext
	}
	return cfg, nil
}
