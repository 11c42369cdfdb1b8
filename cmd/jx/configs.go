package main

import (
	"fmt"
	"io"
	"os"

	"github.com/SamuelMarks/serde-json-extensions/encode"
	"github.com/SamuelMarks/serde-json-extensions/gomap"
	"github.com/SamuelMarks/serde-json-extensions/ir"
	"github.com/SamuelMarks/serde-json-extensions/parse"

	"github.com/scott-cotton/cli"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output in compact form'"`

	Y bool `cli:"name=y aliases=yaml desc='read input as yaml'"`

	NoNumber bool `cli:"name=nonumber desc='disable the !number sentinel and exact wide numerals'"`
	NoRaw    bool `cli:"name=noraw desc='disable the !raw sentinel'"`
	Scalar   bool `cli:"name=scalar desc='restrict values to the scalar shape'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{
		parse.ArbitraryPrecision(!cfg.NoNumber),
		parse.RawValues(!cfg.NoRaw),
	}
}

func (cfg *MainConfig) mapOpts() []gomap.Option {
	return []gomap.Option{
		gomap.ArbitraryPrecision(!cfg.NoNumber),
		gomap.RawValues(!cfg.NoRaw),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// readArg reads one input, "-" for stdin, and returns its value tree.
func readArg(cfg *MainConfig, arg string) (*ir.Node, error) {
	var rd io.Reader
	if arg == "-" {
		rd = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		rd = f
	}
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, err
	}
	node, err := decodeInput(cfg, data)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	if cfg.Scalar {
		if _, err := ir.ScalarOf(node); err != nil {
			return nil, fmt.Errorf("%s: %w", arg, err)
		}
	}
	return node, nil
}

// decodeInput parses wire text, or, with -y, reads YAML and maps the
// decoded document into the value domain.
func decodeInput(cfg *MainConfig, data []byte) (*ir.Node, error) {
	if !cfg.Y {
		return parse.Parse(data, cfg.parseOpts()...)
	}
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return gomap.ToValue(v, cfg.mapOpts()...)
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q desc='suppress per-file output'"`

	Check *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
