package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/dynjson/go-dynjson/encode"
	"github.com/dynjson/go-dynjson/parse"
)

type MainConfig struct {
	Compact bool `cli:"name=c aliases=compact desc='single line output'"`
	Color   bool `cli:"name=color desc='force colored output'"`
	Sorted  bool `cli:"name=s aliases=sorted desc='sort object keys instead of keeping document order'"`
	Indent  int  `cli:"name=i aliases=indent desc='pretty indent width'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{
		parse.PreserveOrder(!cfg.Sorted),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.Indent(cfg.Indent),
		encode.Step(cfg.Indent),
	}
	if cfg.Compact {
		res = append(res, encode.Compact())
	}
	if cfg.Color {
		res = append(res, encode.WithColors(encode.NewColors()))
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.WithColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type EvalConfig struct {
	*MainConfig

	Eval *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	MergePatch bool `cli:"name=m aliases=merge desc='treat the patch as an RFC 7386 merge patch'"`

	Patch *cli.Command
}

type ConvertConfig struct {
	*MainConfig
	FromYAML bool `cli:"name=fy desc='read YAML input'"`
	ToYAML   bool `cli:"name=ty desc='write YAML output'"`

	Convert *cli.Command
}
