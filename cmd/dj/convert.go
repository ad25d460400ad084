package main

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/dynjson/go-dynjson/encode"
	"github.com/dynjson/go-dynjson/govar"
	"github.com/dynjson/go-dynjson/parse"
	"github.com/dynjson/go-dynjson/value"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		d, err := readInput(file)
		if err != nil {
			return err
		}
		v, err := convertParse(cfg, d)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", displayName(file), err)
		}
		if err := convertWrite(cfg, cc, v); err != nil {
			return fmt.Errorf("error writing %s: %w", displayName(file), err)
		}
	}
	return nil
}

func convertParse(cfg *ConvertConfig, d []byte) (value.Var, error) {
	if !cfg.FromYAML {
		return parse.Parse(d, cfg.parseOpts()...)
	}
	var raw any
	if err := yaml.Unmarshal(d, &raw); err != nil {
		return value.Var{}, err
	}
	return govar.From(raw)
}

func convertWrite(cfg *ConvertConfig, cc *cli.Context, v value.Var) error {
	if !cfg.ToYAML {
		if err := encode.Encode(v, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
		_, err := fmt.Fprintln(cc.Out)
		return err
	}
	d, err := yaml.Marshal(govar.To(v))
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(d)
	return err
}
