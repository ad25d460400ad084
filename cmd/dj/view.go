package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/dynjson/go-dynjson/encode"
	"github.com/dynjson/go-dynjson/value"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return withInputs(cfg.MainConfig, args, func(name string, v value.Var) error {
		if err := encode.Encode(v, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", displayName(name), err)
		}
		fmt.Fprintln(cc.Out)
		return nil
	})
}
