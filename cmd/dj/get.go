package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/dynjson/go-dynjson/encode"
	"github.com/dynjson/go-dynjson/value"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a path argument", cli.ErrUsage)
	}
	path, err := value.ParsePath(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return withInputs(cfg.MainConfig, args[1:], func(name string, v value.Var) error {
		res := value.GetPath(v, path)
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", displayName(name), err)
		}
		fmt.Fprintln(cc.Out)
		return nil
	})
}
