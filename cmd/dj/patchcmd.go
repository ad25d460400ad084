package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/dynjson/go-dynjson/encode"
	"github.com/dynjson/go-dynjson/patch"
	"github.com/dynjson/go-dynjson/value"
)

func patchCmd(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file argument", cli.ErrUsage)
	}
	patchDoc, err := readInput(args[0])
	if err != nil {
		return err
	}
	apply := patch.Apply
	if cfg.MergePatch {
		apply = patch.Merge
	}
	return withInputs(cfg.MainConfig, args[1:], func(name string, v value.Var) error {
		res, err := apply(v, patchDoc)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", displayName(name), err)
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", displayName(name), err)
		}
		fmt.Fprintln(cc.Out)
		return nil
	})
}
