package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/dynjson/go-dynjson/encode"
	"github.com/dynjson/go-dynjson/query"
	"github.com/dynjson/go-dynjson/value"
)

func eval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression argument", cli.ErrUsage)
	}
	expression := args[0]
	return withInputs(cfg.MainConfig, args[1:], func(name string, v value.Var) error {
		root := v.Object()
		if root == nil {
			return fmt.Errorf("%s: top level value is %s, not an object", displayName(name), v.Kind())
		}
		res, err := query.Eval(expression, root)
		if err != nil {
			return fmt.Errorf("error evaluating %s: %w", displayName(name), err)
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", displayName(name), err)
		}
		fmt.Fprintln(cc.Out)
		return nil
	})
}
