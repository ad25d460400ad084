package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/dynjson/go-dynjson/diff"
	"github.com/dynjson/go-dynjson/parse"
)

func diffCmd(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires exactly two files", cli.ErrUsage)
	}
	ad, err := readInput(args[0])
	if err != nil {
		return err
	}
	bd, err := readInput(args[1])
	if err != nil {
		return err
	}
	a, err := parse.Parse(ad, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", displayName(args[0]), err)
	}
	b, err := parse.Parse(bd, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", displayName(args[1]), err)
	}
	text, err := diff.Text(a, b)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cc.Out, text)
	return err
}
