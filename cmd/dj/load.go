package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dynjson/go-dynjson/parse"
	"github.com/dynjson/go-dynjson/value"
)

// withInputs parses each named file (or stdin when files is empty or
// names "-") and hands the document to fn.
func withInputs(cfg *MainConfig, files []string, fn func(name string, v value.Var) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		d, err := readInput(file)
		if err != nil {
			return err
		}
		v, err := parse.Parse(d, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", displayName(file), err)
		}
		if err := fn(file, v); err != nil {
			return err
		}
	}
	return nil
}

func readInput(file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(os.Stdin)
	}
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", file, err)
	}
	return d, nil
}

func displayName(file string) string {
	if file == "-" {
		return "stdin"
	}
	return file
}
