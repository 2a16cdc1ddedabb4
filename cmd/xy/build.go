package main

import (
	"fmt"
	"io"

	"github.com/signadot/tony-format/xy/dirbuild"

	"github.com/scott-cotton/cli"
)

func build(cfg *BuildConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Build.Parse(cc, args)
	if err != nil {
		return err
	}
	dir := "."
	switch len(args) {
	case 0:
	case 1:
		dir = args[0]
	default:
		return fmt.Errorf("%w: build takes at most one directory, got %v", cli.ErrUsage, args)
	}
	return buildDir(cc.Out, dir)
}

func buildDir(w io.Writer, dir string) error {
	d, err := dirbuild.OpenDir(dir)
	if err != nil {
		return err
	}
	written, err := d.Build()
	for _, path := range written {
		fmt.Fprintln(w, path)
	}
	return err
}
