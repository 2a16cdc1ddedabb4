package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/tony-format/xy"
	"github.com/signadot/tony-format/xy/ir"
	"github.com/signadot/tony-format/xy/parse"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	d, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	return patchFiles(cfg, cc.Out, cc.In, d, args[1:])
}

func patchFiles(cfg *PatchConfig, w io.Writer, in io.Reader, patchData []byte, files []string) error {
	apply := func(doc *ir.Node) (*ir.Node, error) {
		return xy.Patch(doc, patchData)
	}
	if cfg.Merge {
		// merge patches may be written in any input format
		mp, err := parse.Parse(patchData)
		if err != nil {
			return fmt.Errorf("error decoding merge patch: %w", err)
		}
		apply = func(doc *ir.Node) (*ir.Node, error) {
			return xy.MergePatch(doc, mp)
		}
	}
	dw := cfg.docWriter(w)
	return eachDoc(in, files, cfg.parseOpts(), func(doc *ir.Node) error {
		res, err := apply(doc)
		if err != nil {
			return err
		}
		return dw.write(res)
	})
}
