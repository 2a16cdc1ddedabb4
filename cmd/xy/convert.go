package main

import (
	"io"

	"github.com/signadot/tony-format/xy/ir"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	return convertFiles(cfg.MainConfig, cc.Out, cc.In, args)
}

func convertFiles(cfg *MainConfig, w io.Writer, in io.Reader, files []string) error {
	dw := cfg.docWriter(w)
	return eachDoc(in, files, cfg.parseOpts(), func(doc *ir.Node) error {
		return dw.write(doc)
	})
}
