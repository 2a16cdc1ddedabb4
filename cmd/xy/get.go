package main

import (
	"fmt"
	"io"

	"github.com/signadot/tony-format/xy/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	return getFiles(cfg.MainConfig, cc.Out, cc.In, path, args[1:])
}

func getFiles(cfg *MainConfig, w io.Writer, in io.Reader, path string, files []string) error {
	dw := cfg.docWriter(w)
	return eachDoc(in, files, cfg.parseOpts(), func(doc *ir.Node) error {
		res, err := doc.GetPath(path)
		if err != nil {
			return fmt.Errorf("error querying %s: %w", path, err)
		}
		if res == nil {
			return fmt.Errorf("nothing at %s", path)
		}
		return dw.write(res)
	})
}
