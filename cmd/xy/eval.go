package main

import (
	"fmt"
	"io"

	"github.com/signadot/tony-format/xy/eval"
	"github.com/signadot/tony-format/xy/ir"

	"github.com/scott-cotton/cli"
)

func xyEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	ok, err := evalFiles(cfg, cc.Out, cc.In, args[0], args[1:])
	if err != nil {
		return err
	}
	if cfg.Quiet && !ok {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// evalFiles evaluates expression against each document, printing the
// results unless cfg.Quiet. It reports whether every result was true.
func evalFiles(cfg *EvalConfig, w io.Writer, in io.Reader, expression string, files []string) (bool, error) {
	dw := cfg.docWriter(w)
	all := true
	err := eachDoc(in, files, cfg.parseOpts(), func(doc *ir.Node) error {
		res, err := eval.Eval(expression, doc)
		if err != nil {
			return err
		}
		if !ir.Truth(res) {
			all = false
		}
		if cfg.Quiet {
			return nil
		}
		return dw.write(res)
	})
	return all, err
}
