package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/tony-format/xy/encode"
	"github.com/signadot/tony-format/xy/format"
	"github.com/signadot/tony-format/xy/libdiff"
	"github.com/signadot/tony-format/xy/parse"
	"github.com/signadot/tony-format/xy/xmlconv"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='color diff output'"`
	Indent int  `cli:"name=indent desc='indentation width, 0 for compact json'"`
	Trim   bool `cli:"name=trim desc='trim whitespace around xml text'"`
	Infer  bool `cli:"name=infer desc='infer numbers and booleans in xml text'"`
	Strict bool `cli:"name=strict desc='fail when an xml attribute and child share a name'"`
	Attrs  bool `cli:"name=attrs desc='write scalar fields as xml attributes'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	var res []parse.ParseOption
	if cfg.InFormat != nil {
		res = append(res, parse.ParseFormat(*cfg.InFormat))
	}
	var xOpts []xmlconv.LowerOption
	if cfg.Trim {
		xOpts = append(xOpts, xmlconv.TrimText(true))
	}
	if cfg.Infer {
		xOpts = append(xOpts, xmlconv.InferScalars(true))
	}
	if cfg.Strict {
		xOpts = append(xOpts, xmlconv.StrictAttributes(true))
	}
	if len(xOpts) != 0 {
		res = append(res, parse.ParseXMLOptions(xOpts...))
	}
	return res
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.YAMLFormat
}

func (cfg *MainConfig) encOpts() []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
	}
	if cfg.Indent >= 0 {
		res = append(res, encode.EncodeIndent(cfg.Indent))
	}
	if cfg.Attrs {
		res = append(res, encode.EncodeXMLOptions(xmlconv.AttrScalars(true)))
	}
	return res
}

// diffColors gives the colors for diff output to w: always with -color,
// never with -color=false and otherwise when w is a terminal.
func (cfg *MainConfig) diffColors(w io.Writer) *libdiff.Colors {
	if cfg.Color {
		return libdiff.NewColors()
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name == "color" && opt.Value != nil {
				return nil
			}
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return libdiff.NewColors()
	}
	return nil
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='print nothing, exit 1 when the result is false or empty'"`

	Eval *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=m desc='patch file is a merge patch'"`

	Patch *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type BuildConfig struct {
	*MainConfig

	Build *cli.Command
}
