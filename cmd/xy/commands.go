package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Indent: -1}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: xml/x, yaml/y, json/j (default detected)",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: xml/x, yaml/y, json/j (default yaml)",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "xy").
		WithSynopsis("xy [opts] command [opts]").
		WithDescription("xy converts between xml, yaml and json documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return xyMain(cfg, cc, args)
		}).
		WithSubs(
			ConvertCommand(cfg),
			GetCommand(cfg),
			EvalCommand(cfg),
			PatchCommand(cfg),
			DiffCommand(cfg),
			BuildCommand(cfg))
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Convert, "convert").
		WithAliases("c", "conv").
		WithSynopsis("convert [files]").
		WithDescription("convert documents to the output format").
		WithRun(func(cc *cli.Context, args []string) error {
			return convert(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get <path> [files]").
		WithDescription("get the value at a $-path, such as $.note.to").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Eval, "eval").
		WithAliases("e", "ev").
		WithSynopsis("eval [-q] <expr> [files]").
		WithDescription(evalDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return xyEval(cfg, cc, args)
		})
}

const evalDescription = `evaluate an expression against documents.

Top level keys of the document are variables in the expression; functions
getpath(path), listpath(path), text(v), root() and getenv(name) are also
available.  Elements read from xml hold their text under "@text", so that

  xy eval 'text(note.to) == "Tove"' note.xml

compares the text of <to>.`

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [-m] <patchfile> [files]").
		WithDescription("apply a json patch (RFC 6902) or with -m a merge patch (RFC 7386)").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff a b").
		WithDescription("diff two documents rendered in the output format, exiting 1 when they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func BuildCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BuildConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Build, "build").
		WithAliases("b").
		WithSynopsis("build [dir]").
		WithDescription(buildDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return build(cfg, cc, args)
		})
}

const buildDescription = `build converts and patches a directory of documents.

Build operates on a build directory, which defaults to the current directory,
holding a file 'build.{yaml,yml}' of the form

  build:
    # output directory, relative to the build directory
    destDir: out
    # output format and file suffix
    format: yaml
    suffix: .yaml

    sources:
    - path: config/*.xml   # glob, relative to the build directory
    - path: extra.txt
      format: yaml         # format when the suffix does not tell

    patches:
    - match: config/a.xml  # glob over source paths
      patch: fix.json      # RFC 6902 patch file
    - when:                # source contains this, comparing text
        service:
          kind: web
      merge:               # RFC 7386 merge patch
        service:
          replicas: 2
    - if: 'text(service.kind) == "test"'
      drop: true           # leave the source out

Build prints the files it writes.`
