package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "schematic").
		WithSynopsis("schematic [opts] command [opts]").
		WithDescription("schematic finds the part numbers and gears of engine schematics.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return schematicMain(cfg, cc, args)
		}).
		WithSubs(
			SumCommand(cfg),
			GearsCommand(cfg),
			PartsCommand(cfg),
			ViewCommand(cfg),
			DiffCommand(cfg))
}

func SumCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SumConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Sum, "sum").
		WithAliases("s").
		WithSynopsis("sum [files]").
		WithDescription("print the sum of the part numbers of each schematic").
		WithRun(func(cc *cli.Context, args []string) error {
			return sum(cfg, cc, args)
		})
}

func GearsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GearsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Gears, "gears").
		WithAliases("g").
		WithSynopsis("gears [-l] [files]").
		WithDescription("print the sum of the gear ratios of each schematic").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return gears(cfg, cc, args)
		})
}

func PartsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PartsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "O",
		Aliases:     []string{"ofmt"},
		Description: "output format: text/t, json/j, yaml/y",
		Type:        cli.NamedFuncOpt(cfg.fmtFunc(), "(format)"),
	})
	return cli.NewCommandAt(&cfg.Parts, "parts").
		WithAliases("p").
		WithSynopsis("parts [-a] [-where expr] [-O format] [files]").
		WithDescription(partsDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return parts(cfg, cc, args)
		})
}

const partsDescription = `list the numbers of schematics.

By default only part numbers, those touching a symbol, are listed.  -a lists
every number.

-where filters the list with an expression over the fields
  Value, Line, Start, End, Width (integers) and Adjacent (bool)
for example
  parts -where 'Value > 100 && Line < 3'`

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view schematics with part numbers, symbols and gears in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff [-a] a b").
		WithDescription("diff the part numbers of two schematics, exiting 1 if they differ").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}
