package main

import (
	"fmt"
	"slices"

	"github.com/signadot/schematic/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	s, _, err := cfg.scanner()
	if err != nil {
		return err
	}
	from, err := readFile(args[0])
	if err != nil {
		return err
	}
	to, err := readFile(args[1])
	if err != nil {
		return err
	}
	lines := libdiff.DiffParts(
		slices.Collect(s.Parts(from)),
		slices.Collect(s.Parts(to)),
		cfg.All)
	if !libdiff.Changed(lines) {
		return nil
	}
	if err := libdiff.WriteLines(cc.Out, lines, cfg.colors(cc.Out)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
