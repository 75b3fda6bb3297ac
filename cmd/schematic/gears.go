package main

import (
	"fmt"
	"slices"

	"github.com/signadot/schematic/encode"

	"github.com/scott-cotton/cli"
)

func gears(cfg *GearsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Gears.Parse(cc, args)
	if err != nil {
		return err
	}
	s, _, err := cfg.scanner()
	if err != nil {
		return err
	}
	ins, err := readInputs(cc, args)
	if err != nil {
		return err
	}
	for _, in := range ins {
		if cfg.List {
			gs := slices.Collect(s.Gears(in.lines))
			if err := encode.EncodeGears(cc.Out, gs, cfg.encOpts(cc.Out)...); err != nil {
				return fmt.Errorf("error listing gears of %s: %w", in.name, err)
			}
		}
		total, err := s.GearRatioSum(in.lines)
		if err != nil {
			return fmt.Errorf("error summing gear ratios of %s: %w", in.name, err)
		}
		theLog.Debug("gears", "input", in.name, "total", total)
		writeTotal(cc.Out, in.name, total, len(ins) > 1)
	}
	return nil
}
