package main

import (
	"fmt"

	"github.com/signadot/schematic/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
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
	for i, in := range ins {
		if i > 0 {
			fmt.Fprintln(cc.Out)
		}
		if err := encode.EncodeGrid(cc.Out, in.lines, s, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error viewing %s: %w", in.name, err)
		}
	}
	return nil
}
