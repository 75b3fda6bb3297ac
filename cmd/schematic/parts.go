package main

import (
	"fmt"

	"github.com/signadot/schematic/encode"
	"github.com/signadot/schematic/filter"
	"github.com/signadot/schematic/format"
	"github.com/signadot/schematic/grid"

	"github.com/scott-cotton/cli"
)

func parts(cfg *PartsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parts.Parse(cc, args)
	if err != nil {
		return err
	}
	f, err := cfg.outFormat()
	if err != nil {
		return err
	}
	where, err := filter.Compile(cfg.Where)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	s, _, err := cfg.scanner()
	if err != nil {
		return err
	}
	ins, err := readInputs(cc, args)
	if err != nil {
		return err
	}
	opts := []encode.EncodeOption{encode.EncodeFormat(f), encode.EncodeAll(cfg.All)}
	if f == format.TextFormat {
		opts = append(opts, cfg.encOpts(cc.Out)...)
	}
	for i, in := range ins {
		ps, err := selectParts(s, in.lines, where)
		if err != nil {
			return fmt.Errorf("error in %s: %w", in.name, err)
		}
		if len(ins) > 1 && f == format.TextFormat {
			fmt.Fprintf(cc.Out, "# %s\n", in.name)
		} else if i > 0 {
			fmt.Fprintln(cc.Out, "---")
		}
		if err := encode.EncodeParts(cc.Out, ps, opts...); err != nil {
			return err
		}
	}
	return nil
}

func selectParts(s *grid.Scanner, lines []string, where *filter.Filter) ([]grid.Part, error) {
	var res []grid.Part
	for p := range s.Parts(lines) {
		ok, err := where.Match(p)
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, p)
		}
	}
	return res, nil
}
