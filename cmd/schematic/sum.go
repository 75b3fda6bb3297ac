package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/scott-cotton/cli"
)

func sum(cfg *SumConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Sum.Parse(cc, args)
	if err != nil {
		return err
	}
	s, c, err := cfg.scanner()
	if err != nil {
		return err
	}
	ins, err := readInputs(cc, args)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	for _, in := range ins {
		total, err := s.SumParallel(ctx, in.lines, c.Workers)
		if err != nil {
			return fmt.Errorf("error summing %s: %w", in.name, err)
		}
		theLog.Debug("summed", "input", in.name, "lines", len(in.lines), "total", total)
		writeTotal(cc.Out, in.name, total, len(ins) > 1)
	}
	return nil
}

func writeTotal(w io.Writer, name string, total uint64, named bool) {
	if named {
		fmt.Fprintf(w, "%s: %d\n", name, total)
		return
	}
	fmt.Fprintf(w, "%d\n", total)
}
