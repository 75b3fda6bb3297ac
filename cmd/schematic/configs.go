package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/signadot/schematic/config"
	"github.com/signadot/schematic/encode"
	"github.com/signadot/schematic/format"
	"github.com/signadot/schematic/grid"

	"github.com/scott-cotton/cli"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool   `cli:"name=color desc='output with color'"`
	Verbose bool   `cli:"name=v desc='log to stderr'"`
	Config  string `cli:"name=config desc='configuration file (yaml or json)'"`
	Workers int    `cli:"name=workers desc='goroutines summing lines, overrides the configuration'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// scanner loads the configuration and builds the scanner it describes.
func (cfg *MainConfig) scanner() (*grid.Scanner, *config.Config, error) {
	if cfg.Verbose {
		logLevel.Set(slog.LevelDebug)
	}
	c, err := config.Load(cfg.Config)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Workers > 0 {
		c.Workers = cfg.Workers
	}
	s, err := c.Scanner()
	if err != nil {
		return nil, nil, err
	}
	theLog.Debug("configured", "blank", c.Blank, "gear", c.Gear, "workers", c.Workers)
	return s, c, nil
}

func (cfg *MainConfig) colors(w io.Writer) *encode.Colors {
	if cfg.Color {
		color.NoColor = false
		return encode.NewColors()
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return encode.NewColors()
	}
	return nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	c := cfg.colors(w)
	if c == nil {
		return nil
	}
	return []encode.EncodeOption{encode.EncodeColors(c)}
}

type SumConfig struct {
	*MainConfig
	Sum *cli.Command
}

type GearsConfig struct {
	*MainConfig
	List  bool `cli:"name=l desc='list each gear'"`
	Gears *cli.Command
}

type PartsConfig struct {
	*MainConfig
	All   bool   `cli:"name=a desc='list numbers which are not part numbers too'"`
	Where string `cli:"name=where desc='filter expression'"`

	T bool `cli:"name=t aliases=text desc='output text'"`
	J bool `cli:"name=j aliases=json desc='output json'"`
	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`

	OutFormat *format.Format

	Parts *cli.Command
}

func (cfg *PartsConfig) fmtFunc() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		cfg.OutFormat = &f
		return f, nil
	})
}

func (cfg *PartsConfig) outFormat() (format.Format, error) {
	if count(cfg.T, cfg.J, cfg.Y) > 1 {
		return 0, fmt.Errorf("%w: must specify at most one of -t[ext] -j[son] -y[aml]", cli.ErrUsage)
	}
	var f format.Format
	switch {
	case cfg.J:
		f = format.JSONFormat
	case cfg.Y:
		f = format.YAMLFormat
	}
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	return f, nil
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type DiffConfig struct {
	*MainConfig
	All  bool `cli:"name=a desc='diff numbers which are not part numbers too'"`
	Diff *cli.Command
}
