// Package config loads scanner configuration.
//
// A configuration file is YAML or JSON. It is applied as a JSON merge patch
// over [Default], and then the merge patch in $SCHEMATIC_CONFIG, if any, is
// applied over the result.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/signadot/schematic/debug"
	"github.com/signadot/schematic/grid"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"
)

// EnvPatch names the environment variable holding a merge patch.
const EnvPatch = "SCHEMATIC_CONFIG"

var ErrInvalid = errors.New("invalid config")

type Config struct {
	// Blank lists the non alphanumeric bytes which are not symbols.
	Blank string `json:"blank" yaml:"blank"`
	// Gear is the single byte marking gear candidates.
	Gear    string `json:"gear" yaml:"gear"`
	Workers int    `json:"workers" yaml:"workers"`
}

func Default() *Config {
	return &Config{
		Blank:   grid.DefaultBlank,
		Gear:    string(grid.DefaultGear),
		Workers: 1,
	}
}

// Load reads the config file at path and applies the environment patch.
// An empty path means the defaults.
func Load(path string) (*Config, error) {
	var (
		d   []byte
		err error
	)
	if path != "" {
		d, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("could not read config %q: %w", path, err)
		}
	}
	cfg, err := Parse(d)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", path, err)
	}
	if env := os.Getenv(EnvPatch); env != "" {
		if err := cfg.Patch([]byte(env)); err != nil {
			return nil, fmt.Errorf("error applying $%s: %w", EnvPatch, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if debug.Config() {
		debug.LogAny(cfg)
	}
	return cfg, nil
}

// Parse applies YAML or JSON data over the defaults.
func Parse(d []byte) (*Config, error) {
	cfg := Default()
	if err := cfg.Patch(d); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Patch applies a YAML or JSON merge patch to cfg.
func (cfg *Config) Patch(patch []byte) error {
	if strings.TrimSpace(string(patch)) == "" {
		return nil
	}
	pj, err := yaml.YAMLToJSON(patch)
	if err != nil {
		return fmt.Errorf("error decoding patch: %w", err)
	}
	if s := strings.TrimSpace(string(pj)); s == "null" || s == "" {
		return nil
	}
	doc, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	merged, err := jsonpatch.MergePatch(doc, pj)
	if err != nil {
		return fmt.Errorf("error merging patch: %w", err)
	}
	res := &Config{}
	if err := json.Unmarshal(merged, res); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	*cfg = *res
	return nil
}

func (cfg *Config) Validate() error {
	for i := 0; i < len(cfg.Blank); i++ {
		if cfg.Blank[i] >= 0x80 {
			return fmt.Errorf("%w: blank %q is not ascii", ErrInvalid, cfg.Blank)
		}
	}
	if len(cfg.Gear) != 1 || cfg.Gear[0] >= 0x80 {
		return fmt.Errorf("%w: gear %q must be a single ascii byte", ErrInvalid, cfg.Gear)
	}
	if !grid.NewClass(cfg.Blank).IsSymbol(cfg.Gear[0]) {
		return fmt.Errorf("%w: gear %q is not a symbol", ErrInvalid, cfg.Gear)
	}
	if cfg.Workers < 1 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalid, cfg.Workers)
	}
	return nil
}

// Scanner builds the scanner described by cfg.
func (cfg *Config) Scanner() (*grid.Scanner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return grid.New(
		grid.WithClass(grid.NewClass(cfg.Blank)),
		grid.WithGear(cfg.Gear[0]),
	), nil
}
