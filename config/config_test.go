package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	var tests = []struct {
		in   string
		want *Config
	}{
		{in: "", want: Default()},
		{in: "null", want: Default()},
		{in: "workers: 4\n", want: &Config{Blank: ".", Gear: "*", Workers: 4}},
		{in: `{"blank": ". ", "gear": "@"}`, want: &Config{Blank: ". ", Gear: "@", Workers: 1}},
		{in: "blank: '.~'\ngear: '#'\n", want: &Config{Blank: ".~", Gear: "#", Workers: 1}},
	}
	for _, tt := range tests {
		got, err := Parse([]byte(tt.in))
		if err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%q mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestParseBadType(t *testing.T) {
	_, err := Parse([]byte("workers: many\n"))
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("got %v want ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	var bad = []*Config{
		{Blank: ".", Gear: "", Workers: 1},
		{Blank: ".", Gear: "**", Workers: 1},
		{Blank: ".", Gear: "a", Workers: 1},
		{Blank: ".", Gear: ".", Workers: 1},
		{Blank: "é", Gear: "*", Workers: 1},
		{Blank: ".", Gear: "*", Workers: 0},
	}
	for _, cfg := range bad {
		if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
			t.Errorf("%+v: got %v want ErrInvalid", cfg, err)
		}
	}
	if err := Default().Validate(); err != nil {
		t.Error(err)
	}
}

func TestLoadEnvPatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schematic.yaml")
	if err := os.WriteFile(path, []byte("workers: 3\ngear: '@'\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvPatch, `{"workers": 8}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{Blank: ".", Gear: "@", Workers: 8}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvPatch, "")
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v want not exist", err)
	}
}

func TestScanner(t *testing.T) {
	cfg := &Config{Blank: ". ", Gear: "@", Workers: 1}
	s, err := cfg.Scanner()
	if err != nil {
		t.Fatal(err)
	}
	if s.Gear() != '@' {
		t.Errorf("gear %q", s.Gear())
	}
	if s.Class().IsSymbol(' ') {
		t.Error("space should be blank")
	}
	total, err := s.Sum([]string{"1 2", "..."})
	if err != nil {
		t.Fatal(err)
	}
	if total != 0 {
		t.Errorf("got %d want 0", total)
	}
}
