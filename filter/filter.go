// Package filter selects parts with boolean expressions.
//
// Expressions are written in the expr language and see the fields of [Env],
// for example
//
//	Adjacent && Value > 100
//	Line < 3 || Width == 1
package filter

import (
	"fmt"

	"github.com/signadot/schematic/grid"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Env is what an expression sees of a part.
type Env struct {
	Value    uint64
	Line     int
	Start    int
	End      int
	Width    int
	Adjacent bool
}

func EnvOf(p grid.Part) Env {
	return Env{
		Value:    p.Value,
		Line:     p.Line,
		Start:    p.Start,
		End:      p.End,
		Width:    p.Width(),
		Adjacent: p.Adjacent,
	}
}

type Filter struct {
	src     string
	program *vm.Program
}

// Compile compiles src.  The empty expression matches every part.
func Compile(src string) (*Filter, error) {
	f := &Filter{src: src}
	if src == "" {
		return f, nil
	}
	program, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("error compiling filter %q: %w", src, err)
	}
	f.program = program
	return f, nil
}

func (f *Filter) String() string {
	return f.src
}

func (f *Filter) Match(p grid.Part) (bool, error) {
	if f.program == nil {
		return true, nil
	}
	res, err := vm.Run(f.program, EnvOf(p))
	if err != nil {
		return false, fmt.Errorf("error evaluating filter %q on %s: %w", f.src, p.Token, err)
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q returned %T", f.src, res)
	}
	return b, nil
}
