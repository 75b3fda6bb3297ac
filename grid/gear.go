package grid

import (
	"iter"

	"github.com/signadot/schematic/debug"
	"github.com/signadot/schematic/token"
)

// Gear is a gear cell touching exactly two numbers.
type Gear struct {
	Line  int
	Col   int
	Parts [2]token.Token
}

// Ratio is the product of the gear's two numbers.
func (g Gear) Ratio() (uint64, error) {
	return mul(g.Parts[0].Value, g.Parts[1].Value)
}

// Gears yields the gears of lines in reading order.
func (s *Scanner) Gears(lines []string) iter.Seq[Gear] {
	return func(yield func(Gear) bool) {
		for i, ln := range lines {
			for j := 0; j < len(ln); j++ {
				if ln[j] != s.gear {
					continue
				}
				g, ok := s.gearAt(lines, i, j)
				if !ok {
					continue
				}
				if !yield(g) {
					return
				}
			}
		}
	}
}

// GearRatioSum adds the ratios of all gears in lines.
func (s *Scanner) GearRatioSum(lines []string) (uint64, error) {
	var total uint64
	for g := range s.Gears(lines) {
		r, err := g.Ratio()
		if err != nil {
			return 0, err
		}
		if total, err = add(total, r); err != nil {
			return 0, err
		}
	}
	return total, nil
}

func (s *Scanner) gearAt(lines []string, row, col int) (Gear, bool) {
	g := Gear{Line: row, Col: col}
	box := token.Span{Start: col - 1, End: col + 2}
	n := 0
	for i := max(row-1, 0); i < min(row+2, len(lines)); i++ {
		for tok := range token.Scan(i, lines[i]) {
			if tok.Start >= box.End {
				break
			}
			if !box.Overlaps(tok.Span()) {
				continue
			}
			if n == 2 {
				if debug.Gear() {
					debug.Logf("gear candidate %s touches more than 2 numbers\n", token.Pos{Line: row, Col: col})
				}
				return g, false
			}
			g.Parts[n] = tok
			n++
		}
	}
	if debug.Gear() {
		debug.Logf("gear candidate %s touches %d numbers\n", token.Pos{Line: row, Col: col}, n)
	}
	return g, n == 2
}
