package grid

import (
	"errors"
	"math/bits"

	"github.com/signadot/schematic/debug"
	"github.com/signadot/schematic/token"
)

var ErrOverflow = errors.New("sum overflows uint64")

// Sum adds the values of all part numbers in lines.  It fails with
// ErrOverflow rather than wrapping.
func (s *Scanner) Sum(lines []string) (uint64, error) {
	var total uint64
	for i := range lines {
		n, err := s.sumLine(lines, i)
		if err != nil {
			return 0, err
		}
		if total, err = add(total, n); err != nil {
			return 0, err
		}
	}
	return total, nil
}

// Sum is Scanner.Sum with the default configuration.
func Sum(lines []string) (uint64, error) {
	return New().Sum(lines)
}

func (s *Scanner) sumLine(lines []string, i int) (uint64, error) {
	var (
		total uint64
		err   error
	)
	for tok := range token.Scan(i, lines[i]) {
		if !s.Adjacent(lines, i, tok.Start, tok.End) {
			continue
		}
		if debug.Scan() {
			debug.Logf("part %s\n", tok)
		}
		if total, err = add(total, tok.Value); err != nil {
			return 0, err
		}
	}
	return total, nil
}

func add(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, ErrOverflow
	}
	return sum, nil
}

func mul(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, ErrOverflow
	}
	return lo, nil
}
