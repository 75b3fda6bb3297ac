package grid

import (
	"iter"

	"github.com/signadot/schematic/token"
)

// Part is a number token along with whether a symbol touches it.
type Part struct {
	token.Token
	Adjacent bool
}

// Parts yields every number in lines, part numbers and others alike.
func (s *Scanner) Parts(lines []string) iter.Seq[Part] {
	return func(yield func(Part) bool) {
		for tok := range token.Tokens(lines) {
			p := Part{
				Token:    tok,
				Adjacent: s.Adjacent(lines, tok.Line, tok.Start, tok.End),
			}
			if !yield(p) {
				return
			}
		}
	}
}
