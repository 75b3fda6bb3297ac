package encode

import (
	"io"
	"strings"

	"github.com/signadot/schematic/grid"
)

// EncodeGrid writes lines back out, coloring each cell by its role: part
// numbers, other numbers, gears, other symbols and blanks.  Without
// EncodeColors the output is the input, one line per line.
func EncodeGrid(w io.Writer, lines []string, s *grid.Scanner, opts ...EncodeOption) error {
	es := newState(opts)
	roles := GridRoles(lines, s)
	var buf strings.Builder
	for i, ln := range lines {
		buf.Reset()
		attrs := roles[i]
		j := 0
		for j < len(ln) {
			k := j + 1
			for k < len(ln) && attrs[k] == attrs[j] {
				k++
			}
			buf.WriteString(es.Color(attrs[j], ln[j:k]))
			j = k
		}
		buf.WriteByte('\n')
		if _, err := io.WriteString(w, buf.String()); err != nil {
			return err
		}
	}
	return nil
}

// GridRoles gives the color attribute of every byte of lines.
func GridRoles(lines []string, s *grid.Scanner) [][]ColorAttr {
	class := s.Class()
	roles := make([][]ColorAttr, len(lines))
	for i, ln := range lines {
		attrs := make([]ColorAttr, len(ln))
		for j := 0; j < len(ln); j++ {
			b := ln[j]
			switch {
			case class.IsSymbol(b):
				attrs[j] = SymbolColor
			case isLetter(b):
				attrs[j] = LetterColor
			}
		}
		roles[i] = attrs
	}
	for p := range s.Parts(lines) {
		a := NumberColor
		if p.Adjacent {
			a = PartColor
		}
		for j := p.Start; j < p.End; j++ {
			roles[p.Line][j] = a
		}
	}
	for g := range s.Gears(lines) {
		roles[g.Line][g.Col] = GearColor
	}
	return roles
}

func isLetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}
