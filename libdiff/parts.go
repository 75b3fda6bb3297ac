package libdiff

import (
	"io"
	"strings"

	"github.com/signadot/schematic/encode"
	"github.com/signadot/schematic/grid"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return " "
	}
}

type Line struct {
	Op   Op
	Text string
}

func (l Line) String() string {
	return l.Op.String() + " " + l.Text
}

// DiffParts diffs the part numbers of from and to.  When all is set,
// numbers which are not part numbers take part in the diff as well.
func DiffParts(from, to []grid.Part, all bool) []Line {
	fromText := render(from, all)
	toText := render(to, all)
	dmp := diffpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(fromText, toText)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)
	var res []Line
	for _, d := range diffs {
		op := Equal
		switch d.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		}
		for _, ln := range strings.SplitAfter(d.Text, "\n") {
			if ln == "" {
				continue
			}
			res = append(res, Line{Op: op, Text: strings.TrimSuffix(ln, "\n")})
		}
	}
	return res
}

// Changed reports whether any line was inserted or deleted.
func Changed(lines []Line) bool {
	for _, ln := range lines {
		if ln.Op != Equal {
			return true
		}
	}
	return false
}

// WriteLines writes lines, coloring insertions as parts and deletions as
// plain numbers when c is set.
func WriteLines(w io.Writer, lines []Line, c *encode.Colors) error {
	for _, ln := range lines {
		s := ln.String()
		if c != nil {
			switch ln.Op {
			case Insert:
				s = c.Color(encode.PartColor, s)
			case Delete:
				s = c.Color(encode.NumberColor, s)
			}
		}
		if _, err := io.WriteString(w, s+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func render(parts []grid.Part, all bool) string {
	var buf strings.Builder
	for _, p := range parts {
		if !p.Adjacent && !all {
			continue
		}
		buf.WriteString(p.Token.String())
		if !p.Adjacent {
			buf.WriteString(" excluded")
		}
		buf.WriteByte('\n')
	}
	return buf.String()
}
