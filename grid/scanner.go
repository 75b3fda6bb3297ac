package grid

import (
	"github.com/signadot/schematic/debug"
)

// DefaultGear is the byte marking a potential gear.
const DefaultGear = '*'

type Scanner struct {
	class *Class
	gear  byte
}

type Option func(*Scanner)

func WithClass(c *Class) Option {
	return func(s *Scanner) { s.class = c }
}

func WithGear(b byte) Option {
	return func(s *Scanner) { s.gear = b }
}

func New(opts ...Option) *Scanner {
	s := &Scanner{}
	for _, opt := range opts {
		opt(s)
	}
	if s.class == nil {
		s.class = DefaultClass()
	}
	if s.gear == 0 {
		s.gear = DefaultGear
	}
	return s
}

func (s *Scanner) Class() *Class {
	return s.class
}

func (s *Scanner) Gear() byte {
	return s.gear
}

// Adjacent reports whether a symbol touches the columns [start, end) of
// lines[i].
//
// The probes are the cell left of start and the cell at end on line i, then
// [start-1, end+1) on the lines above and below. That wider range holds the
// diagonal neighbours. Ranges are clamped to each line's length.
func (s *Scanner) Adjacent(lines []string, i, start, end int) bool {
	ln := lines[i]
	var where string
	switch {
	case start > 0 && start <= len(ln) && s.class.IsSymbol(ln[start-1]):
		where = "left"
	case end >= 0 && end < len(ln) && s.class.IsSymbol(ln[end]):
		where = "right"
	case i > 0 && s.probe(lines[i-1], start-1, end+1):
		where = "above"
	case i+1 < len(lines) && s.probe(lines[i+1], start-1, end+1):
		where = "below"
	default:
		if debug.Judge() {
			debug.Logf("judge line %d [%d,%d): no symbol\n", i, start, end)
		}
		return false
	}
	if debug.Judge() {
		debug.Logf("judge line %d [%d,%d): symbol %s\n", i, start, end, where)
	}
	return true
}

func (s *Scanner) probe(ln string, start, end int) bool {
	start = max(start, 0)
	end = min(end, len(ln))
	if start >= end {
		return false
	}
	return s.class.HasSymbol(ln[start:end])
}
