package token

import "fmt"

// Token is a maximal run of digits on one line.
type Token struct {
	Line  int
	Start int
	End   int
	Value uint64
}

// Span is a half-open column range [Start, End).
type Span struct {
	Start, End int
}

func (s Span) Len() int {
	return s.End - s.Start
}

// Overlaps reports whether s and o share at least one column.
func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

func (t Token) Span() Span {
	return Span{Start: t.Start, End: t.End}
}

func (t Token) Pos() Pos {
	return Pos{Line: t.Line, Col: t.Start}
}

func (t Token) Width() int {
	return t.End - t.Start
}

func (t Token) String() string {
	return fmt.Sprintf("%d@%d:%d-%d", t.Value, t.Line, t.Start, t.End)
}
