package token

import (
	"errors"
	"iter"
	"strconv"
)

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// Scan yields the digit runs of s from left to right.  line is recorded
// in each token and is not otherwise interpreted.
//
// The sequence may be ranged over any number of times; each pass rescans s.
// Scan panics with a *Error if a run cannot be represented as a uint64.
func Scan(line int, s string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		i, n := 0, len(s)
		for i < n {
			if !isDigit(s[i]) {
				i++
				continue
			}
			start := i
			for i < n && isDigit(s[i]) {
				i++
			}
			if !yield(Token{
				Line:  line,
				Start: start,
				End:   i,
				Value: parseRun(line, start, s[start:i]),
			}) {
				return
			}
		}
	}
}

// Tokens yields the tokens of every line, top to bottom.
func Tokens(lines []string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for i, ln := range lines {
			for tok := range Scan(i, ln) {
				if !yield(tok) {
					return
				}
			}
		}
	}
}

func parseRun(line, col int, run string) uint64 {
	v, err := strconv.ParseUint(run, 10, 64)
	if err == nil {
		return v
	}
	if errors.Is(err, strconv.ErrRange) {
		panic(runErr(ErrOverflow, line, col, run))
	}
	panic(runErr(ErrMalformedRun, line, col, run))
}
