package grid

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/schematic/token"
)

var example = []string{
	"467..114..",
	"...*......",
	"..35..633.",
	"......#...",
	"617*......",
	".....+.58.",
	"..592.....",
	"......755.",
	"...$.*....",
	".664.598..",
}

type sumTest struct {
	name  string
	lines []string
	want  uint64
}

func TestSum(t *testing.T) {
	var sts = []sumTest{
		{name: "example", lines: example, want: 4361},
		{name: "no symbols", lines: []string{"12.34"}, want: 0},
		{name: "shared symbol", lines: []string{"12*34"}, want: 46},
		{name: "empty", lines: nil, want: 0},
		{name: "no digits", lines: []string{"*#*", "..."}, want: 0},
		{name: "diagonal above left", lines: []string{"*...", ".12."}, want: 12},
		{name: "diagonal above right", lines: []string{"...*", ".12."}, want: 12},
		{name: "diagonal below left", lines: []string{".12.", "*..."}, want: 12},
		{name: "diagonal below right", lines: []string{".12.", "...*"}, want: 12},
		{name: "beyond diagonal", lines: []string{"*....", "..12."}, want: 0},
		{name: "letters are not symbols", lines: []string{"abc", "a5b", "xyz"}, want: 0},
		{name: "space is a symbol", lines: []string{"5 "}, want: 5},
		{name: "short neighbours", lines: []string{"", "..77", "."}, want: 0},
		{name: "short neighbour symbol", lines: []string{"..", "..77#"}, want: 77},
		{name: "ragged above", lines: []string{"..$", "....9"}, want: 0},
		{name: "leading zeros", lines: []string{"007+"}, want: 7},
	}
	for _, st := range sts {
		t.Run(st.name, func(t *testing.T) {
			got, err := Sum(st.lines)
			if err != nil {
				t.Fatal(err)
			}
			if got != st.want {
				t.Errorf("got %d want %d", got, st.want)
			}
		})
	}
}

func TestSumIdempotent(t *testing.T) {
	s := New()
	a, err := s.Sum(example)
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.Sum(example)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("%d != %d", a, b)
	}
}

func TestSumOverflow(t *testing.T) {
	lines := []string{"18446744073709551615*", "1*"}
	_, err := Sum(lines)
	if !errors.Is(err, ErrOverflow) {
		t.Errorf("got %v want ErrOverflow", err)
	}
	got, err := Sum(lines[:1])
	if err != nil {
		t.Fatal(err)
	}
	if got != 18446744073709551615 {
		t.Errorf("got %d", got)
	}
}

func TestAdjacentEdges(t *testing.T) {
	s := New()
	lines := []string{"12", "..", "34"}
	if s.Adjacent(lines, 0, 0, 2) {
		t.Error("first line token should not be adjacent")
	}
	if s.Adjacent(lines, 2, 0, 2) {
		t.Error("last line token should not be adjacent")
	}
	single := []string{"99"}
	if s.Adjacent(single, 0, 0, 2) {
		t.Error("lone token should not be adjacent")
	}
}

func TestAdjacentClamps(t *testing.T) {
	s := New()
	lines := []string{"#", "", "5"}
	// neighbour line shorter than the probed range
	if !s.Adjacent([]string{"#", "5"}, 1, 0, 1) {
		t.Error("expected symbol above")
	}
	if s.Adjacent(lines, 2, 0, 1) {
		t.Error("empty line above should not match")
	}
	wide := []string{strings.Repeat(".", 3), "123", "."}
	if s.Adjacent(wide, 1, 0, 3) {
		t.Error("no symbol expected")
	}
}

func TestAdjacentProbes(t *testing.T) {
	s := New()
	var tests = []struct {
		lines []string
		want  bool
	}{
		{lines: []string{"#12."}, want: true},
		{lines: []string{".12#"}, want: true},
		{lines: []string{"....", ".12.", "...."}, want: false},
		{lines: []string{"..#.", ".12.", "...."}, want: true},
		{lines: []string{"....", ".12.", "#..."}, want: true},
		{lines: []string{"a.Z.", "x12y", "...."}, want: false},
	}
	for _, tt := range tests {
		i := len(tt.lines) / 2
		if len(tt.lines) == 1 {
			i = 0
		}
		got := s.Adjacent(tt.lines, i, 1, 3)
		if got != tt.want {
			t.Errorf("%q: got %t want %t", tt.lines, got, tt.want)
		}
	}
}

func TestClass(t *testing.T) {
	c := DefaultClass()
	for _, b := range []byte("*#+$%&=@/- \t\xc3") {
		if !c.IsSymbol(b) {
			t.Errorf("%q should be a symbol", b)
		}
	}
	for _, b := range []byte("azAZ09.") {
		if c.IsSymbol(b) {
			t.Errorf("%q should not be a symbol", b)
		}
	}
	c = NewClass(". ")
	if c.IsSymbol(' ') {
		t.Error("space is blank")
	}
	if !c.HasSymbol("..*") || c.HasSymbol(". a1") {
		t.Error("HasSymbol")
	}
	// letters and digits stay non symbols even when listed as blank
	c = NewClass("a1")
	if !c.IsSymbol('.') || c.IsSymbol('a') {
		t.Error("blank letters")
	}
}

func TestSumWithClass(t *testing.T) {
	s := New(WithClass(NewClass(". ")))
	got, err := s.Sum([]string{"5 6", "..."})
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("got %d want 0", got)
	}
}

func TestParts(t *testing.T) {
	parts := slices.Collect(New().Parts(example))
	if len(parts) != 10 {
		t.Fatalf("got %d parts", len(parts))
	}
	var excluded []uint64
	for _, p := range parts {
		if !p.Adjacent {
			excluded = append(excluded, p.Value)
		}
	}
	if diff := cmp.Diff([]uint64{114, 58}, excluded); diff != "" {
		t.Errorf("excluded mismatch (-want +got):\n%s", diff)
	}
}

func TestGears(t *testing.T) {
	s := New()
	gears := slices.Collect(s.Gears(example))
	want := []Gear{
		{Line: 1, Col: 3, Parts: [2]token.Token{
			{Line: 0, Start: 0, End: 3, Value: 467},
			{Line: 2, Start: 2, End: 4, Value: 35},
		}},
		{Line: 8, Col: 5, Parts: [2]token.Token{
			{Line: 7, Start: 6, End: 9, Value: 755},
			{Line: 9, Start: 5, End: 8, Value: 598},
		}},
	}
	if diff := cmp.Diff(want, gears); diff != "" {
		t.Errorf("gears mismatch (-want +got):\n%s", diff)
	}
	total, err := s.GearRatioSum(example)
	if err != nil {
		t.Fatal(err)
	}
	if total != 467835 {
		t.Errorf("got %d want 467835", total)
	}
}

func TestGearsCustom(t *testing.T) {
	lines := []string{"2.3", ".@.", "4.."}
	if n := len(slices.Collect(New().Gears(lines))); n != 0 {
		t.Errorf("'@' is not a gear by default, got %d", n)
	}
	if n := len(slices.Collect(New(WithGear('@')).Gears(lines))); n != 0 {
		t.Errorf("three neighbours is not a gear, got %d", n)
	}
	total, err := New(WithGear('@')).GearRatioSum([]string{"2.3", ".@."})
	if err != nil {
		t.Fatal(err)
	}
	if total != 6 {
		t.Errorf("got %d want 6", total)
	}
}

func TestGearRatioOverflow(t *testing.T) {
	_, err := New().GearRatioSum([]string{"4294967296*4294967296"})
	if !errors.Is(err, ErrOverflow) {
		t.Errorf("got %v want ErrOverflow", err)
	}
}

func TestSumParallel(t *testing.T) {
	s := New()
	ctx := context.Background()
	for w := 0; w <= 12; w++ {
		got, err := s.SumParallel(ctx, example, w)
		if err != nil {
			t.Fatalf("workers=%d: %v", w, err)
		}
		if got != 4361 {
			t.Errorf("workers=%d: got %d want 4361", w, got)
		}
	}
}

func TestSumParallelOverflow(t *testing.T) {
	lines := []string{"18446744073709551615*", "*1"}
	for w := 1; w <= 2; w++ {
		_, err := New().SumParallel(context.Background(), lines, w)
		if !errors.Is(err, ErrOverflow) {
			t.Errorf("workers=%d: got %v want ErrOverflow", w, err)
		}
	}
}

func TestSumParallelCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, w := range []int{1, 4} {
		_, err := New().SumParallel(ctx, example, w)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("workers=%d: got %v want context.Canceled", w, err)
		}
	}
}
