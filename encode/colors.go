package encode

import (
	"strings"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	BlankColor ColorAttr = iota
	PartColor
	NumberColor
	SymbolColor
	GearColor
	LetterColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[ColorAttr]func(string, ...any) string{},
	}
	colors.Map[BlankColor] = color.RGB(96, 96, 96).SprintfFunc()
	colors.Map[PartColor] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[NumberColor] = color.RGB(196, 128, 128).SprintfFunc()
	colors.Map[SymbolColor] = color.RGB(255, 0, 196).SprintfFunc()
	colors.Map[GearColor] = color.RGB(198, 198, 46).SprintfFunc()
	colors.Map[LetterColor] = color.CyanString
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(a ColorAttr, s string) string {
	return c.Get(a)(s)
}

func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	f := c.Map[a]
	if f == nil {
		return c.Default
	}
	return f
}
