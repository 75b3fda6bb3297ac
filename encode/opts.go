package encode

import "github.com/signadot/schematic/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeAll includes numbers which are not part numbers in part reports.
func EncodeAll(v bool) EncodeOption {
	return func(es *EncState) { es.all = v }
}

type EncState struct {
	format format.Format
	all    bool
	Color  func(ColorAttr, string) string
}

func newState(opts []EncodeOption) *EncState {
	es := &EncState{Color: colorNone}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

func colorNone(_ ColorAttr, s string) string { return s }
