package encode

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/signadot/schematic/format"
	"github.com/signadot/schematic/grid"

	"github.com/goccy/go-yaml"
)

// PartRecord is the serialized form of a grid.Part.
type PartRecord struct {
	Value    uint64 `json:"value" yaml:"value"`
	Line     int    `json:"line" yaml:"line"`
	Start    int    `json:"start" yaml:"start"`
	End      int    `json:"end" yaml:"end"`
	Adjacent bool   `json:"adjacent" yaml:"adjacent"`
}

func RecordOf(p grid.Part) PartRecord {
	return PartRecord{
		Value:    p.Value,
		Line:     p.Line,
		Start:    p.Start,
		End:      p.End,
		Adjacent: p.Adjacent,
	}
}

// EncodeParts writes parts in the configured format.  Unless EncodeAll is
// given, numbers which are not part numbers are skipped.
func EncodeParts(w io.Writer, parts []grid.Part, opts ...EncodeOption) error {
	es := newState(opts)
	recs := make([]PartRecord, 0, len(parts))
	for _, p := range parts {
		if !p.Adjacent && !es.all {
			continue
		}
		recs = append(recs, RecordOf(p))
	}
	switch es.format {
	case format.JSONFormat:
		d, err := json.MarshalIndent(recs, "", "  ")
		if err != nil {
			return err
		}
		d = append(d, '\n')
		_, err = w.Write(d)
		return err
	case format.YAMLFormat:
		d, err := yaml.Marshal(recs)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	case format.TextFormat:
		for _, r := range recs {
			if _, err := io.WriteString(w, PartLine(r, es.Color)+"\n"); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
	}
}

// PartLine is the text form of a part record: value, position and
// whether it is a part number.
func PartLine(r PartRecord, c func(ColorAttr, string) string) string {
	a, mark := NumberColor, "-"
	if r.Adjacent {
		a, mark = PartColor, "+"
	}
	if c == nil {
		c = colorNone
	}
	return fmt.Sprintf("%s %s %d:%d-%d", mark, c(a, fmt.Sprint(r.Value)), r.Line, r.Start, r.End)
}

// EncodeGears writes one line per gear.
func EncodeGears(w io.Writer, gears []grid.Gear, opts ...EncodeOption) error {
	es := newState(opts)
	for _, g := range gears {
		r, err := g.Ratio()
		if err != nil {
			return fmt.Errorf("gear at %d:%d: %w", g.Line, g.Col, err)
		}
		_, err = fmt.Fprintf(w, "%d:%d %d*%d=%s\n",
			g.Line, g.Col, g.Parts[0].Value, g.Parts[1].Value,
			es.Color(GearColor, fmt.Sprint(r)))
		if err != nil {
			return err
		}
	}
	return nil
}
