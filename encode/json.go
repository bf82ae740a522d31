package encode

import (
	"encoding/json"
	"io"

	jsdiff "github.com/treeline-dev/jsdiff"
)

type jsonChange struct {
	Kind     string   `json:"kind"`
	Node     string   `json:"node,omitempty"`
	Start    int      `json:"start"`
	End      int      `json:"end"`
	Line     int      `json:"line"`
	Col      int      `json:"col"`
	Old      string   `json:"old,omitempty"`
	New      string   `json:"new,omitempty"`
	Inserted []string `json:"inserted,omitempty"`
}

// JSON writes changes as an indented JSON array.  Positions are byte
// offsets plus the 0-based line/column of the change start.
func JSON(w io.Writer, changes []jsdiff.LocatedChange) error {
	out := make([]jsonChange, 0, len(changes))
	for i := range changes {
		c := &changes[i]
		jc := jsonChange{
			Kind:  c.Kind.String(),
			Start: c.Span.Start,
			End:   c.Span.End,
		}
		if d := c.Span.Doc(); d != nil {
			jc.Line, jc.Col = d.LineCol(c.Span.Start)
		}
		switch c.Kind {
		case jsdiff.Replace:
			jc.Node = c.Old.Kind.String()
			jc.Old = c.Old.Span().Text()
			jc.New = c.New.Span().Text()
		case jsdiff.Delete:
			jc.Node = c.Old.Kind.String()
			jc.Old = c.Old.Span().Text()
		case jsdiff.Insert:
			for _, n := range c.Inserted {
				jc.Inserted = append(jc.Inserted, n.Span().Text())
			}
			if len(c.Inserted) > 0 {
				jc.Node = c.Inserted[0].Kind.String()
			}
		}
		out = append(out, jc)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
