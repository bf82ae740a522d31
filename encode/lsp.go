package encode

import (
	"strings"

	"go.lsp.dev/protocol"

	jsdiff "github.com/treeline-dev/jsdiff"
	"github.com/treeline-dev/jsdiff/loc"
)

// TextEdits converts an edit script to LSP text edits against the old
// document.  Replacement and insertion text is taken from the new
// nodes' own source; inserted nodes are joined with a space, matching
// how sequence elements abut in minified output.
func TextEdits(changes []jsdiff.LocatedChange) []protocol.TextEdit {
	res := make([]protocol.TextEdit, 0, len(changes))
	for i := range changes {
		c := &changes[i]
		edit := protocol.TextEdit{
			Range: spanRange(c.Span),
		}
		switch c.Kind {
		case jsdiff.Replace:
			edit.NewText = c.New.Span().Text()
		case jsdiff.Insert:
			texts := make([]string, 0, len(c.Inserted))
			for _, n := range c.Inserted {
				texts = append(texts, n.Span().Text())
			}
			edit.NewText = " " + strings.Join(texts, " ")
		case jsdiff.Delete:
			edit.NewText = ""
		}
		res = append(res, edit)
	}
	return res
}

func spanRange(s loc.Span) protocol.Range {
	return protocol.Range{
		Start: position(s, s.Start),
		End:   position(s, s.End),
	}
}

func position(s loc.Span, off int) protocol.Position {
	d := s.Doc()
	if d == nil {
		return protocol.Position{}
	}
	l, c := d.LineCol(off)
	return protocol.Position{Line: uint32(l), Character: uint32(c)}
}
