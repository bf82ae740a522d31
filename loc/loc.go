// Package loc provides source documents and byte-offset spans for AST
// nodes, with line/column projection for renderers.
package loc

import (
	"fmt"
	"sort"
)

// Doc holds the bytes of one source document together with its newline
// table, so that offsets can be projected to line/column pairs.
type Doc struct {
	d []byte
	n []int
}

func NewDoc(d []byte) *Doc {
	doc := &Doc{d: d}
	for i, c := range d {
		if c == '\n' {
			doc.n = append(doc.n, i)
		}
	}
	return doc
}

func (d *Doc) Len() int {
	return len(d.d)
}

// Slice returns the document bytes in [start, end), clamped to the
// document bounds.
func (d *Doc) Slice(start, end int) []byte {
	start = max(0, start)
	end = min(end, len(d.d))
	if start >= end {
		return nil
	}
	return d.d[start:end]
}

// LineCol returns the 0-based line and column of a byte offset.
func (d *Doc) LineCol(off int) (int, int) {
	N := len(d.n)
	di := sort.Search(N, func(i int) bool {
		return d.n[i] >= off
	})
	switch di {
	case 0:
		return 0, off
	case N:
		if N != 0 {
			return di, off - d.n[di-1] - 1
		}
		return 0, off
	default:
		return di, off - d.n[di-1] - 1
	}
}

// Span returns the span [start, end) of this document.
func (d *Doc) Span(start, end int) Span {
	return Span{Start: start, End: end, doc: d}
}

// Span is a half-open byte range in a source document.  The zero Span
// is a valid "no location" value.
type Span struct {
	Start, End int
	doc        *Doc
}

// StartOf projects s to the zero-width span at its start.
func (s Span) StartOf() Span {
	s.End = s.Start
	return s
}

// EndOf projects s to the zero-width span at its end.
func (s Span) EndOf() Span {
	s.Start = s.End
	return s
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Doc() *Doc {
	return s.doc
}

// Text returns the document bytes covered by s, or "" when s carries
// no document.
func (s Span) Text() string {
	if s.doc == nil {
		return ""
	}
	return string(s.doc.Slice(s.Start, s.End))
}

func (s Span) String() string {
	if s.doc == nil {
		return fmt.Sprintf("[%d,%d)", s.Start, s.End)
	}
	sl, sc := s.doc.LineCol(s.Start)
	el, ec := s.doc.LineCol(s.End)
	return fmt.Sprintf("%d:%d-%d:%d", sl+1, sc+1, el+1, ec+1)
}
