package loc

import "testing"

func TestLineCol(t *testing.T) {
	d := NewDoc([]byte("ab\ncde\n\nf"))
	cases := []struct {
		off       int
		line, col int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{2, 0, 2},
		{3, 1, 0},
		{5, 1, 2},
		{7, 2, 0},
		{8, 3, 0},
	}
	for _, c := range cases {
		l, col := d.LineCol(c.off)
		if l != c.line || col != c.col {
			t.Errorf("LineCol(%d) = %d,%d, want %d,%d", c.off, l, col, c.line, c.col)
		}
	}
}

func TestSpanProjections(t *testing.T) {
	d := NewDoc([]byte("hello world"))
	s := d.Span(6, 11)
	if got := s.Text(); got != "world" {
		t.Errorf("Text() = %q", got)
	}
	if start := s.StartOf(); start.Start != 6 || start.End != 6 || !start.Empty() {
		t.Errorf("StartOf() = %+v", start)
	}
	if end := s.EndOf(); end.Start != 11 || end.End != 11 || !end.Empty() {
		t.Errorf("EndOf() = %+v", end)
	}
	if s.Doc() != d {
		t.Error("projection lost the document")
	}
}
