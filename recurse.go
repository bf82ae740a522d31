package jsdiff

import (
	"github.com/treeline-dev/jsdiff/ast"
	"github.com/treeline-dev/jsdiff/debug"
	"github.com/treeline-dev/jsdiff/listdiff"
	"github.com/treeline-dev/jsdiff/loc"
)

// diffAndRecurse bridges the list differ and the tree differ for
// sequence children whose element kind is in the Node union: replaces
// are refined recursively, inserts and deletes become located
// changes.  An insert goes after the element at its index (before the
// first element for index -1); when the old sequence is empty no
// insertion point exists and the caller must fall back.
func diffAndRecurse[T ast.Node](
	d *differ,
	old, new []T,
	toNode func(T) Node,
	refine func(T, T) ([]LocatedChange, bool),
) ([]LocatedChange, bool) {
	edits, ok := listdiff.Diff(d.cfg.Algo, old, new, func(a, b T) bool {
		return d.same(a, b)
	})
	if !ok {
		return nil, false
	}
	if debug.List() && len(edits) > 0 {
		debug.Logf("jsdiff: %d list edits over %d/%d elements\n", len(edits), len(old), len(new))
	}
	var res []LocatedChange
	for _, e := range edits {
		switch e.Kind {
		case listdiff.Replace:
			cs, ok := refine(e.Old, e.New)
			if !ok {
				return nil, false
			}
			res = append(res, cs...)
		case listdiff.Insert:
			if len(old) == 0 {
				return nil, false
			}
			var sp loc.Span
			if e.Index == -1 {
				sp = old[0].Span().StartOf()
			} else {
				sp = old[e.Index].Span().EndOf()
			}
			items := make([]Node, len(e.Items))
			for i, it := range e.Items {
				items[i] = toNode(it)
			}
			res = append(res, insertAt(sp, items))
		case listdiff.Delete:
			res = append(res, deleteAt(e.Old.Span(), toNode(e.Old)))
		}
	}
	return res, true
}

// diffAndRecurseNoTrivial is the variant for sequences whose element
// kind is NOT in the Node union (declarators, class elements, object
// members, switch cases, export specifiers, pattern members): inserts
// and deletes cannot be represented, so only replace entries are
// usable and anything else bubbles up as cannot-refine.
func diffAndRecurseNoTrivial[T ast.Node](
	d *differ,
	old, new []T,
	refine func(T, T) ([]LocatedChange, bool),
) ([]LocatedChange, bool) {
	edits, ok := listdiff.Diff(d.cfg.Algo, old, new, func(a, b T) bool {
		return d.same(a, b)
	})
	if !ok {
		return nil, false
	}
	var res []LocatedChange
	for _, e := range edits {
		if e.Kind != listdiff.Replace {
			return nil, false
		}
		cs, ok := refine(e.Old, e.New)
		if !ok {
			return nil, false
		}
		res = append(res, cs...)
	}
	return res, true
}

// ptrSame applies the structural-field identity test to an optional
// pointer-typed child: both absent is same, one absent is different.
func ptrSame[P interface {
	ast.Node
	comparable
}](d *differ, a, b P) bool {
	var zero P
	if a == zero || b == zero {
		return a == b
	}
	return d.same(a, b)
}

// exprSame is ptrSame for interface-typed optional expressions.
func (d *differ) exprSame(a, b ast.Expr) bool {
	if a == nil || b == nil {
		return a == b
	}
	return d.same(a, b)
}

// exprListSame reports whether two expression sequences are
// element-wise same; used for structural list fields such as call
// arguments and decorators.
func (d *differ) exprListSame(a, b []ast.Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !d.exprSame(a[i], b[i]) {
			return false
		}
	}
	return true
}

func (d *differ) identListSame(a, b []*ast.Identifier) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !ptrSame(d, a[i], b[i]) {
			return false
		}
	}
	return true
}

func concat(lists ...[]LocatedChange) []LocatedChange {
	var res []LocatedChange
	for _, l := range lists {
		res = append(res, l...)
	}
	return res
}
