package jsdiff

import (
	"github.com/treeline-dev/jsdiff/ast"
	"github.com/treeline-dev/jsdiff/loc"
)

// function diffs the shared function shape.  Name, parameters, flags,
// predicate and type parameters are structural: changing any of them
// replaces the enclosing node.  The body and the return annotation
// are refined.
func (d *differ) function(a, b *ast.Function) ([]LocatedChange, bool) {
	if d.same(a, b) {
		return nil, true
	}
	if a.Async != b.Async || a.Generator != b.Generator {
		return nil, false
	}
	if !ptrSame(d, a.ID, b.ID) ||
		!ptrSame(d, a.Params, b.Params) ||
		!ptrSame(d, a.Predicate, b.Predicate) ||
		!ptrSame(d, a.TypeParams, b.TypeParams) {
		return nil, false
	}
	body, ok := d.functionBody(a.Body, b.Body)
	if !ok {
		return nil, false
	}
	ret, ok := d.returnAnnot(a.Return, b.Return)
	if !ok {
		return nil, false
	}
	return concat(ret, body), true
}

// functionBody handles both block bodies and expression-bodied
// arrows.  A change of body shape cannot be refined.
func (d *differ) functionBody(a, b ast.Node) ([]LocatedChange, bool) {
	if ab, ok := a.(*ast.BlockStmt); ok {
		bb, ok := b.(*ast.BlockStmt)
		if !ok {
			return nil, false
		}
		return d.block(ab, bb)
	}
	ae, aok := a.(ast.Expr)
	be, bok := b.(ast.Expr)
	if !aok || !bok {
		return nil, false
	}
	return d.expression(ae, be), true
}

// returnAnnot diffs a function return annotation slot.  This is the
// one asymmetric annotation site: the missing variant carries the
// span where an annotation would go, so an added annotation becomes
// an insert there rather than forcing a whole-function replace.
func (d *differ) returnAnnot(a, b ast.ReturnAnnot) ([]LocatedChange, bool) {
	switch {
	case a.Annot == nil && b.Annot == nil:
		return nil, true
	case a.Annot != nil && b.Annot != nil:
		if d.same(a.Annot, b.Annot) {
			return nil, true
		}
		return []LocatedChange{
			replaceAt(a.Annot.Span(), AnnotOf(a.Annot), AnnotOf(b.Annot)),
		}, true
	case b.Annot == nil:
		return []LocatedChange{deleteAt(a.Annot.Span(), AnnotOf(a.Annot))}, true
	default:
		if a.Loc == (loc.Span{}) {
			return nil, false
		}
		return []LocatedChange{insertAt(a.Loc, []Node{AnnotOf(b.Annot)})}, true
	}
}

// annotHint diffs an optional annotation on carriers without a
// missing-slot span: an added annotation has nowhere to anchor and
// cannot be refined.
func (d *differ) annotHint(a, b *ast.TypeAnnotation) ([]LocatedChange, bool) {
	switch {
	case a == nil && b == nil:
		return nil, true
	case a == nil:
		return nil, false
	case b == nil:
		return []LocatedChange{deleteAt(a.Span(), AnnotOf(a))}, true
	}
	if d.same(a, b) {
		return nil, true
	}
	return []LocatedChange{replaceAt(a.Span(), AnnotOf(a), AnnotOf(b))}, true
}
