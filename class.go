package jsdiff

import (
	"github.com/treeline-dev/jsdiff/ast"
)

// class treats everything except the body as structural: id, type
// parameters, heritage, implements and decorators changes replace the
// enclosing node.
func (d *differ) class(a, b *ast.Class) ([]LocatedChange, bool) {
	if d.same(a, b) {
		return nil, true
	}
	if !ptrSame(d, a.ID, b.ID) ||
		!ptrSame(d, a.TypeParams, b.TypeParams) ||
		!d.exprSame(a.SuperClass, b.SuperClass) ||
		!ptrSame(d, a.SuperTypeArgs, b.SuperTypeArgs) ||
		!d.identListSame(a.Implements, b.Implements) ||
		!d.exprListSame(a.Decorators, b.Decorators) {
		return nil, false
	}
	return diffAndRecurseNoTrivial(d, a.Body.Elements, b.Body.Elements, d.classElement)
}

func (d *differ) classElement(a, b ast.ClassElement) ([]LocatedChange, bool) {
	switch a := a.(type) {
	case *ast.ClassMethod:
		b, ok := b.(*ast.ClassMethod)
		if !ok {
			return nil, false
		}
		return d.classMethod(a, b)
	case *ast.ClassProperty:
		b, ok := b.(*ast.ClassProperty)
		if !ok {
			return nil, false
		}
		return d.classProperty(a, b), true
	default:
		return nil, false
	}
}

func (d *differ) classMethod(a, b *ast.ClassMethod) ([]LocatedChange, bool) {
	if d.same(a, b) {
		return nil, true
	}
	if a.Kind != b.Kind || a.Static != b.Static {
		return nil, false
	}
	if !d.same(a.Key, b.Key) || !d.exprListSame(a.Decorators, b.Decorators) {
		return nil, false
	}
	return d.function(a.Value, b.Value)
}

// classProperty has its own fallback: a structural mismatch (key,
// static, variance, or an appearing/disappearing initializer)
// replaces just the property, not the whole class.
func (d *differ) classProperty(a, b *ast.ClassProperty) []LocatedChange {
	if d.same(a, b) {
		return nil
	}
	if cs, ok := d.classPropertyRefined(a, b); ok {
		return cs
	}
	return []LocatedChange{replaceAt(a.Span(), ClassPropOf(a), ClassPropOf(b))}
}

func (d *differ) classPropertyRefined(a, b *ast.ClassProperty) ([]LocatedChange, bool) {
	if a.Static != b.Static {
		return nil, false
	}
	if !d.same(a.Key, b.Key) || !ptrSame(d, a.Variance, b.Variance) {
		return nil, false
	}
	value, ok := d.optExpr(a.Value, b.Value)
	if !ok {
		return nil, false
	}
	annot, ok := d.annotHint(a.Annot, b.Annot)
	if !ok {
		return nil, false
	}
	return concat(annot, value), true
}
