package jsdiff

import (
	"github.com/treeline-dev/jsdiff/ast"
)

// pattern diffs two binding/assignment patterns.  The wrapper itself
// is total: kind mismatches and the asymmetric cases below (literal
// keys, an elision facing a present element) surface here as a
// whole-pattern replace.
func (d *differ) pattern(a, b ast.Pat) []LocatedChange {
	if d.same(a, b) {
		return nil
	}
	if cs, ok := d.patternRefined(a, b); ok {
		return cs
	}
	return []LocatedChange{replaceAt(a.Span(), PatternOf(a), PatternOf(b))}
}

func (d *differ) patternRefined(a, b ast.Pat) ([]LocatedChange, bool) {
	switch a := a.(type) {
	case *ast.IdentPat:
		b, ok := b.(*ast.IdentPat)
		if !ok {
			return nil, false
		}
		return d.identPat(a, b)
	case *ast.ObjectPat:
		b, ok := b.(*ast.ObjectPat)
		if !ok {
			return nil, false
		}
		members, ok := diffAndRecurseNoTrivial(d, a.Properties, b.Properties, d.objectPatMember)
		if !ok {
			return nil, false
		}
		annot, ok := d.annotHint(a.Annot, b.Annot)
		if !ok {
			return nil, false
		}
		return concat(members, annot), true
	case *ast.ArrayPat:
		b, ok := b.(*ast.ArrayPat)
		if !ok {
			return nil, false
		}
		elements, ok := diffAndRecurseNoTrivial(d, a.Elements, b.Elements, d.arrayPatElement)
		if !ok {
			return nil, false
		}
		annot, ok := d.annotHint(a.Annot, b.Annot)
		if !ok {
			return nil, false
		}
		return concat(elements, annot), true
	case *ast.AssignPat:
		b, ok := b.(*ast.AssignPat)
		if !ok {
			return nil, false
		}
		return concat(d.pattern(a.Left, b.Left), d.expression(a.Right, b.Right)), true
	case *ast.ExprPat:
		b, ok := b.(*ast.ExprPat)
		if !ok {
			return nil, false
		}
		return d.expression(a.Expr, b.Expr), true
	case *ast.RestElement:
		b, ok := b.(*ast.RestElement)
		if !ok {
			return nil, false
		}
		return d.pattern(a.Argument, b.Argument), true
	default:
		return nil, false
	}
}

func (d *differ) identPat(a, b *ast.IdentPat) ([]LocatedChange, bool) {
	if a.Optional != b.Optional {
		return nil, false
	}
	annot, ok := d.annotHint(a.Annot, b.Annot)
	if !ok {
		return nil, false
	}
	var name []LocatedChange
	if !d.same(a.Name, b.Name) {
		name = d.identifier(a.Name, b.Name)
	}
	return concat(name, annot), true
}

func (d *differ) objectPatMember(a, b ast.ObjectPatMember) ([]LocatedChange, bool) {
	switch a := a.(type) {
	case *ast.ObjectPatProperty:
		b, ok := b.(*ast.ObjectPatProperty)
		if !ok {
			return nil, false
		}
		return d.objectPatProperty(a, b)
	case *ast.RestElement:
		b, ok := b.(*ast.RestElement)
		if !ok {
			return nil, false
		}
		return d.pattern(a.Argument, b.Argument), true
	default:
		return nil, false
	}
}

// objectPatProperty: literal and computed keys are asymmetric cases
// and bubble up, unlike object literal properties which have a local
// property replace.
func (d *differ) objectPatProperty(a, b *ast.ObjectPatProperty) ([]LocatedChange, bool) {
	if d.same(a, b) {
		return nil, true
	}
	if a.Shorthand != b.Shorthand {
		return nil, false
	}
	keyCs, supported := d.objectKey(a.Key, b.Key)
	if !supported {
		return nil, false
	}
	def, ok := d.optExpr(a.Default, b.Default)
	if !ok {
		return nil, false
	}
	if a.Shorthand {
		// key and pattern share a source range; one edit covers both
		return concat(d.pattern(a.Pattern, b.Pattern), def), true
	}
	return concat(keyCs, d.pattern(a.Pattern, b.Pattern), def), true
}

// arrayPatElement tolerates matching elisions; an elision facing a
// present element cannot be refined.
func (d *differ) arrayPatElement(a, b ast.Pat) ([]LocatedChange, bool) {
	switch {
	case a == nil && b == nil:
		return nil, true
	case a == nil || b == nil:
		return nil, false
	}
	return d.pattern(a, b), true
}
