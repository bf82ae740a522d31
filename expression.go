package jsdiff

import (
	"github.com/treeline-dev/jsdiff/ast"
)

// expression diffs two expressions.  Like statement it always
// succeeds, falling back to a whole-expression replace.  Literals are
// deliberately not recursed: a changed literal is a replace.
func (d *differ) expression(a, b ast.Expr) []LocatedChange {
	if d.same(a, b) {
		return nil
	}
	if cs, ok := d.expressionRefined(a, b); ok {
		return cs
	}
	return []LocatedChange{replaceAt(a.Span(), ExpressionOf(a), ExpressionOf(b))}
}

func (d *differ) expressionRefined(a, b ast.Expr) ([]LocatedChange, bool) {
	switch a := a.(type) {
	case *ast.Identifier:
		b, ok := b.(*ast.Identifier)
		if !ok {
			return nil, false
		}
		return d.identifier(a, b), true
	case *ast.BinaryExpr:
		b, ok := b.(*ast.BinaryExpr)
		if !ok || a.Op != b.Op {
			return nil, false
		}
		return concat(d.expression(a.Left, b.Left), d.expression(a.Right, b.Right)), true
	case *ast.LogicalExpr:
		b, ok := b.(*ast.LogicalExpr)
		if !ok || a.Op != b.Op {
			return nil, false
		}
		return concat(d.expression(a.Left, b.Left), d.expression(a.Right, b.Right)), true
	case *ast.UnaryExpr:
		b, ok := b.(*ast.UnaryExpr)
		if !ok || a.Op != b.Op || a.Prefix != b.Prefix {
			return nil, false
		}
		return d.expression(a.Argument, b.Argument), true
	case *ast.UpdateExpr:
		b, ok := b.(*ast.UpdateExpr)
		if !ok || a.Op != b.Op || a.Prefix != b.Prefix {
			return nil, false
		}
		return d.expression(a.Argument, b.Argument), true
	case *ast.AssignExpr:
		b, ok := b.(*ast.AssignExpr)
		if !ok || a.Op != b.Op {
			return nil, false
		}
		return concat(d.pattern(a.Left, b.Left), d.expression(a.Right, b.Right)), true
	case *ast.CondExpr:
		b, ok := b.(*ast.CondExpr)
		if !ok {
			return nil, false
		}
		return concat(
			d.expression(a.Test, b.Test),
			d.expression(a.Consequent, b.Consequent),
			d.expression(a.Alternate, b.Alternate),
		), true
	case *ast.SeqExpr:
		b, ok := b.(*ast.SeqExpr)
		if !ok {
			return nil, false
		}
		return diffAndRecurse(d, a.Exprs, b.Exprs, ExpressionOf,
			func(x, y ast.Expr) ([]LocatedChange, bool) {
				return d.expression(x, y), true
			})
	case *ast.CallExpr:
		b, ok := b.(*ast.CallExpr)
		if !ok {
			return nil, false
		}
		// TODO recurse into targs and arguments
		if !ptrSame(d, a.TypeArgs, b.TypeArgs) || !d.exprListSame(a.Args, b.Args) {
			return nil, false
		}
		return d.expression(a.Callee, b.Callee), true
	case *ast.NewExpr:
		b, ok := b.(*ast.NewExpr)
		if !ok {
			return nil, false
		}
		// TODO recurse into targs and arguments
		if !ptrSame(d, a.TypeArgs, b.TypeArgs) || !d.exprListSame(a.Args, b.Args) {
			return nil, false
		}
		return d.expression(a.Callee, b.Callee), true
	case *ast.MemberExpr:
		b, ok := b.(*ast.MemberExpr)
		if !ok {
			return nil, false
		}
		return d.memberExpr(a, b)
	case *ast.ObjectExpr:
		b, ok := b.(*ast.ObjectExpr)
		if !ok {
			return nil, false
		}
		return diffAndRecurseNoTrivial(d, a.Properties, b.Properties, d.objectMember)
	case *ast.FuncExpr:
		b, ok := b.(*ast.FuncExpr)
		if !ok {
			return nil, false
		}
		return d.function(a.Fn, b.Fn)
	case *ast.ArrowExpr:
		b, ok := b.(*ast.ArrowExpr)
		if !ok {
			return nil, false
		}
		return d.function(a.Fn, b.Fn)
	default:
		// literals, arrays, this, raw leaves: replace wholesale
		return nil, false
	}
}

// identifier is a leaf: a differing pair is always a single replace
// at the old identifier.  Callers guard with the sameness shortcut.
func (d *differ) identifier(a, b *ast.Identifier) []LocatedChange {
	return []LocatedChange{replaceAt(a.Span(), IdentifierOf(a), IdentifierOf(b))}
}

func (d *differ) memberExpr(a, b *ast.MemberExpr) ([]LocatedChange, bool) {
	prop, ok := d.memberProp(a.Property, b.Property)
	if !ok {
		return nil, false
	}
	return concat(d.expression(a.Object, b.Object), prop), true
}

func (d *differ) memberProp(a, b ast.MemberProp) ([]LocatedChange, bool) {
	if d.same(a, b) {
		return nil, true
	}
	switch a := a.(type) {
	case *ast.Identifier:
		b, ok := b.(*ast.Identifier)
		if !ok {
			return nil, false
		}
		return d.identifier(a, b), true
	case *ast.ComputedProp:
		b, ok := b.(*ast.ComputedProp)
		if !ok {
			return nil, false
		}
		return d.expression(a.Expr, b.Expr), true
	default:
		// private names change as a whole member expression
		return nil, false
	}
}

func (d *differ) objectMember(a, b ast.ObjectMember) ([]LocatedChange, bool) {
	switch a := a.(type) {
	case *ast.ObjectProperty:
		b, ok := b.(*ast.ObjectProperty)
		if !ok {
			return nil, false
		}
		return d.objectProperty(a, b)
	case *ast.SpreadProperty:
		b, ok := b.(*ast.SpreadProperty)
		if !ok {
			return nil, false
		}
		return d.expression(a.Argument, b.Argument), true
	default:
		return nil, false
	}
}

// objectProperty requires matching kind and shorthand-ness.  Literal
// and computed keys are not recursed; a change under one replaces the
// whole property, which the Node union can represent.
func (d *differ) objectProperty(a, b *ast.ObjectProperty) ([]LocatedChange, bool) {
	if d.same(a, b) {
		return nil, true
	}
	if a.Kind != b.Kind || a.Shorthand != b.Shorthand || a.Method != b.Method {
		return nil, false
	}
	keyCs, supported := d.objectKey(a.Key, b.Key)
	if !supported {
		return []LocatedChange{replaceAt(a.Span(), ObjectPropOf(a), ObjectPropOf(b))}, true
	}
	if a.Value == nil || b.Value == nil {
		if a.Value == nil && b.Value == nil {
			return keyCs, true
		}
		return nil, false
	}
	if a.Shorthand {
		// key and value share a source range; one edit covers both
		return d.expression(a.Value, b.Value), true
	}
	return concat(keyCs, d.expression(a.Value, b.Value)), true
}

// objectKey refines identifier keys; other key variants report
// unsupported so the caller can replace the enclosing property.
func (d *differ) objectKey(a, b ast.PropertyKey) ([]LocatedChange, bool) {
	if d.same(a, b) {
		return nil, true
	}
	ai, aok := a.(*ast.Identifier)
	bi, bok := b.(*ast.Identifier)
	if !aok || !bok {
		return nil, false
	}
	return d.identifier(ai, bi), true
}
