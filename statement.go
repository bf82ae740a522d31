package jsdiff

import (
	"github.com/treeline-dev/jsdiff/ast"
)

// statement diffs two statements.  It always succeeds: when the pair
// cannot be refined (different kinds, unsupported kind, or a
// structural change below) the old statement is replaced wholesale.
func (d *differ) statement(a, b ast.Stmt) []LocatedChange {
	if d.same(a, b) {
		return nil
	}
	if cs, ok := d.statementRefined(a, b); ok {
		return cs
	}
	return []LocatedChange{replaceAt(a.Span(), StatementOf(a), StatementOf(b))}
}

func (d *differ) statementRefined(a, b ast.Stmt) ([]LocatedChange, bool) {
	switch a := a.(type) {
	case *ast.ExprStmt:
		b, ok := b.(*ast.ExprStmt)
		if !ok {
			return nil, false
		}
		return d.expression(a.Expr, b.Expr), true
	case *ast.BlockStmt:
		b, ok := b.(*ast.BlockStmt)
		if !ok {
			return nil, false
		}
		return d.block(a, b)
	case *ast.VarDecl:
		b, ok := b.(*ast.VarDecl)
		if !ok {
			return nil, false
		}
		return d.varDecl(a, b)
	case *ast.FuncDecl:
		b, ok := b.(*ast.FuncDecl)
		if !ok {
			return nil, false
		}
		return d.function(a.Fn, b.Fn)
	case *ast.ClassDecl:
		b, ok := b.(*ast.ClassDecl)
		if !ok {
			return nil, false
		}
		return d.class(a.Class, b.Class)
	case *ast.IfStmt:
		b, ok := b.(*ast.IfStmt)
		if !ok {
			return nil, false
		}
		return d.ifStmt(a, b)
	case *ast.WhileStmt:
		b, ok := b.(*ast.WhileStmt)
		if !ok {
			return nil, false
		}
		return concat(d.expression(a.Test, b.Test), d.statement(a.Body, b.Body)), true
	case *ast.DoWhileStmt:
		b, ok := b.(*ast.DoWhileStmt)
		if !ok {
			return nil, false
		}
		return concat(d.statement(a.Body, b.Body), d.expression(a.Test, b.Test)), true
	case *ast.ForStmt:
		b, ok := b.(*ast.ForStmt)
		if !ok {
			return nil, false
		}
		return d.forStmt(a, b)
	case *ast.ForInStmt:
		b, ok := b.(*ast.ForInStmt)
		if !ok {
			return nil, false
		}
		return d.forInStmt(a, b)
	case *ast.ForOfStmt:
		b, ok := b.(*ast.ForOfStmt)
		if !ok {
			return nil, false
		}
		return d.forOfStmt(a, b)
	case *ast.SwitchStmt:
		b, ok := b.(*ast.SwitchStmt)
		if !ok {
			return nil, false
		}
		return d.switchStmt(a, b)
	case *ast.ReturnStmt:
		b, ok := b.(*ast.ReturnStmt)
		if !ok {
			return nil, false
		}
		return d.optExpr(a.Argument, b.Argument)
	case *ast.WithStmt:
		b, ok := b.(*ast.WithStmt)
		if !ok {
			return nil, false
		}
		return concat(d.expression(a.Object, b.Object), d.statement(a.Body, b.Body)), true
	case *ast.ExportNamedDecl:
		b, ok := b.(*ast.ExportNamedDecl)
		if !ok {
			return nil, false
		}
		return d.exportNamed(a, b)
	default:
		return nil, false
	}
}

func (d *differ) block(a, b *ast.BlockStmt) ([]LocatedChange, bool) {
	return d.statements(a.Body, b.Body)
}

func (d *differ) varDecl(a, b *ast.VarDecl) ([]LocatedChange, bool) {
	if a.Kind != b.Kind {
		return nil, false
	}
	return diffAndRecurseNoTrivial(d, a.Decls, b.Decls, d.declarator)
}

func (d *differ) declarator(a, b *ast.VarDeclarator) ([]LocatedChange, bool) {
	if d.same(a, b) {
		return nil, true
	}
	init, ok := d.optExpr(a.Init, b.Init)
	if !ok {
		return nil, false
	}
	return concat(d.pattern(a.ID, b.ID), init), true
}

// optExpr handles optional expression children: both absent is no
// change, one absent cannot be refined.
func (d *differ) optExpr(a, b ast.Expr) ([]LocatedChange, bool) {
	switch {
	case a == nil && b == nil:
		return nil, true
	case a == nil || b == nil:
		return nil, false
	}
	return d.expression(a, b), true
}

// optStatement is optExpr for optional statement children.
func (d *differ) optStatement(a, b ast.Stmt) ([]LocatedChange, bool) {
	switch {
	case a == nil && b == nil:
		return nil, true
	case a == nil || b == nil:
		return nil, false
	}
	return d.statement(a, b), true
}

func (d *differ) ifStmt(a, b *ast.IfStmt) ([]LocatedChange, bool) {
	alt, ok := d.optStatement(a.Alternate, b.Alternate)
	if !ok {
		return nil, false
	}
	return concat(
		d.expression(a.Test, b.Test),
		d.statement(a.Consequent, b.Consequent),
		alt,
	), true
}

func (d *differ) forStmt(a, b *ast.ForStmt) ([]LocatedChange, bool) {
	init, ok := d.forInit(a.Init, b.Init)
	if !ok {
		return nil, false
	}
	test, ok := d.optExpr(a.Test, b.Test)
	if !ok {
		return nil, false
	}
	update, ok := d.optExpr(a.Update, b.Update)
	if !ok {
		return nil, false
	}
	return concat(init, test, update, d.statement(a.Body, b.Body)), true
}

// forInit diffs the init slot of a for statement: a declaration, an
// expression, or absent.  Mixed shapes cannot be refined.
func (d *differ) forInit(a, b ast.Node) ([]LocatedChange, bool) {
	switch {
	case a == nil && b == nil:
		return nil, true
	case a == nil || b == nil:
		return nil, false
	}
	if av, ok := a.(*ast.VarDecl); ok {
		bv, ok := b.(*ast.VarDecl)
		if !ok {
			return nil, false
		}
		return d.varDecl(av, bv)
	}
	ae, aok := a.(ast.Expr)
	be, bok := b.(ast.Expr)
	if !aok || !bok {
		return nil, false
	}
	return d.expression(ae, be), true
}

// forLeft diffs the left slot of for-in/for-of: a declaration or a
// pattern.
func (d *differ) forLeft(a, b ast.Node) ([]LocatedChange, bool) {
	if av, ok := a.(*ast.VarDecl); ok {
		bv, ok := b.(*ast.VarDecl)
		if !ok {
			return nil, false
		}
		return d.varDecl(av, bv)
	}
	ap, aok := a.(ast.Pat)
	bp, bok := b.(ast.Pat)
	if !aok || !bok {
		return nil, false
	}
	return d.pattern(ap, bp), true
}

func (d *differ) forInStmt(a, b *ast.ForInStmt) ([]LocatedChange, bool) {
	if a.Each != b.Each {
		return nil, false
	}
	left, ok := d.forLeft(a.Left, b.Left)
	if !ok {
		return nil, false
	}
	return concat(left, d.expression(a.Right, b.Right), d.statement(a.Body, b.Body)), true
}

func (d *differ) forOfStmt(a, b *ast.ForOfStmt) ([]LocatedChange, bool) {
	if a.Await != b.Await {
		return nil, false
	}
	left, ok := d.forLeft(a.Left, b.Left)
	if !ok {
		return nil, false
	}
	return concat(left, d.expression(a.Right, b.Right), d.statement(a.Body, b.Body)), true
}

func (d *differ) switchStmt(a, b *ast.SwitchStmt) ([]LocatedChange, bool) {
	cases, ok := diffAndRecurseNoTrivial(d, a.Cases, b.Cases, d.switchCase)
	if !ok {
		return nil, false
	}
	return concat(d.expression(a.Discriminant, b.Discriminant), cases), true
}

func (d *differ) switchCase(a, b *ast.SwitchCase) ([]LocatedChange, bool) {
	test, ok := d.optExpr(a.Test, b.Test)
	if !ok {
		return nil, false
	}
	body, ok := d.statements(a.Consequent, b.Consequent)
	if !ok {
		return nil, false
	}
	return concat(test, body), true
}

func (d *differ) exportNamed(a, b *ast.ExportNamedDecl) ([]LocatedChange, bool) {
	if a.ExportKind != b.ExportKind {
		return nil, false
	}
	if !ptrSame(d, a.Source, b.Source) {
		return nil, false
	}
	decl, ok := d.optStatement(a.Declaration, b.Declaration)
	if !ok {
		return nil, false
	}
	specs, ok := diffAndRecurseNoTrivial(d, a.Specifiers, b.Specifiers, d.exportSpecifier)
	if !ok {
		return nil, false
	}
	return concat(decl, specs), true
}

func (d *differ) exportSpecifier(a, b *ast.ExportSpecifier) ([]LocatedChange, bool) {
	var res []LocatedChange
	if !ptrSame(d, a.Local, b.Local) {
		if a.Local == nil || b.Local == nil {
			return nil, false
		}
		res = append(res, d.identifier(a.Local, b.Local)...)
	}
	if !ptrSame(d, a.Exported, b.Exported) {
		if a.Exported == nil || b.Exported == nil {
			return nil, false
		}
		res = append(res, d.identifier(a.Exported, b.Exported)...)
	}
	return res, true
}
