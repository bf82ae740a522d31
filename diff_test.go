package jsdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/treeline-dev/jsdiff/ast"
	"github.com/treeline-dev/jsdiff/listdiff"
	"github.com/treeline-dev/jsdiff/loc"
)

func span(d *loc.Doc, s, e int) loc.Span {
	return d.Span(s, e)
}

func ident(d *loc.Doc, s, e int, name string) *ast.Identifier {
	return &ast.Identifier{Base: ast.Base{Loc: span(d, s, e)}, Name: name}
}

func num(d *loc.Doc, s, e int, raw string) *ast.Literal {
	return &ast.Literal{Base: ast.Base{Loc: span(d, s, e)}, Kind: ast.NumberLiteral, Raw: raw}
}

// callStmt builds `name();` with spans inside d.
func callStmt(d *loc.Doc, s, e int, name string) ast.Stmt {
	callee := ident(d, s, s+len(name), name)
	call := &ast.CallExpr{Base: ast.Base{Loc: span(d, s, e-1)}, Callee: callee}
	return &ast.ExprStmt{Base: ast.Base{Loc: span(d, s, e)}, Expr: call}
}

func program(d *loc.Doc, body ...ast.Stmt) *ast.Program {
	return &ast.Program{Base: ast.Base{Loc: span(d, 0, d.Len())}, Body: body}
}

var spanCmp = cmp.Comparer(func(a, b loc.Span) bool {
	return a.Start == b.Start && a.End == b.End && a.Doc() == b.Doc()
})

func diffCmp(t *testing.T, want, got []LocatedChange) {
	t.Helper()
	opts := []cmp.Option{spanCmp, cmpopts.EquateEmpty()}
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Errorf("changes mismatch (-want +got):\n%s", d)
	}
}

func TestIdentity(t *testing.T) {
	d := loc.NewDoc([]byte("a(); b();"))
	p := program(d, callStmt(d, 0, 4, "a"), callStmt(d, 5, 9, "b"))
	for _, algo := range []listdiff.Algorithm{listdiff.Standard, listdiff.Trivial} {
		if got := Diff(p, p, Algorithm(algo)); len(got) != 0 {
			t.Errorf("%v: identical programs gave %d changes", algo, len(got))
		}
	}
}

// Renaming a declared variable touches only the identifier.
func TestIdentifierRename(t *testing.T) {
	d := loc.NewDoc([]byte("var x = 1;"))

	one := num(d, 8, 9, "1")
	oldID := ident(d, 4, 5, "x")
	newID := ident(d, 4, 5, "y")

	mk := func(id *ast.Identifier) *ast.Program {
		pat := &ast.IdentPat{Base: ast.Base{Loc: id.Loc}, Name: id}
		decl := &ast.VarDeclarator{Base: ast.Base{Loc: span(d, 4, 9)}, ID: pat, Init: one}
		vd := &ast.VarDecl{Base: ast.Base{Loc: span(d, 0, 10)}, Kind: ast.Var,
			Decls: []*ast.VarDeclarator{decl}}
		return program(d, vd)
	}

	got := Diff(mk(oldID), mk(newID))
	want := []LocatedChange{replaceAt(oldID.Loc, IdentifierOf(oldID), IdentifierOf(newID))}
	diffCmp(t, want, got)
}

// A statement inserted at the head of a program anchors before the
// first old statement.
func TestInsertStatementAtHead(t *testing.T) {
	d := loc.NewDoc([]byte("b();"))
	b := callStmt(d, 0, 4, "b")
	old := program(d, b)

	d2 := loc.NewDoc([]byte("a(); b();"))
	a := callStmt(d2, 0, 4, "a")
	new := program(d2, a, b)

	got := Diff(old, new)
	want := []LocatedChange{insertAt(b.Span().StartOf(), []Node{StatementOf(a)})}
	diffCmp(t, want, got)
}

func TestDeleteMiddleStatement(t *testing.T) {
	d := loc.NewDoc([]byte("a(); b(); c();"))
	a := callStmt(d, 0, 4, "a")
	b := callStmt(d, 5, 9, "b")
	c := callStmt(d, 10, 14, "c")

	got := Diff(program(d, a, b, c), program(d, a, c))
	want := []LocatedChange{deleteAt(b.Span(), StatementOf(b))}
	diffCmp(t, want, got)
}

// An arrow body literal change replaces just the literal expression.
func TestArrowBodyLiteralReplace(t *testing.T) {
	d := loc.NewDoc([]byte("() => 1"))
	params := &ast.ParamList{Base: ast.Base{Loc: span(d, 0, 2)}}
	oldLit := num(d, 6, 7, "1")
	newLit := num(d, 6, 7, "2")

	mk := func(body ast.Expr) *ast.Program {
		fn := &ast.Function{Base: ast.Base{Loc: span(d, 0, 7)}, Params: params, Body: body,
			Return: ast.ReturnAnnot{Loc: span(d, 2, 2)}}
		arrow := &ast.ArrowExpr{Base: ast.Base{Loc: span(d, 0, 7)}, Fn: fn}
		return program(d, &ast.ExprStmt{Base: ast.Base{Loc: span(d, 0, 7)}, Expr: arrow})
	}

	got := Diff(mk(oldLit), mk(newLit))
	want := []LocatedChange{replaceAt(oldLit.Loc, ExpressionOf(oldLit), ExpressionOf(newLit))}
	diffCmp(t, want, got)
}

// Adding a return annotation inserts at the span carried by the old
// missing-annotation slot.
func TestReturnAnnotationInsert(t *testing.T) {
	d := loc.NewDoc([]byte("function f() {}"))
	f := ident(d, 9, 10, "f")
	params := &ast.ParamList{Base: ast.Base{Loc: span(d, 10, 12)}}
	missing := span(d, 12, 12)

	annot := &ast.TypeAnnotation{Base: ast.Base{Loc: span(d, 12, 15)},
		Type: &ast.RawType{Base: ast.Base{Loc: span(d, 14, 15)}, Text: "T"}}

	mk := func(ret ast.ReturnAnnot, body *ast.BlockStmt) *ast.Program {
		fn := &ast.Function{Base: ast.Base{Loc: span(d, 0, 15)}, ID: f, Params: params,
			Body: body, Return: ret}
		return program(d, &ast.FuncDecl{Base: ast.Base{Loc: span(d, 0, 15)}, Fn: fn})
	}

	oldBody := &ast.BlockStmt{Base: ast.Base{Loc: span(d, 13, 15)}}
	newBody := &ast.BlockStmt{Base: ast.Base{Loc: span(d, 13, 15)}}
	old := mk(ast.ReturnAnnot{Loc: missing}, oldBody)
	new := mk(ast.ReturnAnnot{Loc: missing, Annot: annot}, newBody)

	got := Diff(old, new)
	want := []LocatedChange{insertAt(missing, []Node{AnnotOf(annot)})}
	diffCmp(t, want, got)

	// and the deletion direction anchors at the old annotation
	got = Diff(new, old)
	want = []LocatedChange{deleteAt(annot.Span(), AnnotOf(annot))}
	diffCmp(t, want, got)
}

// Growing an alternate onto an if cannot be refined and replaces the
// whole statement.
func TestIfAlternateAddedReplacesWholeIf(t *testing.T) {
	d := loc.NewDoc([]byte("if (c) a();"))
	c := ident(d, 4, 5, "c")
	a := callStmt(d, 7, 11, "a")

	oldIf := &ast.IfStmt{Base: ast.Base{Loc: span(d, 0, 11)}, Test: c, Consequent: a}

	d2 := loc.NewDoc([]byte("if (c) a(); else b();"))
	b := callStmt(d2, 17, 21, "b")
	newIf := &ast.IfStmt{Base: ast.Base{Loc: d2.Span(0, 21)}, Test: c, Consequent: a, Alternate: b}

	got := Diff(program(d, oldIf), program(d2, newIf))
	want := []LocatedChange{replaceAt(oldIf.Span(), StatementOf(oldIf), StatementOf(newIf))}
	diffCmp(t, want, got)
}

// A changed statement kind replaces at the old statement.
func TestStatementKindChange(t *testing.T) {
	d := loc.NewDoc([]byte("a();"))
	a := callStmt(d, 0, 4, "a")
	d2 := loc.NewDoc([]byte("return;"))
	ret := &ast.ReturnStmt{Base: ast.Base{Loc: d2.Span(0, 7)}}

	got := Diff(program(d, a), program(d2, ret))
	want := []LocatedChange{replaceAt(a.Span(), StatementOf(a), StatementOf(ret))}
	diffCmp(t, want, got)
}

// Inserting into an empty program cannot anchor anywhere and falls
// back to replacing the program.
func TestEmptyProgramInsertFallsBack(t *testing.T) {
	d := loc.NewDoc([]byte(""))
	old := program(d)
	d2 := loc.NewDoc([]byte("a();"))
	new := program(d2, callStmt(d2, 0, 4, "a"))

	got := Diff(old, new)
	want := []LocatedChange{replaceAt(old.Span(), ProgramOf(old), ProgramOf(new))}
	diffCmp(t, want, got)
}

// Changes across several statements come back in source order.
func TestOrderingAcrossStatements(t *testing.T) {
	d := loc.NewDoc([]byte("a(); b(); c();"))
	a := callStmt(d, 0, 4, "a")
	b := callStmt(d, 5, 9, "b")
	c := callStmt(d, 10, 14, "c")

	d2 := loc.NewDoc([]byte("x(); b(); y(); z();"))
	x := callStmt(d2, 0, 4, "x")
	y := callStmt(d2, 10, 14, "y")
	z := callStmt(d2, 15, 19, "z")

	got := Diff(program(d, a, b, c), program(d2, x, b, y, z))
	for i := 1; i < len(got); i++ {
		if got[i].Span.Start < got[i-1].Span.Start {
			t.Fatalf("changes out of source order: %v", got)
		}
	}
	// a and c are replaced (fused), z is appended after c
	if len(got) != 3 {
		t.Fatalf("got %d changes, want 3: %v", len(got), got)
	}
	if got[0].Kind != Replace || got[1].Kind != Replace || got[2].Kind != Insert {
		t.Fatalf("unexpected change kinds: %v", got)
	}
	diffCmp(t, []LocatedChange{insertAt(c.Span().EndOf(), []Node{StatementOf(z)})},
		[]LocatedChange{got[2]})
}
