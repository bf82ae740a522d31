package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jsdiff "github.com/treeline-dev/jsdiff"
	"github.com/treeline-dev/jsdiff/ast"
)

func TestParseVarDecl(t *testing.T) {
	prog, err := Parse([]byte("var x = 1;"))
	require.NoError(t, err)
	require.Len(t, prog.Body, 1)

	vd, ok := prog.Body[0].(*ast.VarDecl)
	require.True(t, ok, "statement is %T", prog.Body[0])
	assert.Equal(t, ast.Var, vd.Kind)
	require.Len(t, vd.Decls, 1)

	ip, ok := vd.Decls[0].ID.(*ast.IdentPat)
	require.True(t, ok, "binding is %T", vd.Decls[0].ID)
	assert.Equal(t, "x", ip.Name.Name)
	assert.Equal(t, 4, ip.Name.Span().Start)
	assert.Equal(t, 5, ip.Name.Span().End)

	lit, ok := vd.Decls[0].Init.(*ast.Literal)
	require.True(t, ok, "init is %T", vd.Decls[0].Init)
	assert.Equal(t, "1", lit.Raw)
}

func TestParseStatements(t *testing.T) {
	src := `
if (c) { a(); } else { b(); }
while (x) y();
for (var i = 0; i < n; i++) f(i);
switch (v) { case 1: a(); break; default: b(); }
`
	prog, err := Parse([]byte(src))
	require.NoError(t, err)
	require.NotEmpty(t, prog.Body)

	ifStmt, ok := prog.Body[0].(*ast.IfStmt)
	require.True(t, ok, "statement is %T", prog.Body[0])
	assert.NotNil(t, ifStmt.Test)
	assert.NotNil(t, ifStmt.Alternate)

	_, ok = prog.Body[1].(*ast.WhileStmt)
	assert.True(t, ok, "statement is %T", prog.Body[1])

	forStmt, ok := prog.Body[2].(*ast.ForStmt)
	require.True(t, ok, "statement is %T", prog.Body[2])
	_, ok = forStmt.Init.(*ast.VarDecl)
	assert.True(t, ok, "for init is %T", forStmt.Init)
	assert.NotNil(t, forStmt.Test)
	assert.NotNil(t, forStmt.Update)

	sw, ok := prog.Body[3].(*ast.SwitchStmt)
	require.True(t, ok, "statement is %T", prog.Body[3])
	require.Len(t, sw.Cases, 2)
	assert.NotNil(t, sw.Cases[0].Test)
	assert.Nil(t, sw.Cases[1].Test)
}

func TestParseExpressions(t *testing.T) {
	src := `o.f(a + 1, x ? y : z);`
	prog, err := Parse([]byte(src))
	require.NoError(t, err)
	require.Len(t, prog.Body, 1)

	es, ok := prog.Body[0].(*ast.ExprStmt)
	require.True(t, ok)
	call, ok := es.Expr.(*ast.CallExpr)
	require.True(t, ok, "expression is %T", es.Expr)

	member, ok := call.Callee.(*ast.MemberExpr)
	require.True(t, ok, "callee is %T", call.Callee)
	prop, ok := member.Property.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "f", prop.Name)

	require.Len(t, call.Args, 2)
	_, ok = call.Args[0].(*ast.BinaryExpr)
	assert.True(t, ok, "arg 0 is %T", call.Args[0])
	_, ok = call.Args[1].(*ast.CondExpr)
	assert.True(t, ok, "arg 1 is %T", call.Args[1])
}

func TestParseArrowAndObject(t *testing.T) {
	prog, err := Parse([]byte("var f = (a, b) => ({x: a, b});"))
	require.NoError(t, err)
	require.Len(t, prog.Body, 1)

	vd := prog.Body[0].(*ast.VarDecl)
	arrow, ok := vd.Decls[0].Init.(*ast.ArrowExpr)
	require.True(t, ok, "init is %T", vd.Decls[0].Init)
	require.NotNil(t, arrow.Fn.Params)
	assert.Len(t, arrow.Fn.Params.Params, 2)

	obj, ok := arrow.Fn.Body.(*ast.ObjectExpr)
	require.True(t, ok, "body is %T", arrow.Fn.Body)
	require.Len(t, obj.Properties, 2)
	p0 := obj.Properties[0].(*ast.ObjectProperty)
	assert.False(t, p0.Shorthand)
	p1 := obj.Properties[1].(*ast.ObjectProperty)
	assert.True(t, p1.Shorthand)
}

func TestParseTypeScriptReturnAnnotation(t *testing.T) {
	prog, err := Parse([]byte("function f(): T {}"), ParseTypeScript())
	require.NoError(t, err)
	require.Len(t, prog.Body, 1)

	fd, ok := prog.Body[0].(*ast.FuncDecl)
	require.True(t, ok, "statement is %T", prog.Body[0])
	require.NotNil(t, fd.Fn.Return.Annot)
	rt, ok := fd.Fn.Return.Annot.Type.(*ast.RawType)
	require.True(t, ok)
	assert.Equal(t, "T", rt.Text)

	// the missing-annotation slot carries a zero-width insertion
	// point just after the parameter list
	plain, err := Parse([]byte("function f() {}"), ParseTypeScript())
	require.NoError(t, err)
	pf := plain.Body[0].(*ast.FuncDecl)
	assert.Nil(t, pf.Fn.Return.Annot)
	assert.Equal(t, 12, pf.Fn.Return.Loc.Start)
	assert.Equal(t, 12, pf.Fn.Return.Loc.End)
}

func TestHashesAgreeAcrossParses(t *testing.T) {
	src := []byte("var x = f(1) + 2;\nif (x) g();")
	h1 := map[ast.Node]uint64{}
	h2 := map[ast.Node]uint64{}
	p1, err := Parse(src, ParseHashes(h1))
	require.NoError(t, err)
	p2, err := Parse(src, ParseHashes(h2))
	require.NoError(t, err)

	assert.Equal(t, h1[p1], h2[p2], "root hashes differ for identical source")

	changed := map[ast.Node]uint64{}
	p3, err := Parse([]byte("var x = f(1) + 3;\nif (x) g();"), ParseHashes(changed))
	require.NoError(t, err)
	assert.NotEqual(t, h1[p1], changed[p3], "root hashes equal for different source")
}

// End-to-end: independently parsed sources diff via content hashes.
func TestDiffParsedSources(t *testing.T) {
	hashes := map[ast.Node]uint64{}
	old, err := Parse([]byte("var x = 1;"), ParseHashes(hashes))
	require.NoError(t, err)
	new, err := Parse([]byte("var y = 1;"), ParseHashes(hashes))
	require.NoError(t, err)

	changes := jsdiff.Diff(old, new, jsdiff.Hashes(hashes))
	require.Len(t, changes, 1)
	assert.Equal(t, jsdiff.Replace, changes[0].Kind)
	assert.Equal(t, jsdiff.IdentifierKind, changes[0].Old.Kind)
	assert.Equal(t, "x", changes[0].Old.Ident.Name)
	assert.Equal(t, "y", changes[0].New.Ident.Name)
	assert.Equal(t, 4, changes[0].Span.Start)
	assert.Equal(t, 5, changes[0].Span.End)
}

func TestDiffParsedInsertDelete(t *testing.T) {
	hashes := map[ast.Node]uint64{}
	old, err := Parse([]byte("a(); b(); c();"), ParseHashes(hashes))
	require.NoError(t, err)
	new, err := Parse([]byte("a(); c();"), ParseHashes(hashes))
	require.NoError(t, err)

	changes := jsdiff.Diff(old, new, jsdiff.Hashes(hashes))
	require.Len(t, changes, 1)
	assert.Equal(t, jsdiff.Delete, changes[0].Kind)
	assert.Equal(t, jsdiff.StatementKind, changes[0].Old.Kind)
	assert.Equal(t, 5, changes[0].Span.Start)
	assert.Equal(t, 9, changes[0].Span.End)
}
