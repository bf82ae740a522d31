package encode

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jsdiff "github.com/treeline-dev/jsdiff"
	"github.com/treeline-dev/jsdiff/ast"
	"github.com/treeline-dev/jsdiff/loc"
)

// renameChanges builds the script for renaming x to y in "var x = 1;".
func renameChanges() []jsdiff.LocatedChange {
	d := loc.NewDoc([]byte("var x = 1;"))
	one := &ast.Literal{Base: ast.Base{Loc: d.Span(8, 9)}, Kind: ast.NumberLiteral, Raw: "1"}
	mk := func(name string) *ast.Program {
		// each side's identifier points into its own source text
		src := loc.NewDoc([]byte("var " + name + " = 1;"))
		id := &ast.Identifier{Base: ast.Base{Loc: src.Span(4, 5)}, Name: name}
		pat := &ast.IdentPat{Base: ast.Base{Loc: src.Span(4, 5)}, Name: id}
		decl := &ast.VarDeclarator{Base: ast.Base{Loc: d.Span(4, 9)}, ID: pat, Init: one}
		vd := &ast.VarDecl{Base: ast.Base{Loc: d.Span(0, 10)}, Kind: ast.Var,
			Decls: []*ast.VarDeclarator{decl}}
		return &ast.Program{Base: ast.Base{Loc: d.Span(0, 10)}, Body: []ast.Stmt{vd}}
	}
	return jsdiff.Diff(mk("x"), mk("y"))
}

func TestTextPlain(t *testing.T) {
	changes := renameChanges()
	require.Len(t, changes, 1)

	var buf bytes.Buffer
	require.NoError(t, Text(&buf, changes, Colors(false)))
	out := buf.String()
	assert.Contains(t, out, "replace identifier")
	assert.Contains(t, out, "- x")
	assert.Contains(t, out, "+ y")
	assert.False(t, strings.Contains(out, "\x1b["), "plain output contains escapes")
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, renameChanges()))

	var out []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "replace", out[0]["kind"])
	assert.Equal(t, "identifier", out[0]["node"])
	assert.Equal(t, float64(4), out[0]["start"])
	assert.Equal(t, float64(5), out[0]["end"])
	assert.Equal(t, "x", out[0]["old"])
	assert.Equal(t, "y", out[0]["new"])
}

func TestTextEdits(t *testing.T) {
	edits := TextEdits(renameChanges())
	require.Len(t, edits, 1)
	assert.Equal(t, "y", edits[0].NewText)
	assert.Equal(t, uint32(0), edits[0].Range.Start.Line)
	assert.Equal(t, uint32(4), edits[0].Range.Start.Character)
	assert.Equal(t, uint32(5), edits[0].Range.End.Character)
}

func TestTextEditsInsertDelete(t *testing.T) {
	d := loc.NewDoc([]byte("a();\nb();"))
	mkCall := func(s, e int, name string) ast.Stmt {
		callee := &ast.Identifier{Base: ast.Base{Loc: d.Span(s, s+1)}, Name: name}
		call := &ast.CallExpr{Base: ast.Base{Loc: d.Span(s, e-1)}, Callee: callee}
		return &ast.ExprStmt{Base: ast.Base{Loc: d.Span(s, e)}, Expr: call}
	}
	a := mkCall(0, 4, "a")
	b := mkCall(5, 9, "b")
	prog := func(body ...ast.Stmt) *ast.Program {
		return &ast.Program{Base: ast.Base{Loc: d.Span(0, 9)}, Body: body}
	}

	edits := TextEdits(jsdiff.Diff(prog(a, b), prog(a)))
	require.Len(t, edits, 1)
	assert.Equal(t, "", edits[0].NewText)
	assert.Equal(t, uint32(1), edits[0].Range.Start.Line)
	assert.Equal(t, uint32(0), edits[0].Range.Start.Character)

	edits = TextEdits(jsdiff.Diff(prog(b), prog(a, b)))
	require.Len(t, edits, 1)
	assert.Contains(t, edits[0].NewText, "a();")
}
