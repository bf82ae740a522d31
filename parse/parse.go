// Package parse builds jsdiff syntax trees from JavaScript source
// using tree-sitter.  Constructs the differ does not model come back
// as raw leaves, so parsing never fails on valid input and degrades
// gracefully on invalid input.
package parse

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/treeline-dev/jsdiff/ast"
	"github.com/treeline-dev/jsdiff/debug"
	"github.com/treeline-dev/jsdiff/loc"
)

type parseOpts struct {
	typescript bool
	hashes     map[ast.Node]uint64
}

type ParseOption func(*parseOpts)

// ParseTypeScript parses with the TypeScript grammar, which also
// understands type annotations in the Flow style used by typed
// sources.  Without it annotations never appear in the tree.
func ParseTypeScript() ParseOption {
	return func(o *parseOpts) { o.typescript = true }
}

// ParseHashes records a content hash for every produced node in m,
// for use with the differ's Hashes option.  Two independently parsed
// trees share no pointers, so diffing them without hashes treats every
// node as changed and yields replaces throughout the tree.
func ParseHashes(m map[ast.Node]uint64) ParseOption {
	return func(o *parseOpts) { o.hashes = m }
}

// Parse parses src into a Program.
func Parse(src []byte, opts ...ParseOption) (*ast.Program, error) {
	o := &parseOpts{}
	for _, f := range opts {
		f(o)
	}
	p := sitter.NewParser()
	if o.typescript {
		p.SetLanguage(typescript.GetLanguage())
	} else {
		p.SetLanguage(javascript.GetLanguage())
	}
	tree, err := p.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("parse: no tree produced")
	}
	c := &converter{src: src, doc: loc.NewDoc(src)}
	prog := c.program(root)
	if debug.Parse() {
		debug.Logf("parse: %d top-level statements from %d bytes\n", len(prog.Body), len(src))
	}
	if o.hashes != nil {
		ast.HashTree(prog, o.hashes)
	}
	return prog, nil
}

type converter struct {
	src []byte
	doc *loc.Doc
}

func (c *converter) span(n *sitter.Node) loc.Span {
	return c.doc.Span(int(n.StartByte()), int(n.EndByte()))
}

func (c *converter) base(n *sitter.Node) ast.Base {
	return ast.Base{Loc: c.span(n)}
}

func (c *converter) text(n *sitter.Node) string {
	return n.Content(c.src)
}

// named collects the named children of n, skipping comments.
func (c *converter) named(n *sitter.Node) []*sitter.Node {
	count := int(n.NamedChildCount())
	res := make([]*sitter.Node, 0, count)
	for i := 0; i < count; i++ {
		ch := n.NamedChild(i)
		if ch == nil || ch.Type() == "comment" {
			continue
		}
		res = append(res, ch)
	}
	return res
}

// hasTokenChild reports whether n has an anonymous child with the
// given token text (e.g. "static", "get", "type").
func (c *converter) hasTokenChild(n *sitter.Node, token string) bool {
	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		ch := n.Child(i)
		if ch != nil && !ch.IsNamed() && c.text(ch) == token {
			return true
		}
	}
	return false
}

func (c *converter) program(root *sitter.Node) *ast.Program {
	prog := &ast.Program{Base: c.base(root)}
	for _, ch := range c.named(root) {
		prog.Body = append(prog.Body, c.statement(ch))
	}
	return prog
}

func (c *converter) rawStmt(n *sitter.Node) ast.Stmt {
	return &ast.RawStmt{Base: c.base(n), Kind: n.Type(), Text: c.text(n)}
}

func (c *converter) rawExpr(n *sitter.Node) ast.Expr {
	return &ast.RawExpr{Base: c.base(n), Kind: n.Type(), Text: c.text(n)}
}

// unparen strips parenthesized_expression wrappers, which carry no
// structure of their own.
func (c *converter) unparen(n *sitter.Node) *sitter.Node {
	for n != nil && n.Type() == "parenthesized_expression" {
		inner := n.NamedChild(0)
		if inner == nil {
			return n
		}
		n = inner
	}
	return n
}
