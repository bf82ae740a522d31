package parse

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/treeline-dev/jsdiff/ast"
)

func (c *converter) statement(n *sitter.Node) ast.Stmt {
	switch n.Type() {
	case "expression_statement":
		inner := n.NamedChild(0)
		if inner == nil {
			return c.rawStmt(n)
		}
		return &ast.ExprStmt{Base: c.base(n), Expr: c.expression(inner)}
	case "statement_block":
		return c.blockStmt(n)
	case "variable_declaration", "lexical_declaration":
		return c.varDecl(n)
	case "function_declaration", "generator_function_declaration":
		return &ast.FuncDecl{Base: c.base(n), Fn: c.function(n)}
	case "class_declaration":
		return &ast.ClassDecl{Base: c.base(n), Class: c.class(n)}
	case "if_statement":
		return c.ifStmt(n)
	case "while_statement":
		return &ast.WhileStmt{
			Base: c.base(n),
			Test: c.condition(n.ChildByFieldName("condition")),
			Body: c.fieldStmt(n, "body"),
		}
	case "do_statement":
		return &ast.DoWhileStmt{
			Base: c.base(n),
			Body: c.fieldStmt(n, "body"),
			Test: c.condition(n.ChildByFieldName("condition")),
		}
	case "for_statement":
		return c.forStmt(n)
	case "for_in_statement":
		return c.forInStmt(n)
	case "switch_statement":
		return c.switchStmt(n)
	case "return_statement":
		ret := &ast.ReturnStmt{Base: c.base(n)}
		if arg := n.NamedChild(0); arg != nil && arg.Type() != "comment" {
			ret.Argument = c.expression(arg)
		}
		return ret
	case "with_statement":
		return &ast.WithStmt{
			Base:   c.base(n),
			Object: c.condition(n.ChildByFieldName("object")),
			Body:   c.fieldStmt(n, "body"),
		}
	case "export_statement":
		return c.exportStmt(n)
	default:
		return c.rawStmt(n)
	}
}

func (c *converter) blockStmt(n *sitter.Node) *ast.BlockStmt {
	block := &ast.BlockStmt{Base: c.base(n)}
	for _, ch := range c.named(n) {
		block.Body = append(block.Body, c.statement(ch))
	}
	return block
}

// fieldStmt converts a statement-valued field, tolerating absence.
func (c *converter) fieldStmt(n *sitter.Node, field string) ast.Stmt {
	ch := n.ChildByFieldName(field)
	if ch == nil {
		return c.rawStmt(n)
	}
	return c.statement(ch)
}

// condition converts a (usually parenthesized) expression-valued
// field, unwrapping expression statements the grammar nests in for
// headers.
func (c *converter) condition(n *sitter.Node) ast.Expr {
	if n == nil {
		return nil
	}
	n = c.unparen(n)
	if n.Type() == "expression_statement" {
		inner := n.NamedChild(0)
		if inner == nil {
			return nil
		}
		n = inner
	}
	if n.Type() == "empty_statement" {
		return nil
	}
	return c.expression(n)
}

func (c *converter) varDecl(n *sitter.Node) *ast.VarDecl {
	kind := ast.Var
	if first := n.Child(0); first != nil {
		switch c.text(first) {
		case "let":
			kind = ast.Let
		case "const":
			kind = ast.Const
		}
	}
	vd := &ast.VarDecl{Base: c.base(n), Kind: kind}
	for _, ch := range c.named(n) {
		if ch.Type() != "variable_declarator" {
			continue
		}
		decl := &ast.VarDeclarator{Base: c.base(ch)}
		if name := ch.ChildByFieldName("name"); name != nil {
			decl.ID = c.pattern(name)
		}
		if typ := ch.ChildByFieldName("type"); typ != nil {
			// attach the annotation to an identifier binding
			if ip, ok := decl.ID.(*ast.IdentPat); ok {
				ip.Annot = c.typeAnnotation(typ)
			}
		}
		if value := ch.ChildByFieldName("value"); value != nil {
			decl.Init = c.expression(value)
		}
		vd.Decls = append(vd.Decls, decl)
	}
	return vd
}

func (c *converter) ifStmt(n *sitter.Node) ast.Stmt {
	stmt := &ast.IfStmt{
		Base:       c.base(n),
		Test:       c.condition(n.ChildByFieldName("condition")),
		Consequent: c.fieldStmt(n, "consequence"),
	}
	if alt := n.ChildByFieldName("alternative"); alt != nil {
		// else_clause wraps the alternate statement
		if alt.Type() == "else_clause" {
			if inner := alt.NamedChild(0); inner != nil {
				stmt.Alternate = c.statement(inner)
			}
		} else {
			stmt.Alternate = c.statement(alt)
		}
	}
	return stmt
}

func (c *converter) forStmt(n *sitter.Node) ast.Stmt {
	stmt := &ast.ForStmt{Base: c.base(n), Body: c.fieldStmt(n, "body")}
	if init := n.ChildByFieldName("initializer"); init != nil {
		switch init.Type() {
		case "variable_declaration", "lexical_declaration":
			stmt.Init = c.varDecl(init)
		case "empty_statement":
		case "expression_statement":
			if inner := init.NamedChild(0); inner != nil {
				stmt.Init = c.expression(inner)
			}
		default:
			stmt.Init = c.expression(init)
		}
	}
	stmt.Test = c.condition(n.ChildByFieldName("condition"))
	if inc := n.ChildByFieldName("increment"); inc != nil {
		stmt.Update = c.expression(inc)
	}
	return stmt
}

// forInStmt covers both for-in and for-of, which the grammar folds
// into one node discriminated by its operator field.
func (c *converter) forInStmt(n *sitter.Node) ast.Stmt {
	var left ast.Node
	if l := n.ChildByFieldName("left"); l != nil {
		switch l.Type() {
		case "variable_declaration", "lexical_declaration":
			left = c.varDecl(l)
		default:
			left = c.forInLeft(n, l)
		}
	}
	right := c.condition(n.ChildByFieldName("right"))
	body := c.fieldStmt(n, "body")

	op := ""
	if o := n.ChildByFieldName("operator"); o != nil {
		op = c.text(o)
	}
	if op == "of" {
		return &ast.ForOfStmt{
			Base: c.base(n), Left: left, Right: right, Body: body,
			Await: c.hasTokenChild(n, "await"),
		}
	}
	return &ast.ForInStmt{Base: c.base(n), Left: left, Right: right, Body: body}
}

// forInLeft builds the pattern-or-declaration left slot when the
// grammar exposes a bare pattern plus an optional kind token.
func (c *converter) forInLeft(n, l *sitter.Node) ast.Node {
	if kind := n.ChildByFieldName("kind"); kind != nil {
		vk := ast.Var
		switch c.text(kind) {
		case "let":
			vk = ast.Let
		case "const":
			vk = ast.Const
		}
		decl := &ast.VarDeclarator{Base: c.base(l), ID: c.pattern(l)}
		return &ast.VarDecl{Base: c.base(l), Kind: vk, Decls: []*ast.VarDeclarator{decl}}
	}
	return c.pattern(l)
}

func (c *converter) switchStmt(n *sitter.Node) ast.Stmt {
	stmt := &ast.SwitchStmt{
		Base:         c.base(n),
		Discriminant: c.condition(n.ChildByFieldName("value")),
	}
	body := n.ChildByFieldName("body")
	if body == nil {
		return c.rawStmt(n)
	}
	for _, ch := range c.named(body) {
		switch ch.Type() {
		case "switch_case":
			sc := &ast.SwitchCase{Base: c.base(ch)}
			if v := ch.ChildByFieldName("value"); v != nil {
				sc.Test = c.expression(v)
			}
			for _, stmtCh := range c.named(ch) {
				if v := ch.ChildByFieldName("value"); v != nil && stmtCh.Equal(v) {
					continue
				}
				sc.Consequent = append(sc.Consequent, c.statement(stmtCh))
			}
			stmt.Cases = append(stmt.Cases, sc)
		case "switch_default":
			sc := &ast.SwitchCase{Base: c.base(ch)}
			for _, stmtCh := range c.named(ch) {
				sc.Consequent = append(sc.Consequent, c.statement(stmtCh))
			}
			stmt.Cases = append(stmt.Cases, sc)
		}
	}
	return stmt
}

func (c *converter) exportStmt(n *sitter.Node) ast.Stmt {
	exp := &ast.ExportNamedDecl{Base: c.base(n)}
	if c.hasTokenChild(n, "type") {
		exp.ExportKind = ast.ExportType
	}
	if c.hasTokenChild(n, "default") || c.hasTokenChild(n, "*") {
		// default and star exports keep their own shape
		return c.rawStmt(n)
	}
	if decl := n.ChildByFieldName("declaration"); decl != nil {
		exp.Declaration = c.statement(decl)
	}
	if src := n.ChildByFieldName("source"); src != nil {
		exp.Source = &ast.Literal{Base: c.base(src), Kind: ast.StringLiteral, Raw: c.text(src)}
	}
	for _, ch := range c.named(n) {
		if ch.Type() != "export_clause" {
			continue
		}
		for _, spec := range c.named(ch) {
			if spec.Type() != "export_specifier" {
				continue
			}
			es := &ast.ExportSpecifier{Base: c.base(spec)}
			if name := spec.ChildByFieldName("name"); name != nil {
				es.Local = &ast.Identifier{Base: c.base(name), Name: c.text(name)}
			}
			if alias := spec.ChildByFieldName("alias"); alias != nil {
				es.Exported = &ast.Identifier{Base: c.base(alias), Name: c.text(alias)}
			}
			if es.Local == nil {
				continue
			}
			exp.Specifiers = append(exp.Specifiers, es)
		}
	}
	return exp
}
