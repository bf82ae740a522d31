package parse

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/treeline-dev/jsdiff/ast"
	"github.com/treeline-dev/jsdiff/loc"
)

// function converts any function-shaped node: declarations,
// expressions, arrows and method bodies.
func (c *converter) function(n *sitter.Node) *ast.Function {
	fn := &ast.Function{
		Base:      c.base(n),
		Async:     c.hasTokenChild(n, "async"),
		Generator: c.hasTokenChild(n, "*"),
	}
	if name := n.ChildByFieldName("name"); name != nil && name.Type() == "identifier" {
		fn.ID = &ast.Identifier{Base: c.base(name), Name: c.text(name)}
	}
	if tp := n.ChildByFieldName("type_parameters"); tp != nil {
		fn.TypeParams = &ast.TypeParams{Base: c.base(tp), Raw: c.text(tp)}
	}

	var paramsEnd loc.Span
	if params := n.ChildByFieldName("parameters"); params != nil {
		fn.Params = c.paramList(params)
		paramsEnd = c.span(params).EndOf()
	} else if param := n.ChildByFieldName("parameter"); param != nil {
		// single-parameter arrow without parentheses
		pl := &ast.ParamList{Base: c.base(param)}
		pl.Params = append(pl.Params, c.pattern(param))
		fn.Params = pl
		paramsEnd = c.span(param).EndOf()
	} else {
		paramsEnd = c.span(n).StartOf()
	}

	fn.Return = ast.ReturnAnnot{Loc: paramsEnd}
	if rt := n.ChildByFieldName("return_type"); rt != nil {
		fn.Return.Annot = c.typeAnnotation(rt)
	}

	if body := n.ChildByFieldName("body"); body != nil {
		if body.Type() == "statement_block" {
			fn.Body = c.blockStmt(body)
		} else {
			fn.Body = c.expression(body)
		}
	}
	return fn
}

func (c *converter) paramList(n *sitter.Node) *ast.ParamList {
	pl := &ast.ParamList{Base: c.base(n)}
	for _, ch := range c.named(n) {
		pl.Params = append(pl.Params, c.pattern(ch))
	}
	return pl
}

// typeAnnotation converts a type_annotation node (": T"); the type
// itself is carried as text.
func (c *converter) typeAnnotation(n *sitter.Node) *ast.TypeAnnotation {
	annot := &ast.TypeAnnotation{Base: c.base(n)}
	if inner := n.NamedChild(0); inner != nil {
		annot.Type = &ast.RawType{Base: c.base(inner), Text: c.text(inner)}
	} else {
		annot.Type = &ast.RawType{Base: c.base(n), Text: c.text(n)}
	}
	return annot
}

// typeAnnotationField reads the "type" field used by parameter and
// field declarations.
func (c *converter) typeAnnotationField(n *sitter.Node) *ast.TypeAnnotation {
	t := n.ChildByFieldName("type")
	if t == nil {
		return nil
	}
	return c.typeAnnotation(t)
}

func (c *converter) class(n *sitter.Node) *ast.Class {
	cls := &ast.Class{Base: c.base(n)}
	if name := n.ChildByFieldName("name"); name != nil {
		cls.ID = &ast.Identifier{Base: c.base(name), Name: c.text(name)}
	}
	if tp := n.ChildByFieldName("type_parameters"); tp != nil {
		cls.TypeParams = &ast.TypeParams{Base: c.base(tp), Raw: c.text(tp)}
	}
	for _, ch := range c.named(n) {
		if ch.Type() == "class_heritage" {
			if super := ch.NamedChild(0); super != nil {
				cls.SuperClass = c.expression(super)
			}
		}
	}
	if body := n.ChildByFieldName("body"); body != nil {
		cls.Body = c.classBody(body)
	} else {
		cls.Body = &ast.ClassBody{Base: c.base(n)}
	}
	return cls
}

func (c *converter) classBody(n *sitter.Node) *ast.ClassBody {
	body := &ast.ClassBody{Base: c.base(n)}
	for _, ch := range c.named(n) {
		switch ch.Type() {
		case "method_definition":
			body.Elements = append(body.Elements, c.classMethod(ch))
		case "field_definition", "public_field_definition":
			body.Elements = append(body.Elements, c.classProperty(ch))
		}
	}
	return body
}

func (c *converter) classMethod(n *sitter.Node) *ast.ClassMethod {
	m := &ast.ClassMethod{
		Base:   c.base(n),
		Kind:   ast.NormalMethod,
		Key:    c.propertyKey(n.ChildByFieldName("name")),
		Static: c.hasTokenChild(n, "static"),
		Value:  c.function(n),
	}
	switch {
	case c.hasTokenChild(n, "get"):
		m.Kind = ast.GetMethod
	case c.hasTokenChild(n, "set"):
		m.Kind = ast.SetMethod
	}
	if name := n.ChildByFieldName("name"); name != nil && c.text(name) == "constructor" {
		m.Kind = ast.ConstructorMethod
	}
	return m
}

func (c *converter) classProperty(n *sitter.Node) *ast.ClassProperty {
	p := &ast.ClassProperty{
		Base:   c.base(n),
		Key:    c.propertyKey(n.ChildByFieldName("property")),
		Static: c.hasTokenChild(n, "static"),
		Annot:  c.typeAnnotationField(n),
	}
	if p.Key == nil {
		p.Key = c.propertyKey(n.ChildByFieldName("name"))
	}
	if v := n.ChildByFieldName("value"); v != nil {
		p.Value = c.expression(v)
	}
	return p
}
