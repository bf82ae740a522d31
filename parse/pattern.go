package parse

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/treeline-dev/jsdiff/ast"
)

func (c *converter) pattern(n *sitter.Node) ast.Pat {
	switch n.Type() {
	case "identifier", "shorthand_property_identifier_pattern", "property_identifier":
		id := &ast.Identifier{Base: c.base(n), Name: c.text(n)}
		return &ast.IdentPat{Base: c.base(n), Name: id}
	case "object_pattern":
		return c.objectPattern(n)
	case "array_pattern":
		return c.arrayPattern(n)
	case "assignment_pattern", "object_assignment_pattern":
		left := n.ChildByFieldName("left")
		right := n.ChildByFieldName("right")
		if left == nil || right == nil {
			return c.exprPattern(n)
		}
		return &ast.AssignPat{
			Base:  c.base(n),
			Left:  c.pattern(left),
			Right: c.expression(right),
		}
	case "rest_pattern":
		rest := &ast.RestElement{Base: c.base(n)}
		if arg := n.NamedChild(0); arg != nil {
			rest.Argument = c.pattern(arg)
		}
		return rest
	case "required_parameter", "optional_parameter":
		return c.typedParameter(n)
	default:
		return c.exprPattern(n)
	}
}

func (c *converter) exprPattern(n *sitter.Node) ast.Pat {
	return &ast.ExprPat{Base: c.base(n), Expr: c.expression(n)}
}

// typedParameter unwraps the TypeScript grammar's parameter wrapper,
// attaching the annotation to the inner binding.
func (c *converter) typedParameter(n *sitter.Node) ast.Pat {
	inner := n.ChildByFieldName("pattern")
	if inner == nil {
		return c.exprPattern(n)
	}
	pat := c.pattern(inner)
	annot := c.typeAnnotationField(n)
	optional := n.Type() == "optional_parameter"
	if ip, ok := pat.(*ast.IdentPat); ok {
		ip.Optional = optional
		ip.Annot = annot
		return ip
	}
	if op, ok := pat.(*ast.ObjectPat); ok {
		op.Annot = annot
		return op
	}
	if ap, ok := pat.(*ast.ArrayPat); ok {
		ap.Annot = annot
		return ap
	}
	return pat
}

func (c *converter) objectPattern(n *sitter.Node) *ast.ObjectPat {
	pat := &ast.ObjectPat{Base: c.base(n)}
	for _, ch := range c.named(n) {
		switch ch.Type() {
		case "pair_pattern":
			p := &ast.ObjectPatProperty{
				Base: c.base(ch),
				Key:  c.propertyKey(ch.ChildByFieldName("key")),
			}
			if v := ch.ChildByFieldName("value"); v != nil {
				p.Pattern = c.pattern(v)
			}
			pat.Properties = append(pat.Properties, p)
		case "shorthand_property_identifier_pattern":
			id := &ast.Identifier{Base: c.base(ch), Name: c.text(ch)}
			pat.Properties = append(pat.Properties, &ast.ObjectPatProperty{
				Base:      c.base(ch),
				Key:       id,
				Pattern:   &ast.IdentPat{Base: c.base(ch), Name: id},
				Shorthand: true,
			})
		case "object_assignment_pattern":
			// shorthand with default: {x = 1}
			left := ch.ChildByFieldName("left")
			right := ch.ChildByFieldName("right")
			if left == nil || right == nil {
				continue
			}
			key := c.propertyKey(left)
			p := &ast.ObjectPatProperty{
				Base:      c.base(ch),
				Key:       key,
				Pattern:   c.pattern(left),
				Shorthand: true,
				Default:   c.expression(right),
			}
			pat.Properties = append(pat.Properties, p)
		case "rest_pattern":
			rest := &ast.RestElement{Base: c.base(ch)}
			if arg := ch.NamedChild(0); arg != nil {
				rest.Argument = c.pattern(arg)
			}
			pat.Properties = append(pat.Properties, rest)
		}
	}
	return pat
}

func (c *converter) arrayPattern(n *sitter.Node) *ast.ArrayPat {
	pat := &ast.ArrayPat{Base: c.base(n)}
	for _, ch := range c.named(n) {
		pat.Elements = append(pat.Elements, c.pattern(ch))
	}
	return pat
}
