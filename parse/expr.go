package parse

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/treeline-dev/jsdiff/ast"
)

func (c *converter) expression(n *sitter.Node) ast.Expr {
	n = c.unparen(n)
	switch n.Type() {
	case "identifier", "property_identifier", "shorthand_property_identifier":
		return &ast.Identifier{Base: c.base(n), Name: c.text(n)}
	case "this":
		return &ast.ThisExpr{Base: c.base(n)}
	case "number":
		return &ast.Literal{Base: c.base(n), Kind: ast.NumberLiteral, Raw: c.text(n)}
	case "string":
		return &ast.Literal{Base: c.base(n), Kind: ast.StringLiteral, Raw: c.text(n)}
	case "template_string":
		return &ast.Literal{Base: c.base(n), Kind: ast.TemplateLiteral, Raw: c.text(n)}
	case "regex":
		return &ast.Literal{Base: c.base(n), Kind: ast.RegExpLiteral, Raw: c.text(n)}
	case "true", "false":
		return &ast.Literal{Base: c.base(n), Kind: ast.BoolLiteral, Raw: c.text(n)}
	case "null":
		return &ast.Literal{Base: c.base(n), Kind: ast.NullLiteral, Raw: c.text(n)}
	case "binary_expression":
		return c.binary(n)
	case "unary_expression":
		return &ast.UnaryExpr{
			Base:     c.base(n),
			Op:       c.fieldText(n, "operator"),
			Prefix:   true,
			Argument: c.fieldExpr(n, "argument"),
		}
	case "update_expression":
		return c.update(n)
	case "assignment_expression":
		return c.assignment(n, "=")
	case "augmented_assignment_expression":
		return c.assignment(n, c.fieldText(n, "operator"))
	case "ternary_expression":
		return &ast.CondExpr{
			Base:       c.base(n),
			Test:       c.fieldExpr(n, "condition"),
			Consequent: c.fieldExpr(n, "consequence"),
			Alternate:  c.fieldExpr(n, "alternative"),
		}
	case "sequence_expression":
		seq := &ast.SeqExpr{Base: c.base(n)}
		c.flattenSeq(n, seq)
		return seq
	case "call_expression":
		return &ast.CallExpr{
			Base:     c.base(n),
			Callee:   c.fieldExpr(n, "function"),
			TypeArgs: c.typeArgs(n),
			Args:     c.arguments(n.ChildByFieldName("arguments")),
		}
	case "new_expression":
		return &ast.NewExpr{
			Base:     c.base(n),
			Callee:   c.fieldExpr(n, "constructor"),
			TypeArgs: c.typeArgs(n),
			Args:     c.arguments(n.ChildByFieldName("arguments")),
		}
	case "member_expression":
		return c.member(n)
	case "subscript_expression":
		index := n.ChildByFieldName("index")
		if index == nil {
			return c.rawExpr(n)
		}
		return &ast.MemberExpr{
			Base:   c.base(n),
			Object: c.fieldExpr(n, "object"),
			Property: &ast.ComputedProp{
				Base: ast.Base{Loc: c.span(index)},
				Expr: c.expression(index),
			},
		}
	case "object":
		return c.object(n)
	case "array":
		arr := &ast.ArrayExpr{Base: c.base(n)}
		for _, ch := range c.named(n) {
			arr.Elements = append(arr.Elements, c.expression(ch))
		}
		return arr
	case "arrow_function":
		return &ast.ArrowExpr{Base: c.base(n), Fn: c.function(n)}
	case "function_expression", "function", "generator_function":
		return &ast.FuncExpr{Base: c.base(n), Fn: c.function(n)}
	default:
		return c.rawExpr(n)
	}
}

func (c *converter) fieldText(n *sitter.Node, field string) string {
	ch := n.ChildByFieldName(field)
	if ch == nil {
		return ""
	}
	return c.text(ch)
}

func (c *converter) fieldExpr(n *sitter.Node, field string) ast.Expr {
	ch := n.ChildByFieldName(field)
	if ch == nil {
		return c.rawExpr(n)
	}
	return c.expression(ch)
}

func (c *converter) binary(n *sitter.Node) ast.Expr {
	op := c.fieldText(n, "operator")
	left := c.fieldExpr(n, "left")
	right := c.fieldExpr(n, "right")
	switch op {
	case "&&", "||", "??":
		return &ast.LogicalExpr{Base: c.base(n), Op: op, Left: left, Right: right}
	}
	return &ast.BinaryExpr{Base: c.base(n), Op: op, Left: left, Right: right}
}

func (c *converter) update(n *sitter.Node) ast.Expr {
	arg := n.ChildByFieldName("argument")
	op := n.ChildByFieldName("operator")
	if arg == nil || op == nil {
		return c.rawExpr(n)
	}
	return &ast.UpdateExpr{
		Base:     c.base(n),
		Op:       c.text(op),
		Prefix:   op.StartByte() < arg.StartByte(),
		Argument: c.expression(arg),
	}
}

func (c *converter) assignment(n *sitter.Node, op string) ast.Expr {
	left := n.ChildByFieldName("left")
	right := n.ChildByFieldName("right")
	if left == nil || right == nil {
		return c.rawExpr(n)
	}
	return &ast.AssignExpr{
		Base:  c.base(n),
		Op:    op,
		Left:  c.assignTarget(left),
		Right: c.expression(right),
	}
}

// assignTarget adapts an assignment left-hand side to a pattern.
func (c *converter) assignTarget(n *sitter.Node) ast.Pat {
	switch n.Type() {
	case "identifier", "object_pattern", "array_pattern", "rest_pattern", "assignment_pattern":
		return c.pattern(n)
	default:
		return &ast.ExprPat{Base: c.base(n), Expr: c.expression(n)}
	}
}

// flattenSeq flattens the grammar's nested sequence nodes into one
// expression list.
func (c *converter) flattenSeq(n *sitter.Node, seq *ast.SeqExpr) {
	for _, ch := range c.named(n) {
		if ch.Type() == "sequence_expression" {
			c.flattenSeq(ch, seq)
			continue
		}
		seq.Exprs = append(seq.Exprs, c.expression(ch))
	}
}

func (c *converter) typeArgs(n *sitter.Node) *ast.TypeArgs {
	ta := n.ChildByFieldName("type_arguments")
	if ta == nil {
		return nil
	}
	return &ast.TypeArgs{Base: c.base(ta), Raw: c.text(ta)}
}

func (c *converter) arguments(n *sitter.Node) []ast.Expr {
	if n == nil {
		return nil
	}
	var res []ast.Expr
	for _, ch := range c.named(n) {
		res = append(res, c.expression(ch))
	}
	return res
}

func (c *converter) member(n *sitter.Node) ast.Expr {
	prop := n.ChildByFieldName("property")
	if prop == nil {
		return c.rawExpr(n)
	}
	var mp ast.MemberProp
	switch prop.Type() {
	case "private_property_identifier":
		mp = &ast.PrivateName{Base: c.base(prop), Name: c.text(prop)}
	default:
		mp = &ast.Identifier{Base: c.base(prop), Name: c.text(prop)}
	}
	return &ast.MemberExpr{Base: c.base(n), Object: c.fieldExpr(n, "object"), Property: mp}
}

func (c *converter) object(n *sitter.Node) ast.Expr {
	obj := &ast.ObjectExpr{Base: c.base(n)}
	for _, ch := range c.named(n) {
		switch ch.Type() {
		case "pair":
			key := c.propertyKey(ch.ChildByFieldName("key"))
			prop := &ast.ObjectProperty{Base: c.base(ch), Kind: ast.InitProp, Key: key}
			if v := ch.ChildByFieldName("value"); v != nil {
				prop.Value = c.expression(v)
			}
			obj.Properties = append(obj.Properties, prop)
		case "shorthand_property_identifier":
			id := &ast.Identifier{Base: c.base(ch), Name: c.text(ch)}
			obj.Properties = append(obj.Properties, &ast.ObjectProperty{
				Base: c.base(ch), Kind: ast.InitProp, Key: id, Value: id, Shorthand: true,
			})
		case "method_definition":
			obj.Properties = append(obj.Properties, c.objectMethod(ch))
		case "spread_element":
			sp := &ast.SpreadProperty{Base: c.base(ch)}
			if arg := ch.NamedChild(0); arg != nil {
				sp.Argument = c.expression(arg)
			}
			obj.Properties = append(obj.Properties, sp)
		}
	}
	return obj
}

func (c *converter) objectMethod(n *sitter.Node) *ast.ObjectProperty {
	prop := &ast.ObjectProperty{
		Base:   c.base(n),
		Kind:   ast.InitProp,
		Method: true,
		Key:    c.propertyKey(n.ChildByFieldName("name")),
	}
	switch {
	case c.hasTokenChild(n, "get"):
		prop.Kind = ast.GetProp
		prop.Method = false
	case c.hasTokenChild(n, "set"):
		prop.Kind = ast.SetProp
		prop.Method = false
	}
	prop.Value = &ast.FuncExpr{Base: c.base(n), Fn: c.function(n)}
	return prop
}

func (c *converter) propertyKey(n *sitter.Node) ast.PropertyKey {
	if n == nil {
		return nil
	}
	switch n.Type() {
	case "property_identifier", "identifier":
		return &ast.Identifier{Base: c.base(n), Name: c.text(n)}
	case "private_property_identifier":
		return &ast.PrivateName{Base: c.base(n), Name: c.text(n)}
	case "string":
		return &ast.Literal{Base: c.base(n), Kind: ast.StringLiteral, Raw: c.text(n)}
	case "number":
		return &ast.Literal{Base: c.base(n), Kind: ast.NumberLiteral, Raw: c.text(n)}
	case "computed_property_name":
		ck := &ast.ComputedKey{Base: c.base(n)}
		if inner := n.NamedChild(0); inner != nil {
			ck.Expr = c.expression(inner)
		}
		return ck
	default:
		return &ast.Literal{Base: c.base(n), Kind: ast.StringLiteral, Raw: c.text(n)}
	}
}
