// Package ast defines the JavaScript/Flow syntax tree the differ
// operates on.  Nodes are built by package parse or constructed
// directly; every node carries a loc.Span.
//
// Constructs the differ does not model are represented by RawStmt and
// RawExpr leaves, which compare by their source text.
package ast

import "github.com/treeline-dev/jsdiff/loc"

// Node is implemented by every syntax tree node.
type Node interface {
	Span() loc.Span
}

// Base carries the source span shared by all nodes.
type Base struct {
	Loc loc.Span
}

func (b *Base) Span() loc.Span { return b.Loc }

// Stmt is implemented by statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is implemented by expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Pat is implemented by binding/assignment pattern nodes.
type Pat interface {
	Node
	patNode()
}

// PropertyKey is the key of an object property, class member or
// pattern property: an identifier, a literal, or a computed
// expression.
type PropertyKey interface {
	Node
	propertyKey()
}

// Program is the root of a parsed source file.
type Program struct {
	Base
	Body []Stmt
}

// Identifier is a name occurrence.  It doubles as an expression and a
// property key.
type Identifier struct {
	Base
	Name string
}

func (*Identifier) exprNode()    {}
func (*Identifier) propertyKey() {}

// LiteralKind discriminates Literal nodes.
type LiteralKind int

const (
	NumberLiteral LiteralKind = iota
	StringLiteral
	BoolLiteral
	NullLiteral
	RegExpLiteral
	TemplateLiteral
)

func (k LiteralKind) String() string {
	switch k {
	case NumberLiteral:
		return "number"
	case StringLiteral:
		return "string"
	case BoolLiteral:
		return "bool"
	case NullLiteral:
		return "null"
	case RegExpLiteral:
		return "regexp"
	case TemplateLiteral:
		return "template"
	}
	return "literal"
}

// Literal is any literal value.  The differ never looks inside one;
// a changed literal is replaced wholesale.
type Literal struct {
	Base
	Kind LiteralKind
	Raw  string
}

func (*Literal) exprNode()    {}
func (*Literal) propertyKey() {}

// ComputedKey is a computed property key: [expr].
type ComputedKey struct {
	Base
	Expr Expr
}

func (*ComputedKey) propertyKey() {}

// PrivateName is a class private member name (#x).
type PrivateName struct {
	Base
	Name string
}

func (*PrivateName) propertyKey() {}

// RawStmt is an opaque statement the differ does not recurse into.
type RawStmt struct {
	Base
	Kind string
	Text string
}

func (*RawStmt) stmtNode() {}

// RawExpr is an opaque expression the differ does not recurse into.
type RawExpr struct {
	Base
	Kind string
	Text string
}

func (*RawExpr) exprNode() {}
