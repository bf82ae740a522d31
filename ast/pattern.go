package ast

// IdentPat is an identifier binding, optionally typed (x: T) or
// optional (x?).
type IdentPat struct {
	Base
	Name     *Identifier
	Optional bool
	Annot    *TypeAnnotation
}

// ObjectPatMember is a member of an object pattern.
type ObjectPatMember interface {
	Node
	objectPatMember()
}

// ObjectPatProperty is a key: pattern entry of an object pattern.
type ObjectPatProperty struct {
	Base
	Key       PropertyKey
	Pattern   Pat
	Shorthand bool
	Default   Expr // nil unless a default value is present
}

// RestElement is ...pattern inside an object or array pattern.
type RestElement struct {
	Base
	Argument Pat
}

func (*ObjectPatProperty) objectPatMember() {}
func (*RestElement) objectPatMember()       {}

type ObjectPat struct {
	Base
	Properties []ObjectPatMember
	Annot      *TypeAnnotation
}

// ArrayPat elements may contain nil holes for elisions.
type ArrayPat struct {
	Base
	Elements []Pat
	Annot    *TypeAnnotation
}

// AssignPat is a pattern with a default: left = right.
type AssignPat struct {
	Base
	Left  Pat
	Right Expr
}

// ExprPat adapts an expression (typically a member expression) to
// pattern position, as in assignment targets.
type ExprPat struct {
	Base
	Expr Expr
}

func (*IdentPat) patNode()    {}
func (*ObjectPat) patNode()   {}
func (*ArrayPat) patNode()    {}
func (*AssignPat) patNode()   {}
func (*ExprPat) patNode()     {}
func (*RestElement) patNode() {}
