package ast

import "github.com/treeline-dev/jsdiff/loc"

// TypeNode is a Flow/TypeScript type expression.  The differ treats
// whole annotations as leaves, so a single raw variant suffices;
// richer variants can be added without touching the differ.
type TypeNode interface {
	Node
	typeNode()
}

// RawType is a type expression carried as source text.
type RawType struct {
	Base
	Text string
}

func (*RawType) typeNode() {}

// TypeAnnotation is a ": T" annotation.  Its span covers the colon
// and the type.
type TypeAnnotation struct {
	Base
	Type TypeNode
}

// ReturnAnnot is a function return annotation slot.  When Annot is
// nil the annotation is missing, and Loc marks where one would be
// inserted (just after the parameter list).
type ReturnAnnot struct {
	Loc   loc.Span
	Annot *TypeAnnotation
}

// TypeParams is an opaque type-parameter list (<T>).
type TypeParams struct {
	Base
	Raw string
}

// Predicate is an opaque Flow %checks predicate.
type Predicate struct {
	Base
	Raw string
}

// ParamList is a function parameter list.  The differ treats the list
// as structural: any change replaces the enclosing function.
type ParamList struct {
	Base
	Params []Pat
}

// Function is the shared shape of function declarations, function
// expressions and arrows.
type Function struct {
	Base
	ID         *Identifier // nil when anonymous
	Params     *ParamList
	Body       Node // *BlockStmt, or an Expr for expression-bodied arrows
	Async      bool
	Generator  bool
	Predicate  *Predicate
	Return     ReturnAnnot
	TypeParams *TypeParams
}
