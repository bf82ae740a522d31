// Package jsdiff computes structural edit scripts between two
// JavaScript/Flow syntax trees.  Given the old and new tree for the
// same program it produces a location-annotated list of changes that
// transforms the old tree into the new one, suitable for fine-grained
// refactoring edits and incremental reprinting.
//
// The differ recurses node by node, skipping subtrees that are
// referentially shared (or content-hash equal, see Hashes).  Sequence
// children go through package listdiff.  Where an edit cannot be
// expressed at the current node, the nearest enclosing node whose
// kind is in the Node union is replaced wholesale, so the result is
// always a valid script.
package jsdiff

import (
	"fmt"

	"github.com/treeline-dev/jsdiff/ast"
	"github.com/treeline-dev/jsdiff/loc"
)

// NodeKind enumerates the closed set of node kinds a Change can carry
// at top level.  Growing the set (together with a comparator) makes
// diffs finer grained; shrinking it is a breaking change.
type NodeKind int

const (
	ProgramKind NodeKind = iota
	StatementKind
	ExpressionKind
	IdentifierKind
	PatternKind
	TypeAnnotationKind
	ClassPropertyKind
	ObjectPropertyKind
)

func (k NodeKind) String() string {
	switch k {
	case ProgramKind:
		return "program"
	case StatementKind:
		return "statement"
	case ExpressionKind:
		return "expression"
	case IdentifierKind:
		return "identifier"
	case PatternKind:
		return "pattern"
	case TypeAnnotationKind:
		return "type-annotation"
	case ClassPropertyKind:
		return "class-property"
	case ObjectPropertyKind:
		return "object-property"
	}
	return fmt.Sprintf("node(%d)", int(k))
}

// Node is the tagged union of diffable AST values.  Exactly the field
// matching Kind is set.
type Node struct {
	Kind       NodeKind
	Program    *ast.Program
	Stmt       ast.Stmt
	Expr       ast.Expr
	Ident      *ast.Identifier
	Pat        ast.Pat
	Annot      *ast.TypeAnnotation
	ClassProp  *ast.ClassProperty
	ObjectProp *ast.ObjectProperty
}

func ProgramOf(p *ast.Program) Node       { return Node{Kind: ProgramKind, Program: p} }
func StatementOf(s ast.Stmt) Node         { return Node{Kind: StatementKind, Stmt: s} }
func ExpressionOf(e ast.Expr) Node        { return Node{Kind: ExpressionKind, Expr: e} }
func IdentifierOf(i *ast.Identifier) Node { return Node{Kind: IdentifierKind, Ident: i} }
func PatternOf(p ast.Pat) Node            { return Node{Kind: PatternKind, Pat: p} }
func AnnotOf(a *ast.TypeAnnotation) Node  { return Node{Kind: TypeAnnotationKind, Annot: a} }
func ClassPropOf(p *ast.ClassProperty) Node {
	return Node{Kind: ClassPropertyKind, ClassProp: p}
}
func ObjectPropOf(p *ast.ObjectProperty) Node {
	return Node{Kind: ObjectPropertyKind, ObjectProp: p}
}

// AST returns the wrapped node.
func (n Node) AST() ast.Node {
	switch n.Kind {
	case ProgramKind:
		return n.Program
	case StatementKind:
		return n.Stmt
	case ExpressionKind:
		return n.Expr
	case IdentifierKind:
		return n.Ident
	case PatternKind:
		return n.Pat
	case TypeAnnotationKind:
		return n.Annot
	case ClassPropertyKind:
		return n.ClassProp
	case ObjectPropertyKind:
		return n.ObjectProp
	}
	return nil
}

func (n Node) Span() loc.Span {
	if a := n.AST(); a != nil {
		return a.Span()
	}
	return loc.Span{}
}

// ChangeKind discriminates changes.
type ChangeKind int

const (
	Insert ChangeKind = iota
	Delete
	Replace
)

func (k ChangeKind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	}
	return "replace"
}

// Change is one edit over Node values: Replace carries Old and New,
// Delete carries Old, Insert carries Inserted (never empty).
type Change struct {
	Kind     ChangeKind
	Old      Node
	New      Node
	Inserted []Node
}

// LocatedChange anchors a Change to a span in the OLD source: the old
// node's span for replaces and deletes, a zero-width insertion point
// for inserts.
type LocatedChange struct {
	Span loc.Span
	Change
}

func (c LocatedChange) String() string {
	switch c.Kind {
	case Insert:
		return fmt.Sprintf("%s insert x%d", c.Span, len(c.Inserted))
	case Delete:
		return fmt.Sprintf("%s delete %s", c.Span, c.Old.Kind)
	}
	return fmt.Sprintf("%s replace %s", c.Span, c.Old.Kind)
}

func replaceAt(sp loc.Span, old, new Node) LocatedChange {
	return LocatedChange{Span: sp, Change: Change{Kind: Replace, Old: old, New: new}}
}

func deleteAt(sp loc.Span, old Node) LocatedChange {
	return LocatedChange{Span: sp, Change: Change{Kind: Delete, Old: old}}
}

func insertAt(sp loc.Span, items []Node) LocatedChange {
	return LocatedChange{Span: sp, Change: Change{Kind: Insert, Inserted: items}}
}
