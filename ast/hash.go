package ast

import (
	"encoding/binary"
	"hash/maphash"
)

var hashSeed = maphash.MakeSeed()

// HashTree computes a structural content hash for every node in the
// tree rooted at n and records it in m.  Two nodes hash equal exactly
// when their subtrees have the same shape and leaf text; source spans
// do not participate.  The differ uses the table as a stand-in for
// referential equality when the two inputs were parsed independently.
func HashTree(n Node, m map[Node]uint64) uint64 {
	h := &hasher{m: m}
	return h.node(n)
}

type hasher struct {
	m map[Node]uint64
}

func (h *hasher) node(n Node) uint64 {
	if n == nil {
		return 0
	}
	if v, ok := h.m[n]; ok {
		return v
	}
	var mh maphash.Hash
	mh.SetSeed(hashSeed)
	h.write(&mh, n)
	v := mh.Sum64()
	if h.m != nil {
		h.m[n] = v
	}
	return v
}

func (h *hasher) sub(mh *maphash.Hash, n Node) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], h.node(n))
	mh.Write(b[:])
}

func (h *hasher) subs(mh *maphash.Hash, ns ...Node) {
	for _, n := range ns {
		h.sub(mh, n)
	}
}

func hashBool(mh *maphash.Hash, v bool) {
	if v {
		mh.WriteByte(1)
	} else {
		mh.WriteByte(0)
	}
}

func (h *hasher) stmts(mh *maphash.Hash, ss []Stmt) {
	for _, s := range ss {
		h.sub(mh, s)
	}
}

func (h *hasher) exprs(mh *maphash.Hash, es []Expr) {
	for _, e := range es {
		if e == nil {
			h.sub(mh, nil)
			continue
		}
		h.sub(mh, e)
	}
}

func (h *hasher) annot(mh *maphash.Hash, a *TypeAnnotation) {
	if a == nil {
		h.sub(mh, nil)
		return
	}
	h.sub(mh, a)
}

func (h *hasher) write(mh *maphash.Hash, n Node) {
	switch n := n.(type) {
	case *Program:
		mh.WriteString("program")
		h.stmts(mh, n.Body)
	case *Identifier:
		mh.WriteString("id")
		mh.WriteString(n.Name)
	case *Literal:
		mh.WriteString("lit")
		mh.WriteByte(byte(n.Kind))
		mh.WriteString(n.Raw)
	case *ComputedKey:
		mh.WriteString("computedkey")
		h.sub(mh, n.Expr)
	case *PrivateName:
		mh.WriteString("private")
		mh.WriteString(n.Name)
	case *RawStmt:
		mh.WriteString("rawstmt")
		mh.WriteString(n.Kind)
		mh.WriteString(n.Text)
	case *RawExpr:
		mh.WriteString("rawexpr")
		mh.WriteString(n.Kind)
		mh.WriteString(n.Text)

	case *ExprStmt:
		mh.WriteString("exprstmt")
		h.sub(mh, n.Expr)
	case *BlockStmt:
		mh.WriteString("block")
		h.stmts(mh, n.Body)
	case *VarDecl:
		mh.WriteString("vardecl")
		mh.WriteByte(byte(n.Kind))
		for _, d := range n.Decls {
			h.sub(mh, d)
		}
	case *VarDeclarator:
		mh.WriteString("declarator")
		h.subs(mh, n.ID, exprOrNil(n.Init))
	case *FuncDecl:
		mh.WriteString("funcdecl")
		h.sub(mh, n.Fn)
	case *ClassDecl:
		mh.WriteString("classdecl")
		h.sub(mh, n.Class)
	case *IfStmt:
		mh.WriteString("if")
		h.subs(mh, n.Test, n.Consequent, stmtOrNil(n.Alternate))
	case *WhileStmt:
		mh.WriteString("while")
		h.subs(mh, n.Test, n.Body)
	case *DoWhileStmt:
		mh.WriteString("dowhile")
		h.subs(mh, n.Body, n.Test)
	case *ForStmt:
		mh.WriteString("for")
		h.subs(mh, n.Init, exprOrNil(n.Test), exprOrNil(n.Update), n.Body)
	case *ForInStmt:
		mh.WriteString("forin")
		hashBool(mh, n.Each)
		h.subs(mh, n.Left, n.Right, n.Body)
	case *ForOfStmt:
		mh.WriteString("forof")
		hashBool(mh, n.Await)
		h.subs(mh, n.Left, n.Right, n.Body)
	case *SwitchStmt:
		mh.WriteString("switch")
		h.sub(mh, n.Discriminant)
		for _, c := range n.Cases {
			h.sub(mh, c)
		}
	case *SwitchCase:
		mh.WriteString("case")
		h.sub(mh, exprOrNil(n.Test))
		h.stmts(mh, n.Consequent)
	case *ReturnStmt:
		mh.WriteString("return")
		h.sub(mh, exprOrNil(n.Argument))
	case *WithStmt:
		mh.WriteString("with")
		h.subs(mh, n.Object, n.Body)
	case *ExportNamedDecl:
		mh.WriteString("export")
		mh.WriteByte(byte(n.ExportKind))
		h.subs(mh, stmtOrNil(n.Declaration), litOrNil(n.Source))
		for _, s := range n.Specifiers {
			h.sub(mh, s)
		}
	case *ExportSpecifier:
		mh.WriteString("exportspec")
		h.subs(mh, identOrNil(n.Local), identOrNil(n.Exported))

	case *BinaryExpr:
		mh.WriteString("binary")
		mh.WriteString(n.Op)
		h.subs(mh, n.Left, n.Right)
	case *LogicalExpr:
		mh.WriteString("logical")
		mh.WriteString(n.Op)
		h.subs(mh, n.Left, n.Right)
	case *UnaryExpr:
		mh.WriteString("unary")
		mh.WriteString(n.Op)
		hashBool(mh, n.Prefix)
		h.sub(mh, n.Argument)
	case *UpdateExpr:
		mh.WriteString("update")
		mh.WriteString(n.Op)
		hashBool(mh, n.Prefix)
		h.sub(mh, n.Argument)
	case *AssignExpr:
		mh.WriteString("assign")
		mh.WriteString(n.Op)
		h.subs(mh, n.Left, n.Right)
	case *CondExpr:
		mh.WriteString("cond")
		h.subs(mh, n.Test, n.Consequent, n.Alternate)
	case *SeqExpr:
		mh.WriteString("seq")
		h.exprs(mh, n.Exprs)
	case *TypeArgs:
		mh.WriteString("typeargs")
		mh.WriteString(n.Raw)
	case *CallExpr:
		mh.WriteString("call")
		h.subs(mh, n.Callee, targsOrNil(n.TypeArgs))
		h.exprs(mh, n.Args)
	case *NewExpr:
		mh.WriteString("new")
		h.subs(mh, n.Callee, targsOrNil(n.TypeArgs))
		h.exprs(mh, n.Args)
	case *ComputedProp:
		mh.WriteString("computedprop")
		h.sub(mh, n.Expr)
	case *MemberExpr:
		mh.WriteString("member")
		h.subs(mh, n.Object, n.Property)
	case *ObjectProperty:
		mh.WriteString("objprop")
		mh.WriteByte(byte(n.Kind))
		hashBool(mh, n.Shorthand)
		hashBool(mh, n.Method)
		h.subs(mh, n.Key, exprOrNil(n.Value))
	case *SpreadProperty:
		mh.WriteString("spread")
		h.sub(mh, n.Argument)
	case *ObjectExpr:
		mh.WriteString("object")
		for _, p := range n.Properties {
			h.sub(mh, p)
		}
	case *ArrayExpr:
		mh.WriteString("array")
		h.exprs(mh, n.Elements)
	case *ThisExpr:
		mh.WriteString("this")
	case *FuncExpr:
		mh.WriteString("funcexpr")
		h.sub(mh, n.Fn)
	case *ArrowExpr:
		mh.WriteString("arrow")
		h.sub(mh, n.Fn)

	case *RawType:
		mh.WriteString("rawtype")
		mh.WriteString(n.Text)
	case *TypeAnnotation:
		mh.WriteString("annot")
		h.sub(mh, n.Type)
	case *TypeParams:
		mh.WriteString("tparams")
		mh.WriteString(n.Raw)
	case *Predicate:
		mh.WriteString("predicate")
		mh.WriteString(n.Raw)
	case *ParamList:
		mh.WriteString("params")
		for _, p := range n.Params {
			if p == nil {
				h.sub(mh, nil)
				continue
			}
			h.sub(mh, p)
		}
	case *Function:
		mh.WriteString("function")
		hashBool(mh, n.Async)
		hashBool(mh, n.Generator)
		h.subs(mh, identOrNil(n.ID), paramsOrNil(n.Params), n.Body,
			predicateOrNil(n.Predicate), tparamsOrNil(n.TypeParams))
		h.annot(mh, n.Return.Annot)

	case *Variance:
		mh.WriteString("variance")
		mh.WriteString(n.Sigil)
	case *Class:
		mh.WriteString("class")
		h.subs(mh, identOrNil(n.ID), tparamsOrNil(n.TypeParams),
			exprOrNil(n.SuperClass), targsOrNil(n.SuperTypeArgs))
		for _, im := range n.Implements {
			h.sub(mh, im)
		}
		h.exprs(mh, n.Decorators)
		h.sub(mh, n.Body)
	case *ClassBody:
		mh.WriteString("classbody")
		for _, e := range n.Elements {
			h.sub(mh, e)
		}
	case *ClassMethod:
		mh.WriteString("classmethod")
		mh.WriteByte(byte(n.Kind))
		hashBool(mh, n.Static)
		h.subs(mh, n.Key, n.Value)
		h.exprs(mh, n.Decorators)
	case *ClassProperty:
		mh.WriteString("classprop")
		hashBool(mh, n.Static)
		h.subs(mh, n.Key, exprOrNil(n.Value), varianceOrNil(n.Variance))
		h.annot(mh, n.Annot)

	case *IdentPat:
		mh.WriteString("identpat")
		hashBool(mh, n.Optional)
		h.sub(mh, n.Name)
		h.annot(mh, n.Annot)
	case *ObjectPatProperty:
		mh.WriteString("objpatprop")
		hashBool(mh, n.Shorthand)
		h.subs(mh, n.Key, n.Pattern, exprOrNil(n.Default))
	case *RestElement:
		mh.WriteString("rest")
		h.sub(mh, n.Argument)
	case *ObjectPat:
		mh.WriteString("objpat")
		for _, p := range n.Properties {
			h.sub(mh, p)
		}
		h.annot(mh, n.Annot)
	case *ArrayPat:
		mh.WriteString("arraypat")
		for _, e := range n.Elements {
			if e == nil {
				h.sub(mh, nil)
				continue
			}
			h.sub(mh, e)
		}
		h.annot(mh, n.Annot)
	case *AssignPat:
		mh.WriteString("assignpat")
		h.subs(mh, n.Left, n.Right)
	case *ExprPat:
		mh.WriteString("exprpat")
		h.sub(mh, n.Expr)

	default:
		mh.WriteString("unknown")
	}
}

// The *OrNil helpers keep typed nil pointers from reaching h.node as
// non-nil interfaces.

func exprOrNil(e Expr) Node {
	if e == nil {
		return nil
	}
	return e
}

func stmtOrNil(s Stmt) Node {
	if s == nil {
		return nil
	}
	return s
}

func identOrNil(id *Identifier) Node {
	if id == nil {
		return nil
	}
	return id
}

func litOrNil(l *Literal) Node {
	if l == nil {
		return nil
	}
	return l
}

func targsOrNil(t *TypeArgs) Node {
	if t == nil {
		return nil
	}
	return t
}

func tparamsOrNil(t *TypeParams) Node {
	if t == nil {
		return nil
	}
	return t
}

func predicateOrNil(p *Predicate) Node {
	if p == nil {
		return nil
	}
	return p
}

func paramsOrNil(p *ParamList) Node {
	if p == nil {
		return nil
	}
	return p
}

func varianceOrNil(v *Variance) Node {
	if v == nil {
		return nil
	}
	return v
}
