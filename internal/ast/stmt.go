package ast

import "github.com/vesper-lang/vesper/internal/position"

// Stmt is the opaque statement handle the brace-item-list peer
// subsystem returns . Only the shapes needed to give
// function/accessor bodies real content are modeled here.
type Stmt interface {
	Span() position.Span
	stmt()
}

type stmtBase struct {
	Sp position.Span
}

func (s stmtBase) Span() position.Span { return s.Sp }
func (stmtBase) stmt()                 {}

// BraceStmt is a `{ ... }` block: a mixed list of declarations,
// statements, and expressions in source order. A type body's member
// list is the declaration-only special case of this.
type BraceStmt struct {
	stmtBase
	Elements []interface{} // Declaration | Stmt | Expr
}

// ExprStmt wraps a bare expression used as a statement.
type ExprStmt struct {
	stmtBase
	Value Expr
}

// ReturnStmt is `return Value?`.
type ReturnStmt struct {
	stmtBase
	Value Expr
}

// NewBraceStmt builds a brace-item-list block with an explicit span.
func NewBraceStmt(span position.Span, elements []interface{}) *BraceStmt {
	return &BraceStmt{stmtBase{span}, elements}
}

// NewExprStmt wraps value as a statement with an explicit span.
func NewExprStmt(span position.Span, value Expr) ExprStmt {
	return ExprStmt{stmtBase{span}, value}
}

// NewReturnStmt builds a `return` statement with an explicit span.
func NewReturnStmt(span position.Span, value Expr) ReturnStmt {
	return ReturnStmt{stmtBase{span}, value}
}

var (
	_ Stmt = BraceStmt{}
	_ Stmt = ExprStmt{}
	_ Stmt = ReturnStmt{}
)
