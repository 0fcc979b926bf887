package ast

import "github.com/vesper-lang/vesper/internal/position"

// Expr is the opaque handle the expression-parsing peer subsystem
// returns. This module implements only the minimal grammar the
// declaration parser itself drives: attribute arguments, enum raw
// values, and var/const initializers.
type Expr interface {
	Span() position.Span
	expr()
}

type exprBase struct {
	Sp position.Span
}

func (e exprBase) Span() position.Span { return e.Sp }
func (exprBase) expr()                 {}

// IdentExpr references a name.
type IdentExpr struct {
	exprBase
	Name string
}

// IntLiteralExpr is an integer literal, optionally negative (enum raw
// values allow a leading '-').
type IntLiteralExpr struct {
	exprBase
	Text     string
	Negative bool
}

// FloatLiteralExpr is a floating-point literal, optionally negative.
type FloatLiteralExpr struct {
	exprBase
	Text     string
	Negative bool
}

// StringLiteralExpr is a string literal. Interpolated marks whether it
// had more than one segment.
type StringLiteralExpr struct {
	exprBase
	Value         string
	Interpolated bool
}

// BoolLiteralExpr is `true` or `false`.
type BoolLiteralExpr struct {
	exprBase
	Value bool
}

// UnaryExpr is `Op Operand`.
type UnaryExpr struct {
	exprBase
	Op      string
	Operand Expr
}

// BinaryExpr is `Left Op Right`.
type BinaryExpr struct {
	exprBase
	Op    string
	Left  Expr
	Right Expr
}

// CallExpr is `Callee(Args...)`.
type CallExpr struct {
	exprBase
	Callee Expr
	Args   []Expr
}

// MemberExpr is `Base.Member`.
type MemberExpr struct {
	exprBase
	Base   Expr
	Member string
}

// TupleExpr is `(E1, E2, ...)`.
type TupleExpr struct {
	exprBase
	Elements []Expr
}

// ErrorExpr stands in for an expression that failed to parse.
type ErrorExpr struct {
	exprBase
}

// AssignExpr is `Target = Value`, the shape a setter body's `self.x =
// v` takes.
type AssignExpr struct {
	exprBase
	Target Expr
	Value  Expr
}

// NewIdentExpr builds a name reference with an explicit span.
func NewIdentExpr(span position.Span, name string) IdentExpr {
	return IdentExpr{exprBase{span}, name}
}

// NewIntLiteralExpr builds an integer literal with an explicit span.
func NewIntLiteralExpr(span position.Span, text string, negative bool) IntLiteralExpr {
	return IntLiteralExpr{exprBase{span}, text, negative}
}

// NewFloatLiteralExpr builds a float literal with an explicit span.
func NewFloatLiteralExpr(span position.Span, text string, negative bool) FloatLiteralExpr {
	return FloatLiteralExpr{exprBase{span}, text, negative}
}

// NewStringLiteralExpr builds a string literal with an explicit span.
func NewStringLiteralExpr(span position.Span, value string, interpolated bool) StringLiteralExpr {
	return StringLiteralExpr{exprBase{span}, value, interpolated}
}

// NewBoolLiteralExpr builds a bool literal with an explicit span.
func NewBoolLiteralExpr(span position.Span, value bool) BoolLiteralExpr {
	return BoolLiteralExpr{exprBase{span}, value}
}

// NewUnaryExpr builds a unary-operator expression with an explicit span.
func NewUnaryExpr(span position.Span, op string, operand Expr) UnaryExpr {
	return UnaryExpr{exprBase{span}, op, operand}
}

// NewBinaryExpr builds a binary-operator expression with an explicit span.
func NewBinaryExpr(span position.Span, op string, left, right Expr) BinaryExpr {
	return BinaryExpr{exprBase{span}, op, left, right}
}

// NewCallExpr builds a call expression with an explicit span.
func NewCallExpr(span position.Span, callee Expr, args []Expr) CallExpr {
	return CallExpr{exprBase{span}, callee, args}
}

// NewMemberExpr builds a member-access expression with an explicit span.
func NewMemberExpr(span position.Span, base Expr, member string) MemberExpr {
	return MemberExpr{exprBase{span}, base, member}
}

// NewTupleExpr builds a tuple expression with an explicit span.
func NewTupleExpr(span position.Span, elements []Expr) TupleExpr {
	return TupleExpr{exprBase{span}, elements}
}

// NewErrorExpr builds a placeholder expression for a failed parse.
func NewErrorExpr(span position.Span) ErrorExpr {
	return ErrorExpr{exprBase{span}}
}

// NewAssignExpr builds an assignment expression with an explicit span.
func NewAssignExpr(span position.Span, target, value Expr) AssignExpr {
	return AssignExpr{exprBase{span}, target, value}
}

var (
	_ Expr = IdentExpr{}
	_ Expr = IntLiteralExpr{}
	_ Expr = FloatLiteralExpr{}
	_ Expr = StringLiteralExpr{}
	_ Expr = BoolLiteralExpr{}
	_ Expr = UnaryExpr{}
	_ Expr = BinaryExpr{}
	_ Expr = CallExpr{}
	_ Expr = MemberExpr{}
	_ Expr = TupleExpr{}
	_ Expr = ErrorExpr{}
	_ Expr = AssignExpr{}
)
