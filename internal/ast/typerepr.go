package ast

import "github.com/vesper-lang/vesper/internal/position"

// TypeRepr is the opaque handle the type-parsing peer subsystem
// returns. This module implements only the minimal grammar the
// declaration parser itself must drive (identifiers with optional
// generic arguments, inheritance lists, simple composites) — a full
// type grammar is invoked as a black box and explicitly out of scope.
type TypeRepr interface {
	Span() position.Span
	typeRepr()
}

type typeReprBase struct {
	Sp position.Span
}

func (t typeReprBase) Span() position.Span { return t.Sp }
func (typeReprBase) typeRepr()             {}

// IdentTypeRepr is a (possibly qualified, possibly generic) named type,
// e.g. `Int`, `Array<T>`.
type IdentTypeRepr struct {
	typeReprBase
	Name        string
	GenericArgs []TypeRepr
}

// TupleTypeRepr is `(T, U, ...)`.
type TupleTypeRepr struct {
	typeReprBase
	Elements []TypeRepr
}

// FunctionTypeRepr is `(Params) -> Result`.
type FunctionTypeRepr struct {
	typeReprBase
	Params []TypeRepr
	Result TypeRepr
}

// OptionalTypeRepr is `T?`.
type OptionalTypeRepr struct {
	typeReprBase
	Wrapped TypeRepr
}

// ArrayTypeRepr is `[T]`.
type ArrayTypeRepr struct {
	typeReprBase
	Element TypeRepr
}

// ErrorTypeRepr stands in for a type that failed to parse, so callers
// can keep building an AST instead of aborting.
type ErrorTypeRepr struct {
	typeReprBase
}

// AttributedTypeRepr attaches a parsed TypeAttributes set to an
// underlying type-repr.
type AttributedTypeRepr struct {
	typeReprBase
	Attributes TypeAttributes
	Underlying TypeRepr
}

// NewIdentTypeRepr builds a named type-repr with an explicit span.
func NewIdentTypeRepr(span position.Span, name string, genericArgs []TypeRepr) IdentTypeRepr {
	return IdentTypeRepr{typeReprBase{span}, name, genericArgs}
}

// NewTupleTypeRepr builds a tuple type-repr with an explicit span.
func NewTupleTypeRepr(span position.Span, elements []TypeRepr) TupleTypeRepr {
	return TupleTypeRepr{typeReprBase{span}, elements}
}

// NewFunctionTypeRepr builds a function type-repr with an explicit span.
func NewFunctionTypeRepr(span position.Span, params []TypeRepr, result TypeRepr) FunctionTypeRepr {
	return FunctionTypeRepr{typeReprBase{span}, params, result}
}

// NewOptionalTypeRepr builds an optional type-repr with an explicit span.
func NewOptionalTypeRepr(span position.Span, wrapped TypeRepr) OptionalTypeRepr {
	return OptionalTypeRepr{typeReprBase{span}, wrapped}
}

// NewArrayTypeRepr builds an array type-repr with an explicit span.
func NewArrayTypeRepr(span position.Span, element TypeRepr) ArrayTypeRepr {
	return ArrayTypeRepr{typeReprBase{span}, element}
}

// NewErrorTypeRepr builds a placeholder type-repr for a failed parse.
func NewErrorTypeRepr(span position.Span) ErrorTypeRepr {
	return ErrorTypeRepr{typeReprBase{span}}
}

// NewAttributedTypeRepr attaches a parsed attribute set to underlying.
func NewAttributedTypeRepr(span position.Span, attrs TypeAttributes, underlying TypeRepr) AttributedTypeRepr {
	return AttributedTypeRepr{typeReprBase{span}, attrs, underlying}
}

var (
	_ TypeRepr = IdentTypeRepr{}
	_ TypeRepr = TupleTypeRepr{}
	_ TypeRepr = FunctionTypeRepr{}
	_ TypeRepr = OptionalTypeRepr{}
	_ TypeRepr = ArrayTypeRepr{}
	_ TypeRepr = ErrorTypeRepr{}
	_ TypeRepr = AttributedTypeRepr{}
)
