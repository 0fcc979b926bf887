package ast

import "github.com/vesper-lang/vesper/internal/position"

// Pattern is the opaque handle the pattern-parsing peer subsystem
// returns. Only the shapes the declaration grammar itself needs are
// modeled here: names with an optional type annotation, tuples of
// patterns, and the wildcard `_`.
type Pattern interface {
	Span() position.Span
	pattern()
}

type patternBase struct {
	Sp position.Span
}

func (p patternBase) Span() position.Span { return p.Sp }
func (patternBase) pattern()              {}

// NamePattern binds a single name, with an optional type annotation.
type NamePattern struct {
	patternBase
	Name       string
	Type       TypeRepr
	ExternalName string // "" if none; used by constructor/func argument patterns
	IsMutable  bool
}

// TuplePattern is `(P1, P2, ...)`.
type TuplePattern struct {
	patternBase
	Elements []Pattern
}

// WildcardPattern is `_`.
type WildcardPattern struct {
	patternBase
}

// NewNamePattern builds a name-binding pattern with an explicit span.
func NewNamePattern(span position.Span, name string, typ TypeRepr, externalName string, isMutable bool) NamePattern {
	return NamePattern{patternBase{span}, name, typ, externalName, isMutable}
}

// NewTuplePattern builds a tuple pattern with an explicit span.
func NewTuplePattern(span position.Span, elements []Pattern) TuplePattern {
	return TuplePattern{patternBase{span}, elements}
}

// NewWildcardPattern builds a `_` pattern with an explicit span.
func NewWildcardPattern(span position.Span) WildcardPattern {
	return WildcardPattern{patternBase{span}}
}

var (
	_ Pattern = NamePattern{}
	_ Pattern = TuplePattern{}
	_ Pattern = WildcardPattern{}
)
