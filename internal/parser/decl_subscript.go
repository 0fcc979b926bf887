package parser

import (
	"github.com/vesper-lang/vesper/internal/ast"
	"github.com/vesper-lang/vesper/internal/diagnostic"
	"github.com/vesper-lang/vesper/internal/lexer"
	"github.com/vesper-lang/vesper/internal/position"
)

// parseSubscriptDecl parses `subscript` `(` Indices `)` `->` Element `{`
// accessors `}`. Unlike a computed var, a subscript requires a `get`
// clause outside SIL mode; a body with only `set` is an error.
func (p *Parser) parseSubscriptDecl(flags ast.Flags, isStatic bool) *ast.Decl {
	start := p.cur.Advance() // 'subscript'

	if !flags.Has(ast.HasContainerType) {
		p.report(diagnostic.New().Error().Declaration().Kind(diagnostic.DisallowedDecl).
			Message("'subscript' is only allowed inside a type").At(position.Span{Start: start, End: start}).Build())
	}
	if isStatic {
		p.report(diagnostic.New().Error().Declaration().Kind(diagnostic.DisallowedDecl).
			Message("'subscript' cannot be static").At(position.Span{Start: start, End: start}).
			FixIt(diagnostic.RemoveFixIt(position.Span{Start: start, End: start})).Build())
	}

	if !p.cur.Is(lexer.LParen) {
		p.report(diagnostic.New().Error().Syntax().Kind(diagnostic.ExpectedToken).
			Message("expected '(' to begin a subscript index list").At(p.cur.Current().Span).Build())
	}
	indices := p.parsePattern(true)

	var elementType ast.TypeRepr
	if _, ok := p.cur.ConsumeExpected(lexer.Arrow); ok {
		elementType = p.parseType()
	} else {
		p.report(diagnostic.New().Error().Syntax().Kind(diagnostic.ExpectedToken).
			Message("expected '->' before a subscript's element type").At(p.cur.Current().Span).Build())
	}

	d := p.arena.NewSubscript(p.currentContext(), position.Span{Start: start})
	d.Indices = indices
	d.ElementType = elementType

	if p.cur.Is(lexer.LBrace) {
		getter, setter, setterParam := p.parseAccessorClauses(flags, elementType, "subscript")
		if getter == nil && !p.SILMode {
			p.report(diagnostic.New().Error().Declaration().Kind(diagnostic.DisallowedDecl).
				Message("subscript requires a 'get' accessor").At(position.Span{Start: start, End: start}).Build())
		}
		d.Getter, d.Setter, d.SetterParam = getter, setter, setterParam
	} else if !p.SILMode {
		p.report(diagnostic.New().Error().Declaration().Kind(diagnostic.MalformedBody).
			Message("expected an accessor block").At(p.cur.Current().Span).Build())
	}

	d.Span = position.Between(start, p.cur.PreviousLocation())
	return d.Base()
}
