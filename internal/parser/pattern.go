package parser

import (
	"github.com/vesper-lang/vesper/internal/ast"
	"github.com/vesper-lang/vesper/internal/diagnostic"
	"github.com/vesper-lang/vesper/internal/lexer"
	"github.com/vesper-lang/vesper/internal/position"
)

// parsePattern parses a var/let binding pattern or a constructor
// argument-list element: `_`, a single name (with an optional external
// label when withExternalName is set), or a parenthesized tuple of
// patterns. A name or `_` pattern may carry a trailing `: Type`
// annotation; a tuple pattern takes no annotation of its own.
func (p *Parser) parsePattern(withExternalName bool) ast.Pattern {
	if p.cur.Is(lexer.LParen) {
		return p.parseTuplePattern(withExternalName)
	}

	start := p.cur.Current().Span.Start

	nameTok := p.cur.Current()
	if nameTok.Type != lexer.Identifier {
		p.report(diagnostic.New().Error().Syntax().Kind(diagnostic.ExpectedToken).
			Message("expected a pattern").At(nameTok.Span).Build())
		return ast.NewWildcardPattern(nameTok.Span)
	}
	p.cur.Advance()

	if nameTok.Text == "_" && !withExternalName {
		return p.attachTypeAnnotation(ast.NewWildcardPattern(position.Between(start, p.cur.PreviousLocation())))
	}

	name := nameTok.Text
	var external string
	if withExternalName {
		if second, ok := p.cur.ConsumeIf(lexer.Identifier); ok {
			external = name
			name = second.Text
		} else if name == "_" {
			external = "_"
			if third, ok := p.cur.ConsumeIf(lexer.Identifier); ok {
				name = third.Text
			}
		}
	}

	pat := ast.NewNamePattern(position.Between(start, p.cur.PreviousLocation()), name, nil, external, true)
	return p.attachTypeAnnotationTo(pat)
}

func (p *Parser) attachTypeAnnotationTo(pat ast.NamePattern) ast.Pattern {
	if t := p.parseOptionalTypeAnnotation(); t != nil {
		pat.Type = t
		pat.Sp = position.Between(pat.Sp.Start, p.cur.PreviousLocation())
	}
	return pat
}

func (p *Parser) attachTypeAnnotation(pat ast.Pattern) ast.Pattern {
	if name, ok := pat.(ast.NamePattern); ok {
		return p.attachTypeAnnotationTo(name)
	}
	// A non-name pattern (wildcard/tuple) can still carry an
	// annotation; the annotation is parsed and discarded onto the
	// caller's context by wrapping is not modeled beyond names in this
	// module, so a wildcard's own annotation is simply consumed here.
	p.parseOptionalTypeAnnotation()
	return pat
}

func (p *Parser) parseTuplePattern(withExternalName bool) ast.Pattern {
	start := p.cur.Current().Span.Start
	p.cur.Advance() // '('
	var elements []ast.Pattern
	if !p.cur.Is(lexer.RParen) {
		for {
			elements = append(elements, p.parsePattern(withExternalName))
			if _, ok := p.cur.ConsumeIf(lexer.Comma); ok {
				continue
			}
			break
		}
	}
	if _, ok := p.cur.ConsumeExpected(lexer.RParen); !ok {
		p.report(diagnostic.New().Error().Syntax().Kind(diagnostic.ExpectedToken).
			Message("expected ')' to close tuple pattern").At(p.cur.Current().Span).Build())
	}
	return ast.NewTuplePattern(position.Between(start, p.cur.PreviousLocation()), elements)
}

// parseParamClause parses a function/subscript/init-style flat
// parameter list: `(extName? name: Type, ...)`. An external name of
// `_` means the argument is unlabeled at call sites.
func (p *Parser) parseParamClause() []ast.Param {
	if _, ok := p.cur.ConsumeExpected(lexer.LParen); !ok {
		p.report(diagnostic.New().Error().Syntax().Kind(diagnostic.ExpectedToken).
			Message("expected '(' to begin parameter list").At(p.cur.Current().Span).Build())
		return nil
	}
	var params []ast.Param
	if !p.cur.Is(lexer.RParen) {
		for {
			params = append(params, p.parseOneParam())
			if _, ok := p.cur.ConsumeIf(lexer.Comma); ok {
				continue
			}
			break
		}
	}
	if _, ok := p.cur.ConsumeExpected(lexer.RParen); !ok {
		p.report(diagnostic.New().Error().Syntax().Kind(diagnostic.ExpectedToken).
			Message("expected ')' to close parameter list").At(p.cur.Current().Span).Build())
	}
	return params
}

func (p *Parser) parseOneParam() ast.Param {
	first := p.cur.Current()
	if first.Type != lexer.Identifier {
		p.report(diagnostic.New().Error().Syntax().Kind(diagnostic.ExpectedToken).
			Message("expected a parameter name").At(first.Span).Build())
		p.cur.SkipUntil(lexer.Comma, lexer.RParen)
		return ast.Param{Name: "_"}
	}
	p.cur.Advance()

	external, name := "", first.Text
	if second, ok := p.cur.ConsumeIf(lexer.Identifier); ok {
		external, name = first.Text, second.Text
	}

	var typ ast.TypeRepr
	if t := p.parseOptionalTypeAnnotation(); t != nil {
		typ = t
	}
	return ast.Param{ExternalName: external, Name: name, Type: typ}
}
