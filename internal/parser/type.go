package parser

import (
	"github.com/vesper-lang/vesper/internal/ast"
	"github.com/vesper-lang/vesper/internal/diagnostic"
	"github.com/vesper-lang/vesper/internal/lexer"
	"github.com/vesper-lang/vesper/internal/position"
)

// parseType parses a type-repr: the minimal grammar the declaration
// parser needs to read annotations, inheritance clauses, and function
// signatures without depending on a full expression-level type system.
func (p *Parser) parseType() ast.TypeRepr {
	start := p.cur.Current().Span.Start
	attrs := p.parseTypeAttributes()
	base := p.parseTypeAtom()
	base = p.parseTypeSuffixes(base)
	if attrs.Has(ast.TypeAttrInOut) || attrs.Has(ast.TypeAttrAutoClosure) || attrs.Has(ast.TypeAttrCC) {
		return ast.NewAttributedTypeRepr(position.Between(start, p.cur.PreviousLocation()), attrs, base)
	}
	return base
}

func (p *Parser) parseTypeAtom() ast.TypeRepr {
	if p.cur.Is(lexer.LParen) {
		return p.parseTupleOrFunctionType()
	}

	if p.cur.Is(lexer.LBracket) {
		start := p.cur.Current().Span.Start
		p.cur.Advance()
		elem := p.parseType()
		if _, ok := p.cur.ConsumeExpected(lexer.RBracket); !ok {
			p.report(diagnostic.New().Error().Syntax().Kind(diagnostic.ExpectedToken).
				Message("expected ']' to close array type").At(p.cur.Current().Span).Build())
		}
		return ast.NewArrayTypeRepr(position.Between(start, p.cur.PreviousLocation()), elem)
	}

	idTok := p.cur.Current()
	if idTok.Type != lexer.Identifier {
		p.report(diagnostic.New().Error().Syntax().Kind(diagnostic.ExpectedToken).
			Message("expected a type").At(idTok.Span).Build())
		return ast.NewErrorTypeRepr(idTok.Span)
	}
	p.cur.Advance()

	var genericArgs []ast.TypeRepr
	if p.cur.StartsWithLess() {
		genericArgs = p.parseGenericArgumentList()
	}

	end := p.cur.PreviousLocation()
	return ast.NewIdentTypeRepr(position.Between(idTok.Span.Start, end), idTok.Text, genericArgs)
}

// parseGenericArgumentList parses `<T, U, ...>` after the opening '<'
// has already been recognized via StartsWithLess; it splits the
// closing '>' the same way the opening '<' was split.
func (p *Parser) parseGenericArgumentList() []ast.TypeRepr {
	if _, ok := p.cur.SplitLessPrefix(); !ok {
		return nil
	}
	var args []ast.TypeRepr
	for {
		args = append(args, p.parseType())
		if _, ok := p.cur.ConsumeIf(lexer.Comma); ok {
			continue
		}
		break
	}
	p.consumeGreaterThan()
	return args
}

// consumeGreaterThan closes a generic argument/parameter list. A
// longer operator run beginning with '>' (e.g. ">=") is split the same
// way SplitLessPrefix splits an opening run, leaving the remainder as
// the new current token.
func (p *Parser) consumeGreaterThan() {
	tok := p.cur.Current()
	if tok.Type != lexer.Operator || len(tok.Text) == 0 || tok.Text[0] != '>' {
		p.report(diagnostic.New().Error().Syntax().Kind(diagnostic.ExpectedToken).
			Message("expected '>' to close generic argument list").At(tok.Span).Build())
		return
	}
	p.cur.SplitFirstByte()
}

func (p *Parser) parseTupleOrFunctionType() ast.TypeRepr {
	start := p.cur.Current().Span.Start
	p.cur.Advance() // '('
	var elements []ast.TypeRepr
	if !p.cur.Is(lexer.RParen) {
		for {
			elements = append(elements, p.parseType())
			if _, ok := p.cur.ConsumeIf(lexer.Comma); ok {
				continue
			}
			break
		}
	}
	if _, ok := p.cur.ConsumeExpected(lexer.RParen); !ok {
		p.report(diagnostic.New().Error().Syntax().Kind(diagnostic.ExpectedToken).
			Message("expected ')' to close type list").At(p.cur.Current().Span).Build())
	}

	if _, ok := p.cur.ConsumeIf(lexer.Arrow); ok {
		result := p.parseType()
		return ast.NewFunctionTypeRepr(position.Between(start, p.cur.PreviousLocation()), elements, result)
	}
	return ast.NewTupleTypeRepr(position.Between(start, p.cur.PreviousLocation()), elements)
}

func (p *Parser) parseTypeSuffixes(t ast.TypeRepr) ast.TypeRepr {
	for {
		if _, ok := p.cur.ConsumeIf(lexer.Question); ok {
			t = ast.NewOptionalTypeRepr(position.Between(t.Span().Start, p.cur.PreviousLocation()), t)
			continue
		}
		break
	}
	return t
}

// parseOptionalTypeAnnotation parses the `: Type` suffix used by
// patterns and parameters, returning nil if no ':' is present.
func (p *Parser) parseOptionalTypeAnnotation() ast.TypeRepr {
	if _, ok := p.cur.ConsumeIf(lexer.Colon); !ok {
		return nil
	}
	return p.parseType()
}

// parseInheritanceClause parses `: Type, Type, ...` after a nominal
// declaration's name (and generic parameter list, if any).
func (p *Parser) parseInheritanceClause() []ast.TypeRepr {
	if _, ok := p.cur.ConsumeIf(lexer.Colon); !ok {
		return nil
	}
	var types []ast.TypeRepr
	for {
		types = append(types, p.parseType())
		if _, ok := p.cur.ConsumeIf(lexer.Comma); ok {
			continue
		}
		break
	}
	return types
}
