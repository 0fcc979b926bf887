package parser

import (
	"strconv"

	"github.com/vesper-lang/vesper/internal/ast"
	"github.com/vesper-lang/vesper/internal/diagnostic"
	"github.com/vesper-lang/vesper/internal/lexer"
	"github.com/vesper-lang/vesper/internal/position"
)

// parseOperatorDecl parses `operator` one-of("prefix","postfix","infix")
// Op `{` body `}`. An infix body accepts `associativity` and
// `precedence`, each at most once; prefix/postfix bodies accept neither.
// Operator declarations are only meaningful at the top level.
func (p *Parser) parseOperatorDecl(flags ast.Flags) *ast.Decl {
	start := p.cur.Advance() // 'operator'

	if !flags.Has(ast.AllowTopLevel) {
		p.report(diagnostic.New().Error().Declaration().Kind(diagnostic.DisallowedDecl).
			Message("operator declarations are only allowed at the top level").
			At(position.Span{Start: start, End: start}).Build())
	}

	fixity := ast.FixityNone
	switch {
	case p.cur.Is(lexer.KwPrefix):
		p.cur.Advance()
		fixity = ast.FixityPrefix
	case p.cur.Is(lexer.KwPostfix):
		p.cur.Advance()
		fixity = ast.FixityPostfix
	case p.cur.Is(lexer.KwInfix):
		p.cur.Advance()
		fixity = ast.FixityInfix
	default:
		p.report(diagnostic.New().Error().Syntax().Kind(diagnostic.ExpectedToken).
			Message("expected 'prefix', 'postfix', or 'infix'").At(p.cur.Current().Span).Build())
	}

	name, ok := p.parseOperatorName()
	if !ok {
		return nil
	}

	d := p.arena.NewOperator(p.currentContext(), position.Span{Start: start}, name, fixity)

	if _, ok := p.cur.ConsumeExpected(lexer.LBrace); !ok {
		p.report(diagnostic.New().Error().Syntax().Kind(diagnostic.ExpectedToken).
			Message("expected '{' to begin an operator body").At(p.cur.Current().Span).Build())
		d.Span = position.Between(start, p.cur.PreviousLocation())
		return d.Base()
	}

	sawAssociativity, sawPrecedence := false, false
	for !p.cur.Is(lexer.RBrace) && !p.cur.Is(lexer.EOF) {
		switch {
		case p.cur.Is(lexer.KwAssociativity):
			loc := p.cur.Advance()
			if fixity != ast.FixityInfix {
				p.report(diagnostic.New().Error().Declaration().Kind(diagnostic.DisallowedDecl).
					Message("'associativity' is only allowed in an infix operator body").
					At(position.Span{Start: loc, End: loc}).Build())
			}
			if sawAssociativity {
				p.report(diagnostic.New().Error().Declaration().Kind(diagnostic.DuplicateAttribute).
					Message("duplicate 'associativity'").At(position.Span{Start: loc, End: loc}).Build())
			}
			sawAssociativity = true
			d.Associativity = p.parseAssociativityValue()
		case p.cur.Is(lexer.KwPrecedence):
			loc := p.cur.Advance()
			if fixity != ast.FixityInfix {
				p.report(diagnostic.New().Error().Declaration().Kind(diagnostic.DisallowedDecl).
					Message("'precedence' is only allowed in an infix operator body").
					At(position.Span{Start: loc, End: loc}).Build())
			}
			if sawPrecedence {
				p.report(diagnostic.New().Error().Declaration().Kind(diagnostic.DuplicateAttribute).
					Message("duplicate 'precedence'").At(position.Span{Start: loc, End: loc}).Build())
			}
			sawPrecedence = true
			d.Precedence = p.parsePrecedenceValue()
		default:
			p.report(diagnostic.New().Error().Declaration().Kind(diagnostic.UnexpectedDecl).
				Message("expected 'associativity' or 'precedence'").At(p.cur.Current().Span).Build())
			p.cur.SkipUntil(lexer.RBrace)
		}
	}

	if _, ok := p.cur.ConsumeExpected(lexer.RBrace); !ok {
		p.report(diagnostic.New().Error().Syntax().Kind(diagnostic.MalformedBody).
			Message("expected '}' to end an operator body").At(p.cur.Current().Span).Build())
	}

	d.Span = position.Between(start, p.cur.PreviousLocation())
	return d.Base()
}

// parseOperatorName consumes the operator token being declared. A
// postfix '!' is reserved for the built-in optional-unwrap operator and
// cannot be redeclared.
func (p *Parser) parseOperatorName() (string, bool) {
	tok := p.cur.Current()
	if tok.Type == lexer.Bang {
		p.report(diagnostic.New().Error().Declaration().Kind(diagnostic.DisallowedDecl).
			Message("'!' is a reserved operator and cannot be declared").At(tok.Span).Build())
		p.cur.Advance()
		return "!", false
	}
	if tok.Type != lexer.Operator {
		p.report(diagnostic.New().Error().Syntax().Kind(diagnostic.ExpectedToken).
			Message("expected an operator").At(tok.Span).Build())
		return "", false
	}
	p.cur.Advance()
	return tok.Text, true
}

func (p *Parser) parseAssociativityValue() ast.Associativity {
	switch {
	case p.cur.Is(lexer.KwNone):
		p.cur.Advance()
		return ast.AssocNone
	case p.cur.Is(lexer.KwLeft):
		p.cur.Advance()
		return ast.AssocLeft
	case p.cur.Is(lexer.KwRight):
		p.cur.Advance()
		return ast.AssocRight
	default:
		p.report(diagnostic.New().Error().Syntax().Kind(diagnostic.ExpectedToken).
			Message("expected 'none', 'left', or 'right'").At(p.cur.Current().Span).Build())
		return ast.AssocNone
	}
}

func (p *Parser) parsePrecedenceValue() int {
	tok, ok := p.cur.ConsumeIf(lexer.IntegerLiteral)
	if !ok {
		p.report(diagnostic.New().Error().Syntax().Kind(diagnostic.ExpectedToken).
			Message("expected a precedence level").At(p.cur.Current().Span).Build())
		return 100
	}
	n, err := strconv.Atoi(tok.Text)
	if err != nil || n < 0 {
		p.report(diagnostic.New().Error().Declaration().Kind(diagnostic.DisallowedDecl).
			Message("precedence must be a non-negative integer").At(tok.Span).Build())
		return 100
	}
	return n
}
