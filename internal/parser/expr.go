package parser

import (
	"github.com/vesper-lang/vesper/internal/ast"
	"github.com/vesper-lang/vesper/internal/diagnostic"
	"github.com/vesper-lang/vesper/internal/lexer"
	"github.com/vesper-lang/vesper/internal/position"
)

// parseExpr parses the small expression grammar the declaration parser
// itself drives: attribute arguments, enum raw values, var/const
// initializers, and accessor bodies. A leading '-' on a literal is
// folded into the literal rather than producing a UnaryExpr, matching
// how enum raw values are represented. A trailing '=' turns the parsed
// expression into an assignment target, the shape a setter body's
// `self.x = v` takes.
func (p *Parser) parseExpr() ast.Expr {
	e := p.parsePostfix(p.parseUnary())
	if _, ok := p.cur.ConsumeIf(lexer.Equal); ok {
		value := p.parseExpr()
		return ast.NewAssignExpr(position.Between(e.Span().Start, value.Span().End), e, value)
	}
	return e
}

func (p *Parser) parseUnary() ast.Expr {
	if p.cur.Is(lexer.Operator) && p.cur.TextEquals("-") {
		start := p.cur.Current().Span.Start
		p.cur.Advance()
		switch tok := p.cur.Current(); tok.Type {
		case lexer.IntegerLiteral:
			p.cur.Advance()
			return ast.NewIntLiteralExpr(position.Between(start, p.cur.PreviousLocation()), tok.Text, true)
		case lexer.FloatLiteral:
			p.cur.Advance()
			return ast.NewFloatLiteralExpr(position.Between(start, p.cur.PreviousLocation()), tok.Text, true)
		default:
			operand := p.parseUnary()
			return ast.NewUnaryExpr(position.Between(start, operand.Span().End), "-", operand)
		}
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() ast.Expr {
	tok := p.cur.Current()
	switch tok.Type {
	case lexer.Identifier:
		p.cur.Advance()
		return ast.NewIdentExpr(tok.Span, tok.Text)
	case lexer.KwSelf:
		p.cur.Advance()
		return ast.NewIdentExpr(tok.Span, "self")
	case lexer.IntegerLiteral:
		p.cur.Advance()
		return ast.NewIntLiteralExpr(tok.Span, tok.Text, false)
	case lexer.FloatLiteral:
		p.cur.Advance()
		return ast.NewFloatLiteralExpr(tok.Span, tok.Text, false)
	case lexer.BoolLiteral:
		p.cur.Advance()
		return ast.NewBoolLiteralExpr(tok.Span, tok.Text == "true")
	case lexer.StringLiteral:
		p.cur.Advance()
		_, multi := p.classifyStringLiteral(tok)
		return ast.NewStringLiteralExpr(tok.Span, tok.Text, multi)
	case lexer.LParen:
		return p.parseTupleExpr()
	default:
		p.report(diagnostic.New().Error().Syntax().Kind(diagnostic.ExpectedToken).
			Message("expected an expression").At(tok.Span).Build())
		return ast.NewErrorExpr(tok.Span)
	}
}

// classifyStringLiteral reports whether tok carries more than one
// string segment, i.e. contains `\( ... \)` interpolation.
func (p *Parser) classifyStringLiteral(tok lexer.Token) (string, bool) {
	segs := p.cur.StringSegments(tok)
	return tok.Text, len(segs) > 1
}

func (p *Parser) parseTupleExpr() ast.Expr {
	start := p.cur.Current().Span.Start
	p.cur.Advance() // '('
	var elements []ast.Expr
	if !p.cur.Is(lexer.RParen) {
		for {
			elements = append(elements, p.parseExpr())
			if _, ok := p.cur.ConsumeIf(lexer.Comma); ok {
				continue
			}
			break
		}
	}
	if _, ok := p.cur.ConsumeExpected(lexer.RParen); !ok {
		p.report(diagnostic.New().Error().Syntax().Kind(diagnostic.ExpectedToken).
			Message("expected ')' to close expression list").At(p.cur.Current().Span).Build())
	}
	span := position.Between(start, p.cur.PreviousLocation())
	if len(elements) == 1 {
		return elements[0]
	}
	return ast.NewTupleExpr(span, elements)
}

func (p *Parser) parsePostfix(e ast.Expr) ast.Expr {
	for {
		switch {
		case p.cur.Is(lexer.Dot):
			p.cur.Advance()
			memberTok := p.cur.Current()
			if memberTok.Type != lexer.Identifier {
				p.report(diagnostic.New().Error().Syntax().Kind(diagnostic.ExpectedToken).
					Message("expected a member name after '.'").At(memberTok.Span).Build())
				return e
			}
			p.cur.Advance()
			e = ast.NewMemberExpr(position.Between(e.Span().Start, memberTok.Span.End), e, memberTok.Text)
		case p.cur.Is(lexer.LParen):
			args := p.parseCallArguments()
			e = ast.NewCallExpr(position.Between(e.Span().Start, p.cur.PreviousLocation()), e, args)
		default:
			return e
		}
	}
}

func (p *Parser) parseCallArguments() []ast.Expr {
	p.cur.Advance() // '('
	var args []ast.Expr
	if !p.cur.Is(lexer.RParen) {
		for {
			args = append(args, p.parseExpr())
			if _, ok := p.cur.ConsumeIf(lexer.Comma); ok {
				continue
			}
			break
		}
	}
	if _, ok := p.cur.ConsumeExpected(lexer.RParen); !ok {
		p.report(diagnostic.New().Error().Syntax().Kind(diagnostic.ExpectedToken).
			Message("expected ')' to close call arguments").At(p.cur.Current().Span).Build())
	}
	return args
}
