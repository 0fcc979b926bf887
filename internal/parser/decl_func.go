package parser

import (
	"github.com/vesper-lang/vesper/internal/ast"
	"github.com/vesper-lang/vesper/internal/diagnostic"
	"github.com/vesper-lang/vesper/internal/lexer"
	"github.com/vesper-lang/vesper/internal/position"
)

// parseFuncDecl parses `func` name genericParams? paramClause (`->`
// Type)? body?. The name may be an identifier, a keyword recovered as
// one, or an operator token; if that operator token's text ends in '<'
// and the following token is an identifier, the trailing '<' is split
// off and reinjected as the opening of a generic parameter list (the
// `==<T>` case).
func (p *Parser) parseFuncDecl(flags ast.Flags, isStatic bool) *ast.Decl {
	start := p.cur.Advance() // 'func'

	if isStatic && !flags.Has(ast.HasContainerType) {
		p.report(diagnostic.New().Error().Declaration().Kind(diagnostic.DisallowedDecl).
			Message("static functions are not allowed at global scope").
			At(position.Span{Start: start, End: start}).
			FixIt(diagnostic.RemoveFixIt(position.Span{Start: start, End: start})).Build())
	}

	name, forcedGeneric := p.parseFuncName()

	var generics []ast.GenericParam
	if forcedGeneric || p.cur.StartsWithLess() {
		generics = p.parseGenericParamList()
	}

	if !p.cur.Is(lexer.LParen) {
		p.report(diagnostic.New().Error().Syntax().Kind(diagnostic.ExpectedToken).
			Message("expected '(' to begin a parameter list").At(p.cur.Current().Span).Build())
	}
	params := p.parseParamClause()

	var ret ast.TypeRepr
	if _, ok := p.cur.ConsumeIf(lexer.Arrow); ok {
		ret = p.parseType()
	}

	d := p.arena.NewFunc(p.currentContext(), position.Span{Start: start}, name, isStatic)
	d.GenericParams = generics
	d.Params = params
	d.ReturnType = ret

	if p.cur.Is(lexer.LBrace) {
		if flags.Has(ast.DisallowFuncDef) {
			p.report(diagnostic.New().Error().Declaration().Kind(diagnostic.DisallowedDecl).
				Message("function bodies are not allowed here").At(p.cur.Current().Span).Build())
			p.parseBraceStmt(flags)
		} else if p.delayBodies {
			p.registerDelayedBody(d, flags)
			d.BodyDelayed = true
		} else {
			release := p.stack.PushContext(p.currentContext().Nested(ast.ContextFunction, flags))
			d.Body = p.parseBraceStmt(flags)
			release()
		}
	} else if !flags.Has(ast.DisallowFuncDef) && !p.SILMode {
		p.report(diagnostic.New().Error().Declaration().Kind(diagnostic.MalformedBody).
			Message("expected a function body").At(p.cur.Current().Span).Build())
	}

	d.Span = position.Between(start, p.cur.PreviousLocation())
	return d.Base()
}

// parseFuncName consumes the declaration's name and reports whether a
// trailing '<' was split off it and reinjected as the current token.
func (p *Parser) parseFuncName() (name string, splitGeneric bool) {
	tok := p.cur.Current()

	if tok.Type == lexer.Operator && len(tok.Text) > 1 && tok.Text[len(tok.Text)-1] == '<' {
		next := p.cur.PeekAfterCurrent()
		if next.Type == lexer.Identifier {
			lessStart := tok.Span.End
			lessStart.Offset--
			lessStart.Column--
			p.cur.InjectToken(lexer.Token{Type: lexer.Operator, Text: "<", Span: position.Between(lessStart, tok.Span.End)})
			return tok.Text[:len(tok.Text)-1], true
		}
	}

	if tok.Type == lexer.Operator {
		p.cur.Advance()
		return tok.Text, false
	}

	n, ok := p.parseDeclName("expected a function name")
	if !ok {
		return "<error>", false
	}
	return n, false
}

// parseGenericParamList parses `<T, U: Constraint, ...>` after the
// opening '<' has already been recognized.
func (p *Parser) parseGenericParamList() []ast.GenericParam {
	if _, ok := p.cur.SplitLessPrefix(); !ok {
		return nil
	}
	var params []ast.GenericParam
	for {
		tok := p.cur.Current()
		if tok.Type != lexer.Identifier {
			p.report(diagnostic.New().Error().Syntax().Kind(diagnostic.ExpectedToken).
				Message("expected a generic parameter name").At(tok.Span).Build())
			break
		}
		p.cur.Advance()
		gp := ast.GenericParam{Name: tok.Text}
		if _, ok := p.cur.ConsumeIf(lexer.Colon); ok {
			gp.Constraint = p.parseType()
		}
		params = append(params, gp)
		if _, ok := p.cur.ConsumeIf(lexer.Comma); ok {
			continue
		}
		break
	}
	p.consumeGreaterThan()
	return params
}

// registerDelayedBody consumes the raw body tokens for later resumption
// instead of parsing them immediately.
func (p *Parser) registerDelayedBody(d ast.Declaration, flags ast.Flags) {
	bodyBegin := p.cur.Current().Span.Start
	suspended := p.stack.Suspend()

	depth := 0
	for {
		tok := p.cur.Current()
		if tok.Type == lexer.EOF {
			break
		}
		if tok.Type == lexer.LBrace {
			depth++
		}
		if tok.Type == lexer.RBrace {
			depth--
			if depth == 0 {
				p.cur.Advance()
				break
			}
		}
		p.cur.Advance()
	}
	bodyEndLoc := p.cur.PreviousLocation()
	bodyEndState := p.cur.SavePosition()

	p.delayed.registerBody(d, &delayedBody{
		bodyBegin:  bodyBegin,
		bodyEnd:    bodyEndState.lexState,
		bodyEndLoc: bodyEndLoc,
		scope:      suspended,
		context:    p.currentContext(),
		flags:      flags,
	})
}
