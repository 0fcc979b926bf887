package parser

import (
	"github.com/vesper-lang/vesper/internal/ast"
	"github.com/vesper-lang/vesper/internal/diagnostic"
	"github.com/vesper-lang/vesper/internal/lexer"
	"github.com/vesper-lang/vesper/internal/position"
)

// parseDeinitDecl parses `deinit (`(` `)`)? { Body }`. A destructor
// takes no parameters; a non-empty parenthesized list is diagnosed and
// its contents removed by the fix-it rather than threaded anywhere.
func (p *Parser) parseDeinitDecl(flags ast.Flags) *ast.Decl {
	start := p.cur.Advance() // 'deinit'

	if !flags.Has(ast.AllowDestructor) {
		p.report(diagnostic.New().Error().Declaration().Kind(diagnostic.DisallowedDecl).
			Message("'deinit' is only allowed inside a class").At(position.Span{Start: start, End: start}).Build())
	}

	if open, ok := p.cur.ConsumeIf(lexer.LParen); ok {
		if !p.cur.Is(lexer.RParen) {
			for !p.cur.Is(lexer.RParen) && !p.cur.Is(lexer.EOF) {
				p.cur.Advance()
			}
			closeLoc := p.cur.Current().Span.Start
			p.report(diagnostic.New().Error().Declaration().Kind(diagnostic.DisallowedDecl).
				Message("'deinit' takes no parameters").At(position.Between(open.Span.Start, closeLoc)).
				FixIt(diagnostic.RemoveFixIt(position.Between(open.Span.End, closeLoc))).Build())
		}
		p.cur.ConsumeExpected(lexer.RParen)
	}

	d := p.arena.NewDeinit(p.currentContext(), position.Span{Start: start})

	if p.cur.Is(lexer.LBrace) {
		if p.delayBodies {
			p.registerDelayedBody(d, flags)
			d.BodyDelayed = true
		} else {
			release := p.stack.PushContext(p.currentContext().Nested(ast.ContextDestructor, flags))
			d.Body = p.parseBraceStmt(flags)
			release()
		}
	} else if !p.SILMode {
		p.report(diagnostic.New().Error().Declaration().Kind(diagnostic.MalformedBody).
			Message("expected a 'deinit' body").At(p.cur.Current().Span).Build())
	}

	d.Span = position.Between(start, p.cur.PreviousLocation())
	return d.Base()
}
