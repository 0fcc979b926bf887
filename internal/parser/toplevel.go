package parser

import (
	"github.com/vesper-lang/vesper/internal/ast"
	"github.com/vesper-lang/vesper/internal/diagnostic"
	"github.com/vesper-lang/vesper/internal/lexer"
)

// ParseTopLevel drives the whole file: it loops the declaration
// dispatcher over the file context, recognizes SIL top-level forms when
// SILMode is set, and — when AllowTopLevelCode permits it — wraps bare
// statements in a TopLevelCodeDecl the way a script file's members are
// recorded. It returns whether any executable top-level code was found.
func (p *Parser) ParseTopLevel() bool {
	ctx := p.FileContext()

	for {
		p.skipExtraTopLevelRBraces()
		if p.cur.Is(lexer.EOF) {
			break
		}

		if p.SILMode && isSILTopLevelKeyword(p.cur.Current().Type) {
			p.skipSILTopLevelForm()
			continue
		}

		if startsDeclaration(p.cur.Current()) {
			p.parseDeclaration(ctx.Flags)
			continue
		}

		if !p.AllowTopLevelCode {
			tok := p.cur.Current()
			p.report(diagnostic.New().Error().Declaration().Kind(diagnostic.UnexpectedDecl).
				Message("expected a declaration").At(tok.Span).Build())
			p.cur.SkipUntil(resyncTokens...)
			continue
		}

		item := p.parseBraceItem(ctx.Flags)
		if stmt, ok := item.(ast.Stmt); ok {
			tlc := p.arena.NewTopLevelCode(ctx, stmt.Span(), stmt)
			ctx.AddMember(tlc.Base())
			p.sawTopLevelCode = true
		}
	}

	return p.sawTopLevelCode
}

// skipExtraTopLevelRBraces consumes any run of spurious `}` tokens sitting
// at the top level, each with its own diagnostic, so a stray closing
// brace never stalls the driver.
func (p *Parser) skipExtraTopLevelRBraces() {
	for p.cur.Is(lexer.RBrace) {
		tok := p.cur.Current()
		p.report(diagnostic.New().Error().Recovery().Kind(diagnostic.ExtraRBrace).
			Message("extraneous '}' at top level").At(tok.Span).Build())
		p.cur.Advance()
	}
}

func isSILTopLevelKeyword(tt lexer.TokenType) bool {
	switch tt {
	case lexer.KwSIL, lexer.KwSILStage, lexer.KwSILVTable, lexer.KwSILGlobal:
		return true
	}
	return false
}

// skipSILTopLevelForm consumes one SIL top-level form. SIL instruction
// syntax itself is out of scope for this parser: the form is recognized
// and its balanced-brace body (if any) is skipped so the top-level loop
// can continue past it without losing positional sync.
func (p *Parser) skipSILTopLevelForm() {
	for !p.cur.Is(lexer.LBrace) && !p.cur.Is(lexer.Semicolon) && !p.cur.Is(lexer.EOF) {
		p.cur.Advance()
	}
	p.cur.ConsumeIf(lexer.Semicolon)
	if !p.cur.Is(lexer.LBrace) {
		return
	}
	depth := 0
	for {
		tok := p.cur.Current()
		if tok.Type == lexer.EOF {
			return
		}
		if tok.Type == lexer.LBrace {
			depth++
		}
		if tok.Type == lexer.RBrace {
			depth--
			p.cur.Advance()
			if depth == 0 {
				return
			}
			continue
		}
		p.cur.Advance()
	}
}
