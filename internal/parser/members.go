package parser

import (
	"github.com/vesper-lang/vesper/internal/ast"
	"github.com/vesper-lang/vesper/internal/diagnostic"
	"github.com/vesper-lang/vesper/internal/lexer"
)

// parseMemberList parses `{ decl* }` for a struct/class/enum/protocol
// or extension body: declarations only, separated by either a `;` or a
// line break, never by expressions or statements.
func (p *Parser) parseMemberList(flags ast.Flags) []*ast.Decl {
	if _, ok := p.cur.ConsumeExpected(lexer.LBrace); !ok {
		p.report(diagnostic.New().Error().Syntax().Kind(diagnostic.ExpectedToken).
			Message("expected '{' to begin a member list").At(p.cur.Current().Span).Build())
		return nil
	}

	var members []*ast.Decl
	first := true
	prevHadSemicolon := false
	for !p.cur.Is(lexer.RBrace) && !p.cur.Is(lexer.EOF) {
		if !first && !prevHadSemicolon && !p.cur.AtStartOfLine() {
			p.report(diagnostic.New().Error().Syntax().Kind(diagnostic.MissingSemicolon).
				Message("consecutive declarations on a line require ';'").
				At(p.cur.Current().Span).
				FixIt(diagnostic.InsertFixIt(p.cur.Current().Span.Start, ";")).Build())
		}
		first = false

		d := p.parseDeclaration(flags)
		if d != nil {
			members = append(members, d)
		}
		_, prevHadSemicolon = p.cur.ConsumeIf(lexer.Semicolon)
	}

	if _, ok := p.cur.ConsumeExpected(lexer.RBrace); !ok {
		p.report(diagnostic.New().Error().Syntax().Kind(diagnostic.MalformedBody).
			Message("expected '}' to end a member list").At(p.cur.Current().Span).Build())
	}
	return members
}
