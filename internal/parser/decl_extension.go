package parser

import (
	"github.com/vesper-lang/vesper/internal/ast"
	"github.com/vesper-lang/vesper/internal/diagnostic"
	"github.com/vesper-lang/vesper/internal/position"
)

// parseExtensionDecl parses `extension` Type (: Inherited)? `{ decl* }`.
func (p *Parser) parseExtensionDecl(flags ast.Flags) *ast.Decl {
	start := p.cur.Advance() // 'extension'

	if !flags.Has(ast.AllowTopLevel) {
		p.report(diagnostic.New().Error().Declaration().Kind(diagnostic.DisallowedDecl).
			Message("extension is only allowed at the top level").At(position.Span{Start: start, End: start}).Build())
	}

	extended := p.parseType()
	inherited := p.parseInheritanceClause()

	d := p.arena.NewExtension(p.currentContext(), position.Span{Start: start}, extended, inherited)

	memberFlags := ast.HasContainerType | ast.DisallowStoredInstanceVar
	release := p.stack.PushContext(p.stack.Current().Nested(ast.ContextExtension, memberFlags))
	d.Members = p.parseMemberList(memberFlags)
	release()

	d.Span = position.Between(start, p.cur.PreviousLocation())
	return d.Base()
}
