package parser

import (
	"github.com/vesper-lang/vesper/internal/ast"
	"github.com/vesper-lang/vesper/internal/diagnostic"
	"github.com/vesper-lang/vesper/internal/lexer"
	"github.com/vesper-lang/vesper/internal/position"
)

// parseTypeAliasDecl parses `typealias`/`associatedtype` name (:
// Inherited)? (= Type)?. In protocol context no `=` is allowed and the
// result is an associated-type declaration regardless of which keyword
// introduced it.
func (p *Parser) parseTypeAliasDecl(flags ast.Flags) *ast.Decl {
	start := p.cur.Advance() // 'typealias' or 'associatedtype'

	name, ok := p.parseDeclName("expected a type alias name")
	if !ok {
		return nil
	}

	inherited := p.parseInheritanceClause()

	if flags.Has(ast.InProtocol) {
		if p.cur.Is(lexer.Equal) {
			p.report(diagnostic.New().Error().Declaration().Kind(diagnostic.DisallowedDecl).
				Message("associated type cannot have an underlying type").At(p.cur.Current().Span).Build())
			p.cur.Advance()
			p.parseType()
		}
		d := p.arena.NewAssociatedType(p.currentContext(), position.Between(start, p.cur.PreviousLocation()), name, inherited)
		return d.Base()
	}

	var underlying ast.TypeRepr
	if _, ok := p.cur.ConsumeIf(lexer.Equal); ok {
		if flags.Has(ast.DisallowTypeAliasDef) {
			p.report(diagnostic.New().Error().Declaration().Kind(diagnostic.DisallowedDecl).
				Message("type alias cannot have an underlying type here").At(p.cur.Current().Span).Build())
		}
		underlying = p.parseType()
	}

	d := p.arena.NewTypeAlias(p.currentContext(), position.Between(start, p.cur.PreviousLocation()), name, inherited, underlying)
	return d.Base()
}
