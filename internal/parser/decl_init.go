package parser

import (
	"github.com/vesper-lang/vesper/internal/ast"
	"github.com/vesper-lang/vesper/internal/diagnostic"
	"github.com/vesper-lang/vesper/internal/lexer"
	"github.com/vesper-lang/vesper/internal/position"
)

// parseInitDecl parses `init` genericParams? argPattern body?. The
// argument pattern carries the external labels callers use; the body
// pattern, derived from it, drops those labels since only the internal
// names are visible inside the body.
func (p *Parser) parseInitDecl(flags ast.Flags) *ast.Decl {
	start := p.cur.Advance() // 'init'

	if !flags.Has(ast.HasContainerType) {
		p.report(diagnostic.New().Error().Declaration().Kind(diagnostic.DisallowedDecl).
			Message("'init' is only allowed inside a type").At(position.Span{Start: start, End: start}).Build())
	}
	if flags.Has(ast.DisallowInit) {
		p.report(diagnostic.New().Error().Declaration().Kind(diagnostic.DisallowedDecl).
			Message("initializers are not allowed here").At(position.Span{Start: start, End: start}).Build())
	}

	var generics []ast.GenericParam
	if p.cur.StartsWithLess() {
		generics = p.parseGenericParamList()
	}

	if !p.cur.Is(lexer.LParen) {
		p.report(diagnostic.New().Error().Syntax().Kind(diagnostic.ExpectedToken).
			Message("expected '(' to begin an initializer argument list").At(p.cur.Current().Span).Build())
	}
	argPat := p.parsePattern(true)
	bodyPat := stripExternalNames(argPat)

	d := p.arena.NewInit(p.currentContext(), position.Span{Start: start})
	d.GenericParams = generics
	d.ArgPattern = argPat
	d.BodyPattern = bodyPat

	if p.cur.Is(lexer.LBrace) {
		if p.delayBodies {
			p.registerDelayedBody(d, flags)
			d.BodyDelayed = true
		} else {
			release := p.stack.PushContext(p.currentContext().Nested(ast.ContextConstructor, flags))
			d.Body = p.parseBraceStmt(flags)
			release()
		}
	} else if !p.SILMode {
		p.report(diagnostic.New().Error().Declaration().Kind(diagnostic.MalformedBody).
			Message("expected an initializer body").At(p.cur.Current().Span).Build())
	}

	d.Span = position.Between(start, p.cur.PreviousLocation())
	return d.Base()
}

// stripExternalNames copies pat with every ExternalName cleared,
// producing the pattern an initializer body sees (internal names only).
func stripExternalNames(pat ast.Pattern) ast.Pattern {
	switch v := pat.(type) {
	case ast.NamePattern:
		v.ExternalName = ""
		return v
	case ast.TuplePattern:
		elements := make([]ast.Pattern, len(v.Elements))
		for i, e := range v.Elements {
			elements[i] = stripExternalNames(e)
		}
		return ast.NewTuplePattern(v.Span(), elements)
	default:
		return pat
	}
}
