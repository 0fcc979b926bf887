package parser

import (
	"github.com/vesper-lang/vesper/internal/ast"
	"github.com/vesper-lang/vesper/internal/diagnostic"
	"github.com/vesper-lang/vesper/internal/lexer"
	"github.com/vesper-lang/vesper/internal/position"
)

// parseEnumDecl parses `enum` name genericParams? (`:` Inherited)? `{
// member* }`. When an inheritance clause is present, its first entry is
// taken as the raw-value type and the rest as protocol conformances,
// mirroring how a single-token inheritance list is read at a use site.
func (p *Parser) parseEnumDecl(flags ast.Flags) *ast.Decl {
	start := p.cur.Advance() // 'enum'

	if flags.Has(ast.DisallowNominalTypes) {
		p.report(diagnostic.New().Error().Declaration().Kind(diagnostic.DisallowedDecl).
			Message("nested type declarations are not allowed here").At(position.Span{Start: start, End: start}).Build())
	}

	name, ok := p.parseDeclName("expected an enum name")
	if !ok {
		return nil
	}

	var generics []ast.GenericParam
	if p.cur.StartsWithLess() {
		generics = p.parseGenericParamList()
	}

	inherited := p.parseInheritanceClause()
	var rawType ast.TypeRepr
	if len(inherited) > 0 {
		rawType, inherited = inherited[0], inherited[1:]
	}

	d := p.arena.NewEnum(p.currentContext(), position.Span{Start: start}, name, rawType, inherited)
	d.GenericParams = generics

	memberFlags := (flags | ast.HasContainerType | ast.AllowEnumElement | ast.DisallowStoredInstanceVar) &^ ast.AllowTopLevel
	release := p.stack.PushContext(p.currentContext().Nested(ast.ContextEnum, memberFlags))
	d.Members = p.parseMemberList(memberFlags)
	release()

	d.Span = position.Between(start, p.cur.PreviousLocation())
	return d.Base()
}

// parseEnumCaseDecl parses `case` element (`,` element)*, where each
// element is a name with an optional associated-type tuple or raw
// value. Raw values must be literal expressions, never an interpolated
// string.
func (p *Parser) parseEnumCaseDecl(flags ast.Flags) *ast.Decl {
	start := p.cur.Advance() // 'case'

	if !flags.Has(ast.AllowEnumElement) {
		p.report(diagnostic.New().Error().Declaration().Kind(diagnostic.DisallowedDecl).
			Message("'case' is only allowed inside an enum body").At(position.Span{Start: start, End: start}).Build())
	}

	d := p.arena.NewEnumCase(p.currentContext(), position.Span{Start: start})

	for {
		d.Elements = append(d.Elements, p.parseEnumElement())
		if _, ok := p.cur.ConsumeIf(lexer.Comma); ok {
			continue
		}
		break
	}

	d.Span = position.Between(start, p.cur.PreviousLocation())
	return d.Base()
}

func (p *Parser) parseEnumElement() *ast.EnumElement {
	start := p.cur.Current().Span.Start
	name, ok := p.parseDeclName("expected a case name")
	if !ok {
		name = "<error>"
	}

	var assoc []ast.TypeRepr
	if p.cur.Is(lexer.LParen) {
		assoc = p.parseAssociatedTypeTuple()
	}

	var raw ast.Expr
	if _, ok := p.cur.ConsumeIf(lexer.Equal); ok {
		raw = p.parseExpr()
		if str, isStr := raw.(ast.StringLiteralExpr); isStr && str.Interpolated {
			p.report(diagnostic.New().Error().Declaration().Kind(diagnostic.MalformedBody).
				Message("raw value cannot be an interpolated string").At(raw.Span()).Build())
		}
		if !isLiteralExpr(raw) {
			p.report(diagnostic.New().Error().Declaration().Kind(diagnostic.MalformedBody).
				Message("raw value must be a literal").At(raw.Span()).Build())
		}
	}

	return p.arena.NewEnumElement(p.currentContext(), position.Between(start, p.cur.PreviousLocation()), name, assoc, raw)
}

func isLiteralExpr(e ast.Expr) bool {
	switch e.(type) {
	case ast.IntLiteralExpr, ast.FloatLiteralExpr, ast.StringLiteralExpr, ast.BoolLiteralExpr:
		return true
	default:
		return false
	}
}

func (p *Parser) parseAssociatedTypeTuple() []ast.TypeRepr {
	p.cur.Advance() // '('
	var types []ast.TypeRepr
	if !p.cur.Is(lexer.RParen) {
		for {
			types = append(types, p.parseType())
			if _, ok := p.cur.ConsumeIf(lexer.Comma); ok {
				continue
			}
			break
		}
	}
	if _, ok := p.cur.ConsumeExpected(lexer.RParen); !ok {
		p.report(diagnostic.New().Error().Syntax().Kind(diagnostic.ExpectedToken).
			Message("expected ')' to close associated-value tuple").At(p.cur.Current().Span).Build())
	}
	return types
}
