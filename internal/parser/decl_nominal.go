package parser

import (
	"github.com/vesper-lang/vesper/internal/ast"
	"github.com/vesper-lang/vesper/internal/diagnostic"
	"github.com/vesper-lang/vesper/internal/position"
)

// parseNominalHeader parses the `name genericParams? (: Inherited)?`
// shared by struct/class/enum/protocol declarations.
func (p *Parser) parseNominalHeader(what string) (name string, generics []ast.GenericParam, inherited []ast.TypeRepr, ok bool) {
	name, ok = p.parseDeclName("expected a " + what + " name")
	if !ok {
		return "", nil, nil, false
	}
	if p.cur.StartsWithLess() {
		generics = p.parseGenericParamList()
	}
	inherited = p.parseInheritanceClause()
	return name, generics, inherited, true
}

// parseStructDecl parses `struct` name genericParams? (: Inherited)? `{
// member* }`.
func (p *Parser) parseStructDecl(flags ast.Flags) *ast.Decl {
	start := p.cur.Advance() // 'struct'
	if flags.Has(ast.DisallowNominalTypes) {
		p.reportDisallowedNominal(start)
	}
	name, generics, inherited, ok := p.parseNominalHeader("struct")
	if !ok {
		return nil
	}

	d := p.arena.NewStruct(p.currentContext(), position.Span{Start: start}, name, inherited)
	d.GenericParams = generics

	memberFlags := (flags | ast.HasContainerType) &^ (ast.AllowTopLevel | ast.AllowEnumElement | ast.AllowDestructor)
	release := p.stack.PushContext(p.currentContext().Nested(ast.ContextStruct, memberFlags))
	d.Members = p.parseMemberList(memberFlags)
	release()

	d.Span = position.Between(start, p.cur.PreviousLocation())
	return d.Base()
}

// parseClassDecl parses `class` name genericParams? (: Inherited)? `{
// member* }`; class bodies additionally permit destructors.
func (p *Parser) parseClassDecl(flags ast.Flags) *ast.Decl {
	start := p.cur.Advance() // 'class'
	if flags.Has(ast.DisallowNominalTypes) {
		p.reportDisallowedNominal(start)
	}
	name, generics, inherited, ok := p.parseNominalHeader("class")
	if !ok {
		return nil
	}

	d := p.arena.NewClass(p.currentContext(), position.Span{Start: start}, name, inherited)
	d.GenericParams = generics

	memberFlags := (flags | ast.HasContainerType | ast.AllowDestructor) &^ (ast.AllowTopLevel | ast.AllowEnumElement)
	release := p.stack.PushContext(p.currentContext().Nested(ast.ContextClass, memberFlags))
	d.Members = p.parseMemberList(memberFlags)
	release()

	d.Span = position.Between(start, p.cur.PreviousLocation())
	return d.Base()
}

// parseProtocolDecl parses `protocol` name (: Inherited)? `{ member* }`.
// Protocol bodies disallow computed vars, function bodies, nested
// nominal types, initializers, and type-alias definitions, and treat
// type aliases as associated types.
func (p *Parser) parseProtocolDecl(flags ast.Flags) *ast.Decl {
	start := p.cur.Advance() // 'protocol'
	if flags.Has(ast.DisallowNominalTypes) {
		p.reportDisallowedNominal(start)
	}
	name, _, inherited, ok := p.parseNominalHeader("protocol")
	if !ok {
		return nil
	}

	d := p.arena.NewProtocol(p.currentContext(), position.Span{Start: start}, name, inherited)

	memberFlags := (flags | ast.HasContainerType | ast.DisallowComputedVar | ast.DisallowFuncDef |
		ast.DisallowNominalTypes | ast.DisallowInit | ast.DisallowTypeAliasDef | ast.InProtocol |
		ast.DisallowStoredInstanceVar) &^
		(ast.AllowTopLevel | ast.AllowEnumElement | ast.AllowDestructor)
	release := p.stack.PushContext(p.currentContext().Nested(ast.ContextProtocol, memberFlags))
	d.Members = p.parseMemberList(memberFlags)
	release()

	d.Span = position.Between(start, p.cur.PreviousLocation())
	return d.Base()
}

func (p *Parser) reportDisallowedNominal(at position.Position) {
	p.report(diagnostic.New().Error().Declaration().Kind(diagnostic.DisallowedDecl).
		Message("nested type declarations are not allowed here").At(position.Span{Start: at, End: at}).Build())
}
