package parser

import (
	"github.com/vesper-lang/vesper/internal/ast"
	"github.com/vesper-lang/vesper/internal/diagnostic"
	"github.com/vesper-lang/vesper/internal/lexer"
	"github.com/vesper-lang/vesper/internal/position"
)

var importKindKeywords = map[lexer.TokenType]ast.ImportKind{
	lexer.KwTypealias: ast.ImportTypeAlias,
	lexer.KwStruct:    ast.ImportStruct,
	lexer.KwClass:     ast.ImportClass,
	lexer.KwEnum:      ast.ImportEnum,
	lexer.KwProtocol:  ast.ImportProtocol,
	lexer.KwVar:       ast.ImportVar,
	lexer.KwFunc:      ast.ImportFunc,
}

// parseImportDecl parses `import` [kind] path(.path)*. A kind keyword
// requires at least two path segments; only the `exported` attribute is
// meaningful here, everything else on the attribute list is rejected.
func (p *Parser) parseImportDecl(flags ast.Flags, attrs ast.DeclAttributes) *ast.Decl {
	start := p.cur.Advance() // 'import'

	if !flags.Has(ast.AllowTopLevel) {
		p.report(diagnostic.New().Error().Declaration().Kind(diagnostic.DisallowedDecl).
			Message("import is only allowed at the top level").At(position.Span{Start: start, End: start}).Build())
	}

	p.rejectAttributesExcept(attrs, ast.AttrExported, "import")

	kind := ast.ImportModule
	minSegments := 1
	if k, ok := importKindKeywords[p.cur.Current().Type]; ok {
		kind = k
		minSegments = 2
		p.cur.Advance()
	}

	var path []string
	for {
		tok := p.cur.Current()
		if tok.Type != lexer.Identifier {
			p.report(diagnostic.New().Error().Syntax().Kind(diagnostic.ExpectedToken).
				Message("expected a module or symbol name").At(tok.Span).Build())
			break
		}
		p.cur.Advance()
		path = append(path, tok.Text)
		if _, ok := p.cur.ConsumeIf(lexer.Dot); ok {
			continue
		}
		break
	}

	if len(path) < minSegments {
		p.report(diagnostic.New().Error().Declaration().Kind(diagnostic.MalformedBody).
			Message("import of a specific %s requires a full path", kindName(kind)).
			At(position.Span{Start: start, End: p.cur.PreviousLocation()}).Build())
	}

	end := p.cur.PreviousLocation()
	d := p.arena.NewImport(p.currentContext(), position.Between(start, end), kind, path, attrs.Has(ast.AttrExported))
	return d.Base()
}

func kindName(k ast.ImportKind) string {
	switch k {
	case ast.ImportTypeAlias:
		return "typealias"
	case ast.ImportStruct:
		return "struct"
	case ast.ImportClass:
		return "class"
	case ast.ImportEnum:
		return "enum"
	case ast.ImportProtocol:
		return "protocol"
	case ast.ImportVar:
		return "var"
	case ast.ImportFunc:
		return "func"
	default:
		return "module"
	}
}

// rejectAttributesExcept diagnoses every attribute present in attrs
// other than allowed, for declarations with a narrow attribute surface.
func (p *Parser) rejectAttributesExcept(attrs ast.DeclAttributes, allowed ast.DeclAttributeKind, declKind string) {
	for k := ast.DeclAttributeKind(0); k < ast.NumDeclAttrs; k++ {
		if k == allowed || !attrs.Has(k) {
			continue
		}
		loc := attrs.Loc(k)
		p.report(diagnostic.New().Error().Attribute().Kind(diagnostic.WrongKindAttribute).
			Message("this attribute is not valid on a %s declaration", declKind).
			At(position.Span{Start: loc, End: loc}).Build())
	}
}
