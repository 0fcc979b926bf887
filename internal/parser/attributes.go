package parser

import (
	"github.com/vesper-lang/vesper/internal/ast"
	"github.com/vesper-lang/vesper/internal/diagnostic"
	"github.com/vesper-lang/vesper/internal/lexer"
	"github.com/vesper-lang/vesper/internal/position"
)

// parseDeclAttributes consumes a `@name` / `@name(...)` / `@name=value`
// list and returns the resulting attribute set. Commas between entries
// are optional; any `@` continues the list.
func (p *Parser) parseDeclAttributes() ast.DeclAttributes {
	var attrs ast.DeclAttributes
	for {
		if !p.cur.Is(lexer.At) {
			break
		}
		p.parseOneDeclAttribute(&attrs)
		p.cur.ConsumeIf(lexer.Comma)
	}
	return attrs
}

func (p *Parser) parseOneDeclAttribute(attrs *ast.DeclAttributes) {
	at := p.cur.Advance()
	nameTok := p.cur.Current()
	if !p.cur.Is(lexer.Identifier) && !lexer.IsKeywordToken(nameTok.Type) {
		p.report(diagnostic.New().Error().Attribute().Kind(diagnostic.ExpectedToken).
			Message("expected attribute name after '@'").At(nameTok.Span).Build())
		return
	}
	p.cur.Advance()
	name := nameTok.Text

	if kind, isDecl := ast.DeclAttributeByName(name); isDecl {
		p.applyDeclAttribute(attrs, kind, at)
		return
	}

	if _, isType := ast.TypeAttributeByName(name); isType {
		p.report(diagnostic.New().Error().Attribute().Kind(diagnostic.WrongKindAttribute).
			Message("'%s' is a type attribute, not a declaration attribute", name).At(nameTok.Span).Build())
		p.skipAttributeTail()
		return
	}

	p.report(diagnostic.New().Error().Attribute().Kind(diagnostic.UnknownAttribute).
		Message("unknown attribute '%s'", name).At(nameTok.Span).Build())
	p.skipAttributeTail()
}

// skipAttributeTail consumes an optional `=value` or `(...)` tail after
// an attribute name that was rejected, so the cursor lands past it.
func (p *Parser) skipAttributeTail() {
	if _, ok := p.cur.ConsumeIf(lexer.Equal); ok {
		p.cur.Advance()
		return
	}
	if p.cur.Is(lexer.LParen) {
		p.cur.Advance()
		depth := 1
		for depth > 0 && !p.cur.Is(lexer.EOF) {
			switch p.cur.Current().Type {
			case lexer.LParen:
				depth++
			case lexer.RParen:
				depth--
			}
			p.cur.Advance()
		}
	}
}

func (p *Parser) applyDeclAttribute(attrs *ast.DeclAttributes, kind ast.DeclAttributeKind, at position.Position) {
	switch kind {
	case ast.AttrWeak, ast.AttrUnowned:
		p.setOwnership(attrs, kind, at)
	case ast.AttrResilient, ast.AttrFragile, ast.AttrBornFragile:
		p.setResilience(attrs, kind, at)
	case ast.AttrPrefix:
		p.setExclusive(attrs, ast.AttrPrefix, ast.AttrPostfix, at)
	case ast.AttrPostfix:
		p.setExclusive(attrs, ast.AttrPostfix, ast.AttrPrefix, at)
	case ast.AttrAsmName:
		p.parseAsmName(attrs, at)
	default:
		if attrs.Set(kind, at) {
			p.reportDuplicate(at)
		}
	}
}

func (p *Parser) setOwnership(attrs *ast.DeclAttributes, kind ast.DeclAttributeKind, at position.Position) {
	opposite := ast.AttrUnowned
	if kind == ast.AttrUnowned {
		opposite = ast.AttrWeak
	}
	if attrs.Has(opposite) {
		p.report(diagnostic.New().Error().Attribute().Kind(diagnostic.CombineAttribute).
			Message("an ownership attribute is already set").At(position.Span{Start: at, End: at}).Build())
		return
	}
	if attrs.Set(kind, at) {
		p.reportDuplicate(at)
	}
}

func (p *Parser) setResilience(attrs *ast.DeclAttributes, kind ast.DeclAttributeKind, at position.Position) {
	for _, other := range []ast.DeclAttributeKind{ast.AttrResilient, ast.AttrFragile, ast.AttrBornFragile} {
		if other != kind && attrs.Has(other) {
			p.report(diagnostic.New().Error().Attribute().Kind(diagnostic.CombineAttribute).
				Message("a resilience attribute is already set").At(position.Span{Start: at, End: at}).Build())
			return
		}
	}
	if attrs.Set(kind, at) {
		p.reportDuplicate(at)
	}
}

// setExclusive sets kind, clearing the newer conflict per the
// prefix/postfix rule: on conflict, the later attribute is dropped.
func (p *Parser) setExclusive(attrs *ast.DeclAttributes, kind, opposite ast.DeclAttributeKind, at position.Position) {
	if attrs.Has(opposite) {
		p.report(diagnostic.New().Error().Attribute().Kind(diagnostic.CombineAttribute).
			Message("prefix and postfix are mutually exclusive").At(position.Span{Start: at, End: at}).Build())
		return
	}
	if attrs.Set(kind, at) {
		p.reportDuplicate(at)
	}
}

func (p *Parser) reportDuplicate(at position.Position) {
	p.report(diagnostic.New().Warning().Attribute().Kind(diagnostic.DuplicateAttribute).
		Message("duplicate attribute").At(position.Span{Start: at, End: at}).Build())
}

// parseAsmName requires `=` followed by a non-interpolated,
// single-segment string literal; the raw content becomes AsmName.
func (p *Parser) parseAsmName(attrs *ast.DeclAttributes, at position.Position) {
	if attrs.Has(ast.AttrAsmName) {
		p.reportDuplicate(at)
	}
	if _, ok := p.cur.ConsumeExpected(lexer.Equal); !ok {
		p.report(diagnostic.New().Error().Attribute().Kind(diagnostic.ExpectedToken).
			Message("expected '=' after @asmname").At(p.cur.Current().Span).Build())
		return
	}
	strTok := p.cur.Current()
	if strTok.Type != lexer.StringLiteral {
		p.report(diagnostic.New().Error().Attribute().Kind(diagnostic.ExpectedToken).
			Message("expected a string literal after @asmname=").At(strTok.Span).Build())
		return
	}
	p.cur.Advance()
	if segs := p.cur.StringSegments(strTok); len(segs) != 1 || segs[0].Kind != lexer.SegmentLiteral {
		p.report(diagnostic.New().Error().Attribute().Kind(diagnostic.ExpectedToken).
			Message("@asmname string cannot be interpolated").At(strTok.Span).Build())
		return
	}
	attrs.Set(ast.AttrAsmName, at)
	attrs.AsmName = strTok.Text
}

// parseTypeAttributes consumes the type-attribute list preceding a
// type-repr, honoring the SIL-only gate and the inout/auto_closure
// exclusivity rule.
func (p *Parser) parseTypeAttributes() ast.TypeAttributes {
	var attrs ast.TypeAttributes
	for p.cur.Is(lexer.At) {
		at := p.cur.Advance()
		nameTok := p.cur.Current()
		if !p.cur.Is(lexer.Identifier) && !lexer.IsKeywordToken(nameTok.Type) {
			p.report(diagnostic.New().Error().Attribute().Kind(diagnostic.ExpectedToken).
				Message("expected attribute name after '@'").At(nameTok.Span).Build())
			continue
		}
		p.cur.Advance()
		name := nameTok.Text

		kind, isType := ast.TypeAttributeByName(name)
		if !isType {
			if _, isDecl := ast.DeclAttributeByName(name); isDecl {
				p.report(diagnostic.New().Error().Attribute().Kind(diagnostic.WrongKindAttribute).
					Message("'%s' is a declaration attribute, not a type attribute", name).At(nameTok.Span).Build())
			} else {
				p.report(diagnostic.New().Error().Attribute().Kind(diagnostic.UnknownAttribute).
					Message("unknown type attribute '%s'", name).At(nameTok.Span).Build())
			}
			p.skipAttributeTail()
			continue
		}

		if kind.SILOnly() && !p.SILMode {
			p.report(diagnostic.New().Error().Attribute().Kind(diagnostic.WrongKindAttribute).
				Message("'%s' is only valid in SIL mode", name).At(nameTok.Span).Build())
			p.skipAttributeTail()
			continue
		}

		switch kind {
		case ast.TypeAttrInOut:
			p.setTypeExclusive(&attrs, ast.TypeAttrInOut, ast.TypeAttrAutoClosure, at)
		case ast.TypeAttrAutoClosure:
			p.setTypeExclusive(&attrs, ast.TypeAttrAutoClosure, ast.TypeAttrInOut, at)
		case ast.TypeAttrCC:
			p.parseCallingConvention(&attrs, at)
		default:
			if attrs.Set(kind, at) {
				p.reportDuplicate(at)
			}
		}
		p.cur.ConsumeIf(lexer.Comma)
	}
	return attrs
}

func (p *Parser) setTypeExclusive(attrs *ast.TypeAttributes, kind, opposite ast.TypeAttributeKind, at position.Position) {
	if attrs.Has(opposite) {
		p.report(diagnostic.New().Error().Attribute().Kind(diagnostic.CombineAttribute).
			Message("inout and auto_closure are mutually exclusive").At(position.Span{Start: at, End: at}).Build())
		return
	}
	if attrs.Set(kind, at) {
		p.reportDuplicate(at)
	}
}

var callingConventions = map[string]ast.CallingConvention{
	"freestanding": ast.CCFreestanding,
	"method":       ast.CCMethod,
	"cdecl":        ast.CCCDecl,
	"objc_method":  ast.CCObjCMethod,
}

// parseCallingConvention requires `(identifier)`, clearing `cc` if the
// identifier does not name a known convention.
func (p *Parser) parseCallingConvention(attrs *ast.TypeAttributes, at position.Position) {
	if _, ok := p.cur.ConsumeExpected(lexer.LParen); !ok {
		p.report(diagnostic.New().Error().Attribute().Kind(diagnostic.ExpectedToken).
			Message("expected '(' after @cc").At(p.cur.Current().Span).Build())
		return
	}
	idTok := p.cur.Current()
	if idTok.Type != lexer.Identifier {
		p.report(diagnostic.New().Error().Attribute().Kind(diagnostic.ExpectedToken).
			Message("expected a calling-convention name").At(idTok.Span).Build())
		return
	}
	p.cur.Advance()
	p.cur.ConsumeExpected(lexer.RParen)

	cc, known := callingConventions[idTok.Text]
	if !known {
		p.report(diagnostic.New().Error().Attribute().Kind(diagnostic.UnknownAttribute).
			Message("unknown calling convention '%s'", idTok.Text).At(idTok.Span).Build())
		attrs.Clear(ast.TypeAttrCC)
		return
	}
	attrs.Set(ast.TypeAttrCC, at)
	attrs.CC = cc
}
