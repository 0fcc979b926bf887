package parser

import (
	"github.com/vesper-lang/vesper/internal/ast"
	"github.com/vesper-lang/vesper/internal/diagnostic"
	"github.com/vesper-lang/vesper/internal/lexer"
	"github.com/vesper-lang/vesper/internal/position"
)

// pendingBinding tracks one bare-name binding still eligible for the
// type-annotation propagation rule: the next annotated binding in the
// same `var` backfills every untyped, uninitialized predecessor.
type pendingBinding struct {
	decl *ast.VarDecl
}

// parseVarDecl parses `var` pattern (`=` initializer)? (`,` ...)*, or
// (as a distinct second production) a single annotated name followed
// immediately by `{` — an accessor block introducing a computed
// property. It manages attribute attachment and context membership for
// every binding it produces itself, since one `var` can expand into
// several sibling declarations.
func (p *Parser) parseVarDecl(flags ast.Flags, isStatic bool, attrs ast.DeclAttributes) *ast.Decl {
	start := p.cur.Advance() // 'var'

	firstPat := p.parsePattern(false)
	if name, typ, ok := asNamePattern(firstPat); ok && p.cur.Is(lexer.LBrace) {
		if typ == nil {
			p.report(diagnostic.New().Error().Declaration().Kind(diagnostic.MalformedBody).
				Message("a computed property requires a type annotation").At(firstPat.Span()).Build())
			p.skipAccessorBlock()
			d := p.arena.NewVar(p.currentContext(), position.Between(start, p.cur.PreviousLocation()), name, firstPat, nil, isStatic)
			d.Attributes = attrs
			p.currentContext().AddMember(d.Base())
			return d.Base()
		}
		return p.parseAccessorBlockVar(flags, isStatic, attrs, start, name, typ).Base()
	}

	var pending []pendingBinding
	var last *ast.VarDecl

	emit := func(pat ast.Pattern, init ast.Expr, bindingStart position.Position) *ast.VarDecl {
		name, typ, isName := asNamePattern(pat)
		if !isName {
			name = ""
			typ = nil
		}

		if init != nil && flags.Has(ast.DisallowInit) {
			p.report(diagnostic.New().Error().Declaration().Kind(diagnostic.DisallowedDecl).
				Message("initializer not allowed here").At(init.Span()).Build())
		}
		if !isStatic && flags.Has(ast.DisallowStoredInstanceVar) {
			p.report(diagnostic.New().Error().Declaration().Kind(diagnostic.DisallowedDecl).
				Message("stored properties are not allowed here").At(pat.Span()).Build())
		}

		span := position.Between(bindingStart, p.cur.PreviousLocation())
		d := p.arena.NewVar(p.currentContext(), span, name, pat, typ, isStatic)
		d.Initializer = init
		d.Attributes = attrs

		if isName && typ == nil && init == nil {
			pending = append(pending, pendingBinding{decl: d})
		} else if typ != nil {
			for _, pb := range pending {
				pb.decl.TypeAnnotation = typ
			}
			pending = nil
		}

		if flags.Has(ast.AllowTopLevel) && p.AllowTopLevelCode {
			p.sawTopLevelCode = true
		}
		p.currentContext().AddMember(d.Base())
		return d
	}

	bindingStart := firstPat.Span().Start
	var firstInit ast.Expr
	if _, ok := p.cur.ConsumeIf(lexer.Equal); ok {
		firstInit = p.parseExpr()
	}
	last = emit(firstPat, firstInit, bindingStart)

	for {
		if _, ok := p.cur.ConsumeIf(lexer.Comma); !ok {
			break
		}
		bindingStart = p.cur.Current().Span.Start
		pat := p.parsePattern(false)
		var init ast.Expr
		if _, ok := p.cur.ConsumeIf(lexer.Equal); ok {
			init = p.parseExpr()
		}
		last = emit(pat, init, bindingStart)
	}

	return last.Base()
}

func asNamePattern(pat ast.Pattern) (string, ast.TypeRepr, bool) {
	np, ok := pat.(ast.NamePattern)
	if !ok {
		return "", nil, false
	}
	return np.Name, np.Type, true
}

// parseAccessorBlockVar parses the `{ get: ... set: ... }` accessor
// block following a single annotated name, producing a computed VarDecl.
func (p *Parser) parseAccessorBlockVar(flags ast.Flags, isStatic bool, attrs ast.DeclAttributes, start position.Position, name string, typ ast.TypeRepr) *ast.VarDecl {
	if flags.Has(ast.DisallowComputedVar) {
		p.report(diagnostic.New().Error().Declaration().Kind(diagnostic.DisallowedDecl).
			Message("computed properties are not allowed here").At(p.cur.Current().Span).Build())
	}

	d := p.arena.NewVar(p.currentContext(), position.Span{Start: start}, name, ast.NewNamePattern(position.Span{Start: start}, name, typ, "", true), typ, isStatic)
	d.IsComputed = true
	d.Attributes = attrs

	getter, setter, setterParam := p.parseAccessorClauses(flags, typ, name)
	d.Getter = getter
	d.Setter = setter
	d.SetterParam = setterParam
	d.Span = position.Between(start, p.cur.PreviousLocation())

	p.currentContext().AddMember(d.Base())
	return d
}

// parseAccessorClauses parses the body of an accessor block: any number
// of (attribute-list, get/set clause) pairs, at most one of each,
// duplicates diagnosed and discarding the earlier one. A lone `set`
// without `get` is an error and the setter is discarded. Each clause's
// own body is colon-introduced (`get : brace-items`, `set (name)? :
// brace-items`), not its own brace block; it runs until the next `get`,
// `set`, or the accessor block's closing `}`.
func (p *Parser) parseAccessorClauses(flags ast.Flags, elementType ast.TypeRepr, ownerName string) (getter, setter *ast.FuncDecl, setterParam string) {
	if _, ok := p.cur.ConsumeExpected(lexer.LBrace); !ok {
		p.report(diagnostic.New().Error().Syntax().Kind(diagnostic.ExpectedToken).
			Message("expected '{' to begin an accessor block").At(p.cur.Current().Span).Build())
		return nil, nil, ""
	}

	setterParam = "value"
	release := p.stack.PushContext(p.currentContext().Nested(ast.ContextFunction, flags&^ast.DisallowFuncDef))

	for !p.cur.Is(lexer.RBrace) && !p.cur.Is(lexer.EOF) {
		clauseAttrs := p.parseDeclAttributes()
		switch {
		case p.cur.Is(lexer.KwGet):
			gStart := p.cur.Advance()
			body := p.parseAccessorClauseBody(flags)
			g := p.arena.NewAccessor(p.currentContext(), position.Between(gStart, p.cur.PreviousLocation()), ownerName)
			g.Attributes = clauseAttrs
			g.Body = body
			if getter != nil {
				p.report(diagnostic.New().Warning().Declaration().Kind(diagnostic.DuplicateAttribute).
					Message("duplicate 'get' accessor, discarding the earlier one").At(g.Span).Build())
			}
			getter = g
		case p.cur.Is(lexer.KwSet):
			sStart := p.cur.Advance()
			paramName := "value"
			if _, ok := p.cur.ConsumeIf(lexer.LParen); ok {
				if tok, ok := p.cur.ConsumeIf(lexer.Identifier); ok {
					paramName = tok.Text
				}
				p.cur.ConsumeExpected(lexer.RParen)
			}
			body := p.parseAccessorClauseBody(flags)
			s := p.arena.NewAccessor(p.currentContext(), position.Between(sStart, p.cur.PreviousLocation()), ownerName)
			s.Attributes = clauseAttrs
			s.Body = body
			s.Params = []ast.Param{{Name: paramName, Type: elementType, IsImplicit: true}}
			if setter != nil {
				p.report(diagnostic.New().Warning().Declaration().Kind(diagnostic.DuplicateAttribute).
					Message("duplicate 'set' accessor, discarding the earlier one").At(s.Span).Build())
			}
			setter, setterParam = s, paramName
		default:
			p.report(diagnostic.New().Error().Declaration().Kind(diagnostic.UnexpectedDecl).
				Message("expected 'get' or 'set'").At(p.cur.Current().Span).Build())
			p.cur.SkipUntil(lexer.KwGet, lexer.KwSet, lexer.RBrace)
		}
	}
	release()

	if _, ok := p.cur.ConsumeExpected(lexer.RBrace); !ok {
		p.report(diagnostic.New().Error().Syntax().Kind(diagnostic.MalformedBody).
			Message("expected '}' to end an accessor block").At(p.cur.Current().Span).Build())
	}

	if setter != nil && getter == nil {
		p.report(diagnostic.New().Error().Declaration().Kind(diagnostic.DisallowedDecl).
			Message("a 'set' accessor requires a 'get' accessor").At(setter.Span).Build())
		setter, setterParam = nil, "value"
	}
	return getter, setter, setterParam
}

// parseAccessorClauseBody parses the `:`-introduced item list following
// `get` or `set (name)?`. It is not itself brace-delimited: items accumulate
// until the next `get`, `set`, or the enclosing accessor block's `}`.
func (p *Parser) parseAccessorClauseBody(flags ast.Flags) *ast.BraceStmt {
	if flags.Has(ast.DisallowFuncDef) {
		p.cur.SkipUntil(lexer.KwGet, lexer.KwSet, lexer.RBrace)
		return nil
	}

	start := p.cur.Current().Span.Start
	if _, ok := p.cur.ConsumeExpected(lexer.Colon); !ok {
		p.report(diagnostic.New().Error().Syntax().Kind(diagnostic.ExpectedToken).
			Message("expected ':' to begin an accessor body").At(p.cur.Current().Span).Build())
	}

	var elements []interface{}
	for !p.cur.Is(lexer.RBrace) && !p.cur.Is(lexer.EOF) && !p.cur.Is(lexer.KwGet) && !p.cur.Is(lexer.KwSet) {
		elements = append(elements, p.parseBraceItem(flags))
		p.cur.ConsumeIf(lexer.Semicolon)
	}

	span := position.Between(start, p.cur.PreviousLocation())
	return ast.NewBraceStmt(span, elements)
}

// skipAccessorBlock discards a balanced `{ ... }` region, used when a
// `var` is missing its type annotation and the accessor block that
// follows cannot be attached to anything.
func (p *Parser) skipAccessorBlock() {
	if !p.cur.Is(lexer.LBrace) {
		return
	}
	depth := 0
	for !p.cur.Is(lexer.EOF) {
		switch p.cur.Current().Type {
		case lexer.LBrace:
			depth++
			p.cur.Advance()
		case lexer.RBrace:
			p.cur.Advance()
			depth--
			if depth == 0 {
				return
			}
		default:
			p.cur.Advance()
		}
	}
}
