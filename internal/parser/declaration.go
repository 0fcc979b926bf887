package parser

import (
	"github.com/vesper-lang/vesper/internal/ast"
	"github.com/vesper-lang/vesper/internal/diagnostic"
	"github.com/vesper-lang/vesper/internal/lexer"
	"github.com/vesper-lang/vesper/internal/position"
)

// resyncTokens is the token set a failed declaration parse skips
// forward to before continuing with the next sibling.
var resyncTokens = []lexer.TokenType{
	lexer.RBrace, lexer.Semicolon,
	lexer.KwImport, lexer.KwExtension, lexer.KwTypealias, lexer.KwAssociatedType,
	lexer.KwVar, lexer.KwFunc, lexer.KwEnum, lexer.KwCase, lexer.KwStruct,
	lexer.KwClass, lexer.KwProtocol, lexer.KwInit, lexer.KwDeinit, lexer.KwSubscript,
}

// parseDeclaration parses one declaration: attributes, an optional
// `static`, a keyword-dispatched body, and an optional trailing `;`.
// It never returns an error path to its caller; on failure it reports
// diagnostics, resyncs to a plausible next declaration, and returns nil
// so the caller can continue with siblings.
func (p *Parser) parseDeclaration(flags ast.Flags) *ast.Decl {
	start := p.cur.SavePosition()

	attrs := p.parseDeclAttributes()

	var staticLoc position.Position
	isStatic := false
	if tok, ok := p.cur.ConsumeIf(lexer.KwStatic); ok {
		isStatic, staticLoc = true, tok.Span.Start
	}

	if p.cur.Is(lexer.CodeCompletion) {
		if p.currentContext().IsTopLevel() {
			p.cur.SkipUntil()
			return nil
		}
		p.delayCurrentDeclaration(start, flags)
		return nil
	}

	base, staticHandled, selfManaged := p.dispatchDeclaration(flags, isStatic, attrs)

	p.cur.ConsumeIf(lexer.Semicolon)

	if isStatic && !staticHandled {
		p.report(diagnostic.New().Error().Declaration().Kind(diagnostic.DisallowedDecl).
			Message("declaration cannot be static").At(position.Span{Start: staticLoc, End: staticLoc}).
			FixIt(diagnostic.RemoveFixIt(position.Span{Start: staticLoc, End: staticLoc})).Build())
	}

	if selfManaged {
		return base
	}

	if base == nil {
		p.cur.SkipUntil(resyncTokens...)
		return nil
	}

	base.Attributes = attrs
	p.currentContext().AddMember(base)
	return base
}

// dispatchDeclaration switches on the current token and returns the
// parsed declaration's base record (nil on failure), whether the
// sub-parser accepted a leading `static`, and whether the sub-parser
// already attached attributes and added itself (and any sibling
// bindings it produced) to the current context — true only for `var`,
// which can expand into more than one declaration node.
func (p *Parser) dispatchDeclaration(flags ast.Flags, isStatic bool, attrs ast.DeclAttributes) (*ast.Decl, bool, bool) {
	switch tok := p.cur.Current(); tok.Type {
	case lexer.KwImport:
		return p.parseImportDecl(flags, attrs), false, false
	case lexer.KwExtension:
		return p.parseExtensionDecl(flags), false, false
	case lexer.KwTypealias, lexer.KwAssociatedType:
		return p.parseTypeAliasDecl(flags), false, false
	case lexer.KwVar:
		return p.parseVarDecl(flags, isStatic, attrs), true, true
	case lexer.KwFunc:
		return p.parseFuncDecl(flags, isStatic), true, false
	case lexer.KwEnum:
		return p.parseEnumDecl(flags), false, false
	case lexer.KwCase:
		return p.parseEnumCaseDecl(flags), false, false
	case lexer.KwStruct:
		return p.parseStructDecl(flags), false, false
	case lexer.KwClass:
		return p.parseClassDecl(flags), false, false
	case lexer.KwProtocol:
		return p.parseProtocolDecl(flags), false, false
	case lexer.KwInit:
		return p.parseInitDecl(flags), false, false
	case lexer.KwDeinit:
		return p.parseDeinitDecl(flags), false, false
	case lexer.KwSubscript:
		return p.parseSubscriptDecl(flags, isStatic), true, false
	case lexer.KwOperator:
		return p.parseOperatorDecl(flags), false, false
	default:
		p.report(diagnostic.New().Error().Declaration().Kind(diagnostic.UnexpectedDecl).
			Message("expected a declaration").At(tok.Span).Build())
		return nil, false, false
	}
}

// delayCurrentDeclaration consumes tokens up to and including the
// code-completion token and registers the range from start to there
// plus context/flags for a later pass. At the top level, forward
// references are disallowed, so the caller instead skips straight to
// EOF; this helper only ever runs in a non-top-level context.
func (p *Parser) delayCurrentDeclaration(start CheckpointState, flags ast.Flags) {
	p.cur.SkipUntil(lexer.CodeCompletion)
	if p.cur.Is(lexer.CodeCompletion) {
		p.cur.Advance()
	}
	end := p.cur.SavePosition()
	p.delayed.registerDecl(&delayedDecl{
		start:   start,
		end:     end,
		context: p.currentContext(),
		flags:   flags,
	})
}
