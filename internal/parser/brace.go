package parser

import (
	"github.com/vesper-lang/vesper/internal/ast"
	"github.com/vesper-lang/vesper/internal/diagnostic"
	"github.com/vesper-lang/vesper/internal/lexer"
	"github.com/vesper-lang/vesper/internal/position"
)

// parseBraceStmt parses a `{ ... }` block as a mixed list of
// declarations, statements, and expressions. It is the brace-item-list
// peer the declaration grammar itself drives for function, constructor,
// and destructor bodies; the declaration parser never needs to inspect
// its contents, only to produce and reattach it.
func (p *Parser) parseBraceStmt(flags ast.Flags) *ast.BraceStmt {
	start := p.cur.Current().Span.Start
	if _, ok := p.cur.ConsumeExpected(lexer.LBrace); !ok {
		p.report(diagnostic.New().Error().Syntax().Kind(diagnostic.ExpectedToken).
			Message("expected '{' to begin a body").At(p.cur.Current().Span).Build())
		return ast.NewBraceStmt(p.cur.Current().Span, nil)
	}

	var elements []interface{}
	for !p.cur.Is(lexer.RBrace) && !p.cur.Is(lexer.EOF) {
		elements = append(elements, p.parseBraceItem(flags))
		p.cur.ConsumeIf(lexer.Semicolon)
	}

	if _, ok := p.cur.ConsumeExpected(lexer.RBrace); !ok {
		p.report(diagnostic.New().Error().Syntax().Kind(diagnostic.MalformedBody).
			Message("expected '}' to end a body").At(p.cur.Current().Span).Build())
	}

	span := position.Between(start, p.cur.PreviousLocation())
	return ast.NewBraceStmt(span, elements)
}

// parseBraceItem dispatches one element of a brace-item list: a nested
// declaration if the current token starts one, `return` as a
// statement, or a bare expression used as a statement.
func (p *Parser) parseBraceItem(flags ast.Flags) interface{} {
	if startsDeclaration(p.cur.Current()) {
		return p.parseDeclaration(flags)
	}

	if ret, ok := p.cur.ConsumeIf(lexer.KwReturn); ok {
		var value ast.Expr
		if !p.cur.Is(lexer.RBrace) && !p.cur.Is(lexer.Semicolon) && !p.cur.Is(lexer.EOF) {
			value = p.parseExpr()
		}
		end := p.cur.PreviousLocation()
		return ast.NewReturnStmt(position.Between(ret.Span.Start, end), value)
	}

	e := p.parseExpr()
	return ast.NewExprStmt(e.Span(), e)
}

func startsDeclaration(tok lexer.Token) bool {
	switch tok.Type {
	case lexer.KwImport, lexer.KwExtension, lexer.KwTypealias, lexer.KwAssociatedType,
		lexer.KwVar, lexer.KwStatic, lexer.KwFunc, lexer.KwEnum, lexer.KwCase,
		lexer.KwStruct, lexer.KwClass, lexer.KwProtocol, lexer.KwInit, lexer.KwDeinit,
		lexer.KwSubscript, lexer.KwOperator, lexer.At:
		return true
	}
	return false
}
