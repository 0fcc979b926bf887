// Package lexer supplies tokens to the Vesper declaration parser on
// demand. It is a peer collaborator, not part of the parser: the parser
// only ever calls NextToken, checkpoints, and the small set of
// string-segment / re-lexing primitives spec'd for it.
package lexer

import (
	"fmt"

	"github.com/vesper-lang/vesper/internal/position"
)

// TokenType enumerates every lexical kind the declaration grammar cares
// about. Trivia (whitespace, comments) is dropped by the lexer, not
// surfaced as tokens: this module makes no attempt at trivia-preserving
// parsing (see Non-goals).
type TokenType int

const (
	EOF TokenType = iota
	Illegal

	// A reserved token a test can inject to stand in for a real
	// code-completion client's cursor marker.
	CodeCompletion

	Identifier
	IntegerLiteral
	FloatLiteral
	StringLiteral
	BoolLiteral

	// Keywords.
	KwImport
	KwExtension
	KwTypealias
	KwAssociatedType
	KwVar
	KwStatic
	KwFunc
	KwEnum
	KwCase
	KwStruct
	KwClass
	KwProtocol
	KwInit
	KwDeinit
	KwSubscript
	KwOperator
	KwGet
	KwSet
	KwPrefix
	KwPostfix
	KwInfix
	KwAssociativity
	KwPrecedence
	KwNone
	KwLeft
	KwRight
	KwSelf
	KwReturn
	KwIf
	KwElse
	KwTrue
	KwFalse
	KwIn
	KwWhere

	// SIL top-level keywords.
	KwSIL
	KwSILStage
	KwSILVTable
	KwSILGlobal

	// Punctuation.
	At
	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket
	Comma
	Colon
	DoubleColon
	Semicolon
	Dot
	Arrow
	Question
	Bang
	Equal
	Comment
	Newline

	// Operator token: any run of operator characters, including '<'
	// and '>' — there is no dedicated generic-bracket token. A generic
	// parameter list is opened by an Operator token whose Text begins
	// with '<'; the cursor splits a longer run like "<=" or "==<" by
	// substring, never by re-lexing.
	Operator
)

var keywords = map[string]TokenType{
	"import":        KwImport,
	"extension":     KwExtension,
	"typealias":     KwTypealias,
	"associatedtype": KwAssociatedType,
	"var":           KwVar,
	"static":        KwStatic,
	"func":          KwFunc,
	"enum":          KwEnum,
	"case":          KwCase,
	"struct":        KwStruct,
	"class":         KwClass,
	"protocol":      KwProtocol,
	"init":          KwInit,
	"deinit":        KwDeinit,
	"subscript":     KwSubscript,
	"operator":      KwOperator,
	"get":           KwGet,
	"set":           KwSet,
	"prefix":        KwPrefix,
	"postfix":       KwPostfix,
	"infix":         KwInfix,
	"associativity": KwAssociativity,
	"precedence":    KwPrecedence,
	"none":          KwNone,
	"left":          KwLeft,
	"right":         KwRight,
	"self":          KwSelf,
	"return":        KwReturn,
	"if":            KwIf,
	"else":          KwElse,
	"true":          KwTrue,
	"false":         KwFalse,
	"in":            KwIn,
	"where":         KwWhere,
	"sil":           KwSIL,
	"sil_stage":     KwSILStage,
	"sil_vtable":    KwSILVTable,
	"sil_global":    KwSILGlobal,
}

var tokenNames = map[TokenType]string{
	EOF:            "EOF",
	Illegal:        "ILLEGAL",
	CodeCompletion: "CODE_COMPLETION",
	Identifier:     "IDENTIFIER",
	IntegerLiteral: "INTEGER",
	FloatLiteral:   "FLOAT",
	StringLiteral:  "STRING",
	BoolLiteral:    "BOOL",
	At:             "@",
	LParen:         "(",
	RParen:         ")",
	LBrace:         "{",
	RBrace:         "}",
	LBracket:       "[",
	RBracket:       "]",
	Comma:          ",",
	Colon:          ":",
	DoubleColon:    "::",
	Semicolon:      ";",
	Dot:            ".",
	Arrow:          "->",
	Question:       "?",
	Bang:           "!",
	Equal:          "=",
	Comment:        "COMMENT",
	Newline:        "NEWLINE",
	Operator:       "OPERATOR",
}

func init() {
	for text, tt := range keywords {
		tokenNames[tt] = text
	}
}

// String renders a human-readable token type name for diagnostics.
func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", int(tt))
}

// Token is one lexical unit: a kind, its literal text, and its span.
type Token struct {
	Type TokenType
	Text string
	Span position.Span
	// StartOfLine records whether this token is the first non-trivia
	// token on its source line, needed by the member-list parser's
	// implicit-semicolon rule.
	StartOfLine bool
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Type, t.Text, t.Span.Start)
}

// Is reports whether t has the given type.
func (t Token) Is(tt TokenType) bool { return t.Type == tt }

// IsKeyword reports whether text names a reserved word.
func IsKeyword(text string) (TokenType, bool) {
	tt, ok := keywords[text]
	return tt, ok
}

var keywordTokens = func() map[TokenType]bool {
	m := make(map[TokenType]bool, len(keywords))
	for _, tt := range keywords {
		m[tt] = true
	}
	return m
}()

// IsKeywordToken reports whether tt is one of the reserved-word token
// types (including the SIL top-level keywords), as opposed to
// punctuation or a literal/identifier kind.
func IsKeywordToken(tt TokenType) bool { return keywordTokens[tt] }
