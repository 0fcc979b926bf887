// Package parser implements the Vesper declaration parser: given a
// token stream from internal/lexer, it builds internal/ast declaration
// nodes, reporting through internal/diagnostic and never aborting on a
// single malformed declaration.
package parser

import (
	"github.com/vesper-lang/vesper/internal/lexer"
	"github.com/vesper-lang/vesper/internal/position"
)

// Cursor is the token-stream cursor: it holds the current token,
// remembers the previous token's location, and can checkpoint and
// restore its position exactly.
type Cursor struct {
	lex  *lexer.Lexer
	tok  lexer.Token
	prev position.Position
}

// NewCursor creates a cursor primed with the first token of lex.
func NewCursor(lex *lexer.Lexer) *Cursor {
	c := &Cursor{lex: lex}
	c.tok = lex.NextToken()
	return c
}

// Current returns the token the cursor is positioned on.
func (c *Cursor) Current() lexer.Token { return c.tok }

// PreviousLocation returns the end location of the token consumed by
// the most recent Advance.
func (c *Cursor) PreviousLocation() position.Position { return c.prev }

// Advance consumes the current token and returns its start location.
func (c *Cursor) Advance() position.Position {
	loc := c.tok.Span.Start
	c.prev = c.tok.Span.End
	c.tok = c.lex.NextToken()
	return loc
}

// Is reports whether the current token has type tt.
func (c *Cursor) Is(tt lexer.TokenType) bool { return c.tok.Type == tt }

// ConsumeIf consumes the current token if it has type tt, reporting
// whether it did.
func (c *Cursor) ConsumeIf(tt lexer.TokenType) (lexer.Token, bool) {
	if c.tok.Type != tt {
		return lexer.Token{}, false
	}
	tok := c.tok
	c.Advance()
	return tok, true
}

// ConsumeExpected consumes the current token if it has type tt;
// otherwise it reports ok=false without advancing, leaving diagnostic
// emission and recovery to the caller.
func (c *Cursor) ConsumeExpected(tt lexer.TokenType) (lexer.Token, bool) {
	if c.tok.Type != tt {
		return lexer.Token{}, false
	}
	tok := c.tok
	c.Advance()
	return tok, true
}

// SkipUntil advances until the current token matches one of kinds, or
// EOF is reached, and reports which kind was found (or false at EOF).
func (c *Cursor) SkipUntil(kinds ...lexer.TokenType) (lexer.TokenType, bool) {
	for {
		if c.tok.Type == lexer.EOF {
			return lexer.EOF, false
		}
		for _, k := range kinds {
			if c.tok.Type == k {
				return k, true
			}
		}
		c.Advance()
	}
}

// InjectToken overwrites the current token without touching the
// underlying lexer, letting a caller replace the current token with a
// piece split out of it (e.g. a trailing '<' peeled off an operator
// function name).
func (c *Cursor) InjectToken(tok lexer.Token) { c.tok = tok }

// PeekAfterCurrent returns the token that follows the current one
// without consuming either; it saves and restores the underlying
// lexer's position around a single extra scan.
func (c *Cursor) PeekAfterCurrent() lexer.Token {
	save := c.lex.Save()
	t := c.lex.NextToken()
	c.lex.Restore(save)
	return t
}

// StringSegments delegates to the lexer's interpolation-segment split
// for a string literal token already produced by this cursor.
func (c *Cursor) StringSegments(tok lexer.Token) []lexer.StringSegment {
	return c.lex.StringLiteralSegments(tok)
}

// AtStartOfLine reports whether the current token began a new source line.
func (c *Cursor) AtStartOfLine() bool { return c.tok.StartOfLine }

// StartsWithLess reports whether the current token is an Operator
// token whose text begins with '<' — the point at which a generic
// parameter list may open.
func (c *Cursor) StartsWithLess() bool {
	return c.tok.Type == lexer.Operator && len(c.tok.Text) > 0 && c.tok.Text[0] == '<'
}

// TextEquals reports whether the current token's raw text equals s,
// regardless of its lexical classification — a contextual-keyword
// predicate that avoids adding new lexer states (used to recognize a
// leading '-' operator in expressions).
func (c *Cursor) TextEquals(s string) bool { return c.tok.Text == s }

// CheckpointState is an opaque cursor position, reproducing the cursor
// exactly on Restore.
type CheckpointState struct {
	lexState lexer.State
	tok      lexer.Token
	prev     position.Position
}

// SavePosition checkpoints the cursor's current position.
func (c *Cursor) SavePosition() CheckpointState {
	return CheckpointState{lexState: c.lex.Save(), tok: c.tok, prev: c.prev}
}

// RestorePosition rewinds the cursor (and its underlying lexer) to a
// previously saved position.
func (c *Cursor) RestorePosition(s CheckpointState) {
	c.lex.Restore(s.lexState)
	c.tok = s.tok
	c.prev = s.prev
}

// SplitLessPrefix splits an Operator token whose text begins with '<'
// into a synthetic '<' token (consumed) followed by the remaining
// operator text, which becomes the new current token without
// re-lexing.
// An operator function name ending in '<' reaches here only after
// parseFuncName has replaced it with a lone '<' token.
func (c *Cursor) SplitLessPrefix() (lessLoc position.Position, ok bool) {
	if !c.StartsWithLess() {
		return position.Position{}, false
	}
	tok := c.tok
	lessEnd := tok.Span.Start
	lessEnd.Offset++
	lessEnd.Column++
	rest := tok.Text[1:]
	if rest == "" {
		c.Advance()
		return tok.Span.Start, true
	}
	restStart := lessEnd
	c.tok = lexer.Token{
		Type:        lexer.Operator,
		Text:        rest,
		Span:        position.Between(restStart, tok.Span.End),
		StartOfLine: false,
	}
	return tok.Span.Start, true
}

// SplitFirstByte splits the current Operator token into its first byte
// (consumed, returned as loc) and the remaining text, which becomes the
// new current token without re-lexing. Used to close a generic
// argument/parameter list on a '>' that is the prefix of a longer
// operator run (">>" , ">=", ...).
func (c *Cursor) SplitFirstByte() (loc position.Position, ok bool) {
	tok := c.tok
	if tok.Type != lexer.Operator || len(tok.Text) == 0 {
		return position.Position{}, false
	}
	rest := tok.Text[1:]
	if rest == "" {
		c.Advance()
		return tok.Span.Start, true
	}
	restStart := tok.Span.Start
	restStart.Offset++
	restStart.Column++
	c.tok = lexer.Token{
		Type:        lexer.Operator,
		Text:        rest,
		Span:        position.Between(restStart, tok.Span.End),
		StartOfLine: false,
	}
	return tok.Span.Start, true
}
