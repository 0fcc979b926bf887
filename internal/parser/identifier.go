package parser

import (
	"github.com/vesper-lang/vesper/internal/diagnostic"
	"github.com/vesper-lang/vesper/internal/lexer"
)

// isNameRecoveryFollower reports the small set of tokens that, appearing right
// after a keyword sitting in a name position, are taken as evidence
// the keyword was meant as an identifier.
func isNameRecoveryFollower(tok lexer.Token) bool {
	switch tok.Type {
	case lexer.Colon, lexer.LBrace, lexer.Equal, lexer.LParen, lexer.Arrow:
		return true
	}
	return tok.Type == lexer.Operator && len(tok.Text) > 0 && tok.Text[0] == '<'
}

// sentinelSuffix marks a synthesized identifier as unspellable in
// source.
const sentinelSuffix = "#"

// parseDeclName parses a declaration-name position: an ordinary
// identifier, or (via keyword recovery) a keyword mistakenly used as a
// name when followed by a token that looks like the rest of a
// declaration. On outright failure it reports msg at the current
// token and returns ok=false.
func (p *Parser) parseDeclName(msg string) (name string, ok bool) {
	if tok, matched := p.cur.ConsumeIf(lexer.Identifier); matched {
		return tok.Text, true
	}

	cur := p.cur.Current()
	if lexer.IsKeywordToken(cur.Type) {
		next := p.cur.PeekAfterCurrent()
		if isNameRecoveryFollower(next) {
			p.cur.Advance()
			return cur.Text + sentinelSuffix, true
		}
	}

	p.report(diagnostic.New().Error().Syntax().Kind(diagnostic.ExpectedToken).
		Message("%s", msg).At(cur.Span).Build())
	return "", false
}
