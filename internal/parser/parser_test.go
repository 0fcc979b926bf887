package parser

import (
	"testing"

	"github.com/vesper-lang/vesper/internal/ast"
	"github.com/vesper-lang/vesper/internal/diagnostic"
)

// parseSource runs the top-level driver over src and returns the
// resulting parser (for inspecting FileContext().Members) and the
// diagnostic engine it reported into.
func parseSource(t *testing.T, src string) (*Parser, *diagnostic.Engine) {
	t.Helper()
	arena := ast.NewArena()
	diags := diagnostic.NewEngine()
	p := New("test.vsp", src, arena, diags)
	p.ParseTopLevel()
	return p, diags
}

func requireNoErrors(t *testing.T, diags *diagnostic.Engine) {
	t.Helper()
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %s", diags.Format())
	}
}

func requireMember(t *testing.T, p *Parser, i int) *ast.Decl {
	t.Helper()
	members := p.FileContext().Members
	if i >= len(members) {
		t.Fatalf("expected at least %d top-level members, got %d", i+1, len(members))
	}
	return members[i]
}
