package parser

import (
	"github.com/vesper-lang/vesper/internal/ast"
	"github.com/vesper-lang/vesper/internal/diagnostic"
	"github.com/vesper-lang/vesper/internal/lexer"
)

// Parser is the declaration parser. It owns a token cursor, a
// scope/context stack, a delayed-body table, and writes to an
// externally-owned arena and diagnostic sink; it only ever depends on
// their interfaces.
type Parser struct {
	filename string
	src      string

	cur   *Cursor
	stack *scopeStack
	arena *ast.Arena
	diags diagnostic.Sink

	delayed *delayedTable

	// SILMode unlocks SIL top-level forms and SIL-only type attributes.
	SILMode bool

	// AllowTopLevelCode distinguishes a script/REPL file from a library
	// file: when true, bare top-level statements and expressions are
	// wrapped into TopLevelCodeDecl nodes instead of being rejected.
	// Top-level var bindings are accepted either way and are never
	// wrapped; with this set they only mark the file as containing
	// top-level code.
	AllowTopLevelCode bool

	// delayBodies enables the function/constructor/destructor body
	// delay path; tests that want eager bodies leave it false.
	delayBodies bool

	sawTopLevelCode bool
}

// New creates a parser over src, writing nodes into arena and
// diagnostics into diags.
func New(filename, src string, arena *ast.Arena, diags diagnostic.Sink) *Parser {
	lex := lexer.New(filename, src)
	root := ast.NewFileContext(ast.AllowTopLevel)
	p := &Parser{
		filename: filename,
		src:      src,
		cur:      NewCursor(lex),
		stack:    newScopeStack(root),
		arena:    arena,
		diags:    diags,
		delayed:  newDelayedTable(),
	}
	return p
}

// EnableBodyDelay turns on the function/constructor/destructor body
// delay path . Off by default so most tests see eager,
// immediately-inspectable bodies.
func (p *Parser) EnableBodyDelay() { p.delayBodies = true }

// FileContext returns the root declaration context for the file being
// parsed.
func (p *Parser) FileContext() *ast.DeclContext { return p.stack.ctxs[0] }

func (p *Parser) report(d *diagnostic.Diagnostic) { p.diags.Report(d) }

func (p *Parser) currentContext() *ast.DeclContext { return p.stack.Current() }
