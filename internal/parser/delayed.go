package parser

import (
	"github.com/vesper-lang/vesper/internal/ast"
	"github.com/vesper-lang/vesper/internal/lexer"
	"github.com/vesper-lang/vesper/internal/position"
)

// delayedBody is the deferred-body record: enough state to resume
// parsing a function/constructor/destructor body later without
// re-lexing the whole file.
type delayedBody struct {
	bodyBegin position.Position
	bodyEnd   lexer.State
	bodyEndLoc position.Position
	scope     Suspended
	context   *ast.DeclContext
	flags     ast.Flags
	consumed  bool
}

// delayedDecl is the record registered by the code-completion first
// pass: a whole declaration's tokens, up to and including the
// completion token, set aside for a later pass instead of a real
// completion client acting on it immediately.
type delayedDecl struct {
	start    CheckpointState
	end      CheckpointState
	context  *ast.DeclContext
	flags    ast.Flags
	consumed bool
}

// delayedTable is the parser's state container: every deferred record
// produced this parse, keyed by the owning declaration so the harness
// can resume it idempotently.
type delayedTable struct {
	bodies map[ast.Declaration]*delayedBody
	decls  []*delayedDecl
}

func newDelayedTable() *delayedTable {
	return &delayedTable{bodies: make(map[ast.Declaration]*delayedBody)}
}

// registerBody records d's body as deferred.
func (t *delayedTable) registerBody(d ast.Declaration, rec *delayedBody) {
	t.bodies[d] = rec
}

// bodyFor looks up d's deferred body record, if any.
func (t *delayedTable) bodyFor(d ast.Declaration) (*delayedBody, bool) {
	rec, ok := t.bodies[d]
	return rec, ok
}

// registerDecl records a whole declaration as deferred pending
// code-completion resolution.
func (t *delayedTable) registerDecl(rec *delayedDecl) {
	t.decls = append(t.decls, rec)
}

// ResumeBody re-lexes and parses a previously deferred body, attaching
// the result to d and returning it. It reinstalls the captured scope/context, swaps
// in a bounded lexer over the recorded byte range, and restores the
// parser's live cursor and stack afterward regardless of outcome:
// resumption always restores the parser to its original state on
// exit.
func (p *Parser) ResumeBody(d ast.Declaration) (*ast.BraceStmt, bool) {
	rec, found := p.delayed.bodyFor(d)
	if !found || rec.consumed {
		return nil, false
	}
	rec.consumed = true

	savedCursor := p.cur
	savedStack := p.stack

	bounded := lexer.NewBounded(p.filename, p.src,
		rec.bodyBegin.Offset, rec.bodyEndLoc.Offset,
		rec.bodyBegin.Line, rec.bodyBegin.Column)
	p.cur = NewCursor(bounded)
	p.stack = Reinstall(rec.scope)

	body := p.parseBraceStmt(rec.flags)

	p.cur = savedCursor
	p.stack = savedStack

	switch n := d.(type) {
	case *ast.FuncDecl:
		n.Body, n.BodyDelayed = body, false
	case *ast.InitDecl:
		n.Body, n.BodyDelayed = body, false
	case *ast.DeinitDecl:
		n.Body, n.BodyDelayed = body, false
	}
	return body, true
}
