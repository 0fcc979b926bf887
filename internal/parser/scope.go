package parser

import "github.com/vesper-lang/vesper/internal/ast"

// ScopeKind tags the lexical region a Scope represents.
type ScopeKind int

const (
	ScopeGenerics ScopeKind = iota
	ScopeFunctionBody
	ScopeConstructorBody
	ScopeDestructorBody
	ScopeExtension
	ScopeStructBody
	ScopeClassBody
	ScopeProtocolBody
	ScopeEnumBody
)

// Scope is one entry of the parser's scope stack.
type Scope struct {
	Kind ScopeKind
}

// scopeStack is a strictly LIFO stack of scopes and declaration
// contexts . Both stacks are kept in the same struct so they can be
// suspended and reinstalled together; the declaration sub-parsers
// push and pop contexts only.
type scopeStack struct {
	scopes []Scope
	ctxs   []*ast.DeclContext
}

func newScopeStack(root *ast.DeclContext) *scopeStack {
	return &scopeStack{ctxs: []*ast.DeclContext{root}}
}

// Current returns the innermost declaration context.
func (s *scopeStack) Current() *ast.DeclContext {
	return s.ctxs[len(s.ctxs)-1]
}

// Depth returns the combined scope/context depth, for the
// before/after-equal-depth invariant.
func (s *scopeStack) Depth() int { return len(s.scopes) + len(s.ctxs) }

// PushScope enters a new scope, returning a release func that must run
// on every exit path.
func (s *scopeStack) PushScope(kind ScopeKind) (release func()) {
	s.scopes = append(s.scopes, Scope{Kind: kind})
	depth := len(s.scopes)
	return func() {
		if len(s.scopes) != depth {
			panic("parser: scope released out of LIFO order")
		}
		s.scopes = s.scopes[:depth-1]
	}
}

// PushContext enters a new declaration context as the current one,
// returning a release func restoring the previous context.
func (s *scopeStack) PushContext(ctx *ast.DeclContext) (release func()) {
	s.ctxs = append(s.ctxs, ctx)
	depth := len(s.ctxs)
	return func() {
		if len(s.ctxs) != depth {
			panic("parser: context released out of LIFO order")
		}
		s.ctxs = s.ctxs[:depth-1]
	}
}

// Suspended captures enough of the stack to be reinstalled later by
// the delayed-parse harness.
type Suspended struct {
	scopes []Scope
	ctx    *ast.DeclContext
}

// Suspend captures the current scope list and context for later reuse
// without altering the live stack.
func (s *scopeStack) Suspend() Suspended {
	scopes := make([]Scope, len(s.scopes))
	copy(scopes, s.scopes)
	return Suspended{scopes: scopes, ctx: s.Current()}
}

// Reinstall pushes a previously suspended scope/context onto a fresh
// stack built for resuming a deferred body.
func Reinstall(saved Suspended) *scopeStack {
	st := &scopeStack{ctxs: []*ast.DeclContext{saved.ctx}}
	st.scopes = append(st.scopes, saved.scopes...)
	return st
}
