// Package diagnostic is the structured error-report facade the parser
// reports through. It never aborts parsing and never decides recovery;
// it only records what happened, where, and (optionally) how to fix it.
package diagnostic

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vesper-lang/vesper/internal/position"
)

// Severity is how serious a diagnostic is.
type Severity int

const (
	Error Severity = iota
	Warning
	Note
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Note:
		return "note"
	default:
		return "unknown"
	}
}

// Category groups diagnostics by the taxonomy the declaration parser
// reports against.
type Category int

const (
	CategorySyntax Category = iota
	CategoryAttribute
	CategoryDeclaration
	CategoryRecovery
)

// Code names one of the parser's fixed diagnostic kinds.
type Code string

// The declaration-parser error taxonomy.
const (
	ExpectedToken      Code = "expected_token"
	UnknownAttribute   Code = "unknown_attribute"
	WrongKindAttribute Code = "wrong_kind_attribute"
	DuplicateAttribute Code = "duplicate_attribute"
	CombineAttribute   Code = "combine_attribute"
	UnexpectedDecl     Code = "unexpected_decl"
	DisallowedDecl     Code = "disallowed_decl"
	MalformedBody      Code = "malformed_body"
	CodeCompletionBail Code = "code_completion_bail"
	ExtraRBrace        Code = "extra_rbrace"
	MissingSemicolon   Code = "missing_semicolon"
)

// EditKind is the shape of a fix-it edit.
type EditKind int

const (
	EditInsert EditKind = iota
	EditRemove
	EditReplace
	EditHighlight
)

// FixIt is a single machine-applicable source edit attached to a diagnostic.
type FixIt struct {
	Kind EditKind
	Span position.Span
	Text string // insertion/replacement text; unused for Remove/Highlight
}

// InsertFixIt proposes inserting text at a point (a zero-width span).
func InsertFixIt(at position.Position, text string) FixIt {
	return FixIt{Kind: EditInsert, Span: position.Span{Start: at, End: at}, Text: text}
}

// RemoveFixIt proposes deleting a span.
func RemoveFixIt(span position.Span) FixIt {
	return FixIt{Kind: EditRemove, Span: span}
}

// ReplaceFixIt proposes replacing a span with text.
func ReplaceFixIt(span position.Span, text string) FixIt {
	return FixIt{Kind: EditReplace, Span: span, Text: text}
}

// HighlightFixIt proposes highlighting a span without editing it.
func HighlightFixIt(span position.Span) FixIt {
	return FixIt{Kind: EditHighlight, Span: span}
}

// Diagnostic is a single structured error report.
type Diagnostic struct {
	Severity Severity
	Category Category
	Code     Code
	Message  string
	Args     []interface{}
	Span     position.Span
	FixIts   []FixIt
}

// Builder assembles a Diagnostic with a fluent API, mirroring the
// call-site style `New().Error().Syntax().Kind(...).Build()`.
type Builder struct {
	d *Diagnostic
}

// New starts building a diagnostic.
func New() *Builder {
	return &Builder{d: &Diagnostic{}}
}

func (b *Builder) Error() *Builder   { b.d.Severity = Error; return b }
func (b *Builder) Warning() *Builder { b.d.Severity = Warning; return b }
func (b *Builder) Note() *Builder    { b.d.Severity = Note; return b }

func (b *Builder) Syntax() *Builder      { b.d.Category = CategorySyntax; return b }
func (b *Builder) Attribute() *Builder   { b.d.Category = CategoryAttribute; return b }
func (b *Builder) Declaration() *Builder { b.d.Category = CategoryDeclaration; return b }
func (b *Builder) Recovery() *Builder    { b.d.Category = CategoryRecovery; return b }

func (b *Builder) Kind(code Code) *Builder { b.d.Code = code; return b }

func (b *Builder) Message(format string, args ...interface{}) *Builder {
	b.d.Message = fmt.Sprintf(format, args...)
	b.d.Args = args
	return b
}

func (b *Builder) At(span position.Span) *Builder { b.d.Span = span; return b }

func (b *Builder) FixIt(f FixIt) *Builder {
	b.d.FixIts = append(b.d.FixIts, f)
	return b
}

func (b *Builder) Build() *Diagnostic { return b.d }

// Sink is anything that can receive diagnostics; the parser only ever
// depends on this interface, never on a concrete engine.
type Sink interface {
	Report(d *Diagnostic)
}

// Engine is the default in-process diagnostic collector.
type Engine struct {
	diags []Diagnostic
}

// NewEngine creates an empty diagnostic engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Report records a diagnostic. It never panics or aborts parsing.
func (e *Engine) Report(d *Diagnostic) {
	e.diags = append(e.diags, *d)
}

// All returns every diagnostic recorded so far, in report order.
func (e *Engine) All() []Diagnostic {
	return e.diags
}

// HasErrors reports whether any Error-severity diagnostic was recorded.
func (e *Engine) HasErrors() bool {
	for _, d := range e.diags {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// Sorted returns diagnostics ordered by source position, stable on
// insertion order for diagnostics at the same position.
func (e *Engine) Sorted() []Diagnostic {
	out := make([]Diagnostic, len(e.diags))
	copy(out, e.diags)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Span.Start.Offset < out[j].Span.Start.Offset
	})
	return out
}

// Format renders every diagnostic as one line, in source-position
// order (see Sorted).
func (e *Engine) Format() string {
	var b strings.Builder
	for _, d := range e.Sorted() {
		fmt.Fprintf(&b, "%s: %s: %s\n", d.Span.Start.String(), d.Severity.String(), d.Message)
	}
	return b.String()
}
