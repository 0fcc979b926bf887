package ast

import "github.com/vesper-lang/vesper/internal/position"

// DeclKind tags which declaration variant a Decl is: a base record
// plus a kind-indexed payload, realized as a Go interface over
// concrete structs that all embed Decl.
type DeclKind int

const (
	DeclImport DeclKind = iota
	DeclExtension
	DeclTypeAlias
	DeclAssociatedType
	DeclVar
	DeclFunc
	DeclEnum
	DeclEnumCase
	DeclEnumElement
	DeclStruct
	DeclClass
	DeclProtocol
	DeclInit
	DeclDeinit
	DeclSubscript
	DeclOperator
	DeclTopLevelCode
)

func (k DeclKind) String() string {
	switch k {
	case DeclImport:
		return "import"
	case DeclExtension:
		return "extension"
	case DeclTypeAlias:
		return "typealias"
	case DeclAssociatedType:
		return "associatedtype"
	case DeclVar:
		return "var"
	case DeclFunc:
		return "func"
	case DeclEnum:
		return "enum"
	case DeclEnumCase:
		return "case"
	case DeclEnumElement:
		return "enum-element"
	case DeclStruct:
		return "struct"
	case DeclClass:
		return "class"
	case DeclProtocol:
		return "protocol"
	case DeclInit:
		return "init"
	case DeclDeinit:
		return "deinit"
	case DeclSubscript:
		return "subscript"
	case DeclOperator:
		return "operator"
	case DeclTopLevelCode:
		return "top-level-code"
	default:
		return "unknown-decl"
	}
}

// Decl is the shared base embedded by every declaration variant: range,
// attributes, enclosing context, and (for named declarations) a local
// discriminator.
type Decl struct {
	Kind          DeclKind
	Span          position.Span
	Attributes    DeclAttributes
	Context       *DeclContext
	Name          string
	Discriminator int
	// Invalid marks a declaration kept in the tree despite being
	// disallowed in its context: still produce the node, just flagged.
	Invalid bool
}

// Declaration is implemented by every concrete declaration-node type;
// it widens any variant-specific handle to the common declaration type.
type Declaration interface {
	Base() *Decl
}

func (d *Decl) Base() *Decl { return d }

// ContextKind tags the lexical container a DeclContext represents.
type ContextKind int

const (
	ContextFile ContextKind = iota
	ContextExtension
	ContextStruct
	ContextClass
	ContextProtocol
	ContextEnum
	ContextFunction
	ContextConstructor
	ContextDestructor
)

// Flags are the per-parse configuration bits, one set per DeclContext.
type Flags uint16

const (
	AllowTopLevel Flags = 1 << iota
	HasContainerType
	DisallowStoredInstanceVar
	DisallowComputedVar
	DisallowFuncDef
	DisallowNominalTypes
	DisallowInit
	DisallowTypeAliasDef
	InProtocol
	AllowEnumElement
	AllowDestructor
)

// Has reports whether all bits in want are set.
func (f Flags) Has(want Flags) bool { return f&want == want }

// DeclContext is the lexical container that owns child declarations:
// file, type, or nested type/function . Contexts nest as a
// stack; the parser always knows the current one.
type DeclContext struct {
	Kind    ContextKind
	Parent  *DeclContext
	Flags   Flags
	Members []*Decl

	// discriminators is the per-function local-discriminator table:
	// Identifier -> next counter value. Only meaningful when Kind is a
	// function-like context; nil otherwise.
	discriminators map[string]int
}

// NewFileContext creates the root context for a single source file.
func NewFileContext(flags Flags) *DeclContext {
	return &DeclContext{Kind: ContextFile, Flags: flags | AllowTopLevel}
}

// Nested creates a child context of the given kind and flags, linked to
// the parent for lookup of enclosing properties.
func (c *DeclContext) Nested(kind ContextKind, flags Flags) *DeclContext {
	child := &DeclContext{Kind: kind, Parent: c, Flags: flags}
	if kind == ContextFunction || kind == ContextConstructor || kind == ContextDestructor {
		child.discriminators = make(map[string]int)
	}
	return child
}

// AddMember appends d to the context's member list and sets d.Context,
// preserving source order.
func (c *DeclContext) AddMember(d *Decl) {
	d.Context = c
	c.Members = append(c.Members, d)
}

// NextDiscriminator reads and increments the discriminator counter for
// name in the nearest enclosing function-like context, assigning 0, 1,
// 2, ... in call order with no gaps . Declarations in a
// non-function context get discriminator 0 and share no counter.
func (c *DeclContext) NextDiscriminator(name string) int {
	for ctx := c; ctx != nil; ctx = ctx.Parent {
		if ctx.discriminators == nil {
			continue
		}
		n := ctx.discriminators[name]
		ctx.discriminators[name] = n + 1
		return n
	}
	return 0
}

// IsTopLevel reports whether c is the file context.
func (c *DeclContext) IsTopLevel() bool { return c.Kind == ContextFile }

// InProtocol reports whether c's flags carry InProtocol: true for a
// protocol body and for any context nested in one that inherited the
// flag.
func (c *DeclContext) InProtocol() bool { return c.Flags.Has(InProtocol) }
