package ast

import "github.com/vesper-lang/vesper/internal/position"

// DeclAttributeKind enumerates the fixed, finite set of attributes a
// declaration can carry.
type DeclAttributeKind int

const (
	AttrAsmName DeclAttributeKind = iota
	AttrInfix
	AttrUnary
	AttrWeak
	AttrUnowned
	AttrNoReturn
	AttrOptional
	AttrResilient
	AttrFragile
	AttrBornFragile
	AttrPrefix
	AttrPostfix
	AttrExported
	numDeclAttrs

	// NumDeclAttrs is the exported count, for callers that need to
	// range over every declaration attribute kind.
	NumDeclAttrs = numDeclAttrs
)

var declAttrNames = map[DeclAttributeKind]string{
	AttrAsmName:    "asmname",
	AttrInfix:      "infix",
	AttrUnary:      "unary",
	AttrWeak:       "weak",
	AttrUnowned:    "unowned",
	AttrNoReturn:   "noreturn",
	AttrOptional:   "optional",
	AttrResilient:  "resilient",
	AttrFragile:    "fragile",
	AttrBornFragile: "born_fragile",
	AttrPrefix:     "prefix",
	AttrPostfix:    "postfix",
	AttrExported:   "exported",
}

// DeclAttributeByName looks up a declaration attribute's kind by its
// exact spelling against the fixed table above.
func DeclAttributeByName(name string) (DeclAttributeKind, bool) {
	for k, n := range declAttrNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// TypeAttributeKind enumerates the type-only attributes.
type TypeAttributeKind int

const (
	TypeAttrInOut TypeAttributeKind = iota
	TypeAttrAutoClosure
	TypeAttrCC
	TypeAttrLocalStorage
	TypeAttrSILSelf
	TypeAttrSILWeak
	TypeAttrSILUnowned
	numTypeAttrs
)

var typeAttrNames = map[TypeAttributeKind]string{
	TypeAttrInOut:       "inout",
	TypeAttrAutoClosure: "auto_closure",
	TypeAttrCC:          "cc",
	TypeAttrLocalStorage: "local_storage",
	TypeAttrSILSelf:     "sil_self",
	TypeAttrSILWeak:     "sil_weak",
	TypeAttrSILUnowned:  "sil_unowned",
}

// TypeAttributeByName looks up a type attribute's kind by its exact
// spelling.
func TypeAttributeByName(name string) (TypeAttributeKind, bool) {
	for k, n := range typeAttrNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// SILOnly reports whether a type attribute is only legal in SIL mode.
func (k TypeAttributeKind) SILOnly() bool {
	switch k {
	case TypeAttrLocalStorage, TypeAttrSILSelf, TypeAttrSILWeak, TypeAttrSILUnowned:
		return true
	default:
		return false
	}
}

type attrSlot struct {
	present bool
	loc     position.Position
}

// OwnershipKind is the derived ownership classification of a
// declaration's attributes.
type OwnershipKind int

const (
	OwnershipNone OwnershipKind = iota
	OwnershipWeak
	OwnershipUnowned
)

// ResilienceKind is the derived resilience classification.
type ResilienceKind int

const (
	ResilienceDefault ResilienceKind = iota
	ResilienceResilient
	ResilienceFragile
	ResilienceBornFragile
)

// CallingConvention names the calling conventions the `cc` type
// attribute accepts.
type CallingConvention string

const (
	CCFreestanding CallingConvention = "freestanding"
	CCMethod       CallingConvention = "method"
	CCCDecl        CallingConvention = "cdecl"
	CCObjCMethod   CallingConvention = "objc_method"
)

// DeclAttributes is the attribute set attached to a declaration.
type DeclAttributes struct {
	slots   [numDeclAttrs]attrSlot
	AsmName string // raw byte range content of the asmname string literal
}

// Has reports whether k is set.
func (a *DeclAttributes) Has(k DeclAttributeKind) bool { return a.slots[k].present }

// Loc returns the declaration location of k (zero Position if unset).
func (a *DeclAttributes) Loc(k DeclAttributeKind) position.Position { return a.slots[k].loc }

// Set marks k present at loc, and reports whether it was already set
// (the "first location wins" duplicate rule is the caller's job: Set
// never overwrites an existing location).
func (a *DeclAttributes) Set(k DeclAttributeKind, loc position.Position) (alreadySet bool) {
	if a.slots[k].present {
		return true
	}
	a.slots[k] = attrSlot{present: true, loc: loc}
	return false
}

// Clear removes k.
func (a *DeclAttributes) Clear(k DeclAttributeKind) { a.slots[k] = attrSlot{} }

// OwnershipKind returns the derived ownership kind: invariant is that
// weak and unowned are never both set.
func (a *DeclAttributes) OwnershipKind() OwnershipKind {
	switch {
	case a.Has(AttrWeak):
		return OwnershipWeak
	case a.Has(AttrUnowned):
		return OwnershipUnowned
	default:
		return OwnershipNone
	}
}

// ResilienceKind returns the derived resilience kind: at most one of
// resilient/fragile/born_fragile is ever set.
func (a *DeclAttributes) ResilienceKind() ResilienceKind {
	switch {
	case a.Has(AttrResilient):
		return ResilienceResilient
	case a.Has(AttrFragile):
		return ResilienceFragile
	case a.Has(AttrBornFragile):
		return ResilienceBornFragile
	default:
		return ResilienceDefault
	}
}

// IsPrefix/IsPostfix report the exclusive prefix/postfix markers.
func (a *DeclAttributes) IsPrefix() bool  { return a.Has(AttrPrefix) }
func (a *DeclAttributes) IsPostfix() bool { return a.Has(AttrPostfix) }

// TypeAttributes is the attribute set attached to a type-repr.
type TypeAttributes struct {
	slots [numTypeAttrs]attrSlot
	CC    CallingConvention
}

func (a *TypeAttributes) Has(k TypeAttributeKind) bool              { return a.slots[k].present }
func (a *TypeAttributes) Loc(k TypeAttributeKind) position.Position { return a.slots[k].loc }

func (a *TypeAttributes) Set(k TypeAttributeKind, loc position.Position) (alreadySet bool) {
	if a.slots[k].present {
		return true
	}
	a.slots[k] = attrSlot{present: true, loc: loc}
	return false
}

func (a *TypeAttributes) Clear(k TypeAttributeKind) { a.slots[k] = attrSlot{} }

// OwnershipKind mirrors DeclAttributes.OwnershipKind for the SIL-level
// ownership siblings sil_weak/sil_unowned.
func (a *TypeAttributes) OwnershipKind() OwnershipKind {
	switch {
	case a.Has(TypeAttrSILWeak):
		return OwnershipWeak
	case a.Has(TypeAttrSILUnowned):
		return OwnershipUnowned
	default:
		return OwnershipNone
	}
}

// IsInOut/IsAutoClosure report the exclusive inout/auto_closure markers.
func (a *TypeAttributes) IsInOut() bool       { return a.Has(TypeAttrInOut) }
func (a *TypeAttributes) IsAutoClosure() bool { return a.Has(TypeAttrAutoClosure) }
