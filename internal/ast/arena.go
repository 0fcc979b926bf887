package ast

import "github.com/vesper-lang/vesper/internal/position"

// Arena owns every declaration node produced while parsing one file.
// Nodes are borrowed handles keyed to the arena's lifetime rather than
// a true bump-pointer region: Arena is a factory that stamps
// Kind/Span/Context consistently and keeps nodes reachable through the
// ordinary Go heap.
type Arena struct {
	nodes []Declaration
}

// NewArena creates an empty arena.
func NewArena() *Arena { return &Arena{} }

// All returns every declaration the arena has allocated, in allocation
// order.
func (a *Arena) All() []Declaration { return a.nodes }

func (a *Arena) track(d Declaration) {
	a.nodes = append(a.nodes, d)
}

func (a *Arena) NewImport(ctx *DeclContext, span position.Span, kind ImportKind, path []string, exported bool) *ImportDecl {
	d := &ImportDecl{
		Decl:       Decl{Kind: DeclImport, Span: span, Context: ctx},
		ImportKind: kind,
		Path:       path,
		Exported:   exported,
	}
	a.track(d)
	return d
}

func (a *Arena) NewExtension(ctx *DeclContext, span position.Span, extended TypeRepr, inherited []TypeRepr) *ExtensionDecl {
	d := &ExtensionDecl{
		Decl:         Decl{Kind: DeclExtension, Span: span, Context: ctx},
		ExtendedType: extended,
		Inherited:    inherited,
	}
	a.track(d)
	return d
}

func (a *Arena) NewTypeAlias(ctx *DeclContext, span position.Span, name string, inherited []TypeRepr, underlying TypeRepr) *TypeAliasDecl {
	d := &TypeAliasDecl{
		Decl:       Decl{Kind: DeclTypeAlias, Span: span, Context: ctx, Name: name},
		Inherited:  inherited,
		Underlying: underlying,
	}
	a.track(d)
	return d
}

func (a *Arena) NewAssociatedType(ctx *DeclContext, span position.Span, name string, inherited []TypeRepr) *AssociatedTypeDecl {
	d := &AssociatedTypeDecl{
		Decl:      Decl{Kind: DeclAssociatedType, Span: span, Context: ctx, Name: name},
		Inherited: inherited,
	}
	a.track(d)
	return d
}

func (a *Arena) NewVar(ctx *DeclContext, span position.Span, name string, pat Pattern, typ TypeRepr, isStatic bool) *VarDecl {
	d := &VarDecl{
		Decl:           Decl{Kind: DeclVar, Span: span, Context: ctx, Name: name, Discriminator: ctx.NextDiscriminator(name)},
		Pattern:        pat,
		TypeAnnotation: typ,
		IsStatic:       isStatic,
	}
	a.track(d)
	return d
}

func (a *Arena) NewFunc(ctx *DeclContext, span position.Span, name string, isStatic bool) *FuncDecl {
	d := &FuncDecl{
		Decl:     Decl{Kind: DeclFunc, Span: span, Context: ctx, Name: name, Discriminator: ctx.NextDiscriminator(name)},
		IsStatic: isStatic,
	}
	a.track(d)
	return d
}

// NewAccessor allocates an implicit getter/setter FuncDecl. Accessors
// do not consume a discriminator (theirs stays 0): only named,
// source-level declarations participate in discrimination.
func (a *Arena) NewAccessor(ctx *DeclContext, span position.Span, name string) *FuncDecl {
	d := &FuncDecl{
		Decl:       Decl{Kind: DeclFunc, Span: span, Context: ctx, Name: name},
		IsImplicit: true,
	}
	a.track(d)
	return d
}

func (a *Arena) NewEnum(ctx *DeclContext, span position.Span, name string, raw TypeRepr, inherited []TypeRepr) *EnumDecl {
	d := &EnumDecl{
		Decl:      Decl{Kind: DeclEnum, Span: span, Context: ctx, Name: name, Discriminator: ctx.NextDiscriminator(name)},
		RawType:   raw,
		Inherited: inherited,
	}
	a.track(d)
	return d
}

func (a *Arena) NewEnumCase(ctx *DeclContext, span position.Span) *EnumCaseDecl {
	d := &EnumCaseDecl{
		Decl: Decl{Kind: DeclEnumCase, Span: span, Context: ctx},
	}
	a.track(d)
	return d
}

func (a *Arena) NewEnumElement(ctx *DeclContext, span position.Span, name string, assoc []TypeRepr, raw Expr) *EnumElement {
	d := &EnumElement{
		Decl:            Decl{Kind: DeclEnumElement, Span: span, Context: ctx, Name: name, Discriminator: ctx.NextDiscriminator(name)},
		AssociatedTypes: assoc,
		RawValue:        raw,
	}
	a.track(d)
	return d
}

func (a *Arena) NewStruct(ctx *DeclContext, span position.Span, name string, inherited []TypeRepr) *StructDecl {
	d := &StructDecl{
		Decl:      Decl{Kind: DeclStruct, Span: span, Context: ctx, Name: name, Discriminator: ctx.NextDiscriminator(name)},
		Inherited: inherited,
	}
	a.track(d)
	return d
}

func (a *Arena) NewClass(ctx *DeclContext, span position.Span, name string, inherited []TypeRepr) *ClassDecl {
	d := &ClassDecl{
		Decl:      Decl{Kind: DeclClass, Span: span, Context: ctx, Name: name, Discriminator: ctx.NextDiscriminator(name)},
		Inherited: inherited,
	}
	a.track(d)
	return d
}

func (a *Arena) NewProtocol(ctx *DeclContext, span position.Span, name string, inherited []TypeRepr) *ProtocolDecl {
	d := &ProtocolDecl{
		Decl:      Decl{Kind: DeclProtocol, Span: span, Context: ctx, Name: name, Discriminator: ctx.NextDiscriminator(name)},
		Inherited: inherited,
	}
	a.track(d)
	return d
}

func (a *Arena) NewInit(ctx *DeclContext, span position.Span) *InitDecl {
	d := &InitDecl{
		Decl: Decl{Kind: DeclInit, Span: span, Context: ctx, Name: "init", Discriminator: ctx.NextDiscriminator("init")},
		Self: Param{Name: "self", IsImplicit: true},
	}
	a.track(d)
	return d
}

func (a *Arena) NewDeinit(ctx *DeclContext, span position.Span) *DeinitDecl {
	d := &DeinitDecl{
		Decl: Decl{Kind: DeclDeinit, Span: span, Context: ctx, Name: "deinit"},
		Self: Param{Name: "self", IsImplicit: true},
	}
	a.track(d)
	return d
}

func (a *Arena) NewSubscript(ctx *DeclContext, span position.Span) *SubscriptDecl {
	d := &SubscriptDecl{
		Decl: Decl{Kind: DeclSubscript, Span: span, Context: ctx, Name: "subscript", Discriminator: ctx.NextDiscriminator("subscript")},
	}
	a.track(d)
	return d
}

func (a *Arena) NewOperator(ctx *DeclContext, span position.Span, name string, fixity OperatorFixity) *OperatorDecl {
	d := &OperatorDecl{
		Decl:       Decl{Kind: DeclOperator, Span: span, Context: ctx, Name: name},
		Fixity:     fixity,
		Precedence: 100,
	}
	a.track(d)
	return d
}

func (a *Arena) NewTopLevelCode(ctx *DeclContext, span position.Span, body Stmt) *TopLevelCodeDecl {
	d := &TopLevelCodeDecl{
		Decl: Decl{Kind: DeclTopLevelCode, Span: span, Context: ctx},
		Body: body,
	}
	a.track(d)
	return d
}
