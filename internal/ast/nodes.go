package ast

// This file holds the concrete declaration-node variants. Every
// variant embeds Decl and so satisfies Declaration.

// ImportKind restricts an import to one kind of entity, per the import
// grammar's optional kind keyword.
type ImportKind int

const (
	ImportModule ImportKind = iota
	ImportTypeAlias
	ImportStruct
	ImportClass
	ImportEnum
	ImportProtocol
	ImportVar
	ImportFunc
)

// ImportDecl is `import [kind] Path.Segments`.
type ImportDecl struct {
	Decl
	ImportKind ImportKind
	Path       []string
	Exported   bool
}

// ExtensionDecl is `extension Type : Inherited... { members }`.
type ExtensionDecl struct {
	Decl
	ExtendedType TypeRepr
	Inherited    []TypeRepr
	Members      []*Decl
}

// TypeAliasDecl is `typealias Name : Inherited... = Underlying`.
// Underlying is nil when InProtocol context made it an associated type
// instead (see AssociatedTypeDecl) or when the `=` was simply absent.
type TypeAliasDecl struct {
	Decl
	Inherited  []TypeRepr
	Underlying TypeRepr
}

// AssociatedTypeDecl is the InProtocol-context form of `typealias Name`
// (no `=` is allowed there).
type AssociatedTypeDecl struct {
	Decl
	Inherited []TypeRepr
}

// VarDecl is one `name (: Type)? (= init)?` binding from a `var`
// declaration, or the accessor-block form `name: Type { get ... set ... }`.
type VarDecl struct {
	Decl
	Pattern        Pattern
	TypeAnnotation TypeRepr
	Initializer    Expr
	IsStatic       bool
	IsComputed     bool
	Getter         *FuncDecl
	Setter         *FuncDecl
	SetterParam    string
}

// Param is one function/constructor/subscript parameter.
type Param struct {
	ExternalName string // "" if none
	Name         string
	Type         TypeRepr
	IsImplicit   bool
}

// GenericParam is one entry of a generic parameter list, `<T, U: C>`.
type GenericParam struct {
	Name       string
	Constraint TypeRepr // nil if unconstrained
}

// FuncDecl is `func Name<Generics>(Params) -> Return { Body }`, also
// used for the implicit getter/setter of a computed var or subscript.
type FuncDecl struct {
	Decl
	GenericParams []GenericParam
	Params        []Param
	ReturnType    TypeRepr
	Body          *BraceStmt
	IsStatic      bool
	IsImplicit    bool
	BodyDelayed   bool
}

// OperatorFixity is the fixity an operator-named function, or an
// operator declaration, was parsed with.
type OperatorFixity int

const (
	FixityNone OperatorFixity = iota
	FixityPrefix
	FixityPostfix
	FixityInfix
)

// EnumDecl is `enum Name<Generics> : RawType { members }`.
type EnumDecl struct {
	Decl
	GenericParams []GenericParam
	RawType       TypeRepr
	Inherited     []TypeRepr
	Members       []*Decl
}

// EnumElement is one `Name(Tuple)?` or `Name = rawValue` case entry.
type EnumElement struct {
	Decl
	AssociatedTypes []TypeRepr
	RawValue        Expr
}

// EnumCaseDecl is one `case elem1, elem2, ...` line; its Elements are
// reachable only through it, not registered individually in the owning
// context's member list.
type EnumCaseDecl struct {
	Decl
	Elements []*EnumElement
}

// StructDecl is `struct Name<Generics> : Inherited... { members }`.
type StructDecl struct {
	Decl
	GenericParams []GenericParam
	Inherited     []TypeRepr
	Members       []*Decl
}

// ClassDecl is `class Name<Generics> : Inherited... { members }`.
type ClassDecl struct {
	Decl
	GenericParams []GenericParam
	Inherited     []TypeRepr
	Members       []*Decl
}

// ProtocolDecl is `protocol Name : Inherited... { members }`.
type ProtocolDecl struct {
	Decl
	Inherited []TypeRepr
	Members   []*Decl
}

// InitDecl is a constructor: `init<Generics>(Args) { Body }`.
type InitDecl struct {
	Decl
	GenericParams []GenericParam
	ArgPattern    Pattern // external/argument pattern
	BodyPattern   Pattern // internal/body pattern
	Self          Param   // implicit, immutable binding to the constructed instance
	Body          *BraceStmt
	BodyDelayed   bool
}

// DeinitDecl is a destructor: `deinit { Body }`; it never has
// parameters.
type DeinitDecl struct {
	Decl
	Self        Param // implicit, immutable binding to the instance being torn down
	Body        *BraceStmt
	BodyDelayed bool
}

// SubscriptDecl is `subscript(Indices) -> Element { accessors }`.
type SubscriptDecl struct {
	Decl
	Indices     Pattern
	ElementType TypeRepr
	Getter      *FuncDecl
	Setter      *FuncDecl
	SetterParam string
}

// Associativity is the declared associativity of an infix operator.
type Associativity int

const (
	AssocNone Associativity = iota
	AssocLeft
	AssocRight
)

// OperatorDecl is `operator prefix|postfix|infix Op { ... }`.
type OperatorDecl struct {
	Decl
	Fixity        OperatorFixity
	Associativity Associativity // infix only
	Precedence    int           // infix only, default 100
}

// TopLevelCodeDecl wraps one executable top-level statement parsed at
// script scope. A var binding at script scope is not wrapped: it is
// recorded as a plain VarDecl member of the file context.
type TopLevelCodeDecl struct {
	Decl
	Body Stmt
}

var (
	_ Declaration = (*ImportDecl)(nil)
	_ Declaration = (*ExtensionDecl)(nil)
	_ Declaration = (*TypeAliasDecl)(nil)
	_ Declaration = (*AssociatedTypeDecl)(nil)
	_ Declaration = (*VarDecl)(nil)
	_ Declaration = (*FuncDecl)(nil)
	_ Declaration = (*EnumDecl)(nil)
	_ Declaration = (*EnumCaseDecl)(nil)
	_ Declaration = (*EnumElement)(nil)
	_ Declaration = (*StructDecl)(nil)
	_ Declaration = (*ClassDecl)(nil)
	_ Declaration = (*ProtocolDecl)(nil)
	_ Declaration = (*InitDecl)(nil)
	_ Declaration = (*DeinitDecl)(nil)
	_ Declaration = (*SubscriptDecl)(nil)
	_ Declaration = (*OperatorDecl)(nil)
	_ Declaration = (*TopLevelCodeDecl)(nil)
)
