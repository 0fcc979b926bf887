package parser

import (
	"testing"

	"github.com/vesper-lang/vesper/internal/ast"
)

func TestTopLevelDeclarationKinds(t *testing.T) {
	cases := []struct {
		name   string
		source string
		check  func(t *testing.T, p *Parser)
	}{
		{
			name:   "qualified import with kind keyword",
			source: "import struct core.Widget",
			check: func(t *testing.T, p *Parser) {
				d := requireMember(t, p, 0)
				if d.Kind != ast.DeclImport {
					t.Fatalf("expected DeclImport, got %s", d.Kind)
				}
			},
		},
		{
			name:   "asmname attribute on a function",
			source: "@asmname=\"c_widget_new\" func widgetNew() { }",
			check: func(t *testing.T, p *Parser) {
				d := requireMember(t, p, 0)
				if d.Kind != ast.DeclFunc {
					t.Fatalf("expected DeclFunc, got %s", d.Kind)
				}
				if !d.Attributes.Has(ast.AttrAsmName) {
					t.Fatalf("expected @asmname attribute to be recorded")
				}
				if d.Attributes.AsmName != "c_widget_new" {
					t.Fatalf("unexpected asm name: %q", d.Attributes.AsmName)
				}
			},
		},
		{
			name: "struct with a computed var",
			source: `struct Box {
				var x: Int {
					get: return 1
					set(v): self.x = v
				}
			}`,
			check: func(t *testing.T, p *Parser) {
				d := requireMember(t, p, 0)
				s, ok := p.lastNode(d).(*ast.StructDecl)
				if !ok {
					t.Fatalf("expected *ast.StructDecl, got %T", p.lastNode(d))
				}
				if len(s.Members) != 1 {
					t.Fatalf("expected 1 member, got %d", len(s.Members))
				}
				v, ok := p.varAt(s.Members, 0)
				if !ok {
					t.Fatalf("expected a VarDecl member")
				}
				if !v.IsComputed {
					t.Fatalf("expected x to be computed")
				}
				if v.Getter == nil || v.Setter == nil {
					t.Fatalf("expected both a getter and a setter")
				}
				if v.Setter.Params[0].Name != "v" {
					t.Fatalf("expected setter parameter name 'v', got %q", v.Setter.Params[0].Name)
				}
				if len(v.Getter.Body.Elements) != 1 {
					t.Fatalf("expected 1 getter body element, got %d", len(v.Getter.Body.Elements))
				}
				if _, ok := v.Getter.Body.Elements[0].(ast.ReturnStmt); !ok {
					t.Fatalf("expected the getter body to be a return statement, got %T", v.Getter.Body.Elements[0])
				}
				if len(v.Setter.Body.Elements) != 1 {
					t.Fatalf("expected 1 setter body element, got %d", len(v.Setter.Body.Elements))
				}
				assign, ok := v.Setter.Body.Elements[0].(ast.ExprStmt)
				if !ok {
					t.Fatalf("expected the setter body to be an expression statement, got %T", v.Setter.Body.Elements[0])
				}
				if _, ok := assign.Value.(ast.AssignExpr); !ok {
					t.Fatalf("expected the setter body to assign, got %T", assign.Value)
				}
			},
		},
		{
			name: "enum with raw type and associated-value cases",
			source: `enum Shape : Int {
				case circle(Int)
				case square = 4
			}`,
			check: func(t *testing.T, p *Parser) {
				d := requireMember(t, p, 0)
				e, ok := p.lastNode(d).(*ast.EnumDecl)
				if !ok {
					t.Fatalf("expected *ast.EnumDecl, got %T", p.lastNode(d))
				}
				if e.RawType == nil {
					t.Fatalf("expected a raw type")
				}
				var elements []*ast.EnumElement
				for _, m := range e.Members {
					if m.Kind != ast.DeclEnumCase {
						continue
					}
					ec := p.lastNode(m).(*ast.EnumCaseDecl)
					elements = append(elements, ec.Elements...)
				}
				if len(elements) != 2 {
					t.Fatalf("expected 2 enum elements, got %d", len(elements))
				}
				if elements[0].Name != "circle" || len(elements[0].AssociatedTypes) != 1 {
					t.Fatalf("unexpected circle element: %+v", elements[0])
				}
				if elements[1].Name != "square" || elements[1].RawValue == nil {
					t.Fatalf("unexpected square element: %+v", elements[1])
				}
			},
		},
		{
			name:   "infix operator declaration",
			source: "operator infix +++ { associativity left precedence 140 }",
			check: func(t *testing.T, p *Parser) {
				d := requireMember(t, p, 0)
				o, ok := p.lastNode(d).(*ast.OperatorDecl)
				if !ok {
					t.Fatalf("expected *ast.OperatorDecl, got %T", p.lastNode(d))
				}
				if o.Fixity != ast.FixityInfix {
					t.Fatalf("expected infix fixity, got %v", o.Fixity)
				}
				if o.Associativity != ast.AssocLeft {
					t.Fatalf("expected left associativity, got %v", o.Associativity)
				}
				if o.Precedence != 140 {
					t.Fatalf("expected precedence 140, got %d", o.Precedence)
				}
			},
		},
		{
			name:   "generic operator function name",
			source: "func ==<T>(lhs: T, rhs: T) -> Bool { return true }",
			check: func(t *testing.T, p *Parser) {
				d := requireMember(t, p, 0)
				f, ok := p.lastNode(d).(*ast.FuncDecl)
				if !ok {
					t.Fatalf("expected *ast.FuncDecl, got %T", p.lastNode(d))
				}
				if f.Name != "==" {
					t.Fatalf("expected operator name '==', got %q", f.Name)
				}
				if len(f.GenericParams) != 1 || f.GenericParams[0].Name != "T" {
					t.Fatalf("expected one generic parameter 'T', got %+v", f.GenericParams)
				}
				if len(f.Params) != 2 {
					t.Fatalf("expected 2 parameters, got %d", len(f.Params))
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, diags := parseSource(t, tc.source)
			requireNoErrors(t, diags)
			tc.check(t, p)
		})
	}
}

func TestConstructorAndDestructorIntroduceImplicitSelf(t *testing.T) {
	p, diags := parseSource(t, `class Box {
		init(x: Int) { }
		deinit { }
	}`)
	requireNoErrors(t, diags)
	d := requireMember(t, p, 0)
	c, ok := p.lastNode(d).(*ast.ClassDecl)
	if !ok {
		t.Fatalf("expected *ast.ClassDecl, got %T", p.lastNode(d))
	}
	if len(c.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(c.Members))
	}
	init, ok := p.lastNode(c.Members[0]).(*ast.InitDecl)
	if !ok {
		t.Fatalf("expected *ast.InitDecl, got %T", p.lastNode(c.Members[0]))
	}
	if init.Self.Name != "self" || !init.Self.IsImplicit {
		t.Fatalf("expected an implicit 'self' binding on the constructor, got %+v", init.Self)
	}
	deinit, ok := p.lastNode(c.Members[1]).(*ast.DeinitDecl)
	if !ok {
		t.Fatalf("expected *ast.DeinitDecl, got %T", p.lastNode(c.Members[1]))
	}
	if deinit.Self.Name != "self" || !deinit.Self.IsImplicit {
		t.Fatalf("expected an implicit 'self' binding on the destructor, got %+v", deinit.Self)
	}
}

// lastNode finds the arena-allocated node whose base matches d. Tests
// reach through this instead of changing arena.New* to also return a
// concrete pointer, since the parser itself only ever threads *ast.Decl
// past dispatchDeclaration.
func (p *Parser) lastNode(want *ast.Decl) ast.Declaration {
	for _, n := range p.arena.All() {
		if n.Base() == want {
			return n
		}
	}
	return nil
}

func (p *Parser) varAt(members []*ast.Decl, i int) (*ast.VarDecl, bool) {
	if i >= len(members) {
		return nil, false
	}
	v, ok := p.lastNode(members[i]).(*ast.VarDecl)
	return v, ok
}
