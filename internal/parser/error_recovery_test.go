package parser

import (
	"testing"

	"github.com/vesper-lang/vesper/internal/ast"
	"github.com/vesper-lang/vesper/internal/diagnostic"
)

func TestRecoveryResyncsToNextDeclaration(t *testing.T) {
	p, diags := parseSource(t, "struct ; func good() { }")
	if !diags.HasErrors() {
		t.Fatalf("expected the malformed struct to be reported")
	}
	members := p.FileContext().Members
	if len(members) != 1 {
		t.Fatalf("expected recovery to still find the trailing func, got %d members", len(members))
	}
	if members[0].Kind != ast.DeclFunc || members[0].Name != "good" {
		t.Fatalf("unexpected recovered member: %+v", members[0])
	}
}

func TestExtraClosingBraceIsDiagnosedAndSkipped(t *testing.T) {
	p, diags := parseSource(t, "} func ok() { }")
	found := false
	for _, d := range diags.All() {
		if d.Code == diagnostic.ExtraRBrace {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an extraneous '}' diagnostic")
	}
	if len(p.FileContext().Members) != 1 {
		t.Fatalf("expected the parser to continue past the stray brace")
	}
}

func TestPrefixPostfixAreMutuallyExclusive(t *testing.T) {
	_, diags := parseSource(t, "@prefix @postfix func foo() { }")
	found := false
	for _, d := range diags.All() {
		if d.Code == diagnostic.CombineAttribute {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a combine-attribute diagnostic for @prefix @postfix")
	}
}

func TestDuplicateAttributeIsWarningNotError(t *testing.T) {
	_, diags := parseSource(t, "@exported @exported import core")
	sawWarning := false
	for _, d := range diags.All() {
		if d.Code == diagnostic.DuplicateAttribute {
			if d.Severity != diagnostic.Warning {
				t.Fatalf("expected duplicate attribute to be a warning, got %v", d.Severity)
			}
			sawWarning = true
		}
	}
	if !sawWarning {
		t.Fatalf("expected a duplicate-attribute diagnostic")
	}
	if diags.HasErrors() {
		t.Fatalf("a duplicate attribute alone should not produce an error: %s", diags.Format())
	}
}

func TestSetWithoutGetIsRejected(t *testing.T) {
	p, diags := parseSource(t, `struct Box {
		var area: Int {
			set: area = 0
		}
	}`)
	if !diags.HasErrors() {
		t.Fatalf("expected a lone 'set' accessor to be diagnosed")
	}
	d := requireMember(t, p, 0)
	s := p.lastNode(d).(*ast.StructDecl)
	v, ok := p.varAt(s.Members, 0)
	if !ok {
		t.Fatalf("expected a var member")
	}
	if v.Setter != nil {
		t.Fatalf("expected the setter to be discarded")
	}
}

func TestTypeAnnotationPropagatesBackToEarlierUntypedBindings(t *testing.T) {
	p, diags := parseSource(t, "var a, b, c: Int")
	requireNoErrors(t, diags)
	members := p.FileContext().Members
	if len(members) != 3 {
		t.Fatalf("expected 3 bindings, got %d", len(members))
	}
	for _, m := range members {
		v, ok := p.lastNode(m).(*ast.VarDecl)
		if !ok {
			t.Fatalf("expected a VarDecl, got %T", p.lastNode(m))
		}
		if v.TypeAnnotation == nil {
			t.Fatalf("expected %q to receive the propagated type annotation", v.Name)
		}
	}
}

func TestDestructorRejectsParameterList(t *testing.T) {
	_, diags := parseSource(t, "class C { deinit(x: Int) { } }")
	if !diags.HasErrors() {
		t.Fatalf("expected a non-empty deinit parameter list to be diagnosed")
	}
}

func TestSubscriptRequiresGetAccessor(t *testing.T) {
	_, diags := parseSource(t, `struct Box {
		subscript(i: Int) -> Int {
			set(v): i = v
		}
	}`)
	if !diags.HasErrors() {
		t.Fatalf("expected a subscript without 'get' to be diagnosed")
	}
}

func TestEnumRejectsStoredInstanceVar(t *testing.T) {
	_, diags := parseSource(t, `enum Shape {
		case circle
		var x: Int
	}`)
	if !diags.HasErrors() {
		t.Fatalf("expected a stored property inside an enum to be diagnosed")
	}
}

func TestProtocolRejectsStoredInstanceVar(t *testing.T) {
	_, diags := parseSource(t, `protocol Shape {
		var x: Int
	}`)
	if !diags.HasErrors() {
		t.Fatalf("expected a stored property inside a protocol to be diagnosed")
	}
}

func TestVarWithAccessorBlockRequiresTypeAnnotation(t *testing.T) {
	p, diags := parseSource(t, `struct Box {
		var x {
			get: return 1
		}
		var y: Int
	}`)
	if !diags.HasErrors() {
		t.Fatalf("expected a missing type annotation to be diagnosed")
	}
	d := requireMember(t, p, 0)
	s := p.lastNode(d).(*ast.StructDecl)
	if len(s.Members) != 2 {
		t.Fatalf("expected the discarded accessor block to leave 2 members, got %d", len(s.Members))
	}
	y, ok := p.varAt(s.Members, 1)
	if !ok || y.Name != "y" {
		t.Fatalf("expected the declaration following the discarded block to parse cleanly, got %+v", y)
	}
}

func TestSILTopLevelFormIsSkippedWithoutBeingParsedAsInstructions(t *testing.T) {
	arena := ast.NewArena()
	diags := diagnostic.NewEngine()
	p := New("test.vsp", "sil @foo : $() -> () { } func after() { }", arena, diags)
	p.SILMode = true
	p.ParseTopLevel()
	requireNoErrors(t, diags)
	members := p.FileContext().Members
	if len(members) != 1 || members[0].Name != "after" {
		t.Fatalf("expected only the trailing func to be recorded, got %+v", members)
	}
}
