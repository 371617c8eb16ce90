package parser

import (
	"strings"
	"testing"

	"github.com/rubiojr/chainext/ast"
)

func parse(t *testing.T, src string) *ast.InterfaceDecl {
	t.Helper()
	p := &Parser{}
	decl, err := p.Parse("test.cxi", []byte(src))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	return decl
}

func TestParseSimple(t *testing.T) {
	decl := parse(t, `
pub interface Psp {
    @function(1)
    fn read(key);

    @function(2)
    fn write(key, value);
}
`)
	if decl.Name != "Psp" {
		t.Fatalf("expected name Psp, got %q", decl.Name)
	}
	if decl.Vis != ast.VisPublic {
		t.Fatal("expected public visibility")
	}
	if len(decl.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(decl.Items))
	}
	m, ok := decl.Items[0].(*ast.MethodItem)
	if !ok {
		t.Fatalf("expected method item, got %T", decl.Items[0])
	}
	if m.Sig.Name != "read" {
		t.Fatalf("expected method read, got %q", m.Sig.Name)
	}
	if len(m.Attrs) != 1 || m.Attrs[0].Name != "function" || m.Attrs[0].Arg != "1" || !m.Attrs[0].IsInt {
		t.Fatalf("unexpected attrs: %+v", m.Attrs)
	}
	if len(m.Sig.Params) != 1 || m.Sig.Params[0].Name != "key" {
		t.Fatalf("unexpected params: %+v", m.Sig.Params)
	}
}

func TestParseInterfaceModifiers(t *testing.T) {
	decl := parse(t, "unsafe auto interface X {}")
	if !decl.Unsafe.Set {
		t.Fatal("expected unsafe flag")
	}
	if !decl.Auto.Set {
		t.Fatal("expected auto flag")
	}
	if decl.Vis != ast.VisPrivate {
		t.Fatal("expected private visibility")
	}
	if decl.Unsafe.Span.Line != 1 || decl.Unsafe.Span.Col != 1 {
		t.Fatalf("unexpected unsafe span: %v", decl.Unsafe.Span)
	}
}

func TestParseGenericsAndSupertraits(t *testing.T) {
	decl := parse(t, "pub interface X[T, U] : Base, Other {}")
	if len(decl.Generics) != 2 || decl.Generics[0].Name != "T" || decl.Generics[1].Name != "U" {
		t.Fatalf("unexpected generics: %+v", decl.Generics)
	}
	if len(decl.Supertraits) != 2 || decl.Supertraits[0].Name != "Base" {
		t.Fatalf("unexpected supertraits: %+v", decl.Supertraits)
	}
}

func TestParseMemberKinds(t *testing.T) {
	decl := parse(t, `
pub interface X {
    const FOO;
    type Item;
    log!("hello");
    let x;
}
`)
	if len(decl.Items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(decl.Items))
	}
	if c, ok := decl.Items[0].(*ast.ConstItem); !ok || c.Name != "FOO" {
		t.Fatalf("expected const FOO, got %#v", decl.Items[0])
	}
	if ty, ok := decl.Items[1].(*ast.TypeItem); !ok || ty.Name != "Item" {
		t.Fatalf("expected type Item, got %#v", decl.Items[1])
	}
	if m, ok := decl.Items[2].(*ast.MacroItem); !ok || m.Name != "log" {
		t.Fatalf("expected macro log, got %#v", decl.Items[2])
	}
	v, ok := decl.Items[3].(*ast.VerbatimItem)
	if !ok {
		t.Fatalf("expected verbatim item, got %#v", decl.Items[3])
	}
	if v.Text != "let x" {
		t.Fatalf("unexpected verbatim text: %q", v.Text)
	}
	if v.Span.Line != 6 {
		t.Fatalf("unexpected verbatim span: %v", v.Span)
	}
}

func TestParseMethodModifiers(t *testing.T) {
	decl := parse(t, `
pub interface X {
    const fn a();
    async fn b();
    unsafe fn c();
    extern "C" fn d();
}
`)
	mods := []func(*ast.MethodItem) bool{
		func(m *ast.MethodItem) bool { return m.Sig.Const.Set },
		func(m *ast.MethodItem) bool { return m.Sig.Async.Set },
		func(m *ast.MethodItem) bool { return m.Sig.Unsafe.Set },
		func(m *ast.MethodItem) bool { return m.Sig.ABI == "C" },
	}
	for i, check := range mods {
		m := decl.Items[i].(*ast.MethodItem)
		if !check(m) {
			t.Fatalf("item %d: expected modifier set: %+v", i, m.Sig)
		}
	}
}

func TestParseDefaultBody(t *testing.T) {
	decl := parse(t, `
pub interface X {
    fn broken(k) {
        inner { nested };
    }
}
`)
	m := decl.Items[0].(*ast.MethodItem)
	if !m.Default.Set {
		t.Fatal("expected default body flag")
	}
	if m.Default.Span.Line != 3 {
		t.Fatalf("unexpected default body span: %v", m.Default.Span)
	}
}

func TestParseReceiverAndVariadic(t *testing.T) {
	decl := parse(t, `
pub interface X {
    fn m(self, a);
    fn v(a, ...);
    fn w(...);
}
`)
	m := decl.Items[0].(*ast.MethodItem)
	if !m.Sig.Params[0].Receiver {
		t.Fatal("expected receiver param")
	}
	if m.Sig.Params[1].Receiver {
		t.Fatal("second param must not be a receiver")
	}
	v := decl.Items[1].(*ast.MethodItem)
	if !v.Sig.Variadic.Set {
		t.Fatal("expected variadic flag")
	}
	if len(v.Sig.Params) != 1 {
		t.Fatalf("expected 1 named param, got %d", len(v.Sig.Params))
	}
	w := decl.Items[2].(*ast.MethodItem)
	if !w.Sig.Variadic.Set {
		t.Fatal("expected variadic flag on bare ... method")
	}
}

func TestParseGenericMethod(t *testing.T) {
	decl := parse(t, `
pub interface X {
    fn f[T](a);
}
`)
	m := decl.Items[0].(*ast.MethodItem)
	if len(m.Sig.Generics) != 1 || m.Sig.Generics[0].Name != "T" {
		t.Fatalf("unexpected method generics: %+v", m.Sig.Generics)
	}
}

func TestParsePlainAnnotationsPreserved(t *testing.T) {
	decl := parse(t, `
pub interface X {
    @deprecated
    @function(1)
    @doc("reads a key")
    fn read(key);
}
`)
	m := decl.Items[0].(*ast.MethodItem)
	if len(m.Attrs) != 3 {
		t.Fatalf("expected 3 attrs, got %d", len(m.Attrs))
	}
	if m.Attrs[0].Name != "deprecated" || m.Attrs[0].Arg != "" {
		t.Fatalf("unexpected attr: %+v", m.Attrs[0])
	}
	if m.Attrs[2].Name != "doc" || m.Attrs[2].Arg != "reads a key" {
		t.Fatalf("unexpected attr: %+v", m.Attrs[2])
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"pub trait X {}", "expected interface declaration"},
		{"pub interface X {", "unexpected end of input"},
		{"pub interface X {} fn a();", "after interface declaration"},
		{"pub interface X { fn a() }", `expected ";" or method body`},
		{"pub interface X { @function() fn a(); }", "expected directive argument"},
	}
	for _, tc := range cases {
		p := &Parser{}
		_, err := p.Parse("test.cxi", []byte(tc.src))
		if err == nil {
			t.Fatalf("expected error for %q", tc.src)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("error %q does not mention %q", err.Error(), tc.want)
		}
	}
}

func TestParseSpans(t *testing.T) {
	decl := parse(t, "pub interface X {\n    @function(7)\n    fn a();\n}\n")
	if decl.Span.Line != 1 || decl.Span.Col != 5 {
		t.Fatalf("unexpected interface span: %v", decl.Span)
	}
	m := decl.Items[0].(*ast.MethodItem)
	if m.Span.Line != 3 || m.Span.Col != 5 {
		t.Fatalf("unexpected method span: %v", m.Span)
	}
	if m.Attrs[0].Span.Line != 2 || m.Attrs[0].Span.Col != 5 {
		t.Fatalf("unexpected attr span: %v", m.Attrs[0].Span)
	}
}
