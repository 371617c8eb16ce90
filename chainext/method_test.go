package chainext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubiojr/chainext/ast"
	"github.com/rubiojr/chainext/diag"
)

func TestMethod_DefaultImplementation(t *testing.T) {
	m := fn("a", 1, 3)
	m.Default = ast.Flag{Set: true, Span: diag.Span{Line: 3, Col: 14}}
	_, err := New(pubDecl(m))
	de := requireDiag(t, err)
	assert.Equal(t, "chain extension methods with default implementations are not supported", de.Primary().Message)
	assert.Equal(t, diag.Span{Line: 3, Col: 14}, de.Primary().Span)
}

func TestMethod_Modifiers(t *testing.T) {
	cases := []struct {
		name string
		set  func(*ast.MethodItem)
		want string
	}{
		{"const", func(m *ast.MethodItem) {
			m.Sig.Const = ast.Flag{Set: true, Span: diag.Span{Line: 3, Col: 5}}
		}, "const chain extension methods are not supported"},
		{"async", func(m *ast.MethodItem) {
			m.Sig.Async = ast.Flag{Set: true, Span: diag.Span{Line: 3, Col: 5}}
		}, "async chain extension methods are not supported"},
		{"unsafe", func(m *ast.MethodItem) {
			m.Sig.Unsafe = ast.Flag{Set: true, Span: diag.Span{Line: 3, Col: 5}}
		}, "unsafe chain extension methods are not supported"},
		{"abi", func(m *ast.MethodItem) {
			m.Sig.ABI = "C"
			m.Sig.ABISpan = diag.Span{Line: 3, Col: 5}
		}, "chain extension methods with non-default ABI are not supported"},
		{"variadic", func(m *ast.MethodItem) {
			m.Sig.Variadic = ast.Flag{Set: true, Span: diag.Span{Line: 3, Col: 18}}
		}, "variadic chain extension methods are not supported"},
		{"generic", func(m *ast.MethodItem) {
			m.Sig.Generics = []ast.GenericParam{{Name: "T", Span: diag.Span{Line: 3, Col: 10}}}
		}, "generic chain extension methods are not supported"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := fn("a", 1, 3)
			tc.set(m)
			_, err := New(pubDecl(m))
			de := requireDiag(t, err)
			assert.Equal(t, tc.want, de.Primary().Message)
		})
	}
}

func TestMethod_MissingDirective(t *testing.T) {
	m := fn("a", 1, 3)
	m.Attrs = nil
	_, err := New(pubDecl(m))
	de := requireDiag(t, err)
	assert.Equal(t, "missing @function(n) directive on chain extension method", de.Primary().Message)
	assert.Equal(t, m.Span, de.Primary().Span)
}

func TestMethod_MissingDirectivePoisonsValidSiblings(t *testing.T) {
	bad := fn("b", 2, 6)
	bad.Attrs = nil
	_, err := New(pubDecl(fn("a", 1, 3), bad))
	de := requireDiag(t, err)
	assert.Equal(t, "missing @function(n) directive on chain extension method", de.Primary().Message)
}

func TestMethod_WrongDirectiveKind(t *testing.T) {
	m := fn("a", 1, 3)
	m.Attrs = []ast.Attribute{{Name: "message", Span: diag.Span{Line: 2, Col: 5}}}
	_, err := New(pubDecl(m))
	de := requireDiag(t, err)
	assert.Equal(t, "unsupported directive for chain extension method, expected @function(n)", de.Primary().Message)
}

func TestMethod_DuplicateDirective(t *testing.T) {
	m := fn("a", 1, 3)
	m.Attrs = append(m.Attrs, ast.Attribute{
		Name: "function", Arg: "2", IsInt: true, Span: diag.Span{Line: 2, Col: 20},
	})
	_, err := New(pubDecl(m))
	de := requireDiag(t, err)
	require.Len(t, de.Labels, 2)
	assert.Contains(t, de.Labels[0].Message, "duplicate @function directive")
}

func TestMethod_ConflictingDirective(t *testing.T) {
	m := fn("a", 1, 3)
	m.Attrs = append(m.Attrs, ast.Attribute{Name: "payable", Span: diag.Span{Line: 2, Col: 20}})
	_, err := New(pubDecl(m))
	de := requireDiag(t, err)
	assert.Contains(t, de.Primary().Message, "conflicting @payable directive")
}

func TestMethod_MalformedDirectiveArgument(t *testing.T) {
	m := fn("a", 1, 3)
	m.Attrs = []ast.Attribute{{Name: "function", Arg: "id", Span: diag.Span{Line: 2, Col: 5}}}
	_, err := New(pubDecl(m))
	de := requireDiag(t, err)
	assert.Contains(t, de.Primary().Message, "unsigned integer argument")
}

func TestMethod_Receiver(t *testing.T) {
	m := fn("a", 1, 3)
	m.Sig.Params = append([]ast.Param{{
		Name: "self", Receiver: true, Span: diag.Span{Line: 3, Col: 11},
	}}, m.Sig.Params...)
	_, err := New(pubDecl(m))
	de := requireDiag(t, err)
	assert.Equal(t, "chain extension methods must not have a self receiver", de.Primary().Message)
	assert.Equal(t, diag.Span{Line: 3, Col: 11}, de.Primary().Span)
}

func TestMethod_DefaultBodyCheckedBeforeDirective(t *testing.T) {
	// A method that is wrong in several ways reports the structural
	// violation first.
	m := fn("a", 1, 3)
	m.Attrs = nil
	m.Default = ast.Flag{Set: true, Span: diag.Span{Line: 3, Col: 14}}
	_, err := New(pubDecl(m))
	de := requireDiag(t, err)
	assert.Equal(t, "chain extension methods with default implementations are not supported", de.Primary().Message)
}
