// Package chainext validates a parsed chain-extension interface
// declaration and produces the typed IR handed to code generators.
// Validation is a single pass over one declaration: identifier lint,
// interface-level properties, then every member in order. It either
// yields a complete Extension or a *diag.Error; no partial result is
// ever produced and the package never prints or logs.
package chainext

import (
	"github.com/rubiojr/chainext/ast"
	"github.com/rubiojr/chainext/attr"
	"github.com/rubiojr/chainext/diag"
)

// ID is the unique identifier of one chain-extension method within its
// interface.
type ID uint32

// Method is one validated chain-extension method.
type Method struct {
	item  *ast.MethodItem
	attrs []ast.Attribute // plain annotations, directives stripped
	id    ID
}

// Name returns the method identifier.
func (m *Method) Name() string { return m.item.Sig.Name }

// Sig returns the validated method signature.
func (m *Method) Sig() *ast.Signature { return &m.item.Sig }

// Attrs returns the method's plain annotations with all recognized
// directives stripped.
func (m *Method) Attrs() []ast.Attribute { return m.attrs }

// Span returns the source position of the method declaration.
func (m *Method) Span() diag.Span { return m.item.Span }

// ID returns the method's extension identifier.
func (m *Method) ID() ID { return m.id }

// Extension is a fully validated chain extension: the original
// declaration plus its methods in declaration order. All method IDs are
// pairwise distinct.
type Extension struct {
	decl    *ast.InterfaceDecl
	Methods []*Method
}

// Decl returns the original interface declaration for re-emission.
func (e *Extension) Decl() *ast.InterfaceDecl { return e.decl }

// Name returns the interface identifier.
func (e *Extension) Name() string { return e.decl.Name }

// New validates decl as a chain extension. The declaration is borrowed,
// never mutated. Any violation aborts the whole validation; the returned
// error is always a *diag.Error carrying the offending span (two spans
// for duplicate extension identifiers).
func New(decl *ast.InterfaceDecl) (*Extension, error) {
	if err := lintIdents(decl); err != nil {
		return nil, err
	}
	if err := validateProperties(decl); err != nil {
		return nil, err
	}
	methods, err := validateItems(decl)
	if err != nil {
		return nil, err
	}
	return &Extension{decl: decl, Methods: methods}, nil
}

// newMethod builds a validated method, splitting its attribute list into
// stripped directives and preserved plain annotations. Only called after
// the attribute list passed sanitation, so Partition cannot fail here.
func newMethod(item *ast.MethodItem, id ID) *Method {
	_, plain, err := attr.Partition(item.Attrs)
	if err != nil {
		panic("chainext: sanitized attribute list failed to partition: " + err.Error())
	}
	return &Method{item: item, attrs: plain, id: id}
}
