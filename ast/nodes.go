// Package ast defines the typed nodes of a parsed chain-extension
// interface declaration. The parser produces these values; the chainext
// validator consumes them and never mutates them.
package ast

import "github.com/rubiojr/chainext/diag"

// Flag records an optional modifier token: whether it was written and where.
type Flag struct {
	Set  bool
	Span diag.Span
}

// Visibility of an interface declaration.
type Visibility int

const (
	VisPrivate Visibility = iota // no modifier written
	VisPublic                    // pub
)

// InterfaceDecl is a parsed chain-extension interface declaration.
type InterfaceDecl struct {
	Name       string
	NameSpan   diag.Span
	Span       diag.Span // the interface keyword
	SourceFile string    // display path of the source file

	Vis     Visibility
	VisSpan diag.Span // span of the pub keyword, or of interface when absent

	Unsafe Flag
	Auto   Flag

	Generics    []GenericParam
	Supertraits []Supertrait

	Items []Item
}

// GenericParam is one declared type parameter.
type GenericParam struct {
	Name string
	Span diag.Span
}

// Supertrait is one inherited interface reference.
type Supertrait struct {
	Name string
	Span diag.Span
}

// Item is the interface for interface body members.
type Item interface {
	item()
	ItemSpan() diag.Span
}

// MethodItem is a method member: attributes plus a signature, optionally
// with a default implementation body.
type MethodItem struct {
	Attrs   []Attribute
	Sig     Signature
	Default Flag // set when the method carries a { ... } body
	Span    diag.Span
}

func (m *MethodItem) item()               {}
func (m *MethodItem) ItemSpan() diag.Span { return m.Span }

// ConstItem is an associated constant member.
type ConstItem struct {
	Name string
	Span diag.Span
}

func (c *ConstItem) item()               {}
func (c *ConstItem) ItemSpan() diag.Span { return c.Span }

// TypeItem is an associated type member.
type TypeItem struct {
	Name string
	Span diag.Span
}

func (t *TypeItem) item()               {}
func (t *TypeItem) ItemSpan() diag.Span { return t.Span }

// MacroItem is a macro invocation member, e.g. log!("...").
type MacroItem struct {
	Name string
	Span diag.Span
}

func (m *MacroItem) item()               {}
func (m *MacroItem) ItemSpan() diag.Span { return m.Span }

// VerbatimItem is an unrecognized token run the parser preserved
// rather than understood.
type VerbatimItem struct {
	Text string
	Span diag.Span
}

func (v *VerbatimItem) item()               {}
func (v *VerbatimItem) ItemSpan() diag.Span { return v.Span }

// Signature is a method signature.
type Signature struct {
	Name     string
	NameSpan diag.Span

	Const  Flag
	Async  Flag
	Unsafe Flag

	// ABI is a non-default calling convention, e.g. "C". Empty means default.
	ABI     string
	ABISpan diag.Span

	Generics []GenericParam
	Params   []Param
	Variadic Flag // trailing ... marker
}

// Receiver returns the self parameter if the method declares one.
func (s *Signature) Receiver() *Param {
	if len(s.Params) > 0 && s.Params[0].Receiver {
		return &s.Params[0]
	}
	return nil
}

// Param is one declared parameter.
type Param struct {
	Name     string
	Receiver bool // true for a leading self parameter
	Span     diag.Span
}

// Attribute is one @name or @name(arg) annotation as written. The attr
// package decides which attributes are recognized directives.
type Attribute struct {
	Name  string
	Arg   string // raw argument text, "" when none
	IsInt bool   // Arg is an unsigned integer literal
	Span  diag.Span
}
