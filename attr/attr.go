// Package attr interprets the @-attributes attached to declaration
// members. Attributes whose name matches a recognized directive kind
// carry toolchain metadata; everything else is a plain annotation that
// passes through untouched.
//
// Sanitize implements the attribute-sanitation policy shared by all
// directive consumers: given an expected directive kind, exactly one
// directive of that kind must be present and no other recognized kind
// may appear alongside it.
package attr

import (
	"strconv"

	"github.com/rubiojr/chainext/ast"
	"github.com/rubiojr/chainext/diag"
)

// Kind identifies a recognized directive.
type Kind int

const (
	KindFunction     Kind = iota // @function(n)
	KindMessage                  // @message
	KindConstructor              // @constructor
	KindPayable                  // @payable
	KindHandleStatus             // @handle_status(bool)
	KindNamespace                // @namespace("...")
)

var kindNames = map[string]Kind{
	"function":      KindFunction,
	"message":       KindMessage,
	"constructor":   KindConstructor,
	"payable":       KindPayable,
	"handle_status": KindHandleStatus,
	"namespace":     KindNamespace,
}

func (k Kind) String() string {
	for name, kind := range kindNames {
		if kind == k {
			return name
		}
	}
	return "unknown"
}

// Directive is a recognized, parsed attribute.
type Directive struct {
	Kind Kind
	// Function holds the extension identifier for KindFunction directives.
	Function uint32
	Span     diag.Span
}

// parse interprets a single recognized attribute, validating its argument
// shape for the kinds that require one.
func parse(a ast.Attribute, kind Kind) (Directive, error) {
	d := Directive{Kind: kind, Span: a.Span}
	switch kind {
	case KindFunction:
		if !a.IsInt {
			return d, diag.Errorf(a.Span, "@function directive requires an unsigned integer argument")
		}
		n, err := strconv.ParseUint(a.Arg, 10, 32)
		if err != nil {
			return d, diag.Errorf(a.Span, "invalid extension identifier %q, expected unsigned 32-bit integer", a.Arg)
		}
		d.Function = uint32(n)
	case KindNamespace:
		if a.Arg == "" || a.IsInt {
			return d, diag.Errorf(a.Span, "@namespace directive requires a string argument")
		}
	}
	return d, nil
}

// Partition splits attrs into recognized directives and plain
// annotations, preserving order within each group. A recognized directive
// with a malformed argument is an error.
func Partition(attrs []ast.Attribute) ([]Directive, []ast.Attribute, error) {
	var dirs []Directive
	var plain []ast.Attribute
	for _, a := range attrs {
		kind, ok := kindNames[a.Name]
		if !ok {
			plain = append(plain, a)
			continue
		}
		d, err := parse(a, kind)
		if err != nil {
			return nil, nil, err
		}
		dirs = append(dirs, d)
	}
	return dirs, plain, nil
}

// First returns the first recognized directive among attrs, or nil if
// none is present.
func First(attrs []ast.Attribute) (*Directive, error) {
	dirs, _, err := Partition(attrs)
	if err != nil {
		return nil, err
	}
	if len(dirs) == 0 {
		return nil, nil
	}
	return &dirs[0], nil
}

// Sanitize enforces the sanitation policy on attrs: exactly one directive
// of the expected kind, no other recognized directive kinds. Plain
// annotations are ignored. On success the single matching directive is
// returned. The span parameter locates errors that concern the member as
// a whole (a missing directive).
func Sanitize(span diag.Span, attrs []ast.Attribute, expected Kind) (Directive, error) {
	dirs, _, err := Partition(attrs)
	if err != nil {
		return Directive{}, err
	}
	var found *Directive
	for i := range dirs {
		d := &dirs[i]
		if d.Kind != expected {
			return Directive{}, diag.Errorf(d.Span, "conflicting @%s directive, only @%s is allowed here", d.Kind, expected)
		}
		if found != nil {
			return Directive{}, diag.Errorf(d.Span, "duplicate @%s directive", expected).
				Combine(diag.Errorf(found.Span, "first @%s directive here", expected))
		}
		found = d
	}
	if found == nil {
		return Directive{}, diag.Errorf(span, "missing @%s directive", expected)
	}
	return *found, nil
}
