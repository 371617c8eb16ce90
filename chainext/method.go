package chainext

import (
	"github.com/rubiojr/chainext/ast"
	"github.com/rubiojr/chainext/attr"
	"github.com/rubiojr/chainext/diag"
)

// validateMethod checks the structural constraints of one method member
// and extracts its @function directive.
func validateMethod(item *ast.MethodItem) (*Method, error) {
	if item.Default.Set {
		return nil, diag.Errorf(item.Default.Span, "chain extension methods with default implementations are not supported")
	}
	sig := &item.Sig
	if sig.Const.Set {
		return nil, diag.Errorf(sig.Const.Span, "const chain extension methods are not supported")
	}
	if sig.Async.Set {
		return nil, diag.Errorf(sig.Async.Span, "async chain extension methods are not supported")
	}
	if sig.Unsafe.Set {
		return nil, diag.Errorf(sig.Unsafe.Span, "unsafe chain extension methods are not supported")
	}
	if sig.ABI != "" {
		return nil, diag.Errorf(sig.ABISpan, "chain extension methods with non-default ABI are not supported")
	}
	if sig.Variadic.Set {
		return nil, diag.Errorf(sig.Variadic.Span, "variadic chain extension methods are not supported")
	}
	if len(sig.Generics) > 0 {
		return nil, diag.Errorf(sig.Generics[0].Span, "generic chain extension methods are not supported")
	}

	first, err := attr.First(item.Attrs)
	if err != nil {
		return nil, err
	}
	switch {
	case first == nil:
		return nil, diag.Errorf(item.Span, "missing @function(n) directive on chain extension method")
	case first.Kind != attr.KindFunction:
		return nil, diag.Errorf(item.Span, "unsupported directive for chain extension method, expected @function(n)")
	}
	return finishMethod(item, *first)
}

// finishMethod sanitizes the attribute list and applies the receiver rule
// once the @function directive is known to be present.
func finishMethod(item *ast.MethodItem, directive attr.Directive) (*Method, error) {
	if _, err := attr.Sanitize(item.Span, item.Attrs, attr.KindFunction); err != nil {
		return nil, err
	}
	if receiver := item.Sig.Receiver(); receiver != nil {
		return nil, diag.Errorf(receiver.Span, "chain extension methods must not have a self receiver")
	}
	return newMethod(item, ID(directive.Function)), nil
}
