package chainext

import (
	"github.com/rubiojr/chainext/ast"
	"github.com/rubiojr/chainext/diag"
)

// validateItems walks the interface body in declaration order. Every
// member must be a valid chain-extension method with an identifier not
// seen before; the first offending member rejects the whole declaration.
func validateItems(decl *ast.InterfaceDecl) ([]*Method, error) {
	var methods []*Method
	seen := make(map[ID]diag.Span)
	for _, item := range decl.Items {
		switch it := item.(type) {
		case *ast.ConstItem:
			return nil, diag.Errorf(it.Span, "associated constants in chain extensions are not supported")
		case *ast.MacroItem:
			return nil, diag.Errorf(it.Span, "macros in chain extensions are not supported")
		case *ast.TypeItem:
			return nil, diag.Errorf(it.Span, "associated types in chain extensions are not supported")
		case *ast.VerbatimItem:
			return nil, diag.Errorf(it.Span, "encountered unsupported item in chain extension")
		case *ast.MethodItem:
			method, err := validateMethod(it)
			if err != nil {
				return nil, err
			}
			if previous, ok := seen[method.ID()]; ok {
				return nil, diag.Errorf(method.Span(), "encountered duplicate extension identifiers for the same chain extension").
					Combine(diag.Errorf(previous, "previous duplicate extension identifier here"))
			}
			seen[method.ID()] = method.Span()
			methods = append(methods, method)
		default:
			return nil, diag.Errorf(item.ItemSpan(), "encountered unknown or unsupported item in chain extension")
		}
	}
	return methods, nil
}
