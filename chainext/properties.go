package chainext

import (
	"github.com/rubiojr/chainext/ast"
	"github.com/rubiojr/chainext/diag"
)

// validateProperties checks the interface-level constraints of a chain
// extension. First violation wins; members are not inspected here.
func validateProperties(decl *ast.InterfaceDecl) error {
	if decl.Unsafe.Set {
		return diag.Errorf(decl.Unsafe.Span, "chain extensions cannot be unsafe")
	}
	if decl.Auto.Set {
		return diag.Errorf(decl.Auto.Span, "chain extensions cannot be auto interfaces")
	}
	if len(decl.Generics) > 0 {
		return diag.Errorf(decl.Generics[0].Span, "chain extensions must not be generic")
	}
	if decl.Vis != ast.VisPublic {
		return diag.Errorf(decl.VisSpan, "chain extensions must have public visibility")
	}
	if len(decl.Supertraits) > 0 {
		return diag.Errorf(decl.Supertraits[0].Span, "chain extensions with supertraits are not supported")
	}
	return nil
}
