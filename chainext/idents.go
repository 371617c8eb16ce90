package chainext

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/rubiojr/chainext/ast"
	"github.com/rubiojr/chainext/diag"
)

// reservedPrefix marks identifiers generated by the chainext toolchain.
// User declarations must not collide with them.
const reservedPrefix = "__chainext"

// lintIdents rejects reserved and non-NFC identifiers anywhere in the
// declaration before any other validation runs, so later codegen can rely
// on every name being usable as-is.
func lintIdents(decl *ast.InterfaceDecl) error {
	if err := lintIdent(decl.Name, decl.NameSpan); err != nil {
		return err
	}
	for _, g := range decl.Generics {
		if err := lintIdent(g.Name, g.Span); err != nil {
			return err
		}
	}
	for _, s := range decl.Supertraits {
		if err := lintIdent(s.Name, s.Span); err != nil {
			return err
		}
	}
	for _, item := range decl.Items {
		method, ok := item.(*ast.MethodItem)
		if !ok {
			continue
		}
		if err := lintIdent(method.Sig.Name, method.Sig.NameSpan); err != nil {
			return err
		}
		for _, p := range method.Sig.Params {
			if err := lintIdent(p.Name, p.Span); err != nil {
				return err
			}
		}
		for _, g := range method.Sig.Generics {
			if err := lintIdent(g.Name, g.Span); err != nil {
				return err
			}
		}
	}
	return nil
}

func lintIdent(name string, span diag.Span) error {
	if strings.HasPrefix(name, reservedPrefix) {
		return diag.Errorf(span, "identifiers starting with %s are reserved for internal use", reservedPrefix)
	}
	if !norm.NFC.IsNormalString(name) {
		return diag.Errorf(span, "identifier %q must be in Unicode normal form NFC", name)
	}
	return nil
}
