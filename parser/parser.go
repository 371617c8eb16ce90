// Package parser parses .cxi chain-extension declaration source into the
// typed AST consumed by the chainext validator. The grammar is
// deliberately permissive: shapes the validator must reject (default
// bodies, receivers, variadic markers, generic methods, stray members)
// all parse successfully and are rejected later with precise spans.
package parser

import (
	"strings"

	"github.com/rubiojr/chainext/ast"
	"github.com/rubiojr/chainext/diag"
	"github.com/rubiojr/chainext/scanner"
)

// Parser parses one declaration source into an *ast.InterfaceDecl.
type Parser struct {
	sc     *scanner.Scanner
	tok    scanner.Token
	peeked *scanner.Token
	err    *diag.Error
}

// Parse parses src into an interface declaration. The name parameter is
// recorded on the result for display in diagnostics.
func (p *Parser) Parse(name string, src []byte) (*ast.InterfaceDecl, error) {
	p.sc = scanner.New(string(src))
	p.next()
	decl := p.parseDecl()
	if p.err != nil {
		return nil, p.err
	}
	decl.SourceFile = name
	return decl, nil
}

func (p *Parser) next() {
	if p.err != nil {
		return
	}
	if p.peeked != nil {
		p.tok = *p.peeked
		p.peeked = nil
		return
	}
	tok, err := p.sc.Next()
	if err != nil {
		p.fail(err)
		return
	}
	p.tok = tok
}

// peek returns the token after the current one without consuming it.
func (p *Parser) peek() scanner.Token {
	if p.peeked == nil {
		tok, err := p.sc.Next()
		if err != nil {
			p.fail(err)
			return scanner.Token{Kind: scanner.EOF}
		}
		p.peeked = &tok
	}
	return *p.peeked
}

func (p *Parser) fail(err error) {
	if p.err == nil {
		if de, ok := err.(*diag.Error); ok {
			p.err = de
		} else {
			p.err = diag.Errorf(p.tok.Span, "%v", err)
		}
		p.tok = scanner.Token{Kind: scanner.EOF, Span: p.tok.Span}
	}
}

func (p *Parser) errorf(span diag.Span, format string, args ...any) {
	p.fail(diag.Errorf(span, format, args...))
}

func (p *Parser) isPunct(text string) bool {
	return p.tok.Kind == scanner.Punct && p.tok.Text == text
}

func (p *Parser) isKeyword(text string) bool {
	return p.tok.Kind == scanner.Ident && p.tok.Text == text
}

func (p *Parser) expectPunct(text string) diag.Span {
	span := p.tok.Span
	if !p.isPunct(text) {
		p.errorf(span, "expected %q, found %s", text, p.describe())
		return span
	}
	p.next()
	return span
}

func (p *Parser) expectIdent() (string, diag.Span) {
	span := p.tok.Span
	if p.tok.Kind != scanner.Ident {
		p.errorf(span, "expected identifier, found %s", p.describe())
		return "", span
	}
	name := p.tok.Text
	p.next()
	return name, span
}

func (p *Parser) describe() string {
	if p.tok.Kind == scanner.EOF {
		return "end of input"
	}
	return "\"" + p.tok.Text + "\""
}

func (p *Parser) parseDecl() *ast.InterfaceDecl {
	decl := &ast.InterfaceDecl{}

	// Leading modifiers: pub, unsafe, auto in any order.
mods:
	for p.err == nil {
		switch {
		case p.isKeyword("pub"):
			decl.Vis = ast.VisPublic
			decl.VisSpan = p.tok.Span
			p.next()
		case p.isKeyword("unsafe"):
			decl.Unsafe = ast.Flag{Set: true, Span: p.tok.Span}
			p.next()
		case p.isKeyword("auto"):
			decl.Auto = ast.Flag{Set: true, Span: p.tok.Span}
			p.next()
		default:
			break mods
		}
	}

	if !p.isKeyword("interface") {
		p.errorf(p.tok.Span, "expected interface declaration, found %s", p.describe())
		return decl
	}
	decl.Span = p.tok.Span
	if decl.Vis != ast.VisPublic {
		decl.VisSpan = decl.Span
	}
	p.next()

	decl.Name, decl.NameSpan = p.expectIdent()
	decl.Generics = p.parseGenerics()

	if p.isPunct(":") {
		p.next()
		for p.err == nil {
			name, span := p.expectIdent()
			decl.Supertraits = append(decl.Supertraits, ast.Supertrait{Name: name, Span: span})
			if !p.isPunct(",") {
				break
			}
			p.next()
		}
	}

	p.expectPunct("{")
	for p.err == nil && !p.isPunct("}") {
		if p.tok.Kind == scanner.EOF {
			p.errorf(p.tok.Span, "unexpected end of input, expected \"}\"")
			return decl
		}
		item := p.parseItem()
		if item != nil {
			decl.Items = append(decl.Items, item)
		}
	}
	p.expectPunct("}")
	if p.err == nil && p.tok.Kind != scanner.EOF {
		p.errorf(p.tok.Span, "unexpected %s after interface declaration", p.describe())
	}
	return decl
}

// parseGenerics parses an optional [T, U] type-parameter list.
func (p *Parser) parseGenerics() []ast.GenericParam {
	if !p.isPunct("[") {
		return nil
	}
	p.next()
	var params []ast.GenericParam
	for p.err == nil {
		name, span := p.expectIdent()
		params = append(params, ast.GenericParam{Name: name, Span: span})
		if !p.isPunct(",") {
			break
		}
		p.next()
	}
	p.expectPunct("]")
	return params
}

func (p *Parser) parseItem() ast.Item {
	attrs := p.parseAttrs()

	switch {
	case p.isKeyword("const") && p.peek().Kind == scanner.Ident && !isMethodStart(p.peek().Text):
		span := p.tok.Span
		p.next()
		name, _ := p.expectIdent()
		p.expectPunct(";")
		return &ast.ConstItem{Name: name, Span: span}

	case p.isKeyword("type"):
		span := p.tok.Span
		p.next()
		name, _ := p.expectIdent()
		p.expectPunct(";")
		return &ast.TypeItem{Name: name, Span: span}

	case p.tok.Kind == scanner.Ident && p.peek().Kind == scanner.Punct && p.peek().Text == "!":
		span := p.tok.Span
		name := p.tok.Text
		p.next() // name
		p.next() // !
		p.expectPunct("(")
		p.skipBalanced("(", ")")
		p.expectPunct(";")
		return &ast.MacroItem{Name: name, Span: span}

	case p.isKeyword("fn") || isMethodStart(p.tok.Text) && p.tok.Kind == scanner.Ident:
		return p.parseMethod(attrs)
	}

	return p.parseVerbatim()
}

// isMethodStart reports whether an identifier can begin a method item.
func isMethodStart(text string) bool {
	switch text {
	case "fn", "const", "async", "unsafe", "extern":
		return true
	}
	return false
}

func (p *Parser) parseAttrs() []ast.Attribute {
	var attrs []ast.Attribute
	for p.err == nil && p.isPunct("@") {
		span := p.tok.Span
		p.next()
		name, _ := p.expectIdent()
		a := ast.Attribute{Name: name, Span: span}
		if p.isPunct("(") {
			p.next()
			switch p.tok.Kind {
			case scanner.Int:
				a.Arg = p.tok.Text
				a.IsInt = true
				p.next()
			case scanner.String, scanner.Ident:
				a.Arg = p.tok.Text
				p.next()
			default:
				p.errorf(p.tok.Span, "expected directive argument, found %s", p.describe())
			}
			p.expectPunct(")")
		}
		attrs = append(attrs, a)
	}
	return attrs
}

func (p *Parser) parseMethod(attrs []ast.Attribute) ast.Item {
	item := &ast.MethodItem{Attrs: attrs, Span: p.tok.Span}
	sig := &item.Sig

sigMods:
	for p.err == nil {
		switch {
		case p.isKeyword("const"):
			sig.Const = ast.Flag{Set: true, Span: p.tok.Span}
			p.next()
		case p.isKeyword("async"):
			sig.Async = ast.Flag{Set: true, Span: p.tok.Span}
			p.next()
		case p.isKeyword("unsafe"):
			sig.Unsafe = ast.Flag{Set: true, Span: p.tok.Span}
			p.next()
		case p.isKeyword("extern"):
			sig.ABISpan = p.tok.Span
			p.next()
			if p.tok.Kind == scanner.String {
				sig.ABI = p.tok.Text
				p.next()
			} else {
				// Bare extern implies the platform default C convention.
				sig.ABI = "C"
			}
		default:
			break sigMods
		}
	}

	if !p.isKeyword("fn") {
		p.errorf(p.tok.Span, "expected \"fn\", found %s", p.describe())
		return item
	}
	p.next()

	sig.Name, sig.NameSpan = p.expectIdent()
	sig.Generics = p.parseGenerics()

	p.expectPunct("(")
	first := true
	for p.err == nil && !p.isPunct(")") {
		if p.tok.Kind == scanner.Ellipsis {
			sig.Variadic = ast.Flag{Set: true, Span: p.tok.Span}
			p.next()
			break
		}
		name, span := p.expectIdent()
		sig.Params = append(sig.Params, ast.Param{
			Name:     name,
			Receiver: first && name == "self",
			Span:     span,
		})
		first = false
		if !p.isPunct(",") {
			break
		}
		p.next()
	}
	p.expectPunct(")")

	switch {
	case p.isPunct(";"):
		p.next()
	case p.isPunct("{"):
		item.Default = ast.Flag{Set: true, Span: p.tok.Span}
		p.next()
		p.skipBalanced("{", "}")
	default:
		p.errorf(p.tok.Span, "expected \";\" or method body, found %s", p.describe())
	}
	return item
}

// skipBalanced consumes tokens until the matching close for an already
// consumed open delimiter.
func (p *Parser) skipBalanced(open, close string) {
	depth := 1
	for p.err == nil && depth > 0 {
		switch {
		case p.tok.Kind == scanner.EOF:
			p.errorf(p.tok.Span, "unexpected end of input, expected %q", close)
			return
		case p.isPunct(open):
			depth++
		case p.isPunct(close):
			depth--
		}
		if depth > 0 {
			p.next()
		}
	}
	p.next() // the closing delimiter
}

// parseVerbatim consumes an unrecognized member up to the next top-level
// ";" (consumed) or the closing "}" of the interface (left in place),
// preserving the raw token text.
func (p *Parser) parseVerbatim() ast.Item {
	span := p.tok.Span
	var parts []string
	depth := 0
	for p.err == nil {
		switch {
		case p.tok.Kind == scanner.EOF:
			p.errorf(p.tok.Span, "unexpected end of input in interface body")
			return nil
		case depth == 0 && p.isPunct(";"):
			p.next()
			return &ast.VerbatimItem{Text: strings.Join(parts, " "), Span: span}
		case depth == 0 && p.isPunct("}"):
			return &ast.VerbatimItem{Text: strings.Join(parts, " "), Span: span}
		case p.isPunct("{") || p.isPunct("(") || p.isPunct("["):
			depth++
		case p.isPunct("}") || p.isPunct(")") || p.isPunct("]"):
			depth--
		}
		parts = append(parts, p.tok.Text)
		p.next()
	}
	return nil
}
