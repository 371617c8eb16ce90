// Package scanner turns chain-extension declaration source into a token
// stream with line/column positions. It recognizes just enough lexical
// shape for the .cxi surface: identifiers, unsigned integers, double-quoted
// strings, punctuation, and the ... ellipsis.
package scanner

import (
	"fmt"

	"github.com/rubiojr/chainext/diag"
)

// Kind classifies a token.
type Kind int

const (
	EOF Kind = iota
	Ident
	Int
	String
	Punct    // single punctuation byte, in Token.Text
	Ellipsis // ...
)

// Token is one lexical token with its source position.
type Token struct {
	Kind Kind
	Text string // identifier name, digits, string content, or punct byte
	Span diag.Span
}

// Scanner iterates over source bytes producing Tokens. Line comments
// start with // and run to end of line.
type Scanner struct {
	src  string
	pos  int
	line int
	col  int
}

// New creates a Scanner for the given source text.
func New(src string) *Scanner {
	return &Scanner{src: src, line: 1, col: 1}
}

func (s *Scanner) peek() byte {
	if s.pos >= len(s.src) {
		return 0
	}
	return s.src[s.pos]
}

func (s *Scanner) peek2() byte {
	if s.pos+1 >= len(s.src) {
		return 0
	}
	return s.src[s.pos+1]
}

func (s *Scanner) advance() byte {
	ch := s.src[s.pos]
	s.pos++
	if ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return ch
}

func (s *Scanner) skipSpaceAndComments() {
	for s.pos < len(s.src) {
		ch := s.peek()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			s.advance()
		case ch == '/' && s.peek2() == '/':
			for s.pos < len(s.src) && s.peek() != '\n' {
				s.advance()
			}
		default:
			return
		}
	}
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch >= 0x80
}

func isIdentCont(ch byte) bool {
	return isIdentStart(ch) || (ch >= '0' && ch <= '9')
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

// Next returns the next token, or an EOF token at end of input.
// Unterminated strings and stray bytes outside the known punctuation set
// are reported as errors with their position.
func (s *Scanner) Next() (Token, error) {
	s.skipSpaceAndComments()
	span := diag.Span{Line: s.line, Col: s.col}
	if s.pos >= len(s.src) {
		return Token{Kind: EOF, Span: span}, nil
	}

	ch := s.peek()
	switch {
	case isIdentStart(ch):
		start := s.pos
		for s.pos < len(s.src) && isIdentCont(s.peek()) {
			s.advance()
		}
		return Token{Kind: Ident, Text: s.src[start:s.pos], Span: span}, nil

	case isDigit(ch):
		start := s.pos
		for s.pos < len(s.src) && isDigit(s.peek()) {
			s.advance()
		}
		return Token{Kind: Int, Text: s.src[start:s.pos], Span: span}, nil

	case ch == '"':
		s.advance()
		start := s.pos
		for s.pos < len(s.src) && s.peek() != '"' {
			if s.peek() == '\\' {
				s.advance()
				if s.pos >= len(s.src) {
					break
				}
			}
			s.advance()
		}
		if s.pos >= len(s.src) {
			return Token{}, diag.Errorf(span, "unterminated string literal")
		}
		text := s.src[start:s.pos]
		s.advance() // closing quote
		return Token{Kind: String, Text: text, Span: span}, nil

	case ch == '.' && s.peek2() == '.':
		if s.pos+2 < len(s.src) && s.src[s.pos+2] == '.' {
			s.advance()
			s.advance()
			s.advance()
			return Token{Kind: Ellipsis, Text: "...", Span: span}, nil
		}
	}

	switch ch {
	case '@', '(', ')', '[', ']', '{', '}', ':', ';', ',', '!', '<', '=', '.':
		s.advance()
		return Token{Kind: Punct, Text: string(ch), Span: span}, nil
	}
	s.advance()
	return Token{}, diag.Errorf(span, "unexpected character %q", string(ch))
}

// All scans the entire source, returning every token up to and including
// the final EOF token.
func All(src string) ([]Token, error) {
	sc := New(src)
	var toks []Token
	for {
		tok, err := sc.Next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks, nil
		}
	}
}

func (k Kind) String() string {
	switch k {
	case EOF:
		return "end of input"
	case Ident:
		return "identifier"
	case Int:
		return "integer"
	case String:
		return "string"
	case Punct:
		return "punctuation"
	case Ellipsis:
		return "..."
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}
