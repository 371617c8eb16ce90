// Package diag provides source positions and structured, multi-span
// diagnostics for the chainext front-end. Library packages only build and
// return *Error values; rendering to a terminal happens at the CLI edge.
package diag

import (
	"fmt"
	"strings"
)

// Span is a position in the original declaration source.
// Line and Col are 1-based; the zero Span means "unknown position".
type Span struct {
	Line int
	Col  int
}

// IsZero reports whether the span carries no position.
func (s Span) IsZero() bool { return s.Line == 0 && s.Col == 0 }

func (s Span) String() string {
	if s.IsZero() {
		return "?:?"
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Col)
}

// Label is one (message, position) pair of a diagnostic.
type Label struct {
	Message string
	Span    Span
}

// Error is a structured diagnostic holding one or more ordered labels.
// The first label is the primary error; any further labels are notes
// (e.g. the previous occurrence in a duplicate-identifier report).
type Error struct {
	Labels []Label
}

// Errorf builds a single-label diagnostic at the given span.
func Errorf(span Span, format string, args ...any) *Error {
	return &Error{Labels: []Label{{Message: fmt.Sprintf(format, args...), Span: span}}}
}

// Combine appends other's labels to e, preserving order, and returns e.
// Used to attach secondary locations to a primary diagnostic.
func (e *Error) Combine(other *Error) *Error {
	e.Labels = append(e.Labels, other.Labels...)
	return e
}

// Primary returns the first label. It panics on an empty Error, which
// cannot be built through Errorf.
func (e *Error) Primary() Label { return e.Labels[0] }

func (e *Error) Error() string {
	var b strings.Builder
	for i, l := range e.Labels {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s: %s", l.Span, l.Message)
	}
	return b.String()
}
