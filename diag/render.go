package diag

import (
	"errors"
	"fmt"
	"io"
)

const (
	colorRed   = "\033[31m"
	colorBlue  = "\033[34m"
	colorBold  = "\033[1m"
	colorReset = "\033[0m"
)

// Render writes a compiler-style report for err to w, prefixing each label
// with the source file name. The first label renders as "error:", all
// following labels as "note:". Non-diagnostic errors render as a single
// uncolored line.
func Render(w io.Writer, filename string, err error, color bool) {
	var de *Error
	if !errors.As(err, &de) {
		fmt.Fprintf(w, "%s: error: %v\n", filename, err)
		return
	}
	for i, l := range de.Labels {
		kind := "error"
		tint := colorRed
		if i > 0 {
			kind = "note"
			tint = colorBlue
		}
		if color {
			fmt.Fprintf(w, "%s%s:%s:%s %s%s:%s %s\n",
				colorBold, filename, l.Span, colorReset, tint, kind, colorReset, l.Message)
		} else {
			fmt.Fprintf(w, "%s:%s: %s: %s\n", filename, l.Span, kind, l.Message)
		}
	}
}
