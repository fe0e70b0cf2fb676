// Package diagfmt renders diagnostics for humans. Calculator inputs are
// single lines, so the format is: a header with severity and code, the input
// line itself, and a caret underline for the primary span, then any notes.
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"bigcalc/internal/diag"
	"bigcalc/internal/source"
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	ShowNotes bool
}

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan)
	noteColor = color.New(color.FgCyan)
)

// Pretty writes every diagnostic in the bag to w.
// For each one it prints:
//
//	<input>: <SEV> <CODE>: <message>
//	  <input line>
//	  ^~~~ underline for the primary span
//
// followed by notes when ShowNotes is set.
func Pretty(w io.Writer, bag *diag.Bag, inputs *source.InputSet, opts PrettyOpts) {
	for _, d := range bag.All() {
		writeDiagnostic(w, d, inputs, opts)
	}
	if n := bag.Dropped(); n > 0 {
		fmt.Fprintf(w, "... and %d more diagnostics\n", n)
	}
}

func writeDiagnostic(w io.Writer, d diag.Diagnostic, inputs *source.InputSet, opts PrettyOpts) {
	in := inputs.Get(d.Primary.Input)
	name := "<unknown>"
	if in != nil {
		name = in.Name
	}

	sev := d.Severity.String()
	code := d.Code.ID()
	if opts.Color {
		sev = severityColor(d.Severity).Sprint(sev)
		code = severityColor(d.Severity).Sprint(code)
	}
	fmt.Fprintf(w, "%s: %s %s: %s\n", name, sev, code, d.Message)

	if in != nil && len(in.Content) > 0 {
		writeUnderline(w, in, d.Primary, opts)
	}

	if opts.ShowNotes {
		for _, note := range d.Notes {
			label := "note"
			if opts.Color {
				label = noteColor.Sprint(label)
			}
			fmt.Fprintf(w, "  %s: %s\n", label, note.Msg)
		}
	}
}

// writeUnderline prints the input line and a ^~~~ marker under the span.
func writeUnderline(w io.Writer, in *source.Input, sp source.Span, opts PrettyOpts) {
	line := string(in.Content)
	fmt.Fprintf(w, "  %s\n", line)

	start := int(sp.Start)
	width := int(sp.Len())
	if start > len(line) {
		start = len(line)
	}
	if width < 1 {
		width = 1
	}
	marker := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		marker = errColor.Sprint(marker)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", start), marker)
}

func severityColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return errColor
	case diag.SevWarning:
		return warnColor
	default:
		return infoColor
	}
}
