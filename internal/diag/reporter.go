package diag

import (
	"fmt"

	"bigcalc/internal/source"
)

// Reporter is the minimal contract the lexer, parser and evaluator use to
// hand off diagnostics; formatting lives in diagfmt.
type Reporter interface {
	Report(code Code, sev Severity, primary source.Span, msg string, notes []Note)
}

// Errorf reports an error-severity diagnostic with a formatted message.
func Errorf(r Reporter, code Code, primary source.Span, format string, args ...any) {
	if r == nil {
		return
	}
	r.Report(code, SevError, primary, fmt.Sprintf(format, args...), nil)
}

// ErrorfNote is Errorf with a single attached note.
func ErrorfNote(r Reporter, code Code, primary source.Span, note Note, format string, args ...any) {
	if r == nil {
		return
	}
	r.Report(code, SevError, primary, fmt.Sprintf(format, args...), []Note{note})
}

// NopReporter drops everything.
type NopReporter struct{}

func (NopReporter) Report(Code, Severity, source.Span, string, []Note) {}
