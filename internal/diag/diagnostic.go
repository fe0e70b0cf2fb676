package diag

import (
	"bigcalc/internal/source"
)

// Note attaches a secondary message to a diagnostic, e.g. a hint.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one reported problem with its primary location.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}
