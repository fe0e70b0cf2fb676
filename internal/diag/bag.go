package diag

import (
	"bigcalc/internal/source"
)

// Bag collects diagnostics up to a configurable cap. The zero cap means
// unlimited. Bag implements Reporter.
type Bag struct {
	diags   []Diagnostic
	max     int
	dropped int
}

// NewBag creates a Bag that keeps at most max diagnostics (0 = unlimited).
func NewBag(max int) *Bag {
	return &Bag{max: max}
}

// Report implements Reporter.
func (b *Bag) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note) {
	if b.max > 0 && len(b.diags) >= b.max {
		b.dropped++
		return
	}
	b.diags = append(b.diags, Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

// All returns the collected diagnostics in report order.
func (b *Bag) All() []Diagnostic {
	return b.diags
}

// Dropped returns how many diagnostics were discarded over the cap.
func (b *Bag) Dropped() int {
	return b.dropped
}

// HasErrors reports whether any collected diagnostic has error severity.
func (b *Bag) HasErrors() bool {
	for _, d := range b.diags {
		if d.Severity == SevError {
			return true
		}
	}
	return false
}

// ErrorCount returns the number of error-severity diagnostics.
func (b *Bag) ErrorCount() int {
	n := 0
	for _, d := range b.diags {
		if d.Severity == SevError {
			n++
		}
	}
	return n
}
