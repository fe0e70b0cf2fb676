// Package driver wires the front end together: it registers raw input,
// runs the lexer, parser and evaluator, and collects diagnostics. The CLI
// and the REPL UI only ever talk to this package.
package driver

import (
	"fmt"

	"golang.org/x/text/unicode/norm"

	"bigcalc/internal/bigint"
	"bigcalc/internal/diag"
	"bigcalc/internal/eval"
	"bigcalc/internal/lexer"
	"bigcalc/internal/parser"
	"bigcalc/internal/source"
)

// EvalResult is the outcome of evaluating one expression.
type EvalResult struct {
	// Value is the computed integer; only meaningful when Ok is true.
	Value bigint.Int
	// Ok is true when the expression evaluated without errors.
	Ok bool
	// Bag holds the diagnostics for this input.
	Bag *diag.Bag
	// InputID identifies the registered input inside the session's set.
	InputID source.InputID
}

// Session evaluates successive expressions in one base. All inputs share an
// InputSet so diagnostics can be rendered after the fact.
type Session struct {
	base     int
	maxDiags int
	inputs   *source.InputSet
	count    int
}

// NewSession validates the base and creates an empty session.
// maxDiags caps diagnostics per input (0 = unlimited).
func NewSession(base, maxDiags int) (*Session, error) {
	if err := bigint.CheckBase(base); err != nil {
		return nil, err
	}
	return &Session{
		base:     base,
		maxDiags: maxDiags,
		inputs:   source.NewInputSet(),
	}, nil
}

// Base returns the session base.
func (s *Session) Base() int { return s.base }

// Inputs returns the session's input set for diagnostic rendering.
func (s *Session) Inputs() *source.InputSet { return s.inputs }

// EvalLine evaluates one expression line. name labels the input in
// diagnostics; an empty name gets a sequential "input:N" label. The line is
// NFC-normalized before lexing.
func (s *Session) EvalLine(name, line string) EvalResult {
	s.count++
	if name == "" {
		name = fmt.Sprintf("input:%d", s.count)
	}
	content := norm.NFC.Bytes([]byte(line))
	id := s.inputs.Add(name, content)

	bag := diag.NewBag(s.maxDiags)
	lx := lexer.New(s.inputs.Get(id), lexer.Options{Base: s.base, Reporter: bag})
	tree := parser.New(lx, bag).ParseLine()

	res := EvalResult{Bag: bag, InputID: id}
	if bag.HasErrors() {
		return res
	}
	value, ok := eval.New(s.base, bag).Eval(tree)
	if !ok || bag.HasErrors() {
		return res
	}
	res.Value = value
	res.Ok = true
	return res
}
