// Package ast defines the expression tree the parser produces. Every node
// carries the span of the input text it was built from, so evaluation
// failures can point back at the offending subexpression.
package ast

import (
	"bigcalc/internal/source"
	"bigcalc/internal/token"
)

// Expr is implemented by all expression nodes.
type Expr interface {
	Span() source.Span
}

// NumberLit is a digit-sequence literal in the session base.
type NumberLit struct {
	Sp   source.Span
	Text string
}

func (n *NumberLit) Span() source.Span { return n.Sp }

// Unary is a prefix minus or a postfix factorial. Op is token.Minus or
// token.Bang.
type Unary struct {
	Sp source.Span
	Op token.Kind
	X  Expr
}

func (n *Unary) Span() source.Span { return n.Sp }

// Binary is an infix operation. Op is token.Plus, token.Minus, token.Star,
// token.SlashSlash or token.Percent.
type Binary struct {
	Sp source.Span
	Op token.Kind
	X  Expr
	Y  Expr
}

func (n *Binary) Span() source.Span { return n.Sp }

// Call is a function application, e.g. abs(x). The grammar only admits
// single-argument calls.
type Call struct {
	Sp       source.Span
	Name     string
	NameSpan source.Span
	Arg      Expr
}

func (n *Call) Span() source.Span { return n.Sp }

// Group is a parenthesized subexpression, kept as a node so its span covers
// the parentheses.
type Group struct {
	Sp source.Span
	X  Expr
}

func (n *Group) Span() source.Span { return n.Sp }

// Bad is a placeholder produced during error recovery. The evaluator never
// sees one: the driver refuses to evaluate when the bag has errors.
type Bad struct {
	Sp source.Span
}

func (n *Bad) Span() source.Span { return n.Sp }
