// Package token defines the lexical vocabulary of calculator expressions.
package token

import (
	"bigcalc/internal/source"
)

// Token is a single lexeme with its location in the registered input.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsOperator reports whether the token is an arithmetic operator.
func (t Token) IsOperator() bool {
	switch t.Kind {
	case Plus, Minus, Star, SlashSlash, Percent, Bang:
		return true
	default:
		return false
	}
}

// IsTerm reports whether the token can start a primary expression.
func (t Token) IsTerm() bool {
	switch t.Kind {
	case Number, Ident, LParen:
		return true
	default:
		return false
	}
}
