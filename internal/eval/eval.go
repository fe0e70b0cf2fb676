// Package eval walks an expression tree and computes its bigint value,
// translating core arithmetic errors into span-carrying diagnostics.
package eval

import (
	"errors"
	"strings"

	"bigcalc/internal/ast"
	"bigcalc/internal/bigint"
	"bigcalc/internal/diag"
	"bigcalc/internal/token"
)

// Evaluator computes expression values in a fixed session base.
type Evaluator struct {
	base     int
	reporter diag.Reporter
}

// New creates an evaluator. The base must already be validated.
func New(base int, reporter diag.Reporter) *Evaluator {
	return &Evaluator{base: base, reporter: reporter}
}

// Eval computes the value of e. ok is false when any subexpression failed;
// every failure has been reported to the diag reporter by then.
func (ev *Evaluator) Eval(e ast.Expr) (val bigint.Int, ok bool) {
	switch n := e.(type) {
	case *ast.NumberLit:
		v, err := bigint.Parse(n.Text, ev.base)
		if err != nil {
			// The lexer validates digits, so this only fires for inputs
			// that bypassed it.
			diag.Errorf(ev.reporter, diag.LexBadNumber, n.Sp, "%v", err)
			return bigint.Int{}, false
		}
		return v, true

	case *ast.Group:
		return ev.Eval(n.X)

	case *ast.Unary:
		x, ok := ev.Eval(n.X)
		if !ok {
			return bigint.Int{}, false
		}
		switch n.Op {
		case token.Minus:
			return x.Neg(), true
		case token.Bang:
			v, err := x.Factorial()
			if err != nil {
				if errors.Is(err, bigint.ErrNegativeFactorial) {
					diag.Errorf(ev.reporter, diag.EvalNegativeFactorial, n.Sp,
						"factorial of negative value %s", x)
				} else {
					diag.Errorf(ev.reporter, diag.UnknownCode, n.Sp, "%v", err)
				}
				return bigint.Int{}, false
			}
			return v, true
		}
		diag.Errorf(ev.reporter, diag.UnknownCode, n.Sp, "unsupported unary operator %s", n.Op)
		return bigint.Int{}, false

	case *ast.Binary:
		x, okX := ev.Eval(n.X)
		y, okY := ev.Eval(n.Y)
		if !okX || !okY {
			return bigint.Int{}, false
		}
		switch n.Op {
		case token.Plus:
			return x.Add(y), true
		case token.Minus:
			return x.Sub(y), true
		case token.Star:
			return x.Mul(y), true
		case token.SlashSlash, token.Percent:
			var v bigint.Int
			var err error
			if n.Op == token.SlashSlash {
				v, err = x.Quo(y)
			} else {
				v, err = x.Rem(y)
			}
			if err != nil {
				if errors.Is(err, bigint.ErrDivisionByZero) {
					diag.ErrorfNote(ev.reporter, diag.EvalDivisionByZero, n.Sp,
						diag.Note{Span: n.Y.Span(), Msg: "divisor is zero"},
						"division by zero")
				} else {
					diag.Errorf(ev.reporter, diag.UnknownCode, n.Sp, "%v", err)
				}
				return bigint.Int{}, false
			}
			return v, true
		}
		diag.Errorf(ev.reporter, diag.UnknownCode, n.Sp, "unsupported operator %s", n.Op)
		return bigint.Int{}, false

	case *ast.Call:
		if strings.ToLower(n.Name) != "abs" {
			diag.Errorf(ev.reporter, diag.EvalUnknownFunc, n.NameSpan,
				"unknown function %q", n.Name)
			return bigint.Int{}, false
		}
		x, ok := ev.Eval(n.Arg)
		if !ok {
			return bigint.Int{}, false
		}
		return x.Abs(), true

	case *ast.Bad:
		return bigint.Int{}, false
	}

	diag.Errorf(ev.reporter, diag.UnknownCode, e.Span(), "unsupported expression")
	return bigint.Int{}, false
}
