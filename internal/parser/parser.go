// Package parser builds expression trees from tokens with precedence
// climbing: addition < multiplication < unary minus < postfix factorial <
// primaries. Errors go to the diag reporter; the parser recovers where it
// can so one line can surface several problems.
package parser

import (
	"fmt"

	"bigcalc/internal/ast"
	"bigcalc/internal/diag"
	"bigcalc/internal/lexer"
	"bigcalc/internal/token"
)

// Parser consumes one input's token stream.
type Parser struct {
	lx       *lexer.Lexer
	reporter diag.Reporter
}

// New creates a parser over the given lexer.
func New(lx *lexer.Lexer, reporter diag.Reporter) *Parser {
	return &Parser{lx: lx, reporter: reporter}
}

// ParseLine parses a whole input line as one expression and reports
// anything left over as trailing input.
func (p *Parser) ParseLine() ast.Expr {
	e := p.parseAdd()
	if rest := p.lx.Peek(); rest.Kind != token.EOF {
		diag.Errorf(p.reporter, diag.SynTrailingInput, rest.Span,
			"unexpected %q after expression", rest.Text)
	}
	return e
}

func (p *Parser) parseAdd() ast.Expr {
	left := p.parseMul()
	for {
		switch p.lx.Peek().Kind {
		case token.Plus, token.Minus:
			op := p.lx.Next()
			right := p.parseMul()
			left = &ast.Binary{
				Sp: left.Span().Cover(right.Span()),
				Op: op.Kind,
				X:  left,
				Y:  right,
			}
		default:
			return left
		}
	}
}

func (p *Parser) parseMul() ast.Expr {
	left := p.parseUnary()
	for {
		next := p.lx.Peek()
		var op token.Kind
		switch next.Kind {
		case token.Star, token.SlashSlash, token.Percent:
			op = next.Kind
		case token.Slash:
			// A lone '/' is not in the grammar; report it and carry on as
			// integer division so the rest of the line still gets checked.
			diag.ErrorfNote(p.reporter, diag.SynSingleSlash, next.Span,
				diag.Note{Span: next.Span, Msg: "integer division is spelled //"},
				"unexpected '/'")
			op = token.SlashSlash
		default:
			return left
		}
		p.lx.Next()
		right := p.parseUnary()
		left = &ast.Binary{
			Sp: left.Span().Cover(right.Span()),
			Op: op,
			X:  left,
			Y:  right,
		}
	}
}

func (p *Parser) parseUnary() ast.Expr {
	if next := p.lx.Peek(); next.Kind == token.Minus {
		op := p.lx.Next()
		x := p.parseUnary()
		return &ast.Unary{Sp: op.Span.Cover(x.Span()), Op: token.Minus, X: x}
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() ast.Expr {
	x := p.parsePrimary()
	for p.lx.Peek().Kind == token.Bang {
		bang := p.lx.Next()
		x = &ast.Unary{Sp: x.Span().Cover(bang.Span), Op: token.Bang, X: x}
	}
	return x
}

func (p *Parser) parsePrimary() ast.Expr {
	next := p.lx.Next()
	switch next.Kind {
	case token.Number:
		return &ast.NumberLit{Sp: next.Span, Text: next.Text}

	case token.Ident:
		return p.parseCall(next)

	case token.LParen:
		inner := p.parseAdd()
		sp := next.Span.Cover(inner.Span())
		if closing := p.lx.Peek(); closing.Kind == token.RParen {
			p.lx.Next()
			sp = sp.Cover(closing.Span)
		} else {
			diag.Errorf(p.reporter, diag.SynUnclosedParen, next.Span,
				"unclosed '('")
		}
		return &ast.Group{Sp: sp, X: inner}

	case token.EOF:
		diag.Errorf(p.reporter, diag.SynExpectExpr, next.Span,
			"expected expression, found end of line")
		return &ast.Bad{Sp: next.Span}

	case token.Invalid:
		// The lexer already reported it.
		return &ast.Bad{Sp: next.Span}

	default:
		diag.Errorf(p.reporter, diag.SynUnexpectedToken, next.Span,
			"expected expression, found %s", describe(next))
		return &ast.Bad{Sp: next.Span}
	}
}

// parseCall parses the parenthesized argument after a function name.
func (p *Parser) parseCall(name token.Token) ast.Expr {
	open := p.lx.Peek()
	if open.Kind != token.LParen {
		diag.Errorf(p.reporter, diag.SynUnexpectedToken, open.Span,
			"expected '(' after %q", name.Text)
		return &ast.Bad{Sp: name.Span}
	}
	p.lx.Next()
	arg := p.parseAdd()
	sp := name.Span.Cover(arg.Span())
	if closing := p.lx.Peek(); closing.Kind == token.RParen {
		p.lx.Next()
		sp = sp.Cover(closing.Span)
	} else {
		diag.Errorf(p.reporter, diag.SynUnclosedParen, open.Span,
			"unclosed '(' in %s(...)", name.Text)
	}
	return &ast.Call{Sp: sp, Name: name.Text, NameSpan: name.Span, Arg: arg}
}

func describe(t token.Token) string {
	if t.Text == "" {
		return t.Kind.String()
	}
	return fmt.Sprintf("%q", t.Text)
}
