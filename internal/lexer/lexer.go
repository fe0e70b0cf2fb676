// Package lexer turns a calculator input line into tokens. Digit validity
// for the session base is checked here, so the parser and evaluator never
// see out-of-base characters.
package lexer

import (
	"fmt"
	"strings"

	"bigcalc/internal/diag"
	"bigcalc/internal/source"
	"bigcalc/internal/token"
)

// Options configures a Lexer.
type Options struct {
	// Base is the numeric base for digit validation, 2..36.
	Base int
	// Reporter receives diagnostics; nil drops them but lexing continues.
	Reporter diag.Reporter
}

// Lexer produces tokens for one input. It keeps a one-token lookahead
// buffer for Peek.
type Lexer struct {
	input  *source.Input
	cursor Cursor
	opts   Options
	look   *token.Token
}

// Function names reserved by the grammar. They win over numerals, so in
// base 36 the numeral ABS cannot be written directly.
var funcNames = map[string]struct{}{
	"abs": {},
}

// New creates a lexer over the given input.
func New(in *source.Input, opts Options) *Lexer {
	return &Lexer{
		input:  in,
		cursor: NewCursor(in),
		opts:   opts,
	}
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}

// Next returns the next significant token. After EOF it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipSpaces()

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	ch := lx.cursor.Peek()
	switch {
	case isAlnum(ch):
		return lx.scanNumberOrName()
	default:
		return lx.scanOperator()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Tokens drains the lexer into a slice ending with the EOF token.
func (lx *Lexer) Tokens() []token.Token {
	var out []token.Token
	for {
		t := lx.Next()
		out = append(out, t)
		if t.Kind == token.EOF {
			return out
		}
	}
}

func (lx *Lexer) skipSpaces() {
	for {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\r', '\n':
			lx.cursor.Bump()
		default:
			return
		}
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{Input: lx.input.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// scanNumberOrName consumes a run of alphanumeric bytes and classifies it.
// Reserved function names always win. A pure-letter run that is not a valid
// numeral in the session base becomes an Ident so the evaluator can reject
// it by name (e.g. sqrt). Everything else is a Number; digits outside the
// base are reported with their exact span and the token is still emitted,
// so one line can carry several diagnostics.
func (lx *Lexer) scanNumberOrName() token.Token {
	start := lx.cursor.Mark()
	for isAlnum(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	text := lx.input.Snippet(sp)

	if _, ok := funcNames[strings.ToLower(text)]; ok {
		return token.Token{Kind: token.Ident, Span: sp, Text: text}
	}

	lettersOnly := true
	anyInvalid := false
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if ch >= '0' && ch <= '9' {
			lettersOnly = false
		}
		if v, ok := digitValue(ch); !ok || v >= lx.opts.Base {
			anyInvalid = true
		}
	}
	if lettersOnly && anyInvalid {
		return token.Token{Kind: token.Ident, Span: sp, Text: text}
	}

	for i := 0; i < len(text); i++ {
		v, ok := digitValue(text[i])
		if !ok || v >= lx.opts.Base {
			chSpan := source.Span{
				Input: sp.Input,
				Start: sp.Start + uint32(i),
				End:   sp.Start + uint32(i) + 1,
			}
			lx.report(diag.LexBadDigit, chSpan,
				fmt.Sprintf("invalid digit %q for base %d", text[i], lx.opts.Base))
		}
	}
	return token.Token{Kind: token.Number, Span: sp, Text: text}
}

func (lx *Lexer) scanOperator() token.Token {
	start := lx.cursor.Mark()
	ch := lx.cursor.Bump()

	var kind token.Kind
	switch ch {
	case '+':
		kind = token.Plus
	case '-':
		kind = token.Minus
	case '*':
		kind = token.Star
	case '/':
		if lx.cursor.Peek() == '/' {
			lx.cursor.Bump()
			kind = token.SlashSlash
		} else {
			kind = token.Slash
		}
	case '%':
		kind = token.Percent
	case '!':
		kind = token.Bang
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	default:
		sp := lx.cursor.SpanFrom(start)
		lx.report(diag.LexUnknownChar, sp, fmt.Sprintf("unknown character %q", ch))
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.input.Snippet(sp)}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.input.Snippet(sp)}
}

func isAlnum(ch byte) bool {
	return ch >= '0' && ch <= '9' ||
		ch >= 'a' && ch <= 'z' ||
		ch >= 'A' && ch <= 'Z'
}

// digitValue mirrors the bigint digit table so both layers agree on what a
// digit means.
func digitValue(ch byte) (int, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0'), true
	case ch >= 'a' && ch <= 'z':
		return int(ch-'a') + 10, true
	case ch >= 'A' && ch <= 'Z':
		return int(ch-'A') + 10, true
	}
	return 0, false
}
