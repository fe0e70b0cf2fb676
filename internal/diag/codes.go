package diag

import (
	"fmt"
)

// Code identifies a diagnostic. Ranges: 1xxx lexical, 2xxx syntactic,
// 3xxx evaluation.
type Code uint16

const (
	// UnknownCode is the fallback for unclassified problems.
	UnknownCode Code = 0

	// Лексические
	LexUnknownChar Code = 1001
	LexBadDigit    Code = 1002
	LexBadNumber   Code = 1003

	// Парсерные
	SynUnexpectedToken Code = 2001
	SynExpectExpr      Code = 2002
	SynUnclosedParen   Code = 2003
	SynTrailingInput   Code = 2004
	SynSingleSlash     Code = 2005

	// Вычислительные
	EvalDivisionByZero    Code = 3001
	EvalNegativeFactorial Code = 3002
	EvalUnknownFunc       Code = 3003
)

// ID returns the stable printable form of the code, e.g. "E2001".
func (c Code) ID() string {
	return fmt.Sprintf("E%04d", uint16(c))
}
