package bigint

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is returned by QuoRem, Quo and Rem for a zero divisor.
	ErrDivisionByZero = errors.New("bigint: division by zero")

	// ErrNegativeFactorial is returned by Factorial on a negative value.
	ErrNegativeFactorial = errors.New("bigint: factorial of a negative value")

	// ErrRange is returned by Int64 when the magnitude does not fit.
	ErrRange = errors.New("bigint: value out of int64 range")

	// ErrEmptyNumber is returned by Parse for an empty or sign-only string.
	ErrEmptyNumber = errors.New("bigint: empty digit string")
)

// DigitError reports a character whose digit value is not valid in the
// requested base.
type DigitError struct {
	Ch   byte
	Base int
}

func (e *DigitError) Error() string {
	return fmt.Sprintf("bigint: invalid digit %q for base %d", e.Ch, e.Base)
}

// BaseError reports a base outside [MinBase, MaxBase] supplied at
// construction.
type BaseError struct {
	Base int
}

func (e *BaseError) Error() string {
	return fmt.Sprintf("bigint: unsupported base %d (want %d..%d)", e.Base, MinBase, MaxBase)
}
