// Package bigint implements arbitrary-precision signed integers over a
// configurable base (2..36). Values are immutable: every operation returns a
// new Int and never touches its operands, so concurrent readers need no
// locking. The package performs no I/O and never logs.
package bigint

import (
	"fmt"
	"math"
	"strings"

	"fortio.org/safecast"
)

// Int is an arbitrary-precision signed integer.
//
// The magnitude is a normalized digit vector, most-significant digit first,
// with every digit in [0, base). Zero is always the single digit 0 with a
// non-negative sign, regardless of how it was produced.
//
// The zero value of Int is not usable; construct values with New, Parse or
// MustParse. Binary operations require both operands to share a base; mixing
// bases is a programmer error and panics.
type Int struct {
	base   int
	neg    bool
	digits []uint8
}

// makeInt normalizes a raw digit vector into an Int, clearing the sign when
// the magnitude is zero.
func makeInt(base int, neg bool, digits []uint8) Int {
	digits = trimZeros(digits)
	if isZeroDigits(digits) {
		neg = false
	}
	return Int{base: base, neg: neg, digits: digits}
}

// New constructs an Int from a native integer in the given base.
func New(v int64, base int) (Int, error) {
	if err := checkBase(base); err != nil {
		return Int{}, err
	}
	neg := v < 0
	mag := uint64(v)
	if neg {
		mag = -uint64(v)
	}
	if mag == 0 {
		return Int{base: base, digits: []uint8{0}}, nil
	}
	var buf []uint8
	for mag > 0 {
		buf = append(buf, uint8(mag%uint64(base)))
		mag /= uint64(base)
	}
	digits := make([]uint8, len(buf))
	for i, d := range buf {
		digits[len(buf)-1-i] = d
	}
	return Int{base: base, neg: neg, digits: digits}, nil
}

// Parse constructs an Int from a digit string in the given base. One leading
// '+' or '-' is consumed before the digits; letters above 9 are accepted in
// either case. A character whose value is not in [0, base) yields a
// *DigitError, an empty or sign-only string yields ErrEmptyNumber.
func Parse(s string, base int) (Int, error) {
	if err := checkBase(base); err != nil {
		return Int{}, err
	}
	s = strings.TrimSpace(s)
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	if len(s) == 0 {
		return Int{}, ErrEmptyNumber
	}
	digits := make([]uint8, 0, len(s))
	for i := 0; i < len(s); i++ {
		v, ok := digitVal(s[i])
		if !ok || int(v) >= base {
			return Int{}, &DigitError{Ch: s[i], Base: base}
		}
		digits = append(digits, v)
	}
	return makeInt(base, neg, digits), nil
}

// MustParse is Parse for known-good literals; it panics on error.
func MustParse(s string, base int) Int {
	x, err := Parse(s, base)
	if err != nil {
		panic(fmt.Errorf("bigint: MustParse(%q, %d): %w", s, base, err))
	}
	return x
}

// Base returns the base the value was constructed in.
func (x Int) Base() int { return x.base }

// IsZero reports whether the value is zero.
func (x Int) IsZero() bool { return isZeroDigits(x.digits) }

// Sign returns -1, 0 or +1.
func (x Int) Sign() int {
	if x.IsZero() {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// Digits returns a copy of the magnitude digit vector, most-significant
// first.
func (x Int) Digits() []uint8 {
	out := make([]uint8, len(x.digits))
	copy(out, x.digits)
	return out
}

// String renders the value in its own base, using capital letters for digits
// above 9.
func (x Int) String() string {
	var b strings.Builder
	b.Grow(len(x.digits) + 1)
	if x.neg {
		b.WriteByte('-')
	}
	for _, d := range x.digits {
		b.WriteByte(digitChar(d))
	}
	return b.String()
}

// Int64 folds the digit vector back into a native integer. It returns
// ErrRange when the value does not fit in an int64; it never wraps silently.
func (x Int) Int64() (int64, error) {
	var mag uint64
	for _, d := range x.digits {
		if mag > (math.MaxUint64-uint64(d))/uint64(x.base) {
			return 0, ErrRange
		}
		mag = mag*uint64(x.base) + uint64(d)
	}
	if x.neg {
		if mag > uint64(math.MaxInt64)+1 {
			return 0, ErrRange
		}
		return -int64(mag), nil
	}
	v, err := safecast.Conv[int64](mag)
	if err != nil {
		return 0, ErrRange
	}
	return v, nil
}

func (x Int) mustMatchBase(y Int) {
	if x.base != y.base {
		panic(fmt.Sprintf("bigint: mismatched bases %d and %d", x.base, y.base))
	}
}

// CmpAbs compares the magnitudes of x and y, ignoring signs.
func (x Int) CmpAbs(y Int) int {
	x.mustMatchBase(y)
	return cmpDigits(x.digits, y.digits)
}

// Cmp orders x and y: -1 if x < y, 0 if equal, +1 if x > y. Differing signs
// decide immediately; equal signs compare magnitudes, inverted when both are
// negative.
func (x Int) Cmp(y Int) int {
	x.mustMatchBase(y)
	switch {
	case x.neg && !y.neg:
		return -1
	case !x.neg && y.neg:
		return 1
	}
	c := cmpDigits(x.digits, y.digits)
	if x.neg {
		return -c
	}
	return c
}

// Equal reports whether x and y represent the same value.
func (x Int) Equal(y Int) bool { return x.Cmp(y) == 0 }

// Neg returns -x. Zero stays non-negative.
func (x Int) Neg() Int {
	return makeInt(x.base, !x.neg, x.digits)
}

// Abs returns |x|.
func (x Int) Abs() Int {
	return makeInt(x.base, false, x.digits)
}

// Add returns x + y. Same-sign operands add magnitudes; mixed signs reduce
// to a magnitude subtraction with the sign of the larger operand, and a tie
// produces canonical zero.
func (x Int) Add(y Int) Int {
	x.mustMatchBase(y)
	if x.neg == y.neg {
		return makeInt(x.base, x.neg, addDigits(x.digits, y.digits, x.base))
	}
	switch cmpDigits(x.digits, y.digits) {
	case 0:
		return makeInt(x.base, false, []uint8{0})
	case 1:
		return makeInt(x.base, x.neg, subDigits(x.digits, y.digits, x.base))
	default:
		return makeInt(x.base, y.neg, subDigits(y.digits, x.digits, x.base))
	}
}

// Sub returns x - y.
func (x Int) Sub(y Int) Int {
	x.mustMatchBase(y)
	return x.Add(y.Neg())
}

// Mul returns x * y. The result sign is the XOR of the operand signs; a zero
// product normalizes to non-negative.
func (x Int) Mul(y Int) Int {
	x.mustMatchBase(y)
	return makeInt(x.base, x.neg != y.neg, mulDigits(x.digits, y.digits, x.base))
}

// QuoRem returns the quotient and remainder of x / y, truncating toward
// zero: the quotient sign is the XOR of the operand signs and the remainder
// takes the dividend's sign. A zero divisor yields ErrDivisionByZero.
func (x Int) QuoRem(y Int) (quo, rem Int, err error) {
	x.mustMatchBase(y)
	if y.IsZero() {
		return Int{}, Int{}, ErrDivisionByZero
	}
	q, r := quoRemDigits(x.digits, y.digits, x.base)
	return makeInt(x.base, x.neg != y.neg, q), makeInt(x.base, x.neg, r), nil
}

// Quo returns the truncated quotient x / y.
func (x Int) Quo(y Int) (Int, error) {
	q, _, err := x.QuoRem(y)
	return q, err
}

// Rem returns the remainder of x / y, with the dividend's sign.
func (x Int) Rem(y Int) (Int, error) {
	_, r, err := x.QuoRem(y)
	return r, err
}

// Factorial returns x!. It multiplies iteratively with an Int counter, so
// the bound never depends on native integer width. Negative x yields
// ErrNegativeFactorial.
func (x Int) Factorial() (Int, error) {
	if x.neg {
		return Int{}, ErrNegativeFactorial
	}
	one, _ := New(1, x.base)
	two, _ := New(2, x.base)
	result := one
	k := two
	for k.Cmp(x) <= 0 {
		result = result.Mul(k)
		k = k.Add(one)
	}
	return result, nil
}
