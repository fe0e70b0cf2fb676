package bigint_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"bigcalc/internal/bigint"
)

func mustNew(t *testing.T, v int64, base int) bigint.Int {
	t.Helper()
	x, err := bigint.New(v, base)
	if err != nil {
		t.Fatalf("New(%d, %d): %v", v, base, err)
	}
	return x
}

func TestConstructionErrors(t *testing.T) {
	if _, err := bigint.New(1, 1); err == nil {
		t.Error("New with base 1 should fail")
	}
	if _, err := bigint.New(1, 37); err == nil {
		t.Error("New with base 37 should fail")
	}
	var baseErr *bigint.BaseError
	_, err := bigint.Parse("10", 40)
	if !errors.As(err, &baseErr) || baseErr.Base != 40 {
		t.Errorf("Parse with base 40: err = %v, want *BaseError", err)
	}

	var digitErr *bigint.DigitError
	_, err = bigint.Parse("12G", 16)
	if !errors.As(err, &digitErr) {
		t.Fatalf("Parse(\"12G\", 16): err = %v, want *DigitError", err)
	}
	if digitErr.Ch != 'G' || digitErr.Base != 16 {
		t.Errorf("DigitError = %+v, want Ch='G' Base=16", digitErr)
	}

	if _, err := bigint.Parse("9", 8); err == nil {
		t.Error("digit 9 in base 8 should fail")
	}
	if _, err := bigint.Parse("", 10); !errors.Is(err, bigint.ErrEmptyNumber) {
		t.Errorf("empty string: err = %v, want ErrEmptyNumber", err)
	}
	if _, err := bigint.Parse("-", 10); !errors.Is(err, bigint.ErrEmptyNumber) {
		t.Errorf("sign-only string: err = %v, want ErrEmptyNumber", err)
	}
}

func TestNormalization(t *testing.T) {
	tests := []struct {
		in         string
		base       int
		wantDigits []uint8
		wantSign   int
	}{
		{"007", 10, []uint8{7}, 1},
		{"0", 10, []uint8{0}, 0},
		{"-0", 10, []uint8{0}, 0},
		{"000", 10, []uint8{0}, 0},
		{"-042", 10, []uint8{4, 2}, -1},
		{"0010", 2, []uint8{1, 0}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			x, err := bigint.Parse(tt.in, tt.base)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if got := x.Digits(); !reflect.DeepEqual(got, tt.wantDigits) {
				t.Errorf("Digits = %v, want %v", got, tt.wantDigits)
			}
			if got := x.Sign(); got != tt.wantSign {
				t.Errorf("Sign = %d, want %d", got, tt.wantSign)
			}
		})
	}
}

func TestInt64RoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 9, 10, -10, 255, 4096, -77777,
		math.MaxInt64, math.MinInt64}
	bases := []int{2, 8, 10, 16, 36}
	for _, base := range bases {
		for _, v := range values {
			x := mustNew(t, v, base)
			got, err := x.Int64()
			if err != nil {
				t.Errorf("base %d: Int64(%d): %v", base, v, err)
				continue
			}
			if got != v {
				t.Errorf("base %d: round trip %d -> %d", base, v, got)
			}
		}
	}
}

func TestInt64Range(t *testing.T) {
	if _, err := bigint.MustParse("9223372036854775808", 10).Int64(); !errors.Is(err, bigint.ErrRange) {
		t.Errorf("MaxInt64+1: err = %v, want ErrRange", err)
	}
	v, err := bigint.MustParse("-9223372036854775808", 10).Int64()
	if err != nil || v != math.MinInt64 {
		t.Errorf("MinInt64: got %d, %v", v, err)
	}
	if _, err := bigint.MustParse("-9223372036854775809", 10).Int64(); !errors.Is(err, bigint.ErrRange) {
		t.Errorf("MinInt64-1: err = %v, want ErrRange", err)
	}
}

func TestStringRendering(t *testing.T) {
	tests := []struct {
		in   string
		base int
		want string
	}{
		{"0", 10, "0"},
		{"-42", 10, "-42"},
		{"deadbeef", 16, "DEADBEEF"},
		{"-ff", 16, "-FF"},
		{"1010", 2, "1010"},
		{"zz", 36, "ZZ"},
	}
	for _, tt := range tests {
		if got := bigint.MustParse(tt.in, tt.base).String(); got != tt.want {
			t.Errorf("Parse(%q, %d).String() = %q, want %q", tt.in, tt.base, got, tt.want)
		}
	}
}

func TestBaseRoundTrip(t *testing.T) {
	v, err := bigint.MustParse("1010", 2).Int64()
	if err != nil || v != 10 {
		t.Errorf("1010 base 2 = %d, %v, want 10", v, err)
	}
	v, err = bigint.MustParse("FF", 16).Int64()
	if err != nil || v != 255 {
		t.Errorf("FF base 16 = %d, %v, want 255", v, err)
	}
}

func TestAddProperties(t *testing.T) {
	values := []int64{0, 1, -1, 5, -9, 123, -456, 99999}
	for _, av := range values {
		for _, bv := range values {
			a := mustNew(t, av, 10)
			b := mustNew(t, bv, 10)
			want := mustNew(t, av+bv, 10)
			if got := a.Add(b); !got.Equal(want) {
				t.Errorf("%d + %d = %s, want %s", av, bv, got, want)
			}
			// commutativity
			if !a.Add(b).Equal(b.Add(a)) {
				t.Errorf("%d + %d not commutative", av, bv)
			}
		}
	}
}

func TestAddIdentityAndInverse(t *testing.T) {
	zero := mustNew(t, 0, 10)
	for _, v := range []int64{0, 7, -13, 1234567} {
		a := mustNew(t, v, 10)
		if got := a.Add(zero); !got.Equal(a) {
			t.Errorf("%s + 0 = %s", a, got)
		}
		got := a.Add(a.Neg())
		if !got.Equal(zero) {
			t.Errorf("%s + (-%s) = %s, want 0", a, a, got)
		}
		if got.Sign() != 0 {
			t.Errorf("a + (-a) sign = %d, want 0", got.Sign())
		}
	}
}

func TestAssociativity(t *testing.T) {
	vals := []int64{-37, 0, 12, 999}
	for _, av := range vals {
		for _, bv := range vals {
			for _, cv := range vals {
				a := mustNew(t, av, 10)
				b := mustNew(t, bv, 10)
				c := mustNew(t, cv, 10)
				if !a.Add(b).Add(c).Equal(a.Add(b.Add(c))) {
					t.Errorf("(%d+%d)+%d != %d+(%d+%d)", av, bv, cv, av, bv, cv)
				}
				if !a.Mul(b).Mul(c).Equal(a.Mul(b.Mul(c))) {
					t.Errorf("(%d*%d)*%d != %d*(%d*%d)", av, bv, cv, av, bv, cv)
				}
			}
		}
	}
}

func TestSubSignTable(t *testing.T) {
	// The four sign cases of a - b, plus the 5 - 9 scenario.
	tests := []struct {
		a, b int64
	}{
		{5, 9}, {9, 5}, {5, -9}, {-5, 9}, {-5, -9}, {-9, -5},
		{0, 7}, {7, 0}, {7, 7}, {-7, -7},
	}
	for _, tt := range tests {
		a := mustNew(t, tt.a, 10)
		b := mustNew(t, tt.b, 10)
		want := mustNew(t, tt.a-tt.b, 10)
		if got := a.Sub(b); !got.Equal(want) {
			t.Errorf("%d - %d = %s, want %s", tt.a, tt.b, got, want)
		}
	}
	if got := mustNew(t, 5, 10).Sub(mustNew(t, 9, 10)).String(); got != "-4" {
		t.Errorf("5 - 9 = %s, want -4", got)
	}
}

func TestMul(t *testing.T) {
	tests := []struct {
		a, b int64
	}{
		{0, 5}, {5, 0}, {1, 99}, {12, 12}, {-4, 9}, {4, -9}, {-4, -9},
		{9999, 9999}, {123456, 654321},
	}
	for _, tt := range tests {
		a := mustNew(t, tt.a, 10)
		b := mustNew(t, tt.b, 10)
		want := mustNew(t, tt.a*tt.b, 10)
		if got := a.Mul(b); !got.Equal(want) {
			t.Errorf("%d * %d = %s, want %s", tt.a, tt.b, got, want)
		}
	}
	// zero product is canonically non-negative
	if got := mustNew(t, -3, 10).Mul(mustNew(t, 0, 10)); got.Sign() != 0 {
		t.Errorf("-3 * 0 sign = %d, want 0", got.Sign())
	}
}

func TestLargeAddition(t *testing.T) {
	a := bigint.MustParse("123456789123456789", 10)
	b := bigint.MustParse("987654321987654321", 10)
	want := bigint.MustParse("1111111111111111110", 10)
	if got := a.Add(b); !got.Equal(want) {
		t.Errorf("large add = %s, want %s", got, want)
	}
}

func TestLargeMultiplication(t *testing.T) {
	a := bigint.MustParse("123456789123456789", 10)
	b := bigint.MustParse("987654321987654321", 10)
	want := bigint.MustParse("121932631356500531347203169112635269", 10)
	if got := a.Mul(b); !got.Equal(want) {
		t.Errorf("large mul = %s, want %s", got, want)
	}
}

func TestQuoRemTruncation(t *testing.T) {
	// Truncating division: quotient toward zero, remainder follows dividend.
	tests := []struct {
		a, b int64
	}{
		{7, 2}, {-7, 2}, {7, -2}, {-7, -2},
		{100, 7}, {-100, 7}, {100, -7}, {-100, -7},
		{0, 5}, {5, 100}, {42, 42},
	}
	for _, tt := range tests {
		a := mustNew(t, tt.a, 10)
		b := mustNew(t, tt.b, 10)
		quo, rem, err := a.QuoRem(b)
		if err != nil {
			t.Fatalf("QuoRem(%d, %d): %v", tt.a, tt.b, err)
		}
		wantQuo := mustNew(t, tt.a/tt.b, 10)
		wantRem := mustNew(t, tt.a%tt.b, 10)
		if !quo.Equal(wantQuo) || !rem.Equal(wantRem) {
			t.Errorf("QuoRem(%d, %d) = %s, %s, want %s, %s",
				tt.a, tt.b, quo, rem, wantQuo, wantRem)
		}
	}
}

func TestDivisionRemainderLaw(t *testing.T) {
	vals := []int64{-1000, -99, -1, 1, 7, 360, 99991}
	for _, av := range vals {
		for _, bv := range vals {
			a := mustNew(t, av, 10)
			b := mustNew(t, bv, 10)
			quo, rem, err := a.QuoRem(b)
			if err != nil {
				t.Fatalf("QuoRem(%d, %d): %v", av, bv, err)
			}
			if got := b.Mul(quo).Add(rem); !got.Equal(a) {
				t.Errorf("b*(a//b)+a%%b = %s, want %s (a=%d b=%d)", got, a, av, bv)
			}
			if rem.Abs().Cmp(b.Abs()) >= 0 {
				t.Errorf("|rem| >= |b| for a=%d b=%d: rem=%s", av, bv, rem)
			}
		}
	}
}

func TestDivisionByZero(t *testing.T) {
	zero := mustNew(t, 0, 10)
	for _, v := range []int64{0, 1, -55, 1234} {
		a := mustNew(t, v, 10)
		if _, _, err := a.QuoRem(zero); !errors.Is(err, bigint.ErrDivisionByZero) {
			t.Errorf("QuoRem(%d, 0): err = %v, want ErrDivisionByZero", v, err)
		}
		if _, err := a.Rem(zero); !errors.Is(err, bigint.ErrDivisionByZero) {
			t.Errorf("Rem(%d, 0): err = %v, want ErrDivisionByZero", v, err)
		}
	}
}

func TestFactorial(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "1"},
		{1, "1"},
		{2, "2"},
		{5, "120"},
		{10, "3628800"},
		{20, "2432902008176640000"},
		{25, "15511210043330985984000000"},
	}
	for _, tt := range tests {
		got, err := mustNew(t, tt.n, 10).Factorial()
		if err != nil {
			t.Fatalf("Factorial(%d): %v", tt.n, err)
		}
		if got.String() != tt.want {
			t.Errorf("%d! = %s, want %s", tt.n, got, tt.want)
		}
	}

	if _, err := mustNew(t, -1, 10).Factorial(); !errors.Is(err, bigint.ErrNegativeFactorial) {
		t.Errorf("(-1)!: err = %v, want ErrNegativeFactorial", err)
	}
}

func TestFactorialOtherBase(t *testing.T) {
	// 5! = 120 = 1111000 in binary.
	got, err := mustNew(t, 5, 2).Factorial()
	if err != nil {
		t.Fatalf("Factorial: %v", err)
	}
	if got.String() != "1111000" {
		t.Errorf("5! base 2 = %s, want 1111000", got)
	}
}

func TestUnaryOps(t *testing.T) {
	a := mustNew(t, -4, 10)
	if got := a.Abs(); got.String() != "4" {
		t.Errorf("abs(-4) = %s, want 4", got)
	}
	if got := a.Neg(); got.String() != "4" {
		t.Errorf("-(-4) = %s, want 4", got)
	}
	zero := mustNew(t, 0, 10)
	if got := zero.Neg(); got.Sign() != 0 {
		t.Errorf("-0 sign = %d, want 0", got.Sign())
	}
}

func TestCmp(t *testing.T) {
	tests := []struct {
		a, b int64
		want int
	}{
		{0, 0, 0}, {1, 0, 1}, {0, 1, -1},
		{-1, 1, -1}, {1, -1, 1},
		{-5, -9, 1}, {-9, -5, -1},
		{100, 99, 1}, {99, 100, -1},
	}
	for _, tt := range tests {
		a := mustNew(t, tt.a, 10)
		b := mustNew(t, tt.b, 10)
		if got := a.Cmp(b); got != tt.want {
			t.Errorf("Cmp(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestImmutability(t *testing.T) {
	a := bigint.MustParse("999", 10)
	b := bigint.MustParse("1", 10)
	before := a.Digits()
	a.Add(b)
	a.Sub(b)
	a.Mul(b)
	if _, _, err := a.QuoRem(b); err != nil {
		t.Fatal(err)
	}
	if _, err := a.Factorial(); err != nil {
		t.Fatal(err)
	}
	a.Neg()
	a.Abs()
	if got := a.Digits(); !reflect.DeepEqual(got, before) {
		t.Errorf("operand mutated: digits %v -> %v", before, got)
	}
}

func TestMismatchedBasePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Add across bases should panic")
		}
	}()
	mustNew(t, 1, 10).Add(mustNew(t, 1, 16))
}
