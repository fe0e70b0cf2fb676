package bigint

import (
	"reflect"
	"testing"
)

func TestTrimZeros(t *testing.T) {
	tests := []struct {
		name string
		in   []uint8
		want []uint8
	}{
		{"nil", nil, []uint8{0}},
		{"empty", []uint8{}, []uint8{0}},
		{"all zero", []uint8{0, 0, 0}, []uint8{0}},
		{"leading zeros", []uint8{0, 0, 7, 1}, []uint8{7, 1}},
		{"already normal", []uint8{3, 0}, []uint8{3, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := trimZeros(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("trimZeros(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCmpDigits(t *testing.T) {
	tests := []struct {
		a, b []uint8
		want int
	}{
		{[]uint8{0}, []uint8{0}, 0},
		{[]uint8{5}, []uint8{5}, 0},
		{[]uint8{1, 0}, []uint8{9}, 1},
		{[]uint8{9}, []uint8{1, 0}, -1},
		{[]uint8{4, 2}, []uint8{4, 3}, -1},
		{[]uint8{7, 2}, []uint8{4, 3}, 1},
	}
	for _, tt := range tests {
		if got := cmpDigits(tt.a, tt.b); got != tt.want {
			t.Errorf("cmpDigits(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestAddDigitsCarry(t *testing.T) {
	tests := []struct {
		name string
		a, b []uint8
		base int
		want []uint8
	}{
		{"no carry", []uint8{1, 2}, []uint8{3, 4}, 10, []uint8{4, 6}},
		{"carry chain", []uint8{9, 9}, []uint8{1}, 10, []uint8{1, 0, 0}},
		{"length extension", []uint8{9}, []uint8{9}, 10, []uint8{1, 8}},
		{"binary", []uint8{1, 1}, []uint8{1}, 2, []uint8{1, 0, 0}},
		{"zero operand", []uint8{0}, []uint8{4, 2}, 10, []uint8{4, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := addDigits(tt.a, tt.b, tt.base); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("addDigits = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSubDigitsBorrow(t *testing.T) {
	tests := []struct {
		name string
		a, b []uint8
		base int
		want []uint8
	}{
		{"no borrow", []uint8{5, 7}, []uint8{2, 3}, 10, []uint8{3, 4}},
		{"borrow chain", []uint8{1, 0, 0}, []uint8{1}, 10, []uint8{9, 9}},
		{"equal", []uint8{4, 2}, []uint8{4, 2}, 10, []uint8{0}},
		{"hex", []uint8{1, 0}, []uint8{15}, 16, []uint8{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := subDigits(tt.a, tt.b, tt.base); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("subDigits = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSubDigitsDoesNotMutate(t *testing.T) {
	a := []uint8{1, 0, 0}
	b := []uint8{1}
	subDigits(a, b, 10)
	if !reflect.DeepEqual(a, []uint8{1, 0, 0}) || !reflect.DeepEqual(b, []uint8{1}) {
		t.Errorf("subDigits mutated its arguments: a=%v b=%v", a, b)
	}
}

func TestMulDigits(t *testing.T) {
	tests := []struct {
		name string
		a, b []uint8
		base int
		want []uint8
	}{
		{"zero", []uint8{0}, []uint8{9, 9}, 10, []uint8{0}},
		{"single", []uint8{7}, []uint8{8}, 10, []uint8{5, 6}},
		{"multi", []uint8{1, 2}, []uint8{1, 2}, 10, []uint8{1, 4, 4}},
		{"carry heavy", []uint8{9, 9}, []uint8{9, 9}, 10, []uint8{9, 8, 0, 1}},
		{"binary", []uint8{1, 1}, []uint8{1, 1}, 2, []uint8{1, 0, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mulDigits(tt.a, tt.b, tt.base); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("mulDigits = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQuoRemDigits(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []uint8
		base     int
		wantQuo  []uint8
		wantRem  []uint8
	}{
		{"exact", []uint8{8, 4}, []uint8{2}, 10, []uint8{4, 2}, []uint8{0}},
		{"with remainder", []uint8{1, 0, 0}, []uint8{7}, 10, []uint8{1, 4}, []uint8{2}},
		{"dividend smaller", []uint8{3}, []uint8{7}, 10, []uint8{0}, []uint8{3}},
		{"equal", []uint8{7}, []uint8{7}, 10, []uint8{1}, []uint8{0}},
		{"binary", []uint8{1, 0, 1, 0}, []uint8{1, 1}, 2, []uint8{1, 1}, []uint8{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quo, rem := quoRemDigits(tt.a, tt.b, tt.base)
			if !reflect.DeepEqual(quo, tt.wantQuo) || !reflect.DeepEqual(rem, tt.wantRem) {
				t.Errorf("quoRemDigits = %v, %v, want %v, %v", quo, rem, tt.wantQuo, tt.wantRem)
			}
		})
	}
}

func TestDigitVal(t *testing.T) {
	tests := []struct {
		ch   byte
		want uint8
		ok   bool
	}{
		{'0', 0, true},
		{'9', 9, true},
		{'a', 10, true},
		{'A', 10, true},
		{'z', 35, true},
		{'Z', 35, true},
		{'%', 0, false},
		{' ', 0, false},
	}
	for _, tt := range tests {
		got, ok := digitVal(tt.ch)
		if got != tt.want || ok != tt.ok {
			t.Errorf("digitVal(%q) = %d, %v, want %d, %v", tt.ch, got, ok, tt.want, tt.ok)
		}
	}
}
