package bigint

// Magnitude helpers over raw digit slices. Digits are most-significant
// first, each in [0, base). All helpers are pure: they never write into an
// argument slice, so finished Ints can safely share digit storage.

// trimZeros strips leading zero digits. An empty or all-zero slice
// normalizes to [0].
func trimZeros(d []uint8) []uint8 {
	if len(d) == 0 {
		return []uint8{0}
	}
	i := 0
	for i < len(d)-1 && d[i] == 0 {
		i++
	}
	return d[i:]
}

func isZeroDigits(d []uint8) bool {
	return len(d) == 1 && d[0] == 0
}

// cmpDigits orders two normalized magnitudes: -1, 0 or +1. A shorter
// normalized slice is always smaller; equal lengths compare digit by digit
// from the most significant end.
func cmpDigits(a, b []uint8) int {
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	for i := range a {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// addDigits sums two magnitudes with carry propagation from the least
// significant end. The result may be one digit longer than the longer input.
func addDigits(a, b []uint8, base int) []uint8 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]uint8, n+1)
	carry := 0
	for i := 0; i < n; i++ {
		t := carry
		if i < len(a) {
			t += int(a[len(a)-1-i])
		}
		if i < len(b) {
			t += int(b[len(b)-1-i])
		}
		out[n-i] = uint8(t % base)
		carry = t / base
	}
	out[0] = uint8(carry)
	return trimZeros(out)
}

// subDigits computes a - b for magnitudes with a >= b, borrowing base when a
// digit would go negative. The caller guarantees cmpDigits(a, b) >= 0.
func subDigits(a, b []uint8, base int) []uint8 {
	out := make([]uint8, len(a))
	borrow := 0
	for i := 0; i < len(a); i++ {
		t := int(a[len(a)-1-i]) - borrow
		if i < len(b) {
			t -= int(b[len(b)-1-i])
		}
		if t < 0 {
			t += base
			borrow = 1
		} else {
			borrow = 0
		}
		out[len(a)-1-i] = uint8(t)
	}
	return trimZeros(out)
}

// mulDigits multiplies two magnitudes with the schoolbook algorithm:
// every digit pair (i, j) accumulates into slot i+j+1 of a buffer one digit
// wider than both inputs combined, carrying into slot i+j.
func mulDigits(a, b []uint8, base int) []uint8 {
	if isZeroDigits(a) || isZeroDigits(b) {
		return []uint8{0}
	}
	buf := make([]int, len(a)+len(b))
	for i := len(a) - 1; i >= 0; i-- {
		carry := 0
		ai := int(a[i])
		for j := len(b) - 1; j >= 0; j-- {
			t := ai*int(b[j]) + buf[i+j+1] + carry
			buf[i+j+1] = t % base
			carry = t / base
		}
		buf[i] += carry
	}
	out := make([]uint8, len(buf))
	for i, v := range buf {
		out[i] = uint8(v)
	}
	return trimZeros(out)
}

// quoRemDigits performs magnitude long division. Dividend digits are fed
// most-significant first into a running partial remainder; each step finds
// the quotient digit by repeated subtraction of the divisor, which is
// bounded by base iterations. The caller guarantees b is nonzero.
func quoRemDigits(a, b []uint8, base int) (quo, rem []uint8) {
	rem = []uint8{}
	quo = make([]uint8, 0, len(a))
	for _, d := range a {
		rem = trimZeros(append(rem, d))
		var q uint8
		for cmpDigits(rem, b) >= 0 {
			rem = subDigits(rem, b, base)
			q++
		}
		quo = append(quo, q)
	}
	return trimZeros(quo), rem
}
