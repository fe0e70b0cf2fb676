package bigint

// Supported base range. Bases above 36 would need an encoding beyond 0-9A-Z.
const (
	MinBase = 2
	MaxBase = 36
)

const digitAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func checkBase(base int) error {
	if base < MinBase || base > MaxBase {
		return &BaseError{Base: base}
	}
	return nil
}

// CheckBase reports whether base can be used for construction; callers such
// as flag validation use it to fail before any value exists.
func CheckBase(base int) error {
	return checkBase(base)
}

// digitVal maps a character to its digit value. Letters are accepted in
// either case. The caller still has to check the value against its base.
func digitVal(ch byte) (uint8, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return ch - '0', true
	case ch >= 'a' && ch <= 'z':
		return ch - 'a' + 10, true
	case ch >= 'A' && ch <= 'Z':
		return ch - 'A' + 10, true
	}
	return 0, false
}

// digitChar renders a digit value; values 10..35 render as capital letters.
func digitChar(v uint8) byte {
	return digitAlphabet[v]
}
