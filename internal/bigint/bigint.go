package bigint

import "strconv"

const (
	// Base is the numeral base of a single limb.
	Base = 1_000_000
	// LimbDigits is the number of decimal digits held by a full limb.
	LimbDigits = 6
)

// BigInt is an arbitrary-precision signed integer. The zero value is 0.
type BigInt struct {
	neg bool
	// limbs holds the magnitude, least-significant limb first. Every limb
	// is in [0, Base); high limbs may be zero.
	limbs []int64
	// used counts limbs up to and including the most significant non-zero
	// one. Zero has used == 0.
	used int
}

// newBigInt wraps limbs, records the significant length once and clears
// the sign of zero.
func newBigInt(neg bool, limbs []int64) BigInt {
	used := len(limbs)
	for used > 0 && limbs[used-1] == 0 {
		used--
	}
	return BigInt{neg: neg && used > 0, limbs: limbs, used: used}
}

// Zero returns the value 0.
func Zero() BigInt { return BigInt{limbs: []int64{0}} }

// One returns the value 1.
func One() BigInt { return BigInt{limbs: []int64{1}, used: 1} }

// MinusOne returns the value -1.
func MinusOne() BigInt { return BigInt{neg: true, limbs: []int64{1}, used: 1} }

// FromInt64 converts a machine integer to a BigInt.
func FromInt64(v int64) BigInt {
	x, err := Parse(strconv.FormatInt(v, 10))
	if err != nil {
		// FormatInt always yields a valid decimal literal.
		panic(err)
	}
	return x
}

// IsZero reports whether x is zero.
func (x BigInt) IsZero() bool { return x.used == 0 }

// IsOne reports whether x is one.
func (x BigInt) IsOne() bool {
	return !x.neg && x.used == 1 && x.limbs[0] == 1
}

// IsMinusOne reports whether x is structurally minus one.
func (x BigInt) IsMinusOne() bool {
	return x.neg && x.used == 1 && x.limbs[0] == 1
}

// Sign returns -1, 0 or +1.
func (x BigInt) Sign() int {
	switch {
	case x.used == 0:
		return 0
	case x.neg:
		return -1
	default:
		return 1
	}
}

// Neg returns -x. The limb storage is shared, which is safe because
// BigInt values are never mutated.
func (x BigInt) Neg() BigInt {
	if x.used == 0 {
		return x
	}
	return BigInt{neg: !x.neg, limbs: x.limbs, used: x.used}
}

// Len returns the number of stored limbs, including high zero limbs.
func (x BigInt) Len() int { return len(x.limbs) }

// Limbs returns a copy of the stored limbs, least-significant first.
func (x BigInt) Limbs() []int64 {
	out := make([]int64, len(x.limbs))
	copy(out, x.limbs)
	return out
}

// Digits returns the number of significant decimal digits of |x|.
// Zero has one digit.
func (x BigInt) Digits() int {
	top := x.top()
	if top < 0 {
		return 1
	}
	return top*LimbDigits + len(strconv.FormatInt(x.limbs[top], 10))
}

// Equal reports whether x and y hold the same value, regardless of how many
// high zero limbs each one stores.
func (x BigInt) Equal(y BigInt) bool {
	tx, ty := x.top(), y.top()
	if tx != ty {
		return false
	}
	if tx < 0 {
		return true
	}
	if x.neg != y.neg {
		return false
	}
	for i := 0; i <= tx; i++ {
		if x.limbs[i] != y.limbs[i] {
			return false
		}
	}
	return true
}

// top returns the index of the most significant non-zero limb, or -1.
func (x BigInt) top() int { return x.used - 1 }
