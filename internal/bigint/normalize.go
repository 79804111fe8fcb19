package bigint

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// normalize propagates carries left to right so that every limb ends up in
// [0, Base). The running carry may be negative. A carry left over after the
// last limb is folded into that limb, which is then the only one allowed to
// reach Base or more; it cannot happen for a 2n-limb product of n-limb
// operands. A negative leftover means the limbs encode a negative magnitude,
// which no product of magnitudes does, and panics.
func normalize(limbs []int64) {
	if len(limbs) == 0 {
		return
	}
	var carry int64
	for i := range limbs {
		carry += limbs[i]
		q, r := carry/Base, carry%Base
		if r < 0 {
			r += Base
			q--
		}
		limbs[i] = r
		carry = q
	}
	if carry < 0 {
		panic("bigint: normalize of a negative magnitude")
	}
	limbs[len(limbs)-1] += carry * Base
}

// String returns the decimal representation of x, with a leading '-' when x
// is negative and no redundant leading zeros.
func (x BigInt) String() string {
	top := x.top()
	if top < 0 {
		return "0"
	}
	var sb strings.Builder
	sb.Grow(top*LimbDigits + LimbDigits + 1)
	if x.neg {
		sb.WriteByte('-')
	}
	// The most significant limb is written unpadded, every lower limb fills
	// a full LimbDigits-wide field.
	sb.WriteString(strconv.FormatInt(x.limbs[top], 10))
	var buf [LimbDigits]byte
	for i := top - 1; i >= 0; i-- {
		v := x.limbs[i]
		for j := LimbDigits - 1; j >= 0; j-- {
			buf[j] = byte('0' + v%10)
			v /= 10
		}
		sb.Write(buf[:])
	}
	return sb.String()
}

// Format implements fmt.Formatter for the %s, %v and %d verbs.
func (x BigInt) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'v', 'd':
		io.WriteString(f, x.String())
	default:
		fmt.Fprintf(f, "%%!%c(bigint.BigInt=%s)", verb, x.String())
	}
}
