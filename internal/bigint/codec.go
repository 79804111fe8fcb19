package bigint

import (
	"strings"

	apperrors "github.com/agbru/karatmul/internal/errors"
)

// ParseOption configures Parse.
type ParseOption func(*parseConfig)

type parseConfig struct {
	maxDigits int
}

// WithMaxDigits rejects literals with more than n significant digits.
// n <= 0 disables the limit.
func WithMaxDigits(n int) ParseOption {
	return func(c *parseConfig) { c.maxDigits = n }
}

// Parse converts a decimal literal to a BigInt. The literal may start with a
// single '-' or '+' and must otherwise contain only ASCII digits. Redundant
// leading zeros are ignored, and "-0" parses as 0.
//
// Malformed input yields an apperrors.FormatError; a literal longer than the
// WithMaxDigits limit yields an apperrors.LimitError. No limbs are allocated
// in either case.
func Parse(s string, opts ...ParseOption) (BigInt, error) {
	var cfg parseConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if s == "" {
		return BigInt{}, apperrors.FormatError{Input: s, Reason: apperrors.ReasonEmpty}
	}

	neg := false
	offset := 0
	switch s[0] {
	case '-':
		neg, offset = true, 1
	case '+':
		offset = 1
	}
	digits := s[offset:]
	if digits == "" {
		return BigInt{}, apperrors.FormatError{Input: s, Reason: apperrors.ReasonEmpty}
	}
	for i := 0; i < len(digits); i++ {
		if c := digits[i]; c < '0' || c > '9' {
			return BigInt{}, apperrors.FormatError{
				Input:  s,
				Reason: apperrors.ReasonIllegalChar,
				Pos:    offset + i,
				Char:   c,
			}
		}
	}

	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return Zero(), nil
	}
	if cfg.maxDigits > 0 && len(digits) > cfg.maxDigits {
		return BigInt{}, apperrors.LimitError{What: "digits", Got: len(digits), Limit: cfg.maxDigits}
	}

	limbs := make([]int64, limbCount(len(digits)))
	// Groups of LimbDigits are cut from the least-significant end; the
	// leftover prefix becomes the most significant limb.
	for i, end := 0, len(digits); end > 0; i, end = i+1, end-LimbDigits {
		limbs[i] = parseLimb(digits[max(0, end-LimbDigits):end])
	}
	return newBigInt(neg, limbs), nil
}

// MustParse is like Parse but panics on error. Intended for literals in
// tests and examples.
func MustParse(s string) BigInt {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return x
}

// limbCount returns the smallest power of two p with LimbDigits*p >= digits.
func limbCount(digits int) int {
	p := 1
	for LimbDigits*p < digits {
		p <<= 1
	}
	return p
}

// parseLimb converts at most LimbDigits already-validated digits.
func parseLimb(s string) int64 {
	var v int64
	for i := 0; i < len(s); i++ {
		v = 10*v + int64(s[i]-'0')
	}
	return v
}
