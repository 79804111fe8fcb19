package bigint

import (
	"time"

	apperrors "github.com/agbru/karatmul/internal/errors"
)

// Path identifies how a product was computed.
type Path int

const (
	PathZero      Path = iota // an operand was zero
	PathIdentity              // an operand was one
	PathNegate                // an operand was minus one
	PathKaratsuba             // full limb multiplication
)

// String returns the path label used in logs and metrics.
func (p Path) String() string {
	switch p {
	case PathZero:
		return "zero"
	case PathIdentity:
		return "identity"
	case PathNegate:
		return "negate"
	case PathKaratsuba:
		return "karatsuba"
	default:
		return "unknown"
	}
}

// ProductReport describes one Product call.
type ProductReport struct {
	Path Path
	// Limbs is the padded operand length (0 on special-case paths).
	Limbs int
	// Threshold is the crossover in effect.
	Threshold int
	// KaratsubaCalls and SchoolbookCalls count recursive splits and base
	// cases. Depth is the deepest recursion level reached.
	KaratsubaCalls  int
	SchoolbookCalls int
	Depth           int
	Duration        time.Duration
	Err             error
}

// Observer receives a report after every Product call.
type Observer interface {
	ObserveProduct(r ProductReport)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(r ProductReport)

// ObserveProduct calls f(r).
func (f ObserverFunc) ObserveProduct(r ProductReport) { f(r) }

// Multiplier computes products with a configurable crossover threshold.
// A Multiplier is safe for concurrent use if its Observer is.
type Multiplier struct {
	threshold int
	observer  Observer
}

// Option configures a Multiplier.
type Option func(*Multiplier)

// WithThreshold sets the crossover limb count. Values below 1 select
// DefaultThreshold.
func WithThreshold(n int) Option {
	return func(m *Multiplier) { m.threshold = n }
}

// WithObserver registers an observer notified after every product.
func WithObserver(o Observer) Option {
	return func(m *Multiplier) { m.observer = o }
}

// NewMultiplier returns a Multiplier configured by opts.
func NewMultiplier(opts ...Option) *Multiplier {
	m := &Multiplier{threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(m)
	}
	if m.threshold < 1 {
		m.threshold = DefaultThreshold
	}
	return m
}

var defaultMultiplier = NewMultiplier()

// Product multiplies a and b with the default Multiplier.
func Product(a, b BigInt) (BigInt, error) {
	return defaultMultiplier.Product(a, b)
}

// Threshold returns the crossover limb count.
func (m *Multiplier) Threshold() int { return m.threshold }

// MaxLimbs returns the largest padded operand length this Multiplier accepts.
func (m *Multiplier) MaxLimbs() int { return SafeLimbs(m.threshold) }

// MaxDigits returns the largest operand digit count this Multiplier accepts.
func (m *Multiplier) MaxDigits() int { return m.MaxLimbs() * LimbDigits }

// Product returns a*b. Operands are not modified. It fails only with an
// apperrors.LimitError when the padded operands are longer than MaxLimbs.
func (m *Multiplier) Product(a, b BigInt) (BigInt, error) {
	start := time.Now()
	report := ProductReport{Threshold: m.threshold}
	z, err := m.product(a, b, &report)
	report.Duration = time.Since(start)
	report.Err = err
	if m.observer != nil {
		m.observer.ObserveProduct(report)
	}
	return z, err
}

func (m *Multiplier) product(a, b BigInt, report *ProductReport) (BigInt, error) {
	switch {
	case a.IsZero() || b.IsZero():
		report.Path = PathZero
		return Zero(), nil
	case a.IsOne():
		report.Path = PathIdentity
		return b, nil
	case b.IsOne():
		report.Path = PathIdentity
		return a, nil
	case a.IsMinusOne():
		report.Path = PathNegate
		return b.Neg(), nil
	case b.IsMinusOne():
		report.Path = PathNegate
		return a.Neg(), nil
	}

	report.Path = PathKaratsuba
	// Both lengths are powers of two, so their maximum is one too.
	n := max(len(a.limbs), len(b.limbs))
	report.Limbs = n
	if limit := m.MaxLimbs(); n > limit {
		return BigInt{}, apperrors.LimitError{What: "limbs", Got: n, Limit: limit}
	}

	x, y := padLimbs(a.limbs, n), padLimbs(b.limbs, n)
	var calls callCounts
	limbs := karatsubaMult(x, y, m.threshold, &calls)
	normalize(limbs)

	report.KaratsubaCalls = calls.karatsuba
	report.SchoolbookCalls = calls.schoolbook
	report.Depth = calls.depth
	return newBigInt(a.neg != b.neg, limbs), nil
}

// padLimbs returns limbs zero-extended to n. The input is returned as is
// when it already has length n; it is only ever read.
func padLimbs(limbs []int64, n int) []int64 {
	if len(limbs) == n {
		return limbs
	}
	out := make([]int64, n)
	copy(out, limbs)
	return out
}
