//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

package app

import "github.com/agbru/karatmul/internal/bigint"

// Multiplier computes products. *bigint.Multiplier is the production
// implementation.
type Multiplier interface {
	Product(a, b bigint.BigInt) (bigint.BigInt, error)
	Threshold() int
	MaxDigits() int
}

var _ Multiplier = (*bigint.Multiplier)(nil)
