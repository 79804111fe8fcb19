package bigint

import "math/bits"

const (
	// DefaultThreshold is the default crossover limb count at or below which
	// the schoolbook method is used instead of recursing further.
	DefaultThreshold = 32

	// overflowBudget bounds n*n/leaf for a padded length n whose recursion
	// bottoms out at leaf limbs. Every intermediate limb then stays below
	// overflowBudget * (Base-1)^2 < 9e18, inside int64.
	overflowBudget = 9_000_000
)

// callCounts tallies the work done by one top-level multiplication.
type callCounts struct {
	karatsuba  int
	schoolbook int
	depth      int
}

// karatsubaMult multiplies two equal-length limb arrays whose length n is a
// power of two, returning 2n limbs. Like longMult it never carries; limbs
// of the result may exceed Base.
func karatsubaMult(a, b []int64, threshold int, calls *callCounts) []int64 {
	return karatsubaRec(a, b, threshold, calls, 0)
}

func karatsubaRec(a, b []int64, threshold int, calls *callCounts, depth int) []int64 {
	n := len(a)
	if depth > calls.depth {
		calls.depth = depth
	}
	if n <= threshold || n == 1 {
		calls.schoolbook++
		return longMult(a, b)
	}
	calls.karatsuba++

	k := n / 2
	a1, a2 := a[:k], a[k:]
	b1, b2 := b[:k], b[k:]

	left := karatsubaRec(a1, b1, threshold, calls, depth+1)
	right := karatsubaRec(a2, b2, threshold, calls, depth+1)

	sumA := acquireLimbs(k)
	sumB := acquireLimbs(k)
	for i := 0; i < k; i++ {
		sumA[i] = a1[i] + a2[i]
		sumB[i] = b1[i] + b2[i]
	}
	middle := karatsubaRec(sumA, sumB, threshold, calls, depth+1)
	releaseLimbs(sumA)
	releaseLimbs(sumB)

	// (a1+a2)(b1+b2) - a1*b1 - a2*b2 = a1*b2 + a2*b1
	for i := 0; i < n; i++ {
		middle[i] -= left[i] + right[i]
	}

	result := acquireLimbs(2 * n)
	copy(result, left)
	for i := 0; i < n; i++ {
		result[k+i] += middle[i]
		result[n+i] += right[i]
	}
	releaseLimbs(left)
	releaseLimbs(middle)
	releaseLimbs(right)
	return result
}

// leafSize returns the operand length at which recursion stops for a padded
// length n.
func leafSize(n, threshold int) int {
	if threshold < 1 {
		threshold = 1
	}
	leaf := 1 << (bits.Len(uint(threshold)) - 1)
	return min(leaf, n)
}

// SafeLimbs returns the largest padded limb count that can be multiplied with
// the given crossover threshold without any intermediate limb overflowing
// int64. Operand sums grow by one bit per recursion level, so deeper
// recursion (a smaller threshold) lowers the bound.
func SafeLimbs(threshold int) int {
	if threshold < 1 {
		threshold = DefaultThreshold
	}
	best := 1
	for n := 1; n <= 1<<30; n <<= 1 {
		if n/leafSize(n, threshold)*n > overflowBudget {
			break
		}
		best = n
	}
	return best
}
