// This file provides pooling of limb buffers for Karatsuba temporaries.

package bigint

import (
	"math/bits"
	"sync"
)

// ─────────────────────────────────────────────────────────────────────────────
// Limb Slice Pools
// ─────────────────────────────────────────────────────────────────────────────

// minLimbClassBits is log2 of the smallest pooled size class.
const minLimbClassBits = 6

// limbPools pools []int64 slices by power-of-two size class, from 64 limbs
// up to 4M limbs (32MB). Karatsuba only ever asks for power-of-two lengths,
// so every request maps to an exact class once it is at least 64.
var limbPools = [...]sync.Pool{
	{New: func() any { return make([]int64, 1<<6) }},
	{New: func() any { return make([]int64, 1<<7) }},
	{New: func() any { return make([]int64, 1<<8) }},
	{New: func() any { return make([]int64, 1<<9) }},
	{New: func() any { return make([]int64, 1<<10) }},
	{New: func() any { return make([]int64, 1<<11) }},
	{New: func() any { return make([]int64, 1<<12) }},
	{New: func() any { return make([]int64, 1<<13) }},
	{New: func() any { return make([]int64, 1<<14) }},
	{New: func() any { return make([]int64, 1<<15) }},
	{New: func() any { return make([]int64, 1<<16) }},
	{New: func() any { return make([]int64, 1<<17) }},
	{New: func() any { return make([]int64, 1<<18) }},
	{New: func() any { return make([]int64, 1<<19) }},
	{New: func() any { return make([]int64, 1<<20) }},
	{New: func() any { return make([]int64, 1<<21) }},
	{New: func() any { return make([]int64, 1<<22) }},
}

// limbClassSize returns the capacity of size class idx.
func limbClassSize(idx int) int { return 1 << (idx + minLimbClassBits) }

// limbPoolIndex returns the pool index for a given size, or -1 if the size
// is too large for pooling.
func limbPoolIndex(size int) int {
	if size <= 1<<minLimbClassBits {
		return 0
	}
	idx := bits.Len(uint(size-1)) - minLimbClassBits
	if idx >= len(limbPools) {
		return -1
	}
	return idx
}

// acquireLimbs returns a zeroed limb slice of exactly size elements.
// Release it with releaseLimbs once it is no longer referenced.
func acquireLimbs(size int) []int64 {
	idx := limbPoolIndex(size)
	if idx < 0 {
		return make([]int64, size)
	}
	s := limbPools[idx].Get().([]int64)
	s = s[:size]
	clear(s)
	return s
}

// releaseLimbs returns a slice obtained from acquireLimbs to its pool.
// Slices whose capacity is not a pool class are left to the GC.
func releaseLimbs(s []int64) {
	if s == nil {
		return
	}
	c := cap(s)
	idx := limbPoolIndex(c)
	if idx >= 0 && limbClassSize(idx) == c {
		limbPools[idx].Put(s[:c])
	}
}
