package bigint

// longMult returns the limb convolution of a and b, which must have equal
// length n. The result has length 2n and is not carried: limbs may exceed
// Base.
func longMult(a, b []int64) []int64 {
	if len(a) != len(b) {
		panic("bigint: longMult operands differ in length")
	}
	n := len(a)
	c := acquireLimbs(2 * n)
	for i := 0; i < n; i++ {
		ai := a[i]
		if ai == 0 {
			continue
		}
		row := c[i : i+n]
		for j, bj := range b {
			row[j] += ai * bj
		}
	}
	return c
}
