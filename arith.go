package num

// Digit primitives. Every operation widens into a uint64 so the carry, borrow
// or remainder can be recovered from the high half.

// z1<<32 + z0 = x+y+c, with c == 0 or 1
func addDD(x, y, c uint32) (z1, z0 uint32) {
	t := uint64(x) + uint64(y) + uint64(c)
	return uint32(t >> digitBits), uint32(t)
}

// z0 = x-y-b, with b == 0 or 1. z1 is the borrow out (0 or 1).
func subDD(x, y, b uint32) (z1, z0 uint32) {
	t := uint64(x) - uint64(y) - uint64(b)
	return uint32(t>>digitBits) & 1, uint32(t)
}

// z1<<32 + z0 = x*y + c. Cannot overflow: (2^32-1)^2 + 2^32-1 < 2^64.
func mulAddDDD(x, y, c uint32) (z1, z0 uint32) {
	t := uint64(x)*uint64(y) + uint64(c)
	return uint32(t >> digitBits), uint32(t)
}

// q = (u1<<32 + u0) / v, r = (u1<<32 + u0) % v. u1 must be less than v so the
// quotient fits in a single digit.
func divDD(u1, u0, v uint32) (q, r uint32) {
	t := uint64(u1)<<digitBits | uint64(u0)
	return uint32(t / uint64(v)), uint32(t % uint64(v))
}

// z1<<32 + z0 = x*y + c + a. Cannot overflow: (2^32-1)^2 + 2*(2^32-1) = 2^64-1.
func mulAdd2DDDD(x, y, c, a uint32) (z1, z0 uint32) {
	t := uint64(x)*uint64(y) + uint64(c) + uint64(a)
	return uint32(t >> digitBits), uint32(t)
}
