package num

import (
	"math/bits"
)

// Lsh returns n << s. Whole digits of zeros are inserted below the shifted
// digits; the result is not trimmed.
//
// Lsh panics if s/32 exceeds 2^30; such a result would need more than 4GiB
// of digits.
func (n Natural) Lsh(s uint) Natural {
	if s == 0 {
		return n
	}
	if s/digitBits > maxLshDigits {
		panic("num: left shift too large")
	}

	d := n.digits()
	words, m := int(s/digitBits), s%digitBits

	z := make([]uint32, words+len(d), words+len(d)+1)
	if m == 0 {
		copy(z[words:], d)
		return natural(z)
	}

	var c uint32
	for i, x := range d {
		z[words+i] = x<<m | c
		c = x >> (digitBits - m)
	}
	if c != 0 {
		z = append(z, c)
	}
	return natural(z)
}

// Rsh returns n >> s. If every digit is shifted out the result is 0. The
// result is not trimmed.
func (n Natural) Rsh(s uint) Natural {
	if s == 0 {
		return n
	}

	d := n.digits()
	words, m := s/digitBits, s%digitBits
	if words >= uint(len(d)) {
		return zeroNatural
	}
	d = d[words:]

	z := make([]uint32, len(d))
	if m == 0 {
		copy(z, d)
		return natural(z)
	}

	// c holds the low bits of the next more significant digit:
	var c uint32
	for i := len(d) - 1; i >= 0; i-- {
		z[i] = d[i]>>m | c
		c = d[i] << (digitBits - m)
	}
	return natural(z)
}

// Or returns n | m. Digits above the end of the shorter operand are copied
// from the longer one. The result is not trimmed.
func (n Natural) Or(m Natural) Natural {
	x, y := n.digits(), m.digits()
	if len(x) < len(y) {
		x, y = y, x
	}

	z := make([]uint32, len(x))
	for i := range y {
		z[i] = x[i] | y[i]
	}
	copy(z[len(y):], x[len(y):])
	return natural(z)
}

// And returns n & m, trimmed. The result stops where the shorter operand
// stops; the extra digits of the longer operand are dropped rather than
// combined with zeros.
func (n Natural) And(m Natural) Natural {
	x, y := n.digits(), m.digits()
	ln := len(x)
	if len(y) < ln {
		ln = len(y)
	}

	z := make([]uint32, ln)
	for i := 0; i < ln; i++ {
		z[i] = x[i] & y[i]
	}
	return natural(z).Trim()
}

// Xor returns n ^ m, trimmed. Digits above the end of the shorter operand are
// copied from the longer one.
func (n Natural) Xor(m Natural) Natural {
	x, y := n.digits(), m.digits()
	if len(x) < len(y) {
		x, y = y, x
	}

	z := make([]uint32, len(x))
	for i := range y {
		z[i] = x[i] ^ y[i]
	}
	copy(z[len(y):], x[len(y):])
	return natural(z).Trim()
}

// PowerOfTwo returns k if n == 2^k, otherwise -1. Zero is not a power of two.
func (n Natural) PowerOfTwo() int {
	pos := -1
	for i, v := range n.digits() {
		if v == 0 {
			continue
		}
		if pos >= 0 || v&(v-1) != 0 {
			return -1
		}
		pos = i*digitBits + bits.TrailingZeros32(v)
	}
	return pos
}

// BitLen returns the number of bits required to represent n. The bit length
// of 0 is 0.
func (n Natural) BitLen() int {
	d := n.Trim().digits()
	top := len(d) - 1
	return top*digitBits + bits.Len32(d[top])
}

// Bit returns the value of the i'th bit of n, with the least significant bit
// at index 0. Bits above the end of n are 0.
func (n Natural) Bit(i int) uint {
	if i < 0 {
		panic("num: negative bit index")
	}
	d := n.digits()
	w := i / digitBits
	if w >= len(d) {
		return 0
	}
	return uint(d[w]>>(uint(i)%digitBits)) & 1
}
