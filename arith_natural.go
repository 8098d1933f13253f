package num

func (n Natural) Add(m Natural) Natural {
	x, y := n.digits(), m.digits()
	if len(x) < len(y) {
		x, y = y, x
	}
	// len(x) >= len(y)

	z := make([]uint32, len(x), len(x)+1)
	var c uint32
	for i := range y {
		c, z[i] = addDD(x[i], y[i], c)
	}
	for i := len(y); i < len(x); i++ {
		c, z[i] = addDD(x[i], 0, c)
	}
	if c != 0 {
		z = append(z, c)
	}
	return natural(z)
}

// Sub returns n-m. It fails with ErrUnderflow if m is greater than n. The
// result is trimmed.
func (n Natural) Sub(m Natural) (out Natural, err error) {
	x, y := n.digits(), m.digits()
	ln := len(x)
	if len(y) > ln {
		ln = len(y)
	}

	z := make([]uint32, ln)
	var b uint32
	for i := 0; i < ln; i++ {
		var xv, yv uint32
		if i < len(x) {
			xv = x[i]
		}
		if i < len(y) {
			yv = y[i]
		}
		b, z[i] = subDD(xv, yv, b)
	}
	if b != 0 {
		return out, numError(ErrUnderflow, "%s - %s is negative", n, m)
	}
	return natural(z).Trim(), nil
}

// Mul returns n*m using schoolbook multiplication. If either operand has a
// single digit, the result is the other operand's MulDigit.
func (n Natural) Mul(m Natural) Natural {
	x, y := n.digits(), m.digits()
	if len(x) == 1 {
		return m.MulDigit(x[0])
	} else if len(y) == 1 {
		return n.MulDigit(y[0])
	}

	z := make([]uint32, len(x)+len(y))
	for j, yv := range y {
		if yv == 0 {
			continue
		}
		var c uint32
		for i, xv := range x {
			c, z[i+j] = mulAdd2DDDD(xv, yv, c, z[i+j])
		}
		z[j+len(x)] = c
	}
	return natural(z).Trim()
}

// Quo returns the quotient n/m. Division is only supported when m is a single
// digit or an exact power of two; any other divisor fails with
// ErrUnsupported. A zero divisor fails with ErrDivisionByZero.
func (n Natural) Quo(m Natural) (q Natural, err error) {
	digit, shift, err := n.divisor(m)
	if err != nil {
		return q, err
	}
	if shift < 0 {
		return n.QuoDigit(digit)
	}
	return n.Rsh(uint(shift)), nil
}

// Rem returns the remainder n%m under the same restrictions as Quo.
func (n Natural) Rem(m Natural) (r Natural, err error) {
	digit, shift, err := n.divisor(m)
	if err != nil {
		return r, err
	}
	if shift < 0 {
		return n.RemDigit(digit)
	}
	return n.And(lowMask(shift)), nil
}

// QuoRem returns the quotient n/m and remainder n%m under the same
// restrictions as Quo.
func (n Natural) QuoRem(m Natural) (q, r Natural, err error) {
	digit, shift, err := n.divisor(m)
	if err != nil {
		return q, r, err
	}
	if shift < 0 {
		q, rd, err := n.QuoRemDigit(digit)
		if err != nil {
			return q, r, err
		}
		return q, NaturalFrom32(rd), nil
	}
	return n.Rsh(uint(shift)), n.And(lowMask(shift)), nil
}

// divisor works out how n may be divided by m. A single-digit divisor is
// returned as digit with shift set to -1. A multi-digit divisor that is an
// exact power of two is returned as a right shift.
func (n Natural) divisor(m Natural) (digit uint32, shift int, err error) {
	d := m.Trim().digits()
	if len(d) == 1 {
		if d[0] == 0 {
			return 0, -1, numError(ErrDivisionByZero, "%s / 0", n)
		}
		log.Tracef("num: dividing %s by single digit %d", n, d[0])
		return d[0], -1, nil
	}

	shift = m.PowerOfTwo()
	if shift < 0 {
		log.Debugf("num: rejecting divisor %s: not a single digit or a power of two", m)
		return 0, -1, numError(ErrUnsupported, "%s / %s: multi-digit divisor must be a power of two", n, m)
	}
	log.Tracef("num: dividing %s by 2^%d", n, shift)
	return 0, shift, nil
}

// lowMask returns (1 << bits) - 1.
func lowMask(bits int) Natural {
	words, m := bits/digitBits, uint(bits%digitBits)
	z := make([]uint32, words+1)
	for i := 0; i < words; i++ {
		z[i] = digitMask
	}
	z[words] = 1<<m - 1
	return natural(z)
}
