package num

// AddDigit returns n+v. If v is zero, n is returned as-is.
func (n Natural) AddDigit(v uint32) Natural {
	if v == 0 {
		return n
	}

	d := n.digits()
	z := make([]uint32, len(d), len(d)+1)
	c := v
	for i, x := range d {
		c, z[i] = addDD(x, c, 0)
	}
	if c != 0 {
		z = append(z, c)
	}
	return natural(z)
}

// SubDigit returns n-v. It fails with ErrUnderflow if v is greater than n.
// The result keeps the digit count of n.
func (n Natural) SubDigit(v uint32) (out Natural, err error) {
	if v == 0 {
		return n, nil
	}

	d := n.digits()
	z := make([]uint32, len(d))
	b := uint32(0)
	z[0] = d[0] - v
	if d[0] < v {
		b = 1
	}
	for i := 1; i < len(d); i++ {
		b, z[i] = subDD(d[i], 0, b)
	}
	if b != 0 {
		return out, numError(ErrUnderflow, "%s - %d is negative", n, v)
	}
	return natural(z), nil
}

// MulDigit returns n*v. Multiplying by zero returns 0; multiplying by one
// returns n as-is.
func (n Natural) MulDigit(v uint32) Natural {
	switch v {
	case 0:
		return zeroNatural
	case 1:
		return n
	}

	d := n.digits()
	z := make([]uint32, len(d), len(d)+1)
	var c uint32
	for i, x := range d {
		c, z[i] = mulAddDDD(x, v, c)
	}
	if c != 0 {
		z = append(z, c)
	}
	return natural(z)
}

// QuoDigit returns the quotient n/v. It fails with ErrDivisionByZero if v is
// zero. See QuoRemDigit.
func (n Natural) QuoDigit(v uint32) (q Natural, err error) {
	q, _, err = n.QuoRemDigit(v)
	return q, err
}

// RemDigit returns the remainder n%v as a single-digit Natural. It fails with
// ErrDivisionByZero if v is zero.
func (n Natural) RemDigit(v uint32) (r Natural, err error) {
	_, rd, err := n.QuoRemDigit(v)
	if err != nil {
		return r, err
	}
	return NaturalFrom32(rd), nil
}

// QuoRemDigit returns the quotient n/v and the remainder n%v. It fails with
// ErrDivisionByZero if v is zero.
//
// The quotient has the same number of digits as n, so it may carry
// redundant most-significant zeros; call Trim if a canonical value is needed.
func (n Natural) QuoRemDigit(v uint32) (q Natural, r uint32, err error) {
	switch v {
	case 0:
		return q, 0, numError(ErrDivisionByZero, "%s / 0", n)
	case 1:
		return n, 0, nil
	}

	d := n.digits()
	z := make([]uint32, len(d))
	for i := len(d) - 1; i >= 0; i-- {
		z[i], r = divDD(r, d[i], v)
	}
	return natural(z), r, nil
}
