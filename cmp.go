package num

// Cmp compares n and m and returns:
//
//	-1 if n <  m
//	 0 if n == m
//	+1 if n >  m
//
// The digits are walked once from least to most significant. Each unequal
// digit overrides the verdict of the less significant digits before it, and
// the shorter operand is treated as if it were padded with zeros, so
// non-canonical operands compare by value.
func (n Natural) Cmp(m Natural) int {
	nd, md := n.digits(), m.digits()
	ln := len(nd)
	if len(md) > ln {
		ln = len(md)
	}

	var r int
	for i := 0; i < ln; i++ {
		var x, y uint32
		if i < len(nd) {
			x = nd[i]
		}
		if i < len(md) {
			y = md[i]
		}
		if x > y {
			r = 1
		} else if x < y {
			r = -1
		}
	}
	return r
}

// CmpDigit compares n with a single digit. Any non-zero digit above the least
// significant one makes n the greater.
func (n Natural) CmpDigit(v uint32) int {
	d := n.digits()
	for i := 1; i < len(d); i++ {
		if d[i] != 0 {
			return 1
		}
	}
	if d[0] > v {
		return 1
	} else if d[0] < v {
		return -1
	}
	return 0
}

func (n Natural) Equal(m Natural) bool {
	return n.Cmp(m) == 0
}

func (n Natural) EqualDigit(v uint32) bool {
	return n.CmpDigit(v) == 0
}

func (n Natural) GreaterThan(m Natural) bool {
	return n.Cmp(m) > 0
}

func (n Natural) GreaterOrEqualTo(m Natural) bool {
	return n.Cmp(m) >= 0
}

func (n Natural) LessThan(m Natural) bool {
	return n.Cmp(m) < 0
}

func (n Natural) LessOrEqualTo(m Natural) bool {
	return n.Cmp(m) <= 0
}
