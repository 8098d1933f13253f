package num

type RandSource interface {
	Uint64() uint64
}

// RandNatural generates a random Natural with the given number of digits from
// an external source. The most significant digits may be zero, so the result
// is not necessarily canonical. A digit count below one is treated as one.
func RandNatural(source RandSource, digits int) Natural {
	if digits < 1 {
		digits = 1
	}
	d := make([]uint32, digits)
	for i := 0; i < digits; i += 2 {
		v := source.Uint64()
		d[i] = uint32(v)
		if i+1 < digits {
			d[i+1] = uint32(v >> digitBits)
		}
	}
	return natural(d)
}

// DifferenceNatural subtracts the smaller of a and b from the larger.
func DifferenceNatural(a, b Natural) Natural {
	if a.LessThan(b) {
		a, b = b, a
	}
	out, err := a.Sub(b)
	if err != nil {
		panic(err) // unreachable: a >= b
	}
	return out
}

func LargerNatural(a, b Natural) Natural {
	if b.GreaterThan(a) {
		return b
	}
	return a
}

func SmallerNatural(a, b Natural) Natural {
	if b.LessThan(a) {
		return b
	}
	return a
}
