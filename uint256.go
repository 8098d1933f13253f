package num

import (
	"github.com/holiman/uint256"
)

// NaturalFromUint256 creates a Natural from a uint256.Int. A nil input is
// treated as 0. The result is always canonical.
func NaturalFromUint256(v *uint256.Int) Natural {
	if v == nil {
		return zeroNatural
	}
	d := make([]uint32, 0, 8)
	for _, w := range v {
		d = append(d, uint32(w), uint32(w>>digitBits))
	}
	return natural(d).Trim()
}

// AsUint256 converts n to a uint256.Int. Values wider than 256 bits are
// truncated and accurate is set to 'false'.
func (n Natural) AsUint256() (out *uint256.Int, accurate bool) {
	out = new(uint256.Int)
	accurate = true
	for i, v := range n.digits() {
		if i >= 8 {
			if v != 0 {
				accurate = false
			}
			continue
		}
		out[i/2] |= uint64(v) << (digitBits * uint(i%2))
	}
	return out, accurate
}
