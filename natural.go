package num

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Natural is an arbitrary-precision unsigned integer made of 32-bit digits.
//
// Naturals are immutable value types; all operations return new values and
// never modify their operands, so a Natural may be shared freely between
// goroutines. The zero value is 0.
//
// A Natural may carry redundant most-significant zero digits (for example
// the quotient returned by QuoDigit keeps the digit count of the dividend).
// Such values are non-canonical but compare and compute correctly; call Trim
// to remove the extra digits.
type Natural struct {
	// Digits are stored least significant first. The last element is the
	// most significant digit. A nil slice is equivalent to []uint32{0}.
	d []uint32
}

// natural wraps d without copying. The capacity is clipped so an append by
// any holder can never write into an array shared with another Natural.
func natural(d []uint32) Natural {
	return Natural{d: d[:len(d):len(d)]}
}

func (n Natural) digits() []uint32 {
	if len(n.d) == 0 {
		return zeroNatural.d
	}
	return n.d
}

// NaturalFromDigits creates a Natural from a list of digits ordered from most
// significant to least significant. The list may not be empty.
func NaturalFromDigits(digits ...uint32) (out Natural, err error) {
	if len(digits) == 0 {
		return out, numError(ErrInvalidArgument, "natural requires at least one digit")
	}
	d := make([]uint32, len(digits))
	for i, v := range digits {
		d[len(digits)-1-i] = v
	}
	return natural(d), nil
}

// NaturalFrom64 creates a Natural from an int64. Negative values fail with
// ErrNegativeValue.
func NaturalFrom64(v int64) (out Natural, err error) {
	if v < 0 {
		return out, numError(ErrNegativeValue, "natural from negative int64 %d", v)
	}
	return NaturalFromU64(uint64(v)), nil
}

func NaturalFromU64(v uint64) Natural {
	if v <= maxUint32 {
		return Natural{d: []uint32{uint32(v)}}
	}
	return Natural{d: []uint32{uint32(v), uint32(v >> digitBits)}}
}

func NaturalFrom32(v uint32) Natural { return Natural{d: []uint32{v}} }

// NaturalFromUnsigned creates a Natural from any unsigned integer type.
func NaturalFromUnsigned[T constraints.Unsigned](v T) Natural {
	return NaturalFromU64(uint64(v))
}

// NaturalFromBigInt creates a Natural from a big.Int. Negative values fail
// with ErrNegativeValue. The result is always canonical.
func NaturalFromBigInt(v *big.Int) (out Natural, err error) {
	if v == nil {
		return out, numError(ErrInvalidArgument, "natural from nil big.Int")
	}
	if v.Sign() < 0 {
		return out, numError(ErrNegativeValue, "natural from negative big.Int %s", v)
	}

	words := v.Bits()
	if len(words) == 0 {
		return zeroNatural, nil
	}

	var d []uint32
	switch intSize {
	case 64:
		d = make([]uint32, 0, len(words)*2)
		for _, w := range words {
			d = append(d, uint32(w), uint32(uint64(w)>>digitBits))
		}
	case 32:
		d = make([]uint32, len(words))
		for i, w := range words {
			d[i] = uint32(w)
		}
	default:
		panic("num: unsupported bit size")
	}
	return natural(d).Trim(), nil
}

// NaturalFromString creates a Natural from a decimal string. Only the
// characters '0' to '9' are accepted; a leading '-' fails with
// ErrNegativeValue.
func NaturalFromString(s string) (out Natural, err error) {
	if len(s) == 0 {
		return out, numError(ErrInvalidArgument, "natural string is empty")
	}
	if s[0] == '-' {
		return out, numError(ErrNegativeValue, "natural string %q is negative", s)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return out, numError(ErrInvalidArgument, "natural string %q invalid", s)
		}
	}

	head := len(s) % decimalGroupDigits
	if head == 0 {
		head = decimalGroupDigits
	}
	out = zeroNatural
	for start, end := 0, head; start < len(s); start, end = end, end+decimalGroupDigits {
		group, err := strconv.ParseUint(s[start:end], 10, 32)
		if err != nil {
			return Natural{}, numError(ErrInvalidArgument, "natural string %q invalid: %v", s, err)
		}
		out = out.MulDigit(decimalGroup).AddDigit(uint32(group))
	}
	return out.Trim(), nil
}

func (n Natural) IsZero() bool {
	for _, v := range n.d {
		if v != 0 {
			return false
		}
	}
	return true
}

// Trim returns n without redundant most-significant zero digits. At least one
// digit is always kept. Trim is idempotent.
func (n Natural) Trim() Natural {
	d := n.digits()
	top := len(d) - 1
	for top > 0 && d[top] == 0 {
		top--
	}
	if top == len(d)-1 {
		return n
	}
	return natural(d[:top+1])
}

// Len returns the number of digits in n, including any redundant
// most-significant zero digits.
func (n Natural) Len() int { return len(n.digits()) }

// Digits returns a copy of the digits of n ordered from most significant to
// least significant. It is the counterpart to NaturalFromDigits().
func (n Natural) Digits() []uint32 {
	d := n.digits()
	out := make([]uint32, len(d))
	for i, v := range d {
		out[len(d)-1-i] = v
	}
	return out
}

// AsInt32 returns the least significant digit of n with the sign bit cleared.
// All other bits are discarded.
func (n Natural) AsInt32() int32 {
	return int32(n.digits()[0] & maxInt32)
}

// AsUint64 truncates n to fit in a uint64. See IsUint64() if you want to
// check before you convert.
func (n Natural) AsUint64() uint64 {
	d := n.digits()
	v := uint64(d[0])
	if len(d) > 1 {
		v |= uint64(d[1]) << digitBits
	}
	return v
}

// IsUint64 reports whether n can be represented as a uint64.
func (n Natural) IsUint64() bool {
	d := n.digits()
	for i := 2; i < len(d); i++ {
		if d[i] != 0 {
			return false
		}
	}
	return true
}

func (n Natural) IntoBigInt(b *big.Int) {
	d := n.digits()

	switch intSize {
	case 64:
		words := b.Bits()[:0]
		for i := 0; i < len(d); i += 2 {
			w := uint64(d[i])
			if i+1 < len(d) {
				w |= uint64(d[i+1]) << digitBits
			}
			words = append(words, big.Word(w))
		}
		b.SetBits(words)

	case 32:
		words := b.Bits()[:0]
		for _, v := range d {
			words = append(words, big.Word(v))
		}
		b.SetBits(words)

	default:
		b.SetUint64(0)
		var t big.Int
		for i := len(d) - 1; i >= 0; i-- {
			b.Lsh(b, digitBits)
			b.Add(b, t.SetUint64(uint64(d[i])))
		}
	}
}

func (n Natural) AsBigInt() (b *big.Int) {
	var v big.Int
	n.IntoBigInt(&v)
	return &v
}

// String renders n in decimal, without leading zeros.
func (n Natural) String() string {
	if n.IsUint64() {
		return strconv.FormatUint(n.AsUint64(), 10)
	}

	// Groups are collected least significant first.
	var groups []uint32
	for q := n.Trim(); !q.IsZero(); q = q.Trim() {
		var r uint32
		q, r, _ = q.QuoRemDigit(decimalGroup)
		groups = append(groups, r)
	}

	var sb strings.Builder
	sb.Grow(len(groups) * decimalGroupDigits)
	sb.WriteString(strconv.FormatUint(uint64(groups[len(groups)-1]), 10))
	for i := len(groups) - 2; i >= 0; i-- {
		s := strconv.FormatUint(uint64(groups[i]), 10)
		for pad := len(s); pad < decimalGroupDigits; pad++ {
			sb.WriteByte('0')
		}
		sb.WriteString(s)
	}
	return sb.String()
}

func (n Natural) Format(s fmt.State, c rune) {
	// FIXME: This is good enough for now, but not forever.
	n.AsBigInt().Format(s, c)
}

func (n Natural) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

func (n *Natural) UnmarshalText(bts []byte) (err error) {
	v, err := NaturalFromString(string(bts))
	if err != nil {
		return err
	}
	*n = v
	return nil
}

func (n Natural) MarshalJSON() ([]byte, error) {
	return []byte(`"` + n.String() + `"`), nil
}

func (n *Natural) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return numError(ErrInvalidArgument, "natural invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := NaturalFromString(string(bts))
	if err != nil {
		return err
	}
	*n = v
	return nil
}
