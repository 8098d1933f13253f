/*
Package num provides an arbitrary-precision unsigned integer type (Natural),
built from 32-bit digits, implementing arithmetic, comparison, shifts and
bitwise logic.

Naturals are value types; all operations return new values and never modify
their operands.

Simple example:

	a, _ := num.NaturalFromString("1000000000")
	fmt.Println(a.Mul(a))
	// Output: 1000000000000000000

Naturals can be created from a variety of sources:

	NaturalFromDigits(digits ...uint32) (Natural, error)
	NaturalFrom64(v int64) (Natural, error)
	NaturalFromU64(v uint64) Natural
	NaturalFrom32(v uint32) Natural
	NaturalFromUnsigned[T constraints.Unsigned](v T) Natural
	NaturalFromString(s string) (Natural, error)
	NaturalFromBigInt(v *big.Int) (Natural, error)
	NaturalFromUint256(v *uint256.Int) Natural

Subtraction never wraps: a result below zero fails with ErrUnderflow.
Division is restricted to single-digit divisors and divisors that are an
exact power of two; any other divisor fails with ErrUnsupported. Failures
can be tested with errors.Is:

	if _, err := a.Sub(b); errors.Is(err, num.ErrUnderflow) {
		// b > a
	}

Natural supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

*/
package num
