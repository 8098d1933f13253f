package num

import (
	"math/big"
)

const (
	digitBits = 32
	digitMask = 1<<digitBits - 1

	maxUint32 = 1<<32 - 1
	maxInt32  = 1<<31 - 1

	// decimalGroup is the largest power of ten that fits in a digit. String()
	// renders a Natural by repeatedly dividing by it.
	decimalGroup       = 1000000000
	decimalGroupDigits = 9

	intSize = 32 << (^uint(0) >> 63)

	// maxLshDigits is the most whole digits Lsh will insert.
	maxLshDigits = 1 << 30
)

var (
	zeroNatural = Natural{d: []uint32{0}}

	big0 = new(big.Int).SetInt64(0)
	big1 = new(big.Int).SetInt64(1)

	maxBigUint32 = new(big.Int).SetUint64(maxUint32)
	maxBigUint64 = new(big.Int).SetUint64(1<<64 - 1)

	// wrapBigU64 is 1 << 64:
	wrapBigU64, _ = new(big.Int).SetString("18446744073709551616", 10)

	// maxBigU256 is (1 << 256) - 1, the largest value AsUint256 can return
	// accurately:
	maxBigU256, _ = new(big.Int).SetString("115792089237316195423570985008687907853269984665640564039457584007913129639935", 10)
)
