package num

import (
	"flag"
	"fmt"
	"math/big"
	"math/rand"
	"os"
	"strings"
	"testing"
	"time"
)

var (
	fuzzIterations = fuzzDefaultIterations
	fuzzDigits     = fuzzDefaultDigits
	fuzzOpsActive  = allFuzzOps
	fuzzSeed       int64

	globalRNG *rand.Rand
)

func TestMain(m *testing.M) {
	var ops StringList

	flag.IntVar(&fuzzIterations, "num.fuzziter", fuzzIterations, "Number of iterations to fuzz each op")
	flag.IntVar(&fuzzDigits, "num.fuzzdigits", fuzzDigits, "Maximum number of digits in a fuzzed operand")
	flag.Int64Var(&fuzzSeed, "num.fuzzseed", fuzzSeed, "Seed the RNG (0 == current nanotime)")
	flag.Var(&ops, "num.fuzzop", "Fuzz op to run (can pass multiple times, or a comma separated list)")
	flag.Parse()

	if fuzzSeed == 0 {
		fuzzSeed = time.Now().UnixNano()
	}
	globalRNG = rand.New(rand.NewSource(fuzzSeed))

	if len(ops) > 0 {
		fuzzOpsActive = nil
		for _, op := range ops {
			fuzzOpsActive = append(fuzzOpsActive, fuzzOp(op))
		}
	}

	fmt.Fprintln(os.Stderr, "rando seed:", fuzzSeed) // classic rando!
	fmt.Fprintln(os.Stderr, "active ops:", fuzzOpsActive)
	fmt.Fprintln(os.Stderr, "iterations:", fuzzIterations)
	fmt.Fprintln(os.Stderr, "max digits:", fuzzDigits)

	code := m.Run()
	os.Exit(code)
}

func accNaturalFromBigInt(b *big.Int) Natural {
	n, err := NaturalFromBigInt(b)
	if err != nil {
		panic(err)
	}
	return n
}

type StringList []string

func (s StringList) Strings() []string { return s }

func (s *StringList) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *StringList) Set(v string) error {
	vs := strings.Split(v, ",")
	for _, vi := range vs {
		vi = strings.TrimSpace(vi)
		if vi != "" {
			*s = append(*s, vi)
		}
	}
	return nil
}

// randomBigNatural returns a random non-negative big.Int of up to maxDigits
// 32-bit digits. Bit lengths are evenly distributed so small values turn up
// as often as large ones.
func randomBigNatural(rng *rand.Rand, maxDigits int) *big.Int {
	if rng == nil {
		rng = globalRNG
	}

	var v = new(big.Int)
	bits := rng.Intn(maxDigits*digitBits+1) - 1 // +1 for "0 bits"
	if bits < 0 {
		return v // "-1 bits" == "0"
	}
	v.Rand(rng, new(big.Int).Lsh(big1, uint(bits)))
	v.SetBit(v, bits, 1)
	return v
}

// randomNatural returns a random Natural of up to maxDigits digits. About one
// in four results carries redundant most-significant zero digits.
func randomNatural(rng *rand.Rand, maxDigits int) Natural {
	if rng == nil {
		rng = globalRNG
	}
	n := accNaturalFromBigInt(randomBigNatural(rng, maxDigits))
	if rng.Intn(4) == 0 {
		n = padNatural(n, 1+rng.Intn(3))
	}
	return n
}

// padNatural adds redundant most-significant zero digits to n.
func padNatural(n Natural, zeros int) Natural {
	out, err := NaturalFromDigits(append(make([]uint32, zeros), n.Digits()...)...)
	if err != nil {
		panic(err)
	}
	return out
}
