package num

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

type fixedSource []uint64

func (f *fixedSource) Uint64() uint64 {
	v := (*f)[0]
	*f = (*f)[1:]
	return v
}

func TestRandNatural(t *testing.T) {
	for idx, tc := range []struct {
		src    fixedSource
		digits int
		out    []uint32
	}{
		{fixedSource{0x1_00000002}, 0, []uint32{2}},
		{fixedSource{0x1_00000002}, 1, []uint32{2}},
		{fixedSource{0x1_00000002}, 2, []uint32{1, 2}},
		{fixedSource{0x1_00000002, 0x3_00000004}, 3, []uint32{4, 1, 2}},
		{fixedSource{0, 0}, 4, []uint32{0, 0, 0, 0}},
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			tt := assert.WrapTB(t)
			src := tc.src
			tt.MustEqual(tc.out, RandNatural(&src, tc.digits).Digits())
		})
	}
}

func TestRandNaturalMathRand(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(1))
	for i := 1; i < 20; i++ {
		tt.MustEqual(i, RandNatural(rng, i).Len())
	}
}

func TestDifferenceNatural(t *testing.T) {
	for _, tc := range []struct {
		a, b, out Natural
	}{
		{n64(0), n64(0), n64(0)},
		{n64(1), n64(3), n64(2)},
		{n64(3), n64(1), n64(2)},
		{digits(1, 0), n64(1), n64(maxUint32)},
		{n64(1), digits(0, 1, 0), n64(maxUint32)},
	} {
		t.Run(fmt.Sprintf("|%s-%s|=%s", tc.a, tc.b, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustAssert(tc.out.Equal(DifferenceNatural(tc.a, tc.b)))
		})
	}
}

func TestLargerSmallerNatural(t *testing.T) {
	for _, tc := range []struct {
		a, b            Natural
		larger, smaller Natural
	}{
		{n64(1), n64(2), n64(2), n64(1)},
		{n64(2), n64(1), n64(2), n64(1)},
		{digits(1, 0), n64(maxUint32), digits(1, 0), n64(maxUint32)},
		{digits(0, 5), n64(5), n64(5), n64(5)},
	} {
		t.Run(fmt.Sprintf("%s,%s", tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustAssert(tc.larger.Equal(LargerNatural(tc.a, tc.b)))
			tt.MustAssert(tc.smaller.Equal(SmallerNatural(tc.a, tc.b)))
		})
	}
}
