package main

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	num "github.com/shabbyrobe/go-bignum"
	"github.com/shabbyrobe/golib/assert"
)

func TestEval(t *testing.T) {
	for _, tc := range []struct {
		args string
		out  string
	}{
		{"4294967295 + 1", "[4294967296]"},
		{"1000000000 * 1000000000", "[1000000000000000000]"},
		{"5 - 3", "[2]"},
		{"16 / 4", "[4]"},
		{"16 /% 5", "[3 1]"},
		{"18446744073709551621 % 18446744073709551616", "[5]"},
		{"6 << 1", "[12]"},
		{"12 >> 2", "[3]"},
		{"12 | 3", "[15]"},
		{"12 & 6", "[4]"},
		{"12 ^ 6", "[10]"},
		{"3 cmp 5", "[-1]"},
		{"65536 pow2", "[16]"},
		{"65535 bitlen", "[16]"},
		{"0007 trim", "[7]"},
	} {
		t.Run(tc.args, func(t *testing.T) {
			tt := assert.WrapTB(t)
			result, err := eval(strings.Fields(tc.args))
			tt.MustOK(err)
			tt.MustEqual(tc.out, fmt.Sprint(result))
		})
	}
}

func TestEvalFails(t *testing.T) {
	for _, tc := range []struct {
		args string
		kind error
	}{
		{"3 - 5", num.ErrUnderflow},
		{"100 / 0", num.ErrDivisionByZero},
		{"100 / 18446744073709551617", num.ErrUnsupported},
		{"-1 + 1", num.ErrNegativeValue},
		{"x + 1", num.ErrInvalidArgument},
	} {
		t.Run(tc.args, func(t *testing.T) {
			tt := assert.WrapTB(t)
			_, err := eval(strings.Fields(tc.args))
			tt.MustAssert(errors.Is(err, tc.kind), "found %v", err)
		})
	}

	for _, args := range []string{"1", "1 2 3 4", "1 ? 2", "1 nope", "1 << x"} {
		t.Run(args, func(t *testing.T) {
			tt := assert.WrapTB(t)
			_, err := eval(strings.Fields(args))
			tt.MustAssert(err != nil)
		})
	}
}

func TestDumpKeepsRedundantDigits(t *testing.T) {
	tt := assert.WrapTB(t)

	// 2^64 has three digits and so does its quotient by a single digit:
	result, err := eval(strings.Fields("18446744073709551616 /% 2"))
	tt.MustOK(err)
	tt.MustEqual("[9223372036854775808 0]", fmt.Sprint(result))

	var buf bytes.Buffer
	dump(&buf, result)
	out := buf.String()
	tt.MustEqual(2, strings.Count(out, "result: "))
	tt.MustAssert(strings.Contains(out, "(len=3 cap=3)"), out)
	tt.MustAssert(strings.Contains(out, " (uint32) 0,\n (uint32) 2147483648,\n (uint32) 0\n"), out)
}

func TestDumpSkipsNonNaturals(t *testing.T) {
	tt := assert.WrapTB(t)
	var buf bytes.Buffer
	dump(&buf, []interface{}{-1, 16})
	tt.MustEqual("", buf.String())
}
