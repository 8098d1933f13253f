package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	"github.com/decred/slog"
	flags "github.com/jessevdk/go-flags"
	num "github.com/shabbyrobe/go-bignum"
)

// This is a small calculator for poking at Naturals from the shell. It
// evaluates a single operation and prints the result. With --dump it also
// prints the digit chain of each Natural result as returned, before any
// trimming, so redundant zero digits (from Lsh, Or or QuoRem's quotient)
// show up.

const usage = "[OPTIONS] <lhs> <op> <rhs> | <x> pow2|trim|bitlen"

type config struct {
	Dump     bool   `short:"d" long:"dump" description:"dump the untrimmed digit chain of the result"`
	Format   string `short:"f" long:"format" description:"fmt verb used to print results (e.g. %d, %x, %#b)"`
	LogLevel string `short:"l" long:"loglevel" description:"logging level (trace, debug, info, warn, error, critical, off)"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config{
		Format:   "%d",
		LogLevel: "info",
	}
	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = usage
	args, err := parser.Parse()
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return err
	}

	level, ok := slog.LevelFromString(cfg.LogLevel)
	if !ok {
		return fmt.Errorf("natcalc: unknown log level %q", cfg.LogLevel)
	}
	logger := slog.NewBackend(os.Stderr).Logger("NUM")
	logger.SetLevel(level)
	num.UseLogger(logger)

	result, err := eval(args)
	if err != nil {
		return err
	}

	for _, r := range result {
		fmt.Printf(cfg.Format+"\n", r)
	}
	if cfg.Dump {
		dump(os.Stdout, result)
	}
	return nil
}

// dump writes the digits of each Natural in result, most significant first.
func dump(w io.Writer, result []interface{}) {
	for _, r := range result {
		if n, ok := r.(num.Natural); ok {
			fmt.Fprint(w, "result: ")
			spew.Fdump(w, n.Digits())
		}
	}
}

func eval(args []string) (result []interface{}, err error) {
	switch len(args) {
	case 2:
		x, err := num.NaturalFromString(args[0])
		if err != nil {
			return nil, err
		}
		switch args[1] {
		case "pow2":
			return []interface{}{x.PowerOfTwo()}, nil
		case "trim":
			return []interface{}{x.Trim()}, nil
		case "bitlen":
			return []interface{}{x.BitLen()}, nil
		}
		return nil, fmt.Errorf("natcalc: unknown unary op %q", args[1])

	case 3:
		// handled below

	default:
		return nil, fmt.Errorf("natcalc: usage: %s", usage)
	}

	lhs, err := num.NaturalFromString(args[0])
	if err != nil {
		return nil, err
	}
	op := args[1]

	if op == "<<" || op == ">>" {
		by, err := strconv.ParseUint(args[2], 10, 0)
		if err != nil {
			return nil, fmt.Errorf("natcalc: shift %q invalid: %w", args[2], err)
		}
		if op == "<<" {
			return []interface{}{lhs.Lsh(uint(by))}, nil
		}
		return []interface{}{lhs.Rsh(uint(by))}, nil
	}

	rhs, err := num.NaturalFromString(args[2])
	if err != nil {
		return nil, err
	}

	var out num.Natural
	switch op {
	case "+":
		out = lhs.Add(rhs)
	case "-":
		out, err = lhs.Sub(rhs)
	case "*":
		out = lhs.Mul(rhs)
	case "/":
		out, err = lhs.Quo(rhs)
	case "%":
		out, err = lhs.Rem(rhs)
	case "/%":
		q, r, err := lhs.QuoRem(rhs)
		if err != nil {
			return nil, err
		}
		return []interface{}{q.Trim(), r}, nil
	case "|":
		out = lhs.Or(rhs)
	case "&":
		out = lhs.And(rhs)
	case "^":
		out = lhs.Xor(rhs)
	case "cmp":
		return []interface{}{lhs.Cmp(rhs)}, nil
	default:
		return nil, fmt.Errorf("natcalc: unknown op %q", op)
	}
	if err != nil {
		return nil, err
	}
	return []interface{}{out}, nil
}
