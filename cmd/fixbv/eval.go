package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/avdva/fixbv"
)

// format is the format of an operand, as given on the command line.
type format struct {
	msb, lsb int
	saturate bool
	rounding fixbv.Rounding
}

func readFormat(cmd *cobra.Command) (format, error) {
	rounding, err := fixbv.ParseRounding(GetString(cmd, "rounding"))
	if err != nil {
		return format{}, err
	}
	return format{
		msb:      GetInt(cmd, "msb"),
		lsb:      GetInt(cmd, "lsb"),
		saturate: GetFlag(cmd, "saturate"),
		rounding: rounding,
	}, nil
}

func (f format) parse(s string) (*fixbv.Value, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("bad number %q: %w", s, err)
	}
	v, err := fixbv.FromDecimal(d, f.msb, f.lsb, fixbv.WithSaturate(f.saturate), fixbv.WithRounding(f.rounding))
	if err != nil {
		return nil, err
	}
	log.Debugf("parsed %s as %#v", s, v)
	return v, nil
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad integer %q: %w", s, err)
	}
	return n, nil
}

func evalBinary(lhsFormat, rhsFormat format, lhs, op, rhs string) (string, error) {
	a, err := lhsFormat.parse(lhs)
	if err != nil {
		return "", err
	}
	switch op {
	case "**":
		n, err := strconv.Atoi(rhs)
		if err != nil {
			return "", fmt.Errorf("%w: %q", fixbv.ErrInvalidExponent, rhs)
		}
		res, err := a.Pow(n)
		if err != nil {
			return "", err
		}
		return describe(res), nil
	case "<<", ">>":
		n, err := parseInt(rhs)
		if err != nil {
			return "", err
		}
		if op == "<<" {
			return describe(a.Lsh(n)), nil
		}
		return describe(a.Rsh(n)), nil
	}
	b, err := rhsFormat.parse(rhs)
	if err != nil {
		return "", err
	}
	var res *fixbv.Value
	switch op {
	case "+":
		res = a.Add(b)
	case "-":
		res = a.Sub(b)
	case "*":
		res = a.Mul(b)
	case "/", "//", "%":
		if b.IsZero() {
			return "", fmt.Errorf("division by zero")
		}
		if op == "%" {
			res = a.Mod(b)
		} else {
			res = a.Div(b)
		}
	case "&":
		res, err = a.And(b)
	case "|":
		res, err = a.Or(b)
	case "^":
		res, err = a.Xor(b)
	case "==":
		return strconv.FormatBool(a.Eq(b)), nil
	case "<":
		return strconv.FormatBool(a.Cmp(b) < 0), nil
	default:
		return "", fmt.Errorf("unknown operation %q", op)
	}
	if err != nil {
		return "", err
	}
	return describe(res), nil
}

func evalSlice(f format, value, i, j string) (string, error) {
	v, err := f.parse(value)
	if err != nil {
		return "", err
	}
	hi, err := parseInt(i)
	if err != nil {
		return "", err
	}
	lo, err := parseInt(j)
	if err != nil {
		return "", err
	}
	res, err := v.Slice(hi, lo)
	if err != nil {
		return "", err
	}
	return describe(res), nil
}

func evalComplex(f format, mode string, args []string) (string, error) {
	m, err := fixbv.ParseMulMode(mode)
	if err != nil {
		return "", err
	}
	parts := make([]*fixbv.Value, 0, 4)
	for _, s := range []string{args[0], args[1], args[3], args[4]} {
		v, err := f.parse(s)
		if err != nil {
			return "", err
		}
		parts = append(parts, v)
	}
	a, b := fixbv.ComplexOf(parts[0], parts[1], m), fixbv.ComplexOf(parts[2], parts[3], m)
	switch args[2] {
	case "+":
		return a.Add(b).String(), nil
	case "-":
		return a.Sub(b).String(), nil
	case "*":
		res, err := a.Mul(b)
		if err != nil {
			return "", err
		}
		return res.String(), nil
	}
	return "", fmt.Errorf("unknown operation %q", args[2])
}

// describe returns the value with its format and bits, most significant bit first.
func describe(v *fixbv.Value) string {
	bs := v.Bits()
	var bits strings.Builder
	for i := v.NrBits() - 1; i >= 0; i-- {
		if bs.Test(uint(i)) {
			bits.WriteByte('1')
		} else {
			bits.WriteByte('0')
		}
	}
	return fmt.Sprintf("%s raw=%s nrbits=%d frac=%d bits=%s", v, v.Raw(), v.NrBits(), v.Frac(), bits.String())
}
