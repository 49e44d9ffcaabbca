package fixbv

import (
	"fmt"
	"strings"
)

// MulMode selects how two complex values are multiplied.
type MulMode int

const (
	// MulSimple uses four real multiplications.
	MulSimple MulMode = iota
	// MulGauss uses three real multiplications and more additions.
	// Intermediate sums do not grow, so they may overflow where MulSimple would not.
	MulGauss
)

var mulModeNames = [...]string{
	MulSimple: "simple",
	MulGauss:  "gauss",
}

// ParseMulMode returns a multiplication mode by its name.
func ParseMulMode(s string) (MulMode, error) {
	for m, name := range mulModeNames {
		if name == s {
			return MulMode(m), nil
		}
	}
	return MulSimple, fmt.Errorf("%w %q", ErrInvalidMulMode, s)
}

// String returns the name of the mode.
func (m MulMode) String() string {
	if m < MulSimple || m > MulGauss {
		return fmt.Sprintf("MulMode(%d)", int(m))
	}
	return mulModeNames[m]
}

// Complex is a pair of fixed-point values.
// Every operation is performed on both parts independently, following the rules of Value,
// so the formats of the parts may diverge.
type Complex struct {
	Re, Im *Value
	Mode   MulMode
}

func (*Complex) isComplexOperand() {}

// NewComplex returns a complex value with both parts in the format given by msb and lsb.
func NewComplex(re, im Scalar, msb, lsb int, mode MulMode, opts ...Option) (*Complex, error) {
	r, err := New(re, msb, lsb, opts...)
	if err != nil {
		return nil, err
	}
	i, err := New(im, msb, lsb, opts...)
	if err != nil {
		return nil, err
	}
	return &Complex{Re: r, Im: i, Mode: mode}, nil
}

// ComplexOf returns a complex value made of re and im. The values are not copied,
// the caller must not use them afterwards.
func ComplexOf(re, im *Value, mode MulMode) *Complex {
	return &Complex{Re: re, Im: im, Mode: mode}
}

// Copy returns a deep copy of c.
func (c *Complex) Copy() *Complex {
	return &Complex{Re: c.Re.Copy(), Im: c.Im.Copy(), Mode: c.Mode}
}

// Add returns c+o. See AddAssign.
func (c *Complex) Add(o ComplexOperand) *Complex {
	return c.Copy().AddAssign(o)
}

// AddAssign sets c to c+o and returns c.
// A complex o is added part by part, a real one is added to the real part only.
func (c *Complex) AddAssign(o ComplexOperand) *Complex {
	switch o := o.(type) {
	case *Complex:
		c.Re.AddAssign(o.Re)
		c.Im.AddAssign(o.Im)
	case Operand:
		c.Re.AddAssign(o)
	default:
		panic(unexpectedOperand(o))
	}
	return c
}

// Sub returns c-o. See SubAssign.
func (c *Complex) Sub(o ComplexOperand) *Complex {
	return c.Copy().SubAssign(o)
}

// SubAssign sets c to c-o and returns c.
// A complex o is subtracted part by part, a real one is subtracted from the real part only.
func (c *Complex) SubAssign(o ComplexOperand) *Complex {
	switch o := o.(type) {
	case *Complex:
		c.Re.SubAssign(o.Re)
		c.Im.SubAssign(o.Im)
	case Operand:
		c.Re.SubAssign(o)
	default:
		panic(unexpectedOperand(o))
	}
	return c
}

// Mul returns c*o. See MulAssign.
func (c *Complex) Mul(o ComplexOperand) (*Complex, error) {
	res := c.Copy()
	if err := res.MulAssign(o); err != nil {
		return nil, err
	}
	return res, nil
}

// MulAssign sets c to c*o. A real o scales both parts.
// For a complex o the mode of c selects the algorithm.
// Returns ErrInvalidMulMode for an unknown mode.
func (c *Complex) MulAssign(o ComplexOperand) error {
	var re, im *Value
	switch o := o.(type) {
	case *Complex:
		switch c.Mode {
		case MulSimple:
			re, im = mulSimple(c, o)
		case MulGauss:
			re, im = mulGauss(c, o)
		default:
			return fmt.Errorf("%w %q", ErrInvalidMulMode, c.Mode)
		}
	case Operand:
		re, im = c.Re.Mul(o), c.Im.Mul(o)
	default:
		panic(unexpectedOperand(o))
	}
	c.Re, c.Im = re, im
	return nil
}

func unexpectedOperand(o ComplexOperand) string {
	return fmt.Sprintf("fixbv: unexpected operand %T", o)
}

// (a+bi)(c+di) = (ac-bd) + (ad+bc)i
func mulSimple(x, y *Complex) (re, im *Value) {
	re = x.Re.Mul(y.Re).SubAssign(x.Im.Mul(y.Im))
	im = x.Re.Mul(y.Im).AddAssign(x.Im.Mul(y.Re))
	return re, im
}

// k1 = c(a+b), k2 = a(d-c), k3 = b(c+d); re = k1-k3, im = k1+k2
func mulGauss(x, y *Complex) (re, im *Value) {
	k1 := x.Re.Add(x.Im).MulAssign(y.Re)
	k2 := y.Im.Sub(y.Re).MulAssign(x.Re)
	k3 := y.Re.Add(y.Im).MulAssign(x.Im)
	return k1.Sub(k3), k1.AddAssign(k2)
}

// Neg returns -c.
func (c *Complex) Neg() *Complex {
	return &Complex{Re: c.Re.Neg(), Im: c.Im.Neg(), Mode: c.Mode}
}

// Conj returns the complex conjugate of c.
func (c *Complex) Conj() *Complex {
	return &Complex{Re: c.Re.Copy(), Im: c.Im.Neg(), Mode: c.Mode}
}

// Eq returns true if both parts of c and o represent the same numbers.
func (c *Complex) Eq(o *Complex) bool {
	return c.Re.Eq(o.Re) && c.Im.Eq(o.Im)
}

// String returns c in the form (re+imj).
func (c *Complex) String() string {
	var builder strings.Builder
	builder.WriteRune('(')
	builder.WriteString(c.Re.String())
	if c.Im.Sign() >= 0 {
		builder.WriteRune('+')
	}
	builder.WriteString(c.Im.String())
	builder.WriteString("j)")
	return builder.String()
}
