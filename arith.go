// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixbv

import (
	"fmt"
	"math/big"

	mu "github.com/avdva/fixbv/internal/mathutil"
)

// fixed resolves o into a fixed-point value. A scalar is converted into the format of v:
// same width, fractional bits, bounds and policies.
func (v *Value) fixed(o Operand) *Value {
	switch o := o.(type) {
	case *Value:
		return o
	case Scalar:
		raw, err := o.scaled(v.frac, v.rounding)
		if err != nil {
			// the rounding mode is validated on construction, so only a non-finite scalar gets here.
			panic(err)
		}
		return newExact(raw, v.raw.NrBits, v.frac, v.raw.Min, v.raw.Max, v.rounding, v.saturate)
	}
	panic(fmt.Sprintf("fixbv: unexpected operand %T", o))
}

// Add returns v+o. The result has the policies of v. See AddAssign.
func (v *Value) Add(o Operand) *Value {
	return v.Copy().AddAssign(o)
}

// AddAssign sets v to v+o and returns v.
// The operands are aligned to the larger number of fractional bits first. The result has
// max(Frac) fractional bits and as many integer bits as the wider operand. There is no carry bit,
// overflows are resolved by the overflow policy.
func (v *Value) AddAssign(o Operand) *Value {
	return v.addSub(v.fixed(o), (*big.Int).Add)
}

// Sub returns v-o. See AddAssign.
func (v *Value) Sub(o Operand) *Value {
	return v.Copy().SubAssign(o)
}

// SubAssign sets v to v-o and returns v. Widths change as in AddAssign.
func (v *Value) SubAssign(o Operand) *Value {
	return v.addSub(v.fixed(o), (*big.Int).Sub)
}

func (v *Value) addSub(other *Value, op func(z, x, y *big.Int) *big.Int) *Value {
	// other may be v itself.
	ofrac, oval := other.frac, new(big.Int).Set(other.raw.Val)
	intBits := mu.MaxInt(v.raw.NrBits-v.frac, other.raw.NrBits-ofrac)
	if d := ofrac - v.frac; d > 0 {
		v.raw.Val.Lsh(v.raw.Val, uint(d))
		v.raw.ShiftBounds(d)
		v.frac = ofrac
	} else {
		oval.Lsh(oval, uint(-d))
	}
	op(v.raw.Val, v.raw.Val, oval)
	v.raw.NrBits = mu.MaxInt(intBits+v.frac, 0)
	v.handleBounds()
	return v
}

// Mul returns v*o. See MulAssign.
func (v *Value) Mul(o Operand) *Value {
	return v.Copy().MulAssign(o)
}

// MulAssign sets v to v*o and returns v.
// The product is exact: widths and fractional bits of the operands are summed.
// The bounds of v are scaled by the fractional bits of o, keeping their real value.
func (v *Value) MulAssign(o Operand) *Value {
	other := v.fixed(o)
	ofrac, onrbits := other.frac, other.raw.NrBits
	v.raw.Val.Mul(v.raw.Val, other.raw.Val)
	v.raw.NrBits += onrbits
	v.frac += ofrac
	v.raw.ShiftBounds(ofrac)
	v.handleBounds()
	return v
}

// Div returns v/o. See DivAssign.
func (v *Value) Div(o Operand) *Value {
	return v.Copy().DivAssign(o)
}

// DivAssign sets v to v/o and returns v.
// The raw value of v is scaled by 2^o.Frac() and divided by the raw value of o,
// rounding towards negative infinity, so v keeps its fractional bits.
// The width of v grows by o.Frac(). Panics if o is zero.
func (v *Value) DivAssign(o Operand) *Value {
	other := v.fixed(o)
	ofrac, divisor := other.frac, new(big.Int).Set(other.raw.Val)
	if divisor.Sign() == 0 {
		panic("fixbv: division by zero")
	}
	if ofrac >= 0 {
		v.raw.Val.Lsh(v.raw.Val, uint(ofrac))
	} else {
		divisor.Lsh(divisor, uint(-ofrac))
	}
	v.raw.ShiftBounds(ofrac)
	v.raw.NrBits = mu.MaxInt(v.raw.NrBits+ofrac, 0)
	q, _ := mu.FloorDivMod(v.raw.Val, divisor)
	v.raw.Val.Set(q)
	v.handleBounds()
	return v
}

// FloorDiv is the same as Div, both round towards negative infinity.
func (v *Value) FloorDiv(o Operand) *Value {
	return v.Div(o)
}

// FloorDivAssign is the same as DivAssign.
func (v *Value) FloorDivAssign(o Operand) *Value {
	return v.DivAssign(o)
}

// Mod returns v mod o. See ModAssign.
func (v *Value) Mod(o Operand) *Value {
	return v.Copy().ModAssign(o)
}

// ModAssign sets v to v mod o and returns v.
// A fixed o is rescaled to the fractional bits of v using the rounding mode of v.
// A scalar is scaled by 2^Frac() and truncated towards zero, it is not subject to the bounds of v.
// The remainder has the sign of o. The format of v does not change.
// Panics if the rescaled o is zero.
func (v *Value) ModAssign(o Operand) *Value {
	var (
		m   *big.Int
		err error
	)
	switch o := o.(type) {
	case *Value:
		m, err = v.rounding.shr(o.raw.Val, o.frac-v.frac)
	case Scalar:
		m, err = o.truncated(v.frac)
	default:
		panic(fmt.Sprintf("fixbv: unexpected operand %T", o))
	}
	if err != nil {
		panic(err)
	}
	if m.Sign() == 0 {
		panic("fixbv: modulo by zero")
	}
	_, r := mu.FloorDivMod(v.raw.Val, m)
	v.raw.Val.Set(r)
	v.handleBounds()
	return v
}

// Pow returns v^n. See PowAssign.
func (v *Value) Pow(n int) (*Value, error) {
	res := v.Copy()
	if err := res.PowAssign(n); err != nil {
		return nil, err
	}
	return res, nil
}

// PowAssign sets v to v^n. Like repeated multiplication, the width and the fractional bits
// are multiplied by n. Returns ErrInvalidExponent if n < 1.
func (v *Value) PowAssign(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidExponent, n)
	}
	v.raw.Val.Exp(v.raw.Val, big.NewInt(int64(n)), nil)
	v.raw.NrBits *= n
	v.raw.ShiftBounds(v.frac * (n - 1))
	v.frac *= n
	v.handleBounds()
	return nil
}

// Lsh returns v*2^n. See LshAssign.
func (v *Value) Lsh(n int) *Value {
	return v.Copy().LshAssign(n)
}

// LshAssign sets v to v*2^n and returns v.
// The binary point moves right while there are fractional bits. The rest of the shift
// moves the raw bits and widens the field. The bounds keep their real value.
// A negative n shifts right.
func (v *Value) LshAssign(n int) *Value {
	if n < 0 {
		return v.RshAssign(-n)
	}
	consumed := n
	if consumed > v.frac {
		consumed = mu.MaxInt(v.frac, 0)
	}
	v.frac -= consumed
	v.raw.ShiftBounds(-consumed)
	if excess := n - consumed; excess > 0 {
		v.raw.Val.Lsh(v.raw.Val, uint(excess))
		v.raw.NrBits += excess
	}
	v.handleBounds()
	return v
}

// Rsh returns v/2^n. See RshAssign.
func (v *Value) Rsh(n int) *Value {
	return v.Copy().RshAssign(n)
}

// RshAssign sets v to v/2^n and returns v. Only the binary point moves, so no bits are lost.
// A negative n shifts left.
func (v *Value) RshAssign(n int) *Value {
	if n < 0 {
		return v.LshAssign(-n)
	}
	v.frac += n
	v.raw.ShiftBounds(n)
	v.handleBounds()
	return v
}

// And always returns ErrNotSupported. Bit patterns of fixed-point values do not compose.
func (v *Value) And(o Operand) (*Value, error) {
	return nil, notSupported("and")
}

// AndAssign always returns ErrNotSupported.
func (v *Value) AndAssign(o Operand) error {
	return notSupported("and")
}

// Or always returns ErrNotSupported.
func (v *Value) Or(o Operand) (*Value, error) {
	return nil, notSupported("or")
}

// OrAssign always returns ErrNotSupported.
func (v *Value) OrAssign(o Operand) error {
	return notSupported("or")
}

// Xor always returns ErrNotSupported.
func (v *Value) Xor(o Operand) (*Value, error) {
	return nil, notSupported("xor")
}

// XorAssign always returns ErrNotSupported.
func (v *Value) XorAssign(o Operand) error {
	return notSupported("xor")
}

func notSupported(op string) error {
	return fmt.Errorf("%w: %s", ErrNotSupported, op)
}

// Neg returns -v in the same format.
func (v *Value) Neg() *Value {
	res := v.Copy()
	res.raw.Val.Neg(res.raw.Val)
	res.handleBounds()
	return res
}

// Abs returns |v|.
func (v *Value) Abs() *Value {
	if v.Sign() < 0 {
		return v.Neg()
	}
	return v.Copy()
}

// Not returns the two's-complement inversion of v, that is -v-2^-Frac().
// For unsigned values only NrBits bits are inverted.
func (v *Value) Not() *Value {
	res := v.Copy()
	res.raw.Val = v.raw.Invert()
	res.handleBounds()
	return res
}
