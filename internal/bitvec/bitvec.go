// Package bitvec implements a fixed-width two's-complement integer with bounds.
// It is the raw storage under fixed-point values: it knows nothing about
// binary points, only about widths, bounds and bits.
package bitvec

import (
	"math/big"

	"github.com/bits-and-blooms/bitset"

	mu "github.com/avdva/fixbv/internal/mathutil"
)

// Vector is a raw integer with a bit width and a [Min, Max) range.
// Max is exclusive, so the default range for n bits is [-2^(n-1), 2^(n-1)).
type Vector struct {
	Val    *big.Int
	Min    *big.Int
	Max    *big.Int
	NrBits int
}

// DefaultBounds returns the symmetric two's-complement range for nrbits.
// A zero-width vector can only hold zero.
func DefaultBounds(nrbits int) (min, max *big.Int) {
	if nrbits <= 0 {
		return new(big.Int), big.NewInt(1)
	}
	max = mu.Pow2(nrbits - 1)
	return new(big.Int).Neg(max), max
}

// UnsignedBounds returns [0, 2^nrbits).
func UnsignedBounds(nrbits int) (min, max *big.Int) {
	if nrbits <= 0 {
		return new(big.Int), big.NewInt(1)
	}
	return new(big.Int), mu.Pow2(nrbits)
}

// New returns a vector with given fields. Nil bounds are replaced with the default ones.
// The fields are copied.
func New(val *big.Int, nrbits int, min, max *big.Int) Vector {
	if nrbits < 0 {
		nrbits = 0
	}
	v := Vector{
		Val:    new(big.Int).Set(val),
		NrBits: nrbits,
	}
	if min == nil || max == nil {
		v.Min, v.Max = DefaultBounds(nrbits)
	} else {
		v.Min, v.Max = new(big.Int).Set(min), new(big.Int).Set(max)
	}
	return v
}

// Clone returns a deep copy of v.
func (v Vector) Clone() Vector {
	return Vector{
		Val:    new(big.Int).Set(v.Val),
		Min:    new(big.Int).Set(v.Min),
		Max:    new(big.Int).Set(v.Max),
		NrBits: v.NrBits,
	}
}

// Unsigned returns true if the lower bound is not negative.
func (v Vector) Unsigned() bool {
	return v.Min.Sign() >= 0
}

// HandleBounds brings Val into the representable range.
// With saturate, Val is clamped to [Min, Max-1]. Otherwise Val wraps modulo 2^NrBits
// into [-2^(NrBits-1), 2^(NrBits-1)), or into [0, 2^NrBits) for unsigned vectors.
func (v *Vector) HandleBounds(saturate bool) {
	if saturate {
		v.clamp()
		return
	}
	v.wrap()
}

func (v *Vector) clamp() {
	if v.NrBits <= 0 {
		v.Val.SetInt64(0)
		return
	}
	if v.Val.Cmp(v.Max) >= 0 {
		v.Val.Sub(v.Max, big.NewInt(1))
	}
	if v.Val.Cmp(v.Min) < 0 {
		v.Val.Set(v.Min)
	}
}

func (v *Vector) wrap() {
	if v.NrBits <= 0 {
		v.Val.SetInt64(0)
		return
	}
	base := new(big.Int)
	if !v.Unsigned() {
		base.Neg(mu.Pow2(v.NrBits - 1))
	}
	// ((val - base) mod 2^n) + base. Masking is a modulo for any sign.
	v.Val.Sub(v.Val, base)
	v.Val.And(v.Val, mu.Mask(v.NrBits))
	v.Val.Add(v.Val, base)
}

// ShiftBounds multiplies both bounds by 2^n. For negative n both bounds are rounded up:
// Min becomes the smallest integer not below the real lower bound, and Max stays an exclusive limit.
func (v *Vector) ShiftBounds(n int) {
	mu.CeilShiftInPlace(v.Min, n)
	mu.CeilShiftInPlace(v.Max, n)
}

// Field returns width bits of Val starting at bit lo, as an unsigned integer.
func (v Vector) Field(lo, width int) *big.Int {
	f := new(big.Int).Rsh(v.Val, uint(lo))
	return f.And(f, mu.Mask(width))
}

// SetField replaces width bits of Val starting at bit lo with the low bits of bits.
func (v *Vector) SetField(lo, width int, bits *big.Int) {
	mask := mu.Mask(width)
	mask.Lsh(mask, uint(lo))
	f := new(big.Int).Lsh(bits, uint(lo))
	f.And(f, mask)
	v.Val.AndNot(v.Val, mask)
	v.Val.Or(v.Val, f)
}

// Bit returns the i-th bit of Val in two's-complement representation.
func (v Vector) Bit(i int) bool {
	// big.Int.Bit does not see the sign, so shift instead.
	return new(big.Int).Rsh(v.Val, uint(i)).Bit(0) == 1
}

// SetBit sets the i-th bit of Val to b.
func (v *Vector) SetBit(i int, b bool) {
	if b {
		v.SetField(i, 1, big.NewInt(1))
	} else {
		v.SetField(i, 1, new(big.Int))
	}
}

// Bits returns the NrBits low bits of Val as a bitset, bit 0 being the least significant.
func (v Vector) Bits() *bitset.BitSet {
	bs := bitset.New(uint(v.NrBits))
	field := v.Field(0, v.NrBits)
	for i := 0; i < v.NrBits; i++ {
		if field.Bit(i) == 1 {
			bs.Set(uint(i))
		}
	}
	return bs
}

// Invert returns the bitwise complement of Val. For unsigned vectors only NrBits bits are kept.
func (v Vector) Invert() *big.Int {
	inv := new(big.Int).Not(v.Val)
	if v.NrBits > 0 && v.Unsigned() {
		inv.And(inv, mu.Mask(v.NrBits))
	}
	return inv
}
