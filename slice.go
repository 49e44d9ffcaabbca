package fixbv

import (
	"fmt"
	"math/big"

	"github.com/bits-and-blooms/bitset"

	"github.com/avdva/fixbv/internal/bitvec"
	mu "github.com/avdva/fixbv/internal/mathutil"
)

// Positions used by the slice operations are bit weights: position p is the bit worth 2^p.
// The field of v spans positions [Lsb(), Msb()).

func (v *Value) checkRange(i, j int) error {
	if j < v.Lsb() || i <= j || i > v.Msb() {
		return fmt.Errorf("%w: [%d:%d] requires %d <= j < i <= %d", ErrInvalidRange, i, j, v.Lsb(), v.Msb())
	}
	return nil
}

func (v *Value) checkPos(i int) error {
	if i < v.Lsb() || i >= v.Msb() {
		return fmt.Errorf("%w: [%d] requires %d <= i < %d", ErrInvalidRange, i, v.Lsb(), v.Msb())
	}
	return nil
}

// Slice returns the bit field [j, i) of v.
// The field keeps its weights: the result has i-j bits and -j fractional bits, and holds
// the bits as an unsigned number in the range [0, 2^(i-j)).
// Returns ErrInvalidRange unless Lsb() <= j < i <= Msb().
func (v *Value) Slice(i, j int) (*Value, error) {
	if err := v.checkRange(i, j); err != nil {
		return nil, err
	}
	width := i - j
	field := v.raw.Field(j+v.frac, width)
	min, max := bitvec.UnsignedBounds(width)
	return newExact(field, width, -j, min, max, v.rounding, v.saturate), nil
}

// SetSlice replaces the bit field [j, i) of v with bits of o.
// o must be either a *Value with exactly i-j bits, whose raw bits are used,
// or an integer scalar in the range [-2^(i-j-1), 2^(i-j)). Otherwise ErrInvalidAssignment is returned.
// The result is then saturated or wrapped.
func (v *Value) SetSlice(i, j int, o Operand) error {
	if err := v.checkRange(i, j); err != nil {
		return err
	}
	width := i - j
	var bits *big.Int
	switch o := o.(type) {
	case *Value:
		if o.raw.NrBits != width {
			return fmt.Errorf("%w: %d bits for a %d-bit slice", ErrInvalidAssignment, o.raw.NrBits, width)
		}
		bits = o.raw.Val
	case Scalar:
		if bits = o.integer(); bits == nil {
			return fmt.Errorf("%w: %s is not an integer", ErrInvalidAssignment, o)
		}
		lo := new(big.Int).Neg(mu.Pow2(width - 1))
		if bits.Cmp(lo) < 0 || bits.Cmp(mu.Pow2(width)) >= 0 {
			return fmt.Errorf("%w: %s does not fit %d bits", ErrInvalidAssignment, o, width)
		}
	default:
		return fmt.Errorf("%w: unexpected operand %T", ErrInvalidAssignment, o)
	}
	v.raw.SetField(j+v.frac, width, bits)
	v.handleBounds()
	return nil
}

// Bit returns the bit at position i.
// Returns ErrInvalidRange unless Lsb() <= i < Msb().
func (v *Value) Bit(i int) (bool, error) {
	if err := v.checkPos(i); err != nil {
		return false, err
	}
	return v.raw.Bit(i + v.frac), nil
}

// SetBit sets the bit at position i to b, which must be 0 or 1.
// The result is then saturated or wrapped.
func (v *Value) SetBit(i int, b int) error {
	if b != 0 && b != 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidBitValue, b)
	}
	if err := v.checkPos(i); err != nil {
		return err
	}
	v.raw.SetBit(i+v.frac, b == 1)
	v.handleBounds()
	return nil
}

// Bits returns the stored field as a bitset. Bit 0 of the set is the bit at position Lsb().
func (v *Value) Bits() *bitset.BitSet {
	return v.raw.Bits()
}
