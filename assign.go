package fixbv

import (
	"fmt"
	"math/big"
)

// Assign stores o into v, keeping the format of v.
// If o has more fractional bits than v, the extra bits are dropped using the rounding mode of v:
// Floor truncates, Ceil rounds up, Nearest rounds halves up. A source with fewer fractional bits
// is shifted in exactly. Integer scalars are shifted in, other scalars are rounded against
// o*2^Frac(). The result is then saturated or wrapped.
// Returns ErrInvalidRoundingMode if the rounding mode of v is unknown.
func (v *Value) Assign(o Operand) error {
	var (
		raw *big.Int
		err error
	)
	switch o := o.(type) {
	case *Value:
		raw, err = v.rounding.shr(o.raw.Val, o.frac-v.frac)
	case Scalar:
		raw, err = o.scaled(v.frac, v.rounding)
	default:
		return fmt.Errorf("%w: unexpected operand %T", ErrInvalidAssignment, o)
	}
	if err != nil {
		return err
	}
	v.raw.Val.Set(raw)
	v.handleBounds()
	return nil
}
