package fixbv

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

var (
	five = big.NewInt(5)
)

// FromDecimal returns a value for d. See New.
func FromDecimal(d decimal.Decimal, msb, lsb int, opts ...Option) (*Value, error) {
	return New(Rat(d.Rat()), msb, lsb, opts...)
}

// Decimal returns the exact decimal value of v.
// Any binary fraction has a finite decimal representation: x/2^f == x*5^f/10^f.
func (v *Value) Decimal() decimal.Decimal {
	if v.frac <= 0 {
		return decimal.NewFromBigInt(v.Int(), 0)
	}
	coef := new(big.Int).Exp(five, big.NewInt(int64(v.frac)), nil)
	coef.Mul(coef, v.raw.Val)
	return decimal.NewFromBigInt(coef, int32(-v.frac))
}

// String returns the exact decimal representation of v.
func (v *Value) String() string {
	return v.Decimal().String()
}

// GoString returns debug string representation.
func (v *Value) GoString() string {
	return v.String() + fmt.Sprintf(" {raw: %v, nrbits: %d, frac: %d}", v.raw.Val, v.raw.NrBits, v.frac)
}
