package fixbv

import (
	"fmt"
	"math/big"

	mu "github.com/avdva/fixbv/internal/mathutil"
)

// Rounding defines how precision is discarded when a value is narrowed.
type Rounding int

const (
	// Floor truncates towards negative infinity.
	Floor Rounding = iota
	// Ceil rounds towards positive infinity.
	Ceil
	// Nearest rounds to the nearest value, halves are rounded up.
	Nearest
)

var roundingNames = [...]string{
	Floor:   "floor",
	Ceil:    "ceil",
	Nearest: "nearest",
}

// ParseRounding returns a rounding mode by its name.
func ParseRounding(s string) (Rounding, error) {
	for r, name := range roundingNames {
		if name == s {
			return Rounding(r), nil
		}
	}
	return Floor, fmt.Errorf("%w %q", ErrInvalidRoundingMode, s)
}

// String returns the name of the rounding mode.
func (r Rounding) String() string {
	if !r.valid() {
		return fmt.Sprintf("Rounding(%d)", int(r))
	}
	return roundingNames[r]
}

func (r Rounding) valid() bool {
	return r >= Floor && r <= Nearest
}

func (r Rounding) check() error {
	if !r.valid() {
		return fmt.Errorf("%w %q", ErrInvalidRoundingMode, r.String())
	}
	return nil
}

// shr returns x/2^n rounded according to r.
// For n <= 0 the result is exact.
func (r Rounding) shr(x *big.Int, n int) (*big.Int, error) {
	if n <= 0 {
		return mu.Shift(x, -n), nil
	}
	result := new(big.Int).Set(x)
	switch r {
	case Floor:
	case Ceil:
		result.Add(result, mu.Mask(n))
	case Nearest:
		result.Add(result, mu.Pow2(n-1))
	default:
		return nil, r.check()
	}
	return result.Rsh(result, uint(n)), nil
}

// toInt rounds x to an integer according to r.
func (r Rounding) toInt(x *big.Rat) (*big.Int, error) {
	switch r {
	case Floor:
		return mu.FloorRat(x), nil
	case Ceil:
		return mu.CeilRat(x), nil
	case Nearest:
		return mu.RoundHalfUpRat(x), nil
	default:
		return nil, r.check()
	}
}
