package fixbv

import (
	"fmt"
	"math"
	"math/big"
	"reflect"

	"golang.org/x/exp/constraints"

	mu "github.com/avdva/fixbv/internal/mathutil"
)

// Operand is an argument of an arithmetic operation on a Value.
// It is either a *Value (a fixed operand) or a Scalar (a plain number).
type Operand interface {
	isOperand()
}

// ComplexOperand is an argument of an arithmetic operation on a Complex.
// It is a *Complex, a *Value, or a Scalar.
type ComplexOperand interface {
	isComplexOperand()
}

func (*Value) isOperand()        {}
func (*Value) isComplexOperand() {}
func (Scalar) isOperand()        {}
func (Scalar) isComplexOperand() {}

// Scalar is a plain number: an integer, a rational, or a float.
// A Scalar operand is converted into the format of the value it is combined with.
// The zero Scalar is 0.
type Scalar struct {
	r     *big.Rat // nil for non-finite floats.
	f     float64
	float bool
}

// Int returns an integer scalar.
func Int(i int64) Scalar {
	return Scalar{r: new(big.Rat).SetInt64(i)}
}

// BigInt returns an integer scalar. i is copied.
func BigInt(i *big.Int) Scalar {
	return Scalar{r: new(big.Rat).SetInt(i)}
}

// Rat returns a rational scalar. r is copied.
func Rat(r *big.Rat) Scalar {
	return Scalar{r: new(big.Rat).Set(r)}
}

// Float returns a float scalar. The conversion is exact.
// Arithmetic with a NaN or an infinite scalar panics, constructors return ErrInvalidValue.
func Float(f float64) Scalar {
	s := Scalar{f: f, float: true}
	if !math.IsNaN(f) && !math.IsInf(f, 0) {
		s.r = new(big.Rat).SetFloat64(f)
	}
	return s
}

// Num returns a scalar for any built-in integer or float type.
func Num[T constraints.Integer | constraints.Float](v T) Scalar {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return BigInt(new(big.Int).SetUint64(rv.Uint()))
	default:
		return Int(rv.Int())
	}
}

// IsInt returns true if s was created from an integer.
func (s Scalar) IsInt() bool {
	return !s.float && s.rat().IsInt()
}

// String returns a string representation of s.
func (s Scalar) String() string {
	if s.float {
		return fmt.Sprint(s.f)
	}
	return s.rat().RatString()
}

func (s Scalar) finite() bool {
	return !s.float || s.r != nil
}

func (s Scalar) rat() *big.Rat {
	if s.r == nil {
		return new(big.Rat)
	}
	return s.r
}

func (s Scalar) checkFinite() error {
	if !s.finite() {
		return fmt.Errorf("%w: %v", ErrInvalidValue, s.f)
	}
	return nil
}

// scaled returns s*2^frac rounded to an integer.
func (s Scalar) scaled(frac int, rounding Rounding) (*big.Int, error) {
	if err := s.checkFinite(); err != nil {
		return nil, err
	}
	return rounding.toInt(mu.ScaleRat(s.rat(), frac))
}

// truncated returns s*2^frac rounded towards zero.
func (s Scalar) truncated(frac int) (*big.Int, error) {
	if err := s.checkFinite(); err != nil {
		return nil, err
	}
	r := mu.ScaleRat(s.rat(), frac)
	return new(big.Int).Quo(r.Num(), r.Denom()), nil
}

// integer returns the integer value of s, or nil if s is not an integer.
func (s Scalar) integer() *big.Int {
	if !s.IsInt() {
		return nil
	}
	return new(big.Int).Set(s.rat().Num())
}
