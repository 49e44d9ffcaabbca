// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package fixbv implements bit-accurate binary fixed-point numbers.
//
// A Value stores a real number as an integer scaled by 2^frac, together with
// its total bit width, its bounds, an overflow policy (saturate or wrap) and a
// rounding mode. Arithmetic grows widths the way hardware adders, multipliers
// and shifters do, so values can be used to model registers and datapaths.
//
// Values are mutable. Methods with the Assign suffix modify the receiver,
// all other operations return a new value and leave their operands intact.
// A Value must not be used concurrently while it is being modified.
package fixbv

import (
	"fmt"
	"math"
	"math/big"

	"github.com/avdva/fixbv/internal/bitvec"
	mu "github.com/avdva/fixbv/internal/mathutil"
)

// Value is a binary fixed-point number.
//
// The represented number is Raw() / 2^Frac(). The stored field is NrBits() wide,
// its most significant bit has weight 2^(Msb()-1), the least significant one has weight 2^Lsb().
// Frac may be negative, which puts the binary point to the right of the field.
//
// The range of a value is [Min, Max). By default it is the symmetric two's-complement range
// of the width: a value with 4 bits and no fractional bits holds numbers from -8 to 7.
type Value struct {
	raw      bitvec.Vector
	frac     int
	rounding Rounding
	saturate bool
}

type options struct {
	min, max       *float64
	rawMin, rawMax *big.Int
	saturate       *bool
	rounding       *Rounding
}

// Option configures a value on construction.
type Option func(*options)

// WithBounds sets a custom range [min, max). The bounds are scaled into the format of the value,
// rounding down.
func WithBounds(min, max float64) Option {
	return func(o *options) {
		o.min, o.max = &min, &max
	}
}

// WithRawBounds sets a custom range [min, max) given in raw (scaled) units.
// It takes precedence over WithBounds.
func WithRawBounds(min, max *big.Int) Option {
	return func(o *options) {
		o.rawMin, o.rawMax = new(big.Int).Set(min), new(big.Int).Set(max)
	}
}

// WithSaturate sets the overflow policy. Saturating values clamp out-of-range results,
// others wrap them modulo 2^NrBits.
func WithSaturate(saturate bool) Option {
	return func(o *options) {
		o.saturate = &saturate
	}
}

// WithRounding sets the rounding mode used when precision is discarded.
func WithRounding(r Rounding) Option {
	return func(o *options) {
		o.rounding = &r
	}
}

func makeOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) policy(rounding Rounding, saturate bool) (Rounding, bool, error) {
	if o.rounding != nil {
		rounding = *o.rounding
	}
	if o.saturate != nil {
		saturate = *o.saturate
	}
	return rounding, saturate, rounding.check()
}

// bounds returns the scaled bounds from the options, or nils if none were given.
func (o *options) bounds(frac int) (min, max *big.Int, err error) {
	switch {
	case o.rawMin != nil:
		min, max = o.rawMin, o.rawMax
	case o.min != nil:
		lo, hi := Float(*o.min), Float(*o.max)
		if min, err = lo.scaled(frac, Floor); err != nil {
			return nil, nil, err
		}
		if max, err = hi.scaled(frac, Floor); err != nil {
			return nil, nil, err
		}
	default:
		return nil, nil, nil
	}
	if min.Cmp(max) >= 0 {
		return nil, nil, fmt.Errorf("%w: [%v, %v)", ErrInvalidBounds, min, max)
	}
	return min, max, nil
}

// New returns a value for the number v in the format given by the bit positions msb and lsb.
// The value has msb-lsb bits, -lsb of them fractional. v is scaled by 2^-lsb and rounded
// with the configured rounding mode, Floor by default.
// Returns ErrInvalidWidth if msb <= lsb.
func New(v Scalar, msb, lsb int, opts ...Option) (*Value, error) {
	if msb <= lsb {
		return nil, fmt.Errorf("%w: msb %d <= lsb %d", ErrInvalidWidth, msb, lsb)
	}
	o := makeOptions(opts)
	rounding, saturate, err := o.policy(Floor, false)
	if err != nil {
		return nil, err
	}
	frac, nrbits := -lsb, msb-lsb
	min, max, err := o.bounds(frac)
	if err != nil {
		return nil, err
	}
	raw, err := v.scaled(frac, rounding)
	if err != nil {
		return nil, err
	}
	return newExact(raw, nrbits, frac, min, max, rounding, saturate), nil
}

// MustNew is like New, but panics on errors.
func MustNew(v Scalar, msb, lsb int, opts ...Option) *Value {
	res, err := New(v, msb, lsb, opts...)
	if err != nil {
		panic(err)
	}
	return res
}

// FromFloat64 returns a value for f. See New.
func FromFloat64(f float64, msb, lsb int, opts ...Option) (*Value, error) {
	return New(Float(f), msb, lsb, opts...)
}

// FromInt64 returns a value for i. See New.
func FromInt64(i int64, msb, lsb int, opts ...Option) (*Value, error) {
	return New(Int(i), msb, lsb, opts...)
}

// FromRaw returns a value with given raw (scaled) integer, width and fractional bits.
// Nothing is rescaled. Without WithBounds or WithRawBounds the default range is used.
// Returns ErrInvalidWidth if nrbits is negative.
func FromRaw(raw *big.Int, nrbits, frac int, opts ...Option) (*Value, error) {
	if nrbits < 0 {
		return nil, fmt.Errorf("%w: nrbits %d < 0", ErrInvalidWidth, nrbits)
	}
	o := makeOptions(opts)
	rounding, saturate, err := o.policy(Floor, false)
	if err != nil {
		return nil, err
	}
	min, max, err := o.bounds(frac)
	if err != nil {
		return nil, err
	}
	return newExact(raw, nrbits, frac, min, max, rounding, saturate), nil
}

// Reinterpret returns a new value that adopts the raw integer, bounds and widths of src verbatim.
// The rounding mode and the overflow policy are copied from src, unless overridden by opts.
// Bound options are ignored.
func Reinterpret(src *Value, opts ...Option) (*Value, error) {
	rounding, saturate, err := makeOptions(opts).policy(src.rounding, src.saturate)
	if err != nil {
		return nil, err
	}
	return newExact(src.raw.Val, src.raw.NrBits, src.frac, src.raw.Min, src.raw.Max, rounding, saturate), nil
}

// newExact builds a value from its fields without rescaling. Fields are copied.
func newExact(raw *big.Int, nrbits, frac int, min, max *big.Int, rounding Rounding, saturate bool) *Value {
	res := &Value{
		raw:      bitvec.New(raw, nrbits, min, max),
		frac:     frac,
		rounding: rounding,
		saturate: saturate,
	}
	res.handleBounds()
	return res
}

// Copy returns a deep copy of v.
func (v *Value) Copy() *Value {
	return &Value{
		raw:      v.raw.Clone(),
		frac:     v.frac,
		rounding: v.rounding,
		saturate: v.saturate,
	}
}

func (v *Value) handleBounds() {
	v.raw.HandleBounds(v.saturate)
}

// Raw returns the scaled integer, that is v * 2^Frac().
func (v *Value) Raw() *big.Int {
	return new(big.Int).Set(v.raw.Val)
}

// NrBits returns the total number of bits.
func (v *Value) NrBits() int {
	return v.raw.NrBits
}

// Frac returns the number of fractional bits.
func (v *Value) Frac() int {
	return v.frac
}

// Msb returns the position right above the most significant bit.
func (v *Value) Msb() int {
	return v.raw.NrBits - v.frac
}

// Lsb returns the position of the least significant bit.
func (v *Value) Lsb() int {
	return -v.frac
}

// Min returns the lower bound of v, inclusive.
func (v *Value) Min() *big.Rat {
	return ratFromRaw(v.raw.Min, v.frac)
}

// Max returns the upper bound of v, exclusive.
func (v *Value) Max() *big.Rat {
	return ratFromRaw(v.raw.Max, v.frac)
}

// Rounding returns the rounding mode of v.
func (v *Value) Rounding() Rounding {
	return v.rounding
}

// SetRounding sets the rounding mode.
func (v *Value) SetRounding(r Rounding) error {
	if err := r.check(); err != nil {
		return err
	}
	v.rounding = r
	return nil
}

// Saturate returns true if v clamps out-of-range results.
func (v *Value) Saturate() bool {
	return v.saturate
}

// SetSaturate sets the overflow policy. It does not change the current value.
func (v *Value) SetSaturate(saturate bool) {
	v.saturate = saturate
}

// Int returns the integer part of v, rounded towards negative infinity.
func (v *Value) Int() *big.Int {
	return mu.Shift(v.raw.Val, -v.frac)
}

// Int64 returns the integer part of v as an int64.
// If it does not fit, the result is undefined.
func (v *Value) Int64() int64 {
	return v.Int().Int64()
}

// Rat returns the exact value of v.
func (v *Value) Rat() *big.Rat {
	return ratFromRaw(v.raw.Val, v.frac)
}

// Float64 returns the nearest float64 value for v.
func (v *Value) Float64() float64 {
	f, _ := v.Rat().Float64()
	return f
}

// Sign returns -1 if v < 0, 0 if v == 0, 1 if v > 0.
func (v *Value) Sign() int {
	return v.raw.Val.Sign()
}

// IsZero returns true if v == 0.
func (v *Value) IsZero() bool {
	return v.Sign() == 0
}

// Cmp compares v and o exactly.
// Returns -1 if v < o, 0 if v == o, 1 if v > o.
// Comparing with a NaN panics.
func (v *Value) Cmp(o Operand) int {
	switch o := o.(type) {
	case *Value:
		a, b := v.raw.Val, o.raw.Val
		if d := v.frac - o.frac; d > 0 {
			b = mu.Shift(b, d)
		} else if d < 0 {
			a = mu.Shift(a, -d)
		}
		return a.Cmp(b)
	case Scalar:
		if !o.finite() {
			switch {
			case math.IsInf(o.f, 1):
				return -1
			case math.IsInf(o.f, -1):
				return 1
			}
			panic("fixbv: comparison with NaN")
		}
		return v.Rat().Cmp(o.rat())
	}
	panic(fmt.Sprintf("fixbv: unexpected operand %T", o))
}

// Eq returns true if v and o represent the same number, regardless of their formats.
func (v *Value) Eq(o Operand) bool {
	if s, ok := o.(Scalar); ok && s.float && math.IsNaN(s.f) {
		return false
	}
	return v.Cmp(o) == 0
}

func ratFromRaw(raw *big.Int, frac int) *big.Rat {
	return mu.ScaleRat(new(big.Rat).SetInt(raw), -frac)
}
