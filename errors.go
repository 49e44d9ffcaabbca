package fixbv

import "errors"

var (
	// ErrInvalidWidth is returned when msb <= lsb, or a raw width is negative.
	ErrInvalidWidth = errors.New("invalid width")
	// ErrInvalidBounds is returned when a custom lower bound is not below the upper one.
	ErrInvalidBounds = errors.New("invalid bounds")
	// ErrInvalidValue is returned for NaNs and infinities.
	ErrInvalidValue = errors.New("invalid value")
	// ErrInvalidExponent is returned by Pow for exponents less than 1.
	ErrInvalidExponent = errors.New("only integer powers >= 1 are supported")
	// ErrInvalidRoundingMode is returned for an unknown rounding mode.
	ErrInvalidRoundingMode = errors.New("invalid rounding mode")
	// ErrInvalidRange is returned for slice bounds outside of the value.
	ErrInvalidRange = errors.New("invalid range")
	// ErrInvalidAssignment is returned when a slice is assigned a value of a wrong type or size.
	ErrInvalidAssignment = errors.New("invalid assignment")
	// ErrInvalidBitValue is returned when a bit is assigned something other than 0 or 1.
	ErrInvalidBitValue = errors.New("bit value must be 0 or 1")
	// ErrNotSupported is returned by bitwise and, or, xor.
	ErrNotSupported = errors.New("operation not supported for fixed-point values")
	// ErrInvalidMulMode is returned for an unknown complex multiplication mode.
	ErrInvalidMulMode = errors.New("invalid multiplication mode")
)
