// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixbv

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlice(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v    *Value
		i, j int
		res  result
		err  error
	}{
		{MustNew(Float(1.5), 4, -4), 4, -4, result{"1.5", 8, 4}, nil},
		{MustNew(Float(1.5), 4, -4), 1, -1, result{"1.5", 2, 1}, nil},
		{MustNew(Float(1.5), 4, -4), 0, -4, result{"0.5", 4, 4}, nil},
		{MustNew(Float(1.5), 4, -4), 4, 0, result{"1", 4, 0}, nil},
		{MustNew(Float(-1.5), 4, -4), 4, -4, result{"14.5", 8, 4}, nil},
		{MustNew(Float(-1.5), 4, -4), 4, 0, result{"14", 4, 0}, nil},
		{MustNew(Int(20), 8, 2), 8, 4, result{"16", 4, -4}, nil},

		{MustNew(Float(1.5), 4, -4), 5, 0, result{}, ErrInvalidRange},
		{MustNew(Float(1.5), 4, -4), 0, -5, result{}, ErrInvalidRange},
		{MustNew(Float(1.5), 4, -4), 1, 1, result{}, ErrInvalidRange},
		{MustNew(Float(1.5), 4, -4), 0, 1, result{}, ErrInvalidRange},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			res, err := test.v.Slice(test.i, test.j)
			if test.err != nil {
				a.ErrorIs(err, test.err)
				return
			}
			if a.NoError(err) {
				a.Equal(test.res, resultOf(res))
				a.Equal(0, res.Min().Sign(), "slices are unsigned")
			}
		})
	}
}

func TestBit(t *testing.T) {
	a := assert.New(t)
	v := MustNew(Float(1.5), 4, -4)
	for pos, exp := range map[int]bool{-4: false, -2: false, -1: true, 0: true, 1: false, 3: false} {
		b, err := v.Bit(pos)
		if a.NoError(err) {
			a.Equal(exp, b, "bit %d", pos)
		}
	}
	_, err := v.Bit(4)
	a.ErrorIs(err, ErrInvalidRange)
	_, err = v.Bit(-5)
	a.ErrorIs(err, ErrInvalidRange)

	a.NoError(v.SetBit(-2, 1))
	a.Equal("1.75", v.String())
	a.NoError(v.SetBit(0, 0))
	a.Equal("0.75", v.String())
	a.ErrorIs(v.SetBit(0, 2), ErrInvalidBitValue)
	a.ErrorIs(v.SetBit(4, 1), ErrInvalidRange)
	a.Equal("0.75", v.String())

	a.NoError(v.SetBit(3, 1))
	a.Equal("-7.25", v.String())

	bs := MustNew(Float(1.5), 4, -4).Bits()
	a.Equal(uint(2), bs.Count())
	a.True(bs.Test(3))
	a.True(bs.Test(4))
}

func TestSetSlice(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		i, j int
		o    Operand
		res  string
		err  error
	}{
		{4, 0, Int(3), "3.5", nil},
		{4, 0, Int(15), "-0.5", nil},
		{4, 0, Int(-8), "-7.5", nil},
		{0, -4, Int(0), "1", nil},
		{1, -1, MustNew(Int(0), 2, 0), "0", nil},
		{1, -1, MustNew(Int(1), 2, 0), "0.5", nil},

		{4, 0, Int(16), "", ErrInvalidAssignment},
		{4, 0, Int(-9), "", ErrInvalidAssignment},
		{4, 0, Float(1), "", ErrInvalidAssignment},
		{4, 0, MustNew(Int(1), 2, 0), "", ErrInvalidAssignment},
		{5, 0, Int(1), "", ErrInvalidRange},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v := MustNew(Float(1.5), 4, -4)
			err := v.SetSlice(test.i, test.j, test.o)
			if test.err != nil {
				a.ErrorIs(err, test.err)
				a.Equal("1.5", v.String())
				return
			}
			if a.NoError(err) {
				a.Equal(test.res, v.String())
				a.Equal(8, v.NrBits())
				a.Equal(4, v.Frac())
			}
		})
	}
}

func TestSetSliceSaturate(t *testing.T) {
	a := assert.New(t)
	v := MustNew(Float(1.5), 4, -4, WithSaturate(true), WithBounds(-2, 2))
	a.NoError(v.SetSlice(4, 0, Int(3)))
	a.Equal("1.9375", v.String())
}

func TestSliceRoundTrip(t *testing.T) {
	a := assert.New(t)
	v := MustNew(Float(-2.6875), 4, -4)
	for i := v.Lsb() + 1; i <= v.Msb(); i++ {
		for j := v.Lsb(); j < i; j++ {
			s, err := v.Slice(i, j)
			if !a.NoError(err) {
				continue
			}
			c := v.Copy()
			a.NoError(c.SetSlice(i, j, Int(0)))
			a.NoError(c.SetSlice(i, j, s))
			a.True(c.Eq(v), "[%d:%d]", i, j)
		}
	}
}
