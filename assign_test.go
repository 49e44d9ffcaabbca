// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixbv

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssignRounding(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		src                  Operand
		floor, ceil, nearest int64
	}{
		{mustFromRaw(1, 16, 8), 0, 1, 0},
		{mustFromRaw(8, 16, 8), 0, 1, 1},
		{mustFromRaw(7, 16, 8), 0, 1, 0},
		{mustFromRaw(16, 16, 8), 1, 1, 1},
		{mustFromRaw(-1, 16, 8), -1, 0, 0},
		{mustFromRaw(-8, 16, 8), -1, 0, 0},
		{mustFromRaw(-9, 16, 8), -1, 0, -1},
		{Float(0.03), 0, 1, 0},
		{Float(-0.03), -1, 0, 0},
		{Rat(big.NewRat(1, 32)), 0, 1, 1},
		{Int(3), 48, 48, 48},
		{MustNew(Int(3), 4, 0), 48, 48, 48},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			for r, exp := range map[Rounding]int64{Floor: test.floor, Ceil: test.ceil, Nearest: test.nearest} {
				v := MustNew(Int(0), 4, -4, WithRounding(r))
				if a.NoError(v.Assign(test.src), r.String()) {
					a.Equal(exp, v.Raw().Int64(), r.String())
					a.Equal(8, v.NrBits())
					a.Equal(4, v.Frac())
				}
			}
		})
	}
}

func TestAssignOverflow(t *testing.T) {
	a := assert.New(t)
	v := MustNew(Int(0), 4, 0)
	a.NoError(v.Assign(Int(10)))
	a.Equal("-6", v.String())

	v = MustNew(Int(0), 4, 0, WithSaturate(true))
	a.NoError(v.Assign(Int(10)))
	a.Equal("7", v.String())
	a.NoError(v.Assign(MustNew(Float(-100.5), 10, -1)))
	a.Equal("-8", v.String())
}

func TestAssignErrors(t *testing.T) {
	a := assert.New(t)
	v := MustNew(Float(1.5), 4, -4)
	a.ErrorIs(v.Assign(Float(math.NaN())), ErrInvalidValue)
	a.ErrorIs(v.Assign(Float(math.Inf(1))), ErrInvalidValue)
	a.Equal("1.5", v.String())

	v.rounding = Rounding(7)
	a.ErrorIs(v.Assign(mustFromRaw(1, 16, 8)), ErrInvalidRoundingMode)
	a.ErrorIs(v.Assign(Float(0.1)), ErrInvalidRoundingMode)
	a.Equal("1.5", v.String())
}

func mustFromRaw(raw int64, nrbits, frac int) *Value {
	v, err := FromRaw(big.NewInt(raw), nrbits, frac)
	if err != nil {
		panic(err)
	}
	return v
}
