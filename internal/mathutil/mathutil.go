package mathutil

import (
	"math/big"
)

var (
	one = big.NewInt(1)
)

// Pow2 returns 2^n for n >= 0.
func Pow2(n int) *big.Int {
	return new(big.Int).Lsh(one, uint(n))
}

// Mask returns 2^n - 1, a mask with n low bits set. Mask(0) is zero.
func Mask(n int) *big.Int {
	if n <= 0 {
		return new(big.Int)
	}
	m := Pow2(n)
	return m.Sub(m, one)
}

// Shift returns x*2^n. For negative n, the result is floor(x/2^-n).
func Shift(x *big.Int, n int) *big.Int {
	result := new(big.Int).Set(x)
	ShiftInPlace(result, n)
	return result
}

// ShiftInPlace is like Shift, but stores the result in x.
func ShiftInPlace(x *big.Int, n int) {
	switch {
	case n > 0:
		x.Lsh(x, uint(n))
	case n < 0:
		// big.Int.Rsh is an arithmetic shift, so it floors for negatives.
		x.Rsh(x, uint(-n))
	}
}

// CeilShiftInPlace stores x*2^n in x. For negative n, the result is ceil(x/2^-n).
func CeilShiftInPlace(x *big.Int, n int) {
	if n >= 0 {
		ShiftInPlace(x, n)
		return
	}
	x.Neg(x)
	x.Rsh(x, uint(-n))
	x.Neg(x)
}

// FloorDivMod returns q = floor(x/y) and r = x - q*y.
// r has the sign of y. Panics if y == 0.
func FloorDivMod(x, y *big.Int) (q, r *big.Int) {
	q, r = new(big.Int).QuoRem(x, y, new(big.Int))
	if r.Sign() != 0 && r.Sign() != y.Sign() {
		q.Sub(q, one)
		r.Add(r, y)
	}
	return q, r
}

// ScaleRat returns r*2^n.
func ScaleRat(r *big.Rat, n int) *big.Rat {
	result := new(big.Rat).Set(r)
	switch {
	case n > 0:
		result.Mul(result, new(big.Rat).SetInt(Pow2(n)))
	case n < 0:
		result.Quo(result, new(big.Rat).SetInt(Pow2(-n)))
	}
	return result
}

// FloorRat returns floor(r).
func FloorRat(r *big.Rat) *big.Int {
	q, _ := FloorDivMod(r.Num(), r.Denom())
	return q
}

// CeilRat returns ceil(r).
func CeilRat(r *big.Rat) *big.Int {
	q, m := FloorDivMod(r.Num(), r.Denom())
	if m.Sign() != 0 {
		q.Add(q, one)
	}
	return q
}

// RoundHalfUpRat returns floor(r + 1/2).
func RoundHalfUpRat(r *big.Rat) *big.Int {
	// floor((2*num + den) / (2*den))
	num := new(big.Int).Lsh(r.Num(), 1)
	num.Add(num, r.Denom())
	den := new(big.Int).Lsh(r.Denom(), 1)
	q, _ := FloorDivMod(num, den)
	return q
}

// MaxInt returns the larger of a and b.
func MaxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
