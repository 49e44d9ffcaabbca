package main

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avdva/fixbv"
)

var (
	byte8  = format{msb: 8, lsb: 0, rounding: fixbv.Floor}
	fixed4 = format{msb: 4, lsb: -4, rounding: fixbv.Floor}
)

func TestEvalBinary(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f            format
		lhs, op, rhs string
		res          string
		err          error
	}{
		{byte8, "3", "+", "4", "7 raw=7 nrbits=8 frac=0 bits=00000111", nil},
		{byte8, "3", "-", "4", "-1 raw=-1 nrbits=8 frac=0 bits=11111111", nil},
		{byte8, "127", "+", "1", "-128 raw=-128 nrbits=8 frac=0 bits=10000000", nil},
		{fixed4, "1.5", "*", "-2.25", "-3.375 raw=-864 nrbits=16 frac=8 bits=1111110010100000", nil},
		{fixed4, "1.5", "**", "2", "2.25 raw=576 nrbits=16 frac=8 bits=0000001001000000", nil},
		{fixed4, "1.5", "<<", "2", "6 raw=24 nrbits=8 frac=2 bits=00011000", nil},
		{fixed4, "1.5", ">>", "1", "0.75 raw=24 nrbits=8 frac=5 bits=00011000", nil},
		{fixed4, "1", "/", "3", "0.3125 raw=5 nrbits=12 frac=4 bits=000000000101", nil},
		{fixed4, "5.5", "%", "2", "1.5 raw=24 nrbits=8 frac=4 bits=00011000", nil},
		{fixed4, "1.5", "==", "1.5", "true", nil},
		{fixed4, "1.5", "<", "1.5", "false", nil},

		{fixed4, "1.5", "&", "1", "", fixbv.ErrNotSupported},
		{fixed4, "1.5", "|", "1", "", fixbv.ErrNotSupported},
		{fixed4, "1.5", "**", "x", "", fixbv.ErrInvalidExponent},
		{fixed4, "1.5", "**", "0", "", fixbv.ErrInvalidExponent},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			res, err := evalBinary(test.f, test.f, test.lhs, test.op, test.rhs)
			if test.err != nil {
				a.ErrorIs(err, test.err)
				return
			}
			if a.NoError(err) {
				a.Equal(test.res, res)
			}
		})
	}
}

func TestEvalBinaryErrors(t *testing.T) {
	a := assert.New(t)
	for _, args := range [][3]string{
		{"abc", "+", "1"},
		{"1", "+", "abc"},
		{"1", "/", "0"},
		{"1", "%", "0"},
		{"1", "<<", "x"},
		{"1", "?", "1"},
	} {
		_, err := evalBinary(byte8, byte8, args[0], args[1], args[2])
		a.Error(err, "%v", args)
	}
}

func TestEvalSlice(t *testing.T) {
	a := assert.New(t)
	res, err := evalSlice(fixed4, "1.5", "4", "0")
	if a.NoError(err) {
		a.Equal("1 raw=1 nrbits=4 frac=0 bits=0001", res)
	}
	res, err = evalSlice(fixed4, "-1.5", "4", "-4")
	if a.NoError(err) {
		a.Equal("14.5 raw=232 nrbits=8 frac=4 bits=11101000", res)
	}
	_, err = evalSlice(fixed4, "1.5", "5", "0")
	a.ErrorIs(err, fixbv.ErrInvalidRange)
	_, err = evalSlice(fixed4, "1.5", "a", "0")
	a.Error(err)
}

func TestEvalComplex(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		mode string
		args []string
		res  string
		err  error
	}{
		{"simple", []string{"1.5", "-0.5", "*", "0.25", "2"}, "(1.375+2.875j)", nil},
		{"gauss", []string{"1.5", "-0.5", "*", "0.25", "2"}, "(1.375+2.875j)", nil},
		{"simple", []string{"1.5", "-0.5", "+", "0.25", "2"}, "(1.75+1.5j)", nil},
		{"simple", []string{"1.5", "-0.5", "-", "0.25", "2"}, "(1.25-2.5j)", nil},
		{"fast", []string{"1.5", "-0.5", "*", "0.25", "2"}, "", fixbv.ErrInvalidMulMode},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			res, err := evalComplex(fixed4, test.mode, test.args)
			if test.err != nil {
				a.ErrorIs(err, test.err)
				return
			}
			if a.NoError(err) {
				a.Equal(test.res, res)
			}
		})
	}
	_, err := evalComplex(fixed4, "simple", []string{"1", "1", "/", "1", "1"})
	a.Error(err)
}

func TestRootCmd(t *testing.T) {
	a := assert.New(t)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"eval", "--msb=4", "--lsb=-4", "--rhs-msb=2", "--rhs-lsb=-8", "--", "1.5", "+", "0.125"})
	if a.NoError(rootCmd.Execute()) {
		a.Equal("1.625 raw=416 nrbits=12 frac=8 bits=000110100000\n", out.String())
	}
}
