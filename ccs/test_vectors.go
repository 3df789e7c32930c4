package ccs

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// NewTestCCS returns the CCS embedding of the R1CS for the cubic equation
// x³ + x + 5 = y, with y the single public input's image carried in the
// witness tail: m = 4 constraints over n = 6 variables, l = 1.
func NewTestCCS() *CCS {
	a := newMatrix([][]int64{
		{0, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 0, 0},
		{0, 1, 0, 0, 1, 0},
		{5, 0, 0, 0, 0, 1},
	})
	b := newMatrix([][]int64{
		{0, 1, 0, 0, 0, 0},
		{0, 1, 0, 0, 0, 0},
		{1, 0, 0, 0, 0, 0},
		{1, 0, 0, 0, 0, 0},
	})
	c := newMatrix([][]int64{
		{0, 0, 0, 1, 0, 0},
		{0, 0, 0, 0, 1, 0},
		{0, 0, 0, 0, 0, 1},
		{0, 0, 1, 0, 0, 0},
	})
	return NewR1CS(a, b, c, 1)
}

// NewTestZ returns the satisfying assignment z = (1, x, w) of NewTestCCS for
// a given input x.
func NewTestZ(input uint64) []fr.Element {
	x := input
	vals := []uint64{
		1,
		x,
		x*x*x + x + 5,
		x * x,
		x * x * x,
		x*x*x + x,
	}
	z := make([]fr.Element, len(vals))
	for i, v := range vals {
		z[i].SetUint64(v)
	}
	return z
}

func newMatrix(rows [][]int64) Matrix {
	m := make(Matrix, len(rows))
	for i, row := range rows {
		m[i] = make([]fr.Element, len(row))
		for j, v := range row {
			m[i][j].SetInt64(v)
		}
	}
	return m
}
