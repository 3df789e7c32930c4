// Package ccs implements the Customizable Constraint System (CCS) shape and
// the multilinear evaluation oracles the instance-folding layer builds on.
//
// A CCS generalizes R1CS-like systems: an assignment z satisfies the shape
// when, for every constraint row, the sum over the selector multisets S_i of
// c_i · Π_{j ∈ S_i} (M_j·z) is zero.
package ccs

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/polynomial"
)

// ErrNotSatisfied is returned when an assignment violates the shape.
var ErrNotSatisfied = errors.New("ccs: relation not satisfied")

// Matrix is a dense row-major matrix over the scalar field.
type Matrix [][]fr.Element

// MulVector returns M·z.
func (m Matrix) MulVector(z []fr.Element) []fr.Element {
	res := make([]fr.Element, len(m))
	var t fr.Element
	for i, row := range m {
		for j := range row {
			if row[j].IsZero() {
				continue
			}
			t.Mul(&row[j], &z[j])
			res[i].Add(&res[i], &t)
		}
	}
	return res
}

// CCS is a Customizable Constraint System shape. It is immutable once built
// and shared by reference across every instance committed against it; one
// shape per circuit, never per instance.
type CCS struct {
	M int // number of constraint rows
	N int // full assignment length
	L int // public input length
	T int // number of constraint matrices
	Q int // number of selector multisets
	D int // maximum degree of a constraint

	S      int // ceil(log2(M)), the hypercube dimension
	SPrime int // ceil(log2(N))

	Matrices  []Matrix
	Multisets [][]int
	Coeffs    []fr.Element
}

// NewR1CS builds the CCS embedding of an R1CS given its A, B, C matrices and
// the public input length l: t = 3, multisets {A,B}, {C}, coefficients 1, -1.
func NewR1CS(a, b, c Matrix, l int) *CCS {
	m := len(a)
	n := len(a[0])

	var one, minusOne fr.Element
	one.SetOne()
	minusOne.Neg(&one)

	return &CCS{
		M:         m,
		N:         n,
		L:         l,
		T:         3,
		Q:         2,
		D:         2,
		S:         log2Ceil(m),
		SPrime:    log2Ceil(n),
		Matrices:  []Matrix{a, b, c},
		Multisets: [][]int{{0, 1}, {2}},
		Coeffs:    []fr.Element{one, minusOne},
	}
}

func log2Ceil(n int) int {
	return bits.Len(uint(n - 1))
}

// SatisfiedBy checks the plain (uncommitted) CCS relation against a full
// assignment z.
func (ccs *CCS) SatisfiedBy(z []fr.Element) error {
	if len(z) != ccs.N {
		return fmt.Errorf("ccs: assignment length %d, expected %d", len(z), ccs.N)
	}
	mz := make([][]fr.Element, ccs.T)
	for j, m := range ccs.Matrices {
		mz[j] = m.MulVector(z)
	}
	var acc, term fr.Element
	for row := 0; row < ccs.M; row++ {
		acc.SetZero()
		for i, set := range ccs.Multisets {
			term.Set(&ccs.Coeffs[i])
			for _, j := range set {
				term.Mul(&term, &mz[j][row])
			}
			acc.Add(&acc, &term)
		}
		if !acc.IsZero() {
			return fmt.Errorf("%w: row %d", ErrNotSatisfied, row)
		}
	}
	return nil
}

// SumMzEvals returns, for every matrix M_j, the value
//
//	Σ_{y ∈ {0,1}^s'} M̃_j(r, y) · z̃(y)
//
// which equals the multilinear extension of the vector M_j·z evaluated at r.
// len(r) must be S.
func (ccs *CCS) SumMzEvals(z, r []fr.Element) []fr.Element {
	v := make([]fr.Element, ccs.T)
	for j, m := range ccs.Matrices {
		v[j] = ccs.mleMz(m, z).Evaluate(r, nil)
	}
	return v
}

// SigmasThetas runs the evaluation half of the sum-check reduction for a pair
// of assignments at a shared point r: sigmas are z1's per-matrix sums at r,
// thetas are z2's. The caller feeds these, with r, into the fold.
func (ccs *CCS) SigmasThetas(z1, z2, r []fr.Element) (sigmas, thetas []fr.Element) {
	return ccs.SumMzEvals(z1, r), ccs.SumMzEvals(z2, r)
}

// mleMz pads M·z to the hypercube size and views it as a multilinear table.
func (ccs *CCS) mleMz(m Matrix, z []fr.Element) polynomial.MultiLin {
	table := make(polynomial.MultiLin, 1<<ccs.S)
	copy(table, m.MulVector(z))
	return table
}

// QPolynomial is the characteristic polynomial of a shape/assignment pair:
//
//	q(x) = Σ_i c_i · Π_{j ∈ S_i} MLE(M_j·z)(x)
//
// The shape is satisfied by z exactly when q vanishes on all of {0,1}^s.
type QPolynomial struct {
	ccs *CCS
	mz  []polynomial.MultiLin
}

// ComputeQ builds the characteristic polynomial of z.
func (ccs *CCS) ComputeQ(z []fr.Element) *QPolynomial {
	mz := make([]polynomial.MultiLin, ccs.T)
	for j, m := range ccs.Matrices {
		mz[j] = ccs.mleMz(m, z)
	}
	return &QPolynomial{ccs: ccs, mz: mz}
}

// NumVars returns the number of variables of q.
func (q *QPolynomial) NumVars() int {
	return q.ccs.S
}

// Evaluate computes q(x). Safe for concurrent use.
func (q *QPolynomial) Evaluate(x []fr.Element) fr.Element {
	evals := make([]fr.Element, len(q.mz))
	for j := range q.mz {
		evals[j] = q.mz[j].Evaluate(x, nil)
	}
	var res, term fr.Element
	for i, set := range q.ccs.Multisets {
		term.Set(&q.ccs.Coeffs[i])
		for _, j := range set {
			term.Mul(&term, &evals[j])
		}
		res.Add(&res, &term)
	}
	return res
}
