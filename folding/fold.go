package folding

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/privacy-scaling-explorations/hypernova-POC/pedersen"
)

// Fold combines a running linearized instance with a fresh committed instance
// under the challenge rho:
//
//	C'   = C1 + rho·C2
//	u'   = u1 + rho
//	x'_i = x1_i + rho·x2_i
//	r_x' = rxPrime
//	v'_j = sigmas_j + rho·thetas_j
//
// sigmas, thetas and rxPrime must come from a sum-check reduction run on this
// exact pair of instances with this exact rho, and rho must have been fixed
// only after both instances' public data was; Fold trusts all of this blindly,
// and a violated precondition yields a non-satisfying instance rather than an
// error. Fold never mutates its inputs and is deterministic. It panics if the
// public inputs, the evaluation vectors, or rxPrime have inconsistent lengths.
func Fold(lcccs1 *LCCCS, cccs2 *CCCS, sigmas, thetas []fr.Element, rxPrime []fr.Element, rho fr.Element) *LCCCS {
	shape := lcccs1.CCS
	switch {
	case len(lcccs1.X) != len(cccs2.X):
		panic("folding: public input length mismatch")
	case len(sigmas) != shape.T || len(thetas) != shape.T:
		panic("folding: evaluation vector length mismatch")
	case len(rxPrime) != shape.S:
		panic("folding: evaluation point length mismatch")
	}

	var c pedersen.Commitment
	c.ScalarMultiplication(&cccs2.C, rho.BigInt(new(big.Int)))
	c.Add(&lcccs1.C, &c)

	var u fr.Element
	u.Add(&lcccs1.U, &rho)

	var t fr.Element
	x := make([]fr.Element, len(lcccs1.X))
	for i := range x {
		t.Mul(&cccs2.X[i], &rho)
		x[i].Add(&lcccs1.X[i], &t)
	}

	v := make([]fr.Element, len(sigmas))
	for j := range v {
		t.Mul(&thetas[j], &rho)
		v[j].Add(&sigmas[j], &t)
	}

	return &LCCCS{
		CCS: shape,
		C:   c,
		U:   u,
		X:   x,
		RX:  append([]fr.Element(nil), rxPrime...),
		V:   v,
	}
}

// FoldWitness combines the two instances' witnesses under the same challenge:
// w' = w1 + rho·w2 and r_w' = r_w1 + rho·r_w2. It must be called with the rho
// used in Fold for the folded pair to remain satisfying. Inputs are not
// mutated. Panics if the private vectors differ in length.
func FoldWitness(w1, w2 *Witness, rho fr.Element) *Witness {
	if len(w1.W) != len(w2.W) {
		panic("folding: witness length mismatch")
	}

	var t fr.Element
	w := make([]fr.Element, len(w1.W))
	for i := range w {
		t.Mul(&w2.W[i], &rho)
		w[i].Add(&w1.W[i], &t)
	}

	var rw fr.Element
	rw.Mul(&w2.RW, &rho)
	rw.Add(&w1.RW, &rw)

	return &Witness{W: w, RW: rw}
}
