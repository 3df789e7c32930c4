package folding

import (
	"fmt"
	"io"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/privacy-scaling-explorations/hypernova-POC/ccs"
	"github.com/privacy-scaling-explorations/hypernova-POC/internal/sample"
	"github.com/privacy-scaling-explorations/hypernova-POC/pedersen"
)

// LCCCS is a linearized committed CCS instance: the commitment and public
// input of a CCCS together with the accumulation scalar U, the evaluation
// point RX fixed by the linearization round, and the claimed per-matrix
// evaluations V. U is 1 for a freshly linearized instance and accumulates one
// rho per fold.
type LCCCS struct {
	CCS *ccs.CCS

	C  pedersen.Commitment
	U  fr.Element
	X  []fr.Element
	RX []fr.Element
	V  []fr.Element
}

// ToLCCCS commits a full assignment z = (1, x, w) and linearizes it at a
// freshly drawn random point r_x of length s, seeding a running instance with
// u = 1 and v_j = Σ_{y ∈ {0,1}^s'} M̃_j(r_x, y)·z̃(y).
func ToLCCCS(shape *ccs.CCS, rng io.Reader, params *pedersen.Params, z []fr.Element) (*LCCCS, *Witness, error) {
	w := append([]fr.Element(nil), z[1+shape.L:]...)
	rw, err := sample.Fr(rng)
	if err != nil {
		return nil, nil, err
	}
	c, err := pedersen.Commit(params, w, rw)
	if err != nil {
		return nil, nil, err
	}
	rx, err := sample.FrVector(rng, shape.S)
	if err != nil {
		return nil, nil, err
	}

	var one fr.Element
	one.SetOne()
	inst := &LCCCS{
		CCS: shape,
		C:   c,
		U:   one,
		X:   append([]fr.Element(nil), z[1:1+shape.L]...),
		RX:  rx,
		V:   shape.SumMzEvals(z, rx),
	}
	return inst, &Witness{W: w, RW: rw}, nil
}

// CheckRelation verifies that w opens the commitment and that the claimed
// evaluations V match the ones recomputed from z = (u, x, w) at the stored
// point RX.
func (l *LCCCS) CheckRelation(params *pedersen.Params, w *Witness) error {
	cm, err := pedersen.Commit(params, w.W, w.RW)
	if err != nil {
		return err
	}
	if !cm.Equal(&l.C) {
		return ErrCommitmentMismatch
	}

	v := l.CCS.SumMzEvals(buildZ(l.U, l.X, w.W), l.RX)
	if len(l.V) != len(v) {
		return fmt.Errorf("%w: %d claimed evaluations, expected %d", ErrEvaluationMismatch, len(l.V), len(v))
	}
	for j := range v {
		if !v[j].Equal(&l.V[j]) {
			return fmt.Errorf("%w: matrix %d", ErrEvaluationMismatch, j)
		}
	}
	return nil
}

// Equal reports whether two instances carry the same public data. The shape
// is compared by handle, not by value.
func (l *LCCCS) Equal(o *LCCCS) bool {
	if l.CCS != o.CCS || !l.C.Equal(&o.C) || !l.U.Equal(&o.U) {
		return false
	}
	if len(l.X) != len(o.X) || len(l.RX) != len(o.RX) || len(l.V) != len(o.V) {
		return false
	}
	for i := range l.X {
		if !l.X[i].Equal(&o.X[i]) {
			return false
		}
	}
	for i := range l.RX {
		if !l.RX[i].Equal(&o.RX[i]) {
			return false
		}
	}
	for i := range l.V {
		if !l.V[i].Equal(&o.V[i]) {
			return false
		}
	}
	return true
}
