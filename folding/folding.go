// Package folding implements the instance layer of a HyperNova-style folding
// scheme over CCS: committed instances (CCCS), linearized committed instances
// (LCCCS), their satisfiability checks, and the random-linear-combination fold
// collapsing a running LCCCS and a fresh CCCS into a new LCCCS.
//
// Instances and witnesses are created together, never mutated afterwards, and
// folding returns freshly allocated values; originals stay valid. The CCS
// shape is shared by reference across all instances of one circuit.
package folding

import (
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Verification failures are recoverable: a verifier handed an adversarial or
// malformed instance reports rejection and keeps running.
var (
	// ErrNotSatisfied is returned when the characteristic polynomial of a
	// CCCS instance does not vanish on the whole boolean hypercube.
	ErrNotSatisfied = errors.New("folding: relation not satisfied")

	// ErrCommitmentMismatch is returned when the claimed witness does not
	// open the instance commitment.
	ErrCommitmentMismatch = errors.New("folding: commitment does not match witness")

	// ErrEvaluationMismatch is returned when the claimed evaluations of an
	// LCCCS disagree with the ones recomputed from the witness.
	ErrEvaluationMismatch = errors.New("folding: claimed evaluations do not match witness")
)

// Witness opens a committed instance: the private tail W of the assignment and
// the commitment blinding RW. RW never appears in the instance itself.
type Witness struct {
	W  []fr.Element
	RW fr.Element
}

// buildZ rebuilds the full assignment (u, x, w).
func buildZ(u fr.Element, x, w []fr.Element) []fr.Element {
	z := make([]fr.Element, 0, 1+len(x)+len(w))
	z = append(z, u)
	z = append(z, x...)
	z = append(z, w...)
	return z
}
