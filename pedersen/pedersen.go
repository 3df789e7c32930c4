// Package pedersen implements a Pedersen vector commitment over BLS12-381 G1.
//
// The scheme is computationally binding, perfectly hiding, and additively
// homomorphic: commitments add and scale with the group law, which is the
// property the folding layer relies on.
package pedersen

import (
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/privacy-scaling-explorations/hypernova-POC/internal/sample"
	"github.com/privacy-scaling-explorations/hypernova-POC/logger"
)

// Commitment is a commitment to a vector of field elements.
type Commitment = bls12381.G1Affine

// Params are public commitment parameters: a blinding base H and one base per
// committed coordinate.
type Params struct {
	H bls12381.G1Affine
	G []bls12381.G1Affine
}

// Setup draws max+1 independent bases from rng. Vectors of length up to max
// can be committed under the returned parameters.
func Setup(rng io.Reader, max int) (*Params, error) {
	log := logger.Logger().With().Str("scheme", "pedersen").Logger()
	start := time.Now()

	_, _, g1, _ := bls12381.Generators()

	var p Params
	var b big.Int
	s, err := sample.Fr(rng)
	if err != nil {
		return nil, err
	}
	p.H.ScalarMultiplication(&g1, s.BigInt(&b))

	p.G = make([]bls12381.G1Affine, max)
	for i := range p.G {
		if s, err = sample.Fr(rng); err != nil {
			return nil, err
		}
		p.G[i].ScalarMultiplication(&g1, s.BigInt(&b))
	}

	log.Debug().Int("nbBases", max+1).Dur("took", time.Since(start)).Msg("setup done")
	return &p, nil
}

// Commit commits to v under blinding r: C = r·H + Σ v_i·G_i.
func Commit(params *Params, v []fr.Element, r fr.Element) (Commitment, error) {
	var c Commitment
	if len(v) > len(params.G) {
		return c, fmt.Errorf("pedersen: vector length %d exceeds setup bound %d", len(v), len(params.G))
	}
	if _, err := c.MultiExp(params.G[:len(v)], v, ecc.MultiExpConfig{}); err != nil {
		return c, err
	}
	var blind Commitment
	blind.ScalarMultiplication(&params.H, r.BigInt(new(big.Int)))
	c.Add(&c, &blind)
	return c, nil
}
