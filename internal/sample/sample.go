// Package sample draws uniform field elements from an injected randomness
// source, so callers can substitute seeded readers in tests.
package sample

import (
	"crypto/rand"
	"io"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Fr returns one uniform field element read from rng.
func Fr(rng io.Reader) (fr.Element, error) {
	var e fr.Element
	n, err := rand.Int(rng, fr.Modulus())
	if err != nil {
		return e, err
	}
	e.SetBigInt(n)
	return e, nil
}

// FrVector returns n independent uniform field elements read from rng.
func FrVector(rng io.Reader, n int) ([]fr.Element, error) {
	v := make([]fr.Element, n)
	for i := range v {
		var err error
		if v[i], err = Fr(rng); err != nil {
			return nil, err
		}
	}
	return v, nil
}
