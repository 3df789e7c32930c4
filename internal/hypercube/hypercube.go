// Package hypercube enumerates the points of the boolean hypercube {0,1}^n as
// vectors of field elements.
package hypercube

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// BooleanHypercube walks the 2^n points of {0,1}^n, least significant
// coordinate first. The zero value is not usable; use New.
type BooleanHypercube struct {
	n    int
	next uint64
}

// New returns an enumerator over {0,1}^n.
func New(n int) *BooleanHypercube {
	if n < 0 || n > 62 {
		panic("hypercube: dimension out of range")
	}
	return &BooleanHypercube{n: n}
}

// Next returns the next point and true, or nil and false once all 2^n points
// have been produced. The returned slice is freshly allocated.
func (h *BooleanHypercube) Next() ([]fr.Element, bool) {
	if h.next >= uint64(1)<<h.n {
		return nil, false
	}
	p := make([]fr.Element, h.n)
	for i := 0; i < h.n; i++ {
		if h.next>>i&1 == 1 {
			p[i].SetOne()
		}
	}
	h.next++
	return p, true
}

// Reset restarts the enumeration from the first point.
func (h *BooleanHypercube) Reset() {
	h.next = 0
}
