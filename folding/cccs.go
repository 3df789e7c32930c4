package folding

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"golang.org/x/sync/errgroup"

	"github.com/privacy-scaling-explorations/hypernova-POC/ccs"
	"github.com/privacy-scaling-explorations/hypernova-POC/internal/hypercube"
	"github.com/privacy-scaling-explorations/hypernova-POC/internal/sample"
	"github.com/privacy-scaling-explorations/hypernova-POC/logger"
	"github.com/privacy-scaling-explorations/hypernova-POC/pedersen"
)

// CCCS is a committed CCS instance: a commitment to the private tail of the
// assignment plus the public input. It carries no accumulation state; the
// surrounding protocol runs one sum-check linearization round over it before
// it can take part in a fold.
type CCCS struct {
	CCS *ccs.CCS

	C pedersen.Commitment
	X []fr.Element
}

// ToCCCS commits a full assignment z = (1, x, w) into a CCCS instance and its
// opening witness. A fresh blinding is drawn from rng; no evaluation point is
// chosen.
func ToCCCS(shape *ccs.CCS, rng io.Reader, params *pedersen.Params, z []fr.Element) (*CCCS, *Witness, error) {
	w := append([]fr.Element(nil), z[1+shape.L:]...)
	rw, err := sample.Fr(rng)
	if err != nil {
		return nil, nil, err
	}
	c, err := pedersen.Commit(params, w, rw)
	if err != nil {
		return nil, nil, err
	}
	inst := &CCCS{
		CCS: shape,
		C:   c,
		X:   append([]fr.Element(nil), z[1:1+shape.L]...),
	}
	return inst, &Witness{W: w, RW: rw}, nil
}

// CheckRelation verifies that w opens the commitment and that the full
// assignment rebuilt from the instance satisfies the shape: the
// characteristic polynomial q must vanish on every point of {0,1}^s. This is
// the full, non-succinct check, 2^s evaluations swept in parallel.
func (c *CCCS) CheckRelation(params *pedersen.Params, w *Witness) error {
	log := logger.Logger()
	start := time.Now()

	cm, err := pedersen.Commit(params, w.W, w.RW)
	if err != nil {
		return err
	}
	if !cm.Equal(&c.C) {
		return ErrCommitmentMismatch
	}

	var one fr.Element
	one.SetOne()
	q := c.CCS.ComputeQ(buildZ(one, c.X, w.W))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	cube := hypercube.New(c.CCS.S)
	for i := 0; ; i++ {
		x, ok := cube.Next()
		if !ok {
			break
		}
		i := i
		g.Go(func() error {
			if v := q.Evaluate(x); !v.IsZero() {
				return fmt.Errorf("%w: q is nonzero at hypercube point %d", ErrNotSatisfied, i)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	log.Debug().Int("nbEvaluations", 1<<c.CCS.S).Dur("took", time.Since(start)).Msg("cccs relation check done")
	return nil
}
