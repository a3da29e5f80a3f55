package equations

import (
	"github.com/san-kum/sphlab/internal/parray"
	"github.com/san-kum/sphlab/internal/sph"
)

// IsothermalEOS computes pressure from density:
//
//	p = c0^2 (rho - rho0)
//
// It reads only the destination's own fields, so it is a per-particle
// transform expressed in the pairwise contract: Loop overwrites rather than
// accumulates, which makes the per-neighbor re-evaluation harmless, merely
// wasteful.
type IsothermalEOS struct {
	sph.Base

	Rho0 float64
	C0   float64
	c02  float64

	dRho, dP []float64
}

func NewIsothermalEOS(dest, source string, rho0, c0 float64) *IsothermalEOS {
	return &IsothermalEOS{
		Base: sph.NewBase(dest, source, false),
		Rho0: rho0,
		C0:   c0,
		c02:  c0 * c0,
	}
}

func (e *IsothermalEOS) Bind(dst, src *parray.Array) error {
	var err error
	if e.dRho, err = dst.Field(parray.FieldRho); err != nil {
		return err
	}
	if e.dP, err = dst.Field(parray.FieldP); err != nil {
		return err
	}
	return nil
}

func (e *IsothermalEOS) Loop(di, si int, p *sph.Pair) {
	e.dP[di] = e.c02 * (e.dRho[di] - e.Rho0)
}
