package equations

import (
	"github.com/san-kum/sphlab/internal/parray"
	"github.com/san-kum/sphlab/internal/sph"
)

// SummationDensity computes density by direct kernel-weighted mass
// summation over neighbors:
//
//	rho_a = sum_b m_b W_ab
//
// There is no reaction term to mirror, so the equation is always
// non-symmetric: each destination computes its own sum independently.
// Running it symmetric would double-count, which is why no construction
// path sets the flag.
type SummationDensity struct {
	sph.Base

	dRho []float64
	sM   []float64
}

func NewSummationDensity(dest, source string) *SummationDensity {
	return &SummationDensity{Base: sph.NewBase(dest, source, false)}
}

func (e *SummationDensity) Bind(dst, src *parray.Array) error {
	var err error
	if e.dRho, err = dst.Field(parray.FieldRho); err != nil {
		return err
	}
	if e.sM, err = src.Field(parray.FieldM); err != nil {
		return err
	}
	return nil
}

func (e *SummationDensity) Initialize(di int) {
	e.dRho[di] = 0
}

func (e *SummationDensity) Loop(di, si int, p *sph.Pair) {
	e.dRho[di] += e.sM[si] * p.WIJ
}
