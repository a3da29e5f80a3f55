package equations

import (
	"github.com/san-kum/sphlab/internal/parray"
	"github.com/san-kum/sphlab/internal/sph"
)

// ContinuityEquation accumulates the density rate:
//
//	drho_a/dt = sum_b m_b v_ab . grad_a W_ab
//
// When symmetric, the exact negated reaction scaled by the destination mass
// goes to the source in the same call, so total mass rate is conserved
// across the pair in a single pass over unordered pairs.
type ContinuityEquation struct {
	sph.Base

	dArho, dM []float64
	sArho, sM []float64
}

func NewContinuityEquation(dest, source string, symmetric bool) *ContinuityEquation {
	return &ContinuityEquation{Base: sph.NewBase(dest, source, symmetric)}
}

func (e *ContinuityEquation) Bind(dst, src *parray.Array) error {
	var err error
	if e.dArho, err = dst.Field(parray.FieldArho); err != nil {
		return err
	}
	if e.dM, err = dst.Field(parray.FieldM); err != nil {
		return err
	}
	if e.sArho, err = src.Field(parray.FieldArho); err != nil {
		return err
	}
	if e.sM, err = src.Field(parray.FieldM); err != nil {
		return err
	}
	return nil
}

func (e *ContinuityEquation) Initialize(di int) {
	e.dArho[di] = 0
}

func (e *ContinuityEquation) Loop(di, si int, p *sph.Pair) {
	vijdotdwij := sph.Dot3(p.VIJ, p.DWIJ)

	e.dArho[di] += e.sM[si] * vijdotdwij
	if e.Symmetric() {
		e.sArho[si] += -e.dM[di] * vijdotdwij
	}
}
