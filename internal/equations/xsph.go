package equations

import (
	"github.com/san-kum/sphlab/internal/parray"
	"github.com/san-kum/sphlab/internal/sph"
)

// XSPHCorrection smooths particle motion by blending each velocity with a
// kernel-weighted neighbor average. PostLoop adds the particle's own
// velocity on top of the accumulated correction, so (ax, ay, az) ends up as
// an XSPH-corrected position rate, ready for the integrator to advance
// positions with.
type XSPHCorrection struct {
	sph.Base

	Eps float64

	dAx, dAy, dAz []float64
	dU, dV, dW    []float64
	dM            []float64
	sAx, sAy, sAz []float64
	sM            []float64
}

func NewXSPHCorrection(dest, source string, eps float64, symmetric bool) *XSPHCorrection {
	return &XSPHCorrection{
		Base: sph.NewBase(dest, source, symmetric),
		Eps:  eps,
	}
}

func (e *XSPHCorrection) Bind(dst, src *parray.Array) error {
	var err error
	if e.dAx, err = dst.Field(parray.FieldAx); err != nil {
		return err
	}
	if e.dAy, err = dst.Field(parray.FieldAy); err != nil {
		return err
	}
	if e.dAz, err = dst.Field(parray.FieldAz); err != nil {
		return err
	}
	if e.dU, err = dst.Field(parray.FieldU); err != nil {
		return err
	}
	if e.dV, err = dst.Field(parray.FieldV); err != nil {
		return err
	}
	if e.dW, err = dst.Field(parray.FieldW); err != nil {
		return err
	}
	if e.dM, err = dst.Field(parray.FieldM); err != nil {
		return err
	}
	if e.sAx, err = src.Field(parray.FieldAx); err != nil {
		return err
	}
	if e.sAy, err = src.Field(parray.FieldAy); err != nil {
		return err
	}
	if e.sAz, err = src.Field(parray.FieldAz); err != nil {
		return err
	}
	if e.sM, err = src.Field(parray.FieldM); err != nil {
		return err
	}
	return nil
}

func (e *XSPHCorrection) Initialize(di int) {
	e.dAx[di] = 0
	e.dAy[di] = 0
	e.dAz[di] = 0
}

func (e *XSPHCorrection) Loop(di, si int, p *sph.Pair) {
	tmp := -e.Eps * e.sM[si] * p.WIJ * p.RHOIJ1

	v1 := tmp * p.VIJ[0]
	v2 := tmp * p.VIJ[1]
	v3 := tmp * p.VIJ[2]

	e.dAx[di] += v1
	e.dAy[di] += v2
	e.dAz[di] += v3

	if e.Symmetric() {
		factor := -e.dM[di] / e.sM[si]
		e.sAx[si] += v1 * factor
		e.sAy[si] += v2 * factor
		e.sAz[si] += v3 * factor
	}
}

func (e *XSPHCorrection) PostLoop(di int) {
	e.dAx[di] += e.dU[di]
	e.dAy[di] += e.dV[di]
	e.dAz[di] += e.dW[di]
}
