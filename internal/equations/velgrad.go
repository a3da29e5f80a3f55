package equations

import (
	"github.com/san-kum/sphlab/internal/parray"
	"github.com/san-kum/sphlab/internal/sph"
)

// VelocityGradient2D estimates the 2x2 velocity-gradient tensor:
//
//	dv^i/dx^j = sum_b (m_b/rho_b)(v_b - v_a) dW_ab/dx_a^j
//
// Components are stored as v00, v01, v10, v11 where the first index is the
// velocity component and the second the spatial one. Only the first two
// components of the pair vectors are used; the third dimension is ignored.
type VelocityGradient2D struct {
	sph.Base

	dV00, dV01, dV10, dV11 []float64
	sM, sRho               []float64
}

func NewVelocityGradient2D(dest, source string) *VelocityGradient2D {
	return &VelocityGradient2D{Base: sph.NewBase(dest, source, false)}
}

func (e *VelocityGradient2D) Bind(dst, src *parray.Array) error {
	var err error
	if e.dV00, err = dst.Field(parray.FieldV00); err != nil {
		return err
	}
	if e.dV01, err = dst.Field(parray.FieldV01); err != nil {
		return err
	}
	if e.dV10, err = dst.Field(parray.FieldV10); err != nil {
		return err
	}
	if e.dV11, err = dst.Field(parray.FieldV11); err != nil {
		return err
	}
	if e.sM, err = src.Field(parray.FieldM); err != nil {
		return err
	}
	if e.sRho, err = src.Field(parray.FieldRho); err != nil {
		return err
	}
	return nil
}

func (e *VelocityGradient2D) Initialize(di int) {
	e.dV00[di] = 0
	e.dV01[di] = 0
	e.dV10[di] = 0
	e.dV11[di] = 0
}

func (e *VelocityGradient2D) Loop(di, si int, p *sph.Pair) {
	tmp := e.sM[si] / e.sRho[si]

	e.dV00[di] += tmp * -p.VIJ[0] * p.DWIJ[0]
	e.dV01[di] += tmp * -p.VIJ[0] * p.DWIJ[1]

	e.dV10[di] += tmp * -p.VIJ[1] * p.DWIJ[0]
	e.dV11[di] += tmp * -p.VIJ[1] * p.DWIJ[1]
}
