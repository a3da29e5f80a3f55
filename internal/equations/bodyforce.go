package equations

import (
	"github.com/san-kum/sphlab/internal/parray"
	"github.com/san-kum/sphlab/internal/sph"
)

// BodyForce adds a constant force per unit mass to the acceleration.
//
// The classic formulation applies the constant on every neighbor visit, so
// with N neighbors the force is added N times. That is only physically
// right when each particle sees exactly one dummy "global" source; the
// behavior is kept as-given and pinned by a test rather than restated as a
// per-particle contribution.
type BodyForce struct {
	sph.Base

	Fx, Fy, Fz float64

	dAu, dAv, dAw []float64
}

func NewBodyForce(dest, source string, fx, fy, fz float64, symmetric bool) *BodyForce {
	return &BodyForce{
		Base: sph.NewBase(dest, source, symmetric),
		Fx:   fx, Fy: fy, Fz: fz,
	}
}

func (e *BodyForce) Bind(dst, src *parray.Array) error {
	var err error
	if e.dAu, err = dst.Field(parray.FieldAu); err != nil {
		return err
	}
	if e.dAv, err = dst.Field(parray.FieldAv); err != nil {
		return err
	}
	if e.dAw, err = dst.Field(parray.FieldAw); err != nil {
		return err
	}
	return nil
}

func (e *BodyForce) Initialize(di int) {
	e.dAu[di] = 0
	e.dAv[di] = 0
	e.dAw[di] = 0
}

func (e *BodyForce) Loop(di, si int, p *sph.Pair) {
	e.dAu[di] += e.Fx
	e.dAv[di] += e.Fy
	e.dAw[di] += e.Fz
}
