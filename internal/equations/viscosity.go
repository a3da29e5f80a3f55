package equations

import (
	"github.com/san-kum/sphlab/internal/parray"
	"github.com/san-kum/sphlab/internal/sph"
)

// MonaghanArtificialViscosity is the standard SPH dissipation term. The
// viscous pressure piij is zero unless the pair is approaching
// (VIJ.XIJ < 0), which avoids unphysical repulsion on separating pairs.
//
// The accumulation is destination-only even though the force is physically
// symmetric; that matches the classic formulation and is kept as-given.
type MonaghanArtificialViscosity struct {
	sph.Base

	Alpha float64
	Beta  float64
	Eta   float64 // softening, keeps muij finite at small separations

	dAu, dAv, dAw []float64
	dCs           []float64
	sCs, sM       []float64
}

func NewMonaghanArtificialViscosity(dest, source string, alpha, beta, eta float64) *MonaghanArtificialViscosity {
	return &MonaghanArtificialViscosity{
		Base:  sph.NewBase(dest, source, false),
		Alpha: alpha,
		Beta:  beta,
		Eta:   eta,
	}
}

func (e *MonaghanArtificialViscosity) Bind(dst, src *parray.Array) error {
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
	if e.dCs, err = dst.Field(parray.FieldCs); err != nil {
		return err
	}
	if e.sCs, err = src.Field(parray.FieldCs); err != nil {
		return err
	}
	if e.sM, err = src.Field(parray.FieldM); err != nil {
		return err
	}
	return nil
}

func (e *MonaghanArtificialViscosity) Initialize(di int) {
	e.dAu[di] = 0
	e.dAv[di] = 0
	e.dAw[di] = 0
}

func (e *MonaghanArtificialViscosity) Loop(di, si int, p *sph.Pair) {
	vijdotxij := sph.Dot3(p.VIJ, p.XIJ)

	piij := 0.0
	if vijdotxij < 0 {
		cij := 0.5 * (e.dCs[di] + e.sCs[si])

		muij := (p.HIJ * vijdotxij) / (p.R2IJ + e.Eta*e.Eta*p.HIJ*p.HIJ)

		piij = -e.Alpha*cij*muij + e.Beta*muij*muij
		piij = piij * p.RHOIJ1
	}

	e.dAu[di] += -e.sM[si] * piij * p.DWIJ[0]
	e.dAv[di] += -e.sM[si] * piij * p.DWIJ[1]
	e.dAw[di] += -e.sM[si] * piij * p.DWIJ[2]
}
