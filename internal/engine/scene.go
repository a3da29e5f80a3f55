package engine

import (
	"math/rand"

	"github.com/san-kum/sphlab/internal/parray"
)

// DamBreakSpec describes the 2-D dam-break block: a lattice of fluid
// particles released in the corner of the domain.
type DamBreakSpec struct {
	Nx, Ny  int
	Spacing float64
	Rho0    float64
	C0      float64
	HFactor float64 // smoothing length as a multiple of spacing
	Jitter  float64 // lattice perturbation as a fraction of spacing
	Seed    int64
}

func DefaultDamBreak() DamBreakSpec {
	return DamBreakSpec{
		Nx:      20,
		Ny:      40,
		Spacing: 0.05,
		Rho0:    1000.0,
		C0:      10.0,
		HFactor: 1.2,
		Jitter:  0.05,
	}
}

// BuildDamBreak populates a fluid array: lattice positions with jitter,
// reference density, per-particle mass rho0*dx^2, uniform sound speed and
// smoothing length. Every field the basic equations bind is present.
func BuildDamBreak(spec DamBreakSpec) *parray.Array {
	n := spec.Nx * spec.Ny
	a := parray.New("fluid", n, parray.StandardFields...)

	rng := rand.New(rand.NewSource(spec.Seed))

	x, _ := a.Field(parray.FieldX)
	y, _ := a.Field(parray.FieldY)
	h, _ := a.Field(parray.FieldH)
	m, _ := a.Field(parray.FieldM)
	rho, _ := a.Field(parray.FieldRho)
	cs, _ := a.Field(parray.FieldCs)

	dx := spec.Spacing
	mass := spec.Rho0 * dx * dx
	for i := 0; i < n; i++ {
		r, c := i/spec.Nx, i%spec.Nx
		x[i] = float64(c)*dx + spec.Jitter*dx*(rng.Float64()-0.5)
		y[i] = float64(r)*dx + spec.Jitter*dx*(rng.Float64()-0.5)
		h[i] = spec.HFactor * dx
		m[i] = mass
		rho[i] = spec.Rho0
		cs[i] = spec.C0
	}
	return a
}
