package engine

import "github.com/san-kum/sphlab/internal/parray"

// Integrator advances a particle array by one timestep using the rates the
// equations accumulated.
type Integrator interface {
	Step(a *parray.Array, dt float64) error
}

// Euler is an explicit first-order step. With XSPH enabled positions
// advance along the corrected rate (ax, ay, az) the XSPH equation leaves
// behind; otherwise along the raw velocity.
type Euler struct {
	XSPH bool
}

func NewEuler(xsph bool) *Euler { return &Euler{XSPH: xsph} }

func (in *Euler) Step(a *parray.Array, dt float64) error {
	var (
		x, y, z    []float64
		u, v, w    []float64
		au, av, aw []float64
		rho, arho  []float64
		err        error
	)
	for _, f := range []struct {
		name string
		out  *[]float64
	}{
		{parray.FieldX, &x}, {parray.FieldY, &y}, {parray.FieldZ, &z},
		{parray.FieldU, &u}, {parray.FieldV, &v}, {parray.FieldW, &w},
		{parray.FieldAu, &au}, {parray.FieldAv, &av}, {parray.FieldAw, &aw},
		{parray.FieldRho, &rho}, {parray.FieldArho, &arho},
	} {
		if *f.out, err = a.Field(f.name); err != nil {
			return err
		}
	}

	n := a.Len()
	for i := 0; i < n; i++ {
		u[i] += au[i] * dt
		v[i] += av[i] * dt
		w[i] += aw[i] * dt
		rho[i] += arho[i] * dt
	}

	if in.XSPH {
		ax, err := a.Field(parray.FieldAx)
		if err != nil {
			return err
		}
		ay, err := a.Field(parray.FieldAy)
		if err != nil {
			return err
		}
		az, err := a.Field(parray.FieldAz)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			x[i] += ax[i] * dt
			y[i] += ay[i] * dt
			z[i] += az[i] * dt
		}
		return nil
	}

	for i := 0; i < n; i++ {
		x[i] += u[i] * dt
		y[i] += v[i] * dt
		z[i] += w[i] * dt
	}
	return nil
}
