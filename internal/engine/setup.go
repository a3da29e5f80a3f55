package engine

import (
	"github.com/san-kum/sphlab/internal/config"
	"github.com/san-kum/sphlab/internal/equations"
	"github.com/san-kum/sphlab/internal/kernels"
)

const fluidGroup = "fluid"

// FromConfig assembles a compiled simulator: scene array, kernel, the
// enabled equations in canonical order, and an Euler integrator that
// follows the XSPH rate when the correction is on.
func FromConfig(cfg *config.Config) (*Simulator, error) {
	fluid := BuildDamBreak(DamBreakSpec{
		Nx:      cfg.Fluid.Nx,
		Ny:      cfg.Fluid.Ny,
		Spacing: cfg.Fluid.Spacing,
		Rho0:    cfg.Fluid.Rho0,
		C0:      cfg.Fluid.C0,
		HFactor: cfg.Fluid.HFactor,
		Jitter:  cfg.Fluid.Jitter,
		Seed:    cfg.Seed,
	})

	ev := NewEvaluator(kernels.Named(cfg.Kernel))
	ev.AddArray(fluid)

	eqc := cfg.Equations
	if eqc.SummationDensity {
		ev.AddEquation(equations.NewSummationDensity(fluidGroup, fluidGroup))
	}
	if eqc.Continuity.Enabled {
		ev.AddEquation(equations.NewContinuityEquation(fluidGroup, fluidGroup, eqc.Continuity.Symmetric))
	}
	if eqc.EOS.Enabled {
		ev.AddEquation(equations.NewIsothermalEOS(fluidGroup, fluidGroup, eqc.EOS.Rho0, eqc.EOS.C0))
	}
	if eqc.Viscosity.Enabled {
		ev.AddEquation(equations.NewMonaghanArtificialViscosity(
			fluidGroup, fluidGroup, eqc.Viscosity.Alpha, eqc.Viscosity.Beta, eqc.Viscosity.Eta))
	}
	if eqc.BodyForce.Enabled {
		ev.AddEquation(equations.NewBodyForce(
			fluidGroup, fluidGroup, eqc.BodyForce.Fx, eqc.BodyForce.Fy, eqc.BodyForce.Fz, false))
	}
	if eqc.XSPH.Enabled {
		ev.AddEquation(equations.NewXSPHCorrection(fluidGroup, fluidGroup, eqc.XSPH.Eps, eqc.XSPH.Symmetric))
	}

	if err := ev.Compile(); err != nil {
		return nil, err
	}

	return NewSimulator(ev, NewEuler(eqc.XSPH.Enabled), fluid), nil
}
