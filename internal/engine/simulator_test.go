package engine_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sphlab/internal/config"
	"github.com/san-kum/sphlab/internal/engine"
	"github.com/san-kum/sphlab/internal/kernels"
	"github.com/san-kum/sphlab/internal/metrics"
	"github.com/san-kum/sphlab/internal/parray"
	"github.com/san-kum/sphlab/internal/sph"
)

// poison writes NaN into an accumulator, standing in for a numerical
// blow-up the equations themselves never trap.
type poison struct {
	sph.Base
	au []float64
}

func newPoison(dest string) *poison {
	return &poison{Base: sph.NewBase(dest, dest, false)}
}

func (p *poison) Bind(dst, src *parray.Array) error {
	var err error
	p.au, err = dst.Field(parray.FieldAu)
	return err
}

func (p *poison) Loop(di, si int, pair *sph.Pair) {
	p.au[di] = math.NaN()
}

func smallConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Fluid.Nx = 5
	cfg.Fluid.Ny = 5
	return cfg
}

var _ = Describe("Simulator", func() {
	It("runs a small dam break to completion", func() {
		sim, err := engine.FromConfig(smallConfig())
		Expect(err).NotTo(HaveOccurred())
		sim.AddMetric(metrics.NewMeanDensity())

		runCfg := engine.Config{Dt: 1e-4, Duration: 2e-3, ValidateState: true, SnapshotEvery: 5}
		result, err := sim.Run(context.Background(), runCfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.StepsTaken).To(BeNumerically("~", 20, 1))
		Expect(result.Frames).To(HaveLen(4))
		Expect(result.Metrics).To(HaveKey("mean_density"))
		Expect(result.Metrics["mean_density"]).To(BeNumerically(">", 0))
	})

	It("aborts on non-finite state with a SimulationError", func() {
		fluid := tightCluster(2)
		ev := engine.NewEvaluator(kernels.NewCubicSpline())
		ev.AddArray(fluid)
		ev.AddEquation(newPoison("fluid"))
		Expect(ev.Compile()).To(Succeed())

		sim := engine.NewSimulator(ev, engine.NewEuler(false), fluid)
		result, err := sim.Run(context.Background(), engine.Config{Dt: 1e-4, Duration: 1e-2, ValidateState: true})

		Expect(err).To(MatchError(engine.ErrInvalidState))
		var simErr *engine.SimulationError
		Expect(err).To(BeAssignableToTypeOf(simErr))
		Expect(result.StepsTaken).To(Equal(0))
	})

	It("keeps stepping through non-finite state when validation is off", func() {
		fluid := tightCluster(2)
		ev := engine.NewEvaluator(kernels.NewCubicSpline())
		ev.AddArray(fluid)
		ev.AddEquation(newPoison("fluid"))
		Expect(ev.Compile()).To(Succeed())

		sim := engine.NewSimulator(ev, engine.NewEuler(false), fluid)
		_, err := sim.Run(context.Background(), engine.Config{Dt: 1e-4, Duration: 1e-3, ValidateState: false})
		Expect(err).NotTo(HaveOccurred())
	})

	It("honors context cancellation", func() {
		sim, err := engine.FromConfig(smallConfig())
		Expect(err).NotTo(HaveOccurred())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		result, err := sim.Run(ctx, engine.Config{Dt: 1e-4, Duration: 1.0, ValidateState: false})
		Expect(err).To(MatchError(context.Canceled))
		Expect(result.StepsTaken).To(Equal(0))
	})
})

var _ = Describe("Euler integrator", func() {
	It("advances velocity by the accumulated acceleration", func() {
		a := parray.New("fluid", 1, parray.StandardFields...)
		au, _ := a.Field(parray.FieldAu)
		u, _ := a.Field(parray.FieldU)
		au[0] = 2.0

		integ := engine.NewEuler(false)
		Expect(integ.Step(a, 0.5)).To(Succeed())
		Expect(u[0]).To(BeNumerically("~", 1.0, 1e-12))

		x, _ := a.Field(parray.FieldX)
		Expect(x[0]).To(BeNumerically("~", 0.5, 1e-12))
	})

	It("follows the XSPH rate instead of raw velocity when enabled", func() {
		a := parray.New("fluid", 1, parray.StandardFields...)
		u, _ := a.Field(parray.FieldU)
		ax, _ := a.Field(parray.FieldAx)
		u[0] = 10.0 // would move x by 1.0 without xsph
		ax[0] = 1.0

		integ := engine.NewEuler(true)
		Expect(integ.Step(a, 0.1)).To(Succeed())

		x, _ := a.Field(parray.FieldX)
		Expect(x[0]).To(BeNumerically("~", 0.1, 1e-12))
	})
})

var _ = Describe("Dam break scene", func() {
	It("populates every field the equations bind", func() {
		spec := engine.DefaultDamBreak()
		fluid := engine.BuildDamBreak(spec)
		Expect(fluid.Len()).To(Equal(spec.Nx * spec.Ny))

		rho, err := fluid.Field(parray.FieldRho)
		Expect(err).NotTo(HaveOccurred())
		m, _ := fluid.Field(parray.FieldM)
		h, _ := fluid.Field(parray.FieldH)
		cs, _ := fluid.Field(parray.FieldCs)
		for i := 0; i < fluid.Len(); i++ {
			Expect(rho[i]).To(Equal(spec.Rho0))
			Expect(m[i]).To(BeNumerically(">", 0))
			Expect(h[i]).To(BeNumerically(">", 0))
			Expect(cs[i]).To(Equal(spec.C0))
		}
	})

	It("is deterministic for a fixed seed", func() {
		spec := engine.DefaultDamBreak()
		spec.Seed = 7
		a := engine.BuildDamBreak(spec)
		b := engine.BuildDamBreak(spec)

		xa, _ := a.Field(parray.FieldX)
		xb, _ := b.Field(parray.FieldX)
		Expect(xa).To(Equal(xb))
	})
})
