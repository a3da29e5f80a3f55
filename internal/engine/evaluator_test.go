package engine_test

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sphlab/internal/engine"
	"github.com/san-kum/sphlab/internal/equations"
	"github.com/san-kum/sphlab/internal/kernels"
	"github.com/san-kum/sphlab/internal/parray"
	"github.com/san-kum/sphlab/internal/sph"
)

// recorder is a probe equation logging the stage-call sequence.
type recorder struct {
	sph.Base
	events *[]string
}

func newRecorder(dest string, symmetric bool, events *[]string) *recorder {
	return &recorder{Base: sph.NewBase(dest, dest, symmetric), events: events}
}

func (r *recorder) Bind(dst, src *parray.Array) error { return nil }

func (r *recorder) Initialize(di int) {
	*r.events = append(*r.events, fmt.Sprintf("init %d", di))
}

func (r *recorder) Loop(di, si int, p *sph.Pair) {
	*r.events = append(*r.events, fmt.Sprintf("loop %d %d", di, si))
}

func (r *recorder) PostLoop(di int) {
	*r.events = append(*r.events, fmt.Sprintf("post %d", di))
}

// tightCluster puts n particles within one smoothing length of each other
// so every particle neighbors every other.
func tightCluster(n int) *parray.Array {
	a := parray.New("fluid", n, parray.StandardFields...)
	x, _ := a.Field(parray.FieldX)
	for i := range x {
		x[i] = 0.01 * float64(i)
	}
	_ = a.Fill(parray.FieldH, 1.0)
	_ = a.Fill(parray.FieldM, 1.0)
	_ = a.Fill(parray.FieldRho, 1000.0)
	_ = a.Fill(parray.FieldCs, 10.0)
	return a
}

var _ = Describe("Evaluator", func() {
	Describe("Compile", func() {
		It("rejects an empty equation list", func() {
			ev := engine.NewEvaluator(kernels.NewCubicSpline())
			Expect(ev.Compile()).To(MatchError(engine.ErrNoEquations))
		})

		It("rejects equations naming unregistered groups", func() {
			ev := engine.NewEvaluator(kernels.NewCubicSpline())
			ev.AddEquation(equations.NewSummationDensity("missing", "missing"))
			Expect(ev.Compile()).To(MatchError(engine.ErrUnknownGroup))
		})

		It("surfaces missing fields before any stepping", func() {
			bare := parray.New("fluid", 2, parray.FieldX, parray.FieldY, parray.FieldZ, parray.FieldH)
			ev := engine.NewEvaluator(kernels.NewCubicSpline())
			ev.AddArray(bare)
			ev.AddEquation(equations.NewSummationDensity("fluid", "fluid"))
			Expect(ev.Compile()).To(MatchError(parray.ErrMissingField))
		})
	})

	Describe("Evaluate", func() {
		It("refuses to run uncompiled", func() {
			ev := engine.NewEvaluator(kernels.NewCubicSpline())
			Expect(ev.Evaluate()).To(MatchError(engine.ErrNotCompiled))
		})

		It("finishes initialize for every particle before any loop, and all loops before post_loop", func() {
			var events []string
			ev := engine.NewEvaluator(kernels.NewCubicSpline())
			ev.AddArray(tightCluster(3))
			ev.AddEquation(newRecorder("fluid", false, &events))
			Expect(ev.Compile()).To(Succeed())
			Expect(ev.Evaluate()).To(Succeed())

			firstLoop, lastInit, firstPost, lastLoop := -1, -1, -1, -1
			for i, e := range events {
				switch e[:4] {
				case "init":
					lastInit = i
				case "loop":
					if firstLoop < 0 {
						firstLoop = i
					}
					lastLoop = i
				case "post":
					if firstPost < 0 {
						firstPost = i
					}
				}
			}
			Expect(lastInit).To(BeNumerically("<", firstLoop))
			Expect(lastLoop).To(BeNumerically("<", firstPost))
		})

		It("visits each unordered pair once for symmetric self-interaction", func() {
			var events []string
			ev := engine.NewEvaluator(kernels.NewCubicSpline())
			ev.AddArray(tightCluster(3))
			ev.AddEquation(newRecorder("fluid", true, &events))
			Expect(ev.Compile()).To(Succeed())
			Expect(ev.Evaluate()).To(Succeed())

			var loops []string
			for _, e := range events {
				if e[:4] == "loop" {
					loops = append(loops, e)
				}
			}
			// 3 particles, pairs (0,1), (0,2), (1,2); no self pairs, no
			// reversed revisits.
			Expect(loops).To(ConsistOf("loop 0 1", "loop 0 2", "loop 1 2"))
		})

		It("visits the full neighbor list, self included, when not symmetric", func() {
			var events []string
			ev := engine.NewEvaluator(kernels.NewCubicSpline())
			ev.AddArray(tightCluster(2))
			ev.AddEquation(newRecorder("fluid", false, &events))
			Expect(ev.Compile()).To(Succeed())
			Expect(ev.Evaluate()).To(Succeed())

			var loops []string
			for _, e := range events {
				if e[:4] == "loop" {
					loops = append(loops, e)
				}
			}
			Expect(loops).To(ConsistOf("loop 0 0", "loop 0 1", "loop 1 0", "loop 1 1"))
		})

		It("composes equations over shared arrays without interference", func() {
			fluid := tightCluster(4)
			ev := engine.NewEvaluator(kernels.NewCubicSpline())
			ev.AddArray(fluid)
			ev.AddEquation(equations.NewSummationDensity("fluid", "fluid"))
			ev.AddEquation(equations.NewContinuityEquation("fluid", "fluid", true))
			ev.AddEquation(equations.NewIsothermalEOS("fluid", "fluid", 1000.0, 10.0))
			Expect(ev.Compile()).To(Succeed())

			Expect(ev.Evaluate()).To(Succeed())
			rho, err := fluid.Field(parray.FieldRho)
			Expect(err).NotTo(HaveOccurred())
			first := append([]float64(nil), rho...)

			// Accumulators reset each pass, so a second pass over unchanged
			// positions reproduces the same densities exactly.
			Expect(ev.Evaluate()).To(Succeed())
			Expect(rho).To(Equal(first))
		})

		It("sums density to a positive kernel-weighted total", func() {
			fluid := tightCluster(3)
			ev := engine.NewEvaluator(kernels.NewCubicSpline())
			ev.AddArray(fluid)
			ev.AddEquation(equations.NewSummationDensity("fluid", "fluid"))
			Expect(ev.Compile()).To(Succeed())
			Expect(ev.Evaluate()).To(Succeed())

			rho, _ := fluid.Field(parray.FieldRho)
			k := kernels.NewCubicSpline()
			// Self contribution alone is m*W(0); neighbors only add.
			Expect(rho[0]).To(BeNumerically(">", k.Value(0, 1.0)))
		})
	})
})
