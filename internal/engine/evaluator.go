package engine

import (
	"fmt"
	"math"

	"github.com/san-kum/sphlab/internal/kernels"
	"github.com/san-kum/sphlab/internal/nnps"
	"github.com/san-kum/sphlab/internal/parray"
	"github.com/san-kum/sphlab/internal/sph"
)

// binding is one compiled equation: its arrays, its neighbor finder, and
// the slices the pair geometry is computed from.
type binding struct {
	eq        sph.Equation
	init      sph.Initializer // nil when absent
	post      sph.PostLooper  // nil when absent
	dst, src  *parray.Array
	finder    nnps.Finder
	sameGroup bool

	dx, dy, dz, du, dv, dw, drho, dh []float64
	sx, sy, sz, su, sv, sw, srho, sh []float64

	nbrs []int
}

// Evaluator composes equations into one evaluation pass over registered
// particle arrays. Equations run in registration order; the order is part
// of the engine contract since later equations may read what earlier ones
// wrote.
type Evaluator struct {
	kernel   kernels.Kernel
	arrays   map[string]*parray.Array
	eqs      []sph.Equation
	bindings []binding
	compiled bool
}

func NewEvaluator(kernel kernels.Kernel) *Evaluator {
	return &Evaluator{
		kernel: kernel,
		arrays: make(map[string]*parray.Array),
	}
}

// AddArray registers a particle group under its name.
func (ev *Evaluator) AddArray(a *parray.Array) {
	ev.arrays[a.Name()] = a
	ev.compiled = false
}

// AddEquation appends an equation to the pass. Order matters.
func (ev *Evaluator) AddEquation(eq sph.Equation) {
	ev.eqs = append(ev.eqs, eq)
	ev.compiled = false
}

// Array returns a registered group by name.
func (ev *Evaluator) Array(name string) (*parray.Array, error) {
	a, ok := ev.arrays[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, name)
	}
	return a, nil
}

// Compile binds every equation and neighbor finder. All configuration
// errors (unknown groups, missing fields) surface here, before stepping.
func (ev *Evaluator) Compile() error {
	if len(ev.eqs) == 0 {
		return ErrNoEquations
	}

	ev.bindings = ev.bindings[:0]
	for _, eq := range ev.eqs {
		dst, ok := ev.arrays[eq.Dest()]
		if !ok {
			return fmt.Errorf("%w: dest %q", ErrUnknownGroup, eq.Dest())
		}
		src, ok := ev.arrays[eq.Source()]
		if !ok {
			return fmt.Errorf("%w: source %q", ErrUnknownGroup, eq.Source())
		}

		if err := eq.Bind(dst, src); err != nil {
			return err
		}

		finder := nnps.NewBruteForce(ev.kernel.Radius())
		if err := finder.Bind(dst, src); err != nil {
			return err
		}

		b := binding{
			eq:        eq,
			dst:       dst,
			src:       src,
			finder:    finder,
			sameGroup: dst == src,
			nbrs:      make([]int, 0, 64),
		}
		b.init, _ = eq.(sph.Initializer)
		b.post, _ = eq.(sph.PostLooper)

		if err := b.resolveGeometry(); err != nil {
			return err
		}
		ev.bindings = append(ev.bindings, b)
	}

	ev.compiled = true
	return nil
}

func (b *binding) resolveGeometry() error {
	fields := []struct {
		a    *parray.Array
		name string
		out  *[]float64
	}{
		{b.dst, parray.FieldX, &b.dx}, {b.dst, parray.FieldY, &b.dy}, {b.dst, parray.FieldZ, &b.dz},
		{b.dst, parray.FieldU, &b.du}, {b.dst, parray.FieldV, &b.dv}, {b.dst, parray.FieldW, &b.dw},
		{b.dst, parray.FieldRho, &b.drho}, {b.dst, parray.FieldH, &b.dh},
		{b.src, parray.FieldX, &b.sx}, {b.src, parray.FieldY, &b.sy}, {b.src, parray.FieldZ, &b.sz},
		{b.src, parray.FieldU, &b.su}, {b.src, parray.FieldV, &b.sv}, {b.src, parray.FieldW, &b.sw},
		{b.src, parray.FieldRho, &b.srho}, {b.src, parray.FieldH, &b.sh},
	}
	for _, f := range fields {
		s, err := f.a.Field(f.name)
		if err != nil {
			return err
		}
		*f.out = s
	}
	return nil
}

// Evaluate runs one full pass: every equation, three sweeps each.
func (ev *Evaluator) Evaluate() error {
	if !ev.compiled {
		return ErrNotCompiled
	}

	var pair sph.Pair
	for bi := range ev.bindings {
		b := &ev.bindings[bi]
		n := b.dst.Len()

		if b.init != nil {
			for i := 0; i < n; i++ {
				b.init.Initialize(i)
			}
		}

		half := b.eq.Symmetric() && b.sameGroup
		for i := 0; i < n; i++ {
			b.nbrs = b.finder.Neighbors(i, b.nbrs)
			for _, j := range b.nbrs {
				if half && j <= i {
					// Symmetric self-interaction walks each unordered
					// pair once; Loop applies the reaction to j.
					continue
				}
				b.computePair(ev.kernel, i, j, &pair)
				b.eq.Loop(i, j, &pair)
			}
		}

		if b.post != nil {
			for i := 0; i < n; i++ {
				b.post.PostLoop(i)
			}
		}
	}
	return nil
}

func (b *binding) computePair(k kernels.Kernel, i, j int, p *sph.Pair) {
	p.XIJ[0] = b.dx[i] - b.sx[j]
	p.XIJ[1] = b.dy[i] - b.sy[j]
	p.XIJ[2] = b.dz[i] - b.sz[j]

	p.VIJ[0] = b.du[i] - b.su[j]
	p.VIJ[1] = b.dv[i] - b.sv[j]
	p.VIJ[2] = b.dw[i] - b.sw[j]

	p.R2IJ = p.XIJ[0]*p.XIJ[0] + p.XIJ[1]*p.XIJ[1] + p.XIJ[2]*p.XIJ[2]
	rij := math.Sqrt(p.R2IJ)

	p.HIJ = 0.5 * (b.dh[i] + b.sh[j])
	// Zero mean density divides to Inf here; the simulator's validation
	// sweep catches it, per the error taxonomy.
	p.RHOIJ1 = 1.0 / (0.5 * (b.drho[i] + b.srho[j]))

	p.WIJ = k.Value(rij, p.HIJ)
	p.DWIJ = k.Gradient(p.XIJ, rij, p.HIJ)
	p.DTAdapt = 0
}
