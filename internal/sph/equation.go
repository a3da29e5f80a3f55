package sph

import (
	"github.com/san-kum/sphlab/internal/parray"
)

// Equation is one pairwise interaction formula. Parameters are fixed at
// construction; Bind resolves field slices once; Loop runs once per
// (destination, neighbor) pair.
type Equation interface {
	// Dest names the particle group this equation updates.
	Dest() string
	// Source names the particle group supplying neighbors. Dest and Source
	// may name the same group.
	Source() string
	// Symmetric reports whether Loop also applies the reaction contribution
	// to the source particle.
	Symmetric() bool

	// Bind resolves every destination and source field the equation touches.
	// Called once per setup, before any stage runs.
	Bind(dst, src *parray.Array) error

	// Loop accumulates the source particle si's contribution into the
	// destination particle di.
	Loop(di, si int, p *Pair)
}

// Initializer is the optional per-destination reset stage. Equations that
// accumulate must reset their accumulators here; the engine sweeps all
// destination particles before any Loop call.
type Initializer interface {
	Initialize(di int)
}

// PostLooper is the optional finishing stage, run once per destination
// particle after all of its neighbors are processed.
type PostLooper interface {
	PostLoop(di int)
}

// Base carries the group identifiers and the symmetric flag common to all
// equations. Embed it and set it with NewBase.
type Base struct {
	dest      string
	source    string
	symmetric bool
}

// NewBase builds the common equation header. An empty source defaults to
// the destination group (self-interaction).
func NewBase(dest, source string, symmetric bool) Base {
	if source == "" {
		source = dest
	}
	return Base{dest: dest, source: source, symmetric: symmetric}
}

func (b Base) Dest() string    { return b.dest }
func (b Base) Source() string  { return b.source }
func (b Base) Symmetric() bool { return b.symmetric }
