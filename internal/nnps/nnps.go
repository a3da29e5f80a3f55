// Package nnps locates the source particles within interaction range of a
// destination particle.
package nnps

import (
	"github.com/san-kum/sphlab/internal/parray"
)

// Finder produces candidate source indices for a destination particle.
// Bind resolves positions and smoothing lengths once; Neighbors appends
// into the caller's slice and returns it, so steady-state searches do not
// allocate.
type Finder interface {
	Bind(dst, src *parray.Array) error
	Neighbors(di int, out []int) []int
}

// BruteForce is an O(n^2) scan with cutoff RadiusScale * hij. Fine for the
// demo scenes; a cell-list finder can slot in behind the same interface
// when particle counts grow.
type BruteForce struct {
	RadiusScale float64

	dx, dy, dz, dh []float64
	sx, sy, sz, sh []float64
	n              int
}

func NewBruteForce(radiusScale float64) *BruteForce {
	return &BruteForce{RadiusScale: radiusScale}
}

func (f *BruteForce) Bind(dst, src *parray.Array) error {
	var err error
	if f.dx, err = dst.Field(parray.FieldX); err != nil {
		return err
	}
	if f.dy, err = dst.Field(parray.FieldY); err != nil {
		return err
	}
	if f.dz, err = dst.Field(parray.FieldZ); err != nil {
		return err
	}
	if f.dh, err = dst.Field(parray.FieldH); err != nil {
		return err
	}
	if f.sx, err = src.Field(parray.FieldX); err != nil {
		return err
	}
	if f.sy, err = src.Field(parray.FieldY); err != nil {
		return err
	}
	if f.sz, err = src.Field(parray.FieldZ); err != nil {
		return err
	}
	if f.sh, err = src.Field(parray.FieldH); err != nil {
		return err
	}
	f.n = src.Len()
	return nil
}

// Neighbors returns every source index within the cutoff, the destination
// particle itself included when destination and source share storage. The
// self pair carries the W(0) contribution that density summation needs.
func (f *BruteForce) Neighbors(di int, out []int) []int {
	out = out[:0]
	xi, yi, zi, hi := f.dx[di], f.dy[di], f.dz[di], f.dh[di]

	for j := 0; j < f.n; j++ {
		dx := xi - f.sx[j]
		dy := yi - f.sy[j]
		dz := zi - f.sz[j]
		r2 := dx*dx + dy*dy + dz*dz

		cutoff := f.RadiusScale * 0.5 * (hi + f.sh[j])
		if r2 <= cutoff*cutoff {
			out = append(out, j)
		}
	}
	return out
}
