package nnps

import (
	"testing"

	"github.com/san-kum/sphlab/internal/parray"
)

func lattice(t *testing.T, xs, ys []float64, h float64) *parray.Array {
	t.Helper()
	a := parray.New("fluid", len(xs), parray.FieldX, parray.FieldY, parray.FieldZ, parray.FieldH)
	if err := a.Set(parray.FieldX, xs); err != nil {
		t.Fatal(err)
	}
	if err := a.Set(parray.FieldY, ys); err != nil {
		t.Fatal(err)
	}
	if err := a.Fill(parray.FieldH, h); err != nil {
		t.Fatal(err)
	}
	return a
}

func TestBruteForceCutoff(t *testing.T) {
	// Particles on a line at x = 0, 1, 2, 5.
	a := lattice(t, []float64{0, 1, 2, 5}, []float64{0, 0, 0, 0}, 0.6)

	f := NewBruteForce(2.0)
	if err := f.Bind(a, a); err != nil {
		t.Fatalf("bind: %v", err)
	}

	// Cutoff is 2.0 * 0.6 = 1.2, so particle 0 sees itself and particle 1.
	nbrs := f.Neighbors(0, nil)
	want := []int{0, 1}
	if len(nbrs) != len(want) {
		t.Fatalf("got %v, expected %v", nbrs, want)
	}
	for k := range want {
		if nbrs[k] != want[k] {
			t.Fatalf("got %v, expected %v", nbrs, want)
		}
	}
}

func TestBruteForceIncludesSelf(t *testing.T) {
	a := lattice(t, []float64{0, 10}, []float64{0, 0}, 0.5)

	f := NewBruteForce(2.0)
	if err := f.Bind(a, a); err != nil {
		t.Fatalf("bind: %v", err)
	}

	nbrs := f.Neighbors(1, nil)
	if len(nbrs) != 1 || nbrs[0] != 1 {
		t.Errorf("isolated particle should see only itself, got %v", nbrs)
	}
}

func TestBruteForceReusesSlice(t *testing.T) {
	a := lattice(t, []float64{0, 0.1, 0.2}, []float64{0, 0, 0}, 1.0)

	f := NewBruteForce(2.0)
	if err := f.Bind(a, a); err != nil {
		t.Fatalf("bind: %v", err)
	}

	buf := make([]int, 0, 8)
	n1 := f.Neighbors(0, buf)
	n2 := f.Neighbors(1, n1)
	if cap(n2) != cap(buf) {
		t.Error("expected the caller's buffer to be reused")
	}
}

func TestBruteForceMissingField(t *testing.T) {
	a := parray.New("fluid", 2, parray.FieldX, parray.FieldY)

	f := NewBruteForce(2.0)
	if err := f.Bind(a, a); err == nil {
		t.Error("expected bind error for an array without z/h")
	}
}
