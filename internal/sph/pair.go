package sph

// Pair carries the geometric quantities of one (destination, source)
// particle pair. The engine recomputes it fresh for every pair; equations
// treat it as read-only.
type Pair struct {
	WIJ  float64    // kernel value W(|xij|, hij)
	DWIJ [3]float64 // kernel gradient taken at the destination

	VIJ [3]float64 // v_dest - v_source
	XIJ [3]float64 // x_dest - x_source

	HIJ    float64 // mean smoothing length 0.5*(h_i + h_j)
	R2IJ   float64 // squared pair distance |XIJ|^2
	RHOIJ1 float64 // inverse mean density 1/(0.5*(rho_i + rho_j))

	DTAdapt float64 // adaptive-timestep hint, unused by the basic equations
}

// Dot3 is the dot product of two pair vectors.
func Dot3(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}
