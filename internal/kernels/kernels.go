// Package kernels provides the smoothing kernels that supply WIJ and DWIJ
// to the pairwise equations.
package kernels

import "math"

// Kernel evaluates a smoothing function and its gradient for a particle
// pair. Radius is the compact-support extent as a multiple of the
// smoothing length; neighbor search uses it as the interaction cutoff.
type Kernel interface {
	Value(rij, hij float64) float64
	Gradient(xij [3]float64, rij, hij float64) [3]float64
	Radius() float64
}

// CubicSpline is the standard M4 B-spline kernel with 3-D normalization
// 1/(pi h^3) and support radius 2h.
type CubicSpline struct{}

func NewCubicSpline() CubicSpline { return CubicSpline{} }

func (CubicSpline) Radius() float64 { return 2.0 }

func (CubicSpline) Value(rij, hij float64) float64 {
	sigma := 1.0 / (math.Pi * hij * hij * hij)
	q := rij / hij
	switch {
	case q <= 1.0:
		return sigma * (1.0 - 1.5*q*q + 0.75*q*q*q)
	case q <= 2.0:
		d := 2.0 - q
		return sigma * 0.25 * d * d * d
	default:
		return 0
	}
}

func (k CubicSpline) Gradient(xij [3]float64, rij, hij float64) [3]float64 {
	var grad [3]float64
	if rij < 1e-12 {
		return grad
	}
	sigma := 1.0 / (math.Pi * hij * hij * hij)
	q := rij / hij

	var dwdr float64
	switch {
	case q <= 1.0:
		dwdr = sigma / hij * (-3.0*q + 2.25*q*q)
	case q <= 2.0:
		d := 2.0 - q
		dwdr = -sigma / hij * 0.75 * d * d
	default:
		return grad
	}

	// dW/dx_a = dW/dr * xij/r with xij = x_a - x_b
	f := dwdr / rij
	grad[0] = f * xij[0]
	grad[1] = f * xij[1]
	grad[2] = f * xij[2]
	return grad
}

// Gaussian is exp(-q^2) with 3-D normalization, truncated at 3h.
type Gaussian struct{}

func NewGaussian() Gaussian { return Gaussian{} }

func (Gaussian) Radius() float64 { return 3.0 }

func (Gaussian) Value(rij, hij float64) float64 {
	q := rij / hij
	if q > 3.0 {
		return 0
	}
	sigma := 1.0 / (math.Pow(math.Pi, 1.5) * hij * hij * hij)
	return sigma * math.Exp(-q*q)
}

func (k Gaussian) Gradient(xij [3]float64, rij, hij float64) [3]float64 {
	var grad [3]float64
	if rij < 1e-12 {
		return grad
	}
	q := rij / hij
	if q > 3.0 {
		return grad
	}
	dwdr := -2.0 * q / hij * k.Value(rij, hij)

	f := dwdr / rij
	grad[0] = f * xij[0]
	grad[1] = f * xij[1]
	grad[2] = f * xij[2]
	return grad
}

// Named returns the kernel registered under name, defaulting to the cubic
// spline for unknown names.
func Named(name string) Kernel {
	switch name {
	case "gaussian":
		return NewGaussian()
	default:
		return NewCubicSpline()
	}
}
