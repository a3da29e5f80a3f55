// Package equations implements the basic SPH interaction formulas:
// summation density, body force, 2-D velocity gradient, isothermal EOS,
// continuity, Monaghan artificial viscosity, and XSPH correction.
//
// Each equation satisfies [sph.Equation] and, where it accumulates,
// [sph.Initializer]. Known quirks of the classic formulations are kept
// as-is and pinned by tests rather than corrected; see the per-equation
// comments.
package equations
