// Package metrics provides aggregate sanity monitors for simulation runs.
// The equations never trap numerical trouble themselves; these observers
// are how the engine notices drifting conservation sums.
package metrics

import (
	"math"

	"github.com/san-kum/sphlab/internal/parray"
)

// MeanDensity averages the fluid density over the whole run.
type MeanDensity struct {
	total   float64
	samples int
}

func NewMeanDensity() *MeanDensity { return &MeanDensity{} }

func (m *MeanDensity) Name() string { return "mean_density" }

func (m *MeanDensity) Observe(a *parray.Array, t float64) {
	rho, err := a.Field(parray.FieldRho)
	if err != nil {
		return
	}
	sum := 0.0
	for _, v := range rho {
		sum += v
	}
	m.total += sum / float64(len(rho))
	m.samples++
}

func (m *MeanDensity) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *MeanDensity) Reset() {
	m.total = 0
	m.samples = 0
}

// MomentumDrift tracks the largest deviation of total momentum magnitude
// from its first observation. Gravity feeds momentum in, so this is only a
// conservation check for force-free setups; elsewhere it is a growth
// monitor.
type MomentumDrift struct {
	initial  float64
	maxDrift float64
	primed   bool
}

func NewMomentumDrift() *MomentumDrift { return &MomentumDrift{} }

func (m *MomentumDrift) Name() string { return "momentum_drift" }

func (m *MomentumDrift) Observe(a *parray.Array, t float64) {
	mass, err := a.Field(parray.FieldM)
	if err != nil {
		return
	}
	u, err := a.Field(parray.FieldU)
	if err != nil {
		return
	}
	v, err := a.Field(parray.FieldV)
	if err != nil {
		return
	}

	var px, py float64
	for i := range mass {
		px += mass[i] * u[i]
		py += mass[i] * v[i]
	}
	p := math.Sqrt(px*px + py*py)

	if !m.primed {
		m.initial = p
		m.primed = true
		return
	}
	if drift := math.Abs(p - m.initial); drift > m.maxDrift {
		m.maxDrift = drift
	}
}

func (m *MomentumDrift) Value() float64 { return m.maxDrift }

func (m *MomentumDrift) Reset() {
	m.initial = 0
	m.maxDrift = 0
	m.primed = false
}

// MassRateBalance tracks the worst mass-weighted density-rate residual
// sum_i m_i/rho_i * arho_i. With symmetric continuity every pair cancels
// in the plain sum sum_i arho_i for equal masses; this weighted form stays
// near zero for uniform lattices and grows when accumulation goes wrong.
type MassRateBalance struct {
	worst float64
}

func NewMassRateBalance() *MassRateBalance { return &MassRateBalance{} }

func (m *MassRateBalance) Name() string { return "mass_rate_balance" }

func (m *MassRateBalance) Observe(a *parray.Array, t float64) {
	mass, err := a.Field(parray.FieldM)
	if err != nil {
		return
	}
	rho, err := a.Field(parray.FieldRho)
	if err != nil {
		return
	}
	arho, err := a.Field(parray.FieldArho)
	if err != nil {
		return
	}

	sum := 0.0
	for i := range mass {
		if rho[i] == 0 {
			continue
		}
		sum += mass[i] / rho[i] * arho[i]
	}
	if r := math.Abs(sum); r > m.worst {
		m.worst = r
	}
}

func (m *MassRateBalance) Value() float64 { return m.worst }

func (m *MassRateBalance) Reset() { m.worst = 0 }
