package engine

import (
	"context"
	"math"

	"github.com/san-kum/sphlab/internal/parray"
)

// Metric observes the fluid array once per step.
type Metric interface {
	Name() string
	Observe(a *parray.Array, t float64)
	Value() float64
	Reset()
}

// Config controls a simulation run.
type Config struct {
	Dt            float64
	Duration      float64
	ValidateState bool
	SnapshotEvery int // steps between recorded frames, 0 disables
}

func DefaultConfig() Config {
	return Config{
		Dt:            1e-4,
		Duration:      0.1,
		ValidateState: true,
		SnapshotEvery: 10,
	}
}

// Frame is a recorded particle snapshot.
type Frame struct {
	T    float64
	X, Y []float64
}

// Result collects the outcome of a run.
type Result struct {
	Times      []float64
	Frames     []Frame
	Metrics    map[string]float64
	StepsTaken int
}

// Simulator steps one fluid group: evaluate, observe, validate, integrate.
type Simulator struct {
	ev      *Evaluator
	integ   Integrator
	fluid   *parray.Array
	metrics []Metric

	step int
	t    float64
}

func NewSimulator(ev *Evaluator, integ Integrator, fluid *parray.Array) *Simulator {
	return &Simulator{ev: ev, integ: integ, fluid: fluid}
}

func (s *Simulator) AddMetric(m Metric) { s.metrics = append(s.metrics, m) }

func (s *Simulator) Fluid() *parray.Array { return s.fluid }
func (s *Simulator) Time() float64        { return s.t }

// Step advances one timestep. Validation failures come back as
// *SimulationError wrapping ErrInvalidState.
func (s *Simulator) Step(dt float64, validate bool) error {
	if err := s.ev.Evaluate(); err != nil {
		return err
	}

	for _, m := range s.metrics {
		m.Observe(s.fluid, s.t)
	}

	if validate && !s.stateFinite() {
		return &SimulationError{Step: s.step, Time: s.t, Wrapped: ErrInvalidState}
	}

	if err := s.integ.Step(s.fluid, dt); err != nil {
		return err
	}

	s.step++
	s.t += dt
	return nil
}

// Run executes a full simulation, honoring ctx cancellation. The partial
// result is returned alongside any error.
func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		Times:   make([]float64, 0, steps),
		Metrics: make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			s.collect(result)
			return result, ctx.Err()
		default:
		}

		if err := s.Step(cfg.Dt, cfg.ValidateState); err != nil {
			s.collect(result)
			return result, err
		}

		result.Times = append(result.Times, s.t)
		if cfg.SnapshotEvery > 0 && i%cfg.SnapshotEvery == 0 {
			result.Frames = append(result.Frames, s.snapshot())
		}
	}

	s.collect(result)
	return result, nil
}

func (s *Simulator) collect(result *Result) {
	result.StepsTaken = s.step
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

func (s *Simulator) snapshot() Frame {
	x, _ := s.fluid.Field(parray.FieldX)
	y, _ := s.fluid.Field(parray.FieldY)
	f := Frame{
		T: s.t,
		X: make([]float64, len(x)),
		Y: make([]float64, len(y)),
	}
	copy(f.X, x)
	copy(f.Y, y)
	return f
}

func (s *Simulator) stateFinite() bool {
	for _, name := range []string{
		parray.FieldRho, parray.FieldP,
		parray.FieldU, parray.FieldV, parray.FieldW,
		parray.FieldAu, parray.FieldAv, parray.FieldAw,
	} {
		field, err := s.fluid.Field(name)
		if err != nil {
			continue
		}
		for _, v := range field {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}
