package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt       = 2e-4
	DefaultDuration = 0.5
	DefaultRho0     = 1000.0
	DefaultC0       = 10.0
	DefaultSpacing  = 0.05
	DefaultHFactor  = 1.2
	DefaultAlpha    = 1.0
	DefaultBeta     = 1.0
	DefaultEta      = 0.1
	DefaultEps      = 0.5
	DefaultGravity  = -9.81
)

type Config struct {
	Scene     string          `yaml:"scene"`
	Kernel    string          `yaml:"kernel"`
	Dt        float64         `yaml:"dt"`
	Duration  float64         `yaml:"duration"`
	Seed      int64           `yaml:"seed"`
	Fluid     FluidConfig     `yaml:"fluid"`
	Equations EquationsConfig `yaml:"equations"`
}

type FluidConfig struct {
	Nx      int     `yaml:"nx"`
	Ny      int     `yaml:"ny"`
	Spacing float64 `yaml:"spacing"`
	Rho0    float64 `yaml:"rho0"`
	C0      float64 `yaml:"c0"`
	HFactor float64 `yaml:"h_factor"`
	Jitter  float64 `yaml:"jitter"`
}

type EquationsConfig struct {
	SummationDensity bool             `yaml:"summation_density"`
	Continuity       ContinuityConfig `yaml:"continuity"`
	EOS              EOSConfig        `yaml:"eos"`
	Viscosity        ViscosityConfig  `yaml:"viscosity"`
	BodyForce        BodyForceConfig  `yaml:"body_force"`
	XSPH             XSPHConfig       `yaml:"xsph"`
}

type ContinuityConfig struct {
	Enabled   bool `yaml:"enabled"`
	Symmetric bool `yaml:"symmetric"`
}

type EOSConfig struct {
	Enabled bool    `yaml:"enabled"`
	Rho0    float64 `yaml:"rho0"`
	C0      float64 `yaml:"c0"`
}

type ViscosityConfig struct {
	Enabled bool    `yaml:"enabled"`
	Alpha   float64 `yaml:"alpha"`
	Beta    float64 `yaml:"beta"`
	Eta     float64 `yaml:"eta"`
}

type BodyForceConfig struct {
	Enabled bool    `yaml:"enabled"`
	Fx      float64 `yaml:"fx"`
	Fy      float64 `yaml:"fy"`
	Fz      float64 `yaml:"fz"`
}

type XSPHConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Symmetric bool    `yaml:"symmetric"`
	Eps       float64 `yaml:"eps"`
}

func DefaultConfig() *Config {
	return &Config{
		Scene:    "dam_break",
		Kernel:   "cubic",
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		Fluid: FluidConfig{
			Nx:      20,
			Ny:      40,
			Spacing: DefaultSpacing,
			Rho0:    DefaultRho0,
			C0:      DefaultC0,
			HFactor: DefaultHFactor,
			Jitter:  0.05,
		},
		Equations: EquationsConfig{
			Continuity: ContinuityConfig{Enabled: true, Symmetric: true},
			EOS:        EOSConfig{Enabled: true, Rho0: DefaultRho0, C0: DefaultC0},
			Viscosity:  ViscosityConfig{Enabled: true, Alpha: DefaultAlpha, Beta: DefaultBeta, Eta: DefaultEta},
			BodyForce:  BodyForceConfig{Enabled: true, Fy: DefaultGravity},
			XSPH:       XSPHConfig{Enabled: true, Eps: DefaultEps},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
