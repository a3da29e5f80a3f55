package config

var Presets = map[string]map[string]*Config{
	"dam_break": {
		"small": {
			Scene: "dam_break", Kernel: "cubic", Dt: 2e-4, Duration: 0.25,
			Fluid: FluidConfig{Nx: 10, Ny: 20, Spacing: 0.05, Rho0: 1000, C0: 10, HFactor: 1.2, Jitter: 0.05},
			Equations: EquationsConfig{
				Continuity: ContinuityConfig{Enabled: true, Symmetric: true},
				EOS:        EOSConfig{Enabled: true, Rho0: 1000, C0: 10},
				Viscosity:  ViscosityConfig{Enabled: true, Alpha: 1.0, Beta: 1.0, Eta: 0.1},
				BodyForce:  BodyForceConfig{Enabled: true, Fy: -9.81},
				XSPH:       XSPHConfig{Enabled: true, Eps: 0.5},
			},
		},
		"tall": {
			Scene: "dam_break", Kernel: "cubic", Dt: 1e-4, Duration: 0.5,
			Fluid: FluidConfig{Nx: 15, Ny: 60, Spacing: 0.04, Rho0: 1000, C0: 15, HFactor: 1.2, Jitter: 0.05},
			Equations: EquationsConfig{
				Continuity: ContinuityConfig{Enabled: true, Symmetric: true},
				EOS:        EOSConfig{Enabled: true, Rho0: 1000, C0: 15},
				Viscosity:  ViscosityConfig{Enabled: true, Alpha: 1.0, Beta: 1.0, Eta: 0.1},
				BodyForce:  BodyForceConfig{Enabled: true, Fy: -9.81},
				XSPH:       XSPHConfig{Enabled: true, Eps: 0.5},
			},
		},
		"inviscid": {
			Scene: "dam_break", Kernel: "cubic", Dt: 2e-4, Duration: 0.25,
			Fluid: FluidConfig{Nx: 10, Ny: 20, Spacing: 0.05, Rho0: 1000, C0: 10, HFactor: 1.2, Jitter: 0.05},
			Equations: EquationsConfig{
				Continuity: ContinuityConfig{Enabled: true, Symmetric: true},
				EOS:        EOSConfig{Enabled: true, Rho0: 1000, C0: 10},
				BodyForce:  BodyForceConfig{Enabled: true, Fy: -9.81},
				XSPH:       XSPHConfig{Enabled: true, Eps: 0.5},
			},
		},
	},
	"still_water": {
		"settle": {
			Scene: "still_water", Kernel: "cubic", Dt: 2e-4, Duration: 0.5,
			Fluid: FluidConfig{Nx: 20, Ny: 20, Spacing: 0.05, Rho0: 1000, C0: 10, HFactor: 1.2},
			Equations: EquationsConfig{
				SummationDensity: true,
				EOS:              EOSConfig{Enabled: true, Rho0: 1000, C0: 10},
				Viscosity:        ViscosityConfig{Enabled: true, Alpha: 0.5, Beta: 0.0, Eta: 0.1},
				XSPH:             XSPHConfig{Enabled: true, Eps: 0.5},
			},
		},
		"gradient": {
			Scene: "still_water", Kernel: "gaussian", Dt: 2e-4, Duration: 0.1,
			Fluid: FluidConfig{Nx: 20, Ny: 20, Spacing: 0.05, Rho0: 1000, C0: 10, HFactor: 1.2},
			Equations: EquationsConfig{
				SummationDensity: true,
				EOS:              EOSConfig{Enabled: true, Rho0: 1000, C0: 10},
			},
		},
	},
}

func GetPreset(scene, preset string) *Config {
	scenePresets, ok := Presets[scene]
	if !ok {
		return nil
	}
	cfg, ok := scenePresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(scene string) []string {
	scenePresets, ok := Presets[scene]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(scenePresets))
	for name := range scenePresets {
		names = append(names, name)
	}
	return names
}
