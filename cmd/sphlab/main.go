package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/sphlab/internal/config"
	"github.com/san-kum/sphlab/internal/engine"
	"github.com/san-kum/sphlab/internal/metrics"
	"github.com/san-kum/sphlab/internal/storage"
	"github.com/san-kum/sphlab/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	dt         float64
	duration   float64
	seed       int64
	kernelName string
	nx, ny     int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sphlab",
		Short: "smoothed particle hydrodynamics lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".sphlab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [scene]",
		Short: "run a simulation headless and store the result",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSimulation,
	}
	addSceneFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live [scene]",
		Short: "watch a simulation in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addSceneFlags(liveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [scene]",
		Short: "list available presets for a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for scene: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSceneFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().StringVar(&kernelName, "kernel", "cubic", "smoothing kernel")
	cmd.Flags().IntVar(&nx, "nx", 20, "block width in particles")
	cmd.Flags().IntVar(&ny, "ny", 40, "block height in particles")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// buildConfig resolves precedence: defaults, then preset, then config
// file, then explicit flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	scene := "dam_break"
	if len(args) > 0 {
		scene = args[0]
	}

	cfg := config.DefaultConfig()
	cfg.Scene = scene

	if preset != "" {
		p := config.GetPreset(scene, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(scene))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("kernel") {
		cfg.Kernel = kernelName
	}
	if cmd.Flags().Changed("nx") {
		cfg.Fluid.Nx = nx
	}
	if cmd.Flags().Changed("ny") {
		cfg.Fluid.Ny = ny
	}
	if cmd.Flags().Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}

	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	sim, err := engine.FromConfig(cfg)
	if err != nil {
		return err
	}
	sim.AddMetric(metrics.NewMeanDensity())
	sim.AddMetric(metrics.NewMomentumDrift())
	sim.AddMetric(metrics.NewMassRateBalance())

	runCfg := engine.Config{
		Dt:            cfg.Dt,
		Duration:      cfg.Duration,
		ValidateState: true,
		SnapshotEvery: 20,
	}

	start := time.Now()
	result, runErr := sim.Run(context.Background(), runCfg)
	elapsed := time.Since(start)

	runID, err := st.Save(cfg.Scene, cfg.Kernel, cfg.Dt, cfg.Duration, cfg.Seed, sim.Fluid().Len(), result)
	if err != nil {
		return err
	}

	fmt.Printf("run %s: %d particles, %d steps in %v\n",
		runID, sim.Fluid().Len(), result.StepsTaken, elapsed.Round(time.Millisecond))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "metric\tvalue")
	for name, val := range result.Metrics {
		fmt.Fprintf(w, "%s\t%.6g\n", name, val)
	}
	w.Flush()

	if graph := heightGraph(result); graph != "" {
		fmt.Println()
		fmt.Println(graph)
	}

	if runErr != nil {
		return fmt.Errorf("simulation stopped early: %w", runErr)
	}
	return nil
}

// heightGraph plots the fluid's center-of-mass height over the recorded
// frames; the dam-break collapse shows up as a falling curve.
func heightGraph(result *engine.Result) string {
	if len(result.Frames) < 3 {
		return ""
	}
	series := make([]float64, 0, len(result.Frames))
	for _, f := range result.Frames {
		sum := 0.0
		for _, y := range f.Y {
			sum += y
		}
		series = append(series, sum/float64(len(f.Y)))
	}
	return asciigraph.Plot(series,
		asciigraph.Height(10), asciigraph.Width(60),
		asciigraph.Caption("center-of-mass height"))
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	return viz.Run(cfg.Scene, cfg.Dt, func() (*engine.Simulator, error) {
		return engine.FromConfig(cfg)
	})
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs stored")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "id\tscene\tkernel\tparticles\tdt\tduration\twhen")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.1e\t%.3f\t%s\n",
			r.ID, r.Scene, r.Kernel, r.Particles, r.Dt, r.Duration,
			r.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}
