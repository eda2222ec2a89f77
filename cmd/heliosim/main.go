package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/helioslab/heliosim/internal/config"
	"github.com/helioslab/heliosim/internal/particle"
	"github.com/helioslab/heliosim/internal/solar"
	"github.com/helioslab/heliosim/internal/viz"
)

var (
	configFile string
	preset     string
	particles  int
	seed       int64
	timeScale  float64
	frameRate  int
	frames     int
	dt         float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "heliosim",
		Short: "interstellar particle flux simulator",
		RunE:  runLive,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().IntVar(&particles, "particles", config.DefaultMaxParticles, "population size")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	rootCmd.PersistentFlags().Float64Var(&timeScale, "timescale", config.DefaultTimeScale, "simulation time multiplier")
	rootCmd.PersistentFlags().IntVar(&frameRate, "fps", config.DefaultFrameRate, "frames per second (live view)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive live view",
		RunE:  runLive,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "headless run with final statistics",
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&frames, "frames", 600, "number of frames to simulate")
	runCmd.Flags().Float64Var(&dt, "dt", 1.0/30, "frame delta time in seconds")

	planetsCmd := &cobra.Command{
		Use:   "planets",
		Short: "list the solar catalog",
		RunE:  listPlanets,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named presets",
		Run: func(cmd *cobra.Command, args []string) {
			names := config.ListPresets()
			sort.Strings(names)
			for _, name := range names {
				p := config.GetPreset(name)
				fmt.Printf("%-10s %d particles, %.1fx time\n", name, p.MaxParticles, p.TimeScale)
			}
		},
	}

	rootCmd.AddCommand(liveCmd, runCmd, planetsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveConfig layers preset < config file < explicit flags.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q", preset)
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("particles") {
		cfg.MaxParticles = particles
	}
	if flags.Changed("timescale") {
		cfg.TimeScale = timeScale
	}
	if flags.Changed("fps") {
		cfg.FrameRate = frameRate
	}
	if flags.Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}
	return cfg, nil
}

func newSystem(cfg *config.Config) (*particle.System, *solar.System) {
	catalog := solar.New()
	sim := particle.New(catalog, cfg.MaxParticles, cfg.Seed)
	sim.SetTimeScale(cfg.TimeScale)
	return sim, catalog
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	sim, catalog := newSystem(cfg)
	p := tea.NewProgram(viz.NewModel(sim, catalog, cfg.FrameRate), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", frames)
	}
	if dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", dt)
	}

	sim, _ := newSystem(cfg)

	speedHistory := make([]float64, 0, frames)
	start := time.Now()
	for i := 0; i < frames; i++ {
		sim.Update(dt)
		speedHistory = append(speedHistory, sim.Statistics().MeanSpeed)
	}
	elapsed := time.Since(start)

	st := sim.Statistics()

	fmt.Printf("simulated %d frames (%.1fs of flow) in %v\n\n",
		frames, float64(frames)*dt*cfg.TimeScale, elapsed.Round(time.Millisecond))

	if len(speedHistory) > 1 {
		fmt.Println(asciigraph.Plot(speedHistory,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("mean speed of active particles")))
		fmt.Println()
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "total\t%d\n", st.Total)
	fmt.Fprintf(w, "active\t%d\n", st.Active)
	fmt.Fprintf(w, "removed\t%d\n", st.Captured)
	fmt.Fprintf(w, "deflected\t%d\n", st.Deflected)
	fmt.Fprintf(w, "mean speed\t%.3f\n", st.MeanSpeed)
	fmt.Fprintf(w, "hydrogen\t%d\n", st.Types.Hydrogen)
	fmt.Fprintf(w, "helium\t%d\n", st.Types.Helium)
	fmt.Fprintf(w, "heavy ions\t%d\n", st.Types.Ions)
	fmt.Fprintf(w, "dust\t%d\n", st.Types.Dust)
	fmt.Fprintf(w, "energy low/med/high\t%d/%d/%d\n", st.Energy.Low, st.Energy.Medium, st.Energy.High)
	return w.Flush()
}

func listPlanets(cmd *cobra.Command, args []string) error {
	catalog := solar.New()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDISTANCE\tRADIUS\tMASS")
	for _, p := range catalog.Planets() {
		fmt.Fprintf(w, "%s\t%.1f\t%.1f\t%.3f\n", p.Name, p.Position.Length(), p.Radius, p.Mass)
	}
	return w.Flush()
}
