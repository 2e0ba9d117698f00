package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nkoval/eulersim/internal/config"
	"github.com/nkoval/eulersim/internal/errstat"
	"github.com/nkoval/eulersim/internal/ode"
	"github.com/nkoval/eulersim/internal/storage"
	"github.com/nkoval/eulersim/internal/sweep"
	"github.com/nkoval/eulersim/internal/viz"
)

var (
	dataDir    string
	aParam     float64
	x0         float64
	tMin       float64
	tMax       float64
	step       float64
	steps      []float64
	configFile string
	preset     string
	frameRate  int
	parallel   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "eulersim",
		Short: "explicit euler integration lab for dx/dt = -A*x",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the live view when no subcommand is given
			return runLive(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".eulersim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "integrate once at a single step size",
		RunE:  runSimulation,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "compare error and timing across step sizes",
		RunE:  runSweep,
	}
	sweepCmd.Flags().BoolVar(&parallel, "parallel", false, "run step sizes concurrently")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a stored run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportJSON(args[0], os.Stdout)
		},
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a stored run as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).CopyCSV(args[0], os.Stdout)
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animated decay view",
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named parameter sets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "name\ta\tx0\trange\tstep\tsweep")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%g\t%g\t[%g, %g]\t%g\t%v\n",
					name, p.A, p.X0, p.TMin, p.TMax, p.Step, p.Steps)
			}
			return w.Flush()
		},
	}

	for _, cmd := range []*cobra.Command{rootCmd, runCmd, sweepCmd, liveCmd} {
		cmd.Flags().Float64Var(&aParam, "a", config.DefaultA, "decay constant")
		cmd.Flags().Float64Var(&x0, "x0", config.DefaultX0, "initial condition")
		cmd.Flags().Float64Var(&tMin, "tmin", config.DefaultTMin, "start time")
		cmd.Flags().Float64Var(&tMax, "tmax", config.DefaultTMax, "end time")
		cmd.Flags().Float64Var(&step, "step", config.DefaultStep, "step size h")
		cmd.Flags().Float64SliceVar(&steps, "steps", nil, "step sizes for sweep")
		cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
		cmd.Flags().StringVar(&preset, "preset", "", "use preset parameters")
	}
	rootCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	rootCmd.AddCommand(runCmd, sweepCmd, listCmd, plotCmd, exportJSONCmd, exportCSVCmd, liveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig layers parameter sources: preset, then config file, then any
// explicitly set CLI flags.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
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

	if cmd.Flags().Changed("a") {
		cfg.A = aParam
	}
	if cmd.Flags().Changed("x0") {
		cfg.X0 = x0
	}
	if cmd.Flags().Changed("tmin") {
		cfg.TMin = tMin
	}
	if cmd.Flags().Changed("tmax") {
		cfg.TMax = tMax
	}
	if cmd.Flags().Changed("step") {
		cfg.Step = step
	}
	if cmd.Flags().Changed("steps") {
		cfg.Steps = steps
	}

	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	runCfg := cfg.RunConfig()
	model := ode.FromConfig(runCfg)
	runner := sweep.New(model, runCfg)

	res, point, err := runner.RunOne(context.Background(), cfg.Step)
	if err != nil {
		return err
	}

	if cfg.Step >= model.StabilityLimit() {
		fmt.Printf("warning: h=%g is at or beyond the stability limit 1/A=%g; expect oscillation\n\n",
			cfg.Step, model.StabilityLimit())
	}

	maxDev := errstat.NewMaxDeviation()
	flips := errstat.NewSignFlips()
	errstat.Apply(res, model, maxDev, flips)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "h\t%g\n", point.H)
	fmt.Fprintf(w, "grid points\t%d\n", len(res.Times))
	fmt.Fprintf(w, "rms error\t%.6e\n", point.Summary.RMS)
	fmt.Fprintf(w, "rms percent\t%.4f%%\n", point.Summary.RMSPercent)
	fmt.Fprintf(w, "max deviation\t%.6e\n", maxDev.Value())
	fmt.Fprintf(w, "sign flips\t%.0f\n", flips.Value())
	fmt.Fprintf(w, "loop time\t%v\n", point.Elapsed)
	if err := w.Flush(); err != nil {
		return err
	}

	exact := make([]float64, len(res.Times))
	for i, t := range res.Times {
		exact[i] = model.At(t)
	}
	fmt.Println()
	fmt.Println(viz.TrajectoryPlot(res.Values, exact, point.H))

	runID, err := st.Save(runCfg, res, point.Summary, model)
	if err != nil {
		return err
	}
	fmt.Printf("\nrun id: %s\n", runID)

	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if len(cfg.Steps) == 0 {
		return fmt.Errorf("no step sizes configured; set --steps or a config file")
	}

	runCfg := cfg.RunConfig()
	model := ode.FromConfig(runCfg)
	runner := sweep.New(model, runCfg)

	var points []sweep.Point
	if parallel {
		points, err = sweep.NewEnsemble(runner).Run(context.Background(), cfg.Steps)
	} else {
		points, err = runner.Run(context.Background(), cfg.Steps)
	}
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "h\tsteps\trms error\trms percent\tloop time")
	for _, p := range points {
		fmt.Fprintf(w, "%g\t%d\t%.6e\t%.4f%%\t%v\n",
			p.H, p.Steps, p.Summary.RMS, p.Summary.RMSPercent, p.Elapsed)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	hs := make([]float64, len(points))
	rmsPct := make([]float64, len(points))
	for i, p := range points {
		hs[i] = p.H
		rmsPct[i] = p.Summary.RMSPercent
	}
	fmt.Println()
	fmt.Println(viz.ConvergencePlot(hs, rmsPct))

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "id\ta\tx0\trange\th\tpoints\trms percent")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%g\t%g\t[%g, %g]\t%g\t%d\t%.4f%%\n",
			r.ID, r.A, r.X0, r.TMin, r.TMax, r.Step, r.Points, r.Metrics["rms_percent"])
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	_, values, exact, err := st.Trajectory(args[0])
	if err != nil {
		return err
	}

	fmt.Println(viz.TrajectoryPlot(values, exact, meta.Step))
	fmt.Println()
	fmt.Println(viz.ErrorPlot(values, exact))
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	runCfg := cfg.RunConfig()
	return viz.RunLive(ode.FromConfig(runCfg), runCfg, cfg.Step, frameRate)
}
