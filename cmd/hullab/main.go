package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/hullab/internal/analysis"
	"github.com/san-kum/hullab/internal/config"
	"github.com/san-kum/hullab/internal/export"
	"github.com/san-kum/hullab/internal/hull"
	"github.com/san-kum/hullab/internal/hydro"
	"github.com/san-kum/hullab/internal/optim"
	"github.com/san-kum/hullab/internal/sample"
	"github.com/san-kum/hullab/internal/surrogate"
	"github.com/san-kum/hullab/internal/tui"
)

var (
	lwl      float64
	beam     float64
	depth    float64
	hullType string
	deadrise float64

	bowType  string
	bowRake  float64
	bowFlare float64

	sternType        string
	transomImmersion float64
	prismatic        float64

	crew          float64
	cargo         float64
	ballastType   string
	ballastWeight float64
	ballastHeight float64
	fuel          float64
	water         float64

	engineHP   float64
	engineType string

	preset     string
	configFile string

	epochs     int
	batchSize  int
	lr         float64
	momentum   float64
	seed       int64
	resolution int
	metric     string
	samples    int

	vary     []string
	optSteps int
	minimize bool

	curveCSV bool
	gridCSV  bool
)

// main registers the hullab CLI. The bare command opens the interactive
// explorer; subcommands cover batch computation, surrogate training and
// design-space maps.
func main() {
	rootCmd := &cobra.Command{
		Use:   "hullab",
		Short: "trailerable boat hull design explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := paramsFrom(cmd)
			if err != nil {
				return err
			}
			return tui.Run(p)
		},
	}
	addDesignFlags(rootCmd)

	computeCmd := &cobra.Command{
		Use:   "compute",
		Short: "compute hydrostatics and performance for a design",
		RunE:  runCompute,
	}
	addDesignFlags(computeCmd)

	curveCmd := &cobra.Command{
		Use:   "curve",
		Short: "plot the resistance curve",
		RunE:  runCurve,
	}
	addDesignFlags(curveCmd)

	rightingCmd := &cobra.Command{
		Use:   "righting",
		Short: "plot the righting-arm curve",
		RunE:  runRighting,
	}
	addDesignFlags(rightingCmd)

	trainCmd := &cobra.Command{
		Use:   "train",
		Short: "sweep the design space and train the surrogate",
		RunE:  runTrain,
	}
	addTrainFlags(trainCmd)

	mapCmd := &cobra.Command{
		Use:   "map",
		Short: "render the design-space map for a metric",
		RunE:  runMap,
	}
	addDesignFlags(mapCmd)
	addTrainFlags(mapCmd)
	mapCmd.Flags().IntVar(&resolution, "res", 24, "grid resolution per axis")
	mapCmd.Flags().StringVar(&metric, "metric", "gm", "map metric (gm|hull_speed|draft)")
	mapCmd.Flags().BoolVar(&gridCSV, "csv", false, "write the grid as long-form CSV instead of rendering")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "export the training sweep as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			return export.WriteDatasetCSV(os.Stdout, sample.Sweep(sample.DefaultBounds()))
		},
	}

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "compare surrogate predictions against the engine",
		RunE:  runCompare,
	}
	addTrainFlags(compareCmd)
	compareCmd.Flags().IntVar(&samples, "samples", 8, "number of spot-check designs")

	optimizeCmd := &cobra.Command{
		Use:   "optimize",
		Short: "grid-search the design space for the best design",
		RunE:  runOptimize,
	}
	addDesignFlags(optimizeCmd)
	optimizeCmd.Flags().StringSliceVar(&vary, "vary", []string{"lwl", "beam"}, "parameters to search")
	optimizeCmd.Flags().IntVar(&optSteps, "steps", 8, "grid points per parameter")
	optimizeCmd.Flags().StringVar(&metric, "metric", "gm", "objective metric (gm|hull_speed|max_speed|draft)")
	optimizeCmd.Flags().BoolVar(&minimize, "minimize", false, "minimize the metric instead of maximizing")

	configCmd := &cobra.Command{
		Use:   "config [path]",
		Short: "write a starter config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "hullab.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Println("wrote", path)
			return nil
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named design presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets()
			sort.Strings(names)
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "export a computed design as JSON, or its resistance curve as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := paramsFrom(cmd)
			if err != nil {
				return err
			}
			r := hydro.Compute(p)
			if curveCSV {
				return export.WriteCurveCSV(os.Stdout, r.Resistance)
			}
			return export.WriteDesignJSON(os.Stdout, p, r)
		},
	}
	addDesignFlags(exportCmd)
	exportCmd.Flags().BoolVar(&curveCSV, "curve", false, "write the resistance curve as CSV instead of JSON")

	rootCmd.AddCommand(computeCmd, curveCmd, rightingCmd, trainCmd, mapCmd, sweepCmd, compareCmd, optimizeCmd, configCmd, presetsCmd, exportCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addDesignFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64Var(&lwl, "lwl", 5.8, "waterline length (m)")
	f.Float64Var(&beam, "beam", 2.1, "beam (m)")
	f.Float64Var(&depth, "depth", 0.9, "hull depth (m)")
	f.StringVar(&hullType, "hull-type", "single-chine", "hull type (flat-bottom|single-chine|multi-chine|round-bilge)")
	f.Float64Var(&deadrise, "deadrise", 12, "deadrise angle (deg)")
	f.StringVar(&bowType, "bow-type", "plumb", "bow type (plumb|raked|spoon|axe)")
	f.Float64Var(&bowRake, "bow-rake", 0, "bow rake (deg)")
	f.Float64Var(&bowFlare, "bow-flare", 10, "bow flare (deg)")
	f.StringVar(&sternType, "stern-type", "transom", "stern type (transom|canoe|double-ended)")
	f.Float64Var(&transomImmersion, "transom-immersion", 0.1, "transom immersion fraction")
	f.Float64Var(&prismatic, "prismatic", 0.58, "prismatic coefficient")
	f.Float64Var(&crew, "crew", 150, "crew weight (kg)")
	f.Float64Var(&cargo, "cargo", 50, "cargo weight (kg)")
	f.StringVar(&ballastType, "ballast-type", "none", "ballast type (none|internal|keel)")
	f.Float64Var(&ballastWeight, "ballast", 0, "ballast weight (kg)")
	f.Float64Var(&ballastHeight, "ballast-height", 0.1, "ballast height above keel (m)")
	f.Float64Var(&fuel, "fuel", 40, "fuel capacity (L)")
	f.Float64Var(&water, "water", 20, "water capacity (L)")
	f.Float64Var(&engineHP, "hp", 20, "engine horsepower")
	f.StringVar(&engineType, "engine-type", "outboard", "engine type (outboard|inboard|electric)")
	f.StringVar(&preset, "preset", "", "start from a named preset")
	f.StringVar(&configFile, "config", "", "config file path (yaml)")
}

func addTrainFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVar(&epochs, "epochs", 50, "training epochs")
	f.IntVar(&batchSize, "batch", 64, "batch size")
	f.Float64Var(&lr, "lr", 0.005, "learning rate")
	f.Float64Var(&momentum, "momentum", 0.9, "SGD momentum")
	f.Int64Var(&seed, "seed", 1, "init/shuffle seed")
}

// paramsFrom resolves the design in priority order: defaults, preset,
// config file, then any explicitly changed flags.
func paramsFrom(cmd *cobra.Command) (hull.Params, error) {
	p := hull.DefaultParams()

	if preset != "" {
		pp, ok := config.PresetParams(preset)
		if !ok {
			return p, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		p = pp
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return p, fmt.Errorf("failed to load config: %w", err)
		}
		p, err = cfg.Design.ToParams()
		if err != nil {
			return p, err
		}
	}

	fl := cmd.Flags()
	setF := func(name string, dst *float64, v float64) {
		if fl.Changed(name) {
			*dst = v
		}
	}
	setF("lwl", &p.LWL, lwl)
	setF("beam", &p.Beam, beam)
	setF("depth", &p.Depth, depth)
	setF("deadrise", &p.Deadrise, deadrise)
	setF("bow-rake", &p.BowRake, bowRake)
	setF("bow-flare", &p.BowFlare, bowFlare)
	setF("transom-immersion", &p.TransomImmersion, transomImmersion)
	setF("prismatic", &p.Prismatic, prismatic)
	setF("crew", &p.CrewWeight, crew)
	setF("cargo", &p.CargoWeight, cargo)
	setF("ballast", &p.BallastWeight, ballastWeight)
	setF("ballast-height", &p.BallastHeight, ballastHeight)
	setF("fuel", &p.FuelCapacity, fuel)
	setF("water", &p.WaterCapacity, water)
	setF("hp", &p.EngineHP, engineHP)

	d := config.FromParams(p)
	if fl.Changed("hull-type") {
		d.HullType = hullType
	}
	if fl.Changed("bow-type") {
		d.BowType = bowType
	}
	if fl.Changed("stern-type") {
		d.SternType = sternType
	}
	if fl.Changed("ballast-type") {
		d.BallastType = ballastType
	}
	if fl.Changed("engine-type") {
		d.EngineType = engineType
	}
	p, err := d.ToParams()
	if err != nil {
		return p, err
	}

	if err := hull.Validate(p); err != nil {
		return p, err
	}
	return p, nil
}

func runCompute(cmd *cobra.Command, args []string) error {
	p, err := paramsFrom(cmd)
	if err != nil {
		return err
	}
	r := hydro.Compute(p)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "displacement\t%.1f kg\n", r.Displacement)
	fmt.Fprintf(w, "draft\t%.4f m\n", r.Draft)
	fmt.Fprintf(w, "freeboard\t%.4f m\n", r.Freeboard)
	fmt.Fprintf(w, "KB\t%.4f m\n", r.KB)
	fmt.Fprintf(w, "BM\t%.4f m\n", r.BM)
	fmt.Fprintf(w, "KG\t%.4f m\n", r.KG)
	fmt.Fprintf(w, "GM\t%.4f m\t(%s)\n", r.GM, r.Rating)
	fmt.Fprintf(w, "effective LWL\t%.3f m\n", r.EffectiveLWL)
	fmt.Fprintf(w, "hull speed\t%.2f kn\n", r.HullSpeed)
	fmt.Fprintf(w, "froude number\t%.3f\n", r.Froude)
	if r.Planing {
		fmt.Fprintf(w, "max speed\t%.2f kn\t(planing)\n", r.MaxSpeed)
	} else {
		fmt.Fprintf(w, "max speed\t%.2f kn\t(displacement)\n", r.MaxSpeed)
	}
	return w.Flush()
}

func runCurve(cmd *cobra.Command, args []string) error {
	p, err := paramsFrom(cmd)
	if err != nil {
		return err
	}
	r := hydro.Compute(p)

	total := make([]float64, len(r.Resistance))
	power := make([]float64, len(r.Resistance))
	for i, pt := range r.Resistance {
		total[i] = pt.Total
		power[i] = pt.Power
	}

	fmt.Println(asciigraph.Plot(total,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("total resistance (N), 0 to %.1f kn", r.Resistance[len(r.Resistance)-1].SpeedKn)),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(power,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("required power (W)"),
	))
	return nil
}

func runRighting(cmd *cobra.Command, args []string) error {
	p, err := paramsFrom(cmd)
	if err != nil {
		return err
	}
	r := hydro.Compute(p)

	gz := make([]float64, len(r.Righting))
	for i, pt := range r.Righting {
		gz[i] = pt.GZ
	}
	fmt.Println(asciigraph.Plot(gz,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("righting arm GZ (m), heel 0-45 deg"),
	))
	return nil
}

func trainConfig() surrogate.TrainConfig {
	cfg := surrogate.DefaultTrainConfig()
	cfg.Epochs = epochs
	cfg.BatchSize = batchSize
	cfg.LR = lr
	cfg.Momentum = momentum
	cfg.Seed = seed
	return cfg
}

func trainSurrogate() (*surrogate.Context, *sample.Dataset, error) {
	ds, err := sample.SweepParallel(context.Background(), sample.DefaultBounds(), 0)
	if err != nil {
		return nil, nil, err
	}
	fmt.Printf("sweep: %d samples\n", ds.Len())

	trainer := surrogate.NewTrainer(trainConfig())
	ctx, err := trainer.Train(context.Background(), ds, func(pr surrogate.Progress) {
		fmt.Printf("\repoch %3d/%d  loss %.6f  val %.6f", pr.Epoch, pr.Epochs, pr.Loss, pr.ValLoss)
	})
	fmt.Println()
	if err != nil {
		return nil, nil, err
	}
	return ctx, ds, nil
}

func runTrain(cmd *cobra.Command, args []string) error {
	ctx, _, err := trainSurrogate()
	if err != nil {
		return err
	}

	// Spot check: surrogate vs engine on the default design.
	p := hull.DefaultParams()
	pred, err := surrogate.Predict(ctx, p)
	if err != nil {
		return err
	}
	r := hydro.Compute(p)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tENGINE\tSURROGATE")
	fmt.Fprintf(w, "GM\t%.4f\t%.4f\n", r.GM, pred.GM)
	fmt.Fprintf(w, "hull speed\t%.4f\t%.4f\n", r.HullSpeed, pred.HullSpeed)
	fmt.Fprintf(w, "max speed\t%.4f\t%.4f\n", r.MaxSpeed, pred.MaxSpeed)
	fmt.Fprintf(w, "draft\t%.4f\t%.4f\n", r.Draft, pred.Draft)
	return w.Flush()
}

const mapChars = " .:-=+*#%@"

func runMap(cmd *cobra.Command, args []string) error {
	p, err := paramsFrom(cmd)
	if err != nil {
		return err
	}

	sctx, _, err := trainSurrogate()
	if err != nil {
		return err
	}

	grid, err := surrogate.BuildGrid(sctx, p, resolution)
	if err != nil {
		return err
	}

	if gridCSV {
		return export.WriteGridCSV(os.Stdout, grid, metric)
	}

	values := grid.GM
	switch metric {
	case "hull_speed":
		values = grid.HullSpeed
	case "draft":
		values = grid.Draft
	case "gm":
	default:
		return fmt.Errorf("unknown metric: %s", metric)
	}

	lo, hi := values[0][0], values[0][0]
	for _, row := range values {
		for _, v := range row {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}

	fmt.Printf("design space: lwl x beam, metric %s (min %.3f, max %.3f)\n\n", metric, lo, hi)
	for i := len(grid.LWL) - 1; i >= 0; i-- {
		fmt.Printf("%5.1f ", grid.LWL[i])
		for j := range grid.Beam {
			frac := 0.0
			if hi > lo {
				frac = (values[i][j] - lo) / (hi - lo)
			}
			idx := int(frac * float64(len(mapChars)-1))
			fmt.Printf("%c%c", mapChars[idx], mapChars[idx])
		}
		fmt.Println()
	}
	fmt.Printf("      %.1f ... %.1f beam (m)\n", grid.Beam[0], grid.Beam[len(grid.Beam)-1])
	return nil
}

func objectiveFor(name string) (optim.Objective, error) {
	switch name {
	case "gm":
		return func(r hydro.Results) float64 { return r.GM }, nil
	case "hull_speed":
		return func(r hydro.Results) float64 { return r.HullSpeed }, nil
	case "max_speed":
		return func(r hydro.Results) float64 { return r.MaxSpeed }, nil
	case "draft":
		return func(r hydro.Results) float64 { return r.Draft }, nil
	}
	return nil, fmt.Errorf("unknown metric: %s", name)
}

func runOptimize(cmd *cobra.Command, args []string) error {
	p, err := paramsFrom(cmd)
	if err != nil {
		return err
	}

	obj, err := objectiveFor(metric)
	if err != nil {
		return err
	}
	if minimize {
		inner := obj
		obj = func(r hydro.Results) float64 { return -inner(r) }
	}

	g, err := optim.NewGridSearch(vary, optSteps)
	if err != nil {
		return err
	}
	best, score, err := g.Search(cmd.Context(), p, obj)
	if err != nil {
		return err
	}
	if minimize {
		score = -score
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range vary {
		if v, ok := hull.Get(&best, name); ok {
			fmt.Fprintf(w, "%s\t%.3f\n", name, v)
		}
	}
	fmt.Fprintf(w, "%s\t%.4f\n", metric, score)
	return w.Flush()
}

func runCompare(cmd *cobra.Command, args []string) error {
	sctx, ds, err := trainSurrogate()
	if err != nil {
		return err
	}

	if samples <= 0 || samples > ds.Len() {
		samples = ds.Len()
	}
	stride := ds.Len() / samples

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LWL\tBEAM\tGM(eng)\tGM(sur)\tHS(eng)\tHS(sur)\tDRAFT(eng)\tDRAFT(sur)")
	for i := 0; i < samples; i++ {
		in := ds.Inputs[i*stride]
		out := ds.Outputs[i*stride]

		p := hull.DefaultParams()
		p.LWL = in[0]
		p.Beam = in[1]
		p.Depth = in[2]
		p.HullType = hull.HullType(int(in[3]*3 + 0.5))
		p.Deadrise = in[4]
		p.CrewWeight, p.CargoWeight = sample.SplitLoad(in[5])
		p.EngineHP = in[6]

		pred, err := surrogate.Predict(sctx, p)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%.1f\t%.1f\t%.3f\t%.3f\t%.2f\t%.2f\t%.4f\t%.4f\n",
			in[0], in[1], out[0], pred.GM, out[1], pred.HullSpeed, out[3], pred.Draft)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	report, err := analysis.Evaluate(sctx, ds)
	if err != nil {
		return err
	}
	fmt.Println()
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tMAE\tRMSE\tMAX")
	for _, a := range report {
		fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%.4f\n", a.Metric, a.MAE, a.RMSE, a.MaxErr)
	}
	return w.Flush()
}
