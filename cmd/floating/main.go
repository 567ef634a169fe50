package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/Pavel-chemist/floating-objects/internal/canvas"
	"github.com/Pavel-chemist/floating-objects/internal/config"
	"github.com/Pavel-chemist/floating-objects/internal/export"
	"github.com/Pavel-chemist/floating-objects/internal/metrics"
	"github.com/Pavel-chemist/floating-objects/internal/sim"
	"github.com/Pavel-chemist/floating-objects/internal/storage"
	"github.com/Pavel-chemist/floating-objects/internal/tui"
	"github.com/Pavel-chemist/floating-objects/internal/world"
)

var (
	dataDir    string
	debug      bool
	configFile string
	preset     string
	width      int
	height     int
	tickMs     int
	background string
	seed       int64
	numBodies  int
	ticks      int
	frameEvery int
	gifPath    string
	svgPath    string
	pngPath    string
	watch      bool
	frameRate  int
	numRuns    int
	advance    int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "floating",
		Short: "bouncing disc playground",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(debug)
		},
		RunE: runLive,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".floating", "data directory")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "write a debug log under .floating/logs")
	addSceneFlags(rootCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "open the interactive terminal view",
		RunE:  runLive,
	}
	addSceneFlags(liveCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless simulation and record it",
		RunE:  runSimulation,
	}
	addSceneFlags(runCmd)
	runCmd.Flags().IntVar(&ticks, "ticks", config.DefaultTicks, "number of ticks")
	runCmd.Flags().IntVar(&frameEvery, "frame-every", config.DefaultFrameEvery, "keep a frame every n ticks for --gif")
	runCmd.Flags().StringVar(&gifPath, "gif", "", "write an animated gif of the run")
	runCmd.Flags().StringVar(&svgPath, "svg", "", "write the final scene as svg")
	runCmd.Flags().StringVar(&pngPath, "png", "", "write the final frame as png")
	runCmd.Flags().BoolVar(&watch, "watch", false, "print a character view while running")
	runCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate for --watch")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run metric series",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [file]",
		Short: "render a scene to png or svg",
		Args:  cobra.ExactArgs(1),
		RunE:  snapshot,
	}
	addSceneFlags(snapshotCmd)
	snapshotCmd.Flags().IntVar(&advance, "advance", 0, "ticks to advance before rendering")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "run an ensemble of seeds and report throughput",
		RunE:  bench,
	}
	addSceneFlags(benchCmd)
	benchCmd.Flags().IntVar(&ticks, "ticks", config.DefaultTicks, "ticks per run")
	benchCmd.Flags().IntVar(&numRuns, "runs", 8, "number of runs")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSIZE\tTICK\tBACKGROUND\tBODIES")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%dx%d\t%dms\t%s\t%d\n", name, p.Width, p.Height, p.TickMs, p.Background, p.InitialBodies)
			}
			w.Flush()
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage configuration files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [file]",
		Short: "write a configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}
	configInitCmd.Flags().StringVar(&preset, "preset", "", "start from a preset")
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(liveCmd, runCmd, listCmd, plotCmd, exportCmd, snapshotCmd, benchCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSceneFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "world width in pixels")
	cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "world height in pixels")
	cmd.Flags().IntVar(&tickMs, "tick", config.DefaultTickMs, "tick period in milliseconds")
	cmd.Flags().StringVar(&background, "background", config.DefaultBackground, "background: "+strings.Join(backgroundNames(), ", "))
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().IntVar(&numBodies, "bodies", config.DefaultBodies, "bodies to scatter at start")
}

func backgroundNames() []string {
	return append(canvas.PaletteNames(), config.BackgroundNoise)
}

// resolveConfig layers defaults, the preset, the config file and then any
// flag the user set explicitly.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Seed = seed

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
		cfg.Seed = seed
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("tick") {
		cfg.TickMs = tickMs
	}
	if flags.Changed("background") {
		cfg.Background = background
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("bodies") {
		cfg.InitialBodies = numBodies
	}
	if flags.Changed("ticks") {
		cfg.Ticks = ticks
	}
	if flags.Changed("frame-every") {
		cfg.FrameEvery = frameEvery
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func buildWorld(cfg *config.Config) (*world.World, error) {
	w, err := cfg.NewWorld(world.WithLogger(log.Default()))
	if err != nil {
		return nil, err
	}
	if placed := w.Scatter(cfg.InitialBodies); placed < cfg.InitialBodies {
		log.Printf("scatter: placed %d of %d bodies", placed, cfg.InitialBodies)
	}
	return w, nil
}

func newMetrics() []sim.Metric {
	return []sim.Metric{
		metrics.NewTotalMomentum(),
		metrics.NewKineticEnergy(),
		metrics.NewMaxSpeed(),
		metrics.NewBodyCount(),
	}
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	w, err := buildWorld(cfg)
	if err != nil {
		return err
	}
	return tui.Run(w, cfg)
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	w, err := buildWorld(cfg)
	if err != nil {
		return err
	}

	s := sim.New(w)
	for _, m := range newMetrics() {
		s.AddMetric(m)
	}

	if watch {
		live := tui.NewLiveRenderer(os.Stdout, cfg.Width, cfg.Height, frameRate)
		live.Start()
		defer live.Stop()
		s.AddObserver(live)
	}

	simCfg := sim.Config{Ticks: cfg.Ticks, RecordEvery: 1}
	if gifPath != "" {
		simCfg.FrameEvery = cfg.FrameEvery
	}

	start := time.Now()
	result, err := s.Run(context.Background(), simCfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(storage.RunInfo{
		Preset:     preset,
		Seed:       cfg.Seed,
		Width:      cfg.Width,
		Height:     cfg.Height,
		TickMs:     cfg.TickMs,
		Background: cfg.Background,
		Bodies:     w.Len(),
	}, result)
	if err != nil {
		return err
	}

	if gifPath != "" {
		err := writeFile(gifPath, func(out io.Writer) error {
			return export.WriteGIF(out, result.Frames, export.GIFDelay(cfg.TickMs, cfg.FrameEvery))
		})
		if err != nil {
			return err
		}
	}
	if svgPath != "" {
		err := writeFile(svgPath, func(out io.Writer) error {
			return export.WriteSVG(out, w.Bodies(), cfg.Width, cfg.Height, backgroundColor(cfg))
		})
		if err != nil {
			return err
		}
	}
	if pngPath != "" {
		err := writeFile(pngPath, func(out io.Writer) error {
			return export.WritePNG(out, w.Render())
		})
		if err != nil {
			return err
		}
	}

	fmt.Printf("run: %s\n", runID)
	fmt.Printf("ticks: %d  collisions: %d  elapsed: %v\n", result.Ticks, result.Collisions, elapsed)
	printMetrics(os.Stdout, result.Metrics)
	return nil
}

func printMetrics(out io.Writer, values map[string]float64) {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "  %-10s %.3f\n", name, values[name])
	}
}

func writeFile(path string, write func(io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// backgroundColor is the flat color used behind vector output. The noise
// background is approximated by its mean level.
func backgroundColor(cfg *config.Config) canvas.RGB {
	if cfg.Background == config.BackgroundNoise {
		l := uint8(canvas.DefaultNoise(cfg.Seed).Base)
		return canvas.RGB{R: l, G: l, B: l}
	}
	px, err := canvas.Named(cfg.Background, 1, 1)
	if err != nil {
		return canvas.RGB{}
	}
	return canvas.RGB{R: px[0], G: px[1], B: px[2]}
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tSIZE\tBODIES\tTICKS\tCOLLISIONS")

	for _, run := range runs {
		name := run.Preset
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%dx%d\t%d\t%d\t%d\n",
			run.ID,
			name,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Width, run.Height,
			run.Bodies,
			run.Ticks,
			run.Collisions,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	series, times, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	if len(times) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("seed: %d\n", meta.Seed)
	fmt.Printf("samples: %d\n\n", len(times))

	names := make([]string, 0, len(series))
	for name := range series {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		graph := asciigraph.Plot(series[name],
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(name),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	return storage.New(dataDir).ExportJSON(os.Stdout, args[0])
}

func snapshot(cmd *cobra.Command, args []string) error {
	path := args[0]
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	w, err := buildWorld(cfg)
	if err != nil {
		return err
	}
	for i := 0; i < advance; i++ {
		w.Step()
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return writeFile(path, func(out io.Writer) error {
			return export.WritePNG(out, w.Render())
		})
	case ".svg":
		return writeFile(path, func(out io.Writer) error {
			return export.WriteSVG(out, w.Bodies(), cfg.Width, cfg.Height, backgroundColor(cfg))
		})
	default:
		return fmt.Errorf("unsupported snapshot format: %s (use .png or .svg)", path)
	}
}

func bench(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if numRuns <= 0 {
		return fmt.Errorf("runs must be positive, got %d", numRuns)
	}

	newWorld := func(s int64) *world.World {
		c := *cfg
		c.Seed = s
		w, err := buildWorld(&c)
		if err != nil {
			// cfg was validated above
			panic(err)
		}
		return w
	}

	ens := sim.NewEnsemble(newWorld, newMetrics, numRuns, cfg.Seed)

	start := time.Now()
	results, err := ens.Run(context.Background(), sim.Config{Ticks: cfg.Ticks, RecordEvery: cfg.Ticks})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("benchmarking %d runs of %d ticks (%dx%d, %d bodies)\n\n", numRuns, cfg.Ticks, cfg.Width, cfg.Height, cfg.InitialBodies)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tCOLLISIONS\tMOMENTUM\tENERGY\tBODIES")
	totalTicks := 0
	for i, r := range results {
		totalTicks += r.Ticks
		fmt.Fprintf(w, "%d\t%d\t%.2f\t%.2f\t%.0f\n",
			cfg.Seed+int64(i), r.Collisions, r.Metrics["momentum"], r.Metrics["energy"], r.Metrics["bodies"])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d ticks in %v (%.0f ticks/sec)\n", totalTicks, elapsed, float64(totalTicks)/elapsed.Seconds())
	return nil
}
