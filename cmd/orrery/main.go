package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/san-kum/orrery/internal/analysis"
	"github.com/san-kum/orrery/internal/automation"
	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/export"
	"github.com/san-kum/orrery/internal/frame"
	"github.com/san-kum/orrery/internal/logging"
	"github.com/san-kum/orrery/internal/metrics"
	"github.com/san-kum/orrery/internal/orrery"
	"github.com/san-kum/orrery/internal/viz"
)

var (
	configFile  string
	preset      string
	seed        int64
	logLevel    string
	logFile     string
	metricsAddr string
	frameRate   int
	theme       string
	traceFrames int
	pickFrames  int
	pointerX    float64
	pointerY    float64
	traceOut    string
	snapFrames  int
	snapCols    int
	snapRows    int
	playRuns    int
)

// errBadFrames is returned when a headless command is asked for no frames.
var errBadFrames = errors.New("--frames must be positive")

// errNotTerminal is returned when the interactive view has no terminal to
// draw on.
var errNotTerminal = errors.New("stdout is not a terminal; use trace or pick for headless runs")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "orrery",
		Short:        "interactive solar system orrery for the terminal",
		SilenceUsage: true,
		RunE:         runInteractive,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "body preset ("+strings.Join(config.ListPresets(), ", ")+")")
	pf.Int64Var(&seed, "seed", 0, "random seed for initial angles and stars (0 picks one)")
	pf.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&logFile, "log-file", "", "write logs to this file")
	pf.StringVar(&metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "open the interactive view",
		Args:  cobra.NoArgs,
		RunE:  runInteractive,
	}
	runCmd.Flags().IntVar(&frameRate, "fps", 0, "frame rate (default from config)")
	runCmd.Flags().StringVar(&theme, "theme", "", "initial theme (dark, light)")

	bodiesCmd := &cobra.Command{
		Use:   "bodies",
		Short: "list configured bodies",
		Args:  cobra.NoArgs,
		RunE:  listBodies,
	}

	traceCmd := &cobra.Command{
		Use:   "trace [body]",
		Short: "advance headlessly and plot a body's x position",
		Args:  cobra.ExactArgs(1),
		RunE:  traceBody,
	}
	traceCmd.Flags().IntVar(&traceFrames, "frames", 600, "frames to simulate")
	traceCmd.Flags().StringVarP(&traceOut, "out", "o", "", "also write the trace to a .json, .csv or .svg file")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [path]",
		Short: "advance headlessly and save the rendered frame as svg",
		Args:  cobra.ExactArgs(1),
		RunE:  snapshot,
	}
	snapshotCmd.Flags().IntVar(&snapFrames, "frames", 1, "frames to simulate")
	snapshotCmd.Flags().IntVar(&snapCols, "cols", 120, "canvas width in cells")
	snapshotCmd.Flags().IntVar(&snapRows, "rows", 40, "canvas height in cells")
	snapshotCmd.Flags().StringVar(&theme, "theme", "", "theme (dark, light)")

	pickCmd := &cobra.Command{
		Use:   "pick",
		Short: "advance headlessly and resolve a pointer position",
		Args:  cobra.NoArgs,
		RunE:  pickBody,
	}
	pickCmd.Flags().IntVar(&pickFrames, "frames", 1, "frames to simulate")
	pickCmd.Flags().Float64Var(&pointerX, "x", 0, "pointer x in normalized device coordinates")
	pickCmd.Flags().Float64Var(&pointerY, "y", 0, "pointer y in normalized device coordinates")

	playCmd := &cobra.Command{
		Use:   "play [scenario.yaml]",
		Short: "run a scripted scenario headlessly",
		Args:  cobra.ExactArgs(1),
		RunE:  playScenario,
	}
	playCmd.Flags().IntVar(&playRuns, "runs", 1, "play against this many consecutive seeds in parallel")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range config.ListPresets() {
				names := make([]string, 0, 8)
				for _, b := range config.GetPreset(name).Bodies {
					names = append(names, b.Name)
				}
				fmt.Fprintf(out, "  %-6s %s\n", name, strings.Join(names, ", "))
			}
			return nil
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage configuration files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the effective configuration to a yaml file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(runCmd, bodiesCmd, traceCmd, pickCmd, snapshotCmd, playCmd, presetsCmd, configCmd)
	return rootCmd
}

// loadConfig merges defaults, the config file, the preset and flags, in that
// order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if preset != "" {
		if err := cfg.ApplyPreset(preset); err != nil {
			return nil, fmt.Errorf("%w (available: %v)", err, config.ListPresets())
		}
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if f := cmd.Flags().Lookup("theme"); f != nil && f.Changed {
		cfg.Theme = theme
	}
	if f := cmd.Flags().Lookup("fps"); f != nil && f.Changed {
		cfg.FPS = frameRate
	}
	return cfg, cfg.Validate()
}

type session struct {
	sys     *orrery.System
	log     *logging.Logger
	closers []io.Closer
	cancel  context.CancelFunc
}

func (s *session) Close() {
	s.cancel()
	for _, c := range s.closers {
		c.Close()
	}
}

// setup builds a system with logging and optional metrics. Interactive runs
// must not log to the terminal, so without --log-file logs are discarded.
func setup(cmd *cobra.Command, interactive bool, opts orrery.Options) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	s := &session{}
	ctx, cancel := context.WithCancel(cmd.Context())
	s.cancel = cancel

	level := logging.ParseLevel(logLevel)
	switch {
	case logFile != "":
		log, closer, err := logging.Open(logFile, level)
		if err != nil {
			cancel()
			return nil, err
		}
		s.log = log
		s.closers = append(s.closers, closer)
	case interactive:
		s.log = logging.Discard()
	default:
		s.log = logging.New(level)
		s.log.SetOutput(cmd.ErrOrStderr())
	}

	if metricsAddr != "" {
		col := metrics.NewCollector()
		opts.Metrics = col
		go func() {
			if err := col.Serve(ctx, metricsAddr); err != nil {
				s.log.Error("metrics server: %v", err)
			}
		}()
		s.log.Info("serving metrics on %s", metricsAddr)
	}

	opts.Logger = s.log
	sys, err := orrery.Build(cfg, opts)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.sys = sys
	return s, nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}
	s, err := setup(cmd, true, orrery.Options{Bias: viz.TooltipBias})
	if err != nil {
		return err
	}
	defer s.Close()

	s.log.Info("starting interactive view at %d fps", s.sys.Config.FPS)
	return viz.Run(s.sys, s.sys.Config.FPS)
}

func listBodies(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tRADIUS (AU)\tSIZE\tSPEED (rad/frame)\tCOLOR")
	for _, b := range cfg.Bodies {
		fmt.Fprintf(w, "%s\t%g\t%g\t%.3f\t%s\n", b.Name, b.Radius, b.Size, b.Speed, b.Color)
	}
	return w.Flush()
}

func headlessContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(cmd.Context(), os.Interrupt)
}

// checkFrames rejects a non-positive frame budget before anything is built.
func checkFrames(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w, got %d", errBadFrames, n)
	}
	return nil
}

func traceBody(cmd *cobra.Command, args []string) error {
	if err := checkFrames(traceFrames); err != nil {
		return err
	}
	s, err := setup(cmd, false, orrery.Options{})
	if err != nil {
		return err
	}
	defer s.Close()

	body, _, err := s.sys.Body(args[0])
	if err != nil {
		return err
	}

	ctx, stop := headlessContext(cmd)
	defer stop()

	tr := export.NewTrace(body, s.sys.Seed)
	tr.Record(0, body)
	host := frame.TickerHost{Frames: traceFrames}
	if err := host.Run(ctx, func() {
		f := s.sys.Driver.Step()
		tr.Record(f.Seq, body)
	}); err != nil {
		return err
	}

	if traceOut != "" {
		if err := export.WriteFile(traceOut, tr); err != nil {
			return err
		}
		s.log.Info("wrote trace of %s to %s", body.Name(), traceOut)
	}

	graph := asciigraph.Plot(tr.X(),
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s x position over %d frames", body.Name(), traceFrames)),
	)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, graph)
	if period := analysis.DominantPeriod(tr.X()); period > 0 {
		fmt.Fprintf(out, "dominant period ≈ %.1f frames (2π/speed = %.1f)\n", period, 2*math.Pi/body.CurrentSpeed())
	}
	return nil
}

func pickBody(cmd *cobra.Command, args []string) error {
	if err := checkFrames(pickFrames); err != nil {
		return err
	}
	s, err := setup(cmd, false, orrery.Options{})
	if err != nil {
		return err
	}
	defer s.Close()

	ctx, stop := headlessContext(cmd)
	defer stop()

	s.sys.State.SetPointer(pointerX, pointerY)
	if err := s.sys.Run(ctx, frame.TickerHost{Frames: pickFrames}); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	sel := s.sys.Driver.Last().Selection
	if !sel.Hit {
		fmt.Fprintln(out, "no selection")
		return nil
	}
	for _, l := range sel.Lines() {
		fmt.Fprintln(out, l)
	}
	p := s.sys.Camera.Project(sel.Body.Position())
	fmt.Fprintf(out, "at ndc (%.3f, %.3f)\n", p.X, p.Y)
	return nil
}

func snapshot(cmd *cobra.Command, args []string) error {
	if err := checkFrames(snapFrames); err != nil {
		return err
	}
	if snapCols <= 0 || snapRows <= 0 {
		return fmt.Errorf("canvas must be at least 1x1 cells, got %dx%d", snapCols, snapRows)
	}
	raster := viz.NewRasterizer(snapCols, snapRows)
	s, err := setup(cmd, false, orrery.Options{Renderer: raster, Bias: viz.TooltipBias})
	if err != nil {
		return err
	}
	defer s.Close()

	ctx, stop := headlessContext(cmd)
	defer stop()

	s.sys.Driver.Resize(snapCols*2, snapRows*4)
	if err := s.sys.Run(ctx, frame.TickerHost{Frames: snapFrames}); err != nil {
		return err
	}

	th := viz.ThemeFor(s.sys.State.Theme)
	svg := export.CanvasToSVG(raster.Canvas(), 4, string(th.Background), string(th.Text))
	if err := os.WriteFile(args[0], []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
	return nil
}

func playScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	if playRuns > 1 {
		return playEnsemble(cmd, sc)
	}
	s, err := setup(cmd, false, orrery.Options{})
	if err != nil {
		return err
	}
	defer s.Close()

	ctx, stop := headlessContext(cmd)
	defer stop()

	results, err := automation.RunScenario(ctx, sc, s.sys, s.log)
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tFRAME\tSTATE\tSELECTED")
	for _, r := range results {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", r.Step, r.Seq, pauseLabel(r.Paused), r.Selected)
	}
	if ferr := w.Flush(); err == nil {
		err = ferr
	}
	return err
}

// playEnsemble runs sc once per seed starting at the configured seed and
// reports which seeds met every expectation.
func playEnsemble(cmd *cobra.Command, sc *automation.Scenario) error {
	base, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	start := base.Seed
	if start == 0 {
		start = 1
	}
	build := func(seed int64) (*orrery.System, error) {
		cfg := *base
		cfg.Seed = seed
		return orrery.Build(&cfg, orrery.Options{})
	}

	ctx, stop := headlessContext(cmd)
	defer stop()

	results, err := automation.NewEnsemble(build, playRuns, start, nil).Run(ctx, sc)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tRESULT")
	for _, r := range results {
		status := "ok"
		if r.Err != nil {
			status = r.Err.Error()
		}
		fmt.Fprintf(w, "%d\t%s\n", r.Seed, status)
	}
	fmt.Fprintf(w, "passed\t%d/%d\n", automation.Passed(results), len(results))
	return w.Flush()
}

func pauseLabel(paused bool) string {
	if paused {
		return frame.Paused.String()
	}
	return frame.Running.String()
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "orrery.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}
