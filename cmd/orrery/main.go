package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"text/tabwriter"

	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/experiment"
	"github.com/san-kum/orrery/internal/export"
	"github.com/san-kum/orrery/internal/gui"
	"github.com/san-kum/orrery/internal/logging"
	"github.com/san-kum/orrery/internal/sim"
	"github.com/san-kum/orrery/internal/solar"
	"github.com/san-kum/orrery/internal/view"
	"github.com/san-kum/orrery/internal/viz"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r2"
)

const windowTitle = "Planet Simulation"

var (
	ticks     int
	bodyName  string
	outFile   string
	svgWidth  int
	svgHeight int
)

// main registers the commands and runs the terminal view when no
// subcommand is given. It exits with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:           "orrery",
		Short:         "sun and eight planets under newtonian gravity",
		RunE:          runTUI,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	config.RegisterFlags(rootCmd.PersistentFlags())

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "watch the orbits in the terminal",
		RunE:  runTUI,
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "watch the orbits in a window",
		RunE:  runGUI,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "integrate headless and print the final state",
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&ticks, "ticks", 365, "number of one-day ticks")
	runCmd.Flags().StringVar(&bodyName, "body", "Earth", "body whose distance is plotted")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "integrate headless and write an svg picture",
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().IntVar(&ticks, "ticks", 365, "number of one-day ticks")
	snapshotCmd.Flags().StringVar(&outFile, "out", "orbits.svg", "output file")
	snapshotCmd.Flags().IntVar(&svgWidth, "width", 800, "picture width")
	snapshotCmd.Flags().IntVar(&svgHeight, "height", 800, "picture height")

	bodiesCmd := &cobra.Command{
		Use:   "bodies",
		Short: "list the bodies and their starting state",
		RunE:  listBodies,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(tuiCmd, guiCmd, runCmd, snapshotCmd, bodiesCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// setup builds the configuration, logger and experiment shared by every
// simulating command. Interactive commands never log to the terminal.
func setup(cmd *cobra.Command, interactive bool) (*config.Config, *log.Logger, io.Closer, *experiment.Experiment, error) {
	cfg, err := config.Resolve(cmd.Flags())
	if err != nil {
		return nil, nil, nil, nil, err
	}

	logger, closer, err := logging.Open(cfg.Log.Level, cfg.Log.File, interactive)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	exp, err := experiment.New(cfg, logger)
	if err != nil {
		closer.Close()
		return nil, nil, nil, nil, err
	}
	return cfg, logger, closer, exp, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, logger, closer, exp, err := setup(cmd, true)
	if err != nil {
		return err
	}
	defer closer.Close()

	logger.Info("starting terminal view", "fps", cfg.FPS, "order", cfg.UpdateOrder, "policy", cfg.DistancePolicy)
	cam := view.NewCamera(cfg.View, cfg.FPS)
	return viz.Run(viz.NewModel(exp.GetSimulator(), cam, cfg.FPS, cfg.Theme))
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, logger, closer, exp, err := setup(cmd, true)
	if err != nil {
		return err
	}
	defer closer.Close()

	rc := gui.NewRenderContext(cfg.View.Width, cfg.View.Height, cfg.FPS, windowTitle)
	defer rc.Close()

	logger.Info("starting window", "width", cfg.View.Width, "height", cfg.View.Height)
	cam := view.NewCamera(cfg.View, cfg.FPS)
	return gui.NewApp(exp.GetSimulator(), cam, rc, logger).Run()
}

func runHeadless(cmd *cobra.Command, args []string) error {
	if err := sim.CheckTicks(ticks); err != nil {
		return err
	}

	_, _, closer, exp, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer closer.Close()

	body, err := exp.System().Lookup(bodyName)
	if err != nil {
		return err
	}

	exp.Setup(experiment.NewRegistry().DefaultMetrics(body.Name))

	distances := make([]float64, 0, ticks)
	exp.GetSimulator().AddObserver(sim.ObserverFunc(func(*solar.System) {
		distances = append(distances, body.DistanceToStar/1000)
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, runErr := exp.Run(ctx, ticks)
	if res == nil {
		return runErr
	}

	fmt.Printf("%d ticks, %.0f days\n\n", res.Ticks, res.Final.Days())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODY\tX (AU)\tY (AU)\tSPEED (km/s)\tDISTANCE (km)")
	for _, b := range res.Final.Bodies {
		fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%.3f\t%.1f\n",
			b.Name,
			b.Pos.X/solar.AU,
			b.Pos.Y/solar.AU,
			r2.Norm(b.Vel)/1000,
			b.DistanceToStar/1000,
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	names := make([]string, 0, len(res.Metrics))
	for name := range res.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println()
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%.6g\n", name, res.Metrics[name])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(distances) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(distances,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption(body.Name+" distance to "+exp.System().Star().Name+" (km)")))
	}

	return runErr
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	if err := sim.CheckTicks(ticks); err != nil {
		return err
	}

	cfg, logger, closer, exp, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := exp.Run(ctx, ticks)
	if err != nil {
		return err
	}

	cam := view.NewCamera(cfg.View, cfg.FPS)
	svg := export.TrailsToSVG(res.Final, cam, svgWidth, svgHeight)
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}

	logger.Info("snapshot written", "file", outFile, "days", res.Final.Days())
	return nil
}

func listBodies(cmd *cobra.Command, args []string) error {
	sys := solar.SolarSystem()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMASS (kg)\tRADIUS\tORBIT (AU)\tSPEED (km/s)\tSTAR")
	for _, b := range sys.Bodies() {
		star := ""
		if b.Star {
			star = "yes"
		}
		fmt.Fprintf(w, "%s\t%.4e\t%.1f\t%.3f\t%.3f\t%s\n",
			b.Name,
			b.Mass,
			b.Radius,
			r2.Norm(b.Pos)/solar.AU,
			r2.Norm(b.Vel)/1000,
			star,
		)
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tZOOM\tORDER\tDESCRIPTION")
	for _, name := range config.ListPresets() {
		p, _ := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%.3f\t%s\t%s\n", name, p.Zoom, p.UpdateOrder, p.Description)
	}
	return w.Flush()
}
