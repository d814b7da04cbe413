package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/eulerplot/internal/chart"
	"github.com/san-kum/eulerplot/internal/config"
	"github.com/san-kum/eulerplot/internal/console"
	"github.com/san-kum/eulerplot/internal/display"
	"github.com/san-kum/eulerplot/internal/dynamo"
	"github.com/san-kum/eulerplot/internal/gui"
	"github.com/san-kum/eulerplot/internal/integrators"
	"github.com/san-kum/eulerplot/internal/logging"
)

var (
	configFile string
	preset     string
	logLevel   string
	// Initial values; prompted for when not given.
	x0         float64
	y0         float64
	stepLength float64
	stepCount  int
	// Output
	outPath   string
	width     int
	height    int
	noWindow  bool
	asciiPlot bool
	format    string
	quitKey   string
	// Convergence
	schemes []string
	levels  int
)

// equation is the ODE every command solves.
var equation = dynamo.Exponential(2)

// main registers the commands and flags and executes the root command,
// exiting with status 1 if it returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:          "eulerplot",
		Short:        "compare Euler and midpoint approximations of y' = 2y",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runPlot,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset initial values")
	pf.StringVar(&logLevel, "log", config.DefaultLogLevel, "log level: debug, info, warn, error")
	pf.Float64Var(&x0, "x0", 0, "initial x")
	pf.Float64Var(&y0, "y0", 0, "initial y")
	pf.Float64Var(&stepLength, "h", 0, "step length")
	pf.IntVar(&stepCount, "n", 0, "number of steps")

	rootCmd.Flags().StringVar(&outPath, "out", chart.DefaultPath, "chart output path")
	rootCmd.Flags().IntVar(&width, "width", chart.DefaultWidth, "chart width in pixels")
	rootCmd.Flags().IntVar(&height, "height", chart.DefaultHeight, "chart height in pixels")
	rootCmd.Flags().BoolVar(&noWindow, "no-window", false, "write the chart without opening a window")
	rootCmd.Flags().BoolVar(&asciiPlot, "ascii", false, "also plot the curves in the terminal")
	rootCmd.Flags().StringVar(&format, "format", config.DefaultFormat, "table format: table or csv")
	rootCmd.Flags().StringVar(&quitKey, "quit-key", config.DefaultQuitKey, "key that closes the window")

	convergenceCmd := &cobra.Command{
		Use:   "convergence",
		Short: "report the observed order of each scheme",
		Args:  cobra.NoArgs,
		RunE:  runConvergence,
	}
	convergenceCmd.Flags().StringSliceVar(&schemes, "schemes", integrators.Names(), "schemes to compare")
	convergenceCmd.Flags().IntVar(&levels, "levels", 5, "number of step halvings")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	rootCmd.AddCommand(convergenceCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the config file if one is given and applies the flags
// the user set explicitly on top of it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load config")
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("log") || configFile == "" {
		cfg.LogLevel = logLevel
	}
	if flags.Lookup("out") != nil {
		if flags.Changed("out") {
			cfg.Output.Path = outPath
		}
		if flags.Changed("width") {
			cfg.Output.Width = width
		}
		if flags.Changed("height") {
			cfg.Output.Height = height
		}
		if flags.Changed("format") {
			cfg.Format = format
		}
		if flags.Changed("quit-key") {
			cfg.QuitKey = quitKey
		}
		if noWindow {
			cfg.Window = false
		}
	}

	if err := logging.Setup(cfg.LogLevel, os.Stderr); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveParams layers config file, preset and flags, then prompts for
// whatever is still missing.
func resolveParams(cmd *cobra.Command, cfg *config.Config, in io.Reader, out io.Writer) (dynamo.Params, error) {
	initial := cfg.Initial

	if preset != "" {
		p, ok := config.GetPreset(preset)
		if !ok {
			return dynamo.Params{}, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		initial = initial.Merge(p)
	}

	var fromFlags config.InitialConfig
	flags := cmd.Flags()
	if flags.Changed("x0") {
		fromFlags.X0 = &x0
	}
	if flags.Changed("y0") {
		fromFlags.Y0 = &y0
	}
	if flags.Changed("h") {
		fromFlags.StepLength = &stepLength
	}
	if flags.Changed("n") {
		fromFlags.StepCount = &stepCount
	}
	initial = initial.Merge(fromFlags)

	params, set := initial.Params()
	known := console.Known{X0: set[0], Y0: set[1], StepLength: set[2], StepCount: set[3]}
	if !known.All() {
		if err := console.NewPrompter(in, out).Complete(&params, known); err != nil {
			return dynamo.Params{}, err
		}
	}

	if err := params.Validate(); err != nil {
		return dynamo.Params{}, err
	}

	log.WithFields(log.Fields{
		"x0": params.X0,
		"y0": params.Y0,
		"h":  params.StepLength,
		"n":  params.StepCount,
	}).Debug("parameters resolved")
	return params, nil
}

// runPlot is the main pipeline: read parameters, integrate, print the
// table, render the chart and show it. The first failure stops it.
func runPlot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Fail on a bad key before asking for any input.
	var win *gui.Window
	if cfg.Window {
		if win, err = gui.NewWindow(cfg.QuitKey); err != nil {
			return err
		}
	}

	out := os.Stdout
	console.Banner(out, equation.Label)

	params, err := resolveParams(cmd, cfg, os.Stdin, out)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)

	series := integrators.Integrate(params, equation)
	log.WithField("steps", series.Len()).Debug("integration finished")
	finite := series.IsValid()
	if !finite {
		log.Warn("series contains non-finite values")
	}

	switch cfg.Format {
	case "csv":
		err = console.WriteCSV(out, series)
	default:
		err = console.WriteTable(out, series)
	}
	if err != nil {
		return err
	}

	// Render reports non-finite values; the preview only skips them.
	if asciiPlot && series.Len() > 0 && finite {
		graph, err := chart.Terminal(series, 80, 15)
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, graph)
		fmt.Fprintln(out)
	}

	art, err := chart.Render(series, cfg.Output)
	if err != nil {
		return err
	}
	console.Saved(out, art.Path)

	if win == nil {
		return nil
	}

	frame, err := display.Load(art.Path)
	if err != nil {
		return err
	}
	return display.Show(win, frame, display.Title(win.KeyLabel()))
}

func runConvergence(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := integrators.CheckLevels(levels); err != nil {
		return err
	}

	params, err := resolveParams(cmd, cfg, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	fmt.Println()

	rows, err := integrators.Convergence(params, equation, schemes, levels)
	if err != nil {
		return err
	}
	return console.WriteConvergence(os.Stdout, equation.Label, rows)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tX0\tY0\tH\tN")

	for _, name := range config.ListPresets() {
		pre, _ := config.GetPreset(name)
		p, _ := pre.Params()
		fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%d\n", name, p.X0, p.Y0, p.StepLength, p.StepCount)
	}

	return w.Flush()
}
