package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/junctionbox/circuit"
	"github.com/katalvlaran/junctionbox/config"
	"github.com/katalvlaran/junctionbox/geom"
	"github.com/katalvlaran/junctionbox/logging"
)

// solveFlags holds flag values of the solve command.
type solveFlags struct {
	configPath string
	input      string
	wires      int
	counting   string
	ordering   string
	tracker    string
	logLevel   string
	logFile    string
}

// solveCmd represents the solve command.
var solveCmd = newSolveCmd(&solveFlags{})

func init() {
	rootCmd.AddCommand(solveCmd)
}

// newSolveCmd returns a solve command whose flags are bound to fl.
func newSolveCmd(fl *solveFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "solve",
		Short: "Build the circuit for a point file and print both checkpoints",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, *fl)
			if err != nil {
				return err
			}
			return runSolve(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	bindSolveFlags(c, fl)
	return c
}

func bindSolveFlags(cmd *cobra.Command, fl *solveFlags) {
	f := cmd.Flags()
	f.StringVarP(&fl.configPath, "config", "c", "", "YAML configuration file")
	f.StringVarP(&fl.input, "input", "i", "", "point file, one x,y,z per line")
	f.IntVarP(&fl.wires, "wires", "k", config.DefaultThreshold, "wire count of the threshold checkpoint (0 disables it)")
	f.StringVar(&fl.counting, "counting", config.CountingAttempts,
		"what counts as a wire: attempts (every examined pair) or merges (needs at least wires+3 boxes)")
	f.StringVar(&fl.ordering, "ordering", config.OrderingEager, "candidate ordering: eager or lazy")
	f.StringVar(&fl.tracker, "tracker", config.TrackerForest, "circuit tracker: forest or lists")
	f.StringVar(&fl.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	f.StringVar(&fl.logFile, "log-file", "", "log file (default stderr)")
}

// resolveConfig loads the config file, if any, and lets explicitly set flags win.
func resolveConfig(cmd *cobra.Command, fl solveFlags) (config.Config, error) {
	cfg := config.Default()
	if fl.configPath != "" {
		var err error
		if cfg, err = config.Load(fl.configPath); err != nil {
			return config.Config{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input = fl.input
	}
	if flags.Changed("wires") {
		cfg.Threshold = fl.wires
	}
	if flags.Changed("counting") {
		cfg.Counting = fl.counting
	}
	if flags.Changed("ordering") {
		cfg.Ordering = fl.ordering
	}
	if flags.Changed("tracker") {
		cfg.Tracker = fl.tracker
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = fl.logLevel
	}
	if flags.Changed("log-file") {
		cfg.Logging.Path = fl.logFile
	}

	config.ApplyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// runSolve reads cfg.Input, builds the circuit and writes the report to out.
// Logs go to cfg.Logging.Path, or errOut when no path is set.
func runSolve(cfg config.Config, out, errOut io.Writer) error {
	var logger *slog.Logger
	if cfg.Logging.Path != "" {
		l, closeLog, err := logging.Init(cfg.Logging.Path, cfg.Logging.Level)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer closeLog()
		logger = l
	} else {
		logger = logging.New(errOut, cfg.Logging.Level)
	}
	logger = logger.With(slog.String("run", uuid.NewString()))

	points, err := readPointFile(cfg.Input)
	if err != nil {
		return err
	}
	logger.Info("points loaded", slog.String("input", cfg.Input), slog.Int("boxes", len(points)))

	opts := append(cfg.Options(), circuit.WithLogger(logger))
	res, err := circuit.Build(points, opts...)
	if err != nil {
		return err
	}

	return writeReport(out, res)
}

func readPointFile(path string) ([]geom.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	points, err := geom.ReadPoints(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return points, nil
}
