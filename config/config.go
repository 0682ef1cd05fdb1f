// Package config holds the run configuration for the junctionbox CLI,
// parsed from YAML and converted to circuit options.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/junctionbox/circuit"
	"github.com/katalvlaran/junctionbox/disjointset"
)

// ErrInvalidConfig indicates a configuration value outside its allowed set.
var ErrInvalidConfig = errors.New("config: invalid value")

// DefaultThreshold is the wire count of the puzzle's first checkpoint. It is
// paired with attempt counting by Default: under merge counting it would
// need at least DefaultThreshold+3 boxes.
const DefaultThreshold = 1000

// Allowed enumerations.
const (
	CountingMerges   = "merges"
	CountingAttempts = "attempts"
	OrderingEager    = "eager"
	OrderingLazy     = "lazy"
	TrackerForest    = "forest"
	TrackerLists     = "lists"
)

// Config is the top-level configuration.
type Config struct {
	// Input is the path of the "x,y,z" point file.
	Input string `yaml:"input"`
	// Threshold is K for the threshold checkpoint; 0 disables it.
	Threshold int `yaml:"threshold"`
	// Counting is "merges" or "attempts".
	Counting string `yaml:"counting"`
	// Ordering is "eager" or "lazy".
	Ordering string `yaml:"ordering"`
	// Tracker is "forest" or "lists".
	Tracker string `yaml:"tracker"`
	// Logging configures the slog handler.
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path; empty logs to stderr.
	Path string `yaml:"path"`
}

// Default returns the configuration used when no file is given: the puzzle
// run, 1000 examined pairs on input.txt.
func Default() Config {
	return Config{
		Input:     "input.txt",
		Threshold: DefaultThreshold,
		Counting:  CountingAttempts,
		Ordering:  OrderingEager,
		Tracker:   TrackerForest,
		Logging:   LoggingConfig{Level: "info"},
	}
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML over Default, so omitted keys keep their defaults,
// then validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	ApplyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyDefaults fills empty enumerations, e.g. after an explicit `counting: ""`.
func ApplyDefaults(cfg *Config) {
	d := Default()
	if cfg.Counting == "" {
		cfg.Counting = d.Counting
	}
	if cfg.Ordering == "" {
		cfg.Ordering = d.Ordering
	}
	if cfg.Tracker == "" {
		cfg.Tracker = d.Tracker
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = d.Logging.Level
	}
}

// Validate checks every field against its allowed values.
func (c Config) Validate() error {
	if c.Threshold < 0 {
		return fmt.Errorf("threshold: %d < 0: %w", c.Threshold, ErrInvalidConfig)
	}
	if err := oneOf("counting", c.Counting, CountingMerges, CountingAttempts); err != nil {
		return err
	}
	if err := oneOf("ordering", c.Ordering, OrderingEager, OrderingLazy); err != nil {
		return err
	}
	if err := oneOf("tracker", c.Tracker, TrackerForest, TrackerLists); err != nil {
		return err
	}
	return oneOf("logging.level", strings.ToLower(c.Logging.Level), "debug", "info", "warn", "error")
}

func oneOf(field, got string, allowed ...string) error {
	for _, a := range allowed {
		if got == a {
			return nil
		}
	}
	return fmt.Errorf("%s: %q (allowed: %s): %w", field, got, strings.Join(allowed, ", "), ErrInvalidConfig)
}

// Options converts a validated Config into circuit options.
func (c Config) Options() []circuit.Option {
	opts := []circuit.Option{circuit.WithThreshold(c.Threshold)}
	if c.Counting == CountingAttempts {
		opts = append(opts, circuit.WithCounting(circuit.CountAttempts))
	}
	if c.Ordering == OrderingLazy {
		opts = append(opts, circuit.WithOrdering(circuit.OrderLazy))
	}
	if c.Tracker == TrackerLists {
		opts = append(opts, circuit.WithTracker(disjointset.ListsFactory))
	}
	return opts
}
