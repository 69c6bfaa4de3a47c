package puzzles

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/snowops/dijkstra"
)

// ErrBadConfig indicates a configuration value out of range.
var ErrBadConfig = errors.New("puzzles: invalid config")

// Config tunes logging and the per-puzzle constants.
type Config struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// SpinCycles is the number of spin cycles for day 14 part 2.
	SpinCycles int  `yaml:"spin_cycles"`
	TiltCache  bool `yaml:"tilt_cache"`

	Crucible CrucibleConfig `yaml:"crucible"`

	// Presses is the number of button presses counted in day 20 part 1.
	Presses     int    `yaml:"presses"`
	PulseTarget string `yaml:"pulse_target"`
	PressLimit  int    `yaml:"press_limit"`

	PlotSteps    int `yaml:"plot_steps"`
	FarPlotSteps int `yaml:"far_plot_steps"`
}

// CrucibleConfig holds the run bounds for both parts of day 17.
type CrucibleConfig struct {
	Part1 Bounds `yaml:"part1"`
	Part2 Bounds `yaml:"part2"`
}

// Bounds is the YAML form of dijkstra.RunBounds.
type Bounds struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// RunBounds converts b for the search engine.
func (b Bounds) RunBounds() dijkstra.RunBounds {
	return dijkstra.RunBounds{Min: b.Min, Max: b.Max}
}

// DefaultConfig returns the puzzle defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel:   "info",
		LogFormat:  "text",
		SpinCycles: 1_000_000_000,
		Crucible: CrucibleConfig{
			Part1: Bounds{Min: dijkstra.Classic.Min, Max: dijkstra.Classic.Max},
			Part2: Bounds{Min: dijkstra.Ultra.Min, Max: dijkstra.Ultra.Max},
		},
		Presses:      1000,
		PulseTarget:  "rx",
		PressLimit:   1_000_000,
		PlotSteps:    64,
		FarPlotSteps: 26_501_365,
	}
}

// LoadConfig reads the YAML file at path over DefaultConfig and validates
// the result.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, c.Validate()
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch {
	case c.SpinCycles < 0:
		return fmt.Errorf("%w: spin_cycles %d", ErrBadConfig, c.SpinCycles)
	case c.Presses < 0:
		return fmt.Errorf("%w: presses %d", ErrBadConfig, c.Presses)
	case c.PressLimit < 1:
		return fmt.Errorf("%w: press_limit %d", ErrBadConfig, c.PressLimit)
	case c.PulseTarget == "":
		return fmt.Errorf("%w: pulse_target is empty", ErrBadConfig)
	case c.PlotSteps < 0 || c.FarPlotSteps < 0:
		return fmt.Errorf("%w: plot steps must be non-negative", ErrBadConfig)
	case c.LogFormat != "text" && c.LogFormat != "json":
		return fmt.Errorf("%w: log_format %q", ErrBadConfig, c.LogFormat)
	}
	for _, b := range []Bounds{c.Crucible.Part1, c.Crucible.Part2} {
		if err := b.RunBounds().Validate(); err != nil {
			return fmt.Errorf("%w: crucible: %w", ErrBadConfig, err)
		}
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrBadConfig, err)
	}
	return nil
}

// ConfigureLogging applies the level and format to every logger given.
// verbose forces debug level.
func (c Config) ConfigureLogging(verbose bool, loggers ...*logrus.Logger) error {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBadConfig, err)
	}
	if verbose {
		level = logrus.DebugLevel
	}
	var formatter logrus.Formatter = &logrus.TextFormatter{ForceColors: true}
	if c.LogFormat == "json" {
		formatter = &logrus.JSONFormatter{}
	}
	for _, l := range loggers {
		l.SetLevel(level)
		l.SetFormatter(formatter)
	}
	return nil
}
