package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/eulerplot/internal/chart"
	"github.com/san-kum/eulerplot/internal/dynamo"
)

const (
	DefaultQuitKey  = "escape"
	DefaultFormat   = "table"
	DefaultLogLevel = "warn"
)

var Formats = []string{"table", "csv"}

type Config struct {
	Initial  InitialConfig `yaml:"initial"`
	Output   chart.Options `yaml:"output"`
	QuitKey  string        `yaml:"quit_key"`
	Window   bool          `yaml:"window"`
	Format   string        `yaml:"format"`
	LogLevel string        `yaml:"log_level"`
}

// InitialConfig holds the run parameters. Nil fields are left for the
// user to enter at the prompt.
type InitialConfig struct {
	X0         *float64 `yaml:"x0,omitempty"`
	Y0         *float64 `yaml:"y0,omitempty"`
	StepLength *float64 `yaml:"step_length,omitempty"`
	StepCount  *int     `yaml:"step_count,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Output:   chart.DefaultOptions(),
		QuitKey:  DefaultQuitKey,
		Window:   true,
		Format:   DefaultFormat,
		LogLevel: DefaultLogLevel,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Output.Width <= 0 || c.Output.Height <= 0 {
		return errors.Wrapf(dynamo.ErrParameterBounds, "output size %dx%d", c.Output.Width, c.Output.Height)
	}
	if c.Output.Path == "" {
		return errors.Wrap(dynamo.ErrParameterBounds, "empty output path")
	}
	for _, f := range Formats {
		if c.Format == f {
			return nil
		}
	}
	return errors.Wrapf(dynamo.ErrParameterBounds, "format %q (available: %v)", c.Format, Formats)
}

// Merge returns i with every field set in other taking precedence.
func (i InitialConfig) Merge(other InitialConfig) InitialConfig {
	if other.X0 != nil {
		i.X0 = other.X0
	}
	if other.Y0 != nil {
		i.Y0 = other.Y0
	}
	if other.StepLength != nil {
		i.StepLength = other.StepLength
	}
	if other.StepCount != nil {
		i.StepCount = other.StepCount
	}
	return i
}

// Params copies the set fields into a Params value. The second result
// reports which fields were set, in X0, Y0, StepLength, StepCount order.
func (i InitialConfig) Params() (dynamo.Params, [4]bool) {
	var p dynamo.Params
	var set [4]bool
	if i.X0 != nil {
		p.X0, set[0] = *i.X0, true
	}
	if i.Y0 != nil {
		p.Y0, set[1] = *i.Y0, true
	}
	if i.StepLength != nil {
		p.StepLength, set[2] = *i.StepLength, true
	}
	if i.StepCount != nil {
		p.StepCount, set[3] = *i.StepCount, true
	}
	return p, set
}
