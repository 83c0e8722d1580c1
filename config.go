package shapes

import (
	"fmt"
	"math"
	"os"

	"github.com/htm-community/shapes/utils"
	"gopkg.in/yaml.v3"
)

/*
 Config holds the process-wide generator settings. It is loaded and
validated once at startup; the kernel it describes is then passed
explicitly to a Generator.
*/
type Config struct {
	Resolution    int        `yaml:"resolution"`
	KernelWeights []float64  `yaml:"kernel_weights"`
	Weight        float64    `yaml:"weight"`
	Delay         float64    `yaml:"delay"`
	Strides       []int      `yaml:"strides"`
	Templates     []Template `yaml:"templates"`
	Workers       int        `yaml:"workers"`
}

func NewConfig() *Config {
	c := new(Config)

	//set defaults
	c.Resolution = 32
	c.KernelWeights = append([]float64(nil), DefaultGaussianWeights...)
	c.Weight = 1
	c.Delay = 1
	c.Strides = []int{1, 2, 3}
	c.Templates = append([]Template(nil), Templates...)
	return c
}

//Parses YAML on top of the defaults and validates the result
func ParseConfig(data []byte) (*Config, error) {
	c := NewConfig()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	c, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	return c, nil
}

func (c *Config) Validate() error {
	if err := ValidateKernelWeights(c.KernelWeights); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Resolution <= 0 {
		return fmt.Errorf("%w: resolution %v", ErrInvalidConfig, c.Resolution)
	}
	if math.IsNaN(c.Weight) || math.IsInf(c.Weight, 0) {
		return fmt.Errorf("%w: weight %v", ErrInvalidConfig, c.Weight)
	}
	if !(c.Delay >= 0) || math.IsInf(c.Delay, 0) {
		return fmt.Errorf("%w: delay %v", ErrInvalidConfig, c.Delay)
	}
	if len(c.Strides) == 0 {
		return fmt.Errorf("%w: no strides", ErrInvalidConfig)
	}
	for idx, s := range c.Strides {
		if s < 0 {
			return fmt.Errorf("%w: stride %v", ErrInvalidConfig, s)
		}
		if utils.ContainsInt(s, c.Strides[:idx]) {
			return fmt.Errorf("%w: duplicate stride %v", ErrInvalidConfig, s)
		}
	}
	if len(c.Templates) == 0 {
		return fmt.Errorf("%w: no templates", ErrInvalidConfig)
	}
	seen := make(map[Template]bool, len(c.Templates))
	for _, t := range c.Templates {
		if _, ok := t.spec(); !ok {
			return fmt.Errorf("%w: %w: %d", ErrInvalidConfig, ErrUnknownTemplate, int(t))
		}
		if seen[t] {
			return fmt.Errorf("%w: duplicate template %v", ErrInvalidConfig, t)
		}
		seen[t] = true
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %v", ErrInvalidConfig, c.Workers)
	}
	return nil
}

//Kernel described by the config. Panics if the config was not validated
func (c *Config) Kernel() *GaussianKernel {
	return NewGaussianKernel(c.KernelWeights)
}

func (c *Config) ProjectionParams() ProjectionParams {
	p := NewProjectionParams(c.Resolution)
	p.Templates = append([]Template(nil), c.Templates...)
	p.Strides = append([]int(nil), c.Strides...)
	p.Weight = c.Weight
	p.Delay = c.Delay
	p.Workers = c.Workers
	return *p
}

func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
