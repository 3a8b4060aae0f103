// Package bench runs the parsing strategies over configured inputs with
// testing.Benchmark and reports how they compare.
package bench

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/shapestone/csvgrammar/internal/strategy"
)

// ProductLine is the input of the original comparison.
const ProductLine = `123,2.99, AMO024, Title,"Description, more info",,123987564`

// Case is one benchmark input.
type Case struct {
	Name  string `yaml:"name"`
	Input string `yaml:"input"`
	// Repeat turns Input into that many "\n"-terminated lines. Zero or one
	// uses Input as is.
	Repeat int `yaml:"repeat,omitempty"`
}

// Data returns the text handed to each strategy.
func (c Case) Data() string {
	if c.Repeat <= 1 {
		return c.Input
	}
	return strings.Repeat(c.Input+"\n", c.Repeat)
}

// Config selects strategies and cases. An empty strategy list means all.
type Config struct {
	Strategies []string `yaml:"strategies,omitempty"`
	Cases      []Case   `yaml:"cases"`
}

// DefaultConfig returns the original single-line comparison plus a
// thousand-line variant, over every strategy.
func DefaultConfig() *Config {
	return &Config{
		Cases: []Case{
			{Name: "original", Input: ProductLine, Repeat: 1},
			{Name: "rows-1000", Input: ProductLine, Repeat: 1000},
		},
	}
}

// LoadConfig reads a YAML config file. A missing file yields DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes and validates a YAML config.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks if the config is valid
func (c *Config) Validate() error {
	if len(c.Cases) == 0 {
		return errors.New("at least one case is required")
	}

	seen := make(map[string]bool, len(c.Cases))
	for i, cs := range c.Cases {
		if cs.Name == "" {
			return fmt.Errorf("case %d: name is required", i)
		}
		if seen[cs.Name] {
			return fmt.Errorf("case %s: duplicate name", cs.Name)
		}
		seen[cs.Name] = true
		if cs.Repeat < 0 {
			return fmt.Errorf("case %s: repeat must not be negative", cs.Name)
		}
	}

	if _, err := strategy.Select(c.Strategies); err != nil {
		return fmt.Errorf("strategies: %w", err)
	}
	return nil
}
