// Package config loads quants tool configuration with Viper. Settings merge
// from defaults, the user config at ~/.quants/config.toml, a project-local
// quants.toml found by walking up from the working directory, and QUANTS_*
// environment variables, in rising precedence.
package config

import (
	"fmt"
	"strings"
)

// Config is the quants CLI configuration.
type Config struct {
	Output OutputConfig       `mapstructure:"output"`
	Rates  map[string]float64 `mapstructure:"rates"` // exchange rates, "USD/EUR" = 0.85
}

// OutputConfig controls how quantities are rendered.
type OutputConfig struct {
	Precision int  `mapstructure:"precision"` // significant digits for converted values
	JSON      bool `mapstructure:"json"`      // machine-readable output
}

// RatePairs returns the configured exchange rates as (base, counter, rate)
// triples. Malformed keys are skipped with an error listing them.
func (c *Config) RatePairs() ([][2]string, []float64, error) {
	var pairs [][2]string
	var rates []float64
	var bad []string
	for key, rate := range c.Rates {
		base, counter, ok := strings.Cut(key, "/")
		if !ok || base == "" || counter == "" {
			bad = append(bad, key)
			continue
		}
		pairs = append(pairs, [2]string{base, counter})
		rates = append(rates, rate)
	}
	if len(bad) > 0 {
		return pairs, rates, fmt.Errorf("malformed rate keys (want BASE/COUNTER): %s", strings.Join(bad, ", "))
	}
	return pairs, rates, nil
}

func (c *Config) String() string {
	return fmt.Sprintf("output.precision=%d output.json=%v rates=%d",
		c.Output.Precision, c.Output.JSON, len(c.Rates))
}
