package config

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	// Output defaults
	v.SetDefault("output.precision", 6)
	v.SetDefault("output.json", false)
}
