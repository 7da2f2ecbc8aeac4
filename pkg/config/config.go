// Package config loads tradeops settings from defaults, an optional YAML
// file and TRADEOPS_* environment variables, in increasing precedence.
package config

import "github.com/vsinha/tradeops/pkg/domain/entities"

// EnvPrefix is stripped from environment variables before key mapping
const EnvPrefix = "TRADEOPS_"

type Config struct {
	Normalizer NormalizerConfig `koanf:"normalizer"`
	Log        LogConfig        `koanf:"log"`
	Output     OutputConfig     `koanf:"output"`
}

type NormalizerConfig struct {
	// DefaultCurrency applies when a document carries no usable currency.
	DefaultCurrency string `koanf:"default_currency" validate:"required,len=3,alpha"`
}

type LogConfig struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error disabled"`
	JSON  bool   `koanf:"json"`
}

type OutputConfig struct {
	Format string `koanf:"format" validate:"oneof=text json yaml csv"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Normalizer: NormalizerConfig{DefaultCurrency: entities.DefaultCurrency},
		Log:        LogConfig{Level: "info", JSON: false},
		Output:     OutputConfig{Format: "text"},
	}
}
