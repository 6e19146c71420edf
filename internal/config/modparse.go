package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ModParse holds all configuration for the modifier parsing tool.
type ModParse struct {
	// Input
	Inputs []string `yaml:"inputs"` // files with one modifier line each

	// Output
	Output string `yaml:"output"` // "-" writes YAML to stdout

	// Parsing
	Workers        int  `yaml:"workers"`         // concurrent input files
	SkipUnresolved bool `yaml:"skip_unresolved"` // drop unresolved lines from output

	// Logging
	LogLevel string `yaml:"log_level"` // debug, info, warn, error
}

// DefaultModParse returns ModParse config with sensible defaults.
func DefaultModParse() ModParse {
	return ModParse{
		Output:         "-",
		Workers:        4,
		SkipUnresolved: false,
		LogLevel:       "info",
	}
}

// LoadModParse loads modparse config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadModParse(path string) (ModParse, error) {
	cfg := DefaultModParse()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	return cfg, nil
}
