// Package config holds settings of the py2tex command-line tool.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kjk/py2tex/atomicfile"
	"github.com/kjk/py2tex/texfmt"
)

// DefaultPath is where the cli looks for a config file
const DefaultPath = "py2tex.yaml"

type Config struct {
	// definitions file
	File string `yaml:"file"`
	// significant figures for scientific notation, 0 means only the power of 10
	SigFigs int `yaml:"sig_figs"`
	// digits of a percentage
	Precision int `yaml:"precision"`
	// append \% to percentages
	PercentSign bool `yaml:"percent_sign"`
	// if set, logs and events are also written to files in this directory
	LogDir  string `yaml:"log_dir"`
	Verbose bool   `yaml:"verbose"`
}

func DefaultConfig() *Config {
	return &Config{
		File:        "analysis_output.tex",
		SigFigs:     texfmt.DefaultSigFigs,
		Precision:   texfmt.DefaultPrecision,
		PercentSign: true,
	}
}

// Load reads config from a YAML file. Values not in the file keep
// their defaults and a missing file means all defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	d, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(d, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config '%s': %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config '%s': %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.File == "" {
		return fmt.Errorf("file is empty")
	}
	if c.SigFigs < 0 {
		return fmt.Errorf("sig_figs is %d, must be >= 0", c.SigFigs)
	}
	if c.Precision < 0 {
		return fmt.Errorf("precision is %d, must be >= 0", c.Precision)
	}
	return nil
}

func (c *Config) Save(path string) error {
	d, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return atomicfile.WriteFile(path, d)
}
