package catalog

import (
	"io/ioutil"
	"runtime"

	"github.com/go-yaml/yaml"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-spritecat/sheet"
)

// Config controls a scan. The zero value is not usable; start from
// DefaultConfig or LoadConfig.
type Config struct {
	// Workers bounds how many assets decode concurrently.
	Workers int `yaml:"workers"`

	// AlphaThreshold is handed to the sheet boundary detector.
	AlphaThreshold uint8 `yaml:"alpha_threshold"`

	// Extensions lists the file suffixes treated as sprite documents.
	Extensions []string `yaml:"extensions"`
}

// DefaultConfig returns the scan settings used when no config file is
// given.
func DefaultConfig() Config {
	return Config{
		Workers:        runtime.NumCPU(),
		AlphaThreshold: sheet.DefaultAlphaThreshold,
		Extensions:     []string{".ase", ".aseprite"},
	}
}

// LoadConfig reads a YAML scan config. Fields missing from the file
// keep their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = DefaultConfig().Extensions
	}
	return cfg, nil
}
