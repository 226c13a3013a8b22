// Package config loads the tool defaults from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the defaults applied when a command line or input file
// leaves a value out.
type Config struct {
	Steel       string  `yaml:"steel"`
	BoltGrade   string  `yaml:"bolt_grade"`
	ThicknessMM float64 `yaml:"thickness_mm"`
	Project     string  `yaml:"project"`
	Author      string  `yaml:"author"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Steel:       "S275",
		BoltGrade:   "8.8",
		ThicknessMM: 10,
	}
}

// Load reads the config file at path. An empty path or a missing file
// yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to a YAML file.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
