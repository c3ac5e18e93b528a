package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig is the optional per-project tagdoc.yaml. Everything in
// it has a flag equivalent; flags win when both are given.
type ProjectConfig struct {
	// Namespace to scan for tag definitions. Empty means the default
	// namespace.
	Namespace string `yaml:"namespace,omitempty"`

	// Format selects the output renderer: html, json or yaml.
	Format string `yaml:"format,omitempty"`

	// Output is the file documentation is written to. Empty or "-"
	// means stdout.
	Output string `yaml:"output,omitempty"`

	// Title overrides the generated page heading.
	Title string `yaml:"title,omitempty"`
}

const ConfigFileName = "tagdoc.yaml"

// Load reads tagdoc.yaml from the given directory.
func Load(sourcePath string) (*ProjectConfig, error) {
	configPath := filepath.Join(sourcePath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
