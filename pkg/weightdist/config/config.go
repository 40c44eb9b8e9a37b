// Package config loads optional CLI defaults from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File holds the settings a config file may provide. Zero values mean the
// setting is absent and the flag default applies.
type File struct {
	Containers int    `yaml:"containers"`
	Output     string `yaml:"output"`
	Verbose    bool   `yaml:"verbose"`
}

// Load reads and decodes the YAML config at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	return &f, nil
}
