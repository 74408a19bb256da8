package config

import (
	"github.com/mattsolo1/servr/pkg/paths"
)

// LoadDefault loads the configuration from the standard XDG location.
// A missing servr.yml yields the built-in defaults.
func LoadDefault() (*Config, error) {
	path := paths.ConfigFilePath()
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
