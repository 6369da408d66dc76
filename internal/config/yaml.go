package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAML renders c in the format read by Load.
func (c *Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return out, nil
}
