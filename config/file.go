package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MergeFile overlays the YAML file at path onto c. Keys absent from the file
// keep their current values.
//
// Example:
//
//	server:
//	  port: 8080
//	fetch:
//	  timeout: 5s
//	auth:
//	  enabled: true
//	  apiKeys: [k1, k2]
func (c *Config) MergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}
