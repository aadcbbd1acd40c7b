// SPDX-License-Identifier: MIT
// File: config.go
// Role: optional YAML run configuration, in the same style as
// smilemakc-mbflow's internal/config.go AppConfig.

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is fadiag's run configuration: where the run cache lives and how
// verbosely to log. Every field has a usable zero value, so a missing
// config file is never an error — LoadConfig returns defaults instead.
type Config struct {
	CacheDir string `yaml:"cache_dir"`
	LogLevel string `yaml:"log_level"`
}

func defaultConfig() Config {
	return Config{
		CacheDir: ".fadiag-cache",
		LogLevel: "info",
	}
}

// LoadConfig reads path as YAML into a Config seeded with defaults. A
// missing path is not an error; a present-but-unparsable one is.
func LoadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return cfg, fmt.Errorf("fadiag: reading config %q: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("fadiag: parsing config %q: %w", path, err)
	}

	return cfg, nil
}
