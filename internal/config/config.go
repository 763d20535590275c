// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config loads an os-installer configuration document from disk.
package config

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/osinstaller/config-to-pot/pkg/types"
)

// Load reads the installer configuration at path and decodes it. The whole
// document is held in memory before any output is written. Keys the schema
// does not know are ignored; a file that cannot be read or parsed is an
// error.
func Load(path string) (*types.InstallerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg types.InstallerConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}
