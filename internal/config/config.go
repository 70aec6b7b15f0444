// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for the extractor.
//
// Configuration locations, in order of precedence:
//   - ./extractor.toml
//   - ~/.config/chatgpt-extractor/extractor.toml
//   - Built-in defaults
//
// A missing config file is not an error; defaults apply. The --file flag
// overrides the configured input path.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the extractor's settings.
type Config struct {
	// InputFile is the conversations export to read.
	InputFile string `toml:"input_file"`
	// OutputDir receives exported files and archives.
	OutputDir string `toml:"output_dir"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		InputFile: "conversations.json",
		OutputDir: "output_conversations",
	}
}

// Load reads the first config file found, layered over defaults. A file
// that exists but fails to parse is an error; nothing found is not.
func Load() (*Config, error) {
	cfg := Default()

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
		break
	}

	return cfg, nil
}

// searchPaths lists candidate config locations in precedence order.
func searchPaths() []string {
	paths := []string{"extractor.toml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "chatgpt-extractor", "extractor.toml"))
	}
	return paths
}
