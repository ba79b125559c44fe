// emojipalette - A Unicode emoji catalog and random picker.
// Copyright (C) 2026 The emojipalette Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	up "go.mau.fi/util/configupgrade"
	"gopkg.in/yaml.v3"

	"go.mau.fi/emojipalette/pkg/palette"
)

//go:embed example-config.yaml
var ExampleConfig string

type LoggingConfig struct {
	MinLevel string `yaml:"min_level"`
	Pretty   bool   `yaml:"pretty"`
}

type Config struct {
	Source            string             `yaml:"source"`
	DefaultCategories []palette.Category `yaml:"default_categories"`
	Count             int                `yaml:"count"`
	Logging           LoggingConfig      `yaml:"logging"`
}

var ErrInvalidConfig = errors.New("invalid config")

func (cfg *Config) validate() error {
	if cfg.Count < 1 {
		return fmt.Errorf("%w: count must be at least 1, got %d", ErrInvalidConfig, cfg.Count)
	} else if _, err := zerolog.ParseLevel(cfg.Logging.MinLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func upgradeConfig(helper up.Helper) {
	helper.Copy(up.Str, "source")
	helper.Copy(up.List, "default_categories")
	helper.Copy(up.Int, "count")
	helper.Copy(up.Str, "logging", "min_level")
	helper.Copy(up.Bool, "logging", "pretty")
}

var upgrader = &up.StructUpgrader{
	SimpleUpgrader: upgradeConfig,
	Blocks: [][]string{
		{"logging"},
	},
	Base: ExampleConfig,
}

// loadConfig reads the config at path and fills in any missing fields from the example config.
// A missing file isn't an error: the example config is used as-is.
func loadConfig(path string, save bool) (*Config, error) {
	data, _, err := up.Do(path, save, upgrader)
	if errors.Is(err, os.ErrNotExist) {
		data = []byte(ExampleConfig)
	} else if err != nil {
		return nil, err
	}
	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	} else if err = cfg.validate(); err != nil {
		return nil, err
	}
	if len(cfg.DefaultCategories) == 0 {
		// An empty list means all categories, which RandomEmoji only assumes for a nil filter.
		cfg.DefaultCategories = nil
	}
	return &cfg, nil
}
