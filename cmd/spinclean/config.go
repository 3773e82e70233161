package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/spinclean/internal/logging"
	"github.com/danmuck/spinclean/internal/manifest"
	"github.com/rs/zerolog"
)

// spinclean settings-file key mapping.
type fileConfig struct {
	Manifest string `toml:"manifest"`
	LogLevel string `toml:"log_level"`
	NoColor  bool   `toml:"no_color"`
}

type settings struct {
	ManifestPath string
	LogLevel     zerolog.Level
	LogLevelSet  bool
	NoColor      bool
}

func defaultSettings() settings {
	return settings{ManifestPath: manifest.DefaultFileName}
}

// loadSettings overlays the settings file at path onto the defaults. An empty
// path means no settings file. A relative manifest is taken relative to the
// settings file.
func loadSettings(path string) (settings, error) {
	cfg := defaultSettings()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return settings{}, fmt.Errorf("load settings: %w", err)
	}

	if meta.IsDefined("manifest") {
		m := strings.TrimSpace(raw.Manifest)
		if m != "" {
			if !filepath.IsAbs(m) {
				m = filepath.Join(filepath.Dir(path), m)
			}
			cfg.ManifestPath = m
		}
	}

	if meta.IsDefined("log_level") {
		lvl, ok := logging.ParseLevel(raw.LogLevel)
		if !ok {
			return settings{}, fmt.Errorf("parse log_level: unknown level %q", raw.LogLevel)
		}
		cfg.LogLevel = lvl
		cfg.LogLevelSet = true
	}

	if meta.IsDefined("no_color") {
		cfg.NoColor = raw.NoColor
	}

	return cfg, nil
}
