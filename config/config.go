package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/tony-kipkemboi/granola-extractor/internal/granola"
)

type Config struct {
	CachePath string // Granola cache file to read
	OutputDir string // root directory for extracted markdown
}

type fileConfig struct {
	CachePath string `toml:"cache_path"`
	OutputDir string `toml:"output_dir"`
}

// Load builds the effective configuration: Granola's standard cache location
// and ~/Documents/GranolaTranscripts, overridden by an optional config.toml.
// Load never creates directories or files.
func Load() (*Config, error) {
	cfg := &Config{
		CachePath: granola.DefaultCachePath(),
		OutputDir: defaultOutputDir(),
	}

	if configPath := configFilePath(); configPath != "" {
		var fc fileConfig
		if _, err := toml.DecodeFile(configPath, &fc); err == nil {
			if fc.CachePath != "" {
				cfg.CachePath = ExpandTilde(fc.CachePath)
			}
			if fc.OutputDir != "" {
				cfg.OutputDir = ExpandTilde(fc.OutputDir)
			}
		}
	}

	return cfg, nil
}

func configFilePath() string {
	var configDir string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		configDir = filepath.Join(xdg, "granola-extractor")
	} else if home, err := os.UserHomeDir(); err == nil {
		configDir = filepath.Join(home, ".config", "granola-extractor")
	} else {
		return ""
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

func defaultOutputDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, "Documents", "GranolaTranscripts")
	}
	return filepath.Join(".", "GranolaTranscripts")
}

// ExpandTilde resolves a leading ~/ against the user's home directory.
func ExpandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
