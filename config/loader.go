package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	// ProjectConfigFile is the name of the project-level config file.
	ProjectConfigFile = "bibgraph.yaml"
)

// Loader handles configuration loading with layered precedence.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load loads configuration with layered precedence:
// 1. Default config (Scopus export layout)
// 2. Project config (bibgraph.yaml in current or parent directories), or
//    the explicit path when one is given.
func (l *Loader) Load(explicitPath string) (*Config, error) {
	config := DefaultConfig()

	path := explicitPath
	if path == "" {
		path = l.findProjectConfig()
	}
	if path != "" {
		fileConfig, err := LoadFromFile(path)
		if err != nil {
			if explicitPath != "" || !errors.Is(err, os.ErrNotExist) {
				return nil, err
			}
			l.logger.Warn("Failed to load project config", slog.String("path", path), slog.String("error", err.Error()))
		} else {
			l.logger.Debug("Loaded config", slog.String("path", path))
			config.Merge(fileConfig)
		}
	} else {
		l.logger.Debug("No project config found, using defaults")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// ConfigPath returns the file Load would read: the explicit path when one
// is given, otherwise the discovered project config. Empty when neither
// exists, meaning Load falls back to the defaults alone.
func (l *Loader) ConfigPath(explicitPath string) string {
	if explicitPath != "" {
		return explicitPath
	}
	return l.findProjectConfig()
}

// findProjectConfig searches for bibgraph.yaml in current and parent
// directories.
func (l *Loader) findProjectConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		configPath := filepath.Join(dir, ProjectConfigFile)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
