package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/danielmartin/emacs-sourcegraph/internal/domain"
)

// Environment variables recognized on top of the config file.
const (
	EnvBaseURL = "SGOPEN_URL"
	EnvGit     = "SGOPEN_GIT"
)

// Load resolves configuration in layers: defaults, then the yaml config
// file, then a .env file in the working directory, then process environment
// variables. Later layers win.
//
// With an empty explicitPath the default location is used and a missing file
// is fine; an explicitPath that cannot be read is an error.
func Load(explicitPath string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := explicitPath
	if path == "" {
		path = defaultPath()
	}

	if b, err := os.ReadFile(path); err == nil {
		var y yamlConfig
		if err := yaml.Unmarshal(b, &y); err != nil {
			return cfg, &domain.OpError{
				Op:   "config.load",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  err,
			}
		}
		// BaseURL is a pointer so an explicitly empty value survives as a
		// misconfiguration instead of silently keeping the default.
		if y.Sourcegraph.URL != nil {
			cfg.BaseURL = *y.Sourcegraph.URL
		}
		if y.Sourcegraph.Git != "" {
			cfg.Git = y.Sourcegraph.Git
		}
	} else if explicitPath != "" {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	// Best effort; most working directories have no .env file.
	_ = godotenv.Load()

	if v, ok := os.LookupEnv(EnvBaseURL); ok {
		cfg.BaseURL = v
	}
	if v, ok := os.LookupEnv(EnvGit); ok && v != "" {
		cfg.Git = v
	}

	return cfg, nil
}

func defaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "sgopen", "config.yaml")
}

type yamlConfig struct {
	Sourcegraph struct {
		URL *string `yaml:"url"`
		Git string  `yaml:"git"`
	} `yaml:"sourcegraph"`
}
