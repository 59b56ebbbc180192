package domain

import "strings"

// Config is the full configuration for a single command invocation. It is
// loaded once in the CLI layer and passed down explicitly; nothing reads it
// from ambient globals.
type Config struct {
	// BaseURL is the Sourcegraph instance to link into. Empty means
	// misconfigured: every command fails fast rather than building a
	// relative URL.
	BaseURL string

	// Git is the path or name of the git executable.
	Git string
}

// DefaultConfig provides sane defaults if no config file is present.
func DefaultConfig() Config {
	return Config{
		BaseURL: "https://sourcegraph.com",
		Git:     "git",
	}
}

// Validate reports whether the configuration is usable at all.
func (c Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return &OpError{Op: "config.validate", Kind: KindInvalidConfig, Err: ErrInvalidConfig}
	}
	if strings.TrimSpace(c.Git) == "" {
		return &OpError{Op: "config.validate", Kind: KindInvalidConfig, Err: ErrInvalidConfig}
	}
	return nil
}
