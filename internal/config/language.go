package config

import (
	"os"
	"strconv"
)

const (
	EnvLanguageEnabled         = "COUNSEL_LANGUAGE_ENABLED"
	EnvLanguageCredentialsFile = "COUNSEL_LANGUAGE_CREDENTIALS_FILE"
)

// LanguageConfig controls the Cloud Natural Language entity detector.
// Disabled by default; the local pattern detectors always run regardless.
// With no credentials file the client falls back to application default
// credentials.
type LanguageConfig struct {
	Enabled         bool   `toml:"enabled"`
	CredentialsFile string `toml:"credentials_file"`
}

// Finalize applies environment variable overrides.
func (c *LanguageConfig) Finalize() error {
	if v := os.Getenv(EnvLanguageEnabled); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.Enabled = enabled
		}
	}
	if v := os.Getenv(EnvLanguageCredentialsFile); v != "" {
		c.CredentialsFile = v
	}
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *LanguageConfig) Merge(overlay *LanguageConfig) {
	if overlay.Enabled {
		c.Enabled = true
	}
	if overlay.CredentialsFile != "" {
		c.CredentialsFile = overlay.CredentialsFile
	}
}
