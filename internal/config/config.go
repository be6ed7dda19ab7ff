// Package config provides unified configuration loading for entrain.
// It supports loading from YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/k2jama/entrain/internal/models"
)

// Config contains all entrain configuration settings.
type Config struct {
	// Validation contains settings for the validation engine.
	Validation ValidationConfig `json:"validation" yaml:"validation"`

	// Store contains settings for profile persistence.
	Store StoreConfig `json:"store" yaml:"store"`

	// Logging contains settings for operational and audit logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// ValidationConfig configures the validation engine.
type ValidationConfig struct {
	// DefaultExperienceLevel is assumed when no profile accompanies a
	// session: "beginner", "intermediate", "advanced", or "expert".
	DefaultExperienceLevel string `json:"default_experience_level" yaml:"default_experience_level"`

	// Strict treats warnings as failures in CLI exit codes.
	Strict bool `json:"strict" yaml:"strict"`

	// AuditDir is the directory for the validation audit log. Supports
	// ${VAR} syntax for env vars. Empty disables audit logging.
	AuditDir string `json:"audit_dir,omitempty" yaml:"audit_dir,omitempty"`
}

// StoreConfig configures profile persistence.
type StoreConfig struct {
	// Path is the SQLite database file. Supports ${VAR} syntax for env
	// vars. Empty uses ~/.entrain/entrain.db.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// LoggingConfig configures entrain's logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	// "debug" enables audit logging to the configured audit directory.
	Level string `json:"level" yaml:"level"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Validation: ValidationConfig{
			DefaultExperienceLevel: string(models.LevelBeginner),
			Strict:                 false,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from the default locations and environment variables.
// Order: defaults -> ~/.entrain/config.yaml -> environment variables
func Load() (*Config, error) {
	config := Default()

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".entrain", "config.yaml")
		if _, statErr := os.Stat(configPath); statErr == nil {
			fileConfig, loadErr := LoadFromFile(configPath)
			if loadErr != nil {
				return nil, fmt.Errorf("loading config file: %w", loadErr)
			}
			config = fileConfig
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	config.Store.Path = expandEnvVars(config.Store.Path)
	config.Validation.AuditDir = expandEnvVars(config.Validation.AuditDir)

	return config, nil
}

// StorePath resolves the database path, falling back to the default
// location under the user's home directory.
func (c *Config) StorePath() (string, error) {
	if c.Store.Path != "" {
		return c.Store.Path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving store path: %w", err)
	}
	return filepath.Join(homeDir, ".entrain", "entrain.db"), nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	level := models.ExperienceLevel(c.Validation.DefaultExperienceLevel)
	if c.Validation.DefaultExperienceLevel != "" && !level.Valid() {
		return fmt.Errorf("invalid experience level: %s (valid: beginner, intermediate, advanced, expert)",
			c.Validation.DefaultExperienceLevel)
	}

	validLevels := map[string]bool{"info": true, "debug": true, "trace": true}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("ENTRAIN_EXPERIENCE_LEVEL"); v != "" {
		config.Validation.DefaultExperienceLevel = v
	}

	if v := os.Getenv("ENTRAIN_STRICT"); v != "" {
		config.Validation.Strict = v == "true" || v == "1"
	}

	if v := os.Getenv("ENTRAIN_AUDIT_DIR"); v != "" {
		config.Validation.AuditDir = v
	}

	if v := os.Getenv("ENTRAIN_STORE_PATH"); v != "" {
		config.Store.Path = v
	}

	if v := os.Getenv("ENTRAIN_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}
}

// expandEnvVars expands ${VAR} patterns in a string with environment variable values.
func expandEnvVars(s string) string {
	if !strings.Contains(s, "${") {
		return s
	}
	return os.Expand(s, os.Getenv)
}
