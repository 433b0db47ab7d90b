// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Environment variables that override the config file.
const (
	EnvOutputDir   = "SIGNOFF_OUTPUT_DIR"
	EnvWorkDir     = "SIGNOFF_WORK_DIR"
	EnvLogoPath    = "SIGNOFF_LOGO_PATH"
	EnvCatalogPath = "SIGNOFF_CATALOG_PATH"
	EnvCollision   = "SIGNOFF_COLLISION"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional in the file; the merged result must name an output directory.
type Config struct {
	// Paths
	OutputDir   string `json:"output_dir,omitempty" validate:"required"` // Directory receiving sign-off documents
	WorkDir     string `json:"work_dir,omitempty"`                       // Directory for transient signature files
	LogoPath    string `json:"logo_path,omitempty"`                      // Optional header logo (PNG or JPEG)
	CatalogPath string `json:"catalog_path,omitempty"`                   // Optional YAML checklist catalog

	// Behavior
	Collision string `json:"collision,omitempty" validate:"omitempty,oneof=suffix overwrite"` // "suffix" or "overwrite"
	Verbose   bool   `json:"verbose,omitempty"`                                              // Print detailed debug information
}

// Defaults returns the values used when neither flags, environment nor config file set a field.
func Defaults() Config {
	return Config{
		WorkDir:   filepath.Join(os.TempDir(), "signoff"),
		LogoPath:  "logo.png",
		Collision: "suffix",
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv reads the SIGNOFF_* environment variables.
func FromEnv() Config {
	return Config{
		OutputDir:   os.Getenv(EnvOutputDir),
		WorkDir:     os.Getenv(EnvWorkDir),
		LogoPath:    os.Getenv(EnvLogoPath),
		CatalogPath: os.Getenv(EnvCatalogPath),
		Collision:   os.Getenv(EnvCollision),
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.CatalogPath != "" {
		if _, err := os.Stat(c.CatalogPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: catalog file not found: %s", c.CatalogPath)
		}
	}

	return nil
}

// PrepareOutputDir creates the output directory if needed and checks that a
// file can be written into it. It runs before any rendering work starts.
func (c *Config) PrepareOutputDir() error {
	if c.OutputDir == "" {
		return fmt.Errorf("config error: 'output_dir' is not set (use --output-dir or %s)", EnvOutputDir)
	}

	info, err := os.Stat(c.OutputDir)
	switch {
	case os.IsNotExist(err):
		if err := os.MkdirAll(c.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", c.OutputDir, err)
		}
	case err != nil:
		return fmt.Errorf("failed to access output directory %s: %w", c.OutputDir, err)
	case !info.IsDir():
		return fmt.Errorf("output path %s is not a directory", c.OutputDir)
	}

	probe, err := os.CreateTemp(c.OutputDir, ".signoff-probe-*")
	if err != nil {
		return fmt.Errorf("output directory %s is not writable: %w", c.OutputDir, err)
	}
	name := probe.Name()
	_ = probe.Close()
	if err := os.Remove(name); err != nil {
		return fmt.Errorf("failed to clean up write probe in %s: %w", c.OutputDir, err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to layer flags over environment over config file over built-in defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.WorkDir == "" {
		result.WorkDir = defaults.WorkDir
	}
	if result.LogoPath == "" {
		result.LogoPath = defaults.LogoPath
	}
	if result.CatalogPath == "" {
		result.CatalogPath = defaults.CatalogPath
	}
	if result.Collision == "" {
		result.Collision = defaults.Collision
	}

	// Bool fields: true anywhere wins
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}
