// Package config provides YAML-based build configuration with environment
// variable expansion and validation.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"gopkg.in/yaml.v3"
)

// Config represents the build configuration.
type Config struct {
	Sources SourcesConfig `yaml:"sources"`
	Log     LogConfig     `yaml:"log"`
	Site    SiteConfig    `yaml:"site"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Sources.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	return c.Site.Validate()
}

// SourcesConfig locates the TEI source documents. Either Dir (holding the
// conventional treatise.xml and lexicon.xml) or both explicit paths must be
// set; explicit paths win.
type SourcesConfig struct {
	Dir      string `yaml:"dir"`
	Treatise string `yaml:"treatise"`
	Lexicon  string `yaml:"lexicon"`
}

// Validate validates the sources configuration.
func (c *SourcesConfig) Validate() error {
	explicit := c.Treatise != "" && c.Lexicon != ""
	return validation.ValidateStruct(c,
		validation.Field(&c.Dir, validation.Required.When(!explicit).Error("either sources.dir or both explicit paths are required")),
	)
}

// TreatisePath returns the treatise source path.
func (c *SourcesConfig) TreatisePath() string {
	if c.Treatise != "" {
		return c.Treatise
	}
	return filepath.Join(c.Dir, "treatise.xml")
}

// LexiconPath returns the lexicon source path.
func (c *SourcesConfig) LexiconPath() string {
	if c.Lexicon != "" {
		return c.Lexicon
	}
	return filepath.Join(c.Dir, "lexicon.xml")
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Validate validates the logging configuration.
func (c *LogConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Level, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.Format, validation.In("text", "json")),
	)
}

// SiteConfig holds optional overrides applied to the extracted metadata.
type SiteConfig struct {
	GitHubURL string `yaml:"github_url"`
}

// Validate validates the site configuration.
func (c *SiteConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.GitHubURL, is.URL),
	)
}

// Load loads configuration from a YAML file with environment variable
// expansion, then validates it.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filename, err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
