// Package config provides CLI configuration management for the rockgyo
// command-line tool. It supports loading configuration from a YAML file,
// environment variables, and command-line flags, in that precedence order.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// OutputFormat defines the supported output formats for CLI results.
type OutputFormat string

const (
	// OutputFormatText is human-readable plain text output.
	OutputFormatText OutputFormat = "text"
	// OutputFormatJSON is JSON-formatted output for machine processing.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatYAML is YAML-formatted output for machine processing.
	OutputFormatYAML OutputFormat = "yaml"
)

// Default configuration values.
const (
	DefaultOutputFormat    = OutputFormatText
	DefaultLogLevel        = "info"
	DefaultCharset         = "auto"
	DefaultTopParticipants = 20
	DefaultTopRankings     = 10
	DefaultConfigDir       = ".rockgyo"
	DefaultConfigFile      = "config.yaml"
)

// Config holds the CLI configuration.
type Config struct {
	// OutputFormat selects text, json, or yaml report output.
	OutputFormat OutputFormat `yaml:"output_format"`

	// LogLevel sets the minimum log level (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	// Charset forces the transcript source encoding (auto, utf-8, cp949).
	Charset string `yaml:"charset"`

	// Keywords overrides the default topic vocabulary. Each entry may
	// contain internal whitespace, which is matched verbatim.
	Keywords []string `yaml:"keywords"`

	// TopParticipants caps participant-keyed leaderboards.
	TopParticipants int `yaml:"top_participants"`

	// TopRankings caps date, hour, and per-keyword leaderboards.
	TopRankings int `yaml:"top_rankings"`
}

// DefaultConfig returns a Config populated with defaults.
func DefaultConfig() *Config {
	return &Config{
		OutputFormat:    DefaultOutputFormat,
		LogLevel:        DefaultLogLevel,
		Charset:         DefaultCharset,
		TopParticipants: DefaultTopParticipants,
		TopRankings:     DefaultTopRankings,
	}
}

// ConfigPath returns the default config file path (~/.rockgyo/config.yaml).
func ConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, DefaultConfigDir, DefaultConfigFile), nil
}

// LoadConfig loads configuration from the default file path and applies
// environment overrides. A missing config file is not an error.
func LoadConfig() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFrom(path)
}

// LoadConfigFrom loads configuration from a specific file path and applies
// environment overrides. A missing file yields defaults.
func LoadConfigFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies ROCKGYO_* environment variables.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("ROCKGYO_OUTPUT"); v != "" {
		c.OutputFormat = OutputFormat(v)
	}
	if v := os.Getenv("ROCKGYO_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("ROCKGYO_CHARSET"); v != "" {
		c.Charset = v
	}
	if v := os.Getenv("ROCKGYO_KEYWORDS"); v != "" {
		c.Keywords = ParseKeywordList(v)
	}
	if v := os.Getenv("ROCKGYO_TOP_PARTICIPANTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.TopParticipants = n
		}
	}
	if v := os.Getenv("ROCKGYO_TOP_RANKINGS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.TopRankings = n
		}
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch c.OutputFormat {
	case OutputFormatText, OutputFormatJSON, OutputFormatYAML:
	default:
		return fmt.Errorf("invalid output format %q (want text, json, or yaml)", c.OutputFormat)
	}
	if c.TopParticipants <= 0 {
		return fmt.Errorf("top_participants must be positive, got %d", c.TopParticipants)
	}
	if c.TopRankings <= 0 {
		return fmt.Errorf("top_rankings must be positive, got %d", c.TopRankings)
	}
	return nil
}

// ParseKeywordList splits a comma-separated keyword list. Surrounding
// whitespace is trimmed from each keyword; internal whitespace in
// multi-word keywords is preserved. Empty entries are dropped.
func ParseKeywordList(s string) []string {
	parts := strings.Split(s, ",")
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			keywords = append(keywords, p)
		}
	}
	return keywords
}
