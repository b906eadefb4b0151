// Package config provides configuration loading and management for eliref.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Config represents the complete eliref configuration.
type Config struct {
	Fetch FetchConfig `yaml:"fetch" mapstructure:"fetch"`
	Parse ParseConfig `yaml:"parse" mapstructure:"parse"`
	Log   LogConfig   `yaml:"log" mapstructure:"log"`
}

// FetchConfig configures the N-Triples HTTP fetcher.
type FetchConfig struct {
	// Timeout bounds a whole request, body included (e.g. "30s").
	Timeout string `yaml:"timeout" mapstructure:"timeout"`
	// UserAgent is sent with every request.
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`
	// MaxBodyBytes caps the response body size.
	MaxBodyBytes int64 `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	// MaxRedirects is the number of redirects followed before giving up.
	MaxRedirects int `yaml:"max_redirects" mapstructure:"max_redirects"`
	// RequestsPerSecond paces outgoing requests; 0 disables pacing.
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
}

// ParseConfig configures the N-Triples decoder.
type ParseConfig struct {
	// MaxLineBytes bounds a single line; negative disables the limit.
	MaxLineBytes int `yaml:"max_line_bytes" mapstructure:"max_line_bytes"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level" mapstructure:"level"`
	// JSON switches to structured JSON output.
	JSON bool `yaml:"json" mapstructure:"json"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Fetch: FetchConfig{
			Timeout:           "30s",
			UserAgent:         "eliref/" + Version,
			MaxBodyBytes:      10 << 20,
			MaxRedirects:      10,
			RequestsPerSecond: 2,
		},
		Parse: ParseConfig{
			MaxLineBytes: 1 << 20,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Version is reported in the default User-Agent and by `eliref version`.
var Version = "0.1.0"

// TimeoutDuration returns the parsed fetch timeout, or zero when unset.
func (c FetchConfig) TimeoutDuration() time.Duration {
	if c.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Fetch.Timeout != "" {
		d, err := time.ParseDuration(c.Fetch.Timeout)
		if err != nil {
			return errors.Wrap(err, "invalid fetch.timeout format")
		}
		if d < 0 {
			return errors.New("fetch.timeout must be non-negative")
		}
	}
	if c.Fetch.MaxBodyBytes <= 0 {
		return errors.New("fetch.max_body_bytes must be positive")
	}
	if c.Fetch.MaxRedirects < 0 {
		return errors.New("fetch.max_redirects must be non-negative")
	}
	if c.Fetch.RequestsPerSecond < 0 {
		return errors.New("fetch.requests_per_second must be non-negative")
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return errors.WithHint(
			errors.Newf("unknown log.level %q", c.Log.Level),
			"use one of debug, info, warn, error",
		)
	}
	return nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal config")
	}
	return data, nil
}

// SaveToFile saves configuration to a YAML file.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}
	return nil
}
