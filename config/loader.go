package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. ELIREF_FETCH_TIMEOUT.
	EnvPrefix = "ELIREF"
	// ProjectConfigFile is looked up in the working directory.
	ProjectConfigFile = "eliref.yaml"
	// UserConfigDir is the directory for user-level config.
	UserConfigDir = ".config/eliref"
	// UserConfigFile is the name of the user-level config file.
	UserConfigFile = "config.yaml"
)

// SetDefaults registers every key of DefaultConfig with v. Keys unknown to
// viper are not picked up from the environment, so all keys are listed.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("fetch.timeout", d.Fetch.Timeout)
	v.SetDefault("fetch.user_agent", d.Fetch.UserAgent)
	v.SetDefault("fetch.max_body_bytes", d.Fetch.MaxBodyBytes)
	v.SetDefault("fetch.max_redirects", d.Fetch.MaxRedirects)
	v.SetDefault("fetch.requests_per_second", d.Fetch.RequestsPerSecond)
	v.SetDefault("parse.max_line_bytes", d.Parse.MaxLineBytes)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.json", d.Log.JSON)
}

// NewViper returns a viper instance with defaults and environment binding.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigType("yaml")
	SetDefaults(v)
	return v
}

// Load reads configuration with layered precedence:
//  1. defaults
//  2. the config file (path, else ./eliref.yaml, else ~/.config/eliref/config.yaml)
//  3. ELIREF_* environment variables
//
// An explicit path that does not exist is an error; the implicit locations
// are optional.
func Load(path string) (*Config, string, error) {
	v := NewViper()

	used := path
	if used == "" {
		used = findConfigFile()
	}
	if used != "" {
		v.SetConfigFile(used)
		if err := v.ReadInConfig(); err != nil {
			return nil, "", errors.Wrapf(err, "failed to read config file %s", used)
		}
	}

	cfg, err := LoadWithViper(v)
	if err != nil {
		return nil, "", err
	}
	return cfg, used, nil
}

// LoadWithViper unmarshals and validates configuration from v.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// UserConfigPath returns the path of the user-level config file.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, UserConfigDir, UserConfigFile)
}

func findConfigFile() string {
	if _, err := os.Stat(ProjectConfigFile); err == nil {
		return ProjectConfigFile
	}
	if user := UserConfigPath(); user != "" {
		if _, err := os.Stat(user); err == nil {
			return user
		}
	}
	return ""
}
