// Package config loads the optional tagtrack YAML configuration file and
// merges it with command-line flags. Precedence: explicitly set flags win
// over file values, file values win over built-in defaults. Flags carry
// their own environment-variable defaults, so env vars sit between flags
// and the file.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"tagtrack/internal/tracker"
)

// DefaultConcurrency keeps report runs sequential unless asked otherwise.
const DefaultConcurrency = 1

// Config is the root configuration structure.
type Config struct {
	// URL is the base URL of the GitLab instance, e.g. https://gitlab.com.
	URL string `yaml:"url"`
	// Token is the personal access token used for every API call.
	Token string `yaml:"token"`
	// Environment overrides how production environments are recognized.
	Environment EnvironmentConfig `yaml:"environment"`
	// RateLimit caps outgoing API requests per second. Zero disables the
	// cap.
	RateLimit float64 `yaml:"rate_limit"`
	// Concurrency is the default parallel fan-out of the report command.
	Concurrency int `yaml:"concurrency"`
}

// EnvironmentConfig holds the production name patterns. Exact is matched
// against the whole environment name (status mode), Substring as a contains
// match (report mode); both case-insensitive.
type EnvironmentConfig struct {
	Exact     string `yaml:"exact"`
	Substring string `yaml:"substring"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Environment: EnvironmentConfig{
			Exact:     tracker.DefaultEnvironmentName,
			Substring: tracker.DefaultEnvironmentName,
		},
		Concurrency: DefaultConcurrency,
	}
}

// Load reads and parses a YAML config file, filling unset fields with
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}

	if cfg.Environment.Exact == "" {
		cfg.Environment.Exact = tracker.DefaultEnvironmentName
	}
	if cfg.Environment.Substring == "" {
		cfg.Environment.Substring = tracker.DefaultEnvironmentName
	}
	if cfg.Concurrency == 0 {
		cfg.Concurrency = DefaultConcurrency
	}

	return cfg, nil
}

// MergeFlags overlays flag values onto the configuration. String flags win
// whenever they carry a value (set explicitly or via their env-var
// default); numeric flags only when set explicitly, since their zero
// defaults are indistinguishable from "unset". Flags absent from the set
// are ignored, so every command can share this.
func (c *Config) MergeFlags(flags *pflag.FlagSet) {
	mergeString(flags, "url", &c.URL)
	mergeString(flags, "token", &c.Token)
	if f := flags.Lookup("concurrency"); f != nil && f.Changed {
		if v, err := flags.GetInt("concurrency"); err == nil {
			c.Concurrency = v
		}
	}
	if f := flags.Lookup("rate-limit"); f != nil && f.Changed {
		if v, err := flags.GetFloat64("rate-limit"); err == nil {
			c.RateLimit = v
		}
	}
}

func mergeString(flags *pflag.FlagSet, name string, dst *string) {
	f := flags.Lookup(name)
	if f == nil {
		return
	}
	if v, err := flags.GetString(name); err == nil && (f.Changed || v != "") {
		*dst = v
	}
}

// Validate checks the merged configuration and returns one message per
// problem, empty when the configuration is usable.
func (c *Config) Validate() []string {
	var errors []string

	if c.URL == "" {
		errors = append(errors, "missing GitLab URL (--url flag, TAGTRACK_URL, or 'url' in the config file)")
	} else {
		parsed, err := url.Parse(c.URL)
		if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
			errors = append(errors, fmt.Sprintf("invalid GitLab URL '%s': must be an absolute http(s) URL", c.URL))
		}
	}

	if c.Token == "" {
		errors = append(errors, "missing access token (--token flag, TAGTRACK_TOKEN, or 'token' in the config file)")
	}

	if c.RateLimit < 0 {
		errors = append(errors, fmt.Sprintf("rate_limit must not be negative, got %g", c.RateLimit))
	}
	if c.Concurrency < 1 {
		errors = append(errors, fmt.Sprintf("concurrency must be at least 1, got %d", c.Concurrency))
	}

	return errors
}

// Patterns returns the environment patterns for the tracker.
func (c *Config) Patterns() tracker.EnvironmentPatterns {
	return tracker.EnvironmentPatterns{
		Exact:     c.Environment.Exact,
		Substring: c.Environment.Substring,
	}
}

// ErrorSummary joins validation messages into a single error message body.
func ErrorSummary(errors []string) string {
	lines := make([]string, 0, len(errors))
	for _, e := range errors {
		lines = append(lines, "  - "+e)
	}
	return strings.Join(lines, "\n")
}
