// Package config loads the worker/CLI configuration from a YAML file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML values like "5m" decode.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("UnmarshalYAML: %w", err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) String() string { return d.Std().String() }

// Config is the full configuration tree.
type Config struct {
	// Store is the local persistence layer.
	Store StoreConfig `yaml:"store"`

	// BigQuery is the optional analytics sink. Disabled unless a
	// project is set.
	BigQuery BigQueryConfig `yaml:"bigquery"`

	// MatchWindow bounds how far apart two receive timestamps may be
	// for records to count as cross-institution duplicate candidates.
	MatchWindow Duration `yaml:"match_window"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	LogLevel string `yaml:"log_level"`
}

// StoreConfig configures the sqlite store.
type StoreConfig struct {
	// Path is the sqlite database file. ":memory:" is accepted.
	Path string `yaml:"path"`
}

// BigQueryConfig configures the analytics sink.
type BigQueryConfig struct {
	ProjectID string `yaml:"project_id"`
	Dataset   string `yaml:"dataset"`
	Table     string `yaml:"table"`
}

// Enabled reports whether the sink should be wired up.
func (c BigQueryConfig) Enabled() bool {
	return c.ProjectID != ""
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Store:       StoreConfig{Path: "ledger.db"},
		BigQuery:    BigQueryConfig{Dataset: "ledger", Table: "transactions"},
		MatchWindow: Duration(3 * time.Minute),
		LogLevel:    "info",
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("Load: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("Load: parse %s: %w", path, err)
	}

	if cfg.Store.Path == "" {
		return Config{}, fmt.Errorf("Load: store.path must not be empty")
	}
	if cfg.MatchWindow < 0 {
		return Config{}, fmt.Errorf("Load: match_window must not be negative")
	}
	return cfg, nil
}
