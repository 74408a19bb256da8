// Package config loads and represents the servr.yml configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultPort is the port used when neither the config file nor the
	// user specifies one.
	DefaultPort = 8000

	// DefaultRecentLimit is how many recent projects are surfaced by default.
	DefaultRecentLimit = 10

	// DefaultStopTimeout bounds the graceful-terminate wait before the
	// child server process is force-killed.
	DefaultStopTimeout = 5 * time.Second
)

// Config represents the servr.yml configuration.
type Config struct {
	Server ServerConfig `yaml:"server,omitempty"`
	Recent RecentConfig `yaml:"recent,omitempty"`

	// Extensions captures all other top-level keys (e.g. "logging") for
	// tool-scoped sections decoded on demand via UnmarshalExtension.
	Extensions map[string]interface{} `yaml:",inline"`
}

// ServerConfig controls the server lifecycle manager.
type ServerConfig struct {
	// Port is the default port offered to the user.
	Port int `yaml:"port,omitempty"`

	// OpenBrowser controls whether the browser is opened after a
	// successful start. Defaults to true.
	OpenBrowser *bool `yaml:"open_browser,omitempty"`

	// Command overrides the child static-file-server command. The strings
	// "{dir}" and "{port}" are substituted before spawning. When empty,
	// servr re-invokes its own executable with the `serve` subcommand.
	Command []string `yaml:"command,omitempty"`

	// StopTimeoutSeconds bounds the graceful-terminate wait before
	// escalating to a forced kill.
	StopTimeoutSeconds int `yaml:"stop_timeout_seconds,omitempty"`
}

// RecentConfig controls the recent-projects store.
type RecentConfig struct {
	// Limit is the maximum number of entries surfaced in listings.
	Limit int `yaml:"limit,omitempty"`
}

// Default returns a Config populated with built-in defaults.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:               DefaultPort,
			StopTimeoutSeconds: int(DefaultStopTimeout / time.Second),
		},
		Recent: RecentConfig{
			Limit: DefaultRecentLimit,
		},
	}
}

// Load reads the configuration from the given path. A missing file yields
// the defaults; a malformed file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults fills in zero-valued fields after unmarshaling.
func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.StopTimeoutSeconds == 0 {
		c.Server.StopTimeoutSeconds = int(DefaultStopTimeout / time.Second)
	}
	if c.Recent.Limit == 0 {
		c.Recent.Limit = DefaultRecentLimit
	}
}

// ShouldOpenBrowser reports whether the browser should be opened after a
// successful start.
func (c *Config) ShouldOpenBrowser() bool {
	if c.Server.OpenBrowser == nil {
		return true
	}
	return *c.Server.OpenBrowser
}

// StopTimeout returns the bounded wait before a graceful stop is escalated
// to a forced kill.
func (c *Config) StopTimeout() time.Duration {
	if c.Server.StopTimeoutSeconds <= 0 {
		return DefaultStopTimeout
	}
	return time.Duration(c.Server.StopTimeoutSeconds) * time.Second
}

// UnmarshalExtension decodes a specific extension's configuration from the
// loaded servr.yml into the provided target struct. The target must be a
// pointer. This provides a type-safe way for subsystems (e.g. logging) to
// access their custom configuration sections.
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		// It's not an error if the key doesn't exist.
		// The target struct will simply remain zero-valued.
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "yaml",
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}
