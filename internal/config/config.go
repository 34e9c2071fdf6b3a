// Package config loads the application configuration from a YAML file with
// environment overrides. Everything has a default; a missing config file is
// not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"ebisu/internal/bridge"
	"ebisu/internal/layout"
)

// Config is the full application configuration.
type Config struct {
	// DefaultPanel is shown when the last panel is closed.
	DefaultPanel string `yaml:"default_panel"`

	Bridge BridgeConfig `yaml:"bridge"`
	Apollo ApolloConfig `yaml:"apollo"`
	Agent  AgentConfig  `yaml:"agent"`
	Log    LogConfig    `yaml:"log"`
}

// BridgeConfig configures the agent action server.
type BridgeConfig struct {
	Addr string `yaml:"addr"`
}

// ApolloConfig configures the Apollo API client. APIKey is normally left
// out of the file and supplied via APOLLO_API_KEY.
type ApolloConfig struct {
	Endpoint string `yaml:"endpoint"`
	APIKey   string `yaml:"api_key"`
}

// AgentConfig configures the external agent backend. An empty command
// selects the Apollo search runner (or the stub when no API key is set).
type AgentConfig struct {
	Command []string `yaml:"command"`
}

// LogConfig configures file logging. An empty file disables logging; the
// terminal belongs to the TUI.
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DefaultPanel: "chat",
		Bridge:       BridgeConfig{Addr: bridge.DefaultAddr},
		Log:          LogConfig{Level: "info"},
	}
}

// DefaultPanelID returns the fallback panel as a layout id.
func (c Config) DefaultPanelID() layout.PanelID {
	return layout.PanelID(c.DefaultPanel)
}

// Load reads configuration from path. An empty path checks $EBISU_CONFIG,
// then ~/.config/ebisu/config.yaml; if neither exists the defaults are
// returned. An explicitly given path that cannot be read is an error.
// APOLLO_API_KEY and EBISU_BRIDGE_ADDR override the file.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if path == "" {
		path = os.Getenv("EBISU_CONFIG")
		explicit = path != ""
	}
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, ".config", "ebisu", "config.yaml")
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		case explicit:
			return cfg, fmt.Errorf("read config: %w", err)
		}
	}

	applyEnv(&cfg)
	if cfg.DefaultPanel == "" {
		cfg.DefaultPanel = Default().DefaultPanel
	}
	if cfg.Bridge.Addr == "" {
		cfg.Bridge.Addr = bridge.DefaultAddr
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if key := os.Getenv("APOLLO_API_KEY"); key != "" {
		cfg.Apollo.APIKey = key
	}
	if addr := os.Getenv("EBISU_BRIDGE_ADDR"); addr != "" {
		cfg.Bridge.Addr = addr
	}
}
