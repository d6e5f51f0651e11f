package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file read when --config is not given.
const DefaultPath = "file-go.yaml"

type Config struct {
	Root          string              `yaml:"root"`
	Exclude       []string            `yaml:"exclude"`
	Presets       map[string][]string `yaml:"presets"`
	LogLevel      string              `yaml:"log_level"`
	IncludeHidden bool                `yaml:"include_hidden"`
}

func DefaultConfig() *Config {
	return &Config{
		Root:     ".",
		Exclude:  []string{},
		Presets:  map[string][]string{},
		LogLevel: "warn",
	}
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	// An explicit "exclude:" or "presets:" with no items decodes to nil
	if cfg.Exclude == nil {
		cfg.Exclude = []string{}
	}
	presets := make(map[string][]string, len(cfg.Presets))
	for name, exts := range cfg.Presets {
		presets[strings.ToLower(name)] = exts
	}
	cfg.Presets = presets
	if strings.TrimSpace(cfg.Root) == "" {
		cfg.Root = "."
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}

	return cfg, nil
}

// Preset returns the extension set configured under name.
func (c *Config) Preset(name string) ([]string, bool) {
	exts, ok := c.Presets[strings.ToLower(name)]
	return exts, ok
}
