// Package config loads CLI settings with koanf: built-in defaults, then an
// optional TOML or YAML file, then CMPENGINE_* environment variables.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/pthm/cmpengine"
)

// EnvPrefix prefixes environment overrides, e.g. CMPENGINE_SERVER_ADDR.
const EnvPrefix = "CMPENGINE_"

// Config holds the CLI settings.
type Config struct {
	Namespace string `koanf:"namespace"`
	Markers   bool   `koanf:"markers"`
	MaxDepth  int    `koanf:"max_depth"`
	MaxNodes  int    `koanf:"max_nodes"`
	Verbosity int    `koanf:"verbosity"`
	Render    Render `koanf:"render"`
	Server    Server `koanf:"server"`
}

// Render holds batch rendering settings.
type Render struct {
	Concurrency int    `koanf:"concurrency"`
	Mode        string `koanf:"mode"`
}

// Server holds settings for the serve command.
type Server struct {
	Addr   string `koanf:"addr"`
	Prefix string `koanf:"prefix"`
	Key    string `koanf:"key"`
}

func defaults() map[string]any {
	return map[string]any{
		"namespace":          cmpengine.DefaultNamespace,
		"markers":            true,
		"max_depth":          cmpengine.DefaultMaxDepth,
		"max_nodes":          cmpengine.DefaultMaxNodes,
		"verbosity":          0,
		"render.concurrency": 4,
		"render.mode":        "string",
		"server.addr":        ":8080",
		"server.prefix":      "/_engine/",
		"server.key":         "",
	}
}

// Load reads configuration. path may be empty, in which case
// $XDG_CONFIG_HOME/cmpengine/config.toml (or .yaml) is used if present.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path == "" {
		path = discover()
	}
	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	// CMPENGINE_SERVER_ADDR -> server.addr; the first underscore after the
	// section name separates it from the key.
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		for _, section := range []string{"render_", "server_"} {
			if strings.HasPrefix(key, section) {
				return strings.TrimSuffix(section, "_") + "." + strings.TrimPrefix(key, section)
			}
		}
		return key
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	}
	return nil, fmt.Errorf("unsupported config file %s: want .toml or .yaml", path)
}

func discover() string {
	for _, name := range []string{"cmpengine/config.toml", "cmpengine/config.yaml"} {
		if p, err := xdg.SearchConfigFile(name); err == nil {
			return p
		}
	}
	return ""
}

// EngineOptions translates the config into engine options.
func (c *Config) EngineOptions() []cmpengine.Option {
	opts := []cmpengine.Option{
		cmpengine.WithNamespace(c.Namespace),
		cmpengine.WithMarkers(c.Markers),
		cmpengine.WithDepthLimit(c.MaxDepth),
		cmpengine.WithNodeLimit(c.MaxNodes),
	}
	if c.Server.Key != "" {
		opts = append(opts, cmpengine.WithKey([]byte(c.Server.Key)))
	}
	return opts
}
