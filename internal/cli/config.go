package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/printgrid/pkg/templates"
)

// Config is the on-disk CLI configuration, read from
// ~/.config/printgrid/config.toml. Every field has a working default so the
// file is optional.
type Config struct {
	// Layout defaults
	Template string  `toml:"template"`
	Paper    string  `toml:"paper"`
	Unit     string  `toml:"unit"`
	Margin   float64 `toml:"margin"`

	// CacheDir overrides the XDG cache location.
	CacheDir string `toml:"cache_dir"`

	// Addr is the default listen address for the serve command.
	Addr string `toml:"addr"`

	// Store selects the template store backend: "file" (default),
	// "memory", "redis", or "mongo".
	Store string `toml:"store"`

	Redis RedisConfig `toml:"redis"`
	Mongo MongoConfig `toml:"mongo"`
}

// RedisConfig configures the redis template store.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// MongoConfig configures the mongo template store.
type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Addr:  ":8080",
		Store: "file",
	}
}

// LoadConfig reads and parses a config file.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadConfigOrDefault loads ~/.config/printgrid/config.toml, falling back
// to defaults when the file is absent or unreadable.
func LoadConfigOrDefault() *Config {
	dir, err := configDir()
	if err != nil {
		return DefaultConfig()
	}
	path := filepath.Join(dir, "config.toml")
	if _, err := os.Stat(path); err != nil {
		return DefaultConfig()
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

// newRegistry builds the template registry on the configured store backend
// and loads its persisted templates.
func (c *CLI) newRegistry(ctx context.Context) (*templates.Registry, error) {
	store, err := c.newStore(ctx)
	if err != nil {
		return nil, err
	}
	registry := templates.NewRegistry(store)
	if err := registry.Load(ctx); err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	return registry, nil
}

func (c *CLI) newStore(ctx context.Context) (templates.Store, error) {
	backend := "file"
	if c.Config != nil && c.Config.Store != "" {
		backend = c.Config.Store
	}

	switch backend {
	case "memory":
		return templates.NewMemoryStore(), nil
	case "redis":
		return templates.NewRedisStore(ctx, templates.RedisConfig{
			Addr:     c.Config.Redis.Addr,
			Password: c.Config.Redis.Password,
			DB:       c.Config.Redis.DB,
		})
	case "mongo":
		return templates.NewMongoStore(ctx, templates.MongoConfig{
			URI:        c.Config.Mongo.URI,
			Database:   c.Config.Mongo.Database,
			Collection: c.Config.Mongo.Collection,
		})
	case "file":
		dir, err := configDir()
		if err != nil {
			return nil, err
		}
		return templates.NewFileStore(filepath.Join(dir, "templates"))
	default:
		return nil, fmt.Errorf("unknown template store %q (must be one of: file, memory, redis, mongo)", backend)
	}
}

// serveAddr returns the configured listen address.
func (c *CLI) serveAddr() string {
	if c.Config != nil && c.Config.Addr != "" {
		return c.Config.Addr
	}
	return ":8080"
}
