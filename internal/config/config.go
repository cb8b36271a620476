package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all application configuration. Values come from an optional
// YAML file (CONFIG_PATH) with environment variables taking precedence.
type Config struct {
	Server struct {
		ListenAddr string `yaml:"listen_addr" env:"LISTEN_ADDR" env-default:":8000"`
	} `yaml:"server"`

	Store struct {
		// Driver selects the user store backend: "memory" or "sqlite".
		Driver     string `yaml:"driver" env:"STORE_DRIVER" env-default:"memory"`
		SQLitePath string `yaml:"sqlite_path" env:"SQLITE_PATH" env-default:"userbook.db"`
	} `yaml:"store"`
}

// Load reads configuration. When CONFIG_PATH points at a YAML file it is read
// first, then overridden by environment variables; otherwise environment
// variables alone (with defaults) apply.
func Load() (*Config, error) {
	var cfg Config

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env config: %w", err)
	}

	switch cfg.Store.Driver {
	case "memory", "sqlite":
	default:
		return nil, fmt.Errorf("unknown store driver %q (want memory or sqlite)", cfg.Store.Driver)
	}

	return &cfg, nil
}
