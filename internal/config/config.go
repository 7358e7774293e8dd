// Package config loads daemon and CLI configuration from the
// environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config holds the paths shared by the store daemon, the MCP server,
// and the CLI. Unset values fall back to locations under the user's
// cache directory.
type Config struct {
	// SocketPath is the Unix socket the store daemon listens on.
	SocketPath string `env:"OFFSTORE_SOCK"`
	// DBPath is the bbolt database file.
	DBPath string `env:"OFFSTORE_DB"`
	// Bucket is the bbolt bucket holding all records.
	Bucket string `env:"OFFSTORE_BUCKET" envDefault:"records"`
}

// Load parses the environment and fills in defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.SocketPath == "" {
		cfg.SocketPath = filepath.Join(baseDir(), "store.sock")
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(baseDir(), "store.bbolt")
	}
	return cfg, nil
}

func baseDir() string {
	home, _ := os.UserHomeDir()
	if home == "" {
		home = "."
	}
	return filepath.Join(home, ".cache", "offstore")
}
