// Package config holds runtime settings for the admin console.
//
// Sources are overlaid in order, later ones winning: built-in defaults,
// a .env file plus environment variables (ADMINCLI_* prefix), a JSON config
// file (-c/-config), and finally command-line flags.
package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// BaseURL is the root of the channeling backend, e.g. "http://localhost:8080".
	BaseURL string `envconfig:"BASE_URL"`

	// RequestTimeout bounds every backend call. A hung call is cancelled,
	// not left pending forever.
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT"`

	// StoragePath is the sqlite file holding the persisted session.
	StoragePath string `envconfig:"STORAGE_PATH"`

	// PageSize is the default page size for list screens.
	PageSize int `envconfig:"PAGE_SIZE"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8080"
	c.RequestTimeout = 15 * time.Second
	c.StoragePath = "console.db"
	c.PageSize = 10
}

// LoadConfig constructs a Config from all sources.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	// A missing .env file is not an error.
	_ = godotenv.Load()
	if err := envconfig.Process("admincli", cfg); err != nil {
		return nil, err
	}

	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)
	return cfg, nil
}
