// Package config loads server settings from ALIGNMENT_* environment variables.
package config

import (
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-alignment/internal/entities/alignment"
	"github.com/KirkDiggler/rpg-alignment/internal/errors"
)

// Storage backends for the ledger and roster
const (
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
)

// Config holds everything the server reads from the environment
type Config struct {
	GRPCPort int `env:"GRPC_PORT" envDefault:"50051"`
	HTTPPort int `env:"HTTP_PORT" envDefault:"8080"`

	Storage    string   `env:"STORAGE" envDefault:"redis"`
	RedisAddrs []string `env:"REDIS_ADDRS" envDefault:"localhost:6379" envSeparator:","`
	RedisTLS   bool     `env:"REDIS_TLS" envDefault:"false"`
	SQLitePath string   `env:"SQLITE_PATH" envDefault:"alignment.db"`

	// DefaultLaw and DefaultMoral seed the tab for characters with no record
	DefaultLaw   int `env:"DEFAULT_LAW" envDefault:"14"`
	DefaultMoral int `env:"DEFAULT_MORAL" envDefault:"14"`
	// GridLaw and GridMoral place unrecorded characters on the party grid
	GridLaw   int `env:"GRID_DEFAULT_LAW" envDefault:"22"`
	GridMoral int `env:"GRID_DEFAULT_MORAL" envDefault:"22"`

	SyncTraits bool `env:"SYNC_TRAITS" envDefault:"true"`

	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	OTelEndpoint string `env:"OTEL_ENDPOINT"`
	ServiceName  string `env:"SERVICE_NAME" envDefault:"rpg-alignment"`
}

// Load parses the environment into a Config and validates it
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "ALIGNMENT_"}); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ports, storage selection and default alignments
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("GRPCPort", c.GRPCPort, 1, 65535, vb)
	errors.ValidateRange("HTTPPort", c.HTTPPort, 0, 65535, vb)

	switch strings.ToLower(c.Storage) {
	case StorageRedis:
		if len(c.RedisAddrs) == 0 {
			vb.RequiredField("RedisAddrs")
		}
	case StorageSQLite:
		errors.ValidateRequired("SQLitePath", c.SQLitePath, vb)
	default:
		vb.Fieldf("Storage", "must be %q or %q", StorageRedis, StorageSQLite)
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		vb.Field("LogLevel", "must be debug, info, warn or error")
	}

	errors.ValidateRange("DefaultLaw", c.DefaultLaw, alignment.MinValue, alignment.MaxValue, vb)
	errors.ValidateRange("DefaultMoral", c.DefaultMoral, alignment.MinValue, alignment.MaxValue, vb)
	errors.ValidateRange("GridLaw", c.GridLaw, alignment.MinValue, alignment.MaxValue, vb)
	errors.ValidateRange("GridMoral", c.GridMoral, alignment.MinValue, alignment.MaxValue, vb)

	return vb.Build()
}

// SlogLevel maps LogLevel onto slog
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// StorageBackend is Storage normalized to lower case
func (c *Config) StorageBackend() string {
	return strings.ToLower(c.Storage)
}

// Default is the tab default alignment
func (c *Config) Default() alignment.Value {
	return alignment.Value{Law: c.DefaultLaw, Moral: c.DefaultMoral}
}

// GridDefault is the party grid default alignment
func (c *Config) GridDefault() alignment.Value {
	return alignment.Value{Law: c.GridLaw, Moral: c.GridMoral}
}
