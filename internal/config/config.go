package config

import (
	"github.com/caarlos0/env/v11"

	"notifyads/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// Nested structs are parsed with their envPrefix. Use Load to construct a
// Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	HTTP  configs.HTTP   `envPrefix:"HTTP_"`
	Log   configs.Logger `envPrefix:"LOG_"`
	Store configs.Store  `envPrefix:"STORE_"`

	// Psql configures PostgreSQL when Store.Backend is postgres.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Redis configures Redis when Store.Backend is redis.
	Redis configs.Redis `envPrefix:"REDIS_"`

	NATS configs.NATS `envPrefix:"NATS_"`
}

// Load reads configuration from environment variables into a Config. All
// fields get their defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
