package config

import (
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	_ "github.com/joho/godotenv/autoload"
)

// Config holds everything the API needs at startup. Values come from
// the environment (a local .env file is loaded automatically); secrets
// never have file-based defaults.
type Config struct {
	Port     string `env:"PORT" env-default:"8000"`
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`

	// CORSOriginsStr is the fixed comma-separated allow-list of origins.
	CORSOriginsStr string `env:"CORS_ORIGINS" env-default:"http://localhost,http://localhost:8080,http://127.0.0.1:8080"`

	Auth     AuthConfig
	Database DatabaseConfig
}

// AuthConfig holds token signing and the seeded staff credential.
type AuthConfig struct {
	TokenSecret        string `env:"ACCESS_TOKEN_SECRET" env-default:"your_secret_key"`
	TokenExpiryMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES" env-default:"30"`

	SeedUsername string `env:"SEED_USERNAME" env-default:"admin"`
	SeedPassword string `env:"SEED_PASSWORD" env-default:"admin"`
	SeedRole     string `env:"SEED_ROLE" env-default:"admin"`
}

// DatabaseConfig holds optional PostgreSQL settings. When Host is empty
// the server runs on the in-memory store.
type DatabaseConfig struct {
	Host     string `env:"DB_HOST" env-default:""`
	Port     string `env:"DB_PORT" env-default:"5432"`
	User     string `env:"DB_USERNAME" env-default:"postgres"`
	Password string `env:"DB_PASSWORD" env-default:""`
	Database string `env:"DB_DATABASE" env-default:"vetclinic"`
}

// Enabled reports whether a database backend was configured.
func (c DatabaseConfig) Enabled() bool {
	return c.Host != ""
}

// CORSOrigins returns the parsed origin allow-list.
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.CORSOriginsStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}
	return &cfg, nil
}
