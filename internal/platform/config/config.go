package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration, loaded from environment
// variables with an optional .env file for local development.
type Config struct {
	PgsqlURL           string
	Port               string
	IsProduction       bool
	LedgerStore        string
	JWTSecret          string
	JWTExpiryDuration  time.Duration
	JWTIssuer          string
	CORSAllowedOrigins []string
}

const (
	// StorePostgres selects the pgx-backed repositories plus migrations.
	StorePostgres = "postgres"
	// StoreFixture selects the in-memory seeded dataset, useful for demos
	// and local frontend work without a database.
	StoreFixture = "fixture"
)

// LoadConfig reads configuration from the environment. A .env file in the
// working directory is merged in when present.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, relying on environment variables")
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LEDGER_STORE", "")
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("JWT_ISSUER", "khata-ledger-app")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	expiry, err := time.ParseDuration(v.GetString("JWT_EXPIRY_DURATION"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRY_DURATION: %w", err)
	}

	cfg := &Config{
		PgsqlURL:           v.GetString("PGSQL_URL"),
		Port:               v.GetString("PORT"),
		IsProduction:       v.GetBool("IS_PRODUCTION"),
		LedgerStore:        strings.ToLower(v.GetString("LEDGER_STORE")),
		JWTSecret:          v.GetString("JWT_SECRET"),
		JWTExpiryDuration:  expiry,
		JWTIssuer:          v.GetString("JWT_ISSUER"),
		CORSAllowedOrigins: strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ","),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.LedgerStore != "" && cfg.LedgerStore != StorePostgres && cfg.LedgerStore != StoreFixture {
		return nil, fmt.Errorf("invalid LEDGER_STORE %q, expected %q or %q", cfg.LedgerStore, StorePostgres, StoreFixture)
	}
	if cfg.LedgerStore == StorePostgres && cfg.PgsqlURL == "" {
		return nil, fmt.Errorf("PGSQL_URL is required when LEDGER_STORE=postgres")
	}

	return cfg, nil
}

// UseFixtureStore reports whether the in-memory fixture store should back the
// repositories. Picking it explicitly, or leaving the database URL unset,
// both select it.
func (c *Config) UseFixtureStore() bool {
	if c.LedgerStore == StoreFixture {
		return true
	}
	return c.LedgerStore == "" && c.PgsqlURL == ""
}
