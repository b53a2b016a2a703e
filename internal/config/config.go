// Package config loads the server configuration from RETRO_ prefixed
// environment variables (optionally from a .env file) and validates it.
//
// Nested keys use a double underscore:
//
//	RETRO_DATABASE__URL       -> database.url
//	RETRO_SERVER__PORT        -> server.port
//	RETRO_LOG__SLOW_THRESHOLD -> log.slow_threshold
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "RETRO_"

type Config struct {
	Env      string         `koanf:"env" validate:"required,oneof=development test production"`
	Server   ServerConfig   `koanf:"server" validate:"required"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
	Log      LogConfig      `koanf:"log" validate:"required"`
}

type ServerConfig struct {
	Port          string        `koanf:"port" validate:"required,numeric"`
	SessionSecret string        `koanf:"session_secret"`
	ReadTimeout   time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout  time.Duration `koanf:"write_timeout" validate:"gt=0"`
	IdleTimeout   time.Duration `koanf:"idle_timeout" validate:"gt=0"`
}

// DatabaseConfig holds the connection URL and pool tuning. URLs starting with
// sqlite:// open a local SQLite file instead of PostgreSQL.
type DatabaseConfig struct {
	URL             string        `koanf:"url" validate:"required"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"gte=1"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"gte=0,ltefield=MaxOpenConns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"gte=0"`
}

type LogConfig struct {
	Level         string        `koanf:"level" validate:"oneof=debug info warn error"`
	Pretty        bool          `koanf:"pretty"`
	SlowThreshold time.Duration `koanf:"slow_threshold" validate:"gte=0"`
}

// Default returns the configuration used for every key the environment leaves unset.
func Default() *Config {
	return &Config{
		Env: "development",
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Database: DatabaseConfig{
			URL:             "host=localhost user=postgres password=postgres dbname=retroboard port=5432 sslmode=disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
		},
		Log: LogConfig{
			Level:         "info",
			Pretty:        true,
			SlowThreshold: 200 * time.Millisecond,
		},
	}
}

// Load reads .env (if present) and the process environment on top of Default.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	k := koanf.New(".")
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if !c.IsDevelopment() && len(c.Server.SessionSecret) < 32 {
		return errors.New("invalid config: RETRO_SERVER__SESSION_SECRET must be at least 32 characters outside development")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// CookieSecret falls back to a fixed key in development only.
func (c *Config) CookieSecret() []byte {
	if c.Server.SessionSecret == "" {
		return []byte("retroboard_dev_secret_change_me_")
	}
	return []byte(c.Server.SessionSecret)
}
