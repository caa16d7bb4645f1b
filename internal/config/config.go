// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the full configuration tree shared by both binaries.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: variable name for scalar fields.
type StructuredConfig struct {
	App     App     `envPrefix:"APP_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Server  Server  `envPrefix:"SERVER_"`
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// FilePath is the optional path to a JSON or YAML config file. The
	// format is picked from the extension.
	// Env: CONFIG
	FilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// HashKey is the HMAC key for the HashSHA256 request integrity header.
	// Empty disables signing and checking.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is reported by GET /api/version/ and `bloom version`.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the persistence backends.
type Storage struct {
	DB    DB    `envPrefix:"DB_"`
	Cache Cache `envPrefix:"CACHE_"`
}

// DB holds the relational database settings.
type DB struct {
	// DSN selects the driver: postgres:// and postgresql:// URLs open
	// PostgreSQL via pgx, anything else is taken as a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Cache holds the optional redis list cache settings.
type Cache struct {
	// RedisURL is a redis:// URL. Empty disables the cache.
	// Env: STORAGE_CACHE_REDIS_URL
	RedisURL string `env:"REDIS_URL"`

	// TTL bounds how long a cached client list is served.
	// Env: STORAGE_CACHE_TTL
	TTL time.Duration `env:"TTL"`
}

// Server holds the inbound HTTP settings.
type Server struct {
	// HTTPAddress is the listen address in host:port form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown after a signal.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Adapter holds the outbound settings the client uses to reach the server.
type Adapter struct {
	// HTTPAddress is the server base address, with or without scheme.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Defaults used when no source sets a value.
const (
	DefaultServerAddress   = "localhost:8080"
	DefaultRequestTimeout  = 10 * time.Second
	DefaultShutdownTimeout = 5 * time.Second
	DefaultDSN             = "bloom.db"
	DefaultCacheTTL        = 30 * time.Second
)

// Defaults returns the lowest-precedence configuration layer.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			DB:    DB{DSN: DefaultDSN},
			Cache: Cache{TTL: DefaultCacheTTL},
		},
		Server: Server{
			HTTPAddress:     DefaultServerAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}

// GetStructuredConfig assembles the server configuration from defaults,
// .env, the environment, the given command-line arguments and the optional
// config file, then validates it.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(DotEnvFile).
		withEnv().
		withFlags(args).
		withFile().
		build()
}
