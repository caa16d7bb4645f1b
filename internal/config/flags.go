// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/spf13/pflag"
)

// ServerFlagSetName names the server's flag set in usage output.
const ServerFlagSetName = "bloom-server"

// NetAddress is a host:port pair usable as a flag value with both the
// standard flag package and pflag.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the server command line. args excludes the program
// name.
//
// Flags:
//
//	-a                server listen address host:port
//	-d                database DSN
//	-r                redis URL for the list cache
//	-cache-ttl        list cache TTL (e.g. "30s")
//	-c / -config      JSON or YAML config file path
//	-k / -hash-key    HMAC key for the HashSHA256 header
//	-request-timeout  inbound request timeout (e.g. "10s")
//	-shutdown-timeout graceful shutdown timeout (e.g. "5s")
//	-app-version      version reported by the API
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		serverAddress   NetAddress
		databaseDSN     string
		redisURL        string
		cacheTTL        time.Duration
		configPath      string
		hashKey         string
		requestTimeout  time.Duration
		shutdownTimeout time.Duration
		appVersion      string
	)

	fs := flag.NewFlagSet(ServerFlagSetName, flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN (postgres:// URL or SQLite file path)")
	fs.StringVar(&redisURL, "r", "", "Redis URL for the client list cache")
	fs.DurationVar(&cacheTTL, "cache-ttl", 0, "Client list cache TTL (e.g., 30s)")
	fs.StringVar(&configPath, "c", "", "JSON or YAML config file path")
	fs.StringVar(&configPath, "config", "", "JSON or YAML config file path (alias)")
	fs.StringVar(&hashKey, "k", "", "Security hash key")
	fs.StringVar(&hashKey, "hash-key", "", "Security hash key (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 5s)")
	fs.StringVar(&appVersion, "app-version", "", "Application version")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			HashKey: hashKey,
			Version: appVersion,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
			Cache: Cache{
				RedisURL: redisURL,
				TTL:      cacheTTL,
			},
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		FilePath: configPath,
	}, nil
}

// BindClientFlags registers the client's persistent flags on fs and returns
// the config layer they fill once fs has been parsed (cobra does that before
// running a command).
func BindClientFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVarP(&cfg.Adapter.HTTPAddress, "address", "a", "", "bloom-crm server address (host:port or URL)")
	fs.DurationVarP(&cfg.Adapter.RequestTimeout, "timeout", "t", 0, "request timeout (e.g. 10s)")
	fs.StringVarP(&cfg.App.HashKey, "hash-key", "k", "", "security hash key")
	fs.StringVarP(&cfg.FilePath, "config", "c", "", "JSON or YAML config file path")

	return cfg
}

// String returns the address in host:port form, or "" when unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. An empty host means all interfaces; any other host
// must be "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
