// Cinelog - Movie Catalog and Community Ratings API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelog

// Package config loads and validates the application configuration.
//
// Configuration is layered with Koanf v2: built-in defaults, then an
// optional YAML config file, then environment variables (highest priority).
package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Database DatabaseConfig `koanf:"database"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host        string        `koanf:"host"`
	Port        int           `koanf:"port"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"`
}

// SecurityConfig holds authentication, authorization, and limiter settings.
type SecurityConfig struct {
	// JWTSecret signs and verifies bearer tokens (HS256). At least 32
	// characters in production.
	JWTSecret string `koanf:"jwt_secret"`

	// SessionTimeout bounds token validity.
	SessionTimeout time.Duration `koanf:"session_timeout"`

	// AdminEmail and AdminPassword define the super-admin identity used by
	// the Basic scheme. This identity bypasses account lookup and carries an
	// empty role; policy tables recognize it by subject.
	AdminEmail    string `koanf:"admin_email"`
	AdminPassword string `koanf:"admin_password"`

	// RateLimitReqs / RateLimitWindow configure the global per-IP throttle.
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`

	// QuotaRequests / QuotaWindow configure the per-identity persisted
	// request counter applied to role "user".
	QuotaRequests int           `koanf:"quota_requests"`
	QuotaWindow   time.Duration `koanf:"quota_window"`

	CORSOrigins []string `koanf:"cors_origins"`
}

// DatabaseConfig holds BadgerDB settings.
type DatabaseConfig struct {
	Path string `koanf:"path"`

	// InMemory runs Badger without disk persistence. Used by tests and CI.
	InMemory bool `koanf:"in_memory"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// IsProduction reports whether the server runs with production checks.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
