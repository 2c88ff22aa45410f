// Cinelog - Movie Catalog and Community Ratings API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelog

package config

import (
	"strings"
	"testing"
)

// validTestConfig returns a config that passes validation, built from the
// defaults plus the required secrets.
func validTestConfig() *Config {
	cfg := defaultConfig()
	cfg.Security.JWTSecret = "test-secret-at-least-32-characters-long"
	cfg.Security.AdminEmail = "root@example.com"
	cfg.Security.AdminPassword = "super-admin-pass"
	return cfg
}

func TestValidateAcceptsDefaults(t *testing.T) {
	if err := validTestConfig().Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantSub string
	}{
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"zero timeout", func(c *Config) { c.Server.Timeout = 0 }, "server.timeout"},
		{"bad environment", func(c *Config) { c.Server.Environment = "staging" }, "server.environment"},
		{"missing jwt secret", func(c *Config) { c.Security.JWTSecret = "" }, "jwt_secret"},
		{"missing admin email", func(c *Config) { c.Security.AdminEmail = "" }, "admin_email"},
		{"admin email not an address", func(c *Config) { c.Security.AdminEmail = "root" }, "admin_email"},
		{"missing admin password", func(c *Config) { c.Security.AdminPassword = "" }, "admin_password"},
		{"zero session timeout", func(c *Config) { c.Security.SessionTimeout = 0 }, "session_timeout"},
		{"zero quota", func(c *Config) { c.Security.QuotaRequests = 0 }, "quota_requests"},
		{"no db path", func(c *Config) { c.Database.Path = "" }, "database.path"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}
}

func TestValidateProductionStrictness(t *testing.T) {
	cfg := validTestConfig()
	cfg.Server.Environment = "production"
	cfg.Security.JWTSecret = "short"
	if err := cfg.Validate(); err == nil {
		t.Error("short JWT secret accepted in production")
	}

	cfg = validTestConfig()
	cfg.Server.Environment = "production"
	cfg.Security.AdminPassword = "short"
	if err := cfg.Validate(); err == nil {
		t.Error("short admin password accepted in production")
	}

	// The same values pass in development.
	cfg = validTestConfig()
	cfg.Security.JWTSecret = "short"
	cfg.Security.AdminPassword = "short"
	if err := cfg.Validate(); err != nil {
		t.Errorf("development Validate() error = %v", err)
	}
}

func TestValidateInMemorySkipsPath(t *testing.T) {
	cfg := validTestConfig()
	cfg.Database.Path = ""
	cfg.Database.InMemory = true
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"JWT_SECRET", "security.jwt_secret"},
		{"ADMIN_EMAIL", "security.admin_email"},
		{"ADMIN_PASSWORD", "security.admin_password"},
		{"HTTP_PORT", "server.port"},
		{"BADGER_PATH", "database.path"},
		{"QUOTA_REQUESTS", "security.quota_requests"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"LOG_LEVEL", "logging.level"},
		// Unmapped variables are dropped, not guessed at.
		{"PATH", ""},
		{"HOME", ""},
	}
	for _, tt := range tests {
		if got := envTransformFunc(tt.env); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
		}
	}
}
