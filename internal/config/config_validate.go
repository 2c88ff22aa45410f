// Cinelog - Movie Catalog and Community Ratings API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelog

package config

import (
	"fmt"
	"strings"
)

// minJWTSecretLength is the minimum secret length accepted in production.
const minJWTSecretLength = 32

// Validate checks the configuration for invalid or unsafe values.
// Production mode (ENVIRONMENT=production) enforces stricter checks.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	return c.validateDatabase()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout)
	}
	switch c.Server.Environment {
	case "development", "production", "test":
	default:
		return fmt.Errorf("server.environment must be development, production, or test, got %q", c.Server.Environment)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	s := &c.Security

	if s.JWTSecret == "" {
		return fmt.Errorf("security.jwt_secret is required (set JWT_SECRET)")
	}
	if c.IsProduction() && len(s.JWTSecret) < minJWTSecretLength {
		return fmt.Errorf("security.jwt_secret must be at least %d characters in production", minJWTSecretLength)
	}

	if s.AdminEmail == "" {
		return fmt.Errorf("security.admin_email is required (set ADMIN_EMAIL)")
	}
	if !strings.Contains(s.AdminEmail, "@") {
		return fmt.Errorf("security.admin_email %q is not an email address", s.AdminEmail)
	}
	if s.AdminPassword == "" {
		return fmt.Errorf("security.admin_password is required (set ADMIN_PASSWORD)")
	}
	if c.IsProduction() && len(s.AdminPassword) < 8 {
		return fmt.Errorf("security.admin_password must be at least 8 characters in production")
	}

	if s.SessionTimeout <= 0 {
		return fmt.Errorf("security.session_timeout must be positive, got %s", s.SessionTimeout)
	}
	if s.RateLimitReqs <= 0 {
		return fmt.Errorf("security.rate_limit_reqs must be positive, got %d", s.RateLimitReqs)
	}
	if s.RateLimitWindow <= 0 {
		return fmt.Errorf("security.rate_limit_window must be positive, got %s", s.RateLimitWindow)
	}
	if s.QuotaRequests <= 0 {
		return fmt.Errorf("security.quota_requests must be positive, got %d", s.QuotaRequests)
	}
	if s.QuotaWindow <= 0 {
		return fmt.Errorf("security.quota_window must be positive, got %s", s.QuotaWindow)
	}
	return nil
}

func (c *Config) validateDatabase() error {
	if !c.Database.InMemory && c.Database.Path == "" {
		return fmt.Errorf("database.path is required unless database.in_memory is set")
	}
	return nil
}
