// Cinelog - Movie Catalog and Community Ratings API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelog

package api

import (
	"net/http"
	"strings"

	"github.com/tomtom215/cinelog/internal/auth"
	"github.com/tomtom215/cinelog/internal/config"
	"github.com/tomtom215/cinelog/internal/models"
	"github.com/tomtom215/cinelog/internal/store"
)

// Policies builds the per-resource-group policy tables. Predicates that need
// persisted state (comment ownership, favorite ownership) go through the
// store; the configured super-admin email identifies the administrative
// bypass identity, whose role is empty.
type Policies struct {
	store      *store.Store
	adminEmail string
}

// NewPolicies wires the policy builder.
func NewPolicies(cfg *config.SecurityConfig, st *store.Store) *Policies {
	return &Policies{store: st, adminEmail: cfg.AdminEmail}
}

// isAdmin reports whether the caller is an admin-role account or the
// configured super-admin bypass identity.
func (p *Policies) isAdmin(id auth.Identity) bool {
	return id.Role == models.RoleAdmin || id.Subject == p.adminEmail
}

// isSuperAdmin reports whether the caller is exactly the configured
// super-admin identity.
func (p *Policies) isSuperAdmin(id auth.Identity) bool {
	return id.Subject == p.adminEmail
}

// pathTail returns the final path segment of the request.
//
// Policy predicates run as group middleware, before chi binds URL
// parameters, so path-derived operands are read off the raw path.
func pathTail(r *http.Request) string {
	path := strings.TrimSuffix(r.URL.Path, "/")
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}

// pathContains reports whether the request path has the given segment.
func pathContains(r *http.Request, segment string) bool {
	for _, part := range strings.Split(r.URL.Path, "/") {
		if part == segment {
			return true
		}
	}
	return false
}
